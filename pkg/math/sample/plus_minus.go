package sample

import (
	"io"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/internal/params"
)

// sampleNeg samples a random integer in ±2ᵇⁱᵗˢ. It reads bits/8+1 bytes and
// uses the low bit of the first byte as the sign; the interval membership
// checks in pkg/math/arith test the bit length of the absolute value, which
// matches this construction.
func sampleNeg(rand io.Reader, bits int) *saferith.Int {
	buf := make([]byte, bits/8+1)
	mustReadBits(rand, buf)
	neg := saferith.Choice(buf[0] & 1)
	buf = buf[1:]
	out := new(saferith.Int).SetBytes(buf)
	out.Neg(neg)
	return out
}

// IntervalL returns an integer in the range ±2ˡ.
func IntervalL(rand io.Reader) *saferith.Int {
	return sampleNeg(rand, params.L)
}

// IntervalLPrime returns an integer in the range ±2ˡ'.
func IntervalLPrime(rand io.Reader) *saferith.Int {
	return sampleNeg(rand, params.LPrime)
}

// IntervalLEps returns an integer in the range ±2ˡ⁺ᵉ.
func IntervalLEps(rand io.Reader) *saferith.Int {
	return sampleNeg(rand, params.LPlusEpsilon)
}

// IntervalLPrimeEps returns an integer in the range ±2ˡ'⁺ᵉ.
func IntervalLPrimeEps(rand io.Reader) *saferith.Int {
	return sampleNeg(rand, params.LPrimePlusEpsilon)
}

// IntervalLN returns an integer in the range ±2ˡ⋅N, where N is the size of a
// Paillier modulus.
func IntervalLN(rand io.Reader) *saferith.Int {
	return sampleNeg(rand, params.L+params.BitsIntModN)
}

// IntervalLEpsN returns an integer in the range ±2ˡ⁺ᵉ⋅N, where N is the size
// of a Paillier modulus.
func IntervalLEpsN(rand io.Reader) *saferith.Int {
	return sampleNeg(rand, params.LPlusEpsilon+params.BitsIntModN)
}

// IntervalScalar returns an integer in the range ±q, with q the order of the
// curve. When rand is the digest of a Fiat–Shamir hash, the result is the
// proof challenge.
func IntervalScalar(rand io.Reader) *saferith.Int {
	return sampleNeg(rand, params.SecParam)
}
