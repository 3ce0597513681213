package paillier

import (
	"crypto/rand"
	"fmt"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/internal/params"
	"github.com/quorumsafe/tecdsa/pkg/math/arith"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
	"github.com/quorumsafe/tecdsa/pkg/pool"
)

// SecretKey is the secret key corresponding to a public Paillier key.
//
// The public key is a modulus N, and the secret key contains the information
// needed to factor N into two primes P and Q, which allows decryption.
type SecretKey struct {
	*PublicKey
	// p, q such that N = p⋅q
	p, q *saferith.Nat
	// phi = ϕ = (p-1)(q-1)
	phi *saferith.Nat
	// phiInv = ϕ⁻¹ mod N
	phiInv *saferith.Nat
}

// P returns the first of the two factors composing this key.
func (sk *SecretKey) P() *saferith.Nat { return sk.p }

// Q returns the second of the two factors composing this key.
func (sk *SecretKey) Q() *saferith.Nat { return sk.q }

// Phi returns ϕ = (P-1)(Q-1).
func (sk *SecretKey) Phi() *saferith.Nat { return sk.phi }

// NewSecretKey samples primes p and q suitable for the scheme, and returns
// the initialized SecretKey.
func NewSecretKey(pl *pool.Pool) *SecretKey {
	return NewSecretKeyFromPrimes(sample.Paillier(rand.Reader, pl))
}

// NewSecretKeyFromPrimes builds a SecretKey from the given primes.
// Assumes that P and Q are prime.
func NewSecretKeyFromPrimes(P, Q *saferith.Nat) *SecretKey {
	oneNat := new(saferith.Nat).SetUint64(1)

	n := arith.ModulusFromFactors(P, Q)

	nNat := n.Nat()
	nPlusOne := new(saferith.Nat).Add(nNat, oneNat, -1)
	// tightening is fine, since N is public
	nPlusOne.Resize(nPlusOne.TrueLen())
	nHalf := new(saferith.Nat).Rsh(nNat, 1, -1)

	pMinus1 := new(saferith.Nat).Sub(P, oneNat, -1)
	qMinus1 := new(saferith.Nat).Sub(Q, oneNat, -1)
	phi := new(saferith.Nat).Mul(pMinus1, qMinus1, -1)
	// ϕ⁻¹ mod N
	phiInv := new(saferith.Nat).ModInverse(phi, n.Modulus)

	pSquared := pMinus1.Mul(P, P, -1)
	qSquared := qMinus1.Mul(Q, Q, -1)
	nSquared := arith.ModulusFromFactors(pSquared, qSquared)

	return &SecretKey{
		p:      P,
		q:      Q,
		phi:    phi,
		phiInv: phiInv,
		PublicKey: &PublicKey{
			n:        n,
			nSquared: nSquared,
			nNat:     nNat,
			nPlusOne: nPlusOne,
			nHalf:    nHalf,
		},
	}
}

// Dec decrypts ct and returns the plaintext m ∈ ±(N-1)/2.
// It returns ErrCiphertextInvalid if ct is not in [1, N²-1] or not coprime
// to N².
func (sk *SecretKey) Dec(ct *Ciphertext) (*saferith.Int, error) {
	oneNat := new(saferith.Nat).SetUint64(1)

	n := sk.PublicKey.n.Modulus

	if !sk.PublicKey.ValidateCiphertexts(ct) {
		return nil, ErrCiphertextInvalid
	}

	// r = cᵠ (mod N²)
	result := sk.PublicKey.nSquared.Exp(ct.c, sk.phi)
	// r = cᵠ - 1
	result.Sub(result, oneNat, -1)
	// r = (cᵠ - 1) / N
	result.Div(result, n, -1)
	// r = [(cᵠ - 1) / N] ⋅ ϕ⁻¹ (mod N)
	result.ModMul(result, sk.phiInv, n)

	// see 6.1 of https://www.iacr.org/archive/crypto2001/21390136.pdf
	return new(saferith.Int).SetModSymmetric(result, n), nil
}

// DecWithRandomness returns the underlying plaintext, as well as the nonce
// used to encrypt it.
func (sk *SecretKey) DecWithRandomness(ct *Ciphertext) (*saferith.Int, *saferith.Nat, error) {
	m, err := sk.Dec(ct)
	if err != nil {
		return nil, nil, err
	}
	mNeg := new(saferith.Int).SetInt(m).Neg(1)

	// x = C (N+1)⁻ᵐ (mod N)
	x := sk.n.ExpI(sk.nPlusOne, mNeg)
	x.ModMul(x, ct.c, sk.n.Modulus)

	// r = x^(N⁻¹ mod ϕ) (mod N)
	nInverse := new(saferith.Nat).ModInverse(sk.nNat, saferith.ModulusFromNat(sk.phi))
	r := sk.n.Exp(x, nInverse)
	return m, r, nil
}

// GeneratePedersen derives Pedersen commitment parameters from the secret
// key, returning the parameters and the secret exponent λ.
func (sk *SecretKey) GeneratePedersen() (*pedersen.Parameters, *saferith.Nat) {
	s, t, lambda := sample.Pedersen(rand.Reader, sk.phi, sk.n.Modulus)
	return pedersen.New(sk.n, s, t), lambda
}

// ValidatePrime checks whether p is a suitable prime factor for a Paillier
// modulus:
// - log₂(p) = params.BitsBlumPrime,
// - p ≡ 3 (mod 4),
// - (p-1)/2 is prime.
func ValidatePrime(p *saferith.Nat) error {
	if p == nil {
		return ErrPrimeNil
	}
	const bitsWant = params.BitsBlumPrime
	// Technically, this leaks the number of bits, but returning an error
	// asserts this number statically anyways.
	if bits := p.TrueLen(); bits != bitsWant {
		return fmt.Errorf("invalid prime size: have %d, need %d: %w", bits, bitsWant, ErrPrimeBadLength)
	}
	if p.Byte(0)&0b11 != 3 {
		return ErrNotBlum
	}

	pMinus1Div2 := new(saferith.Nat).Rsh(p, 1, -1)
	if !pMinus1Div2.Big().ProbablyPrime(1) {
		return ErrNotSafePrime
	}
	return nil
}
