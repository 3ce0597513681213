// Package curve implements the secp256k1 group used by the signing protocol.
//
// Scalar is an element of ℤq, where q is the group order. Point is a point on
// the curve in Jacobian coordinates; the identity is the point with Z = 0, so
// no affine sentinel value exists.
package curve

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// q is the secp256k1 group order as a saferith modulus.
	q            *saferith.Modulus
	baseX, baseY secp256k1.FieldVal
)

// Order returns the group order q as a saferith modulus.
func Order() *saferith.Modulus {
	return q
}

// MakeInt returns the value of s as a saferith integer in [0, q).
func MakeInt(s *Scalar) *saferith.Int {
	buf := s.Bytes()
	return new(saferith.Int).SetBytes(buf)
}

// FromInt returns a scalar equal to i modulo q, handling negative values.
func FromInt(i *saferith.Int) *Scalar {
	var s Scalar
	abs := i.Abs()
	s.SetNat(abs.Mod(abs, q))
	if i.IsNegative() == 1 {
		s.Negate(&s)
	}
	return &s
}

func init() {
	orderBytes, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	q = saferith.ModulusFromNat(new(saferith.Nat).SetBytes(orderBytes))

	gx, _ := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy, _ := hex.DecodeString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	baseX.SetByteSlice(gx)
	baseY.SetByteSlice(gy)
}
