// Package ecdsa defines the signature and pre-signature types produced by the
// signing protocol, independent of any round logic.
package ecdsa

import (
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
)

// Signature is a secp256k1 ECDSA signature, with R kept as the full nonce
// point rather than only its x coordinate.
type Signature struct {
	R *curve.Point
	S *curve.Scalar
}

// Normalize forces S to the low representative, negating it when
// S > (q-1)/2. The resulting signature verifies for the same message and
// public key. It returns the receiver.
func (sig *Signature) Normalize() *Signature {
	if sig.S.IsOverHalfOrder() {
		sig.S.Negate(sig.S)
	}
	return sig
}

// Verify performs the standard ECDSA check of sig on the message hash m,
// given as a scalar, under the public key X:
//
//	R' = s⁻¹⋅(m⋅G + r⋅X), accept iff R'.x ≡ r (mod q).
func (sig *Signature) Verify(X *curve.Point, m *curve.Scalar) bool {
	if sig.R == nil || sig.S == nil || sig.S.IsZero() || sig.R.IsIdentity() {
		return false
	}

	r := sig.R.XScalar()
	if r.IsZero() {
		return false
	}

	sInv := curve.NewScalar().Invert(sig.S)
	mG := curve.NewScalar().Multiply(m, sInv).ActOnBase()
	rX := curve.NewScalar().Multiply(r, sInv).Act(X)
	R2 := curve.NewIdentityPoint().Add(mG, rX)
	if R2.IsIdentity() {
		return false
	}
	return R2.XScalar().Equal(r)
}

// SigBytes returns the 64-byte encoding r ‖ s, both big-endian.
func (sig *Signature) SigBytes() []byte {
	out := make([]byte, 0, 2*32)
	out = append(out, sig.R.XScalar().Bytes()...)
	out = append(out, sig.S.Bytes()...)
	return out
}
