package ecdsa

import (
	"errors"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/party"
)

// PreSignature is one party's output of the presigning phase. It is bound to
// the signer subset that produced it and must be used to sign exactly one
// message; reusing it for a second message leaks the party's key share.
type PreSignature struct {
	// R = δ⁻¹⋅Γ is the group nonce commitment, common to all signers.
	R *curve.Point
	// KShare = kᵢ
	KShare *curve.Scalar
	// ChiShare = χᵢ
	ChiShare *curve.Scalar
}

// Validate checks the pre-signature for missing or degenerate fields.
func (p *PreSignature) Validate() error {
	if p == nil || p.R == nil || p.KShare == nil || p.ChiShare == nil {
		return errors.New("presignature: contains nil field")
	}
	if p.R.IsIdentity() {
		return errors.New("presignature: R is the identity point")
	}
	if p.R.XScalar().IsZero() {
		return errors.New("presignature: R has 0 x coordinate")
	}
	if p.KShare.IsZero() || p.ChiShare.IsZero() {
		return errors.New("presignature: zero share")
	}
	return nil
}

// SignatureShare returns this party's partial signature on the message hash
// m, given as a scalar:
//
//	σᵢ = m⋅kᵢ + r⋅χᵢ (mod q).
func (p *PreSignature) SignatureShare(m *curve.Scalar) *curve.Scalar {
	r := p.R.XScalar()
	mk := curve.NewScalar().Multiply(m, p.KShare)
	// σᵢ = r⋅χᵢ + m⋅kᵢ
	return curve.NewScalar().MultiplyAdd(r, p.ChiShare, mk)
}

// Signature assembles a signature from the pre-signature's nonce point and
// the sum of all partial signatures. The result is normalized to low s.
func (p *PreSignature) Signature(shares map[party.ID]*curve.Scalar) *Signature {
	s := curve.NewScalar()
	for _, sigma := range shares {
		s.Add(s, sigma)
	}
	sig := &Signature{
		R: curve.NewIdentityPoint().Set(p.R),
		S: s,
	}
	return sig.Normalize()
}
