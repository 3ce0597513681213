// Package sign turns a pre-signature into an ECDSA signature: each signer
// broadcasts one partial signature, and anyone can combine them.
package sign

import (
	"crypto/sha256"

	"github.com/quorumsafe/tecdsa/pkg/ecdsa"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/protocols/cmp"
)

// MessageScalar hashes the message with SHA-256 and interprets the digest
// as a scalar, big-endian, reduced mod the group order.
func MessageScalar(message []byte) *curve.Scalar {
	digest := sha256.Sum256(message)
	return curve.NewScalar().SetHash(digest[:])
}

// PartialSign produces this party's partial signature σᵢ on the message.
//
// A pre-signature must be used for exactly one message: producing partial
// signatures on two different messages from the same pre-signature leaks
// the party's key share. Callers must delete pre after use.
func PartialSign(pre *ecdsa.PreSignature, message []byte) (*curve.Scalar, error) {
	if err := pre.Validate(); err != nil {
		return nil, &cmp.Error{Err: err}
	}
	return pre.SignatureShare(MessageScalar(message)), nil
}

// Combine sums all partial signatures into a signature (r, s), normalizes
// it to low s, and verifies it under the group public key. A verification
// failure means some signer deviated, and surfaces as ErrSignatureInvalid.
func Combine(pre *ecdsa.PreSignature, publicPoint *curve.Point, message []byte, shares map[party.ID]*curve.Scalar) (*ecdsa.Signature, error) {
	sig := pre.Signature(shares)
	if !sig.Verify(publicPoint, MessageScalar(message)) {
		return nil, &cmp.Error{Err: cmp.ErrSignatureInvalid}
	}
	return sig, nil
}
