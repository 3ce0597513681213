// Package cmp implements a CGGMP-style threshold ECDSA signing protocol over
// secp256k1.
//
// A one-time trusted-dealer key generation (keygen) produces for each of n
// parties a Config holding its secret share, Paillier key and Pedersen
// parameters. Any t+1 parties can then run a three-round presigning
// (presign) to obtain pre-signatures, and finally sign a message hash with a
// single round of partial signatures (sign).
//
// The library is transport-agnostic: round outputs are plain structs with
// cbor marshalling, and callers are responsible for delivering each party's
// outputs to its peers over an authenticated channel.
package cmp

import (
	"errors"
	"fmt"

	"github.com/quorumsafe/tecdsa/pkg/party"
)

var (
	// ErrProofInvalid indicates a peer's zero-knowledge proof failed to
	// verify.
	ErrProofInvalid = errors.New("zero-knowledge proof failed to verify")
	// ErrPresignInconsistent indicates the final δ⋅G = Δ consistency check
	// failed.
	ErrPresignInconsistent = errors.New("inconsistent presignature: δ⋅G ≠ Δ")
	// ErrSignatureInvalid indicates the combined signature did not verify
	// under the group public key.
	ErrSignatureInvalid = errors.New("combined signature failed to verify")
)

// Error wraps a protocol failure with the round it occurred in and, when a
// specific peer's message caused it, the culprit.
type Error struct {
	// Round is the round the failure was detected in, starting at 1.
	// 0 means the failure is not attributable to a round.
	Round int
	// Culprit is the party whose message caused the failure, if any.
	Culprit party.ID
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Culprit != 0 {
		return fmt.Sprintf("round %d: party %s: %s", e.Round, e.Culprit, e.Err)
	}
	if e.Round != 0 {
		return fmt.Sprintf("round %d: %s", e.Round, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, so errors.Is and errors.As see
// through Error.
func (e *Error) Unwrap() error { return e.Err }
