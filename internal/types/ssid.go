package types

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/quorumsafe/tecdsa/internal/params"
)

// SSID is the unique identifier for a signing session. All parties of a
// session must agree on it, and it is bound into every Fiat–Shamir challenge.
type SSID []byte

// EmptySSID returns a zeroed-out SSID, ready for unmarshalling.
func EmptySSID() SSID {
	return make(SSID, params.BytesSSID)
}

// NewSSID derives a fresh session identifier by hashing 32 bytes read from r
// with SHA-256 and truncating the digest.
func NewSSID(r io.Reader) (SSID, error) {
	seed := make([]byte, params.SecBytes)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("ssid: %w", err)
	}
	digest := sha256.Sum256(seed)
	return SSID(digest[:params.BytesSSID]), nil
}

// WriteTo implements io.WriterTo.
func (ssid SSID) WriteTo(w io.Writer) (int64, error) {
	if ssid == nil {
		return 0, io.ErrUnexpectedEOF
	}
	n, err := w.Write(ssid)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (SSID) Domain() string { return "SSID" }

// Validate ensures the SSID has the correct length and is not identically 0.
func (ssid SSID) Validate() error {
	if l := len(ssid); l != params.BytesSSID {
		return fmt.Errorf("ssid: incorrect length (got %d, expected %d)", l, params.BytesSSID)
	}
	for _, b := range ssid {
		if b != 0 {
			return nil
		}
	}
	return errors.New("ssid: ssid is 0")
}

// Copy returns an independent copy of the SSID.
func (ssid SSID) Copy() SSID {
	other := EmptySSID()
	copy(other, ssid)
	return other
}
