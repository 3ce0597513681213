// Package party defines the identifiers under which protocol participants
// are known, and the shape of the signer set.
package party

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
)

// ByteSize is the number of bytes required to store an ID.
const ByteSize = 2

// MAX is the maximum integer value an ID can take.
const MAX = (1 << (ByteSize * 8)) - 1

// ID identifies a protocol participant. IDs are nonzero: an ID doubles as
// the evaluation point of the party's Shamir share, and evaluating the
// polynomial at 0 would leak the secret.
type ID uint16

// Scalar returns the ID as a scalar of the curve group.
func (id ID) Scalar() *curve.Scalar {
	return curve.NewScalar().SetUInt32(uint32(id))
}

// Bytes returns a big-endian encoding of the ID.
func (id ID) Bytes() []byte {
	bytes := make([]byte, ByteSize)
	binary.BigEndian.PutUint16(bytes, uint16(id))
	return bytes
}

// String returns a base-10 representation of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// FromBytes reads the first party.ByteSize bytes of b as an ID.
func FromBytes(b []byte) ID {
	return ID(binary.BigEndian.Uint16(b))
}

// WriteTo implements io.WriterTo.
func (id ID) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(id.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (ID) Domain() string { return "Party ID" }

// RandomIDs generates n distinct IDs in [1, idRange], reading randomness
// from rand.
func RandomIDs(rand io.Reader, n, idRange int) (IDSlice, error) {
	if idRange < n || idRange > MAX {
		return nil, fmt.Errorf("party: cannot pick %d distinct ids from [1, %d]", n, idRange)
	}
	taken := make(map[ID]struct{}, n)
	ids := make(IDSlice, 0, n)
	var buf [ByteSize]byte
	for len(ids) < n {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, fmt.Errorf("party: %w", err)
		}
		id := ID(binary.BigEndian.Uint16(buf[:])%uint16(idRange)) + 1
		if _, ok := taken[id]; ok {
			continue
		}
		taken[id] = struct{}{}
		ids = append(ids, id)
	}
	return NewIDSlice(ids), nil
}
