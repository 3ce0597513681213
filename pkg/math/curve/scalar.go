package curve

import (
	"errors"
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/quorumsafe/tecdsa/internal/params"
)

// Scalar is an integer modulo the secp256k1 group order.
// Every constructor reduces its input, so the value is always in [0, q).
type Scalar struct {
	s secp256k1.ModNScalar
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Add sets s = x + y (mod q), and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.s.Add2(&x.s, &y.s)
	return s
}

// Subtract sets s = x - y (mod q), and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	var yNeg secp256k1.ModNScalar
	yNeg.NegateVal(&y.s)
	s.s.Add2(&x.s, &yNeg)
	return s
}

// Negate sets s = -x (mod q), and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.NegateVal(&x.s)
	return s
}

// Multiply sets s = x * y (mod q), and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	s.s.Mul2(&x.s, &y.s)
	return s
}

// MultiplyAdd sets s = x * y + z (mod q), and returns s.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Mul2(&x.s, &y.s)
	r.Add(&z.s)
	s.s.Set(&r)
	return s
}

// Invert sets s = x⁻¹ (mod q), and returns s. x must be nonzero.
func (s *Scalar) Invert(x *Scalar) *Scalar {
	s.s.InverseValNonConst(&x.s)
	return s
}

// Set sets s = x, and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	s.s.Set(&x.s)
	return s
}

// SetUInt32 sets s to the given small integer, and returns s.
func (s *Scalar) SetUInt32(i uint32) *Scalar {
	s.s.SetInt(i)
	return s
}

// SetNat sets s = x (mod q), and returns s.
func (s *Scalar) SetNat(x *saferith.Nat) *Scalar {
	reduced := new(saferith.Nat).Mod(x, q)
	buf := make([]byte, params.BytesScalar)
	reduced.FillBytes(buf)
	s.s.SetByteSlice(buf)
	return s
}

// SetBytes interprets in as a big-endian integer, reduces it mod q,
// and returns s.
func (s *Scalar) SetBytes(in []byte) *Scalar {
	return s.SetNat(new(saferith.Nat).SetBytes(in))
}

// SetHash converts a hash digest to a Scalar, truncating it to the bit length
// of the group order first, following [SECG].
func (s *Scalar) SetHash(hash []byte) *Scalar {
	if len(hash) > params.BytesScalar {
		hash = hash[:params.BytesScalar]
	}
	return s.SetBytes(hash)
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	buf := s.s.Bytes()
	return buf[:]
}

// Equal returns true if s and t represent the same value.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equals(&t.s)
}

// IsZero returns true if s is 0.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// IsOverHalfOrder returns true if s > (q-1)/2, i.e. s is a "high" value
// which must be negated when normalizing an ECDSA signature.
func (s *Scalar) IsOverHalfOrder() bool {
	return s.s.IsOverHalfOrder()
}

// ActOnBase returns s⋅G, where G is the canonical generator.
func (s *Scalar) ActOnBase() *Point {
	var p Point
	secp256k1.ScalarBaseMultNonConst(&s.s, &p.p)
	return &p
}

// Act returns s⋅P.
func (s *Scalar) Act(P *Point) *Point {
	var p Point
	secp256k1.ScalarMultNonConst(&s.s, &P.p, &p.p)
	return &p
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The input must be a canonical 32-byte encoding.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesScalar {
		return fmt.Errorf("curve: invalid length for scalar: %d", len(data))
	}
	var exact [params.BytesScalar]byte
	copy(exact[:], data)
	if s.s.SetBytes(&exact) != 0 {
		return errors.New("curve: scalar was not reduced")
	}
	return nil
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (s *Scalar) WriteTo(w io.Writer) (int64, error) {
	if s == nil {
		return 0, io.ErrUnexpectedEOF
	}
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (*Scalar) Domain() string { return "Scalar" }
