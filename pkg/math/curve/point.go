package curve

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/quorumsafe/tecdsa/internal/params"
)

// Point is a point on the secp256k1 curve.
// The zero value is the identity (point at infinity).
type Point struct {
	p secp256k1.JacobianPoint
}

// NewIdentityPoint returns the identity point.
func NewIdentityPoint() *Point {
	return &Point{}
}

// NewBasePoint returns a point set to the canonical generator G.
func NewBasePoint() *Point {
	var v Point
	v.p.X.Set(&baseX)
	v.p.Y.Set(&baseY)
	v.p.Z.SetInt(1)
	return &v
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	v.p.Set(&u.p)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &q.p, &r)
	v.p.Set(&r)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	var qNeg Point
	qNeg.Negate(q)
	return v.Add(p, &qNeg)
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.Set(p)
	v.p.Y.Negate(1)
	v.p.Y.Normalize()
	return v
}

// Double sets v = p + p, and returns v.
func (v *Point) Double(p *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.DoubleNonConst(&p.p, &r)
	v.p.Set(&r)
	return v
}

// IsIdentity returns true if v is the point at infinity.
func (v *Point) IsIdentity() bool {
	return v.p.Z.IsZero() || (v.p.X.IsZero() && v.p.Y.IsZero())
}

// Equal returns true if v and u represent the same point.
func (v *Point) Equal(u *Point) bool {
	if v.IsIdentity() || u.IsIdentity() {
		return v.IsIdentity() == u.IsIdentity()
	}
	v.toAffine()
	u.toAffine()
	return v.p.X.Equals(&u.p.X) && v.p.Y.Equals(&u.p.Y)
}

// XScalar returns the x coordinate of v reduced mod q.
// This is the value r of an ECDSA signature when v = R.
func (v *Point) XScalar() *Scalar {
	v.toAffine()
	b := v.p.X.Bytes()
	var s Scalar
	return s.SetBytes(b[:])
}

// PublicKey returns v as a secp256k1 public key.
// v must not be the identity.
func (v *Point) PublicKey() *secp256k1.PublicKey {
	v.toAffine()
	return secp256k1.NewPublicKey(&v.p.X, &v.p.Y)
}

// UncompressedBytes returns the 65-byte SEC1 encoding 0x04 ‖ X ‖ Y.
func (v *Point) UncompressedBytes() []byte {
	return v.PublicKey().SerializeUncompressed()
}

// MarshalBinary implements encoding.BinaryMarshaler, using the 33-byte
// compressed encoding. The identity is encoded as 33 zero bytes.
func (v *Point) MarshalBinary() ([]byte, error) {
	out := make([]byte, params.BytesPoint)
	if v.IsIdentity() {
		return out, nil
	}
	v.toAffine()
	out[0] = byte(v.p.Y.IsOddBit()) + 2
	data := v.p.X.Bytes()
	copy(out[1:], data[:])
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Point) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesPoint {
		return fmt.Errorf("curve: invalid length for point: %d", len(data))
	}
	if data[0] == 0 {
		v.p.X.SetInt(0)
		v.p.Y.SetInt(0)
		v.p.Z.SetInt(0)
		return nil
	}
	if data[0] != 2 && data[0] != 3 {
		return fmt.Errorf("curve: invalid point prefix: %x", data[0])
	}
	v.p.Z.SetInt(1)
	if v.p.X.SetByteSlice(data[1:]) {
		return fmt.Errorf("curve: x coordinate out of range")
	}
	if !secp256k1.DecompressY(&v.p.X, data[0] == 3, &v.p.Y) {
		return fmt.Errorf("curve: x coordinate not on curve")
	}
	// DecompressY leaves Y denormalized, which would corrupt Equals
	// comparisons and the parity bit on re-serialization.
	v.p.Y.Normalize()
	return nil
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (v *Point) WriteTo(w io.Writer) (int64, error) {
	if v == nil {
		return 0, io.ErrUnexpectedEOF
	}
	data, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (*Point) Domain() string { return "Point" }

func (v *Point) toAffine() {
	if !v.p.Z.IsOne() {
		v.p.ToAffine()
	}
}
