package paillier

import (
	"crypto/rand"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/internal/params"
)

// Ciphertext is an element of ℤ_{N²} produced by Paillier encryption.
type Ciphertext struct {
	c *saferith.Nat
}

// Add sets ct to the homomorphic sum ct ⊕ other:
//
//	ct = ct ⋅ other (mod N²).
func (ct *Ciphertext) Add(pk *PublicKey, other *Ciphertext) *Ciphertext {
	if other == nil {
		return ct
	}
	ct.c.ModMul(ct.c, other.c, pk.nSquared.Modulus)
	return ct
}

// Mul sets ct to the homomorphic scalar multiple k ⊙ ct:
//
//	ct = ctᵏ (mod N²).
func (ct *Ciphertext) Mul(pk *PublicKey, k *saferith.Int) *Ciphertext {
	if k == nil {
		return ct
	}
	ct.c = pk.nSquared.ExpI(ct.c, k)
	return ct
}

// Equal checks whether ct ≡ other (mod N²).
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	if ct == nil || other == nil {
		return false
	}
	return ct.c.Eq(other.c) == 1
}

// Clone returns a deep copy of ct.
func (ct *Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{c: new(saferith.Nat).SetNat(ct.c)}
}

// Randomize multiplies the ciphertext's nonce by a newly generated one:
//
//	ct = ct ⋅ nonceᴺ (mod N²).
//
// If nonce is nil, a fresh one is sampled. The updated receiver is returned,
// as well as the nonce used.
func (ct *Ciphertext) Randomize(pk *PublicKey, nonce *saferith.Nat) *saferith.Nat {
	if nonce == nil {
		nonce = pk.Nonce(rand.Reader)
	}
	// tmp = nonceᴺ (mod N²)
	tmp := pk.nSquared.Exp(nonce, pk.nNat)
	ct.c.ModMul(ct.c, tmp, pk.nSquared.Modulus)
	return nonce
}

// Nat returns the value of the ciphertext. The returned value aliases the
// receiver's state and must not be modified.
func (ct *Ciphertext) Nat() *saferith.Nat {
	return ct.c
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (ct *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	if ct == nil || ct.c == nil {
		return 0, io.ErrUnexpectedEOF
	}
	buf := make([]byte, params.BytesCiphertext)
	ct.c.FillBytes(buf)
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (*Ciphertext) Domain() string { return "Paillier Ciphertext" }

// MarshalBinary implements encoding.BinaryMarshaler.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	buf := make([]byte, params.BytesCiphertext)
	ct.c.FillBytes(buf)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	ct.c = new(saferith.Nat).SetBytes(data)
	return nil
}
