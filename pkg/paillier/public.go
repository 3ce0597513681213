package paillier

import (
	"crypto/rand"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/internal/params"
	"github.com/quorumsafe/tecdsa/pkg/math/arith"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
)

// PublicKey is a Paillier public key: a modulus N, together with the cached
// values N², N+1 and (N-1)/2.
type PublicKey struct {
	// n = N
	n *arith.Modulus
	// nSquared = N²
	nSquared *arith.Modulus
	// nNat = N as a Nat
	nNat *saferith.Nat
	// nPlusOne = N + 1
	nPlusOne *saferith.Nat
	// nHalf = (N-1)/2, the bound on the absolute value of a plaintext
	nHalf *saferith.Nat
}

// NewPublicKey returns an initialized public key for the modulus n.
// The caller should have checked ValidateN(n) beforehand.
func NewPublicKey(n *saferith.Modulus) *PublicKey {
	oneNat := new(saferith.Nat).SetUint64(1)
	nNat := n.Nat()
	nSquared := saferith.ModulusFromNat(new(saferith.Nat).Mul(nNat, nNat, -1))
	nPlusOne := new(saferith.Nat).Add(nNat, oneNat, -1)
	// tightening is fine, since N is public
	nPlusOne.Resize(nPlusOne.TrueLen())
	nHalf := new(saferith.Nat).Rsh(nNat, 1, -1)

	return &PublicKey{
		n:        arith.ModulusFromN(n),
		nSquared: arith.ModulusFromN(nSquared),
		nNat:     nNat,
		nPlusOne: nPlusOne,
		nHalf:    nHalf,
	}
}

// ValidateN performs the public checks on the modulus:
// - log₂(n) = params.BitsPaillier,
// - n is odd.
func ValidateN(n *saferith.Modulus) error {
	if n == nil {
		return ErrPrimeNil
	}
	nNat := n.Nat()
	if bits := nNat.TrueLen(); bits != params.BitsPaillier {
		return ErrModulusLength
	}
	if nNat.Byte(0)&1 != 1 {
		return ErrModulusEven
	}
	return nil
}

// N returns the modulus of the key.
func (pk *PublicKey) N() *saferith.Modulus { return pk.n.Modulus }

// Modulus returns the arithmetic wrapper around N.
func (pk *PublicKey) Modulus() *arith.Modulus { return pk.n }

// ModulusSquared returns the arithmetic wrapper around N².
func (pk *PublicKey) ModulusSquared() *arith.Modulus { return pk.nSquared }

// Equal returns true if pk and other have the same modulus.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.nNat.Eq(other.nNat) == 1
}

// Nonce samples a suitable encryption nonce ρ ∈ ℤ_Nˣ.
func (pk *PublicKey) Nonce(rand io.Reader) *saferith.Nat {
	return sample.UnitModN(rand, pk.n.Modulus)
}

// Enc returns the encryption of m under a freshly sampled nonce, together
// with the nonce. m must be in ±(N-1)/2, otherwise Enc panics with
// ErrMessageOutOfRange.
func (pk *PublicKey) Enc(m *saferith.Int) (*Ciphertext, *saferith.Nat) {
	nonce := pk.Nonce(rand.Reader)
	return pk.EncWithNonce(m, nonce), nonce
}

// EncWithNonce returns the encryption of m with the given nonce:
//
//	ct = (1+N)ᵐ ρᴺ (mod N²).
//
// m must be in ±(N-1)/2, otherwise EncWithNonce panics with
// ErrMessageOutOfRange.
func (pk *PublicKey) EncWithNonce(m *saferith.Int, nonce *saferith.Nat) *Ciphertext {
	if gt, _, _ := m.Abs().Cmp(pk.nHalf); gt == 1 {
		panic(ErrMessageOutOfRange)
	}

	// c = (N+1)ᵐ (mod N²)
	c := pk.nSquared.ExpI(pk.nPlusOne, m)
	// rhoN = ρᴺ (mod N²)
	rhoN := pk.nSquared.Exp(nonce, pk.nNat)
	// c = c ⋅ ρᴺ (mod N²)
	c.ModMul(c, rhoN, pk.nSquared.Modulus)

	return &Ciphertext{c: c}
}

// ValidateCiphertexts returns true if all ciphertexts are in the correct
// range and coprime to N².
func (pk *PublicKey) ValidateCiphertexts(cts ...*Ciphertext) bool {
	for _, ct := range cts {
		if ct == nil || ct.c == nil {
			return false
		}
		if !arith.IsValidNatModN(pk.nSquared.Modulus, ct.c) {
			return false
		}
	}
	return true
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	if pk == nil {
		return 0, io.ErrUnexpectedEOF
	}
	buf := make([]byte, params.BytesIntModN)
	pk.nNat.FillBytes(buf)
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (*PublicKey) Domain() string { return "Paillier PublicKey" }

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	buf := make([]byte, params.BytesIntModN)
	pk.nNat.FillBytes(buf)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	n := saferith.ModulusFromNat(new(saferith.Nat).SetBytes(data))
	if err := ValidateN(n); err != nil {
		return err
	}
	*pk = *NewPublicKey(n)
	return nil
}
