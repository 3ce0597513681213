// Package zkenc implements the range proof Π_enc: the prover knows the
// plaintext k and nonce ρ of a Paillier ciphertext K, and k ∈ ±2ˡ.
package zkenc

import (
	"crypto/rand"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/pkg/hash"
	"github.com/quorumsafe/tecdsa/pkg/math/arith"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
)

type Public struct {
	// K = Enc₀(k;ρ)
	K *paillier.Ciphertext

	Prover *paillier.PublicKey
	Aux    *pedersen.Parameters
}

type Private struct {
	// K = k ∈ ±2ˡ, the plaintext of K
	K *saferith.Int

	// Rho = ρ, the nonce of K
	Rho *saferith.Nat
}

type Commitment struct {
	// S = sᵏ tᵘ (mod N)
	S *saferith.Nat
	// A = Enc₀(α; r)
	A *paillier.Ciphertext
	// C = sᵃ tᵞ (mod N)
	C *saferith.Nat
}

type Proof struct {
	*Commitment
	// Z1 = α + e⋅k
	Z1 *saferith.Int
	// Z2 = r⋅ρᵉ (mod N₀)
	Z2 *saferith.Nat
	// Z3 = γ + e⋅μ
	Z3 *saferith.Int
}

// IsValid performs the cheap well-formedness checks on the proof.
func (p *Proof) IsValid(public Public) bool {
	if p == nil || p.Commitment == nil {
		return false
	}
	if !public.Prover.ValidateCiphertexts(p.A) {
		return false
	}
	if !arith.IsValidNatModN(public.Prover.N(), p.Z2) {
		return false
	}
	return true
}

// NewProof generates a proof that the plaintext of public.K lies in ±2ˡ.
func NewProof(hash *hash.Hash, public Public, private Private) *Proof {
	N := public.Prover.N()

	alpha := sample.IntervalLEps(rand.Reader)
	r := sample.UnitModN(rand.Reader, N)
	mu := sample.IntervalLN(rand.Reader)
	gamma := sample.IntervalLEpsN(rand.Reader)

	commitment := &Commitment{
		S: public.Aux.Commit(private.K, mu),
		A: public.Prover.EncWithNonce(alpha, r),
		C: public.Aux.Commit(alpha, gamma),
	}

	e := challenge(hash, public, commitment)

	// z₁ = α + e⋅k
	z1 := new(saferith.Int).Mul(e, private.K, -1)
	z1.Add(z1, alpha, -1)
	// z₂ = r⋅ρᵉ (mod N₀)
	z2 := new(saferith.Nat).ExpI(private.Rho, e, N)
	z2.ModMul(z2, r, N)
	// z₃ = γ + e⋅μ
	z3 := new(saferith.Int).Mul(e, mu, -1)
	z3.Add(z3, gamma, -1)

	return &Proof{
		Commitment: commitment,
		Z1:         z1,
		Z2:         z2,
		Z3:         z3,
	}
}

// Verify checks the proof against the public statement.
func (p *Proof) Verify(hash *hash.Hash, public Public) bool {
	if !p.IsValid(public) {
		return false
	}

	if !arith.IsInIntervalLEps(p.Z1) {
		return false
	}

	e := challenge(hash, public, p.Commitment)

	// sᶻ¹ tᶻ³ ≡ C⋅Sᵉ (mod N)
	if !public.Aux.Verify(p.Z1, p.Z3, e, p.C, p.S) {
		return false
	}

	// Enc₀(z₁;z₂) ≡ A ⊕ (e ⊙ K) (mod N₀²)
	lhs := public.Prover.EncWithNonce(p.Z1, p.Z2)
	rhs := public.K.Clone().Mul(public.Prover, e).Add(public.Prover, p.A)
	return lhs.Equal(rhs)
}

func challenge(hash *hash.Hash, public Public, commitment *Commitment) *saferith.Int {
	_ = hash.WriteAny(public.Aux, public.Prover, public.K,
		commitment.S, commitment.A, commitment.C)
	return sample.IntervalScalar(hash.Digest())
}
