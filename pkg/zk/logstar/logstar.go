// Package zklogstar implements the proof Π_log*: the prover knows x ∈ ±2ˡ
// and ρ such that
//
//	C = Enc₀(x; ρ),
//	X = x⋅G',
//
// where G' is the curve generator unless an explicit base point is given.
package zklogstar

import (
	"crypto/rand"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/pkg/hash"
	"github.com/quorumsafe/tecdsa/pkg/math/arith"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
)

type Public struct {
	// C = Enc₀(x;ρ)
	C *paillier.Ciphertext
	// X = x⋅G'
	X *curve.Point
	// G is the base point of the discrete log. If nil, the curve generator
	// is used.
	G *curve.Point

	Prover *paillier.PublicKey
	Aux    *pedersen.Parameters
}

type Private struct {
	// X = x ∈ ±2ˡ, the plaintext of C
	X *saferith.Int
	// Rho = ρ, the nonce of C
	Rho *saferith.Nat
}

type Commitment struct {
	// S = sˣ tᵘ (mod N)
	S *saferith.Nat
	// A = Enc₀(α; r)
	A *paillier.Ciphertext
	// Y = α⋅G'
	Y *curve.Point
	// D = sᵃ tᵞ (mod N)
	D *saferith.Nat
}

type Proof struct {
	*Commitment
	// Z1 = α + e⋅x
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
	if p.Y == nil {
		return false
	}
	return true
}

// NewProof generates a proof that the plaintext of public.C lies in ±2ˡ
// and matches the discrete log of public.X with respect to the base.
func NewProof(hash *hash.Hash, public Public, private Private) *Proof {
	N := public.Prover.N()
	base := public.G
	if base == nil {
		base = curve.NewBasePoint()
	}

	alpha := sample.IntervalLEps(rand.Reader)
	r := sample.UnitModN(rand.Reader, N)
	mu := sample.IntervalLN(rand.Reader)
	gamma := sample.IntervalLEpsN(rand.Reader)

	commitment := &Commitment{
		S: public.Aux.Commit(private.X, mu),
		A: public.Prover.EncWithNonce(alpha, r),
		Y: curve.FromInt(alpha).Act(base),
		D: public.Aux.Commit(alpha, gamma),
	}

	e := challenge(hash, public, commitment)

	// z₁ = α + e⋅x
	z1 := new(saferith.Int).Mul(e, private.X, -1)
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

	base := public.G
	if base == nil {
		base = curve.NewBasePoint()
	}

	e := challenge(hash, public, p.Commitment)

	// sᶻ¹ tᶻ³ ≡ D⋅Sᵉ (mod N)
	if !public.Aux.Verify(p.Z1, p.Z3, e, p.D, p.S) {
		return false
	}

	// Enc₀(z₁;z₂) ≡ A ⊕ (e ⊙ C) (mod N₀²)
	{
		lhs := public.Prover.EncWithNonce(p.Z1, p.Z2)
		rhs := public.C.Clone().Mul(public.Prover, e).Add(public.Prover, p.A)
		if !lhs.Equal(rhs) {
			return false
		}
	}

	// z₁⋅G' ≡ Y + e⋅X
	{
		lhs := curve.FromInt(p.Z1).Act(base)
		rhs := curve.FromInt(e).Act(public.X)
		rhs.Add(rhs, p.Y)
		if !lhs.Equal(rhs) {
			return false
		}
	}

	return true
}

func challenge(hash *hash.Hash, public Public, commitment *Commitment) *saferith.Int {
	base := public.G
	if base == nil {
		base = curve.NewBasePoint()
	}
	_ = hash.WriteAny(public.Aux, public.Prover, public.C, public.X, base,
		commitment.S, commitment.A, commitment.Y, commitment.D)
	return sample.IntervalScalar(hash.Digest())
}
