// Package zkaffg implements the proof Π_aff-g used during the
// multiplicative-to-additive conversion: the prover knows x ∈ ±2ˡ and
// y ∈ ±2ˡ' such that
//
//	D = (x ⊙ C) ⊕ Enc₀(y; ρ),
//	Y = Enc₁(y; ρy),
//	X = x⋅G,
//
// where C is a ciphertext under the verifier's key N₀, Y is under the
// prover's key N₁, and X is a point on the curve.
package zkaffg

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
	// Kv is a ciphertext encrypted with Verifier's public key
	Kv *paillier.Ciphertext
	// Dv = (x ⊙ Kv) ⊕ Enc₀(y; ρ)
	Dv *paillier.Ciphertext
	// Fp = Enc₁(y; ρy)
	Fp *paillier.Ciphertext
	// Xp = x⋅G
	Xp *curve.Point

	Prover   *paillier.PublicKey
	Verifier *paillier.PublicKey
	Aux      *pedersen.Parameters
}

type Private struct {
	// X = x ∈ ±2ˡ
	X *saferith.Int
	// Y = y ∈ ±2ˡ'
	Y *saferith.Int
	// Rho = ρ, the nonce of Dv under N₀
	Rho *saferith.Nat
	// RhoY = ρy, the nonce of Fp under N₁
	RhoY *saferith.Nat
}

type Commitment struct {
	// A = (α ⊙ Kv) ⊕ Enc₀(β; r)
	A *paillier.Ciphertext
	// Bx = α⋅G
	Bx *curve.Point
	// By = Enc₁(β; ry)
	By *paillier.Ciphertext
	// E = sᵃ tᵞ (mod N)
	E *saferith.Nat
	// S = sˣ tᵐ (mod N)
	S *saferith.Nat
	// F = sᵇ tᵟ (mod N)
	F *saferith.Nat
	// T = sʸ tᵘ (mod N)
	T *saferith.Nat
}

type Proof struct {
	*Commitment
	// Z1 = α + e⋅x
	Z1 *saferith.Int
	// Z2 = β + e⋅y
	Z2 *saferith.Int
	// Z3 = γ + e⋅m
	Z3 *saferith.Int
	// Z4 = δ + e⋅μ
	Z4 *saferith.Int
	// W = r⋅ρᵉ (mod N₀)
	W *saferith.Nat
	// Wy = ry⋅ρyᵉ (mod N₁)
	Wy *saferith.Nat
}

// IsValid performs the cheap well-formedness checks on the proof.
func (p *Proof) IsValid(public Public) bool {
	if p == nil || p.Commitment == nil {
		return false
	}
	if !public.Verifier.ValidateCiphertexts(p.A) {
		return false
	}
	if !public.Prover.ValidateCiphertexts(p.By) {
		return false
	}
	if !arith.IsValidNatModN(public.Prover.N(), p.Wy) {
		return false
	}
	if !arith.IsValidNatModN(public.Verifier.N(), p.W) {
		return false
	}
	if p.Bx == nil {
		return false
	}
	return true
}

// NewProof generates a proof for the affine transformation
// Dv = (x ⊙ Kv) ⊕ Enc₀(y; ρ), with x committed on the curve as Xp.
func NewProof(hash *hash.Hash, public Public, private Private) *Proof {
	N0 := public.Verifier.N()
	N1 := public.Prover.N()

	alpha := sample.IntervalLEps(rand.Reader)
	beta := sample.IntervalLPrimeEps(rand.Reader)

	rho := sample.UnitModN(rand.Reader, N0)
	rhoY := sample.UnitModN(rand.Reader, N1)

	gamma := sample.IntervalLEpsN(rand.Reader)
	m := sample.IntervalLN(rand.Reader)
	delta := sample.IntervalLEpsN(rand.Reader)
	mu := sample.IntervalLN(rand.Reader)

	// A = (α ⊙ Kv) ⊕ Enc₀(β; rho)
	A := public.Kv.Clone().Mul(public.Verifier, alpha)
	A.Add(public.Verifier, public.Verifier.EncWithNonce(beta, rho))

	commitment := &Commitment{
		A:  A,
		Bx: curve.FromInt(alpha).ActOnBase(),
		By: public.Prover.EncWithNonce(beta, rhoY),
		E:  public.Aux.Commit(alpha, gamma),
		S:  public.Aux.Commit(private.X, m),
		F:  public.Aux.Commit(beta, delta),
		T:  public.Aux.Commit(private.Y, mu),
	}

	e := challenge(hash, public, commitment)

	// z₁ = α + e⋅x
	z1 := new(saferith.Int).Mul(e, private.X, -1)
	z1.Add(z1, alpha, -1)
	// z₂ = β + e⋅y
	z2 := new(saferith.Int).Mul(e, private.Y, -1)
	z2.Add(z2, beta, -1)
	// z₃ = γ + e⋅m
	z3 := new(saferith.Int).Mul(e, m, -1)
	z3.Add(z3, gamma, -1)
	// z₄ = δ + e⋅μ
	z4 := new(saferith.Int).Mul(e, mu, -1)
	z4.Add(z4, delta, -1)
	// w = rho⋅ρᵉ (mod N₀)
	w := new(saferith.Nat).ExpI(private.Rho, e, N0)
	w.ModMul(w, rho, N0)
	// wy = rhoY⋅ρyᵉ (mod N₁)
	wY := new(saferith.Nat).ExpI(private.RhoY, e, N1)
	wY.ModMul(wY, rhoY, N1)

	return &Proof{
		Commitment: commitment,
		Z1:         z1,
		Z2:         z2,
		Z3:         z3,
		Z4:         z4,
		W:          w,
		Wy:         wY,
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
	if !arith.IsInIntervalLPrimeEps(p.Z2) {
		return false
	}

	e := challenge(hash, public, p.Commitment)

	// sᶻ¹ tᶻ³ ≡ E⋅Sᵉ (mod N)
	if !public.Aux.Verify(p.Z1, p.Z3, e, p.E, p.S) {
		return false
	}

	// sᶻ² tᶻ⁴ ≡ F⋅Tᵉ (mod N)
	if !public.Aux.Verify(p.Z2, p.Z4, e, p.F, p.T) {
		return false
	}

	// (z₁ ⊙ Kv) ⊕ Enc₀(z₂;w) ≡ A ⊕ (e ⊙ Dv) (mod N₀²)
	{
		lhs := public.Kv.Clone().Mul(public.Verifier, p.Z1)
		lhs.Add(public.Verifier, public.Verifier.EncWithNonce(p.Z2, p.W))
		rhs := public.Dv.Clone().Mul(public.Verifier, e).Add(public.Verifier, p.A)
		if !lhs.Equal(rhs) {
			return false
		}
	}

	// z₁⋅G ≡ Bx + e⋅Xp
	{
		lhs := curve.FromInt(p.Z1).ActOnBase()
		rhs := curve.FromInt(e).Act(public.Xp)
		rhs.Add(rhs, p.Bx)
		if !lhs.Equal(rhs) {
			return false
		}
	}

	// Enc₁(z₂; wy) ≡ By ⊕ (e ⊙ Fp) (mod N₁²)
	{
		lhs := public.Prover.EncWithNonce(p.Z2, p.Wy)
		rhs := public.Fp.Clone().Mul(public.Prover, e).Add(public.Prover, p.By)
		if !lhs.Equal(rhs) {
			return false
		}
	}

	return true
}

func challenge(hash *hash.Hash, public Public, commitment *Commitment) *saferith.Int {
	_ = hash.WriteAny(public.Aux, public.Prover, public.Verifier,
		public.Kv, public.Dv, public.Fp, public.Xp,
		commitment.A, commitment.Bx, commitment.By,
		commitment.E, commitment.S, commitment.F, commitment.T)
	return sample.IntervalScalar(hash.Digest())
}
