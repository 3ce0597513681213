package zklogstar

import (
	"crypto/rand"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/pkg/hash"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/zk"
)

func TestLogStar(t *testing.T) {
	verifier := zk.Pedersen
	prover := zk.ProverPaillierPublic

	x := sample.IntervalL(rand.Reader)
	C, rho := prover.Enc(x)
	X := curve.FromInt(x).ActOnBase()

	public := Public{
		C:      C,
		X:      X,
		Prover: prover,
		Aux:    verifier,
	}
	proof := NewProof(hash.New(), public, Private{
		X:   x,
		Rho: rho,
	})
	assert.True(t, proof.Verify(hash.New(), public))

	out, err := cbor.Marshal(proof)
	require.NoError(t, err, "failed to marshal proof")
	proof2 := &Proof{}
	require.NoError(t, cbor.Unmarshal(out, proof2), "failed to unmarshal proof")
	out2, err := cbor.Marshal(proof2)
	require.NoError(t, err, "failed to marshal 2nd proof")
	proof3 := &Proof{}
	require.NoError(t, cbor.Unmarshal(out2, proof3), "failed to unmarshal 2nd proof")

	assert.True(t, proof3.Verify(hash.New(), public))
}

func TestLogStarCustomBase(t *testing.T) {
	verifier := zk.Pedersen
	prover := zk.ProverPaillierPublic

	// G' = g⋅G for a random g
	base := sample.Scalar(rand.Reader).ActOnBase()

	x := sample.IntervalL(rand.Reader)
	C, rho := prover.Enc(x)
	X := curve.FromInt(x).Act(base)

	public := Public{
		C:      C,
		X:      X,
		G:      base,
		Prover: prover,
		Aux:    verifier,
	}
	proof := NewProof(hash.New(), public, Private{X: x, Rho: rho})
	assert.True(t, proof.Verify(hash.New(), public))

	// the same statement over the default base must fail
	badPublic := public
	badPublic.G = nil
	assert.False(t, proof.Verify(hash.New(), badPublic))
}

func TestLogStarRejectsWrongPoint(t *testing.T) {
	verifier := zk.Pedersen
	prover := zk.ProverPaillierPublic

	x := sample.IntervalL(rand.Reader)
	C, rho := prover.Enc(x)

	public := Public{
		C:      C,
		X:      curve.NewBasePoint(),
		Prover: prover,
		Aux:    verifier,
	}
	proof := NewProof(hash.New(), public, Private{X: x, Rho: rho})
	assert.False(t, proof.Verify(hash.New(), public))
}

func TestChallengeDeterminism(t *testing.T) {
	verifier := zk.Pedersen
	prover := zk.ProverPaillierPublic

	x := sample.IntervalL(rand.Reader)
	C, rho := prover.Enc(x)
	X := curve.FromInt(x).ActOnBase()

	public := Public{C: C, X: X, Prover: prover, Aux: verifier}
	proof := NewProof(hash.New(), public, Private{X: x, Rho: rho})

	e1 := challenge(hash.New(), public, proof.Commitment)
	e2 := challenge(hash.New(), public, proof.Commitment)
	assert.True(t, e1.Eq(e2) == 1, "identical inputs must give identical challenges")

	e3 := challenge(hash.New([]byte("other party")), public, proof.Commitment)
	assert.False(t, e3.Eq(e1) == 1, "different hash states must give different challenges")
}
