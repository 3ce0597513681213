package pedersen_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
	"github.com/quorumsafe/tecdsa/pkg/zk"
)

func TestCommitVerify(t *testing.T) {
	params := zk.Pedersen

	a := sample.IntervalL(rand.Reader)
	b := sample.IntervalLN(rand.Reader)
	e := sample.IntervalScalar(rand.Reader)
	x := sample.IntervalL(rand.Reader)
	y := sample.IntervalLN(rand.Reader)

	// S = sˣ tʸ, T = sᵃ tᵇ
	S := params.Commit(x, y)
	T := params.Commit(a, b)

	// then s^(a+ex) t^(b+ey) = T⋅Sᵉ
	z1 := a.Clone().Add(a, e.Clone().Mul(e, x, -1), -1)
	z2 := b.Clone().Add(b, e.Clone().Mul(e, y, -1), -1)
	assert.True(t, params.Verify(z1, z2, e, T, S))

	// perturbing any input must fail
	assert.False(t, params.Verify(z2, z1, e, T, S))
	assert.False(t, params.Verify(z1, z2, e, S, T))
	badE := e.Clone().Add(e, e.Clone().SetUint64(1), -1)
	assert.False(t, params.Verify(z1, z2, badE, T, S))
}

func TestVerifyRejectsNil(t *testing.T) {
	params := zk.Pedersen
	e := sample.IntervalScalar(rand.Reader)
	assert.False(t, params.Verify(nil, e, e, params.S(), params.T()))
}

func TestValidateParameters(t *testing.T) {
	params := zk.Pedersen
	require.NoError(t, pedersen.ValidateParameters(params.N(), params.S(), params.T()))

	assert.ErrorIs(t, pedersen.ValidateParameters(nil, params.S(), params.T()), pedersen.ErrNilFields)
	assert.ErrorIs(t, pedersen.ValidateParameters(params.N(), params.S(), params.S()), pedersen.ErrSEqualT)
}
