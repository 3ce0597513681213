package polynomial

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/party"
)

func TestEvaluateConstant(t *testing.T) {
	secret := sample.Scalar(rand.Reader)
	f := NewPolynomial(3, secret)

	assert.True(t, f.Constant().Equal(secret))
	assert.Equal(t, 3, f.Degree())
	assert.Panics(t, func() { f.Evaluate(curve.NewScalar()) })
}

func TestLagrangeReconstructs(t *testing.T) {
	for _, tc := range []struct{ n, threshold int }{
		{3, 1},
		{5, 2},
		{7, 5},
	} {
		secret := sample.Scalar(rand.Reader)
		f := NewPolynomial(tc.threshold, secret)

		ids, err := party.RandomIDs(rand.Reader, tc.n, 10*tc.n)
		require.NoError(t, err)

		shares := make(map[party.ID]*curve.Scalar, tc.n)
		for _, id := range ids {
			shares[id] = f.Evaluate(id.Scalar())
		}

		// any subset of size threshold+1 reconstructs the secret
		subset, err := ids.Sample(rand.Reader, tc.threshold+1)
		require.NoError(t, err)
		coefficients := Lagrange(subset)

		reconstructed := curve.NewScalar()
		for _, id := range subset {
			reconstructed.Add(reconstructed, curve.NewScalar().Multiply(coefficients[id], shares[id]))
		}
		assert.True(t, reconstructed.Equal(secret), "n=%d threshold=%d", tc.n, tc.threshold)
	}
}

func TestLagrangeSumsToOneOnConstant(t *testing.T) {
	// interpolating f(X) = c at 0 gives c back, so Σ λᵢ = 1
	ids, err := party.RandomIDs(rand.Reader, 4, 100)
	require.NoError(t, err)
	coefficients := Lagrange(ids)

	sum := curve.NewScalar()
	for _, l := range coefficients {
		sum.Add(sum, l)
	}
	assert.True(t, sum.Equal(curve.NewScalar().SetUInt32(1)))
}
