package keygen_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/internal/test"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/polynomial"
	"github.com/quorumsafe/tecdsa/protocols/cmp/keygen"
)

func TestKeygenConfigsValid(t *testing.T) {
	configs, ids, err := test.GenerateConfigs(5, 2)
	require.NoError(t, err)
	require.Len(t, configs, 5)

	X := configs[ids[0]].PublicPoint()
	for _, id := range ids {
		c := configs[id]
		assert.Equal(t, id, c.ID)
		require.NoError(t, c.Validate())
		assert.True(t, c.PublicPoint().Equal(X))
	}
}

func TestKeygenRejectsBadThreshold(t *testing.T) {
	_, err := keygen.KeygenWithKeys(3, 3, 10, test.PaillierKeys(3))
	assert.Error(t, err, "threshold+1 > n must fail")

	_, err = keygen.KeygenWithKeys(3, -1, 10, test.PaillierKeys(3))
	assert.Error(t, err)
}

// Any threshold+1 shares must reconstruct the same secret key.
func TestKeyReconstruction(t *testing.T) {
	configs, ids, err := test.GenerateConfigs(5, 2)
	require.NoError(t, err)
	X := configs[ids[0]].PublicPoint()

	for trial := 0; trial < 4; trial++ {
		quorum, err := ids.Sample(rand.Reader, 3)
		require.NoError(t, err)

		secret := curve.NewScalar()
		for id, l := range polynomial.Lagrange(quorum) {
			secret.Add(secret, curve.NewScalar().Multiply(l, configs[id].ECDSA))
		}
		assert.True(t, secret.ActOnBase().Equal(X), "reconstructed key must match the public point")
	}
}
