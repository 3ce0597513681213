package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/internal/test"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/protocols/cmp/config"
)

func TestValidate(t *testing.T) {
	configs, ids, err := test.GenerateConfigs(3, 1)
	require.NoError(t, err)

	for _, id := range ids {
		require.NoError(t, configs[id].Validate())
	}

	// a tampered share must be caught
	c := configs[ids[0]]
	good := c.ECDSA
	c.ECDSA = curve.NewScalar().Add(good, curve.NewScalar().SetUInt32(1))
	assert.Error(t, c.Validate())
	c.ECDSA = good
	require.NoError(t, c.Validate())
}

func TestPublicPointAgreement(t *testing.T) {
	configs, ids, err := test.GenerateConfigs(4, 2)
	require.NoError(t, err)

	X := configs[ids[0]].PublicPoint()
	assert.False(t, X.IsIdentity())
	for _, id := range ids[1:] {
		assert.True(t, configs[id].PublicPoint().Equal(X), "all parties must derive the same public key")
	}
}

func TestCanSign(t *testing.T) {
	configs, ids, err := test.GenerateConfigs(4, 2)
	require.NoError(t, err)
	c := configs[ids[0]]

	assert.True(t, c.CanSign(ids))
	assert.True(t, c.CanSign(ids[:3]))
	assert.False(t, c.CanSign(ids[:2]), "too few signers")
	assert.False(t, c.CanSign(ids[1:]), "own id missing")
}

func TestMarshalRoundTrip(t *testing.T) {
	configs, ids, err := test.GenerateConfigs(3, 1)
	require.NoError(t, err)
	c := configs[ids[0]]

	data, err := c.MarshalBinary()
	require.NoError(t, err)

	c2 := &config.Config{}
	require.NoError(t, c2.UnmarshalBinary(data))
	require.NoError(t, c2.Validate())

	assert.Equal(t, c.ID, c2.ID)
	assert.Equal(t, c.Threshold, c2.Threshold)
	assert.Equal(t, c.SSID, c2.SSID)
	assert.True(t, c.ECDSA.Equal(c2.ECDSA))
	assert.True(t, c.PublicPoint().Equal(c2.PublicPoint()))
	for _, id := range ids {
		assert.True(t, c.Public[id].ECDSA.Equal(c2.Public[id].ECDSA))
	}
}
