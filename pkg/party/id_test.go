package party

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIDs(t *testing.T) {
	ids, err := RandomIDs(rand.Reader, 10, 50)
	require.NoError(t, err)
	require.Len(t, ids, 10)
	assert.True(t, ids.Valid())
	for _, id := range ids {
		assert.NotZero(t, id)
		assert.LessOrEqual(t, int(id), 50)
	}

	_, err = RandomIDs(rand.Reader, 10, 5)
	assert.Error(t, err, "cannot pick 10 distinct ids out of 5")
}

func TestIDSliceOperations(t *testing.T) {
	ids := NewIDSlice([]ID{5, 3, 8, 1})
	assert.True(t, ids.Valid())
	assert.Equal(t, IDSlice{1, 3, 5, 8}, ids)

	assert.True(t, ids.Contains(5))
	assert.False(t, ids.Contains(4))
	assert.True(t, ids.ContainsAll(IDSlice{1, 8}))
	assert.False(t, ids.ContainsAll(IDSlice{1, 9}))

	removed := ids.Remove(3)
	assert.Equal(t, IDSlice{1, 5, 8}, removed)
	assert.Len(t, ids, 4, "Remove must not mutate the receiver")

	assert.False(t, IDSlice{3, 3, 5}.Valid())
}

func TestSampleSubset(t *testing.T) {
	ids := NewIDSlice([]ID{1, 2, 3, 4, 5, 6, 7})
	subset, err := ids.Sample(rand.Reader, 4)
	require.NoError(t, err)
	require.Len(t, subset, 4)
	assert.True(t, subset.Valid())
	assert.True(t, ids.ContainsAll(subset))

	_, err = ids.Sample(rand.Reader, 8)
	assert.Error(t, err)
}

func TestIDBytesRoundTrip(t *testing.T) {
	id := ID(513)
	assert.Equal(t, id, FromBytes(id.Bytes()))
	assert.Equal(t, "513", id.String())
}

func TestIDScalar(t *testing.T) {
	assert.False(t, ID(7).Scalar().IsZero())
}
