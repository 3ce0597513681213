package hash

import (
	"crypto/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDeterministic(t *testing.T) {
	h1 := New([]byte("hello"))
	h2 := New([]byte("hello"))
	assert.Equal(t, h1.Sum(), h2.Sum())

	h3 := New([]byte("world"))
	assert.NotEqual(t, h1.Sum(), h3.Sum())
}

func TestDomainSeparation(t *testing.T) {
	// writing "ab" then "c" must differ from "a" then "bc"
	h1 := New()
	require.NoError(t, h1.WriteAny([]byte("ab"), []byte("c")))
	h2 := New()
	require.NoError(t, h2.WriteAny([]byte("a"), []byte("bc")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestWriteAnyNumericTypes(t *testing.T) {
	n := new(saferith.Nat).SetUint64(42)
	i := new(saferith.Int).SetUint64(42)
	iNeg := new(saferith.Int).SetUint64(42).Neg(1)
	m := saferith.ModulusFromNat(new(saferith.Nat).SetUint64(43))

	h := New()
	require.NoError(t, h.WriteAny(n, i, iNeg, m))

	// sign must be part of the digest
	h1 := New()
	require.NoError(t, h1.WriteAny(i))
	h2 := New()
	require.NoError(t, h2.WriteAny(iNeg))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestCloneForksState(t *testing.T) {
	h := New([]byte("prefix"))
	h1 := h.Clone()
	h2 := h.Clone()

	require.NoError(t, h1.WriteAny([]byte("a")))
	require.NoError(t, h2.WriteAny([]byte("b")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())

	// the original state is unchanged
	assert.Equal(t, New([]byte("prefix")).Sum(), h.Sum())
}

func TestDigestIsUnbounded(t *testing.T) {
	h := New([]byte("seed"))
	r := h.Digest()
	buf := make([]byte, 200)
	_, err := r.Read(buf)
	require.NoError(t, err)

	// same state gives the same stream
	buf2 := make([]byte, 200)
	_, err = New([]byte("seed")).Digest().Read(buf2)
	require.NoError(t, err)
	assert.Equal(t, buf, buf2)
}

func TestSumLength(t *testing.T) {
	var seed [32]byte
	_, err := rand.Read(seed[:])
	require.NoError(t, err)
	assert.Len(t, New(seed[:]).Sum(), 64)
}
