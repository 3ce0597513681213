package curve

import (
	"crypto/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomScalar(t *testing.T) *Scalar {
	t.Helper()
	var buf [32]byte
	_, err := rand.Read(buf[:])
	require.NoError(t, err)
	return NewScalar().SetBytes(buf[:])
}

func TestScalarBaseMultMatchesReference(t *testing.T) {
	for i := 0; i < 10; i++ {
		k := randomScalar(t)
		if k.IsZero() {
			continue
		}

		P := k.ActOnBase()

		priv := secp256k1.PrivKeyFromBytes(k.Bytes())
		expected := priv.PubKey()
		require.Equal(t, expected.SerializeUncompressed(), P.UncompressedBytes())
	}
}

func TestPointAddInverseIsIdentity(t *testing.T) {
	k := randomScalar(t)
	P := k.ActOnBase()
	negP := NewIdentityPoint().Negate(P)

	sum := NewIdentityPoint().Add(P, negP)
	assert.True(t, sum.IsIdentity())

	// adding the identity is a no-op
	Q := NewIdentityPoint().Add(P, sum)
	assert.True(t, Q.Equal(P))
}

func TestScalarArithmetic(t *testing.T) {
	a := randomScalar(t)
	b := randomScalar(t)

	// (a + b) - b = a
	sum := NewScalar().Add(a, b)
	diff := NewScalar().Subtract(sum, b)
	assert.True(t, diff.Equal(a))

	// a ⋅ a⁻¹ = 1
	if !a.IsZero() {
		inv := NewScalar().Invert(a)
		one := NewScalar().Multiply(a, inv)
		assert.True(t, one.Equal(NewScalar().SetUInt32(1)))
	}

	// a + (-a) = 0
	neg := NewScalar().Negate(a)
	zero := NewScalar().Add(a, neg)
	assert.True(t, zero.IsZero())
}

func TestScalarActDistributes(t *testing.T) {
	a := randomScalar(t)
	b := randomScalar(t)

	// (a+b)⋅G = a⋅G + b⋅G
	lhs := NewScalar().Add(a, b).ActOnBase()
	rhs := NewIdentityPoint().Add(a.ActOnBase(), b.ActOnBase())
	assert.True(t, lhs.Equal(rhs))

	// a⋅(b⋅G) = (a⋅b)⋅G
	lhs = a.Act(b.ActOnBase())
	rhs = NewScalar().Multiply(a, b).ActOnBase()
	assert.True(t, lhs.Equal(rhs))
}

func TestFromInt(t *testing.T) {
	k := randomScalar(t)

	// MakeInt followed by FromInt is the identity
	i := MakeInt(k)
	assert.True(t, FromInt(i).Equal(k))

	// a negative integer maps to the negated scalar
	neg := new(saferith.Int).SetInt(i).Neg(1)
	assert.True(t, FromInt(neg).Equal(NewScalar().Negate(k)))
}

func TestScalarSetNatReduces(t *testing.T) {
	// q + 1 must reduce to 1
	qPlusOne := new(saferith.Nat).Add(Order().Nat(), new(saferith.Nat).SetUint64(1), -1)
	s := NewScalar().SetNat(qPlusOne)
	assert.True(t, s.Equal(NewScalar().SetUInt32(1)))
}

func TestPointMarshalRoundTrip(t *testing.T) {
	k := randomScalar(t)
	P := k.ActOnBase()

	data, err := P.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 33)

	Q := NewIdentityPoint()
	require.NoError(t, Q.UnmarshalBinary(data))
	assert.True(t, P.Equal(Q))
	assert.True(t, Q.Equal(P))

	// the decoded point must re-serialize identically, parity bit included
	data2, err := Q.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, data2)

	// and behave like the original in arithmetic
	assert.True(t, NewIdentityPoint().Subtract(Q, P).IsIdentity())
	two := NewScalar().SetUInt32(2)
	assert.True(t, two.Act(Q).Equal(NewIdentityPoint().Add(P, P)))

	// identity round-trips as well
	id := NewIdentityPoint()
	data, err = id.MarshalBinary()
	require.NoError(t, err)
	Q = NewIdentityPoint()
	require.NoError(t, Q.UnmarshalBinary(data))
	assert.True(t, Q.IsIdentity())
}

func TestScalarMarshalRoundTrip(t *testing.T) {
	k := randomScalar(t)
	data, err := k.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 32)

	s := NewScalar()
	require.NoError(t, s.UnmarshalBinary(data))
	assert.True(t, k.Equal(s))

	// a non-reduced encoding must be rejected
	bad := Order().Nat().Bytes()
	assert.Error(t, NewScalar().UnmarshalBinary(bad))
}

func TestIsOverHalfOrder(t *testing.T) {
	one := NewScalar().SetUInt32(1)
	assert.False(t, one.IsOverHalfOrder())

	negOne := NewScalar().Negate(one)
	assert.True(t, negOne.IsOverHalfOrder())
}
