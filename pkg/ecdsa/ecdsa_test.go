package ecdsa

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	refecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
)

// makeSignature produces a plain single-party ECDSA signature:
// R = k⁻¹⋅G, s = k⋅(m + r⋅x).
func makeSignature(m *curve.Scalar, x *curve.Scalar) (*Signature, *curve.Point) {
	k := sample.ScalarUnit(rand.Reader)
	kInv := curve.NewScalar().Invert(k)
	R := kInv.ActOnBase()
	r := R.XScalar()

	// s = k⋅(m + r⋅x)
	s := curve.NewScalar().MultiplyAdd(r, x, m)
	s.Multiply(s, k)

	return &Signature{R: R, S: s}, x.ActOnBase()
}

func TestSignatureVerify(t *testing.T) {
	m := sample.Scalar(rand.Reader)
	x := sample.ScalarUnit(rand.Reader)

	sig, X := makeSignature(m, x)
	assert.True(t, sig.Verify(X, m))

	// wrong message
	assert.False(t, sig.Verify(X, sample.Scalar(rand.Reader)))

	// wrong key
	assert.False(t, sig.Verify(curve.NewBasePoint(), m))
}

func TestSignatureMatchesReference(t *testing.T) {
	digest := sha256.Sum256([]byte("hello"))
	m := curve.NewScalar().SetHash(digest[:])
	x := sample.ScalarUnit(rand.Reader)

	sig, X := makeSignature(m, x)
	sig.Normalize()
	require.True(t, sig.Verify(X, m))

	// the reference implementation must agree
	var r, s secp256k1.ModNScalar
	require.Zero(t, r.SetByteSlice(sig.R.XScalar().Bytes()))
	require.Zero(t, s.SetByteSlice(sig.S.Bytes()))
	refSig := refecdsa.NewSignature(&r, &s)

	pub, err := secp256k1.ParsePubKey(X.UncompressedBytes())
	require.NoError(t, err)
	assert.True(t, refSig.Verify(digest[:], pub))
}

func TestNormalizeForcesLowS(t *testing.T) {
	m := sample.Scalar(rand.Reader)
	x := sample.ScalarUnit(rand.Reader)

	sig, X := makeSignature(m, x)
	high := sig.S.IsOverHalfOrder()
	sig.Normalize()
	assert.False(t, sig.S.IsOverHalfOrder())
	assert.True(t, sig.Verify(X, m), "normalization must preserve validity (was high: %v)", high)
}

func TestSigBytes(t *testing.T) {
	m := sample.Scalar(rand.Reader)
	x := sample.ScalarUnit(rand.Reader)
	sig, _ := makeSignature(m, x)

	out := sig.SigBytes()
	require.Len(t, out, 64)
	assert.Equal(t, sig.R.XScalar().Bytes(), out[:32])
	assert.Equal(t, sig.S.Bytes(), out[32:])
}

func TestPreSignatureShare(t *testing.T) {
	// single party: χ = x⋅k, R = k⁻¹⋅G, so the share is a full signature
	x := sample.ScalarUnit(rand.Reader)
	k := sample.ScalarUnit(rand.Reader)
	m := sample.Scalar(rand.Reader)

	R := curve.NewScalar().Invert(k).ActOnBase()
	pre := &PreSignature{
		R:        R,
		KShare:   k,
		ChiShare: curve.NewScalar().Multiply(x, k),
	}
	require.NoError(t, pre.Validate())

	sigma := pre.SignatureShare(m)
	sig := &Signature{R: R, S: sigma}
	sig.Normalize()
	assert.True(t, sig.Verify(x.ActOnBase(), m))
}

func TestPreSignatureValidate(t *testing.T) {
	assert.Error(t, (&PreSignature{}).Validate())
	assert.Error(t, (&PreSignature{
		R:        curve.NewIdentityPoint(),
		KShare:   curve.NewScalar().SetUInt32(1),
		ChiShare: curve.NewScalar().SetUInt32(1),
	}).Validate())
}
