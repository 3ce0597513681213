package paillier_test

import (
	"crypto/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/zk"
)

var (
	paillierPublic = zk.ProverPaillierPublic
	paillierSecret = zk.ProverPaillierSecret
)

func randomInt(t *testing.T) *saferith.Int {
	t.Helper()
	return sample.IntervalL(rand.Reader)
}

func TestEncDecRoundTrip(t *testing.T) {
	m := randomInt(t)
	ct, _ := paillierPublic.Enc(m)

	dec, err := paillierSecret.Dec(ct)
	require.NoError(t, err)
	assert.True(t, m.Eq(dec) == 1, "decryption should match plaintext")
}

func TestDecNegative(t *testing.T) {
	m := new(saferith.Int).SetUint64(42).Neg(1)
	ct, _ := paillierPublic.Enc(m)

	dec, err := paillierSecret.Dec(ct)
	require.NoError(t, err)
	assert.True(t, dec.IsNegative() == 1, "plaintext should stay negative")
	assert.True(t, m.Eq(dec) == 1)
}

func TestHomomorphicAdd(t *testing.T) {
	a := randomInt(t)
	b := randomInt(t)

	ctA, _ := paillierPublic.Enc(a)
	ctB, _ := paillierPublic.Enc(b)
	ctA.Add(paillierPublic, ctB)

	expected := new(saferith.Int).Add(a, b, -1)
	dec, err := paillierSecret.Dec(ctA)
	require.NoError(t, err)
	assert.True(t, expected.Eq(dec) == 1, "decryption should be the sum of the plaintexts")
}

func TestHomomorphicMul(t *testing.T) {
	a := randomInt(t)
	k := new(saferith.Int).SetUint64(332)

	ct, _ := paillierPublic.Enc(a)
	ct.Mul(paillierPublic, k)

	expected := new(saferith.Int).Mul(a, k, -1)
	dec, err := paillierSecret.Dec(ct)
	require.NoError(t, err)
	assert.True(t, expected.Eq(dec) == 1, "decryption should be the scaled plaintext")
}

func TestDecWithRandomness(t *testing.T) {
	m := randomInt(t)
	nonce := paillierPublic.Nonce(rand.Reader)
	ct := paillierPublic.EncWithNonce(m, nonce)

	mActual, nonceActual, err := paillierSecret.DecWithRandomness(ct)
	require.NoError(t, err)
	assert.True(t, m.Eq(mActual) == 1)
	assert.True(t, nonce.Eq(nonceActual) == 1, "recovered nonce should match")
}

func TestRandomizePreservesPlaintext(t *testing.T) {
	m := randomInt(t)
	ct, _ := paillierPublic.Enc(m)
	before := ct.Clone()

	ct.Randomize(paillierPublic, nil)
	assert.False(t, ct.Equal(before), "randomization should change the ciphertext")

	dec, err := paillierSecret.Dec(ct)
	require.NoError(t, err)
	assert.True(t, m.Eq(dec) == 1)
}

func TestDecInvalidCiphertext(t *testing.T) {
	// 0 is not a unit mod N²
	ct := &paillier.Ciphertext{}
	require.NoError(t, ct.UnmarshalBinary(make([]byte, 10)))
	_, err := paillierSecret.Dec(ct)
	assert.ErrorIs(t, err, paillier.ErrCiphertextInvalid)
}

func TestEncPanicsOutOfRange(t *testing.T) {
	tooBig := new(saferith.Int).SetNat(paillierPublic.N().Nat())
	assert.Panics(t, func() { paillierPublic.Enc(tooBig) })
}

func TestValidatePrime(t *testing.T) {
	require.NoError(t, paillier.ValidatePrime(paillierSecret.P()))
	require.NoError(t, paillier.ValidatePrime(paillierSecret.Q()))

	assert.Error(t, paillier.ValidatePrime(nil))

	// too short
	small := new(saferith.Nat).SetUint64(11)
	assert.ErrorIs(t, paillier.ValidatePrime(small), paillier.ErrPrimeBadLength)
}

func TestValidateN(t *testing.T) {
	require.NoError(t, paillier.ValidateN(paillierPublic.N()))

	even := saferith.ModulusFromNat(new(saferith.Nat).SetUint64(1 << 10))
	assert.Error(t, paillier.ValidateN(even))
}

func TestCiphertextMarshalRoundTrip(t *testing.T) {
	m := randomInt(t)
	ct, _ := paillierPublic.Enc(m)

	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	ct2 := &paillier.Ciphertext{}
	require.NoError(t, ct2.UnmarshalBinary(data))
	assert.True(t, ct.Equal(ct2))
}
