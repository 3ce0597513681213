package zkenc

import (
	"crypto/rand"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumsafe/tecdsa/pkg/hash"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/zk"
)

func TestEnc(t *testing.T) {
	verifier := zk.Pedersen
	prover := zk.ProverPaillierPublic

	k := sample.IntervalL(rand.Reader)
	K, rho := prover.Enc(k)
	public := Public{
		K:      K,
		Prover: prover,
		Aux:    verifier,
	}

	proof := NewProof(hash.New(), public, Private{
		K:   k,
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

func TestEncRejectsTampered(t *testing.T) {
	verifier := zk.Pedersen
	prover := zk.ProverPaillierPublic

	k := sample.IntervalL(rand.Reader)
	K, rho := prover.Enc(k)
	public := Public{
		K:      K,
		Prover: prover,
		Aux:    verifier,
	}
	proof := NewProof(hash.New(), public, Private{K: k, Rho: rho})

	out, err := cbor.Marshal(proof)
	require.NoError(t, err)

	// flipping any single byte must break the proof
	for _, i := range []int{len(out) / 4, len(out) / 2, len(out) - 1} {
		tampered := make([]byte, len(out))
		copy(tampered, out)
		tampered[i] ^= 1

		bad := &Proof{}
		if err := cbor.Unmarshal(tampered, bad); err != nil {
			continue
		}
		assert.False(t, bad.Verify(hash.New(), public), "tampered proof at byte %d verified", i)
	}
}

func TestEncWrongHashStateFails(t *testing.T) {
	verifier := zk.Pedersen
	prover := zk.ProverPaillierPublic

	k := sample.IntervalL(rand.Reader)
	K, rho := prover.Enc(k)
	public := Public{
		K:      K,
		Prover: prover,
		Aux:    verifier,
	}
	proof := NewProof(hash.New([]byte("session a")), public, Private{K: k, Rho: rho})

	assert.True(t, proof.Verify(hash.New([]byte("session a")), public))
	assert.False(t, proof.Verify(hash.New([]byte("session b")), public),
		"proof bound to one session should not verify in another")
}
