// Package zk holds fixed Paillier and Pedersen keys used by the proof
// tests. Generating safe Blum primes takes minutes, so the tests reuse this
// static material instead.
//
// These keys appear in a public repository: never use them outside tests.
package zk

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
)

const (
	proverPHex = "fb41a671eb74ac1692680ddb6d372729197694e8586e897d2ff60355a59bcfcfe4e4737b004d8d4c4602bb5d35a832756c1313bb18e7e6cff13f1b9e12e217c8a3b9dc5f9f03f4ae4794212118f4fd48b96be0a2ffbd34a1cd1f848d1bef4189492c4950b36caa5c819ef4db0f80cc5718062938177c55372fc7eca7b46bce27"
	proverQHex = "f1f17a59563ece1f5f0da3888eda23a91b98a7797af8e32610437fb157c9708362788c3ee8353fba407b6884463544ed120f34342188272d50f8853839bc3d7f05969a6216b212a28a47af3d31dd3d54d90dbd3895c37b41afb02ff677506b6f9ff8c4443b393ea6be87e88a263125adb6d9afb249f67b684db9d97e96c94357"

	verifierPHex = "f2da5f8e4049a2b6b182f0154f24b7fbe841153cbbfc4a2c8b5483fad75494cddff8cbb7bc650df09f0d1426181d376a3f487d8bb7a294a92a7adf6dc1e04bb457b3e125443f75f26d41b7009d203eff106a7a4a85a97296710e2be40fad14afbce44244d4c5aa0de16acea397621da3e263d38d89a3d31d62ea2a4201fb5def"
	verifierQHex = "e3244f582a1f1b22282b0d18fa4be0b26b8f23b91e9eaa98a60eee147af3c347107bbcbfa4f4772189749df7d280f428199b8b2e9171e643dd4ebc359c04969b296831a8fc363f001e3456e7f635ae07cf3235e7ccbbf845f3aff2f1bd9596eaaca02e623fe244824c0895178f135b66c9e51da09c6c04716410ff4693725f43"
)

var (
	// ProverPaillierSecret and ProverPaillierPublic are the prover's key in
	// proof tests.
	ProverPaillierSecret *paillier.SecretKey
	ProverPaillierPublic *paillier.PublicKey

	// VerifierPaillierSecret and VerifierPaillierPublic are the verifier's
	// key in proof tests.
	VerifierPaillierSecret *paillier.SecretKey
	VerifierPaillierPublic *paillier.PublicKey

	// Pedersen are commitment parameters derived from the verifier's key.
	Pedersen *pedersen.Parameters
)

func natFromHex(s string) *saferith.Nat {
	data, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return new(saferith.Nat).SetBytes(data)
}

func init() {
	ProverPaillierSecret = paillier.NewSecretKeyFromPrimes(natFromHex(proverPHex), natFromHex(proverQHex))
	ProverPaillierPublic = ProverPaillierSecret.PublicKey

	VerifierPaillierSecret = paillier.NewSecretKeyFromPrimes(natFromHex(verifierPHex), natFromHex(verifierQHex))
	VerifierPaillierPublic = VerifierPaillierSecret.PublicKey

	Pedersen, _ = VerifierPaillierSecret.GeneratePedersen()
}
