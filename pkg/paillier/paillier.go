// Package paillier implements the additively homomorphic Paillier
// cryptosystem over ℤ_{N²}, with N the product of two safe Blum primes.
//
// Plaintexts live in the symmetric range ±(N-1)/2; decryption returns the
// representative in that range.
package paillier

import (
	"errors"

	"github.com/quorumsafe/tecdsa/pkg/pool"
)

var (
	ErrPrimeBadLength = errors.New("prime factor is not the right length")
	ErrNotBlum        = errors.New("prime factor is not equivalent to 3 (mod 4)")
	ErrNotSafePrime   = errors.New("supposed prime factor is not a safe prime")
	ErrPrimeNil       = errors.New("prime is nil")
	ErrModulusLength  = errors.New("modulus N is not the right length")
	ErrModulusEven    = errors.New("modulus N is even")

	// ErrCiphertextInvalid is returned when a ciphertext is outside
	// [1, N²-1] or not coprime to N².
	ErrCiphertextInvalid = errors.New("paillier: invalid ciphertext")

	// ErrMessageOutOfRange reports a plaintext outside ±(N-1)/2.
	// Encrypting such a message is a programming error, so Enc panics with it.
	ErrMessageOutOfRange = errors.New("paillier: plaintext is outside of the symmetric range ±(N-1)/2")
)

// KeyGen generates a new PublicKey and its associated SecretKey.
func KeyGen(pl *pool.Pool) (pk *PublicKey, sk *SecretKey) {
	sk = NewSecretKey(pl)
	pk = sk.PublicKey
	return
}
