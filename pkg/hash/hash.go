// Package hash provides the domain-separated hash function with which every
// Fiat–Shamir challenge of the protocol is derived.
package hash

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/zeebo/blake3"

	"github.com/quorumsafe/tecdsa/internal/params"
)

// DigestLengthBytes is the length of Sum's output.
const DigestLengthBytes = params.SecBytes * 2 // 64

// Hash is the hash function used for deriving challenges and session-bound
// randomness. It is a wrapper around blake3, but any hash with an easily
// extendable output would work as well.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash and writes the given initial data to it.
func New(initial ...interface{}) *Hash {
	hash := &Hash{h: blake3.New()}
	if len(initial) > 0 {
		_ = hash.WriteAny(initial...)
	}
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what is
// essentially a stream of pseudo-random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current
// hash state. For a different length, use io.ReadFull(hash.Digest(), out).
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes many different data types to the hash state, each in its
// own domain.
//
// Currently supported types:
//
//   - []byte
//   - *saferith.Nat, *saferith.Int, *saferith.Modulus
//   - hash.WriterToWithDomain
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var err error
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
		case *saferith.Nat:
			if t == nil {
				return fmt.Errorf("hash.Hash: write *saferith.Nat: nil")
			}
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "Nat",
				Bytes:     t.Bytes(),
			})
		case *saferith.Int:
			if t == nil {
				return fmt.Errorf("hash.Hash: write *saferith.Int: nil")
			}
			sign := []byte{byte(t.IsNegative())}
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "Int",
				Bytes:     append(sign, t.Abs().Bytes()...),
			})
		case *saferith.Modulus:
			if t == nil {
				return fmt.Errorf("hash.Hash: write *saferith.Modulus: nil")
			}
			err = writeWithDomain(hash.h, BytesWithDomain{
				TheDomain: "Modulus",
				Bytes:     t.Bytes(),
			})
		case WriterToWithDomain:
			err = writeWithDomain(hash.h, t)
		default:
			panic(fmt.Sprintf("hash.Hash: unsupported type %T", d))
		}
		if err != nil {
			return fmt.Errorf("hash.Hash: %w", err)
		}
	}
	return nil
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}
