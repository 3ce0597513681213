// Package config defines the precomputation material each party holds after
// key generation, and its validation and serialization.
package config

import (
	"errors"
	"fmt"

	"github.com/quorumsafe/tecdsa/internal/types"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/polynomial"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
)

// Public holds the public material associated to one party.
type Public struct {
	// ECDSA = xᵢ⋅G is the party's public key share.
	ECDSA *curve.Point
	// Paillier is the party's Paillier encryption key.
	Paillier *paillier.PublicKey
	// Pedersen are the party's auxiliary commitment parameters, derived
	// from its own Paillier modulus.
	Pedersen *pedersen.Parameters
}

// Config holds all the information a party requires to participate in
// presigning and signing. It is created once during key generation and is
// read-only afterwards.
type Config struct {
	// ID is this party's identifier.
	ID party.ID
	// Threshold is the maximum number of corrupted parties tolerated;
	// any Threshold+1 parties can produce a signature.
	Threshold int
	// SSID binds all sessions derived from this key generation.
	SSID types.SSID
	// ECDSA = xᵢ is this party's Shamir share of the group key.
	ECDSA *curve.Scalar
	// Paillier is this party's Paillier decryption key.
	Paillier *paillier.SecretKey
	// Public maps all participating parties, including this one, to their
	// public material.
	Public map[party.ID]*Public
}

// PartyIDs returns the sorted slice of all parties of this key generation.
func (c *Config) PartyIDs() party.IDSlice {
	ids := make([]party.ID, 0, len(c.Public))
	for id := range c.Public {
		ids = append(ids, id)
	}
	return party.NewIDSlice(ids)
}

// Validate checks the Config for internal consistency.
func (c *Config) Validate() error {
	if c.ID == 0 {
		return errors.New("config: ID is 0")
	}
	n := len(c.Public)
	if n == 0 {
		return errors.New("config: no public data")
	}
	if c.Threshold < 0 || c.Threshold+1 > n {
		return fmt.Errorf("config: invalid threshold %d for %d parties", c.Threshold, n)
	}
	if err := c.SSID.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ECDSA == nil || c.ECDSA.IsZero() {
		return errors.New("config: ECDSA share is missing or 0")
	}
	if c.Paillier == nil {
		return errors.New("config: Paillier secret key is missing")
	}
	if err := paillier.ValidatePrime(c.Paillier.P()); err != nil {
		return fmt.Errorf("config: prime P: %w", err)
	}
	if err := paillier.ValidatePrime(c.Paillier.Q()); err != nil {
		return fmt.Errorf("config: prime Q: %w", err)
	}

	self, ok := c.Public[c.ID]
	if !ok {
		return fmt.Errorf("config: no public data for own id %s", c.ID)
	}
	if !self.ECDSA.Equal(c.ECDSA.ActOnBase()) {
		return errors.New("config: own public share does not match secret share")
	}
	if !self.Paillier.Equal(c.Paillier.PublicKey) {
		return errors.New("config: own Paillier public key does not match secret key")
	}

	for id, p := range c.Public {
		if p == nil || p.ECDSA == nil || p.Paillier == nil || p.Pedersen == nil {
			return fmt.Errorf("config: party %s: missing public data", id)
		}
		if p.ECDSA.IsIdentity() {
			return fmt.Errorf("config: party %s: public share is identity", id)
		}
		if err := paillier.ValidateN(p.Paillier.N()); err != nil {
			return fmt.Errorf("config: party %s: %w", id, err)
		}
		if err := pedersen.ValidateParameters(p.Pedersen.N(), p.Pedersen.S(), p.Pedersen.T()); err != nil {
			return fmt.Errorf("config: party %s: %w", id, err)
		}
	}
	return nil
}

// PublicPoint returns the group public key X = Σᵢ λᵢ⋅Xᵢ, interpolating the
// public shares of all parties at 0.
func (c *Config) PublicPoint() *curve.Point {
	lagrange := polynomial.Lagrange(c.PartyIDs())
	sum := curve.NewIdentityPoint()
	for id, l := range lagrange {
		sum.Add(sum, l.Act(c.Public[id].ECDSA))
	}
	return sum
}

// CanSign returns true if the given signer subset is a valid quorum for this
// config: sorted, large enough, containing this party, and known to the
// config.
func (c *Config) CanSign(signers party.IDSlice) bool {
	if !signers.Valid() || len(signers) < c.Threshold+1 {
		return false
	}
	if !signers.Contains(c.ID) {
		return false
	}
	return c.PartyIDs().ContainsAll(signers)
}
