package config

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"

	"github.com/quorumsafe/tecdsa/internal/types"
	"github.com/quorumsafe/tecdsa/pkg/math/arith"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
)

type configMarshal struct {
	ID        party.ID
	Threshold int
	SSID      []byte
	ECDSA     *curve.Scalar
	P, Q      *saferith.Nat
	Public    []cbor.RawMessage
}

type publicMarshal struct {
	ID    party.ID
	ECDSA *curve.Point
	N     *saferith.Nat
	S, T  *saferith.Nat
}

// MarshalBinary implements encoding.BinaryMarshaler. The Paillier secret is
// stored as its prime factors; all derived values are recomputed on
// unmarshalling.
func (c *Config) MarshalBinary() ([]byte, error) {
	ps := make([]cbor.RawMessage, 0, len(c.Public))
	for _, id := range c.PartyIDs() {
		p := c.Public[id]
		pm := &publicMarshal{
			ID:    id,
			ECDSA: p.ECDSA,
			N:     p.Paillier.N().Nat(),
			S:     p.Pedersen.S(),
			T:     p.Pedersen.T(),
		}
		data, err := cbor.Marshal(pm)
		if err != nil {
			return nil, err
		}
		ps = append(ps, data)
	}
	return cbor.Marshal(&configMarshal{
		ID:        c.ID,
		Threshold: c.Threshold,
		SSID:      c.SSID,
		ECDSA:     c.ECDSA,
		P:         c.Paillier.P(),
		Q:         c.Paillier.Q(),
		Public:    ps,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Our own public
// material is re-derived from the secrets rather than trusted from the
// serialized form.
func (c *Config) UnmarshalBinary(data []byte) error {
	cm := &configMarshal{ECDSA: curve.NewScalar()}
	if err := cbor.Unmarshal(data, cm); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cm.ECDSA.IsZero() {
		return fmt.Errorf("config: ECDSA secret share is zero")
	}
	if err := paillier.ValidatePrime(cm.P); err != nil {
		return fmt.Errorf("config: prime P: %w", err)
	}
	if err := paillier.ValidatePrime(cm.Q); err != nil {
		return fmt.Errorf("config: prime Q: %w", err)
	}
	paillierSecret := paillier.NewSecretKeyFromPrimes(cm.P, cm.Q)

	ps := make(map[party.ID]*Public, len(cm.Public))
	for _, raw := range cm.Public {
		p := &publicMarshal{ECDSA: curve.NewIdentityPoint()}
		if err := cbor.Unmarshal(raw, p); err != nil {
			return fmt.Errorf("config: party %s: %w", p.ID, err)
		}
		if _, ok := ps[p.ID]; ok {
			return fmt.Errorf("config: party %s: duplicate entry", p.ID)
		}

		// our own public data is derived from the secrets
		if p.ID == cm.ID {
			ps[p.ID] = &Public{
				ECDSA:    cm.ECDSA.ActOnBase(),
				Paillier: paillierSecret.PublicKey,
				Pedersen: pedersen.New(paillierSecret.Modulus(), p.S, p.T),
			}
			continue
		}

		n := saferith.ModulusFromNat(p.N)
		if err := paillier.ValidateN(n); err != nil {
			return fmt.Errorf("config: party %s: %w", p.ID, err)
		}
		ps[p.ID] = &Public{
			ECDSA:    p.ECDSA,
			Paillier: paillier.NewPublicKey(n),
			Pedersen: pedersen.New(arith.ModulusFromN(n), p.S, p.T),
		}
	}

	c.ID = cm.ID
	c.Threshold = cm.Threshold
	c.SSID = types.SSID(cm.SSID)
	c.ECDSA = cm.ECDSA
	c.Paillier = paillierSecret
	c.Public = ps

	if err := c.Validate(); err != nil {
		return err
	}
	return nil
}
