// Package keygen implements the trusted-dealer variant of key generation:
// a single dealer samples all shares and auxiliary material, and hands each
// party its Config.
//
// The dealer learns every secret, so this variant is only suitable when the
// dealer is trusted to wipe its state, or for testing.
package keygen

import (
	"crypto/rand"
	"fmt"

	"github.com/quorumsafe/tecdsa/internal/types"
	"github.com/quorumsafe/tecdsa/pkg/math/polynomial"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/pkg/pool"
	"github.com/quorumsafe/tecdsa/protocols/cmp/config"
)

// Keygen generates key material for n parties with the given threshold:
// any threshold+1 of them can sign. Party identifiers are sampled uniformly
// from [1, idRange]. Most of the time is spent searching for Paillier
// primes; pl parallelizes that search.
func Keygen(pl *pool.Pool, n, threshold, idRange int) (map[party.ID]*config.Config, error) {
	if threshold < 0 || threshold+1 > n {
		return nil, fmt.Errorf("keygen: invalid threshold %d for %d parties", threshold, n)
	}
	keys := make([]*paillier.SecretKey, n)
	for i := range keys {
		keys[i] = paillier.NewSecretKey(pl)
	}
	return KeygenWithKeys(n, threshold, idRange, keys)
}

// KeygenWithKeys is Keygen with caller-provided Paillier keys, one per
// party. It exists so tests and demos can reuse pregenerated primes instead
// of spending minutes searching for fresh ones.
//
// The returned configs share one Public map, which must be treated as
// read-only.
func KeygenWithKeys(n, threshold, idRange int, keys []*paillier.SecretKey) (map[party.ID]*config.Config, error) {
	if threshold < 0 || threshold+1 > n {
		return nil, fmt.Errorf("keygen: invalid threshold %d for %d parties", threshold, n)
	}
	if len(keys) < n {
		return nil, fmt.Errorf("keygen: need %d Paillier keys, have %d", n, len(keys))
	}

	ids, err := party.RandomIDs(rand.Reader, n, idRange)
	if err != nil {
		return nil, fmt.Errorf("keygen: %w", err)
	}
	ssid, err := types.NewSSID(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("keygen: %w", err)
	}

	// f(0) is the group secret key; party i's share is f(i).
	f := polynomial.NewPolynomial(threshold, sample.Scalar(rand.Reader))

	public := make(map[party.ID]*config.Public, n)
	configs := make(map[party.ID]*config.Config, n)
	for i, id := range ids {
		share := f.Evaluate(id.Scalar())

		paillierSecret := keys[i]
		pedersenPublic, _ := paillierSecret.GeneratePedersen()

		public[id] = &config.Public{
			ECDSA:    share.ActOnBase(),
			Paillier: paillierSecret.PublicKey,
			Pedersen: pedersenPublic,
		}
		configs[id] = &config.Config{
			ID:        id,
			Threshold: threshold,
			SSID:      ssid.Copy(),
			ECDSA:     share,
			Paillier:  paillierSecret,
			Public:    public,
		}
	}
	return configs, nil
}
