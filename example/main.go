// Command example runs a full trusted-dealer keygen, presigning and signing
// session between three local parties, and prints the resulting signature.
package main

import (
	"encoding/hex"
	"os"

	"github.com/rs/zerolog"

	"github.com/quorumsafe/tecdsa/internal/test"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/pkg/pool"
	"github.com/quorumsafe/tecdsa/protocols/cmp/keygen"
	"github.com/quorumsafe/tecdsa/protocols/cmp/presign"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)

	pl := pool.NewPool(0)
	defer pl.TearDown()

	const (
		n         = 3
		threshold = 1
		idRange   = 100
	)
	message := []byte("hello")

	log.Info().Int("n", n).Int("threshold", threshold).Msg("generating keys (searching for Paillier primes, this takes a while)")
	configs, err := keygen.Keygen(pl, n, threshold, idRange)
	if err != nil {
		log.Fatal().Err(err).Msg("keygen failed")
	}

	signers := make(map[party.ID]*presign.Signer, n)
	var ids party.IDSlice
	for id, c := range configs {
		if ids == nil {
			ids = c.PartyIDs()
		}
		s, err := presign.NewSigner(c, ids, presign.WithLogger(log), presign.WithPool(pl))
		if err != nil {
			log.Fatal().Err(err).Msg("signer setup failed")
		}
		signers[id] = s
	}
	log.Info().Msg("keys generated, presigning")

	pres, err := test.PreSign(signers)
	if err != nil {
		log.Fatal().Err(err).Msg("presigning failed")
	}
	log.Info().Msg("presigning complete, signing")

	publicPoint := configs[ids[0]].PublicPoint()

	sig, err := test.Sign(pres, publicPoint, message)
	if err != nil {
		log.Fatal().Err(err).Msg("signing failed")
	}

	log.Info().
		Str("signature", hex.EncodeToString(sig.SigBytes())).
		Str("public_key", hex.EncodeToString(publicPoint.UncompressedBytes())).
		Msg("signature verified")
}
