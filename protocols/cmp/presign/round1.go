package presign

import (
	"crypto/rand"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/party"
	zkenc "github.com/quorumsafe/tecdsa/pkg/zk/enc"
)

// Round1Message is the message sent to each peer after round 1. K and G are
// identical for all receivers; the range proof is bound to the receiver's
// Pedersen parameters.
type Round1Message struct {
	// K = Encᵢ(kᵢ)
	K *paillier.Ciphertext
	// G = Encᵢ(γᵢ)
	G *paillier.Ciphertext
	// EncProof is a Π_enc proof that K encrypts a value in ±2ˡ.
	EncProof *zkenc.Proof
}

// Round1 samples the nonce shares kᵢ and γᵢ, encrypts them under this
// party's Paillier key, and proves to each peer that Kᵢ is well-formed.
func (s *Signer) Round1() (map[party.ID]*Round1Message, error) {
	if err := s.expectRound(1); err != nil {
		return nil, err
	}

	s.kShare = sample.ScalarUnit(rand.Reader)
	s.gammaShare = sample.ScalarUnit(rand.Reader)

	s.k, s.kNonce = s.config.Paillier.Enc(curve.MakeInt(s.kShare))
	s.g, s.gNonce = s.config.Paillier.Enc(curve.MakeInt(s.gammaShare))

	out := make(map[party.ID]*Round1Message, len(s.signers)-1)
	others := s.otherSigners()
	msgs := s.pl.Parallelize(len(others), func(i int) interface{} {
		j := others[i]
		proof := zkenc.NewProof(s.hashForID(s.config.ID), zkenc.Public{
			K:      s.k,
			Prover: s.config.Paillier.PublicKey,
			Aux:    s.config.Public[j].Pedersen,
		}, zkenc.Private{
			K:   curve.MakeInt(s.kShare),
			Rho: s.kNonce,
		})
		return &Round1Message{
			K:        s.k,
			G:        s.g,
			EncProof: proof,
		}
	})
	for i, j := range others {
		out[j] = msgs[i].(*Round1Message)
	}

	s.round = 1
	s.log.Debug().Int("round", 1).Msg("round complete")
	return out, nil
}
