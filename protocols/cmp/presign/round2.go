package presign

import (
	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/party"
	zkaffg "github.com/quorumsafe/tecdsa/pkg/zk/affg"
	zkenc "github.com/quorumsafe/tecdsa/pkg/zk/enc"
	zklogstar "github.com/quorumsafe/tecdsa/pkg/zk/logstar"
	"github.com/quorumsafe/tecdsa/protocols/cmp"
)

// Round2Message is the message sent to each peer after round 2. Every field
// is receiver-specific except Gamma.
type Round2Message struct {
	// Gamma = Γᵢ = γᵢ⋅G
	Gamma *curve.Point
	// DeltaD, DeltaF are the MtA ciphertexts for γᵢ⋅kⱼ.
	DeltaD, DeltaF *paillier.Ciphertext
	// DeltaProof is the Π_aff-g proof for DeltaD, DeltaF against Γᵢ.
	DeltaProof *zkaffg.Proof
	// ChiD, ChiF are the MtA ciphertexts for xᵢ⋅kⱼ.
	ChiD, ChiF *paillier.Ciphertext
	// ChiProof is the Π_aff-g proof for ChiD, ChiF against λᵢ⋅Xᵢ.
	ChiProof *zkaffg.Proof
	// LogProof is a Π_log* proof that Gᵢ encrypts the discrete log of Γᵢ.
	LogProof *zklogstar.Proof
}

// Round2 verifies the peers' round-1 range proofs, then runs both MtA
// instances towards every peer: one for the nonce product δ, one for the
// key share product χ.
func (s *Signer) Round2(in map[party.ID]*Round1Message) (map[party.ID]*Round2Message, error) {
	if err := s.expectRound(2); err != nil {
		return nil, err
	}

	others := s.otherSigners()
	s.peerK = make(map[party.ID]*paillier.Ciphertext, len(others))
	s.peerG = make(map[party.ID]*paillier.Ciphertext, len(others))
	for _, j := range others {
		msg := in[j]
		if msg == nil || msg.K == nil || msg.G == nil {
			return nil, s.abort(1, j, cmp.ErrProofInvalid)
		}
		if !msg.EncProof.Verify(s.hashForID(j), zkenc.Public{
			K:      msg.K,
			Prover: s.config.Public[j].Paillier,
			Aux:    s.config.Public[s.config.ID].Pedersen,
		}) {
			return nil, s.abort(1, j, cmp.ErrProofInvalid)
		}
		s.peerK[j] = msg.K
		s.peerG[j] = msg.G
	}

	s.gammaPoint = s.gammaShare.ActOnBase()
	s.deltaShareBeta = make(map[party.ID]*saferith.Int, len(others))
	s.chiShareBeta = make(map[party.ID]*saferith.Int, len(others))

	gammaInt := curve.MakeInt(s.gammaShare)
	secretInt := curve.MakeInt(s.secretShare)
	selfPaillier := s.config.Paillier.PublicKey
	selfPoint := s.publicShares[s.config.ID]

	out := make(map[party.ID]*Round2Message, len(others))
	msgs := s.pl.Parallelize(len(others), func(i int) interface{} {
		j := others[i]
		peer := s.config.Public[j]

		deltaMtA := newMtA(s.hashForID(s.config.ID),
			gammaInt, s.gammaPoint, s.peerK[j],
			selfPaillier, peer.Paillier, peer.Pedersen)

		chiMtA := newMtA(s.hashForID(s.config.ID),
			secretInt, selfPoint, s.peerK[j],
			selfPaillier, peer.Paillier, peer.Pedersen)

		logProof := zklogstar.NewProof(s.hashForID(s.config.ID), zklogstar.Public{
			C:      s.g,
			X:      s.gammaPoint,
			Prover: selfPaillier,
			Aux:    peer.Pedersen,
		}, zklogstar.Private{
			X:   gammaInt,
			Rho: s.gNonce,
		})

		return []interface{}{j, deltaMtA, chiMtA, logProof}
	})
	for _, res := range msgs {
		parts := res.([]interface{})
		j := parts[0].(party.ID)
		deltaMtA := parts[1].(*mtaOut)
		chiMtA := parts[2].(*mtaOut)

		s.deltaShareBeta[j] = deltaMtA.Beta
		s.chiShareBeta[j] = chiMtA.Beta
		out[j] = &Round2Message{
			Gamma:      s.gammaPoint,
			DeltaD:     deltaMtA.D,
			DeltaF:     deltaMtA.F,
			DeltaProof: deltaMtA.Proof,
			ChiD:       chiMtA.D,
			ChiF:       chiMtA.F,
			ChiProof:   chiMtA.Proof,
			LogProof:   parts[3].(*zklogstar.Proof),
		}
	}

	s.round = 2
	s.log.Debug().Int("round", 2).Msg("round complete")
	return out, nil
}
