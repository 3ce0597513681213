package presign

import (
	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/party"
	zkaffg "github.com/quorumsafe/tecdsa/pkg/zk/affg"
	zklogstar "github.com/quorumsafe/tecdsa/pkg/zk/logstar"
	"github.com/quorumsafe/tecdsa/protocols/cmp"
)

// Round3Message is broadcast to every peer after round 3.
type Round3Message struct {
	// DeltaShare = δᵢ
	DeltaShare *curve.Scalar
	// BigDeltaShare = Δᵢ = kᵢ⋅Γ
	BigDeltaShare *curve.Point
	// Gamma = Γ = Σⱼ Γⱼ as computed by the sender; all parties must agree.
	Gamma *curve.Point
	// LogProof is a Π_log* proof for Δᵢ = kᵢ⋅Γ against Kᵢ.
	LogProof *zklogstar.Proof
}

// Round3 verifies the peers' round-2 proofs, decrypts the incoming MtA
// ciphertexts, and computes this party's δᵢ, χᵢ and Δᵢ.
func (s *Signer) Round3(in map[party.ID]*Round2Message) (map[party.ID]*Round3Message, error) {
	if err := s.expectRound(3); err != nil {
		return nil, err
	}

	others := s.otherSigners()
	self := s.config.Public[s.config.ID]
	s.peerGamma = make(map[party.ID]*curve.Point, len(others))

	deltaShareAlpha := make(map[party.ID]*saferith.Int, len(others))
	chiShareAlpha := make(map[party.ID]*saferith.Int, len(others))

	for _, j := range others {
		msg := in[j]
		if msg == nil || msg.Gamma == nil ||
			msg.DeltaD == nil || msg.DeltaF == nil || msg.ChiD == nil || msg.ChiF == nil {
			return nil, s.abort(2, j, cmp.ErrProofInvalid)
		}
		peer := s.config.Public[j]

		if !msg.DeltaProof.Verify(s.hashForID(j), zkaffg.Public{
			Kv:       s.k,
			Dv:       msg.DeltaD,
			Fp:       msg.DeltaF,
			Xp:       msg.Gamma,
			Prover:   peer.Paillier,
			Verifier: self.Paillier,
			Aux:      self.Pedersen,
		}) {
			return nil, s.abort(2, j, cmp.ErrProofInvalid)
		}

		if !msg.ChiProof.Verify(s.hashForID(j), zkaffg.Public{
			Kv:       s.k,
			Dv:       msg.ChiD,
			Fp:       msg.ChiF,
			Xp:       s.publicShares[j],
			Prover:   peer.Paillier,
			Verifier: self.Paillier,
			Aux:      self.Pedersen,
		}) {
			return nil, s.abort(2, j, cmp.ErrProofInvalid)
		}

		if !msg.LogProof.Verify(s.hashForID(j), zklogstar.Public{
			C:      s.peerG[j],
			X:      msg.Gamma,
			Prover: peer.Paillier,
			Aux:    self.Pedersen,
		}) {
			return nil, s.abort(2, j, cmp.ErrProofInvalid)
		}

		// αᵢⱼ = Dec(Dⱼᵢ), α̂ᵢⱼ = Dec(D̂ⱼᵢ)
		alpha, err := s.config.Paillier.Dec(msg.DeltaD)
		if err != nil {
			return nil, s.abort(2, j, err)
		}
		alphaHat, err := s.config.Paillier.Dec(msg.ChiD)
		if err != nil {
			return nil, s.abort(2, j, err)
		}
		deltaShareAlpha[j] = alpha
		chiShareAlpha[j] = alphaHat
		s.peerGamma[j] = msg.Gamma
	}

	// Γ = Σⱼ Γⱼ
	s.gamma = curve.NewIdentityPoint().Set(s.gammaPoint)
	for _, j := range others {
		s.gamma.Add(s.gamma, s.peerGamma[j])
	}

	// Δᵢ = kᵢ⋅Γ
	s.bigDeltaShare = s.kShare.Act(s.gamma)

	// δᵢ = γᵢ⋅kᵢ + Σⱼ (αᵢⱼ + βᵢⱼ)
	// χᵢ = xᵢ⋅kᵢ + Σⱼ (α̂ᵢⱼ + β̂ᵢⱼ)
	s.deltaShare = curve.NewScalar().Multiply(s.gammaShare, s.kShare)
	s.chiShare = curve.NewScalar().Multiply(s.secretShare, s.kShare)
	for _, j := range others {
		s.deltaShare.Add(s.deltaShare, curve.FromInt(deltaShareAlpha[j]))
		s.deltaShare.Add(s.deltaShare, curve.FromInt(s.deltaShareBeta[j]))
		s.chiShare.Add(s.chiShare, curve.FromInt(chiShareAlpha[j]))
		s.chiShare.Add(s.chiShare, curve.FromInt(s.chiShareBeta[j]))
	}

	kInt := curve.MakeInt(s.kShare)
	out := make(map[party.ID]*Round3Message, len(others))
	msgs := s.pl.Parallelize(len(others), func(i int) interface{} {
		j := others[i]
		proof := zklogstar.NewProof(s.hashForID(s.config.ID), zklogstar.Public{
			C:      s.k,
			X:      s.bigDeltaShare,
			G:      s.gamma,
			Prover: self.Paillier,
			Aux:    s.config.Public[j].Pedersen,
		}, zklogstar.Private{
			X:   kInt,
			Rho: s.kNonce,
		})
		return &Round3Message{
			DeltaShare:    s.deltaShare,
			BigDeltaShare: s.bigDeltaShare,
			Gamma:         s.gamma,
			LogProof:      proof,
		}
	})
	for i, j := range others {
		out[j] = msgs[i].(*Round3Message)
	}

	s.round = 3
	s.log.Debug().Int("round", 3).Msg("round complete")
	return out, nil
}
