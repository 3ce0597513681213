package presign

import (
	"github.com/quorumsafe/tecdsa/pkg/ecdsa"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/party"
	zklogstar "github.com/quorumsafe/tecdsa/pkg/zk/logstar"
	"github.com/quorumsafe/tecdsa/protocols/cmp"
)

// Finalize verifies the peers' round-3 proofs and consistency checks, and
// assembles the pre-signature. The signer's state is wiped regardless of the
// outcome.
func (s *Signer) Finalize(in map[party.ID]*Round3Message) (*ecdsa.PreSignature, error) {
	if err := s.expectRound(4); err != nil {
		return nil, err
	}

	others := s.otherSigners()
	self := s.config.Public[s.config.ID]

	// δ = Σⱼ δⱼ, Δ = Σⱼ Δⱼ
	delta := curve.NewScalar().Set(s.deltaShare)
	bigDelta := curve.NewIdentityPoint().Set(s.bigDeltaShare)

	for _, j := range others {
		msg := in[j]
		if msg == nil || msg.DeltaShare == nil || msg.BigDeltaShare == nil {
			return nil, s.abort(3, j, cmp.ErrProofInvalid)
		}
		if msg.Gamma == nil || !msg.Gamma.Equal(s.gamma) {
			return nil, s.abort(3, j, cmp.ErrPresignInconsistent)
		}

		if !msg.LogProof.Verify(s.hashForID(j), zklogstar.Public{
			C:      s.peerK[j],
			X:      msg.BigDeltaShare,
			G:      s.gamma,
			Prover: s.config.Public[j].Paillier,
			Aux:    self.Pedersen,
		}) {
			return nil, s.abort(3, j, cmp.ErrProofInvalid)
		}

		delta.Add(delta, msg.DeltaShare)
		bigDelta.Add(bigDelta, msg.BigDeltaShare)
	}

	// δ⋅G = Δ
	if !delta.ActOnBase().Equal(bigDelta) {
		return nil, s.abort(3, 0, cmp.ErrPresignInconsistent)
	}

	// R = δ⁻¹⋅Γ
	R := curve.NewScalar().Invert(delta).Act(s.gamma)

	pre := &ecdsa.PreSignature{
		R:        R,
		KShare:   curve.NewScalar().Set(s.kShare),
		ChiShare: curve.NewScalar().Set(s.chiShare),
	}

	s.zero()
	s.round = 4
	s.log.Debug().Int("round", 4).Msg("presignature complete")

	if err := pre.Validate(); err != nil {
		return nil, &cmp.Error{Round: 4, Err: err}
	}
	return pre, nil
}
