// Package presign implements the three presigning rounds producing a
// pre-signature, which can later be used to sign a single message without
// further interaction beyond one broadcast.
//
// A Signer is a state machine: Round1, Round2, Round3 and Finalize must be
// called in order, each consuming the peers' outputs of the previous round.
// Any verification failure aborts the session; the Signer cannot be reused
// afterwards.
package presign

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/rs/zerolog"

	"github.com/quorumsafe/tecdsa/pkg/hash"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/polynomial"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/pkg/pool"
	"github.com/quorumsafe/tecdsa/protocols/cmp"
	"github.com/quorumsafe/tecdsa/protocols/cmp/config"
)

// Signer holds one party's state across the presigning rounds.
type Signer struct {
	config  *config.Config
	signers party.IDSlice

	// secretShare = λᵢ⋅xᵢ, the Lagrange-scaled key share for this signer
	// subset.
	secretShare *curve.Scalar
	// publicShares[j] = λⱼ⋅Xⱼ; their sum is the group public key.
	publicShares map[party.ID]*curve.Point

	pl  *pool.Pool
	log zerolog.Logger

	round int

	// round 1 state
	kShare     *curve.Scalar // kᵢ
	gammaShare *curve.Scalar // γᵢ
	kNonce     *saferith.Nat
	gNonce     *saferith.Nat
	k          *paillier.Ciphertext // Kᵢ
	g          *paillier.Ciphertext // Gᵢ

	// peers' round 1 broadcasts
	peerK map[party.ID]*paillier.Ciphertext
	peerG map[party.ID]*paillier.Ciphertext

	// round 2 state
	gammaPoint     *curve.Point                  // Γᵢ = γᵢ⋅G
	deltaShareBeta map[party.ID]*saferith.Int    // βᵢⱼ
	chiShareBeta   map[party.ID]*saferith.Int    // β̂ᵢⱼ
	peerGamma      map[party.ID]*curve.Point     // Γⱼ

	// round 3 state
	gamma         *curve.Point  // Γ = Σⱼ Γⱼ
	deltaShare    *curve.Scalar // δᵢ
	chiShare      *curve.Scalar // χᵢ
	bigDeltaShare *curve.Point  // Δᵢ = kᵢ⋅Γ
}

// Option configures a Signer.
type Option func(*Signer)

// WithLogger sets the logger used for round transitions. The default
// discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Signer) { s.log = log }
}

// WithPool sets the worker pool used for per-peer proof generation.
func WithPool(pl *pool.Pool) Option {
	return func(s *Signer) { s.pl = pl }
}

// NewSigner prepares a presigning session for the given signer subset,
// scaling the config's share by its Lagrange coefficient.
func NewSigner(c *config.Config, signers party.IDSlice, opts ...Option) (*Signer, error) {
	if !c.CanSign(signers) {
		return nil, fmt.Errorf("presign: %d signers do not form a quorum for party %s with threshold %d",
			len(signers), c.ID, c.Threshold)
	}

	lagrange := polynomial.Lagrange(signers)
	publicShares := make(map[party.ID]*curve.Point, len(signers))
	for _, j := range signers {
		publicShares[j] = lagrange[j].Act(c.Public[j].ECDSA)
	}

	s := &Signer{
		config:       c,
		signers:      signers,
		secretShare:  curve.NewScalar().Multiply(lagrange[c.ID], c.ECDSA),
		publicShares: publicShares,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Stringer("party", c.ID).Logger()
	return s, nil
}

// PublicPoint returns the group public key the pre-signature will sign
// under.
func (s *Signer) PublicPoint() *curve.Point {
	sum := curve.NewIdentityPoint()
	for _, X := range s.publicShares {
		sum.Add(sum, X)
	}
	return sum
}

// hashForID returns the hash state all Fiat–Shamir challenges for proofs by
// the given prover are derived from. It binds the session identifier, the
// signer subset and the prover.
func (s *Signer) hashForID(id party.ID) *hash.Hash {
	return hash.New(s.config.SSID, s.signers, id)
}

// otherSigners returns all signers except this party.
func (s *Signer) otherSigners() party.IDSlice {
	return s.signers.Remove(s.config.ID)
}

// expectRound guards the round sequencing.
func (s *Signer) expectRound(r int) error {
	if s.round != r-1 {
		return fmt.Errorf("presign: round %d requested, but %d rounds completed", r, s.round)
	}
	return nil
}

// zero wipes the secret presigning state. The Signer is unusable afterwards.
func (s *Signer) zero() {
	s.secretShare = nil
	s.kShare = nil
	s.gammaShare = nil
	s.kNonce = nil
	s.gNonce = nil
	s.deltaShareBeta = nil
	s.chiShareBeta = nil
	s.deltaShare = nil
	s.chiShare = nil
}

// abort wipes the signer and wraps err for the given round and culprit.
func (s *Signer) abort(round int, culprit party.ID, err error) error {
	s.zero()
	s.round = -1
	s.log.Warn().Int("round", round).Stringer("culprit", culprit).Err(err).Msg("session aborted")
	return &cmp.Error{Round: round, Culprit: culprit, Err: err}
}
