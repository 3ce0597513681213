package presign

import (
	"crypto/rand"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/pkg/hash"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
	"github.com/quorumsafe/tecdsa/pkg/paillier"
	"github.com/quorumsafe/tecdsa/pkg/pedersen"
	zkaffg "github.com/quorumsafe/tecdsa/pkg/zk/affg"
)

// mtaOut is the sender's result of one multiplicative-to-additive
// conversion. The receiver decrypts D to obtain α, the sender keeps
// Beta = -β̃, and α + Beta equals the product of the two secrets.
type mtaOut struct {
	// Beta is the sender's additive share, never transmitted.
	Beta *saferith.Int
	// D = (x ⊙ K) ⊕ Enc_receiver(β̃)
	D *paillier.Ciphertext
	// F = Enc_sender(β̃)
	F *paillier.Ciphertext
	// Proof ties D, F and the sender's public point together.
	Proof *zkaffg.Proof
}

// newMtA runs the sender's side of one MtA instance: senderSecret is x
// (with public point X = x⋅G), receiverK is the receiver's ciphertext
// K = Enc(k), and the product x⋅k ends up additively shared between Beta
// and the receiver's decryption of D.
//
// The proof is bound to aux, the receiver's Pedersen parameters, and to the
// given hash state.
func newMtA(h *hash.Hash,
	senderSecret *saferith.Int, senderPoint *curve.Point,
	receiverK *paillier.Ciphertext,
	sender, receiver *paillier.PublicKey,
	aux *pedersen.Parameters,
) *mtaOut {
	betaNeg := sample.IntervalLPrime(rand.Reader)

	// F = Enc_sender(β̃; r)
	F, r := sender.Enc(betaNeg)

	// D = (x ⊙ K) ⊕ Enc_receiver(β̃; ρ)
	D, rho := receiver.Enc(betaNeg)
	tmp := receiverK.Clone().Mul(receiver, senderSecret)
	D.Add(receiver, tmp)

	proof := zkaffg.NewProof(h, zkaffg.Public{
		Kv:       receiverK,
		Dv:       D,
		Fp:       F,
		Xp:       senderPoint,
		Prover:   sender,
		Verifier: receiver,
		Aux:      aux,
	}, zkaffg.Private{
		X:    senderSecret,
		Y:    betaNeg,
		Rho:  rho,
		RhoY: r,
	})

	return &mtaOut{
		Beta:  new(saferith.Int).SetInt(betaNeg).Neg(1),
		D:     D,
		F:     F,
		Proof: proof,
	}
}
