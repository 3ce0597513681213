// Package test provides round-synchronous orchestration of the protocol for
// tests and the example binary: it plays the role of the network, delivering
// every party's outputs to its peers with a cbor round-trip in between.
package test

import (
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/quorumsafe/tecdsa/pkg/ecdsa"
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/party"
	"github.com/quorumsafe/tecdsa/protocols/cmp/presign"
	"github.com/quorumsafe/tecdsa/protocols/cmp/sign"
)

// Deliver regroups per-sender output maps into per-receiver input maps,
// re-encoding every message through cbor so the wire format is exercised.
func Deliver[M any](outs map[party.ID]map[party.ID]*M) (map[party.ID]map[party.ID]*M, error) {
	ins := make(map[party.ID]map[party.ID]*M, len(outs))
	for sender, byReceiver := range outs {
		for receiver, msg := range byReceiver {
			data, err := cbor.Marshal(msg)
			if err != nil {
				return nil, fmt.Errorf("deliver: %s -> %s: %w", sender, receiver, err)
			}
			decoded := new(M)
			if err := cbor.Unmarshal(data, decoded); err != nil {
				return nil, fmt.Errorf("deliver: %s -> %s: %w", sender, receiver, err)
			}
			if ins[receiver] == nil {
				ins[receiver] = make(map[party.ID]*M, len(outs))
			}
			ins[receiver][sender] = decoded
		}
	}
	return ins, nil
}

// forEach runs f for every signer concurrently, collecting the first error.
func forEach(signers map[party.ID]*presign.Signer, f func(id party.ID, s *presign.Signer) error) error {
	var g errgroup.Group
	for id, s := range signers {
		id, s := id, s
		g.Go(func() error { return f(id, s) })
	}
	return g.Wait()
}

// PreSign drives all signers through the three presigning rounds and
// finalization, returning each party's pre-signature.
func PreSign(signers map[party.ID]*presign.Signer) (map[party.ID]*ecdsa.PreSignature, error) {
	var mu sync.Mutex

	outs1 := make(map[party.ID]map[party.ID]*presign.Round1Message, len(signers))
	if err := forEach(signers, func(id party.ID, s *presign.Signer) error {
		out, err := s.Round1()
		if err != nil {
			return err
		}
		mu.Lock()
		outs1[id] = out
		mu.Unlock()
		return nil
	}); err != nil {
		return nil, err
	}
	ins1, err := Deliver(outs1)
	if err != nil {
		return nil, err
	}

	outs2 := make(map[party.ID]map[party.ID]*presign.Round2Message, len(signers))
	if err := forEach(signers, func(id party.ID, s *presign.Signer) error {
		out, err := s.Round2(ins1[id])
		if err != nil {
			return err
		}
		mu.Lock()
		outs2[id] = out
		mu.Unlock()
		return nil
	}); err != nil {
		return nil, err
	}
	ins2, err := Deliver(outs2)
	if err != nil {
		return nil, err
	}

	outs3 := make(map[party.ID]map[party.ID]*presign.Round3Message, len(signers))
	if err := forEach(signers, func(id party.ID, s *presign.Signer) error {
		out, err := s.Round3(ins2[id])
		if err != nil {
			return err
		}
		mu.Lock()
		outs3[id] = out
		mu.Unlock()
		return nil
	}); err != nil {
		return nil, err
	}
	ins3, err := Deliver(outs3)
	if err != nil {
		return nil, err
	}

	pres := make(map[party.ID]*ecdsa.PreSignature, len(signers))
	if err := forEach(signers, func(id party.ID, s *presign.Signer) error {
		pre, err := s.Finalize(ins3[id])
		if err != nil {
			return err
		}
		mu.Lock()
		pres[id] = pre
		mu.Unlock()
		return nil
	}); err != nil {
		return nil, err
	}
	return pres, nil
}

// Sign produces every party's partial signature on message and combines
// them under publicPoint.
func Sign(pres map[party.ID]*ecdsa.PreSignature, publicPoint *curve.Point, message []byte) (*ecdsa.Signature, error) {
	shares := make(map[party.ID]*curve.Scalar, len(pres))
	for id, pre := range pres {
		sigma, err := sign.PartialSign(pre, message)
		if err != nil {
			return nil, err
		}
		shares[id] = sigma
	}

	// all pre-signatures agree on R; combine under any of them
	for _, pre := range pres {
		return sign.Combine(pre, publicPoint, message, shares)
	}
	return nil, fmt.Errorf("sign: no presignatures")
}
