package sample

import (
	"io"
	"math"
	"math/big"
	"sync"

	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/internal/params"
	"github.com/quorumsafe/tecdsa/pkg/pool"
)

// primes returns all odd primes < below, by sieving.
func primes(below uint32) []uint32 {
	sieve := make([]bool, below)
	for i := 2; i < len(sieve); i++ {
		sieve[i] = true
	}
	for p := 2; p*p < len(sieve); p++ {
		if !sieve[p] {
			continue
		}
		for i := p << 1; i < len(sieve); i += p {
			sieve[i] = false
		}
	}
	// there are roughly N / log N primes below N
	nF := float64(below)
	out := make([]uint32, 0, int(nF/math.Log(nF)))
	for p := uint32(3); p < below; p++ {
		if sieve[p] {
			out = append(out, p)
		}
	}
	return out
}

// The number of candidates to check after the initial random guess.
const sieveSize = 1 << 18

// The upper bound on the primes used for sieving.
const primeBound = 1 << 20

// 20 is the same number of Miller-Rabin iterations that Go uses internally.
const blumPrimalityIterations = 20

var (
	thePrimes  []uint32
	initPrimes sync.Once
)

var sievePool = sync.Pool{
	New: func() interface{} {
		sieve := make([]bool, sieveSize)
		return &sieve
	},
}

// tryBlumPrime attempts to generate a safe Blum prime of params.BitsBlumPrime
// bits: p ≡ 3 (mod 4) and (p-1)/2 prime. It returns nil when the sieved
// window around the random starting point contains no such prime.
func tryBlumPrime(rand io.Reader) *saferith.Nat {
	initPrimes.Do(func() {
		thePrimes = primes(primeBound)
	})

	bytes := make([]byte, (params.BitsBlumPrime+7)/8)
	if _, err := io.ReadFull(rand, bytes); err != nil {
		return nil
	}
	// For p and (p-1)/2 to both be prime, p = 3 mod 4 is necessary.
	bytes[len(bytes)-1] |= 3
	// Setting the top two bits ensures the product of two such primes has
	// exactly twice the number of bits.
	bytes[0] |= 0xC0
	base := new(big.Int).SetBytes(bytes)

	// sieve marks the candidacy of base, base+1, base+2, …
	sievePtr := sievePool.Get().(*[]bool)
	sieve := *sievePtr
	defer sievePool.Put(sievePtr)
	for i := range sieve {
		sieve[i] = true
	}
	// remove candidates that aren't 3 mod 4
	for i := 1; i+2 < len(sieve); i += 4 {
		sieve[i] = false
		sieve[i+1] = false
		sieve[i+2] = false
	}
	// If x = 0 mod r, x isn't prime. If x = 1 mod r, (x-1)/2 isn't prime,
	// so x isn't a safe prime. Eliminate both along each prime r.
	remainder := new(big.Int)
	for _, prime := range thePrimes {
		remainder.SetUint64(uint64(prime))
		remainder.Mod(base, remainder)
		r := int(remainder.Uint64())
		primeInt := int(prime)
		firstMultiple := primeInt - r
		if r == 0 {
			firstMultiple = 0
		}
		for i := firstMultiple; i+1 < len(sieve); i += primeInt {
			sieve[i] = false
			sieve[i+1] = false
		}
	}

	p := new(big.Int)
	q := new(big.Int)
	for delta := 0; delta < len(sieve); delta++ {
		if !sieve[delta] {
			continue
		}
		p.SetUint64(uint64(delta))
		p.Add(p, base)
		if p.BitLen() > params.BitsBlumPrime {
			return nil
		}
		// q = (p - 1) / 2, and p is odd
		q.Rsh(p, 1)
		// p is likely prime already, so check q first: it fails more often.
		if !q.ProbablyPrime(blumPrimalityIterations) {
			continue
		}
		// A single Miller-Rabin iteration is sufficient when q is prime.
		if !p.ProbablyPrime(0) {
			continue
		}
		return new(saferith.Nat).SetBig(p, params.BitsBlumPrime)
	}
	return nil
}

// Paillier generates the two primes for a Paillier key pair.
// p and q are safe Blum primes: p ≡ 3 (mod 4) and (p-1)/2 prime.
func Paillier(rand io.Reader, pl *pool.Pool) (p, q *saferith.Nat) {
	reader := pool.NewLockedReader(rand)
	results := pl.Search(2, func() interface{} {
		q := tryBlumPrime(reader)
		// this is necessary because of how Go handles nil interface values
		if q == nil {
			return nil
		}
		return q
	})
	p, q = results[0].(*saferith.Nat), results[1].(*saferith.Nat)
	return
}
