package arith

import (
	"github.com/cronokirby/saferith"

	"github.com/quorumsafe/tecdsa/internal/params"
)

// IsValidNatModN checks that ints are all in the range [1, …, n-1] and
// are coprime to n.
func IsValidNatModN(n *saferith.Modulus, ints ...*saferith.Nat) bool {
	for _, i := range ints {
		if i == nil {
			return false
		}
		if _, _, lt := i.CmpMod(n); lt != 1 {
			return false
		}
		if i.IsUnit(n) != 1 {
			return false
		}
	}
	return true
}

// IsValidBigModN checks that ints are all in the range [1, …, n-1] and
// are coprime to n.
func IsValidBigModN(n *saferith.Modulus, ints ...*saferith.Int) bool {
	for _, i := range ints {
		if i == nil {
			return false
		}
		if !IsValidNatModN(n, i.Abs()) {
			return false
		}
	}
	return true
}

// IsInIntervalLEps returns true if n ∈ [-2ˡ⁺ᵉ, 2ˡ⁺ᵉ].
// The check is on the bit length of the absolute value.
func IsInIntervalLEps(n *saferith.Int) bool {
	if n == nil {
		return false
	}
	return n.TrueLen() <= params.LPlusEpsilon
}

// IsInIntervalLPrimeEps returns true if n ∈ [-2ˡ'⁺ᵉ, 2ˡ'⁺ᵉ].
// The check is on the bit length of the absolute value.
func IsInIntervalLPrimeEps(n *saferith.Int) bool {
	if n == nil {
		return false
	}
	return n.TrueLen() <= params.LPrimePlusEpsilon
}
