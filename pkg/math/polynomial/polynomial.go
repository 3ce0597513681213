// Package polynomial implements Shamir secret sharing over the secp256k1
// scalar field: random polynomial sampling, share evaluation, and Lagrange
// interpolation coefficients.
package polynomial

import (
	"crypto/rand"

	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/math/sample"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ with coefficients in ℤq.
type Polynomial struct {
	coefficients []curve.Scalar
}

// NewPolynomial generates f(X) = constant + a₁⋅X + … + aₜ⋅Xᵗ of the given
// degree, with a₁…aₜ sampled uniformly. A nil constant is interpreted as 0.
func NewPolynomial(degree int, constant *curve.Scalar) *Polynomial {
	p := &Polynomial{coefficients: make([]curve.Scalar, degree+1)}

	if constant == nil {
		constant = curve.NewScalar()
	}
	p.coefficients[0].Set(constant)

	for i := 1; i <= degree; i++ {
		p.coefficients[i].Set(sample.Scalar(rand.Reader))
	}

	return p
}

// Evaluate evaluates the polynomial at the given index using Horner's method.
// index must be nonzero, since f(0) is the secret.
func (p *Polynomial) Evaluate(index *curve.Scalar) *curve.Scalar {
	if index.IsZero() {
		panic("polynomial: attempt to leak secret")
	}

	result := curve.NewScalar()
	// bₙ₋₁ = bₙ ⋅ x + aₙ₋₁
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result.MultiplyAdd(result, index, &p.coefficients[i])
	}
	return result
}

// Constant returns a copy of the constant coefficient f(0).
func (p *Polynomial) Constant() *curve.Scalar {
	return curve.NewScalar().Set(&p.coefficients[0])
}

// Degree is the highest power of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}
