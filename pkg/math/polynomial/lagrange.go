package polynomial

import (
	"github.com/quorumsafe/tecdsa/pkg/math/curve"
	"github.com/quorumsafe/tecdsa/pkg/party"
)

// Lagrange returns the Lagrange interpolation coefficients at 0 for all
// parties in the interpolation domain:
//
//	                 x₀ ⋅⋅⋅ xₖ
//	lⱼ(0) = ---------------------------------------------------
//	        xⱼ⋅(x₀ - xⱼ)⋅⋅⋅(xⱼ₋₁ - xⱼ)⋅(xⱼ₊₁ - xⱼ)⋅⋅⋅(xₖ - xⱼ)
func Lagrange(interpolationDomain party.IDSlice) map[party.ID]*curve.Scalar {
	scalars, numerator := scalarsAndNumerator(interpolationDomain)

	coefficients := make(map[party.ID]*curve.Scalar, len(interpolationDomain))
	for _, j := range interpolationDomain {
		coefficients[j] = lagrange(scalars, numerator, j)
	}
	return coefficients
}

func scalarsAndNumerator(interpolationDomain party.IDSlice) (map[party.ID]*curve.Scalar, *curve.Scalar) {
	// numerator = x₀ ⋅ … ⋅ xₖ
	numerator := curve.NewScalar().SetUInt32(1)
	scalars := make(map[party.ID]*curve.Scalar, len(interpolationDomain))
	for _, id := range interpolationDomain {
		xi := id.Scalar()
		scalars[id] = xi
		numerator.Multiply(numerator, xi)
	}
	return scalars, numerator
}

func lagrange(scalars map[party.ID]*curve.Scalar, numerator *curve.Scalar, j party.ID) *curve.Scalar {
	xJ := scalars[j]
	tmp := curve.NewScalar()

	// denominator = xⱼ⋅(x₀ - xⱼ)⋅⋅⋅(xⱼ₋₁ - xⱼ)⋅(xⱼ₊₁ - xⱼ)⋅⋅⋅(xₖ - xⱼ)
	denominator := curve.NewScalar().SetUInt32(1)
	for i, xI := range scalars {
		if i == j {
			// lⱼ *= xⱼ
			denominator.Multiply(denominator, xJ)
			continue
		}
		// tmp = xᵢ - xⱼ
		tmp.Subtract(xI, xJ)
		denominator.Multiply(denominator, tmp)
	}

	// lⱼ = numerator / denominator
	lJ := curve.NewScalar().Invert(denominator)
	return lJ.Multiply(lJ, numerator)
}
