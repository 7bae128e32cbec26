package FEM1D

import "fmt"

// QuadratureRule holds the abscissae and weights of a Gauss-Legendre rule
// tabulated on the reference interval [-1,1]. A rule of Order k integrates
// polynomials of degree <= k exactly; the weights sum to 2, the measure of
// the reference interval.
type QuadratureRule struct {
	Order int
	XI, W []float64
}

// gaussRules maps polynomial exactness order to its rule. An n-point
// Gauss-Legendre rule is exact through degree 2n-1, so the 1..4 point rules
// cover orders 1, 3, 5, 7.
var gaussRules = map[int]QuadratureRule{
	1: {
		Order: 1,
		XI:    []float64{0},
		W:     []float64{2},
	},
	3: {
		Order: 3,
		XI:    []float64{-0.5773502691896257, 0.5773502691896257},
		W:     []float64{1, 1},
	},
	5: {
		Order: 5,
		XI:    []float64{-0.7745966692414834, 0, 0.7745966692414834},
		W:     []float64{0.5555555555555556, 0.8888888888888888, 0.5555555555555556},
	},
	7: {
		Order: 7,
		XI: []float64{
			-0.8611363115940526, -0.3399810435848563,
			0.3399810435848563, 0.8611363115940526,
		},
		W: []float64{
			0.3478548451374538, 0.6521451548625461,
			0.6521451548625461, 0.3478548451374538,
		},
	},
}

// RuleForOrder looks up the tabulated rule exact for polynomials of
// degree <= order.
func RuleForOrder(order int) (rule QuadratureRule, err error) {
	var (
		ok bool
	)
	if rule, ok = gaussRules[order]; !ok {
		err = fmt.Errorf("%w: %d", ErrUnknownQuadratureOrder, order)
		return
	}
	return
}

// ReferenceIntegrate computes Sum w_k * f(xi_k) over [-1,1].
func (rule QuadratureRule) ReferenceIntegrate(f func(float64) float64) (res float64) {
	for k, xi := range rule.XI {
		res += rule.W[k] * f(xi)
	}
	return
}

// Integrate computes the integral of f over [a,b] by the affine substitution
// x = a*(1-xi)/2 + b*(1+xi)/2 with constant Jacobian (b-a)/2, delegating to
// ReferenceIntegrate.
func (rule QuadratureRule) Integrate(a, b float64, f func(float64) float64) (res float64, err error) {
	if a >= b {
		err = fmt.Errorf("%w: [%v,%v]", ErrInvalidDomain, a, b)
		return
	}
	var (
		jac = 0.5 * (b - a)
	)
	res = rule.ReferenceIntegrate(func(xi float64) float64 {
		x := 0.5 * (a*(1-xi) + b*(1+xi))
		return jac * f(x)
	})
	return
}
