package FEM1D

import "fmt"

// Differentiable pairs a scalar function with its derivative. The pairing is
// a contract with the caller: the engine never differentiates, it only
// evaluates whichever member the weak form calls for.
type Differentiable struct {
	Eval  func(x float64) float64
	Deriv func(x float64) float64
}

// WeakForm is the variational statement of the boundary value problem
//
//	-(q u')' + p u = r   on ]0,L[,   u(0) = c,   q u'(L) = d
//
// shifted by a particular function u0 with u0(0) = c, so that the unknown
// delta_u = u - u0 vanishes at the Dirichlet end. A and L below are the
// bilinear and linear forms of that shifted problem.
type WeakForm struct {
	Rule    QuadratureRule
	Length  float64
	P, Q, R func(float64) float64
	C, D    float64
}

// NewWeakForm builds the bilinear/linear form pair from the problem
// coefficients. p, q, r must be defined on [0,L]; they are never evaluated
// outside it. c is the Dirichlet value at x=0 and enters only through the
// caller's particular function at reconstruction time; d is the Neumann flux
// at x=L and enters L exactly once as a boundary term.
func NewWeakForm(rule QuadratureRule, L float64, p, q, r func(float64) float64, c, d float64) (wf *WeakForm, err error) {
	if L <= 0 {
		err = fmt.Errorf("%w: L = %v", ErrInvalidDomainLength, L)
		return
	}
	wf = &WeakForm{
		Rule:   rule,
		Length: L,
		P:      p,
		Q:      q,
		R:      r,
		C:      c,
		D:      d,
	}
	return
}

// A evaluates the bilinear form
//
//	a(u,w) = Int_0^L [ p u w + q u' w' ] dx
//
// by quadrature. Symmetry in (u,w) is a consequence of p and q appearing
// identically in both slots, not a structural guarantee.
func (wf *WeakForm) A(u, w Differentiable) (res float64) {
	var (
		err error
	)
	res, err = wf.Rule.Integrate(0, wf.Length, func(x float64) float64 {
		return wf.P(x)*u.Eval(x)*w.Eval(x) + wf.Q(x)*u.Deriv(x)*w.Deriv(x)
	})
	if err != nil {
		panic(err) // unreachable, NewWeakForm guarantees Length > 0
	}
	return
}

// L evaluates the linear form
//
//	l(w) = d w(L) + Int_0^L r w dx
//
// where the first term carries the natural boundary condition at x=L.
func (wf *WeakForm) L(w Differentiable) (res float64) {
	var (
		err error
	)
	res, err = wf.Rule.Integrate(0, wf.Length, func(x float64) float64 {
		return wf.R(x) * w.Eval(x)
	})
	if err != nil {
		panic(err)
	}
	res += wf.D * w.Eval(wf.Length)
	return
}
