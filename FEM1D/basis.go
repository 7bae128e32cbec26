package FEM1D

import (
	"fmt"
	"math"
)

// Basis is an ordered collection of trial/test functions, each vanishing at
// the Dirichlet end x=0. The slice order fixes the row/column indexing of
// the assembled linear system.
type Basis []Differentiable

type BasisType uint8

const (
	Monomial BasisType = iota
	Hat
)

func (bt BasisType) String() string {
	switch bt {
	case Monomial:
		return "Monomial"
	case Hat:
		return "Hat"
	}
	return fmt.Sprintf("BasisType(%d)", bt)
}

// MonomialBasis returns phi_k(x) = x^k with phi_k'(x) = k x^(k-1) for
// k = 1..size. Every member vanishes at x=0 by construction.
func MonomialBasis(size int) (basis Basis, err error) {
	if size < 1 {
		err = fmt.Errorf("%w: size = %d", ErrEmptyBasis, size)
		return
	}
	basis = make(Basis, size)
	for i := range basis {
		k := float64(i + 1)
		basis[i] = Differentiable{
			Eval:  func(x float64) float64 { return math.Pow(x, k) },
			Deriv: func(x float64) float64 { return k * math.Pow(x, k-1) },
		}
	}
	return
}

// HatBasis returns the piecewise-linear hat functions on the uniform nodes
// x_k = k*L/size, k = 1..size. Interior hats rise over [x_(k-1), x_k] and
// fall over [x_k, x_(k+1)]; the last member is the half-hat pinned at x=L so
// the natural boundary condition remains representable. All members vanish
// at x=0. Members have local support of one node to either side, so the
// stiffness matrix is tridiagonal - see AssembleSparse.
func HatBasis(size int, L float64) (basis Basis, err error) {
	if size < 1 {
		err = fmt.Errorf("%w: size = %d", ErrEmptyBasis, size)
		return
	}
	if L <= 0 {
		err = fmt.Errorf("%w: L = %v", ErrInvalidDomainLength, L)
		return
	}
	var (
		h = L / float64(size)
	)
	basis = make(Basis, size)
	for i := range basis {
		xc := float64(i+1) * h
		left, right := xc-h, xc+h
		if right > L {
			right = L // half-hat at the Neumann end
		}
		basis[i] = Differentiable{
			Eval:  hatEval(left, xc, right),
			Deriv: hatDeriv(left, xc, right),
		}
	}
	return
}

func hatEval(left, xc, right float64) func(float64) float64 {
	return func(x float64) float64 {
		switch {
		case x <= left, x >= right && right > xc:
			return 0
		case x <= xc:
			return (x - left) / (xc - left)
		default:
			return (right - x) / (right - xc)
		}
	}
}

func hatDeriv(left, xc, right float64) func(float64) float64 {
	return func(x float64) float64 {
		switch {
		case x <= left || x > right:
			return 0
		case x <= xc:
			return 1 / (xc - left)
		default:
			return -1 / (right - xc)
		}
	}
}

// VanishesAt reports whether every basis member evaluates to zero at x
// within tol. Pluggable basis families must satisfy this at the Dirichlet
// point; the supplied generators do so by construction.
func VanishesAt(basis Basis, x, tol float64) bool {
	for _, phi := range basis {
		if math.Abs(phi.Eval(x)) > tol {
			return false
		}
	}
	return true
}
