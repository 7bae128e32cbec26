package FEM1D

import (
	"fmt"

	"github.com/galerkin-dev/goritz/utils"
)

// BVP collects everything needed to solve
//
//	-(q u')' + p u = r   on ]0,L[,   u(0) = c,   q u'(L) = d
//
// by the Ritz-Galerkin method. Well-posedness of the resulting linear system
// depends on the coefficients and basis; it is a precondition, not something
// the solver checks beyond surfacing ErrSingularSystem from the dense solve.
type BVP struct {
	Length          float64
	P, Q, R         func(float64) float64
	C, D            float64
	QuadratureOrder int
	BasisType       BasisType
	BasisSize       int
}

// Solution carries the assembled system, its coefficients and the
// reconstructed approximate solution U(x) = u0(x) + Sum x_j phi_j(x),
// with u0 the constant Dirichlet value.
type Solution struct {
	A      utils.Matrix
	B      utils.Vector
	Coeffs utils.Vector
	Basis  Basis
	U      func(float64) float64
}

// Solve runs the dense solve on an assembled Ritz system. Singular and
// unusably ill-conditioned systems surface as ErrSingularSystem. A 0x0
// system yields an empty coefficient vector.
func Solve(A utils.Matrix, b utils.Vector) (x utils.Vector, err error) {
	if x, err = A.LUSolve(b); err != nil {
		err = fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	return
}

// Reconstruct combines the particular function u0 with the weighted basis:
// u(x) = u0(x) + Sum coeffs_j phi_j(x).
func Reconstruct(u0 func(float64) float64, basis Basis, coeffs utils.Vector) func(float64) float64 {
	return func(x float64) (res float64) {
		res = u0(x)
		for j, phi := range basis {
			res += coeffs.AtVec(j) * phi.Eval(x)
		}
		return
	}
}

// SolveBVP is the end-to-end driver: rule lookup, weak form, basis,
// assembly, dense solve, reconstruction.
func SolveBVP(def BVP) (sol *Solution, err error) {
	var (
		rule  QuadratureRule
		wf    *WeakForm
		basis Basis
	)
	if rule, err = RuleForOrder(def.QuadratureOrder); err != nil {
		return
	}
	if wf, err = NewWeakForm(rule, def.Length, def.P, def.Q, def.R, def.C, def.D); err != nil {
		return
	}
	switch def.BasisType {
	case Hat:
		basis, err = HatBasis(def.BasisSize, def.Length)
	case Monomial:
		fallthrough
	default:
		basis, err = MonomialBasis(def.BasisSize)
	}
	if err != nil {
		return
	}
	A, b := Assemble(wf, basis)
	x, err := Solve(A, b)
	if err != nil {
		return
	}
	u0 := func(float64) float64 { return def.C }
	sol = &Solution{
		A:      A,
		B:      b,
		Coeffs: x,
		Basis:  basis,
		U:      Reconstruct(u0, basis, x),
	}
	return
}
