package FEM1D

import "errors"

// Sentinel errors for precondition violations. All are terminal for the
// current solve: the engine is pure, so nothing is retried and there is no
// partial state to roll back. Callers match with errors.Is.
var (
	// ErrInvalidDomain is returned by Integrate when a >= b.
	ErrInvalidDomain = errors.New("fem1d: invalid integration domain, need a < b")

	// ErrInvalidDomainLength is returned by NewWeakForm when L <= 0.
	ErrInvalidDomainLength = errors.New("fem1d: domain length must be > 0")

	// ErrUnknownQuadratureOrder is returned by RuleForOrder for orders
	// outside the tabulated set.
	ErrUnknownQuadratureOrder = errors.New("fem1d: no quadrature rule tabulated for order")

	// ErrEmptyBasis is returned by the basis constructors for size < 1.
	ErrEmptyBasis = errors.New("fem1d: basis must contain at least one function")

	// ErrSingularSystem wraps a dense-solve failure on a singular or
	// unusably ill-conditioned Ritz system.
	ErrSingularSystem = errors.New("fem1d: singular or ill-conditioned linear system")
)
