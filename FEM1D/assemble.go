package FEM1D

import (
	"sync"

	"github.com/galerkin-dev/goritz/utils"
	"github.com/james-bowman/sparse"
)

// Assemble evaluates the weak form on every basis pair, producing the dense
// Ritz system A[i][j] = a(phi_j, phi_i), b[i] = l(phi_i). The trial function
// phi_j is always the first argument of the bilinear form and the test
// function phi_i the second, so assembly stays correct for asymmetric forms.
// Every entry is computed independently; no symmetry shortcutting. An empty
// basis yields a valid 0x0 system.
func Assemble(wf *WeakForm, basis Basis) (A utils.Matrix, b utils.Vector) {
	var (
		n = len(basis)
	)
	A = utils.NewMatrix(n, n)
	b = utils.NewVector(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, wf.A(basis[j], basis[i]))
		}
		b.Set(i, wf.L(basis[i]))
	}
	return
}

// AssembleParallel produces the identical system to Assemble with the rows
// partitioned across np goroutines. Entries are pure quadrature sums over
// immutable inputs, so the result is deterministic and needs no
// synchronization beyond the final join.
func AssembleParallel(wf *WeakForm, basis Basis, np int) (A utils.Matrix, b utils.Vector) {
	var (
		n  = len(basis)
		wg sync.WaitGroup
	)
	A = utils.NewMatrix(n, n)
	b = utils.NewVector(n)
	if np > n {
		np = n
	}
	if np < 1 {
		np = 1
	}
	if n == 0 {
		return
	}
	pm := utils.NewPartitionMap(np, n)
	for bn := 0; bn < np; bn++ {
		wg.Add(1)
		go func(bn int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(bn)
			for i := iMin; i < iMax; i++ {
				for j := 0; j < n; j++ {
					A.Set(i, j, wf.A(basis[j], basis[i]))
				}
				b.Set(i, wf.L(basis[i]))
			}
		}(bn)
	}
	wg.Wait()
	return
}

// AssembleSparse assembles only the entries within the given band
// |i-j| <= bandwidth into a CSR matrix, plus the full load vector. It is the
// right assembler for locally supported families like HatBasis, where every
// out-of-band bilinear entry is structurally zero (disjoint supports). For a
// globally supported basis it silently truncates - the caller chooses the
// bandwidth to match the basis.
func AssembleSparse(wf *WeakForm, basis Basis, bandwidth int) (A *sparse.CSR, b utils.Vector) {
	var (
		n   = len(basis)
		dok = sparse.NewDOK(n, n)
	)
	b = utils.NewVector(n)
	for i := 0; i < n; i++ {
		jMin, jMax := i-bandwidth, i+bandwidth
		if jMin < 0 {
			jMin = 0
		}
		if jMax > n-1 {
			jMax = n - 1
		}
		for j := jMin; j <= jMax; j++ {
			dok.Set(i, j, wf.A(basis[j], basis[i]))
		}
		b.Set(i, wf.L(basis[i]))
	}
	A = dok.ToCSR()
	return
}
