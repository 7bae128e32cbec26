package FEM1D

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestAssembly(t *testing.T) {
	var (
		zero = func(float64) float64 { return 0 }
		one  = func(float64) float64 { return 1 }
	)
	// -u'' = 1 on ]0,10[, u(0)=1, u'(10)=1, monomials x..x^4, order 7.
	// Closed forms: A[i][j] = i*j*10^(i+j-1)/(i+j-1), b[i] = 10^i + 10^(i+1)/(i+1)
	{
		rule, _ := RuleForOrder(7)
		wf, err := NewWeakForm(rule, 10, zero, one, one, 1, 1)
		assert.NoError(t, err)
		basis, _ := MonomialBasis(4)
		A, b := Assemble(wf, basis)

		expectedA := [][]float64{
			{10, 100, 1000, 10000},
			{100, 1333.33333333, 15000, 160000},
			{1000, 15000, 180000, 2000000},
			{10000, 160000, 2000000, 22857142.857142857},
		}
		expectedB := []float64{60, 433.33333333, 3500, 30000}
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.True(t, nearTol(A.At(i, j), expectedA[i][j], 1.e-03), "i,j = %d,%d", i, j)
			}
			assert.True(t, nearTol(b.AtVec(i), expectedB[i], 1.e-03), "i = %d", i)
		}
		fmt.Printf("A = \n%v\n", mat.Formatted(A.M, mat.Squeeze()))
		fmt.Printf("b = \n%v\n", mat.Formatted(b.V, mat.Squeeze()))

		// the self-adjoint model problem assembles symmetrically
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.True(t, near(A.At(i, j), A.At(j, i)))
			}
		}
	}
	// Empty basis produces a valid degenerate 0x0 system
	{
		rule, _ := RuleForOrder(3)
		wf, _ := NewWeakForm(rule, 1, zero, one, one, 0, 0)
		A, b := Assemble(wf, Basis{})
		nr, nc := A.Dims()
		assert.Equal(t, 0, nr)
		assert.Equal(t, 0, nc)
		assert.Equal(t, 0, b.Len())
	}
	// Parallel assembly produces the identical entries, any degree
	{
		rule, _ := RuleForOrder(7)
		p := func(x float64) float64 { return 1 + x }
		wf, _ := NewWeakForm(rule, 5, p, one, one, 0, 2)
		basis, _ := MonomialBasis(5)
		A, b := Assemble(wf, basis)
		for _, np := range []int{1, 2, 3, 8} {
			Ap, bp := AssembleParallel(wf, basis, np)
			for i := 0; i < 5; i++ {
				for j := 0; j < 5; j++ {
					assert.Equal(t, A.At(i, j), Ap.At(i, j))
				}
				assert.Equal(t, b.AtVec(i), bp.AtVec(i))
			}
		}
	}
	// Banded sparse assembly of the hat basis agrees with dense assembly;
	// out-of-band dense entries are structural zeros
	{
		rule, _ := RuleForOrder(5)
		wf, _ := NewWeakForm(rule, 3, one, one, one, 0, 1)
		basis, _ := HatBasis(6, 3)
		A, b := Assemble(wf, basis)
		As, bs := AssembleSparse(wf, basis, 1)
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				if abs(i-j) <= 1 {
					assert.Equal(t, A.At(i, j), As.At(i, j))
				} else {
					assert.Equal(t, 0.0, A.At(i, j))
					assert.Equal(t, 0.0, As.At(i, j))
				}
			}
			assert.Equal(t, b.AtVec(i), bs.AtVec(i))
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func benchWeakForm() (*WeakForm, Basis) {
	rule, _ := RuleForOrder(7)
	one := func(float64) float64 { return 1 }
	wf, _ := NewWeakForm(rule, 10, one, one, one, 1, 1)
	basis, _ := MonomialBasis(12)
	return wf, basis
}

func BenchmarkAssemble(b *testing.B) {
	wf, basis := benchWeakForm()
	for i := 0; i < b.N; i++ {
		Assemble(wf, basis)
	}
}

func BenchmarkAssembleParallel(b *testing.B) {
	wf, basis := benchWeakForm()
	for i := 0; i < b.N; i++ {
		AssembleParallel(wf, basis, 4)
	}
}
