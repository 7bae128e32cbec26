package InputParameters

import (
	"testing"

	"github.com/galerkin-dev/goritz/FEM1D"
	"github.com/stretchr/testify/assert"
)

var caseYAML = `
Title: Uniform load with end flux
DomainLength: 10
QuadratureOrder: 7
BasisType: Monomial
BasisSize: 4
DirichletValue: 1
NeumannFlux: 1
PCoefficient: zero
QCoefficient: one
RCoefficient: one
`

func TestBVPParameters(t *testing.T) {
	// YAML case parses into the full parameter set
	{
		bp := &BVPParameters{}
		err := bp.Parse([]byte(caseYAML))
		assert.NoError(t, err)
		assert.Equal(t, "Uniform load with end flux", bp.Title)
		assert.Equal(t, 10.0, bp.DomainLength)
		assert.Equal(t, 7, bp.QuadratureOrder)
		assert.Equal(t, "Monomial", bp.BasisType)
		assert.Equal(t, 4, bp.BasisSize)
		assert.Equal(t, 1.0, bp.DirichletValue)
		assert.Equal(t, 1.0, bp.NeumannFlux)
		bp.Print()

		// and resolves into a solvable definition
		def, err := bp.BVP()
		assert.NoError(t, err)
		assert.Equal(t, FEM1D.Monomial, def.BasisType)
		assert.Equal(t, 0.0, def.P(3))
		assert.Equal(t, 1.0, def.Q(3))
		sol, err := FEM1D.SolveBVP(def)
		assert.NoError(t, err)
		assert.InDelta(t, 11, sol.Coeffs.AtVec(0), 1.e-05)
		assert.InDelta(t, -0.5, sol.Coeffs.AtVec(1), 1.e-05)
	}
	// Unknown coefficient names and basis types are rejected
	{
		bp := &BVPParameters{}
		assert.NoError(t, bp.Parse([]byte(caseYAML)))
		bp.RCoefficient = "tan(x)"
		_, err := bp.BVP()
		assert.Error(t, err)

		bp.RCoefficient = "one"
		bp.BasisType = "Fourier"
		_, err = bp.BVP()
		assert.Error(t, err)
	}
	// Empty coefficient names default to the zero function
	{
		f, err := CoefficientFunc("")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, f(5))
	}
	// The registry lists its names in stable order
	{
		names := CoefficientNames()
		assert.Contains(t, names, "one")
		assert.Contains(t, names, "sin(x)")
		assert.True(t, sorted(names))
	}
}

func sorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
