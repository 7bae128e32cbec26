package InputParameters

import (
	"fmt"

	"github.com/galerkin-dev/goritz/FEM1D"
	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type BVPParameters struct {
	Title           string  `yaml:"Title"`
	DomainLength    float64 `yaml:"DomainLength"`
	QuadratureOrder int     `yaml:"QuadratureOrder"`
	BasisType       string  `yaml:"BasisType"`
	BasisSize       int     `yaml:"BasisSize"`
	DirichletValue  float64 `yaml:"DirichletValue"`
	NeumannFlux     float64 `yaml:"NeumannFlux"`
	PCoefficient    string  `yaml:"PCoefficient"`
	QCoefficient    string  `yaml:"QCoefficient"`
	RCoefficient    string  `yaml:"RCoefficient"`
}

func (bp *BVPParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BVPParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("%8.5f\t\t= DomainLength\n", bp.DomainLength)
	fmt.Printf("[%d]\t\t\t= Quadrature Order\n", bp.QuadratureOrder)
	fmt.Printf("[%s]\t\t= Basis Type\n", bp.BasisType)
	fmt.Printf("[%d]\t\t\t= Basis Size\n", bp.BasisSize)
	fmt.Printf("%8.5f\t\t= Dirichlet Value u(0)\n", bp.DirichletValue)
	fmt.Printf("%8.5f\t\t= Neumann Flux q*u'(L)\n", bp.NeumannFlux)
	fmt.Printf("[%s] [%s] [%s]\t= p, q, r coefficients\n",
		bp.PCoefficient, bp.QCoefficient, bp.RCoefficient)
}

// BVP converts the parsed parameters into a solver definition, resolving the
// named coefficient functions through the registry.
func (bp *BVPParameters) BVP() (def FEM1D.BVP, err error) {
	var (
		p, q, r func(float64) float64
		bt      FEM1D.BasisType
	)
	if p, err = CoefficientFunc(bp.PCoefficient); err != nil {
		return
	}
	if q, err = CoefficientFunc(bp.QCoefficient); err != nil {
		return
	}
	if r, err = CoefficientFunc(bp.RCoefficient); err != nil {
		return
	}
	switch bp.BasisType {
	case "", "Monomial", "monomial":
		bt = FEM1D.Monomial
	case "Hat", "hat":
		bt = FEM1D.Hat
	default:
		err = fmt.Errorf("unknown basis type [%s]", bp.BasisType)
		return
	}
	def = FEM1D.BVP{
		Length:          bp.DomainLength,
		P:               p,
		Q:               q,
		R:               r,
		C:               bp.DirichletValue,
		D:               bp.NeumannFlux,
		QuadratureOrder: bp.QuadratureOrder,
		BasisType:       bt,
		BasisSize:       bp.BasisSize,
	}
	return
}
