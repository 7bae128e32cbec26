package InputParameters

import (
	"fmt"
	"math"
	"sort"
)

// coefficients is the fixed table of scalar functions a case file may name
// for p, q and r. The library API takes arbitrary closures; this registry
// exists only so YAML cases can refer to coefficients by name.
var coefficients = map[string]func(float64) float64{
	"zero":    func(x float64) float64 { return 0 },
	"one":     func(x float64) float64 { return 1 },
	"x":       func(x float64) float64 { return x },
	"x^2":     func(x float64) float64 { return x * x },
	"1+x":     func(x float64) float64 { return 1 + x },
	"1+x^2":   func(x float64) float64 { return 1 + x*x },
	"sin(x)":  func(x float64) float64 { return math.Sin(x) },
	"cos(x)":  func(x float64) float64 { return math.Cos(x) },
	"exp(x)":  func(x float64) float64 { return math.Exp(x) },
	"exp(-x)": func(x float64) float64 { return math.Exp(-x) },
}

// CoefficientFunc resolves a coefficient name from the registry. The empty
// name means the zero function, so a case file can omit p or r.
func CoefficientFunc(name string) (f func(float64) float64, err error) {
	var (
		ok bool
	)
	if name == "" {
		name = "zero"
	}
	if f, ok = coefficients[name]; !ok {
		err = fmt.Errorf("unknown coefficient function [%s], have %v", name, CoefficientNames())
	}
	return
}

// CoefficientNames lists the registered names in stable order.
func CoefficientNames() (names []string) {
	for name := range coefficients {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
