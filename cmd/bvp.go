/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/galerkin-dev/goritz/FEM1D"
	"github.com/galerkin-dev/goritz/InputParameters"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// BvpCmd represents the bvp command
var BvpCmd = &cobra.Command{
	Use:   "bvp",
	Short: "Solve a 1D Boundary Value Problem",
	Long: `
Solves the mixed Dirichlet/Neumann boundary value problem described by a YAML
case file, then prints the assembled Ritz system, the solution coefficients
and samples of the reconstructed solution,

goritz bvp --case case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		bc := &BVPCase{}
		bc.CaseFile, _ = cmd.Flags().GetString("case")
		bc.Samples, _ = cmd.Flags().GetInt("samples")
		bc.Profile, _ = cmd.Flags().GetBool("profile")
		if bc.Profile {
			defer profile.Start().Stop()
		}
		if err := RunBVP(bc); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(BvpCmd)
	BvpCmd.Flags().StringP("case", "c", "case.yaml", "YAML case file describing the problem")
	BvpCmd.Flags().IntP("samples", "s", 11, "number of evenly spaced solution samples to print")
	BvpCmd.Flags().Bool("profile", false, "write a CPU profile of the solve")
}

type BVPCase struct {
	CaseFile string
	Samples  int
	Profile  bool
}

func RunBVP(bc *BVPCase) (err error) {
	var (
		data []byte
		bp   = &InputParameters.BVPParameters{}
		def  FEM1D.BVP
		sol  *FEM1D.Solution
	)
	if data, err = os.ReadFile(bc.CaseFile); err != nil {
		return
	}
	if err = bp.Parse(data); err != nil {
		return
	}
	bp.Print()
	if def, err = bp.BVP(); err != nil {
		return
	}
	if sol, err = FEM1D.SolveBVP(def); err != nil {
		return
	}
	fmt.Print(sol.A.Print("A"))
	fmt.Print(sol.B.Print("b"))
	fmt.Print(sol.Coeffs.Print("coefficients"))
	if bc.Samples > 1 {
		dx := def.Length / float64(bc.Samples-1)
		fmt.Printf("       x        u(x)\n")
		for i := 0; i < bc.Samples; i++ {
			x := float64(i) * dx
			fmt.Printf("%8.4f  %10.6f\n", x, sol.U(x))
		}
	}
	return
}
