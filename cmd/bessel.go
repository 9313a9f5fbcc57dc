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
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/goquad/special"
)

// BesselCmd compares the two K_n evaluators
var BesselCmd = &cobra.Command{
	Use:   "bessel",
	Short: "Compare the polynomial and quadrature evaluations of the Bessel function K_n(x)",
	Long: `
goquad bessel --n 2 --x 0.92`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		x, _ := cmd.Flags().GetFloat64("x")
		return RunBessel(cmd.OutOrStdout(), n, x)
	},
}

func init() {
	rootCmd.AddCommand(BesselCmd)
	BesselCmd.Flags().IntP("n", "n", 2, "order of K_n")
	BesselCmd.Flags().Float64P("x", "x", 1, "argument, x > 0")
}

func RunBessel(out io.Writer, n int, x float64) error {
	if n < 0 || !(x > 0) {
		return fmt.Errorf("K_%d(%v) needs n >= 0 and x > 0", n, x)
	}
	start := time.Now()
	poly := special.BesselK(n, x)
	tPoly := time.Since(start)
	start = time.Now()
	quad := special.BesselKQuadrature(n, x)
	tQuad := time.Since(start)
	fmt.Fprintf(out, "K_%d(%g)\n", n, x)
	fmt.Fprintf(out, "%-12s %22.15e %12v\n", "polynomial", poly, tPoly)
	fmt.Fprintf(out, "%-12s %22.15e %12v\n", "quadrature", quad, tQuad)
	fmt.Fprintf(out, "%-12s %22.3e\n", "rel. diff", (poly-quad)/quad)
	return nil
}
