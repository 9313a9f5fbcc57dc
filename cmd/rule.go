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
	"math"

	"github.com/spf13/cobra"

	"github.com/notargets/goquad/gauss"
)

// RuleCmd prints the nodes and weights of a Gaussian rule
var RuleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Print the nodes and weights of a Gauss-Legendre, Hermite or Laguerre rule",
	Long: `
Prints the nodes and weights of a Gaussian quadrature rule. Legendre rules are
remapped onto [a,b] when both bounds are given.

goquad rule --family hermite --order 8
goquad rule --family legendre --order 5 --a 0 --b 2`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			rr     = &RuleRequest{}
			family string
		)
		family, _ = cmd.Flags().GetString("family")
		if rr.Family, err = gauss.ParseFamily(family); err != nil {
			return
		}
		rr.Order, _ = cmd.Flags().GetInt("order")
		rr.A, rr.B = math.NaN(), math.NaN()
		if cmd.Flags().Changed("a") || cmd.Flags().Changed("b") {
			rr.A, _ = cmd.Flags().GetFloat64("a")
			rr.B, _ = cmd.Flags().GetFloat64("b")
		}
		return RunRule(cmd.OutOrStdout(), rr)
	},
}

type RuleRequest struct {
	Family gauss.Family
	Order  int
	A, B   float64 // Remap interval for Legendre rules, NaN to keep [-1,1]
}

func init() {
	rootCmd.AddCommand(RuleCmd)
	RuleCmd.Flags().StringP("family", "f", "legendre", "polynomial family: legendre, hermite or laguerre")
	RuleCmd.Flags().IntP("order", "n", 8, "number of nodes")
	RuleCmd.Flags().Float64("a", -1, "lower bound of the remapped Legendre rule")
	RuleCmd.Flags().Float64("b", 1, "upper bound of the remapped Legendre rule")
}

func RunRule(out io.Writer, rr *RuleRequest) (err error) {
	var r gauss.Rule
	if r, err = gauss.DefaultCache.Rule(rr.Family, rr.Order); err != nil {
		return
	}
	if !math.IsNaN(rr.A) || !math.IsNaN(rr.B) {
		if r, err = gauss.RemapLegendre(r, rr.A, rr.B); err != nil {
			return
		}
	}
	fmt.Fprintf(out, "# Gauss-%v, order %d, on [%g,%g]\n", r.Family, r.Order(), r.A, r.B)
	fmt.Fprintf(out, "# %4s %24s %24s\n", "i", "node", "weight")
	for i := range r.X {
		fmt.Fprintf(out, "  %4d %24.17e %24.17e\n", i, r.X[i], r.W[i])
	}
	return
}
