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
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/goquad/InputParameters"
	"github.com/notargets/goquad/adaptive"
	"github.com/notargets/goquad/thermal"
	"github.com/notargets/goquad/utils"
)

type DensityRun struct {
	ICFile      string
	HistoryFile string
	Plot, Perf  bool
	Input       *InputParameters.DensityInput
}

// DensityCmd represents the density command
var DensityCmd = &cobra.Command{
	Use:   "density",
	Short: "Number density of a relativistic thermal gas by Gauss-Laguerre, adaptive and analytic evaluation",
	Long: `
Evaluates n/T^3 of an ideal Bose, Boltzmann or Fermi gas with a Gauss-Laguerre
rule and with the compactified adaptive midpoint rule, next to the closed form
of the Boltzmann limit.

goquad density --T 150 --mu 0 --m 138 --eta boltzmann
goquad density -I pion.yaml --history pion.csv --plot`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var dr *DensityRun
		if dr, err = processDensityInput(cmd); err != nil {
			return
		}
		return RunDensity(cmd.OutOrStdout(), dr)
	},
}

var densityKeys = []string{"mu", "m", "d", "eta", "order", "tol", "maxIterations", "workers", "rect"}

func init() {
	rootCmd.AddCommand(DensityCmd)
	def := InputParameters.NewDensityInput()
	DensityCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Temperatures\n\t- Mass\n\t- Statistics")
	DensityCmd.Flags().Float64Slice("T", def.Temperatures, "temperatures, one evaluation each")
	DensityCmd.Flags().Float64("mu", def.Mu, "chemical potential")
	DensityCmd.Flags().Float64("m", def.Mass, "particle mass")
	DensityCmd.Flags().Float64("d", def.Degeneracy, "degeneracy")
	DensityCmd.Flags().String("eta", def.Statistics, "statistics: bose, boltzmann, fermi (or -1, 0, 1)")
	DensityCmd.Flags().Int("order", def.Order, "Gauss-Laguerre order")
	DensityCmd.Flags().Float64("tol", def.Tolerance, "adaptive tolerance")
	DensityCmd.Flags().Int("maxIterations", def.MaxIterations, "adaptive iteration limit, counting the first estimate")
	DensityCmd.Flags().Int("workers", def.Workers, "goroutines per midpoint sum")
	DensityCmd.Flags().Int("rect", def.Rectangles, "also evaluate the midpoint rule with this many rectangles")
	DensityCmd.Flags().String("history", "", "write the adaptive convergence record to this CSV file")
	DensityCmd.Flags().Bool("plot", false, "plot the adaptive error estimates")
	DensityCmd.Flags().Bool("perf", false, "count CPU instructions per method (Linux)")
	for _, key := range densityKeys {
		_ = viper.BindPFlag("density."+key, DensityCmd.Flags().Lookup(key))
	}
}

// Values from the input file are overridden by flags, the config file and
// GOQUAD_DENSITY_* environment variables.
func processDensityInput(cmd *cobra.Command) (dr *DensityRun, err error) {
	dr = &DensityRun{Input: InputParameters.NewDensityInput()}
	dr.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
	dr.HistoryFile, _ = cmd.Flags().GetString("history")
	dr.Plot, _ = cmd.Flags().GetBool("plot")
	dr.Perf, _ = cmd.Flags().GetBool("perf")
	ip := dr.Input
	if len(dr.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(dr.ICFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("%s: %w", dr.ICFile, err)
			return
		}
	}
	if cmd.Flags().Changed("T") {
		ip.Temperatures, _ = cmd.Flags().GetFloat64Slice("T")
	}
	set := func(key string) bool { return viper.IsSet("density." + key) }
	if set("mu") {
		ip.Mu = viper.GetFloat64("density.mu")
	}
	if set("m") {
		ip.Mass = viper.GetFloat64("density.m")
	}
	if set("d") {
		ip.Degeneracy = viper.GetFloat64("density.d")
	}
	if set("eta") {
		ip.Statistics = viper.GetString("density.eta")
	}
	if set("order") {
		ip.Order = viper.GetInt("density.order")
	}
	if set("tol") {
		ip.Tolerance = viper.GetFloat64("density.tol")
	}
	if set("maxIterations") {
		ip.MaxIterations = viper.GetInt("density.maxIterations")
	}
	if set("workers") {
		ip.Workers = viper.GetInt("density.workers")
	}
	if set("rect") {
		ip.Rectangles = viper.GetInt("density.rect")
	}
	return
}

type densityRow struct {
	params                    thermal.Params
	fixed, adapt, analytic    float64
	rect                      float64
	res                       adaptive.Result
	fixedInstr, adaptiveInstr uint64
}

func RunDensity(out io.Writer, dr *DensityRun) (err error) {
	var (
		ip = dr.Input
		pp []thermal.Params
	)
	if pp, err = ip.Params(); err != nil {
		return
	}
	model := thermal.NewModel(
		thermal.WithMaxIterations(ip.MaxIterations),
		thermal.WithWorkers(ip.Workers),
		thermal.WithLogger(slog.Default()),
	)
	rows := make([]densityRow, len(pp))
	for i, p := range pp {
		row := &rows[i]
		row.params = p
		if row.fixed, err = model.Density(p, thermal.Fixed(ip.Order)); err != nil {
			return
		}
		if row.adapt, row.res, err = model.DensityAdaptive(p, ip.Tolerance); err != nil {
			return
		}
		if row.analytic, err = model.DensityAnalyticBoltzmann(p.T, p.Mu, p.M, p.D); err != nil {
			return
		}
		if ip.Rectangles > 0 {
			if row.rect, err = model.Density(p, thermal.Midpoint(ip.Rectangles)); err != nil {
				return
			}
		}
		if dr.Perf {
			if row.fixedInstr, err = countInstructions(func() error {
				_, err := model.Density(p, thermal.Fixed(ip.Order))
				return err
			}); err != nil {
				slog.Warn("instruction counters unavailable", "error", err)
				dr.Perf = false
				err = nil
			} else if row.adaptiveInstr, err = countInstructions(func() error {
				_, _, err := model.DensityAdaptive(p, ip.Tolerance)
				return err
			}); err != nil {
				return
			}
		}
	}
	slog.Debug("density run finished", "memory", utils.GetMemUsage())
	printDensityTable(out, ip, rows, dr.Perf)
	if len(dr.HistoryFile) != 0 {
		var f *os.File
		if f, err = os.Create(dr.HistoryFile); err != nil {
			return
		}
		if err = writeHistory(f, rows); err != nil {
			_ = f.Close()
			return
		}
		if err = f.Close(); err != nil {
			return
		}
		fmt.Fprintf(out, "convergence record written to %s\n", dr.HistoryFile)
	}
	if dr.Plot {
		for _, row := range rows {
			plotHistory(out, row)
		}
	}
	return
}

func printDensityTable(out io.Writer, ip *InputParameters.DensityInput, rows []densityRow, perf bool) {
	fmt.Fprintf(out, "%s: M=%g Mu=%g D=%g %s statistics, n/T^3\n",
		ip.Title, ip.Mass, ip.Mu, ip.Degeneracy, rows[0].params.Eta)
	fmt.Fprintf(out, "%10s %20s %20s %20s %6s",
		"T", thermal.Fixed(ip.Order), thermal.Adaptive(ip.Tolerance), "Boltzmann limit", "iter")
	if ip.Rectangles > 0 {
		fmt.Fprintf(out, " %20s", thermal.Midpoint(ip.Rectangles))
	}
	if perf {
		fmt.Fprintf(out, " %14s %14s", "instr fixed", "instr adaptive")
	}
	fmt.Fprintln(out)
	for _, row := range rows {
		mark := " "
		if !row.res.Converged {
			mark = "*"
		}
		fmt.Fprintf(out, "%10g %20.15f %20.15f%s%20.15f %6d",
			row.params.T, row.fixed, row.adapt, mark, row.analytic, row.res.Iterations)
		if ip.Rectangles > 0 {
			fmt.Fprintf(out, " %20.15f", row.rect)
		}
		if perf {
			fmt.Fprintf(out, " %14d %14d", row.fixedInstr, row.adaptiveInstr)
		}
		fmt.Fprintln(out)
	}
	if rows[0].params.Eta == thermal.Boltzmann {
		fmt.Fprintf(out, "%10s %20s %20s\n", "T", "fixed/analytic-1", "adaptive/analytic-1")
		for _, row := range rows {
			fmt.Fprintf(out, "%10g %20.3e %20.3e\n", row.params.T,
				row.fixed/row.analytic-1, row.adapt/row.analytic-1)
		}
	}
	for _, row := range rows {
		if err := row.res.Err(); err != nil {
			fmt.Fprintf(out, "* T=%g: %v\n", row.params.T, err)
		}
	}
}

func historyTitle(p thermal.Params) string { return "T=" + strconv.FormatFloat(p.T, 'g', -1, 64) }

// Rows of title, iteration, subintervals, estimate, error, as read by tools/convOrder
func writeHistory(w io.Writer, rows []densityRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"title", "iteration", "subintervals", "estimate", "error"}); err != nil {
		return err
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', 17, 64) }
	for _, row := range rows {
		title := historyTitle(row.params)
		for _, s := range row.res.History {
			if err := cw.Write([]string{title, strconv.Itoa(s.Iteration), strconv.Itoa(s.Subintervals),
				ff(s.Estimate), ff(s.ErrorEstimate)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func plotHistory(out io.Writer, row densityRow) {
	var data []float64
	for _, s := range row.res.History {
		e := math.Abs(s.ErrorEstimate)
		if e == 0 || math.IsInf(e, 0) || math.IsNaN(e) {
			continue
		}
		data = append(data, math.Log10(e))
	}
	if len(data) < 2 {
		return
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("log10 |error estimate| per doubling, %s", historyTitle(row.params))),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)
}
