package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	csvFile string
)

// Reads the convergence record written by "goquad density --history" and
// prints the observed order of the midpoint rule at every refinement.
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(f)
	if err != nil {
		panic(err)
	}
	titles := make([]string, 0, len(studies))
	for title := range studies {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		cs := studies[title]
		fmt.Printf("Title = %s, Refinements = %d\n", cs.title, len(cs.subintervals))
		order := cs.ObservedOrder()
		for i := range cs.subintervals {
			fmt.Printf("%d, %d, %.15g, %.3e, %5.2f\n",
				cs.iteration[i], cs.subintervals[i], cs.estimate[i], cs.errorEstimate[i], order[i])
		}
	}
}

type ConvergenceStudy struct {
	title         string
	iteration     []int
	subintervals  []int
	estimate      []float64
	errorEstimate []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(iteration, subintervals int, estimate, errorEstimate float64) {
	cs.iteration = append(cs.iteration, iteration)
	cs.subintervals = append(cs.subintervals, subintervals)
	cs.estimate = append(cs.estimate, estimate)
	cs.errorEstimate = append(cs.errorEstimate, errorEstimate)
}

// ObservedOrder is log2 of the ratio of successive error estimates over one
// halving of h; NaN where it is undefined. The midpoint rule should show 2.
func (cs *ConvergenceStudy) ObservedOrder() (order []float64) {
	order = make([]float64, len(cs.errorEstimate))
	for i := range order {
		order[i] = math.NaN()
		if i < 1 {
			continue
		}
		var (
			ePrev, e = math.Abs(cs.errorEstimate[i-1]), math.Abs(cs.errorEstimate[i])
			ratio    = float64(cs.subintervals[i]) / float64(cs.subintervals[i-1])
		)
		if math.IsInf(ePrev, 0) || e == 0 || ePrev == 0 || ratio <= 1 {
			continue
		}
		order[i] = math.Log(ePrev/e) / math.Log(ratio)
	}
	return
}

// Rows are title, iteration, subintervals, estimate, error after a header.
func readCSV(rdr io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records          [][]string
		ok               bool
		cs               *ConvergenceStudy
		it, n            int
		estimate, errEst float64
	)
	studies = make(map[string]*ConvergenceStudy)
	r := csv.NewReader(bufio.NewReader(rdr))
	r.FieldsPerRecord = -1
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 5 {
			err = fmt.Errorf("line %d: want 5 fields, have %d", i+1, len(rec))
			return
		}
		title := rec[0]
		if it, err = strconv.Atoi(rec[1]); err != nil {
			return
		}
		if n, err = strconv.Atoi(rec[2]); err != nil {
			return
		}
		if estimate, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return
		}
		if errEst, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return
		}
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		cs.Add(it, n, estimate, errEst)
	}
	return
}
