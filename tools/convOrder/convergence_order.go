package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	for _, cs := range studies {
		fmt.Printf("Title = %s\n", cs.title)
		for i := range cs.numPTS {
			fmt.Printf("%d, %v, %v\n", cs.numPTS[i], cs.l2Err[i], cs.maxErr[i])
		}
		for i := 1; i < len(cs.numPTS); i++ {
			rate := math.Log2(float64(cs.numPTS[i]) / float64(cs.numPTS[i-1]))
			order := math.Log2(cs.l2Err[i-1]/cs.l2Err[i]) / rate
			fmt.Printf("N %d -> %d: observed order = %5.2f\n",
				cs.numPTS[i-1], cs.numPTS[i], order)
		}
	}
}

type ConvergenceStudy struct {
	title         string
	numPTS        []int
	l2Err, maxErr []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, l2Err, maxErr float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.l2Err = append(cs.l2Err, l2Err)
	cs.maxErr = append(cs.maxErr, maxErr)
}

// readCSV expects a header row followed by records of the form
// title, N, L2 error, max error
func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records       [][]string
		err           error
		f             *os.File
		ok            bool
		cs            *ConvergenceStudy
		l2Err, maxErr float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		title, ntxt := rec[0], rec[1]
		n, _ := strconv.Atoi(ntxt)
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		_, _ = fmt.Sscanf(rec[2], "%f", &l2Err)
		_, _ = fmt.Sscanf(rec[3], "%f", &maxErr)
		cs.Add(n, l2Err, maxErr)
	}
	return
}
