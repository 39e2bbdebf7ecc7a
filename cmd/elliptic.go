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
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gomg/InputParameters"
	"github.com/notargets/gomg/benchmark"
	"github.com/notargets/gomg/model_problems/Elliptic2D"
)

type ModelMG struct {
	Sizes    []int
	ICFile   string
	BenchDir string
	Store    bool
	Compare  bool
	Profile  bool
	Verbose  bool
	IP       *InputParameters.InputParametersMG
}

const benchName = "mg_general_poisson_dirichlet"

// EllipticCmd represents the elliptic command
var EllipticCmd = &cobra.Command{
	Use:   "elliptic",
	Short: "Solve the manufactured variable-coefficient elliptic problem",
	Long: `
Runs the generalized multigrid solver on the manufactured-solution problem
(phi = sin(2 pi x) sin(2 pi y) with variable coefficients) over a sweep of
resolutions, reporting the L2 error against the analytic solution and the
observed convergence order. Optionally stores or compares a benchmark state.`,
	Run: func(cmd *cobra.Command, args []string) {
		mmg := &ModelMG{}
		mmg.Sizes, _ = cmd.Flags().GetIntSlice("sizes")
		mmg.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		mmg.BenchDir, _ = cmd.Flags().GetString("benchDir")
		mmg.Store, _ = cmd.Flags().GetBool("store")
		mmg.Compare, _ = cmd.Flags().GetBool("compare")
		mmg.Profile, _ = cmd.Flags().GetBool("profile")
		mmg.Verbose, _ = cmd.Flags().GetBool("verbose")
		if mmg.Profile {
			defer profile.Start().Stop()
		}
		processMGInput(mmg)
		RunElliptic(mmg)
	},
}

func init() {
	rootCmd.AddCommand(EllipticCmd)
	EllipticCmd.Flags().IntSliceP("sizes", "n", []int{16, 32, 64}, "Grid resolutions to sweep")
	EllipticCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Nx, Ny\n\t- Nsmooth, NsmoothBottom\n\t- Rtol, MaxCycles")
	EllipticCmd.Flags().StringP("benchDir", "b", "", "directory for benchmark states")
	EllipticCmd.Flags().Bool("store", false, "store the finest run as a benchmark state")
	EllipticCmd.Flags().Bool("compare", false, "compare the finest run against the stored benchmark")
	EllipticCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
	EllipticCmd.Flags().BoolP("verbose", "v", false, "print per-cycle residual reduction")
}

func processMGInput(mmg *ModelMG) {
	if len(mmg.ICFile) == 0 {
		return
	}
	data, err := ioutil.ReadFile(mmg.ICFile)
	if err != nil {
		panic(err)
	}
	ip := &InputParameters.InputParametersMG{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	mmg.IP = ip
	if ip.Nx != 0 {
		mmg.Sizes = []int{ip.Nx}
	}
}

func RunElliptic(mmg *ModelMG) {
	var (
		errs = make([]float64, 0, len(mmg.Sizes))
	)
	if (mmg.Store || mmg.Compare) && len(mmg.BenchDir) == 0 {
		fmt.Printf("error: --store/--compare require a benchmark directory (-b, --benchDir)\n")
		os.Exit(1)
	}
	for _, n := range mmg.Sizes {
		c, err := Elliptic2D.NewElliptic(n, mmg.Verbose, mmg.IP)
		if err != nil {
			fmt.Printf("error: unable to set up N = %d: %s\n", n, err.Error())
			os.Exit(1)
		}
		enorm, res, err := c.Run()
		if err != nil {
			fmt.Printf("error: solve failed for N = %d: %s\n", n, err.Error())
			os.Exit(1)
		}
		c.PrintSummary(enorm, res)
		errs = append(errs, enorm)

		if n == mmg.Sizes[len(mmg.Sizes)-1] {
			finishBenchmark(mmg, c)
		}
	}
	for i := 1; i < len(errs); i++ {
		fmt.Printf("N %4d -> %4d: error ratio = %6.3f (4.0 is second order)\n",
			mmg.Sizes[i-1], mmg.Sizes[i], errs[i-1]/errs[i])
	}
}

func finishBenchmark(mmg *ModelMG, c *Elliptic2D.Elliptic) {
	st := c.Solver.ExportState()
	if mmg.Store {
		path, err := benchmark.Store(mmg.BenchDir, benchName, st)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("stored benchmark: %s\n", path)
	}
	if mmg.Compare {
		path := mmg.BenchDir + "/" + benchName + ".gob"
		old, err := benchmark.Read(path)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("comparing to: %s\n", path)
		code, detail, err := benchmark.Compare(st, old, benchmark.DefaultTol)
		switch {
		case err != nil:
			fmt.Printf("ERROR: %s\n", err.Error())
			os.Exit(1)
		case code != benchmark.Match:
			fmt.Printf("ERROR: %s (%s)\n", code, detail)
			os.Exit(1)
		default:
			fmt.Printf("results match benchmark\n")
		}
	}
}
