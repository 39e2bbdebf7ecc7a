package Elliptic2D

import (
	"fmt"
	"math"

	"github.com/notargets/gomg/InputParameters"
	"github.com/notargets/gomg/mesh"
	"github.com/notargets/gomg/multigrid"
)

/*
	The manufactured variable-coefficient problem

		alpha*phi + div(beta grad phi) + gamma . grad phi = f

	with
		alpha   = 1
		beta    = 2 + cos(2 pi x) cos(2 pi y)
		gamma_x = sin(2 pi x)
		gamma_y = sin(2 pi y)

	and f chosen so the exact solution on the unit square is

		phi = sin(2 pi x) sin(2 pi y)

	with Dirichlet BCs on phi and Neumann BCs for the coefficients, which
	represent a different physical quantity and must not be forced to zero
	at the boundary.
*/

func Alpha(x, y float64) float64 {
	return 1.
}

func Beta(x, y float64) float64 {
	return 2. + math.Cos(2.*math.Pi*x)*math.Cos(2.*math.Pi*y)
}

func GammaX(x, y float64) float64 {
	return math.Sin(2. * math.Pi * x)
}

func GammaY(x, y float64) float64 {
	return math.Sin(2. * math.Pi * y)
}

func TrueSolution(x, y float64) float64 {
	return math.Sin(2.*math.Pi*x) * math.Sin(2.*math.Pi*y)
}

func Source(x, y float64) float64 {
	var (
		pi  = math.Pi
		cx  = math.Cos(2. * pi * x)
		cy  = math.Cos(2. * pi * y)
		sxy = math.Sin(2.*pi*x) * math.Sin(2.*pi*y)
	)
	return (-16.*pi*pi*cx*cy + 2.*pi*cx + 2.*pi*cy - 16.*pi*pi + 1.) * sxy
}

type Elliptic struct {
	// Input parameters
	N, Ny         int
	Nsmooth       int
	NsmoothBottom int
	MinCoarse     int
	Rtol          float64
	MaxCycles     int
	BCs           mesh.BCSpec
	Solver        *multigrid.Solver
}

// NewElliptic sets up the solver for an N x N grid. Pass a parsed input
// parameters struct to override the defaults from a YAML file.
func NewElliptic(N int, verbose bool, ipO ...*InputParameters.InputParametersMG) (c *Elliptic, err error) {
	c = &Elliptic{
		N:             N,
		Ny:            N,
		Nsmooth:       10,
		NsmoothBottom: 50,
		MinCoarse:     2,
		Rtol:          1.e-11,
		MaxCycles:     100,
		BCs:           mesh.AllDirichlet(),
	}
	if len(ipO) != 0 && ipO[0] != nil {
		ip := ipO[0]
		if ip.Ny != 0 {
			c.Ny = ip.Ny
		}
		if ip.Nsmooth != 0 {
			c.Nsmooth = ip.Nsmooth
		}
		if ip.NsmoothBottom != 0 {
			c.NsmoothBottom = ip.NsmoothBottom
		}
		if ip.MinCoarse != 0 {
			c.MinCoarse = ip.MinCoarse
		}
		if ip.Rtol != 0 {
			c.Rtol = ip.Rtol
		}
		if ip.MaxCycles != 0 {
			c.MaxCycles = ip.MaxCycles
		}
		if len(ip.BCs) != 0 || len(ip.BCValues) != 0 {
			if c.BCs, err = mesh.NewBCSpecFromLabels(ip.BCs, ip.BCValues); err != nil {
				return
			}
		}
	}
	var g *mesh.Grid2D
	if g, err = mesh.NewGrid2D(N, c.Ny, 1); err != nil {
		return
	}
	c.Solver, err = multigrid.NewSolver(multigrid.Config{
		Nx:  N,
		Ny:  c.Ny,
		BCs: c.BCs,
		Coeffs: multigrid.CoefficientSet{
			Alpha:  g.Eval(Alpha),
			Beta:   g.Eval(Beta),
			GammaX: g.Eval(GammaX),
			GammaY: g.Eval(GammaY),
			BCs:    mesh.AllNeumann(),
		},
		Nsmooth:       c.Nsmooth,
		NsmoothBottom: c.NsmoothBottom,
		MinCoarse:     c.MinCoarse,
		Verbose:       verbose,
		TrueFunction:  TrueSolution,
	})
	return
}

/*
Run solves from a zero initial guess and returns the L2 error of the
converged solution against the analytic one, along with the solve
result.
*/
func (c *Elliptic) Run() (enorm float64, res multigrid.Result, err error) {
	var (
		g = c.Solver.Grid()
	)
	c.Solver.InitZeros()
	if err = c.Solver.InitRHS(g.Eval(Source)); err != nil {
		return
	}
	if res, err = c.Solver.Solve(c.Rtol, c.MaxCycles); err != nil {
		return
	}
	e := c.Solver.GetSolution()
	e.Subtract(g.Eval(TrueSolution))
	enorm = g.NormL2(e)
	return
}

// PrintSummary mirrors the solver diagnostics the way the benchmark driver
// reports them.
func (c *Elliptic) PrintSummary(enorm float64, res multigrid.Result) {
	fmt.Printf("N = %4d: L2 error from true solution = %g\n", c.N, enorm)
	fmt.Printf("          rel. err from previous cycle = %g\n", res.RelativeError)
	fmt.Printf("          num. cycles = %d [%s]\n", res.NumCycles, res.Status)
}
