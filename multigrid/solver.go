package multigrid

import (
	"fmt"
	"math"
	"runtime"

	"github.com/notargets/gomg/mesh"
	"github.com/notargets/gomg/utils"
)

type Status uint8

const (
	Converged Status = iota
	MaxCyclesReached
)

var statusNames = []string{"Converged", "MaxCyclesReached"}

func (st Status) String() string {
	if int(st) >= len(statusNames) {
		return "Unknown"
	}
	return statusNames[st]
}

// Result reports how a solve terminated. MaxCyclesReached is not an error:
// the best available solution is retained and RelativeError tells the caller
// how far the residual got.
type Result struct {
	Status        Status
	RelativeError float64
	NumCycles     int
}

/*
CoefficientSet supplies the variable coefficients of the operator

	L[phi] = alpha*phi + div(beta grad phi) + gamma . grad phi

as full-shape (ghost-including) matrices on the finest grid, tagged with
their own boundary spec. Neumann is the usual choice so a flux-bearing
coefficient is not forced to zero at the boundary.
*/
type CoefficientSet struct {
	Alpha, Beta    utils.Matrix
	GammaX, GammaY utils.Matrix
	BCs            mesh.BCSpec
}

// ConstantCoefficients builds the set for a constant-coefficient operator
// alpha*phi + beta*lap(phi) on the given grid.
func ConstantCoefficients(g *mesh.Grid2D, alpha, beta float64) CoefficientSet {
	return CoefficientSet{
		Alpha:  g.Scratch().AddScalar(alpha),
		Beta:   g.Scratch().AddScalar(beta),
		GammaX: g.Scratch(),
		GammaY: g.Scratch(),
		BCs:    mesh.AllNeumann(),
	}
}

type Config struct {
	Nx, Ny int
	Bounds []float64 // Optional xmin, xmax, ymin, ymax; unit square otherwise
	BCs    mesh.BCSpec
	Coeffs CoefficientSet

	Nsmooth       int // Smoothing sweeps per level, default 10
	NsmoothBottom int // Sweeps at the coarsest level, default 50
	MinCoarse     int // Coarsest interior size per axis, default 2
	ProcLimit     int // Cap on goroutines per color pass, default NumCPU
	Verbose       bool

	// TrueFunction, when set, is used only to report the diagnostic L2
	// error after a verbose solve. It never enters the algorithm.
	TrueFunction func(x, y float64) float64
}

/*
Solver owns the level hierarchy and runs V-cycles over it. One Solver
instance supports one Solve at a time; independent Solvers are fully
concurrent.
*/
type Solver struct {
	cfg     Config
	levels  []*Level // Finest first
	nlevels int

	ParallelDegree int

	NumCycles     int
	RelativeError float64
}

func NewSolver(cfg Config) (s *Solver, err error) {
	if cfg.Nsmooth == 0 {
		cfg.Nsmooth = 10
	}
	if cfg.NsmoothBottom == 0 {
		cfg.NsmoothBottom = 50
	}
	if cfg.MinCoarse == 0 {
		cfg.MinCoarse = 2
	}
	if err = cfg.BCs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHierarchy, err)
	}
	if err = cfg.Coeffs.BCs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: coefficient BCs: %v", ErrHierarchy, err)
	}

	var nlevels int
	if nlevels, err = countLevels(cfg.Nx, cfg.Ny, cfg.MinCoarse); err != nil {
		return
	}

	s = &Solver{
		cfg:            cfg,
		nlevels:        nlevels,
		ParallelDegree: runtime.NumCPU(),
	}
	if cfg.ProcLimit > 0 && cfg.ProcLimit < s.ParallelDegree {
		s.ParallelDegree = cfg.ProcLimit
	}

	if err = s.buildLevels(); err != nil {
		return nil, err
	}
	if err = s.initCoefficients(); err != nil {
		return nil, err
	}

	if cfg.Verbose {
		fmt.Printf("Generalized multigrid solver\n")
		fmt.Printf("Finest grid %d x %d, %d levels down to %d x %d\n",
			cfg.Nx, cfg.Ny, s.nlevels,
			s.levels[s.nlevels-1].G.Nx, s.levels[s.nlevels-1].G.Ny)
		fmt.Printf("BCs: x = %s/%s, y = %s/%s\n",
			cfg.BCs.Xlo, cfg.BCs.Xhi, cfg.BCs.Ylo, cfg.BCs.Yhi)
		fmt.Printf("nsmooth = %d, nsmooth_bottom = %d, parallel degree = %d\n\n",
			cfg.Nsmooth, cfg.NsmoothBottom, s.ParallelDegree)
	}
	return
}

// countLevels halves nx,ny in lock step until either axis reaches minCoarse.
// Failing to land exactly on minCoarse means the requested size is not
// evenly coarsenable.
func countLevels(nx, ny, minCoarse int) (nlevels int, err error) {
	if nx <= 0 || ny <= 0 {
		err = fmt.Errorf("%w: nx,ny = %d,%d", mesh.ErrInvalidSize, nx, ny)
		return
	}
	nlevels = 1
	cx, cy := nx, ny
	for cx%2 == 0 && cy%2 == 0 && cx/2 >= minCoarse && cy/2 >= minCoarse {
		cx, cy = cx/2, cy/2
		nlevels++
	}
	if cx != minCoarse && cy != minCoarse {
		err = fmt.Errorf("%w: %dx%d coarsens to %dx%d, configured minimum is %d",
			mesh.ErrInvalidSize, nx, ny, cx, cy, minCoarse)
	}
	return
}

func (s *Solver) buildLevels() (err error) {
	var (
		cfg    = s.cfg
		bounds = cfg.Bounds
	)
	s.levels = make([]*Level, s.nlevels)
	nx, ny := cfg.Nx, cfg.Ny
	for l := 0; l < s.nlevels; l++ {
		var g *mesh.Grid2D
		if g, err = mesh.NewGrid2D(nx, ny, 1, bounds...); err != nil {
			return
		}
		phiBC := cfg.BCs
		if l > 0 {
			// Coarse levels solve for a correction: same edge types,
			// homogeneous values.
			phiBC = cfg.BCs.Homogeneous()
		}
		if s.levels[l], err = newLevel(g, phiBC, cfg.Coeffs.BCs); err != nil {
			return
		}
		nx, ny = nx/2, ny/2
	}
	return
}

// initCoefficients loads the caller's coefficient matrices onto the finest
// level, then restricts them down the hierarchy by 2x2 cell averaging.
// Done once; the fields are read-only afterwards.
func (s *Solver) initCoefficients() (err error) {
	fine := s.levels[0]
	pairs := []struct {
		vals utils.Matrix
		fld  func(*Level) *mesh.Field
		name string
	}{
		{s.cfg.Coeffs.Alpha, func(l *Level) *mesh.Field { return l.Alpha }, "alpha"},
		{s.cfg.Coeffs.Beta, func(l *Level) *mesh.Field { return l.Beta }, "beta"},
		{s.cfg.Coeffs.GammaX, func(l *Level) *mesh.Field { return l.GammaX }, "gamma_x"},
		{s.cfg.Coeffs.GammaY, func(l *Level) *mesh.Field { return l.GammaY }, "gamma_y"},
	}
	for _, p := range pairs {
		if p.vals.IsEmpty() {
			err = fmt.Errorf("%w: coefficient %s is not set", ErrHierarchy, p.name)
			return
		}
		if err = p.fld(fine).SetValues(p.vals); err != nil {
			err = fmt.Errorf("coefficient %s: %w", p.name, err)
			return
		}
		p.fld(fine).FillBC()
		for l := 1; l < s.nlevels; l++ {
			restrict(p.fld(s.levels[l-1]), p.fld(s.levels[l]))
			p.fld(s.levels[l]).FillBC()
		}
		for l := 0; l < s.nlevels; l++ {
			p.fld(s.levels[l]).Data.SetReadOnly(fmt.Sprintf("%s[%d]", p.name, l))
		}
	}
	return
}

// InitZeros resets the finest solution to zero.
func (s *Solver) InitZeros() {
	s.levels[0].Phi.Data.Zero()
}

// InitRHS copies the caller's right-hand side onto the finest level. The
// array must match the finest grid's interior or full shape.
func (s *Solver) InitRHS(vals utils.Matrix) error {
	return s.levels[0].F.SetValues(vals)
}

// Grid exposes the finest grid for coordinate access.
func (s *Solver) Grid() *mesh.Grid2D {
	return s.levels[0].G
}

// NLevels reports the depth of the hierarchy.
func (s *Solver) NLevels() int {
	return s.nlevels
}

// GetSolution returns a copy of the finest phi at full shape, ghost cells
// included and freshly filled.
func (s *Solver) GetSolution() utils.Matrix {
	s.levels[0].Phi.FillBC()
	return s.levels[0].Phi.Data.Copy()
}

/*
Solve runs V-cycles until the finest residual norm has dropped below
rtol relative to its initial value, or maxCycles have run. A solve that
starts at a machine-zero residual converges immediately.
*/
func (s *Solver) Solve(rtol float64, maxCycles int) (res Result, err error) {
	if rtol <= 0 {
		err = fmt.Errorf("rtol must be positive, got %g", rtol)
		return
	}
	if maxCycles <= 0 {
		maxCycles = 100
	}
	var (
		fine  = s.levels[0]
		fnorm = fine.F.NormL2()
	)
	fine.Phi.FillBC()
	s.computeResidual(0)
	rnorm0 := fine.Res.NormL2()
	s.NumCycles = 0
	s.RelativeError = 0

	if rnorm0 <= utils.NODETOL*math.Max(fnorm, 1.) {
		res = Result{Status: Converged}
		return
	}

	for cycle := 1; cycle <= maxCycles; cycle++ {
		s.vcycle()
		s.computeResidual(0)
		rnorm := fine.Res.NormL2()
		s.NumCycles = cycle
		s.RelativeError = rnorm / rnorm0
		if s.cfg.Verbose {
			fmt.Printf("cycle %3d: relative error = %12.6e, residual norm = %12.6e\n",
				cycle, s.RelativeError, rnorm)
		}
		if s.RelativeError <= rtol {
			s.reportTrueError()
			res = Result{Status: Converged, RelativeError: s.RelativeError, NumCycles: cycle}
			return
		}
	}
	s.reportTrueError()
	res = Result{Status: MaxCyclesReached, RelativeError: s.RelativeError, NumCycles: s.NumCycles}
	return
}

func (s *Solver) reportTrueError() {
	if !s.cfg.Verbose || s.cfg.TrueFunction == nil {
		return
	}
	var (
		g    = s.levels[0].G
		diff = s.levels[0].Phi.Data.Copy()
	)
	diff.Subtract(g.Eval(s.cfg.TrueFunction))
	fmt.Printf("L2 error from true solution = %g\n", g.NormL2(diff))
}

/*
vcycle runs one descent/ascent over the level array. Descent smooths,
restricts the residual into the next coarser RHS and zeroes that level's
correction; the bottom level gets a near-exact smooth; ascent prolongs
each correction up and post-smooths.
*/
func (s *Solver) vcycle() {
	nl := s.nlevels
	for l := 0; l < nl-1; l++ {
		s.smooth(l, s.cfg.Nsmooth)
		s.computeResidual(l)
		s.levels[l+1].Phi.Data.Zero()
		restrict(s.levels[l].Res, s.levels[l+1].F)
	}
	s.smooth(nl-1, s.cfg.NsmoothBottom)
	for l := nl - 2; l >= 0; l-- {
		prolong(s.levels[l+1].Phi, s.levels[l].Phi)
		s.smooth(l, s.cfg.Nsmooth)
	}
}
