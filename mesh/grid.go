package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/gomg/utils"
)

/*
Grid2D describes a uniform cell-centered 2D mesh with ng ghost cells on
each edge. Interior cells run Ilo..Ihi x Jlo..Jhi; the full storage shape
is (Nx+2*Ng) x (Ny+2*Ng). Immutable once constructed.
*/
type Grid2D struct {
	Nx, Ny, Ng             int
	Xmin, Xmax, Ymin, Ymax float64
	Dx, Dy                 float64
	Ilo, Ihi, Jlo, Jhi     int // Interior index bounds, inclusive
	Qx, Qy                 int // Full dimensions including ghosts
	X2D, Y2D               utils.Matrix
}

// NewGrid2D builds a grid with nx x ny interior cells and ng ghost cells.
// The physical bounds default to the unit square; pass xmin, xmax, ymin,
// ymax to override.
func NewGrid2D(nx, ny, ng int, boundsO ...float64) (g *Grid2D, err error) {
	if nx <= 0 || ny <= 0 {
		err = fmt.Errorf("%w: nx,ny = %d,%d", ErrInvalidSize, nx, ny)
		return
	}
	if ng < 1 {
		err = fmt.Errorf("%w: ng = %d, need at least one ghost cell", ErrInvalidSize, ng)
		return
	}
	var (
		xmin, xmax = 0., 1.
		ymin, ymax = 0., 1.
	)
	if len(boundsO) == 4 {
		xmin, xmax, ymin, ymax = boundsO[0], boundsO[1], boundsO[2], boundsO[3]
	}
	g = &Grid2D{
		Nx: nx, Ny: ny, Ng: ng,
		Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax,
		Dx:  (xmax - xmin) / float64(nx),
		Dy:  (ymax - ymin) / float64(ny),
		Ilo: ng, Ihi: ng + nx - 1,
		Jlo: ng, Jhi: ng + ny - 1,
		Qx: nx + 2*ng, Qy: ny + 2*ng,
	}
	g.X2D = utils.NewMatrix(g.Qx, g.Qy)
	g.Y2D = utils.NewMatrix(g.Qx, g.Qy)
	for i := 0; i < g.Qx; i++ {
		x := xmin + (float64(i-ng)+0.5)*g.Dx
		for j := 0; j < g.Qy; j++ {
			y := ymin + (float64(j-ng)+0.5)*g.Dy
			g.X2D.Set(i, j, x)
			g.Y2D.Set(i, j, y)
		}
	}
	g.X2D.SetReadOnly("X2D")
	g.Y2D.SetReadOnly("Y2D")
	return
}

// Scratch allocates a zeroed full-shape matrix for this grid.
func (g *Grid2D) Scratch() utils.Matrix {
	return utils.NewMatrix(g.Qx, g.Qy)
}

// Eval fills a full-shape matrix with fn evaluated at every cell center,
// ghost cells included.
func (g *Grid2D) Eval(fn func(x, y float64) float64) (R utils.Matrix) {
	R = g.Scratch()
	var (
		data  = R.Data()
		xData = g.X2D.Data()
		yData = g.Y2D.Data()
	)
	for ind := range data {
		data[ind] = fn(xData[ind], yData[ind])
	}
	return
}

// NormL2 is the grid-weighted L2 norm sqrt(dx*dy*sum(q^2)) over interior
// cells of a full-shape matrix.
func (g *Grid2D) NormL2(Q utils.Matrix) (norm float64) {
	var (
		data    = Q.Data()
		_, cols = Q.Dims()
		sum     float64
	)
	for i := g.Ilo; i <= g.Ihi; i++ {
		for j := g.Jlo; j <= g.Jhi; j++ {
			v := data[i*cols+j]
			sum += v * v
		}
	}
	norm = math.Sqrt(g.Dx * g.Dy * sum)
	return
}

// EqualShape reports whether two grids discretize at the same resolution.
func (g *Grid2D) EqualShape(o *Grid2D) bool {
	return g.Nx == o.Nx && g.Ny == o.Ny && g.Ng == o.Ng
}
