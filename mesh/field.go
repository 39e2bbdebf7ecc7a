package mesh

import (
	"fmt"

	"github.com/notargets/gomg/utils"
)

/*
Field is one cell-centered scalar on one grid, stored at full shape
including ghost cells. Interior values are authoritative state; ghost
values are always derived from the interior via the boundary spec.
*/
type Field struct {
	G    *Grid2D
	BC   BCSpec
	Data utils.Matrix
}

func NewField(g *Grid2D, bc BCSpec) (fld *Field, err error) {
	if err = bc.Validate(); err != nil {
		return
	}
	fld = &Field{
		G:    g,
		BC:   bc,
		Data: g.Scratch(),
	}
	return
}

// SetValues copies vals into the field. Full-shape input replaces ghost
// cells too; interior-shape input replaces interior cells only.
func (fld *Field) SetValues(vals utils.Matrix) (err error) {
	var (
		g      = fld.G
		nr, nc = vals.Dims()
		data   = fld.Data.Data()
		vData  = vals.Data()
	)
	switch {
	case nr == g.Qx && nc == g.Qy:
		copy(data, vData)
	case nr == g.Nx && nc == g.Ny:
		for i := 0; i < g.Nx; i++ {
			for j := 0; j < g.Ny; j++ {
				data[(i+g.Ilo)*g.Qy+(j+g.Jlo)] = vData[i*g.Ny+j]
			}
		}
	default:
		err = fmt.Errorf("%w: got %dx%d, need %dx%d (interior) or %dx%d (full)",
			ErrShapeMismatch, nr, nc, g.Nx, g.Ny, g.Qx, g.Qy)
	}
	return
}

// Interior copies out the Nx x Ny interior block.
func (fld *Field) Interior() (R utils.Matrix) {
	var (
		g    = fld.G
		data = fld.Data.Data()
	)
	R = utils.NewMatrix(g.Nx, g.Ny)
	rData := R.Data()
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			rData[i*g.Ny+j] = data[(i+g.Ilo)*g.Qy+(j+g.Jlo)]
		}
	}
	return
}

// NormL2 is the grid-weighted L2 norm of the interior values.
func (fld *Field) NormL2() float64 {
	return fld.G.NormL2(fld.Data)
}

/*
FillBC rebuilds every ghost cell from the interior. The x edges are
filled first across all rows, then the y edges across all columns, so
corner ghosts pick up the already-filled x ghosts and remain defined
for cross-derivative stencils.

Dirichlet holds the configured face value: the first ghost layer is a
quadratic extrapolation through the two nearest interior cells, deeper
layers reflect oddly about the face value. Neumann mirrors the interior
(zero gradient). Periodic wraps the opposite interior edge.
*/
func (fld *Field) FillBC() {
	var (
		g    = fld.G
		data = fld.Data.Data()
		qy   = g.Qy
	)
	at := func(i, j int) float64 { return data[i*qy+j] }
	set := func(i, j int, v float64) { data[i*qy+j] = v }

	for j := 0; j < g.Qy; j++ {
		switch fld.BC.Xlo {
		case BC_Dirichlet:
			val := fld.BC.XloVal
			set(g.Ilo-1, j, 8./3.*val-2.*at(g.Ilo, j)+1./3.*at(g.Ilo+1, j))
			for k := 1; k < g.Ng; k++ {
				set(g.Ilo-1-k, j, 2.*val-at(g.Ilo+k, j))
			}
		case BC_Neumann:
			for k := 0; k < g.Ng; k++ {
				set(g.Ilo-1-k, j, at(g.Ilo+k, j))
			}
		case BC_Periodic:
			for k := 0; k < g.Ng; k++ {
				set(g.Ilo-1-k, j, at(g.Ihi-k, j))
			}
		}
		switch fld.BC.Xhi {
		case BC_Dirichlet:
			val := fld.BC.XhiVal
			set(g.Ihi+1, j, 8./3.*val-2.*at(g.Ihi, j)+1./3.*at(g.Ihi-1, j))
			for k := 1; k < g.Ng; k++ {
				set(g.Ihi+1+k, j, 2.*val-at(g.Ihi-k, j))
			}
		case BC_Neumann:
			for k := 0; k < g.Ng; k++ {
				set(g.Ihi+1+k, j, at(g.Ihi-k, j))
			}
		case BC_Periodic:
			for k := 0; k < g.Ng; k++ {
				set(g.Ihi+1+k, j, at(g.Ilo+k, j))
			}
		}
	}

	for i := 0; i < g.Qx; i++ {
		switch fld.BC.Ylo {
		case BC_Dirichlet:
			val := fld.BC.YloVal
			set(i, g.Jlo-1, 8./3.*val-2.*at(i, g.Jlo)+1./3.*at(i, g.Jlo+1))
			for k := 1; k < g.Ng; k++ {
				set(i, g.Jlo-1-k, 2.*val-at(i, g.Jlo+k))
			}
		case BC_Neumann:
			for k := 0; k < g.Ng; k++ {
				set(i, g.Jlo-1-k, at(i, g.Jlo+k))
			}
		case BC_Periodic:
			for k := 0; k < g.Ng; k++ {
				set(i, g.Jlo-1-k, at(i, g.Jhi-k))
			}
		}
		switch fld.BC.Yhi {
		case BC_Dirichlet:
			val := fld.BC.YhiVal
			set(i, g.Jhi+1, 8./3.*val-2.*at(i, g.Jhi)+1./3.*at(i, g.Jhi-1))
			for k := 1; k < g.Ng; k++ {
				set(i, g.Jhi+1+k, 2.*val-at(i, g.Jhi-k))
			}
		case BC_Neumann:
			for k := 0; k < g.Ng; k++ {
				set(i, g.Jhi+1+k, at(i, g.Jhi-k))
			}
		case BC_Periodic:
			for k := 0; k < g.Ng; k++ {
				set(i, g.Jhi+1+k, at(i, g.Jlo+k))
			}
		}
	}
}
