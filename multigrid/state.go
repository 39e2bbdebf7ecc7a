package multigrid

import (
	"fmt"

	"github.com/notargets/gomg/mesh"
	"github.com/notargets/gomg/utils"
)

/*
State is a flat snapshot of the finest level, suitable for persistence
and later comparison. Field arrays are full shape (ghosts included),
row-major with stride Ny+2*Ng, copied out of the solver so the snapshot
stays stable after further solves.
*/
type State struct {
	Nx, Ny, Ng             int
	Xmin, Xmax, Ymin, Ymax float64
	Dx, Dy                 float64
	BCs                    mesh.BCSpec
	CoeffBCs               mesh.BCSpec

	Phi, F         []float64
	Alpha, Beta    []float64
	GammaX, GammaY []float64
}

// FieldNames lists the persisted fields in a stable order.
var FieldNames = []string{"phi", "f", "alpha", "beta", "gamma_x", "gamma_y"}

// FieldData returns the named array, or nil for an unknown name.
func (st *State) FieldData(name string) []float64 {
	switch name {
	case "phi":
		return st.Phi
	case "f":
		return st.F
	case "alpha":
		return st.Alpha
	case "beta":
		return st.Beta
	case "gamma_x":
		return st.GammaX
	case "gamma_y":
		return st.GammaY
	}
	return nil
}

// ExportState snapshots the finest level after a ghost refill.
func (s *Solver) ExportState() *State {
	var (
		fine = s.levels[0]
		g    = fine.G
	)
	fine.Phi.FillBC()
	cp := func(fld *mesh.Field) []float64 {
		src := fld.Data.Data()
		dst := make([]float64, len(src))
		copy(dst, src)
		return dst
	}
	return &State{
		Nx: g.Nx, Ny: g.Ny, Ng: g.Ng,
		Xmin: g.Xmin, Xmax: g.Xmax, Ymin: g.Ymin, Ymax: g.Ymax,
		Dx: g.Dx, Dy: g.Dy,
		BCs:      fine.Phi.BC,
		CoeffBCs: fine.Alpha.BC,
		Phi:      cp(fine.Phi),
		F:        cp(fine.F),
		Alpha:    cp(fine.Alpha),
		Beta:     cp(fine.Beta),
		GammaX:   cp(fine.GammaX),
		GammaY:   cp(fine.GammaY),
	}
}

// Restore rebuilds an equivalent grid and field set from the snapshot.
// Restored fields hold exactly the persisted values, ghosts included.
func (st *State) Restore() (g *mesh.Grid2D, fields map[string]*mesh.Field, err error) {
	if g, err = mesh.NewGrid2D(st.Nx, st.Ny, st.Ng,
		st.Xmin, st.Xmax, st.Ymin, st.Ymax); err != nil {
		return
	}
	fields = make(map[string]*mesh.Field, len(FieldNames))
	for _, name := range FieldNames {
		data := st.FieldData(name)
		if len(data) != g.Qx*g.Qy {
			err = fmt.Errorf("%w: field %s has %d values, grid needs %d",
				mesh.ErrShapeMismatch, name, len(data), g.Qx*g.Qy)
			return
		}
		bc := st.CoeffBCs
		if name == "phi" || name == "f" {
			bc = st.BCs
		}
		var fld *mesh.Field
		if fld, err = mesh.NewField(g, bc); err != nil {
			return
		}
		vals := make([]float64, len(data))
		copy(vals, data)
		if err = fld.SetValues(utils.NewMatrix(g.Qx, g.Qy, vals)); err != nil {
			return
		}
		fields[name] = fld
	}
	return
}
