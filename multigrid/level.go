package multigrid

import (
	"github.com/notargets/gomg/mesh"
)

/*
Level is one rung of the multigrid hierarchy: a grid plus the working
fields at that resolution. Phi holds the running solution on the finest
level and the correction on coarser ones. Res is scratch, rebuilt every
cycle. The coefficient fields are restricted once at setup and never
written again.
*/
type Level struct {
	G      *mesh.Grid2D
	Phi, F *mesh.Field
	Res    *mesh.Field
	Alpha  *mesh.Field
	Beta   *mesh.Field
	GammaX *mesh.Field
	GammaY *mesh.Field
}

func newLevel(g *mesh.Grid2D, phiBC, coeffBC mesh.BCSpec) (lvl *Level, err error) {
	lvl = &Level{G: g}
	if lvl.Phi, err = mesh.NewField(g, phiBC); err != nil {
		return
	}
	if lvl.F, err = mesh.NewField(g, phiBC.Homogeneous()); err != nil {
		return
	}
	if lvl.Res, err = mesh.NewField(g, phiBC.Homogeneous()); err != nil {
		return
	}
	if lvl.Alpha, err = mesh.NewField(g, coeffBC); err != nil {
		return
	}
	if lvl.Beta, err = mesh.NewField(g, coeffBC); err != nil {
		return
	}
	if lvl.GammaX, err = mesh.NewField(g, coeffBC); err != nil {
		return
	}
	lvl.GammaY, err = mesh.NewField(g, coeffBC)
	return
}
