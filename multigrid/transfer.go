package multigrid

import (
	"github.com/notargets/gomg/mesh"
)

/*
	Transfer operators between adjacent levels. Restriction conserves the
	cell average: one coarse cell is the arithmetic mean of its 2x2 fine
	children. Prolongation is piecewise bilinear: centered slopes on the
	coarse cell, evaluated at the four fine-cell centers (quarter-cell
	offsets). Coarse ghost cells supply the off-grid stencil points at the
	domain boundary, so both operators stay well defined there.
*/

// restrict averages the interior of fine in 2x2 blocks into the interior of
// coarse. Both fields must belong to grids one coarsening apart.
func restrict(fine, coarse *mesh.Field) {
	var (
		fg  = fine.G
		cg  = coarse.G
		fd  = fine.Data.Data()
		cd  = coarse.Data.Data()
		fqy = fg.Qy
		cqy = cg.Qy
	)
	for ic := cg.Ilo; ic <= cg.Ihi; ic++ {
		fi := fg.Ilo + 2*(ic-cg.Ilo)
		for jc := cg.Jlo; jc <= cg.Jhi; jc++ {
			fj := fg.Jlo + 2*(jc-cg.Jlo)
			cd[ic*cqy+jc] = 0.25 * (fd[fi*fqy+fj] + fd[(fi+1)*fqy+fj] +
				fd[fi*fqy+fj+1] + fd[(fi+1)*fqy+fj+1])
		}
	}
}

// prolong interpolates the coarse correction and adds it into the fine
// field's interior, then refills the fine ghosts.
func prolong(coarse, fine *mesh.Field) {
	var (
		fg  = fine.G
		cg  = coarse.G
		fd  = fine.Data.Data()
		cd  = coarse.Data.Data()
		fqy = fg.Qy
		cqy = cg.Qy
	)
	coarse.FillBC()
	for ic := cg.Ilo; ic <= cg.Ihi; ic++ {
		fi := fg.Ilo + 2*(ic-cg.Ilo)
		for jc := cg.Jlo; jc <= cg.Jhi; jc++ {
			fj := fg.Jlo + 2*(jc-cg.Jlo)
			ind := ic*cqy + jc
			c := cd[ind]
			mx := 0.5 * (cd[ind+cqy] - cd[ind-cqy])
			my := 0.5 * (cd[ind+1] - cd[ind-1])
			fd[fi*fqy+fj] += c - 0.25*mx - 0.25*my
			fd[(fi+1)*fqy+fj] += c + 0.25*mx - 0.25*my
			fd[fi*fqy+fj+1] += c - 0.25*mx + 0.25*my
			fd[(fi+1)*fqy+fj+1] += c + 0.25*mx + 0.25*my
		}
	}
	fine.FillBC()
}
