package multigrid

import (
	"sync"
)

/*
	The relaxation engine: red/black Gauss-Seidel on the second-order
	discretization of

		L[phi] = alpha*phi + div(beta grad phi) + gamma . grad phi

	The diffusive flux uses beta averaged to cell faces so it stays
	consistent across heterogeneous media; the advective term is a centered
	difference. Each update writes the value of phi that zeroes the local
	residual with neighbors held fixed.
*/

const (
	redPass = iota
	blackPass
)

// smooth applies n red/black sweeps on level lev. Ghosts are refilled
// before each color pass and once after the final sweep.
func (s *Solver) smooth(lev, n int) {
	var (
		l = s.levels[lev]
	)
	for it := 0; it < n; it++ {
		l.Phi.FillBC()
		s.relaxColor(l, redPass)
		l.Phi.FillBC()
		s.relaxColor(l, blackPass)
	}
	l.Phi.FillBC()
}

// relaxColor updates every interior cell of one color class. Cells of one
// color are mutually independent, so the interior rows are sharded across
// goroutines with a barrier at the end of the pass.
func (s *Solver) relaxColor(l *Level, color int) {
	var (
		g    = l.G
		qy   = g.Qy
		phi  = l.Phi.Data.Data()
		f    = l.F.Data.Data()
		a    = l.Alpha.Data.Data()
		b    = l.Beta.Data.Data()
		gx   = l.GammaX.Data.Data()
		gy   = l.GammaY.Data.Data()
		idx2 = 1. / (g.Dx * g.Dx)
		idy2 = 1. / (g.Dy * g.Dy)
		hdx  = 0.5 / g.Dx
		hdy  = 0.5 / g.Dy
	)
	relaxRows := func(iMin, iMax int) {
		for i := iMin; i <= iMax; i++ {
			row := i * qy
			jStart := g.Jlo
			if (i+jStart)&1 != color {
				jStart++
			}
			for j := jStart; j <= g.Jhi; j += 2 {
				ind := row + j
				bC := b[ind]
				bip := 0.5 * (bC + b[ind+qy])
				bim := 0.5 * (bC + b[ind-qy])
				bjp := 0.5 * (bC + b[ind+1])
				bjm := 0.5 * (bC + b[ind-1])
				num := f[ind] -
					(bip*phi[ind+qy]+bim*phi[ind-qy])*idx2 -
					(bjp*phi[ind+1]+bjm*phi[ind-1])*idy2 -
					gx[ind]*(phi[ind+qy]-phi[ind-qy])*hdx -
					gy[ind]*(phi[ind+1]-phi[ind-1])*hdy
				den := a[ind] - (bip+bim)*idx2 - (bjp+bjm)*idy2
				phi[ind] = num / den
			}
		}
	}

	np := s.ParallelDegree
	if np > g.Nx {
		np = g.Nx
	}
	if np <= 1 {
		relaxRows(g.Ilo, g.Ihi)
		return
	}
	var wg sync.WaitGroup
	for n := 0; n < np; n++ {
		iMin, iMax := bucketRange(g.Ilo, g.Ihi, n, np)
		wg.Add(1)
		go func(iMin, iMax int) {
			defer wg.Done()
			relaxRows(iMin, iMax)
		}(iMin, iMax)
	}
	wg.Wait()
}

// computeResidual rebuilds Res = F - L[Phi] over the interior of level lev.
func (s *Solver) computeResidual(lev int) {
	var (
		l    = s.levels[lev]
		g    = l.G
		qy   = g.Qy
		phi  = l.Phi.Data.Data()
		f    = l.F.Data.Data()
		res  = l.Res.Data.Data()
		a    = l.Alpha.Data.Data()
		b    = l.Beta.Data.Data()
		gx   = l.GammaX.Data.Data()
		gy   = l.GammaY.Data.Data()
		idx2 = 1. / (g.Dx * g.Dx)
		idy2 = 1. / (g.Dy * g.Dy)
		hdx  = 0.5 / g.Dx
		hdy  = 0.5 / g.Dy
	)
	l.Phi.FillBC()
	for i := g.Ilo; i <= g.Ihi; i++ {
		row := i * qy
		for j := g.Jlo; j <= g.Jhi; j++ {
			ind := row + j
			bC := b[ind]
			bip := 0.5 * (bC + b[ind+qy])
			bim := 0.5 * (bC + b[ind-qy])
			bjp := 0.5 * (bC + b[ind+1])
			bjm := 0.5 * (bC + b[ind-1])
			phiC := phi[ind]
			lphi := a[ind]*phiC +
				(bip*(phi[ind+qy]-phiC)-bim*(phiC-phi[ind-qy]))*idx2 +
				(bjp*(phi[ind+1]-phiC)-bjm*(phiC-phi[ind-1]))*idy2 +
				gx[ind]*(phi[ind+qy]-phi[ind-qy])*hdx +
				gy[ind]*(phi[ind+1]-phi[ind-1])*hdy
			res[ind] = f[ind] - lphi
		}
	}
}

// bucketRange splits the inclusive range [lo,hi] into np near-equal buckets
// and returns the n-th.
func bucketRange(lo, hi, n, np int) (bLo, bHi int) {
	var (
		size = hi - lo + 1
		base = size / np
		rem  = size % np
	)
	bLo = lo + n*base
	if n < rem {
		bLo += n
	} else {
		bLo += rem
	}
	bHi = bLo + base - 1
	if n < rem {
		bHi++
	}
	return
}
