package benchmark

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gomg/multigrid"
)

// ErrGridMismatch - the two states were produced at different resolutions
// and must not be compared numerically
var ErrGridMismatch = errors.New("benchmark: grid resolutions differ")

// Code classifies the outcome of a comparison.
type Code int

const (
	Match Code = iota
	GridMismatch
	MetaMismatch
	FieldMismatch
)

var codeNames = []string{
	"results match",
	"grids don't agree",
	"grid metadata doesn't agree",
	"data fields don't agree",
}

func (c Code) String() string {
	if int(c) >= len(codeNames) {
		return "unknown"
	}
	return codeNames[c]
}

// DefaultTol is the pass/fail threshold on the normalized per-field
// difference.
const DefaultTol = 1.e-12

/*
Compare classifies the difference between two exported states. Differing
resolutions are an error (ErrGridMismatch), never a numeric result.
Otherwise each field's max absolute difference, normalized by the
field's own max magnitude, is checked against tol; the first offending
field is named in detail.
*/
func Compare(a, b *multigrid.State, tol float64) (code Code, detail string, err error) {
	if tol <= 0 {
		tol = DefaultTol
	}
	if a.Nx != b.Nx || a.Ny != b.Ny || a.Ng != b.Ng {
		code = GridMismatch
		detail = fmt.Sprintf("%dx%d (ng=%d) vs %dx%d (ng=%d)",
			a.Nx, a.Ny, a.Ng, b.Nx, b.Ny, b.Ng)
		err = fmt.Errorf("%w: %s", ErrGridMismatch, detail)
		return
	}
	if a.Xmin != b.Xmin || a.Xmax != b.Xmax || a.Ymin != b.Ymin || a.Ymax != b.Ymax {
		code = MetaMismatch
		detail = "domain bounds differ"
		return
	}
	for _, name := range multigrid.FieldNames {
		fa, fb := a.FieldData(name), b.FieldData(name)
		if len(fa) != len(fb) {
			code = FieldMismatch
			detail = fmt.Sprintf("field %s: lengths %d vs %d", name, len(fa), len(fb))
			return
		}
		if len(fa) == 0 {
			continue
		}
		diff := make([]float64, len(fa))
		floats.SubTo(diff, fa, fb)
		maxDiff := floats.Norm(diff, math.Inf(1))
		scale := math.Max(floats.Norm(fa, math.Inf(1)), 1.)
		if maxDiff/scale > tol {
			code = FieldMismatch
			detail = fmt.Sprintf("field %s: normalized max diff = %g", name, maxDiff/scale)
			return
		}
	}
	code = Match
	return
}
