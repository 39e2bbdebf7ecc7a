package mesh

import (
	"fmt"
	"strings"
)

// BCType selects how ghost cells of one edge are derived from interior
// values.
type BCType uint8

const (
	BC_Dirichlet BCType = iota
	BC_Neumann
	BC_Periodic
)

var (
	BCNames = map[string]BCType{
		"dirichlet": BC_Dirichlet,
		"neumann":   BC_Neumann,
		"periodic":  BC_Periodic,
	}
	BCPrintNames = []string{"Dirichlet", "Neumann", "Periodic"}
)

func NewBCType(label string) (bc BCType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty BC type, must be one of %v", BCNames)
		return
	}
	label = strings.ToLower(label)
	if bc, ok = BCNames[label]; !ok {
		err = fmt.Errorf("unable to use BC type named %s", label)
	}
	return
}

func (bc BCType) String() string {
	if int(bc) >= len(BCPrintNames) {
		return "Unknown"
	}
	return BCPrintNames[bc]
}

/*
BCSpec carries one condition per edge plus the boundary face value used
by Dirichlet edges (zero unless set). Periodic must pair across an axis.
Edge naming follows the axis and side: Xlo/Xhi are the left/right edges,
Ylo/Yhi are bottom/top.
*/
type BCSpec struct {
	Xlo, Xhi, Ylo, Yhi             BCType
	XloVal, XhiVal, YloVal, YhiVal float64
}

// NewBCSpec builds a spec with homogeneous boundary values.
func NewBCSpec(xlo, xhi, ylo, yhi BCType) BCSpec {
	return BCSpec{Xlo: xlo, Xhi: xhi, Ylo: ylo, Yhi: yhi}
}

// AllNeumann is the usual choice for coefficient fields, which should not be
// forced to zero at the domain boundary.
func AllNeumann() BCSpec {
	return NewBCSpec(BC_Neumann, BC_Neumann, BC_Neumann, BC_Neumann)
}

func AllDirichlet() BCSpec {
	return NewBCSpec(BC_Dirichlet, BC_Dirichlet, BC_Dirichlet, BC_Dirichlet)
}

func AllPeriodic() BCSpec {
	return NewBCSpec(BC_Periodic, BC_Periodic, BC_Periodic, BC_Periodic)
}

// NewBCSpecFromLabels builds a spec from edge-name keyed maps as parsed from
// a YAML input file. Edge keys are xlo, xhi, ylo, yhi; unnamed edges stay
// Dirichlet. Values apply to whichever edges use them.
func NewBCSpecFromLabels(types map[string]string, vals map[string]float64) (b BCSpec, err error) {
	var (
		bc BCType
	)
	b = AllDirichlet()
	edges := map[string]*BCType{
		"xlo": &b.Xlo, "xhi": &b.Xhi,
		"ylo": &b.Ylo, "yhi": &b.Yhi,
	}
	edgeVals := map[string]*float64{
		"xlo": &b.XloVal, "xhi": &b.XhiVal,
		"ylo": &b.YloVal, "yhi": &b.YhiVal,
	}
	for key, label := range types {
		edge, ok := edges[strings.ToLower(key)]
		if !ok {
			err = fmt.Errorf("unknown edge name %s, must be one of xlo, xhi, ylo, yhi", key)
			return
		}
		if bc, err = NewBCType(label); err != nil {
			return
		}
		*edge = bc
	}
	for key, val := range vals {
		edge, ok := edgeVals[strings.ToLower(key)]
		if !ok {
			err = fmt.Errorf("unknown edge name %s, must be one of xlo, xhi, ylo, yhi", key)
			return
		}
		*edge = val
	}
	err = b.Validate()
	return
}

// Validate rejects a periodic condition applied to only one edge of an axis.
func (b BCSpec) Validate() (err error) {
	if (b.Xlo == BC_Periodic) != (b.Xhi == BC_Periodic) {
		err = fmt.Errorf("%w: x edges are %s / %s", ErrPeriodicPair, b.Xlo, b.Xhi)
		return
	}
	if (b.Ylo == BC_Periodic) != (b.Yhi == BC_Periodic) {
		err = fmt.Errorf("%w: y edges are %s / %s", ErrPeriodicPair, b.Ylo, b.Yhi)
	}
	return
}

// Homogeneous returns the same edge types with all Dirichlet values zeroed,
// which is what a coarse level solving for a correction needs.
func (b BCSpec) Homogeneous() BCSpec {
	return NewBCSpec(b.Xlo, b.Xhi, b.Ylo, b.Yhi)
}
