package cmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomg/mesh"
	"github.com/notargets/gomg/model_problems/Elliptic2D"
	"github.com/notargets/gomg/multigrid"
)

func TestProcessMGInputWiring(t *testing.T) {
	var data = []byte(`
Title: "Wiring Check"
Nx: 16
Ny: 16
Nsmooth: 2
NsmoothBottom: 5
MinCoarse: 4
Rtol: 1.e-12
MaxCycles: 2
BCs:
  xlo: dirichlet
  xhi: dirichlet
  ylo: neumann
  yhi: neumann
BCValues:
  xlo: 0.25
`)
	fn := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, ioutil.WriteFile(fn, data, 0o644))

	mmg := &ModelMG{ICFile: fn}
	processMGInput(mmg)
	require.NotNil(t, mmg.IP)
	assert.Equal(t, []int{16}, mmg.Sizes)

	// Every parsed parameter lands in the solver setup
	c, err := Elliptic2D.NewElliptic(16, false, mmg.IP)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Nsmooth)
	assert.Equal(t, 5, c.NsmoothBottom)
	assert.Equal(t, 4, c.MinCoarse)
	assert.Equal(t, 1.e-12, c.Rtol)
	assert.Equal(t, 2, c.MaxCycles)
	assert.Equal(t, mesh.BC_Dirichlet, c.BCs.Xlo)
	assert.Equal(t, mesh.BC_Neumann, c.BCs.Ylo)
	assert.Equal(t, mesh.BC_Neumann, c.BCs.Yhi)
	assert.Equal(t, 0.25, c.BCs.XloVal)
	// MinCoarse = 4 shortens the hierarchy: 16 -> 8 -> 4
	assert.Equal(t, 3, c.Solver.NLevels())

	// Rtol and MaxCycles govern the run: two lightly-smoothed cycles
	// cannot reach 1e-12, so the solver must stop at the cycle cap
	_, res, err := c.Run()
	require.NoError(t, err)
	assert.Equal(t, multigrid.MaxCyclesReached, res.Status)
	assert.Equal(t, 2, res.NumCycles)
}

func TestProcessMGInputEmpty(t *testing.T) {
	mmg := &ModelMG{Sizes: []int{16, 32}}
	processMGInput(mmg)
	assert.Nil(t, mmg.IP)
	assert.Equal(t, []int{16, 32}, mmg.Sizes)
}
