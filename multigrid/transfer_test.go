package multigrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomg/mesh"
	"github.com/notargets/gomg/utils"
)

func TestRestrictAverages(t *testing.T) {
	fg, err := mesh.NewGrid2D(2, 2, 1)
	require.NoError(t, err)
	cg, err := mesh.NewGrid2D(1, 1, 1)
	require.NoError(t, err)
	fine, err := mesh.NewField(fg, mesh.AllNeumann())
	require.NoError(t, err)
	coarse, err := mesh.NewField(cg, mesh.AllNeumann())
	require.NoError(t, err)

	require.NoError(t, fine.SetValues(utils.NewMatrix(2, 2, []float64{1, 2, 3, 4})))
	restrict(fine, coarse)
	assert.True(t, near(coarse.Data.At(cg.Ilo, cg.Jlo), 2.5))
}

func TestRestrictConstant(t *testing.T) {
	fg, err := mesh.NewGrid2D(8, 8, 1)
	require.NoError(t, err)
	cg, err := mesh.NewGrid2D(4, 4, 1)
	require.NoError(t, err)
	fine, err := mesh.NewField(fg, mesh.AllNeumann())
	require.NoError(t, err)
	coarse, err := mesh.NewField(cg, mesh.AllNeumann())
	require.NoError(t, err)

	require.NoError(t, fine.SetValues(fg.Eval(func(x, y float64) float64 { return 3. })))
	restrict(fine, coarse)
	for i := cg.Ilo; i <= cg.Ihi; i++ {
		for j := cg.Jlo; j <= cg.Jhi; j++ {
			assert.True(t, near(coarse.Data.At(i, j), 3.))
		}
	}
}

func TestProlongConstant(t *testing.T) {
	fg, err := mesh.NewGrid2D(8, 8, 1)
	require.NoError(t, err)
	cg, err := mesh.NewGrid2D(4, 4, 1)
	require.NoError(t, err)
	fine, err := mesh.NewField(fg, mesh.AllNeumann())
	require.NoError(t, err)
	coarse, err := mesh.NewField(cg, mesh.AllNeumann())
	require.NoError(t, err)

	// A constant correction has zero slopes everywhere (Neumann ghosts
	// mirror), so every fine child receives exactly the coarse value.
	require.NoError(t, coarse.SetValues(cg.Eval(func(x, y float64) float64 { return 5. })))
	prolong(coarse, fine)
	for i := fg.Ilo; i <= fg.Ihi; i++ {
		for j := fg.Jlo; j <= fg.Jhi; j++ {
			assert.True(t, near(fine.Data.At(i, j), 5.))
		}
	}
}

func TestProlongAddsIntoFine(t *testing.T) {
	fg, err := mesh.NewGrid2D(4, 4, 1)
	require.NoError(t, err)
	cg, err := mesh.NewGrid2D(2, 2, 1)
	require.NoError(t, err)
	fine, err := mesh.NewField(fg, mesh.AllNeumann())
	require.NoError(t, err)
	coarse, err := mesh.NewField(cg, mesh.AllNeumann())
	require.NoError(t, err)

	require.NoError(t, fine.SetValues(fg.Eval(func(x, y float64) float64 { return 1. })))
	require.NoError(t, coarse.SetValues(cg.Eval(func(x, y float64) float64 { return 2. })))
	prolong(coarse, fine)
	for i := fg.Ilo; i <= fg.Ihi; i++ {
		for j := fg.Jlo; j <= fg.Jhi; j++ {
			assert.True(t, near(fine.Data.At(i, j), 3.))
		}
	}
}
