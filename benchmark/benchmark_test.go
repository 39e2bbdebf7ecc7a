package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomg/model_problems/Elliptic2D"
	"github.com/notargets/gomg/multigrid"
)

func solvedState(t *testing.T, n int) *multigrid.State {
	c, err := Elliptic2D.NewElliptic(n, false)
	require.NoError(t, err)
	_, res, err := c.Run()
	require.NoError(t, err)
	require.Equal(t, multigrid.Converged, res.Status)
	return c.Solver.ExportState()
}

func TestRoundTrip(t *testing.T) {
	var (
		dir = t.TempDir()
		st  = solvedState(t, 16)
	)
	path, err := Store(dir, "elliptic16", st)
	require.NoError(t, err)
	st2, err := Read(path)
	require.NoError(t, err)

	// Round trip must be bit-identical, field by field
	for _, name := range multigrid.FieldNames {
		assert.Equal(t, st.FieldData(name), st2.FieldData(name), name)
	}
	assert.Equal(t, st, st2)

	// Store -> read -> re-store stays stable
	path2, err := Store(dir, "elliptic16-again", st2)
	require.NoError(t, err)
	st3, err := Read(path2)
	require.NoError(t, err)
	assert.Equal(t, st, st3)
}

func TestRestore(t *testing.T) {
	st := solvedState(t, 16)
	g, fields, err := st.Restore()
	require.NoError(t, err)
	assert.Equal(t, 16, g.Nx)
	assert.Equal(t, st.Dx, g.Dx)
	for _, name := range multigrid.FieldNames {
		require.Contains(t, fields, name)
		assert.Equal(t, st.FieldData(name), fields[name].Data.Data(), name)
	}
}

func TestCompareMatch(t *testing.T) {
	st := solvedState(t, 16)
	code, detail, err := Compare(st, st, DefaultTol)
	require.NoError(t, err)
	assert.Equal(t, Match, code)
	assert.Empty(t, detail)
}

func TestCompareFieldMismatch(t *testing.T) {
	var (
		a = solvedState(t, 16)
		b = solvedState(t, 16)
	)
	b.Phi[len(b.Phi)/2] += 1.e-3
	code, detail, err := Compare(a, b, DefaultTol)
	require.NoError(t, err)
	assert.Equal(t, FieldMismatch, code)
	assert.Contains(t, detail, "phi")
}

func TestCompareGridMismatch(t *testing.T) {
	var (
		a = solvedState(t, 16)
		b = solvedState(t, 32)
	)
	// Differing resolutions are an error, never a numeric verdict
	code, _, err := Compare(a, b, DefaultTol)
	assert.ErrorIs(t, err, ErrGridMismatch)
	assert.Equal(t, GridMismatch, code)
}
