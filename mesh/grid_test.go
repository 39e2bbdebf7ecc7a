package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid2D(t *testing.T) {
	{
		g, err := NewGrid2D(8, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, 10, g.Qx)
		assert.Equal(t, 6, g.Qy)
		assert.Equal(t, 1, g.Ilo)
		assert.Equal(t, 8, g.Ihi)
		assert.True(t, near(g.Dx, 1./8.))
		assert.True(t, near(g.Dy, 1./4.))
		// First interior cell center is half a cell in from the boundary
		assert.True(t, near(g.X2D.At(g.Ilo, g.Jlo), 0.5/8.))
		assert.True(t, near(g.Y2D.At(g.Ilo, g.Jlo), 0.5/4.))
		// Ghost centers sit outside the domain
		assert.True(t, near(g.X2D.At(0, 0), -0.5/8.))
	}
	{
		// Custom bounds
		g, err := NewGrid2D(4, 4, 1, -1., 1., 0., 2.)
		require.NoError(t, err)
		assert.True(t, near(g.Dx, 0.5))
		assert.True(t, near(g.X2D.At(g.Ilo, g.Jlo), -0.75))
		assert.True(t, near(g.Y2D.At(g.Ilo, g.Jhi), 1.75))
	}
	{
		_, err := NewGrid2D(0, 4, 1)
		assert.ErrorIs(t, err, ErrInvalidSize)
		_, err = NewGrid2D(4, 4, 0)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGridNormL2(t *testing.T) {
	g, err := NewGrid2D(4, 4, 1)
	require.NoError(t, err)
	Q := g.Eval(func(x, y float64) float64 { return 2. })
	// sqrt(dx*dy*sum(4)) over 16 interior cells = sqrt(1/16*64) = 2
	assert.True(t, near(g.NormL2(Q), 2.))
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-12+1.e-08*math.Abs(a) {
		l = true
	}
	return
}
