package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var data = []byte(`
Title: "General Elliptic Test Case"
Nx: 64
Ny: 64
Nsmooth: 10
NsmoothBottom: 50
MinCoarse: 2
Rtol: 1.e-11
MaxCycles: 100
BCs:
  xlo: dirichlet
  xhi: dirichlet
  ylo: neumann
  yhi: neumann
BCValues:
  xlo: 0.5
`)
	ip := &InputParametersMG{}
	require.NoError(t, ip.Parse(data))
	assert.Equal(t, "General Elliptic Test Case", ip.Title)
	assert.Equal(t, 64, ip.Nx)
	assert.Equal(t, 64, ip.Ny)
	assert.Equal(t, 10, ip.Nsmooth)
	assert.Equal(t, 50, ip.NsmoothBottom)
	assert.Equal(t, 1.e-11, ip.Rtol)
	assert.Equal(t, "dirichlet", ip.BCs["xlo"])
	assert.Equal(t, "neumann", ip.BCs["yhi"])
	assert.Equal(t, 0.5, ip.BCValues["xlo"])
}

func TestParseBadYAML(t *testing.T) {
	ip := &InputParametersMG{}
	assert.Error(t, ip.Parse([]byte("Nx: [not an int")))
}
