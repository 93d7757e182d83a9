package Heat2D

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantitativebiker/hex-fdm/FD2D"
)

// One backward-Euler step from the exact initial state, boundary pinned to
// the exact solution at t=dt, must reproduce the exact solution to within
// the coarse-grid truncation error.
func TestOneStepScenario(t *testing.T) {
	var (
		N      = 8
		mu, dt = 0.01, 0.05
		exact  = CosineDecay(mu)
	)
	for _, tc := range []struct {
		mt  FD2D.MeshType
		tol float64
	}{
		{FD2D.RECTANGULAR, 1.e-2},
		// the hexagonal lattice is stretched anisotropically by the unit
		// square normalization, so its coarse-grid error runs higher
		{FD2D.HEXAGONAL, 2.e-2},
	} {
		c, err := NewHeat(tc.mt, N, mu, dt, exact)
		assert.NoError(t, err)
		// INITIALIZED: u is the exact field at t=0
		assert.True(t, near(c.MaxError(), 0, 1.e-14))
		assert.NoError(t, c.Step())
		assert.Equal(t, 1, c.Steps)
		assert.True(t, near(c.Time, dt))
		maxErr := c.MaxError()
		assert.True(t, maxErr < tc.tol, fmt.Sprintf("%s: max error %v", tc.mt.Print(), maxErr))
		// boundary entries carry the oracle values at the new time exactly
		var (
			xD, yD = c.Msh.X.Data(), c.Msh.Y.Data()
		)
		for _, bn := range c.Con.Boundary {
			assert.True(t, near(c.U.AtVec(bn), exact(c.Time, xD[bn], yD[bn]), 1.e-10))
		}
	}
}

// Halving h and dt reduces the error: the scheme is O(h^2 + dt) plus the
// first order h contributions of the lattice construction.
func TestConvergence(t *testing.T) {
	var (
		mu        = 0.01
		finalTime = 0.05
	)
	for _, mt := range []FD2D.MeshType{FD2D.RECTANGULAR, FD2D.HEXAGONAL} {
		coarse, err := NewHeat(mt, 8, mu, finalTime, CosineDecay(mu))
		assert.NoError(t, err)
		assert.NoError(t, coarse.Step())

		fine, err := NewHeat(mt, 16, mu, finalTime/2, CosineDecay(mu))
		assert.NoError(t, err)
		assert.NoError(t, fine.Step())
		assert.NoError(t, fine.Step())

		assert.True(t, near(coarse.Time, fine.Time))
		assert.True(t, fine.MaxError() < coarse.MaxError(),
			fmt.Sprintf("%s: coarse %v, fine %v", mt.Print(), coarse.MaxError(), fine.MaxError()))
	}
}

// Identical inputs give bit-identical trajectories: the discretization and
// solve are fully deterministic.
func TestDeterministic(t *testing.T) {
	for _, mt := range []FD2D.MeshType{FD2D.RECTANGULAR, FD2D.HEXAGONAL} {
		a, err := NewHeat(mt, 6, 0.02, 0.01, CosineDecay(0.02))
		assert.NoError(t, err)
		b, err := NewHeat(mt, 6, 0.02, 0.01, CosineDecay(0.02))
		assert.NoError(t, err)
		for step := 0; step < 3; step++ {
			assert.NoError(t, a.Step())
			assert.NoError(t, b.Step())
		}
		assert.Equal(t, a.U.Data(), b.U.Data())
	}
}

func TestConfiguration(t *testing.T) {
	var cerr *FD2D.ConfigurationError
	for _, N := range []int{4, 5} {
		c, err := NewHeat(FD2D.HEXAGONAL, N, 0.01, 0.05, CosineDecay(0.01))
		assert.Nil(t, c)
		assert.ErrorAs(t, err, &cerr)
	}
	c, err := NewHeat(FD2D.HEXAGONAL, 6, 0.01, 0.05, CosineDecay(0.01))
	assert.NoError(t, err)
	assert.NotNil(t, c)
}

func TestPlotData(t *testing.T) {
	var (
		N    = 8
		c, _ = NewHeat(FD2D.HEXAGONAL, N, 0.01, 0.05, CosineDecay(0.01))
	)
	assert.NoError(t, c.Step())
	pd := c.GetPlotData()
	assert.Equal(t, N*N, len(pd.X))
	assert.Equal(t, N*N, len(pd.Y))
	assert.Equal(t, N*N, len(pd.U))
	assert.Equal(t, (N-2)*(N-1)/2, len(pd.Polygons))
	for _, p := range pd.Polygons {
		assert.Equal(t, 6, len(p))
	}
	assert.True(t, near(pd.Time, c.Time))
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	if math.Abs(a-b) <= tol {
		l = true
	}
	return
}
