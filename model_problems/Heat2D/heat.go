package Heat2D

import (
	"fmt"
	"math"

	"github.com/quantitativebiker/hex-fdm/FD2D"
	"github.com/quantitativebiker/hex-fdm/utils"
)

// Heat owns one complete simulation: the immutable mesh, connectivity and
// assembled operator, plus the solution vector and clock it advances. The
// artifacts never change after construction; only U and Time do.
type Heat struct {
	// Input parameters
	N      int
	Mu, Dt float64
	Type   FD2D.MeshType
	Exact  FD2D.ExactSolution
	Msh    *FD2D.Mesh2D
	Con    *FD2D.Connectivity
	Op     *FD2D.HeatOperator
	U      utils.Vector // solution at the current time level, one value per node
	Time   float64
	Steps  int
}

func NewHeat(mt FD2D.MeshType, N int, mu, dt float64, exact FD2D.ExactSolution) (c *Heat, err error) {
	c = &Heat{
		N:     N,
		Mu:    mu,
		Dt:    dt,
		Type:  mt,
		Exact: exact,
	}
	if c.Msh, err = FD2D.NewMesh2D(mt, N); err != nil {
		return nil, err
	}
	if c.Con, err = FD2D.NewConnectivity(mt, N); err != nil {
		return nil, err
	}
	if c.Op, err = FD2D.NewHeatOperator(c.Msh, c.Con, mu, dt, exact); err != nil {
		return nil, err
	}
	c.U = c.Msh.Evaluate(exact, 0)
	return
}

// Step advances the solution by one backward-Euler time level: Dirichlet
// rows take the exact boundary values at the new time, interior rows take
// -u/dt from the previous level, and the factorized system is solved.
func (c *Heat) Step() (err error) {
	var (
		tNew = c.Time + c.Dt
		unew utils.Vector
	)
	if unew, err = c.Op.Advance(tNew, c.U); err != nil {
		return &FD2D.NumericalError{
			Type:    c.Type,
			Step:    c.Steps + 1,
			Time:    tNew,
			Wrapped: err,
		}
	}
	c.U = unew
	c.Time = tNew
	c.Steps++
	return
}

// Run takes nsteps time steps, logging the max error against the exact
// solution at a fixed interval.
func (c *Heat) Run(nsteps int) (err error) {
	var (
		logFrequency = 50
	)
	fmt.Printf("%s mesh: N = %d, mu = %v, dt = %v, %d steps\n",
		c.Type.Print(), c.N, c.Mu, c.Dt, nsteps)
	for tstep := 0; tstep < nsteps; tstep++ {
		if err = c.Step(); err != nil {
			return
		}
		if tstep%logFrequency == 0 || tstep == nsteps-1 {
			fmt.Printf("Time = %8.4f, max_err[%d] = %8.3e, umin = %8.4f, umax = %8.4f\n",
				c.Time, tstep, c.MaxError(), c.U.Min(), c.U.Max())
		}
	}
	return
}

// MaxError is the infinity norm of U minus the exact solution at the
// current time, over all nodes.
func (c *Heat) MaxError() float64 {
	return c.U.Copy().Sub(c.Msh.Evaluate(c.Exact, c.Time)).MaxAbs()
}

// CosineDecay returns the product-cosine solution of the heat equation
// used to verify both discretizations:
//
//	f(t,x,y) = cos(2 pi x) cos(2 pi y) exp(-8 mu pi^2 t)
func CosineDecay(mu float64) FD2D.ExactSolution {
	return func(t, x, y float64) float64 {
		return math.Cos(2*math.Pi*x) * math.Cos(2*math.Pi*y) * math.Exp(-8*mu*t*math.Pi*math.Pi)
	}
}
