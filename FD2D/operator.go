package FD2D

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/quantitativebiker/hex-fdm/utils"
)

// ExactSolution is a closed form solution of the governing heat equation,
// used both to seed the initial condition and to supply the time varying
// Dirichlet boundary values.
type ExactSolution func(t, x, y float64) float64

// HeatOperator is the assembled backward-Euler system for one mesh: a unit
// Dirichlet row per boundary node followed by one mass/dt + stiffness row
// per interior stencil. The matrix is time invariant (mu and dt are fixed),
// so it is factorized once and only the right hand side changes per step.
type HeatOperator struct {
	Msh   *Mesh2D
	Con   *Connectivity
	Mu    float64
	Dt    float64
	H     float64 // grid spacing, 1/N
	Exact ExactSolution
	M     utils.CSR    // sparse system, kept for residual evaluation
	B0    utils.Vector // right hand side at t = 0
	lu    mat.LU
}

func NewHeatOperator(msh *Mesh2D, con *Connectivity, mu, dt float64, exact ExactSolution) (op *HeatOperator, err error) {
	switch {
	case msh.Type != con.Type || msh.N != con.N:
		err = &ConfigurationError{fmt.Sprintf("mesh (%s, N=%d) does not match connectivity (%s, N=%d)",
			msh.Type.Print(), msh.N, con.Type.Print(), con.N)}
		return
	case mu <= 0:
		err = &ConfigurationError{fmt.Sprintf("diffusion coefficient mu = %v, must be positive", mu)}
		return
	case dt <= 0:
		err = &ConfigurationError{fmt.Sprintf("time step dt = %v, must be positive", dt)}
		return
	}
	op = &HeatOperator{
		Msh:   msh,
		Con:   con,
		Mu:    mu,
		Dt:    dt,
		H:     1 / float64(msh.N),
		Exact: exact,
	}
	op.assemble()
	return
}

// Coefficients returns the off-diagonal and diagonal entries of one
// interior stencil row. Both hexagonal families share these values; the
// families differ only in which tuple position holds the diagonal.
func (op *HeatOperator) Coefficients() (off, diag float64) {
	var (
		hh = utils.POW(op.H, 2)
	)
	switch op.Con.Type {
	case RECTANGULAR:
		off = op.Mu / hh
		diag = -1/op.Dt - 4*op.Mu/hh
	case HEXAGONAL:
		off = 4 * op.Mu / (3 * hh)
		diag = -4*op.Mu/hh - 1/op.Dt
	}
	return
}

func (op *HeatOperator) assemble() {
	var (
		nn        = op.Con.N * op.Con.N
		nb        = len(op.Con.Boundary)
		off, diag = op.Coefficients()
	)
	A := utils.NewDOK(nn, nn)
	for r, bn := range op.Con.Boundary {
		A.Set(r, bn, 1)
	}
	for s, st := range op.Con.Stencils {
		row := nb + s
		for p, node := range st.Nodes {
			if p == st.DiagPos {
				A.Set(row, node, diag)
			} else {
				A.Set(row, node, off)
			}
		}
	}
	A.SetReadOnly("HeatOperator.M")
	op.M = A.ToCSR()
	op.lu.Factorize(A.ToDense().M)

	u0 := op.Msh.Evaluate(op.Exact, 0)
	op.B0 = utils.NewVector(nn)
	op.FormRHS(0, u0, op.B0)
}

// FormRHS fills b for the solve at time t: exact boundary values at t in
// the Dirichlet rows, -u[center]/dt in the stencil rows, where u is the
// solution at the previous time level.
func (op *HeatOperator) FormRHS(t float64, u, b utils.Vector) {
	var (
		nb     = len(op.Con.Boundary)
		xD, yD = op.Msh.X.Data(), op.Msh.Y.Data()
		uD     = u.Data()
		bD     = b.Data()
	)
	for r, bn := range op.Con.Boundary {
		bD[r] = op.Exact(t, xD[bn], yD[bn])
	}
	for s, st := range op.Con.Stencils {
		bD[nb+s] = -uD[st.Center()] / op.Dt
	}
}

// Advance performs one implicit solve: given the solution u at the
// previous time level, it returns the solution at time t. The factorized
// system is reused; a singular or non-finite solve is fatal.
func (op *HeatOperator) Advance(t float64, u utils.Vector) (unew utils.Vector, err error) {
	var (
		nn = u.Len()
	)
	b := utils.NewVector(nn)
	op.FormRHS(t, u, b)
	unew = utils.NewVector(nn)
	if err = op.lu.SolveVecTo(unew.V, false, b.V); err != nil {
		return
	}
	if !unew.IsFinite() {
		err = fmt.Errorf("solution contains NaN or Inf")
	}
	return
}

// Residual evaluates the infinity norm of M*u - b on the sparse system.
func (op *HeatOperator) Residual(u, b utils.Vector) float64 {
	return op.M.MulVec(u).Sub(b).MaxAbs()
}
