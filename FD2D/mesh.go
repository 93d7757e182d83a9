package FD2D

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/quantitativebiker/hex-fdm/utils"
)

type MeshType uint8

const (
	RECTANGULAR MeshType = iota
	HEXAGONAL
)

var (
	MeshNames = map[string]MeshType{
		"rect":        RECTANGULAR,
		"rectangular": RECTANGULAR,
		"hex":         HEXAGONAL,
		"hexagonal":   HEXAGONAL,
	}
	MeshPrintNames = []string{"Rectangular", "Hexagonal"}
)

func (mt MeshType) Print() (txt string) {
	txt = MeshPrintNames[mt]
	return
}

func NewMeshType(label string) (mt MeshType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if mt, ok = MeshNames[label]; !ok {
		err = fmt.Errorf("unable to use mesh type named %s", label)
		panic(err)
	}
	return
}

// Relative step lengths of the hexagonal brick lattice. A row of nodes
// advances by alternating short and long steps, the parity of the
// alternation being tied to row and column parity. The short step is one
// hexagon edge, the long step spans two.
const (
	hexShort = 1.0
	hexLong  = 2.0
)

// Mesh2D holds the node coordinates of one of the two fixed
// discretizations of the unit square. Node (i,j) carries index j*N+i; all
// connectivity and boundary lists reference nodes by this index, so the
// ordering is load bearing and deterministic.
type Mesh2D struct {
	N    int
	Type MeshType
	X, Y utils.Vector
}

func NewMesh2D(mt MeshType, N int) (msh *Mesh2D, err error) {
	if err = ValidateResolution(N); err != nil {
		return
	}
	msh = &Mesh2D{
		N:    N,
		Type: mt,
		X:    utils.NewVector(N * N),
		Y:    utils.NewVector(N * N),
	}
	switch mt {
	case RECTANGULAR:
		msh.buildRectangular()
	case HEXAGONAL:
		msh.buildHexagonal()
	}
	return
}

// ValidateResolution enforces the configuration contract on N: even and
// greater than 4. Odd or small N must fail before any construction.
func ValidateResolution(N int) error {
	if N <= 4 {
		return &ConfigurationError{fmt.Sprintf("resolution N = %d, must be greater than 4", N)}
	}
	if N%2 != 0 {
		return &ConfigurationError{fmt.Sprintf("resolution N = %d, must be even", N)}
	}
	return nil
}

func (msh *Mesh2D) buildRectangular() {
	var (
		N      = msh.N
		xD, yD = msh.X.Data(), msh.Y.Data()
	)
	for j := 0; j < N; j++ {
		for i := 0; i < N; i++ {
			ind := j*N + i
			xD[ind] = float64(i) / float64(N-1)
			yD[ind] = float64(j) / float64(N-1)
		}
	}
}

func (msh *Mesh2D) buildHexagonal() {
	var (
		N         = msh.N
		xD, yD    = msh.X.Data(), msh.Y.Data()
		rowHeight = hexShort * math.Sqrt(3) / 2
	)
	for j := 0; j < N; j++ {
		x := 0.
		if j%2 == 1 {
			// odd rows shift right by half a short edge
			x = hexShort / 2
		}
		for i := 0; i < N; i++ {
			ind := j*N + i
			xD[ind] = x
			yD[ind] = float64(j) * rowHeight
			if (i+1)%2 == j%2 {
				x += hexShort
			} else {
				x += hexLong
			}
		}
	}
	// normalize each axis so the domain is [0,1]x[0,1]
	floats.Scale(1/floats.Max(xD), xD)
	floats.Scale(1/floats.Max(yD), yD)
}

// Evaluate samples f at time t on every mesh node.
func (msh *Mesh2D) Evaluate(f ExactSolution, t float64) (u utils.Vector) {
	var (
		xD, yD = msh.X.Data(), msh.Y.Data()
	)
	u = utils.NewVector(msh.N * msh.N)
	uD := u.Data()
	for ind := range uD {
		uD[ind] = f(t, xD[ind], yD[ind])
	}
	return
}
