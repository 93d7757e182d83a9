package FD2D

import (
	"github.com/quantitativebiker/hex-fdm/utils"
)

type StencilFamily uint8

const (
	RightStencil StencilFamily = iota
	LeftStencil
)

// Stencil is the ordered group of node indices the discrete operator acts
// on at one interior node. Nodes are stored in ascending index order, which
// places the center at position 2 for the rectangular 5-point stencil, and
// at position 1 (right-leaning) or 2 (left-leaning) for the two hexagonal
// 4-point families.
type Stencil struct {
	Nodes   utils.Index
	DiagPos int
}

func (st Stencil) Center() int {
	return st.Nodes[st.DiagPos]
}

// Connectivity is derived from (MeshType, N) by index arithmetic alone, no
// floating point geometry. Boundary nodes and stencil centers partition the
// node indices [0,N^2) exactly; the constructor verifies this before
// returning.
type Connectivity struct {
	N        int
	Type     MeshType
	Boundary utils.Index // cyclic winding over the domain edge, corners deduplicated
	Stencils []Stencil   // hexagonal: right family first, then left
	NRight   int
	NLeft    int
	Polygons [][]int // cell index lists for the external renderer only
}

func NewConnectivity(mt MeshType, N int) (con *Connectivity, err error) {
	if err = ValidateResolution(N); err != nil {
		return
	}
	con = &Connectivity{N: N, Type: mt}
	switch mt {
	case RECTANGULAR:
		con.buildRectangular()
	case HEXAGONAL:
		con.buildHexagonal()
	}
	if err = con.checkPartition(); err != nil {
		con = nil
		return
	}
	return
}

func (con *Connectivity) buildRectangular() {
	var (
		N = con.N
	)
	// boundary winding: bottom, right, top reversed, left reversed
	for i := 0; i < N; i++ {
		con.Boundary = append(con.Boundary, i)
	}
	for j := 1; j < N; j++ {
		con.Boundary = append(con.Boundary, j*N+N-1)
	}
	for i := N - 2; i >= 0; i-- {
		con.Boundary = append(con.Boundary, (N-1)*N+i)
	}
	for j := N - 2; j >= 1; j-- {
		con.Boundary = append(con.Boundary, j*N)
	}
	// one 5-point stencil per interior node
	for j := 1; j < N-1; j++ {
		for i := 1; i < N-1; i++ {
			c := j*N + i
			con.Stencils = append(con.Stencils, Stencil{
				Nodes:   utils.Index{c - N, c - 1, c, c + 1, c + N},
				DiagPos: 2,
			})
		}
	}
	// quadrilateral cells for rendering
	for j := 0; j < N-1; j++ {
		for i := 0; i < N-1; i++ {
			con.Polygons = append(con.Polygons, []int{
				j*N + i, j*N + i + 1, (j+1)*N + i + 1, (j+1)*N + i,
			})
		}
	}
}

// buildHexagonal assembles the two stencil families of the brick lattice.
// Rows 0,1 and N-2,N-1 are Dirichlet bands; the remaining rows form
// N/2-2 row-pair blocks (rows 2j+2 and 2j+3). Within a block, the even row
// loses its two end nodes to the boundary and the odd row is fully
// interior. Every interior node has exactly three lattice neighbors: the
// nodes directly above and below (same column, +-N) and the same-row
// partner across its short edge, on the right for the right-leaning family
// and on the left for the left-leaning family.
func (con *Connectivity) buildHexagonal() {
	var (
		N           = con.N
		right, left []Stencil
	)
	// bottom band, two full rows
	for j := 0; j < 2; j++ {
		for i := 0; i < N; i++ {
			con.Boundary = append(con.Boundary, j*N+i)
		}
	}
	// ragged right edge, upward: end nodes of the interior even rows
	for j := 2; j <= N-4; j += 2 {
		con.Boundary = append(con.Boundary, j*N+N-1)
	}
	// top band, two full rows, reversed
	for j := N - 2; j < N; j++ {
		for i := N - 1; i >= 0; i-- {
			con.Boundary = append(con.Boundary, j*N+i)
		}
	}
	// ragged left edge, downward
	for j := N - 4; j >= 2; j -= 2 {
		con.Boundary = append(con.Boundary, j*N)
	}

	for j := 0; j < N/2-2; j++ {
		er := 2*j + 2 // even sub-block row
		or := er + 1  // odd sub-block row
		for i := 1; i <= N-2; i++ {
			c := er*N + i
			if i%2 == 1 {
				right = append(right, Stencil{utils.Index{c - N, c, c + 1, c + N}, 1})
			} else {
				left = append(left, Stencil{utils.Index{c - N, c - 1, c, c + N}, 2})
			}
		}
		for i := 0; i < N; i++ {
			c := or*N + i
			if i%2 == 0 {
				right = append(right, Stencil{utils.Index{c - N, c, c + 1, c + N}, 1})
			} else {
				left = append(left, Stencil{utils.Index{c - N, c - 1, c, c + N}, 2})
			}
		}
	}
	con.NRight, con.NLeft = len(right), len(left)
	con.Stencils = append(right, left...)

	// hexagonal cells for rendering: one per short edge (a,a+1) in rows
	// 0..N-3, wound from the top edge through the right flank to the
	// bottom edge and back through the left flank
	for j := 0; j <= N-3; j++ {
		a, amax := 1, N-3
		if j%2 == 1 {
			a, amax = 0, N-2
		}
		for ; a <= amax; a += 2 {
			con.Polygons = append(con.Polygons, []int{
				j*N + a, j*N + a + 1,
				(j+1)*N + a + 1,
				(j+2)*N + a + 1, (j+2)*N + a,
				(j+1)*N + a,
			})
		}
	}
}

// Family reports which hexagonal family the stencil at position s belongs
// to; the right family occupies the front of the stencil list.
func (con *Connectivity) Family(s int) StencilFamily {
	if s < con.NRight {
		return RightStencil
	}
	return LeftStencil
}

// checkPartition verifies that boundary nodes and stencil centers cover
// every node index exactly once.
func (con *Connectivity) checkPartition() error {
	counts := make([]int, con.N*con.N)
	for _, n := range con.Boundary {
		counts[n]++
	}
	for _, st := range con.Stencils {
		counts[st.Center()]++
	}
	for n, c := range counts {
		if c != 1 {
			return &IndexConsistencyError{Type: con.Type, Node: n, Count: c}
		}
	}
	return nil
}
