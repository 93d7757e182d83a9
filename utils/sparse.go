package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

func (m DOK) ToDense() Matrix {
	var (
		nr, nc = m.Dims()
	)
	R := NewMatrix(nr, nc)
	m.M.DoNonZero(func(i, j int, val float64) {
		R.M.Set(i, j, val)
	})
	return R
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }
func (m CSR) NNZ() int            { return m.M.NNZ() }

func (m CSR) DoNonZero(fn func(i, j int, val float64)) { m.M.DoNonZero(fn) }

// MulVec computes m * v without densifying the receiver.
func (m CSR) MulVec(v Vector) (r Vector) {
	var (
		nr, nc = m.Dims()
		data   = v.Data()
	)
	if nc != v.Len() {
		err := fmt.Errorf("dimension mismatch: matrix is %dx%d, vector length is %d", nr, nc, v.Len())
		panic(err)
	}
	r = NewVector(nr)
	rD := r.Data()
	m.M.DoNonZero(func(i, j int, val float64) {
		rD[i] += val * data[j]
	})
	return
}
