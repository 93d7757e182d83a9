package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	{ // Transpose and Copy
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		At := A.Transpose()
		nr, nc := At.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.True(t, nearVec(At.Data(), []float64{1, 4, 2, 5, 3, 6}, 0.000001))
		B := A.Copy()
		B.Set(0, 0, 100)
		assert.Equal(t, 1., A.At(0, 0))
		assert.Equal(t, 100., B.At(0, 0))
	}
	{ // Mul
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		B := NewMatrix(2, 2, []float64{
			5, 6,
			7, 8,
		})
		C := A.Mul(B)
		assert.True(t, nearVec(C.Data(), []float64{19, 22, 43, 50}, 0.000001))
	}
	{ // chainable mutators
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A.Scale(2).Add(NewMatrix(2, 2, []float64{1, 1, 1, 1}))
		assert.True(t, nearVec(A.Data(), []float64{3, 5, 7, 9}, 0.000001))
		A.Subtract(NewMatrix(2, 2, []float64{3, 3, 3, 3}))
		assert.True(t, nearVec(A.Data(), []float64{0, 2, 4, 6}, 0.000001))
		A.Apply(func(x float64) float64 { return -x })
		assert.Equal(t, -6., A.Min())
		assert.Equal(t, 0., A.Max())
	}
	{ // read only protection
		A := NewMatrix(2, 2)
		A.SetReadOnly("A")
		assert.Panics(t, func() { A.Set(0, 0, 1) })
		A.SetWritable()
		assert.NotPanics(t, func() { A.Set(0, 0, 1) })
	}
}

func TestMatrixLUSolve(t *testing.T) {
	var (
		A = NewMatrix(3, 3, []float64{
			4, 1, 0,
			1, 4, 1,
			0, 1, 4,
		})
		B = NewMatrix(3, 1, []float64{5, 6, 5})
	)
	X := A.LUSolve(B)
	// A * [1 1 1]' = [5 6 5]'
	assert.True(t, nearVec(X.Data(), []float64{1, 1, 1}, 0.0000001))
	R := A.Mul(X)
	assert.True(t, nearVec(R.Data(), B.Data(), 0.0000001))
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

func nearVec(a, b []float64, tol float64) (l bool) {
	for i, val := range a {
		if !near(b[i], val, tol) {
			return false
		}
	}
	return true
}
