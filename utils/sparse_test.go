package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse(t *testing.T) {
	A := NewDOK(3, 3)
	A.Set(0, 0, 2).Set(1, 1, 3).Set(2, 0, -1).Set(2, 2, 4)
	assert.Equal(t, 4, A.NNZ())
	{ // CSR conversion preserves the entries
		C := A.ToCSR()
		assert.Equal(t, 4, C.NNZ())
		assert.Equal(t, 2., C.At(0, 0))
		assert.Equal(t, 3., C.At(1, 1))
		assert.Equal(t, -1., C.At(2, 0))
		assert.Equal(t, 4., C.At(2, 2))
		assert.Equal(t, 0., C.At(0, 1))
		// sparse matrix-vector product against a hand computed result
		v := NewVector(3, []float64{1, 2, 3})
		r := C.MulVec(v)
		assert.True(t, nearVec(r.Data(), []float64{2, 6, 11}, 0.000001))
		assert.Panics(t, func() { C.MulVec(NewVector(2)) })
	}
	{ // densification agrees entry for entry
		D := A.ToDense()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.Equal(t, A.At(i, j), D.At(i, j))
			}
		}
	}
	{ // read only protection
		B := A.SetReadOnly("A")
		assert.Panics(t, func() { B.Set(0, 1, 1) })
	}
}
