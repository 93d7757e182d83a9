package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	{ // construction and copy independence
		v := NewVector(3, []float64{1, 2, 3})
		assert.Equal(t, 3, v.Len())
		w := v.Copy()
		w.Set(0, 100)
		assert.Equal(t, 1., v.AtVec(0))
		assert.Equal(t, 100., w.AtVec(0))
	}
	{ // chainable mutators
		v := NewVector(3, []float64{1, 2, 3})
		v.Scale(2).Add(1)
		assert.True(t, nearVec(v.Data(), []float64{3, 5, 7}, 0.000001))
		v.Sub(NewVector(3, ConstArray(3, 1)))
		assert.True(t, nearVec(v.Data(), []float64{2, 4, 6}, 0.000001))
		v.Apply(func(x float64) float64 { return -x })
		assert.Equal(t, -6., v.Min())
		assert.Equal(t, -2., v.Max())
	}
}

func TestVectorNorms(t *testing.T) {
	v := NewVector(4, []float64{1, -7, 3, 0})
	assert.Equal(t, 7., v.MaxAbs())
	assert.True(t, v.IsFinite())
	v.Set(2, math.NaN())
	assert.False(t, v.IsFinite())
	v.Set(2, math.Inf(1))
	assert.False(t, v.IsFinite())
}

func TestIndex(t *testing.T) {
	r := NewRange(2, 5)
	assert.Equal(t, Index{2, 3, 4, 5}, r)
	assert.Equal(t, Index{12, 13, 14, 15}, r.Add(10))
	assert.Equal(t, Index{4, 6, 8, 10}, r.Apply(func(v int) int { return 2 * v }))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(6))
	assert.Equal(t, 2, r.Min())
	assert.Equal(t, 5, r.Max())
}
