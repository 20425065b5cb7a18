// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/libmisc/ndarray"
)

// Shape and stride scenarios through the public API.
func TestPublicShapes(t *testing.T) {
	v, err := ndarray.New[float64]([1]int{10})
	require.NoError(t, err)
	assert.Equal(t, 10, v.Size())
	assert.Equal(t, [1]int{1}, v.Strides())

	m, err := ndarray.New[float64]([2]int{5, 10})
	require.NoError(t, err)
	assert.Equal(t, 50, m.Size())
	assert.Equal(t, [2]int{10, 1}, m.Strides())

	h, err := ndarray.New[float64]([5]int{2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 720, h.Size())
	assert.Equal(t, [5]int{360, 120, 30, 6, 1}, h.Strides())
	assert.Equal(t, 720, ndarray.Size(h.Shape()))
	assert.Equal(t, 5, ndarray.Rank[[5]int]())
}

func TestPublicFillAndEnumerate(t *testing.T) {
	x, err := ndarray.Full([2]int{2, 3}, 2.0)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 2.0, *ndarray.Elem(x, i, j))
		}
	}

	var it ndarray.EnumIter[float64, [2]int]
	e := ndarray.Enumerate(x)
	for it = e.Begin(); !it.Equal(e.End()); it.Next() {
		idx, p := it.Get()
		*p = float64(idx[0] + idx[1])
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, float64(i+j), ndarray.ConstElem(x.View(), i, j))
		}
	}
}

func TestPublicMoveChain(t *testing.T) {
	x := ndarray.MustNew[float64]([1]int{5})
	x.MoveFrom(ndarray.MustFull([1]int{10}, 1.0))
	y := x.Move()

	assert.Equal(t, 10, y.Size())
	assert.Equal(t, 0, x.Size())
	assert.Equal(t, [1]int{0}, x.Shape())
	for v := range y.Values() {
		assert.Equal(t, 1.0, v)
	}
}

func TestPublicErrors(t *testing.T) {
	_, err := ndarray.New[int]([2]int{-1, 2})
	assert.ErrorIs(t, err, ndarray.ErrNegativeExtent)

	_, err = ndarray.FromSlice([1]int{3}, []int{1, 2})
	assert.ErrorIs(t, err, ndarray.ErrDataLength)

	assert.NoError(t, ndarray.ValidateShape([3]int{1, 2, 3}))
	assert.True(t, ndarray.Contains([2]int{2, 2}, [2]int{1, 1}))
}

func TestPublicLayoutRoundTrip(t *testing.T) {
	shape := [3]int{3, 4, 5}
	for f := 0; f < ndarray.Size(shape); f++ {
		require.Equal(t, f, ndarray.Flat(shape, ndarray.Unflat(shape, f)))
	}
	assert.Equal(t, 5, ndarray.Stride(shape, 1))
	assert.Equal(t, [3]int{20, 5, 1}, ndarray.Strides(shape))
}

func ExampleEnumerate() {
	x := ndarray.MustNew[int]([2]int{2, 3})
	for idx, p := range ndarray.Enumerate(x).All() {
		*p = idx[0]*10 + idx[1]
	}
	fmt.Println(x.Data())
	// Output: [0 1 2 10 11 12]
}

func ExampleNew() {
	x := ndarray.MustFull([2]int{2, 2}, 7)
	for it := x.NDBegin(); !it.Equal(x.NDEnd()); it.Next() {
		fmt.Println(it.Index(), it.Value())
	}
	// Output:
	// [0 0] 7
	// [0 1] 7
	// [1 0] 7
	// [1 1] 7
}

func ExampleEnumerateView() {
	x, _ := ndarray.FromSlice([1]int{3}, []string{"a", "b", "c"})
	for idx, v := range ndarray.EnumerateView(x.View()).All() {
		fmt.Println(idx[0], v)
	}
	// Output:
	// 0 a
	// 1 b
	// 2 c
}
