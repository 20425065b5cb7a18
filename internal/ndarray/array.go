// Package ndarray provides a dense, fixed-rank, N-dimensional array with
// flat and coordinate-aware iteration.
package ndarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// noCopy lets go vet (copylocks) report Array values copied by assignment.
// A struct copy would alias the storage; use Clone instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array is a dense row-major N-dimensional array that uniquely owns its
// storage. The rank is len(I).
//
// The zero value is an empty array: all-zero shape, size 0, no storage.
//
// Element access is not bounds checked. Iterators keep a pointer to the
// Array they came from and are invalidated by Move, MoveFrom, Swap, Assign
// and Reset.
type Array[T any, I Index] struct {
	_     noCopy
	shape I
	size  int
	data  []T
}

// Empty returns an array with all-zero shape and no storage.
func Empty[T any, I Index]() *Array[T, I] {
	return &Array[T, I]{}
}

// New allocates an array of the given shape.
// Contents are unspecified; callers must write before reading.
func New[T any, I Index](shape I) (*Array[T, I], error) {
	if err := ValidateShape(shape); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	size := Size(shape)
	return &Array[T, I]{
		shape: shape,
		size:  size,
		data:  make([]T, size),
	}, nil
}

// Full allocates an array of the given shape with every element set to fill.
func Full[T any, I Index](shape I, fill T) (*Array[T, I], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = fill
	}
	return a, nil
}

// FromSlice creates an array of the given shape holding a copy of data.
func FromSlice[T any, I Index](shape I, data []T) (*Array[T, I], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != a.size {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrDataLength, shape, a.size, len(data))
	}
	copy(a.data, data)
	return a, nil
}

// MustNew is like New but panics on an invalid shape.
func MustNew[T any, I Index](shape I) *Array[T, I] {
	a, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return a
}

// MustFull is like Full but panics on an invalid shape.
func MustFull[T any, I Index](shape I, fill T) *Array[T, I] {
	a, err := Full(shape, fill)
	if err != nil {
		panic(err)
	}
	return a
}

// Shape returns the extent of each axis.
func (a *Array[T, I]) Shape() I {
	return a.shape
}

// Size returns the total number of elements.
func (a *Array[T, I]) Size() int {
	return a.size
}

// Rank returns the number of axes.
func (a *Array[T, I]) Rank() int {
	return len(a.shape)
}

// Stride returns the row-major stride of axis d.
func (a *Array[T, I]) Stride(d int) int {
	return Stride(a.shape, d)
}

// Strides returns the row-major strides of all axes.
func (a *Array[T, I]) Strides() I {
	return Strides(a.shape)
}

// Data returns the backing storage in flat (row-major) order.
// Writes through the slice modify the array.
func (a *Array[T, I]) Data() []T {
	return a.data
}

// At returns the element at idx.
func (a *Array[T, I]) At(idx I) T {
	return a.data[Flat(a.shape, idx)]
}

// Ptr returns a pointer to the element at idx.
func (a *Array[T, I]) Ptr(idx I) *T {
	return &a.data[Flat(a.shape, idx)]
}

// Set stores v at idx.
func (a *Array[T, I]) Set(idx I, v T) {
	a.data[Flat(a.shape, idx)] = v
}

// Clone returns a deep copy that shares no storage with a.
func (a *Array[T, I]) Clone() *Array[T, I] {
	c := &Array[T, I]{shape: a.shape, size: a.size}
	if a.data != nil {
		// make+copy keeps cap == len.
		c.data = make([]T, a.size)
		copy(c.data, a.data)
	}
	return c
}

// Move transfers the storage into a new array and leaves a empty.
func (a *Array[T, I]) Move() *Array[T, I] {
	m := Empty[T, I]()
	m.Swap(a)
	return m
}

// Swap exchanges the shape and storage of a and b. It cannot fail.
func (a *Array[T, I]) Swap(b *Array[T, I]) {
	a.shape, b.shape = b.shape, a.shape
	a.size, b.size = b.size, a.size
	a.data, b.data = b.data, a.data
}

// Assign replaces the contents of a with a deep copy of src.
// The copy is made before a is touched, so a is unchanged if it panics.
func (a *Array[T, I]) Assign(src *Array[T, I]) {
	tmp := src.Clone()
	a.Swap(tmp)
}

// MoveFrom takes over the storage of src, leaving src empty.
// The previous storage of a is released.
func (a *Array[T, I]) MoveFrom(src *Array[T, I]) {
	if a == src {
		return
	}
	tmp := src.Move()
	a.Swap(tmp)
}

// Reset releases the storage; a becomes empty.
func (a *Array[T, I]) Reset() {
	var zero I
	a.shape = zero
	a.size = 0
	a.data = nil
}

// View returns a read-only handle on a.
func (a *Array[T, I]) View() View[T, I] {
	return View[T, I]{arr: a}
}

// String returns a short description such as "Array[2 3](size=6)".
func (a *Array[T, I]) String() string {
	return fmt.Sprintf("Array%v(size=%d)", a.shape, a.size)
}

// Elem returns a pointer to the element at the per-axis indices inds.
// Panics if len(inds) differs from the rank; use Ptr with an I literal for a
// compile-time rank check.
func Elem[T any, I Index, N constraints.Integer](a *Array[T, I], inds ...N) *T {
	return a.Ptr(indexOf[I](inds))
}

// ConstElem returns the element of v at the per-axis indices inds.
// Panics if len(inds) differs from the rank.
func ConstElem[T any, I Index, N constraints.Integer](v View[T, I], inds ...N) T {
	return v.At(indexOf[I](inds))
}

func indexOf[I Index, N constraints.Integer](inds []N) I {
	var idx I
	if len(inds) != len(idx) {
		panic(fmt.Sprintf("ndarray: %d indices for rank %d array", len(inds), len(idx)))
	}
	for d, v := range inds {
		idx[d] = int(v)
	}
	return idx
}
