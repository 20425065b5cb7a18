package ndarray

import "iter"

// View is a read-only handle on an Array. It exposes queries, element reads
// and read-only iterators, never pointers into the storage.
type View[T any, I Index] struct {
	arr *Array[T, I]
}

// Shape returns the extent of each axis.
func (v View[T, I]) Shape() I { return v.arr.shape }

// Size returns the total number of elements.
func (v View[T, I]) Size() int { return v.arr.size }

// Rank returns the number of axes.
func (v View[T, I]) Rank() int { return v.arr.Rank() }

// Stride returns the row-major stride of axis d.
func (v View[T, I]) Stride(d int) int { return v.arr.Stride(d) }

// Strides returns the row-major strides of all axes.
func (v View[T, I]) Strides() I { return v.arr.Strides() }

// At returns the element at idx.
func (v View[T, I]) At(idx I) T { return v.arr.At(idx) }

// Clone returns a deep copy of the viewed array.
func (v View[T, I]) Clone() *Array[T, I] { return v.arr.Clone() }

// Begin returns a read-only flat iterator at the first storage slot.
func (v View[T, I]) Begin() ConstFlatIter[T] { return v.arr.CBegin() }

// End returns a read-only flat iterator one past the last storage slot.
func (v View[T, I]) End() ConstFlatIter[T] { return v.arr.CEnd() }

// NDBegin returns a read-only ND iterator at the first element.
func (v View[T, I]) NDBegin() ConstNDIter[T, I] { return v.arr.NDCBegin() }

// NDEnd returns a read-only ND iterator at the end position.
func (v View[T, I]) NDEnd() ConstNDIter[T, I] { return v.arr.NDCEnd() }

// Values yields every element in storage order.
func (v View[T, I]) Values() iter.Seq[T] { return v.arr.Values() }
