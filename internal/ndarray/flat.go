package ndarray

import (
	"iter"
	"unsafe"
)

// FlatIter is a random-access position in an array's contiguous storage.
// It carries no coordinate information.
type FlatIter[T any] struct {
	data []T
	pos  int
}

// Ptr returns a pointer to the current element.
func (it FlatIter[T]) Ptr() *T {
	return &it.data[it.pos]
}

// Value returns the current element.
func (it FlatIter[T]) Value() T {
	return it.data[it.pos]
}

// Pos returns the storage offset of the iterator.
func (it FlatIter[T]) Pos() int {
	return it.pos
}

// Next moves to the following storage slot.
func (it *FlatIter[T]) Next() {
	it.pos++
}

// Prev moves to the preceding storage slot.
func (it *FlatIter[T]) Prev() {
	it.pos--
}

// Advance moves n slots, backwards when n is negative.
func (it *FlatIter[T]) Advance(n int) {
	it.pos += n
}

// Equal reports whether both iterators are at the same slot of the same storage.
func (it FlatIter[T]) Equal(o FlatIter[T]) bool {
	return sameStorage(it.data, o.data) && it.pos == o.pos
}

// Less reports whether it is before o in the same storage.
func (it FlatIter[T]) Less(o FlatIter[T]) bool {
	return it.pos < o.pos
}

// Distance returns the number of slots from it to o.
func (it FlatIter[T]) Distance(o FlatIter[T]) int {
	return o.pos - it.pos
}

// ConstFlatIter is a read-only FlatIter.
type ConstFlatIter[T any] struct {
	it FlatIter[T]
}

// Value returns the current element.
func (c ConstFlatIter[T]) Value() T { return c.it.Value() }

// Pos returns the storage offset of the iterator.
func (c ConstFlatIter[T]) Pos() int { return c.it.pos }

// Next moves to the following storage slot.
func (c *ConstFlatIter[T]) Next() { c.it.Next() }

// Prev moves to the preceding storage slot.
func (c *ConstFlatIter[T]) Prev() { c.it.Prev() }

// Advance moves n slots, backwards when n is negative.
func (c *ConstFlatIter[T]) Advance(n int) { c.it.Advance(n) }

// Equal reports whether both iterators are at the same slot of the same storage.
func (c ConstFlatIter[T]) Equal(o ConstFlatIter[T]) bool { return c.it.Equal(o.it) }

// Less reports whether c is before o in the same storage.
func (c ConstFlatIter[T]) Less(o ConstFlatIter[T]) bool { return c.it.Less(o.it) }

// Distance returns the number of slots from c to o.
func (c ConstFlatIter[T]) Distance(o ConstFlatIter[T]) int { return c.it.Distance(o.it) }

func sameStorage[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// Begin returns a flat iterator at the first storage slot.
func (a *Array[T, I]) Begin() FlatIter[T] {
	return FlatIter[T]{data: a.data, pos: 0}
}

// End returns a flat iterator one past the last storage slot.
func (a *Array[T, I]) End() FlatIter[T] {
	return FlatIter[T]{data: a.data, pos: a.size}
}

// CBegin returns a read-only flat iterator at the first storage slot.
func (a *Array[T, I]) CBegin() ConstFlatIter[T] {
	return ConstFlatIter[T]{it: a.Begin()}
}

// CEnd returns a read-only flat iterator one past the last storage slot.
func (a *Array[T, I]) CEnd() ConstFlatIter[T] {
	return ConstFlatIter[T]{it: a.End()}
}

// Values yields every element in storage order.
func (a *Array[T, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every element in storage order.
func (a *Array[T, I]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range a.data {
			if !yield(&a.data[i]) {
				return
			}
		}
	}
}
