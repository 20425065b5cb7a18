package ndarray

import "iter"

// EnumIter wraps an NDIter and yields (coordinate, element pointer) pairs.
type EnumIter[T any, I Index] struct {
	it NDIter[T, I]
}

// Get returns the coordinate of the current element and a pointer to it.
func (e EnumIter[T, I]) Get() (I, *T) {
	return e.it.Index(), e.it.Ptr()
}

// Next advances to the following element.
func (e *EnumIter[T, I]) Next() { e.it.Next() }

// Done reports whether the iterator is at the end position.
func (e EnumIter[T, I]) Done() bool { return e.it.Done() }

// Equal reports whether both iterators are at the same position of the same array.
func (e EnumIter[T, I]) Equal(o EnumIter[T, I]) bool { return e.it.Equal(o.it) }

// ConstEnumIter wraps a ConstNDIter and yields (coordinate, element) pairs.
type ConstEnumIter[T any, I Index] struct {
	it ConstNDIter[T, I]
}

// Get returns the coordinate and value of the current element.
func (e ConstEnumIter[T, I]) Get() (I, T) {
	return e.it.Index(), e.it.Value()
}

// Next advances to the following element.
func (e *ConstEnumIter[T, I]) Next() { e.it.Next() }

// Done reports whether the iterator is at the end position.
func (e ConstEnumIter[T, I]) Done() bool { return e.it.Done() }

// Equal reports whether both iterators are at the same position of the same array.
func (e ConstEnumIter[T, I]) Equal(o ConstEnumIter[T, I]) bool { return e.it.Equal(o.it) }

// Enumerator is a range over an array's (coordinate, element pointer) pairs.
// It does not own the array; the array must outlive it and must not be
// moved while it is in use.
type Enumerator[T any, I Index] struct {
	arr *Array[T, I]
}

// Enumerate returns an Enumerator over a.
//
//	for idx, p := range ndarray.Enumerate(a).All() {
//		*p = f(idx)
//	}
func Enumerate[T any, I Index](a *Array[T, I]) Enumerator[T, I] {
	return Enumerator[T, I]{arr: a}
}

// Begin returns an enumerating iterator at the first element.
func (e Enumerator[T, I]) Begin() EnumIter[T, I] {
	return EnumIter[T, I]{it: e.arr.NDBegin()}
}

// End returns an enumerating iterator at the end position.
func (e Enumerator[T, I]) End() EnumIter[T, I] {
	return EnumIter[T, I]{it: e.arr.NDEnd()}
}

// All yields every coordinate with a pointer to its element, in storage order.
func (e Enumerator[T, I]) All() iter.Seq2[I, *T] {
	return func(yield func(I, *T) bool) {
		for it, end := e.Begin(), e.End(); !it.Equal(end); it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// ConstEnumerator is the read-only counterpart of Enumerator.
type ConstEnumerator[T any, I Index] struct {
	arr *Array[T, I]
}

// EnumerateView returns a ConstEnumerator over the array behind v.
func EnumerateView[T any, I Index](v View[T, I]) ConstEnumerator[T, I] {
	return ConstEnumerator[T, I]{arr: v.arr}
}

// Begin returns an enumerating iterator at the first element.
func (e ConstEnumerator[T, I]) Begin() ConstEnumIter[T, I] {
	return ConstEnumIter[T, I]{it: e.arr.NDCBegin()}
}

// End returns an enumerating iterator at the end position.
func (e ConstEnumerator[T, I]) End() ConstEnumIter[T, I] {
	return ConstEnumIter[T, I]{it: e.arr.NDCEnd()}
}

// All yields every coordinate with its element value, in storage order.
func (e ConstEnumerator[T, I]) All() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for it, end := e.Begin(), e.End(); !it.Equal(end); it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}
