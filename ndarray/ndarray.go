// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/libmisc/internal/ndarray"
)

// Type aliases for public API

// Index constrains coordinate and shape types to [1]int ... [8]int.
// The array length is the rank.
type Index = ndarray.Index

// MaxRank is the largest supported rank.
const MaxRank = ndarray.MaxRank

// Array is a dense row-major N-dimensional array of T with rank len(I).
//
// Example:
//
//	m := ndarray.MustFull([2]int{3, 4}, float32(0))
//	m.Set([2]int{2, 1}, 1)
type Array[T any, I Index] = ndarray.Array[T, I]

// View is a read-only handle on an Array.
type View[T any, I Index] = ndarray.View[T, I]

// FlatIter is a random-access iterator over an array's storage.
type FlatIter[T any] = ndarray.FlatIter[T]

// ConstFlatIter is a read-only FlatIter.
type ConstFlatIter[T any] = ndarray.ConstFlatIter[T]

// NDIter is a forward iterator that can report the current coordinate.
type NDIter[T any, I Index] = ndarray.NDIter[T, I]

// ConstNDIter is a read-only NDIter.
type ConstNDIter[T any, I Index] = ndarray.ConstNDIter[T, I]

// EnumIter yields (coordinate, element pointer) pairs.
type EnumIter[T any, I Index] = ndarray.EnumIter[T, I]

// ConstEnumIter yields (coordinate, element) pairs.
type ConstEnumIter[T any, I Index] = ndarray.ConstEnumIter[T, I]

// Enumerator is a range over (coordinate, element pointer) pairs.
type Enumerator[T any, I Index] = ndarray.Enumerator[T, I]

// ConstEnumerator is a range over (coordinate, element) pairs.
type ConstEnumerator[T any, I Index] = ndarray.ConstEnumerator[T, I]

// Errors returned by constructors.
var (
	ErrNegativeExtent = ndarray.ErrNegativeExtent
	ErrSizeOverflow   = ndarray.ErrSizeOverflow
	ErrDataLength     = ndarray.ErrDataLength
)

// Creation functions

// Empty returns an array with all-zero shape and no storage.
func Empty[T any, I Index]() *Array[T, I] {
	return ndarray.Empty[T, I]()
}

// New allocates an array of the given shape with unspecified contents.
func New[T any, I Index](shape I) (*Array[T, I], error) {
	return ndarray.New[T](shape)
}

// Full allocates an array of the given shape filled with fill.
func Full[T any, I Index](shape I, fill T) (*Array[T, I], error) {
	return ndarray.Full(shape, fill)
}

// FromSlice creates an array of the given shape holding a copy of data.
func FromSlice[T any, I Index](shape I, data []T) (*Array[T, I], error) {
	return ndarray.FromSlice(shape, data)
}

// MustNew is like New but panics on an invalid shape.
func MustNew[T any, I Index](shape I) *Array[T, I] {
	return ndarray.MustNew[T](shape)
}

// MustFull is like Full but panics on an invalid shape.
func MustFull[T any, I Index](shape I, fill T) *Array[T, I] {
	return ndarray.MustFull(shape, fill)
}

// Element access

// Elem returns a pointer to the element at the per-axis indices inds.
// Panics if len(inds) is not the rank of a.
func Elem[T any, I Index, N constraints.Integer](a *Array[T, I], inds ...N) *T {
	return ndarray.Elem(a, inds...)
}

// ConstElem returns the element of v at the per-axis indices inds.
// Panics if len(inds) is not the rank of v.
func ConstElem[T any, I Index, N constraints.Integer](v View[T, I], inds ...N) T {
	return ndarray.ConstElem(v, inds...)
}

// Enumeration

// Enumerate returns an Enumerator over a.
//
//	for idx, p := range ndarray.Enumerate(a).All() {
//	    *p = idx[0] + idx[1]
//	}
func Enumerate[T any, I Index](a *Array[T, I]) Enumerator[T, I] {
	return ndarray.Enumerate(a)
}

// EnumerateView returns a read-only Enumerator over the array behind v.
func EnumerateView[T any, I Index](v View[T, I]) ConstEnumerator[T, I] {
	return ndarray.EnumerateView(v)
}

// Layout functions

// Rank returns the number of axes of coordinate type I.
func Rank[I Index]() int {
	return ndarray.Rank[I]()
}

// Size returns the number of elements described by shape.
func Size[I Index](shape I) int {
	return ndarray.Size(shape)
}

// Stride returns the row-major stride of axis d.
func Stride[I Index](shape I, d int) int {
	return ndarray.Stride(shape, d)
}

// Strides returns the row-major strides of shape.
func Strides[I Index](shape I) I {
	return ndarray.Strides(shape)
}

// Flat maps a coordinate to its row-major storage offset.
func Flat[I Index](shape, idx I) int {
	return ndarray.Flat(shape, idx)
}

// Unflat maps a storage offset back to its coordinate.
func Unflat[I Index](shape I, flat int) I {
	return ndarray.Unflat(shape, flat)
}

// Contains reports whether idx lies inside shape.
func Contains[I Index](shape, idx I) bool {
	return ndarray.Contains(shape, idx)
}

// ValidateShape checks extents are non-negative and their product fits in an int.
func ValidateShape[I Index](shape I) error {
	return ndarray.ValidateShape(shape)
}
