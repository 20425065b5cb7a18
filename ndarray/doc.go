// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides a dense, fixed-rank, N-dimensional array.
//
// # Overview
//
// Array[T, I] uniquely owns a contiguous row-major buffer of T. The rank is
// carried by the coordinate type I, a fixed-length int array such as [3]int,
// so an index of the wrong rank does not compile:
//
//	x, err := ndarray.New[float64]([3]int{2, 3, 4})
//	if err != nil {
//	    return err
//	}
//	x.Set([3]int{1, 2, 3}, 1.5)
//	v := x.At([3]int{1, 2, 3})
//
// Element access is never bounds checked. Use Contains on untrusted input.
//
// # Iteration
//
// Three traversal forms are provided, from cheapest to richest:
//
//	// Flat: storage order, no coordinates.
//	for it := x.Begin(); !it.Equal(x.End()); it.Next() {
//	    *it.Ptr() = 0
//	}
//
//	// ND: storage order, coordinate on demand.
//	for it := x.NDBegin(); !it.Equal(x.NDEnd()); it.Next() {
//	    idx := it.Index()
//	    *it.Ptr() = float64(idx[0])
//	}
//
//	// Enumerate: (coordinate, pointer) pairs with range-over-func.
//	for idx, p := range ndarray.Enumerate(x).All() {
//	    *p = float64(idx[0] + idx[1] + idx[2])
//	}
//
// Read-only counterparts (CBegin, NDCBegin, EnumerateView) never hand out
// pointers. View gives a read-only handle on the whole array.
//
// # Ownership
//
// Arrays are used through pointers. Clone makes a deep copy, Move and
// MoveFrom transfer the storage and leave the source empty. Iterators and
// enumerators do not own the array and are invalidated when it is moved or
// reset. Nothing here is safe for concurrent mutation.
package ndarray
