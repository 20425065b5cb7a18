package ndarray

import (
	"fmt"
	"math/bits"
)

// Index is a constraint for coordinate (and shape) types.
// The array length is the rank, so the rank is fixed at compile time.
// Rank 0 is not supported.
type Index interface {
	~[1]int | ~[2]int | ~[3]int | ~[4]int | ~[5]int | ~[6]int | ~[7]int | ~[8]int
}

// MaxRank is the largest rank admitted by Index.
const MaxRank = 8

// Rank returns the number of axes of coordinate type I.
func Rank[I Index]() int {
	var idx I
	return len(idx)
}

// Size returns the number of elements described by shape (product of extents).
func Size[I Index](shape I) int {
	n := 1
	for d := 0; d < len(shape); d++ {
		n *= shape[d]
	}
	return n
}

// Stride returns the number of storage slots between neighbours along axis d
// in row-major order: stride(N-1) = 1, stride(d) = stride(d+1) * shape[d+1].
//
// Strides are recomputed from the shape on every call, never stored.
func Stride[I Index](shape I, d int) int {
	s := 1
	for k := len(shape) - 1; k > d; k-- {
		s *= shape[k]
	}
	return s
}

// Strides returns all row-major strides of shape.
func Strides[I Index](shape I) I {
	var strides I
	n := len(shape)
	strides[n-1] = 1
	for d := n - 2; d >= 0; d-- {
		strides[d] = strides[d+1] * shape[d+1]
	}
	return strides
}

// Flat maps a coordinate to its storage offset: sum of idx[d] * stride(d).
// Components are not range checked.
func Flat[I Index](shape, idx I) int {
	flat := 0
	for d := 0; d < len(idx); d++ {
		flat += idx[d] * Stride(shape, d)
	}
	return flat
}

// Unflat maps a storage offset in [0, Size(shape)) back to its coordinate.
// It is the exact inverse of Flat over that range and assumes C-order layout.
func Unflat[I Index](shape I, flat int) I {
	var idx I
	for d := 0; d < len(idx); d++ {
		s := Stride(shape, d)
		idx[d] = flat / s
		flat %= s
	}
	return idx
}

// Contains reports whether every component of idx lies in [0, shape[d]).
// Element access never calls it; it is for callers handling untrusted input.
func Contains[I Index](shape, idx I) bool {
	for d := 0; d < len(idx); d++ {
		if idx[d] < 0 || idx[d] >= shape[d] {
			return false
		}
	}
	return true
}

// ValidateShape checks that all extents are non-negative and that the
// element count fits in an int.
func ValidateShape[I Index](shape I) error {
	n := uint64(1)
	for d := 0; d < len(shape); d++ {
		if shape[d] < 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrNegativeExtent, d, shape[d])
		}
	}
	for d := 0; d < len(shape); d++ {
		hi, lo := bits.Mul64(n, uint64(shape[d]))
		if hi != 0 || lo > uint64(maxInt) {
			return fmt.Errorf("%w: shape %v", ErrSizeOverflow, shape)
		}
		n = lo
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)
