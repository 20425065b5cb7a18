// Package inspect runs ndarray layouts whose rank is only known at run time.
//
// Each entry point converts a []int shape to the matching fixed-rank
// coordinate type and calls a generic implementation for that rank.
package inspect

import (
	"errors"
	"fmt"

	"github.com/born-ml/libmisc/internal/config"
	"github.com/born-ml/libmisc/internal/logging"
	"github.com/born-ml/libmisc/internal/ndarray"
)

// Errors.
var (
	ErrRank     = errors.New("unsupported rank")
	ErrMismatch = errors.New("layout check failed")
)

// Report describes the row-major layout of a shape.
type Report struct {
	Shape   []int
	Rank    int
	Size    int
	Strides []int
}

// Result is the outcome of checking one layout.
type Result struct {
	Name    string
	Rank    int
	Size    int
	Checked int // elements visited by the round-trip and enumeration checks
}

// Describe returns the rank, size and strides of shape.
func Describe(shape []int) (Report, error) {
	switch len(shape) {
	case 1:
		return describe[[1]int](shape)
	case 2:
		return describe[[2]int](shape)
	case 3:
		return describe[[3]int](shape)
	case 4:
		return describe[[4]int](shape)
	case 5:
		return describe[[5]int](shape)
	case 6:
		return describe[[6]int](shape)
	case 7:
		return describe[[7]int](shape)
	case 8:
		return describe[[8]int](shape)
	default:
		return Report{}, rankError(len(shape))
	}
}

// Walk calls visit with every coordinate of shape and its flat offset, in
// ND-iteration order, until visit returns false.
func Walk(shape []int, visit func(idx []int, flat int) bool) error {
	switch len(shape) {
	case 1:
		return walk[[1]int](shape, visit)
	case 2:
		return walk[[2]int](shape, visit)
	case 3:
		return walk[[3]int](shape, visit)
	case 4:
		return walk[[4]int](shape, visit)
	case 5:
		return walk[[5]int](shape, visit)
	case 6:
		return walk[[6]int](shape, visit)
	case 7:
		return walk[[7]int](shape, visit)
	case 8:
		return walk[[8]int](shape, visit)
	default:
		return rankError(len(shape))
	}
}

// Check builds the array described by l and verifies that the flat and
// inverse mappings round-trip, that the fill value (if any) reads back at
// every coordinate, and that values written through Enumerate read back
// through coordinate access.
func Check(l config.Layout) (Result, error) {
	var (
		res Result
		err error
	)
	switch len(l.Shape) {
	case 1:
		res, err = check[[1]int](l)
	case 2:
		res, err = check[[2]int](l)
	case 3:
		res, err = check[[3]int](l)
	case 4:
		res, err = check[[4]int](l)
	case 5:
		res, err = check[[5]int](l)
	case 6:
		res, err = check[[6]int](l)
	case 7:
		res, err = check[[7]int](l)
	case 8:
		res, err = check[[8]int](l)
	default:
		return Result{}, rankError(len(l.Shape))
	}
	if err != nil {
		return Result{}, fmt.Errorf("layout %q: %w", l.Name, err)
	}
	return res, nil
}

// CheckAll checks every layout of f, logging one line per layout.
// It keeps going after a failure and returns the joined errors.
func CheckAll(f config.File, lggr logging.Logger) ([]Result, error) {
	results := make([]Result, 0, len(f.Layouts))
	var errs []error
	for _, l := range f.Layouts {
		res, err := Check(l)
		if err != nil {
			lggr.Errorw("layout check failed", "name", l.Name, "shape", l.Shape, "err", err)
			errs = append(errs, err)
			continue
		}
		lggr.Infow("layout ok", "name", res.Name, "rank", res.Rank, "size", res.Size, "checked", res.Checked)
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func rankError(n int) error {
	return fmt.Errorf("%w: %d (want 1..%d)", ErrRank, n, ndarray.MaxRank)
}

func toIndex[I ndarray.Index](xs []int) I {
	var idx I
	for d := 0; d < len(idx); d++ {
		idx[d] = xs[d]
	}
	return idx
}

func toSlice[I ndarray.Index](idx I) []int {
	xs := make([]int, len(idx))
	for d := range xs {
		xs[d] = idx[d]
	}
	return xs
}

func describe[I ndarray.Index](shape []int) (Report, error) {
	s := toIndex[I](shape)
	if err := ndarray.ValidateShape(s); err != nil {
		return Report{}, err
	}
	return Report{
		Shape:   toSlice(s),
		Rank:    ndarray.Rank[I](),
		Size:    ndarray.Size(s),
		Strides: toSlice(ndarray.Strides(s)),
	}, nil
}

func walk[I ndarray.Index](shape []int, visit func([]int, int) bool) error {
	a, err := ndarray.New[struct{}](toIndex[I](shape))
	if err != nil {
		return err
	}
	for it := a.NDCBegin(); !it.Done(); it.Next() {
		idx := it.Index()
		if !visit(toSlice(idx), ndarray.Flat(a.Shape(), idx)) {
			return nil
		}
	}
	return nil
}

func check[I ndarray.Index](l config.Layout) (Result, error) {
	shape := toIndex[I](l.Shape)
	res := Result{Name: l.Name, Rank: ndarray.Rank[I]()}

	var (
		a   *ndarray.Array[float64, I]
		err error
	)
	if l.Fill != nil {
		a, err = ndarray.Full(shape, *l.Fill)
	} else {
		a, err = ndarray.New[float64](shape)
	}
	if err != nil {
		return Result{}, err
	}
	res.Size = a.Size()

	for f := 0; f < a.Size(); f++ {
		if got := ndarray.Flat(shape, ndarray.Unflat(shape, f)); got != f {
			return Result{}, fmt.Errorf("%w: flat %d maps back to %d", ErrMismatch, f, got)
		}
		res.Checked++
	}

	if l.Fill != nil {
		for idx, v := range ndarray.EnumerateView(a.View()).All() {
			if v != *l.Fill {
				return Result{}, fmt.Errorf("%w: %v holds %v, want fill %v", ErrMismatch, idx, v, *l.Fill)
			}
		}
	}

	for idx, p := range ndarray.Enumerate(a).All() {
		*p = coordSum(idx)
	}
	for f := 0; f < a.Size(); f++ {
		idx := ndarray.Unflat(shape, f)
		if got, want := a.At(idx), coordSum(idx); got != want {
			return Result{}, fmt.Errorf("%w: %v holds %v, want %v", ErrMismatch, idx, got, want)
		}
		res.Checked++
	}
	return res, nil
}

func coordSum[I ndarray.Index](idx I) float64 {
	sum := 0
	for d := 0; d < len(idx); d++ {
		sum += idx[d]
	}
	return float64(sum)
}
