package ndarray

import "errors"

// Construction errors.
var (
	ErrNegativeExtent = errors.New("negative extent")
	ErrSizeOverflow   = errors.New("element count overflows int")
	ErrDataLength     = errors.New("data length does not match shape")
)
