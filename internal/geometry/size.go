package geometry

import (
	"errors"
	"fmt"
)

// ErrEmptySize is returned by every sizing entry point when neither a width
// nor a height was requested.
var ErrEmptySize = errors.New("empty size: width or height must be a positive integer")

// SizeRequest is a caller's desired output size. A dimension that is zero or
// negative is absent.
type SizeRequest struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Empty reports whether neither dimension was supplied.
func (r SizeRequest) Empty() bool {
	return r.Width <= 0 && r.Height <= 0
}

// ResolvedSize is a SizeRequest completed against a source.
//
// Width and Height are the dimensions to render. CalculatedWidth is the width
// that Height implies under the source aspect ratio, CalculatedHeight the
// height that Width implies. Comparing them with Width and Height tells
// whether the requested box is wider or taller than the source's natural fit.
type ResolvedSize struct {
	Width            int `json:"width"`
	Height           int `json:"height"`
	CalculatedWidth  int `json:"calculated_width"`
	CalculatedHeight int `json:"calculated_height"`
}

// Resolve completes req for a source of srcW x srcH pixels.
//
// A missing dimension is derived from the other one with the source aspect
// ratio, rounding up. CalculatedWidth and CalculatedHeight are always filled,
// even when both dimensions were supplied.
//
// Returns ErrEmptySize when req has no positive dimension.
func Resolve(srcW, srcH int, req SizeRequest) (ResolvedSize, error) {
	if req.Empty() {
		return ResolvedSize{}, ErrEmptySize
	}
	if srcW <= 0 || srcH <= 0 {
		return ResolvedSize{}, fmt.Errorf("invalid source size %dx%d", srcW, srcH)
	}

	w, h := req.Width, req.Height
	if w <= 0 {
		w = scaleCeil(h, srcW, srcH)
	}
	if h <= 0 {
		h = scaleCeil(w, srcH, srcW)
	}

	return ResolvedSize{
		Width:            w,
		Height:           h,
		CalculatedWidth:  scaleCeil(h, srcW, srcH),
		CalculatedHeight: scaleCeil(w, srcH, srcW),
	}, nil
}

// scaleCeil returns ceil(v * num / den) for v >= 0 and den > 0.
func scaleCeil(v, num, den int) int {
	return int((int64(v)*int64(num) + int64(den) - 1) / int64(den))
}

// ceilDiv returns ceil(n / d) for d > 0 and any sign of n.
func ceilDiv(n, d int) int {
	if n <= 0 {
		// integer division truncates toward zero, which is the ceiling here
		return n / d
	}
	return (n + d - 1) / d
}

// ceilHalf returns ceil(n / 2).
func ceilHalf(n int) int {
	return ceilDiv(n, 2)
}
