package plan

import (
	"errors"
	"fmt"
)

// ErrInvalidParam marks parameter values outside their valid range.
var ErrInvalidParam = errors.New("invalid parameter")

// ComputeGeometry shrinks a source resolution by reducePercent while
// preserving aspect ratio. Each scaled dimension is floored, then rounded
// down to the nearest even number.
func ComputeGeometry(srcWidth, srcHeight, reducePercent int) (Geometry, error) {
	if reducePercent < 1 || reducePercent > 99 {
		return Geometry{}, fmt.Errorf("%w: reduction percent %d not in [1,99]", ErrInvalidParam, reducePercent)
	}
	if srcWidth < 1 || srcHeight < 1 {
		return Geometry{}, fmt.Errorf("%w: source resolution %dx%d", ErrInvalidParam, srcWidth, srcHeight)
	}

	scale := float64(100-reducePercent) / 100.0
	w := evenFloor(int(float64(srcWidth) * scale))
	h := evenFloor(int(float64(srcHeight) * scale))

	if w < 2 || h < 2 {
		return Geometry{}, fmt.Errorf("%w: %dx%d reduced by %d%% leaves nothing to encode", ErrInvalidParam, srcWidth, srcHeight, reducePercent)
	}
	return Geometry{Width: w, Height: h}, nil
}

func evenFloor(v int) int {
	if v%2 != 0 {
		return v - 1
	}
	return v
}
