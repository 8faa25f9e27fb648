package geometry

// PlanReduce returns the size a srcW x srcH source must be resized to so it
// fits within bounds without changing its aspect ratio. A missing bound is
// derived from the other one. The boolean is false when the source already
// fits, in which case nothing should be done: reduce never enlarges.
//
// Returns ErrEmptySize when bounds has no positive dimension.
func PlanReduce(srcW, srcH int, bounds SizeRequest) (SizeRequest, bool, error) {
	limit, err := Resolve(srcW, srcH, bounds)
	if err != nil {
		return SizeRequest{}, false, err
	}

	maxW, maxH := limit.Width, limit.Height
	if srcW <= maxW && srcH <= maxH {
		return SizeRequest{}, false, nil
	}

	width := scaleCeil(maxH, srcW, srcH)
	height := scaleCeil(maxW, srcH, srcW)
	if width > maxW {
		return SizeRequest{Width: maxW, Height: height}, true, nil
	}
	return SizeRequest{Width: width, Height: maxH}, true, nil
}
