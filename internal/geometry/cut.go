package geometry

// AspectClass buckets a rectangle by the relation of its sides.
type AspectClass int

const (
	Square AspectClass = iota
	Landscape
	Portrait
)

func (c AspectClass) String() string {
	switch c {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "square"
	}
}

// ClassifyAspect returns the aspect class of a w x h rectangle.
func ClassifyAspect(w, h int) AspectClass {
	switch {
	case w > h:
		return Landscape
	case w < h:
		return Portrait
	default:
		return Square
	}
}

// CutPolicy tunes PlanCut.
type CutPolicy struct {
	// CenterPortrait centres the vertical crop of portrait sources cut to a
	// square or landscape target. When false the historical offsets are
	// kept: a quarter of the overflow for square targets and a sixth for
	// landscape ones, which keeps more of the upper part of the picture.
	CenterPortrait bool
}

// CutPlan is a fill-exact transform: one aspect-preserving scale step
// followed by one crop step that trims the overflowing axis.
type CutPlan struct {
	// Skip is true when the source already has the requested size.
	Skip bool

	Source AspectClass
	Target AspectClass

	// Size is the resolved request.
	Size ResolvedSize

	// Scale is the request handed to the scale step and Scaled its result.
	Scale  SizeRequest
	Scaled ResolvedSize

	// Crop is the part of the scaled raster that is kept. X and Y are
	// offsets into the scaled raster; Width and Height equal the target.
	Crop Window
}

// PlanCut plans the fill-exact transform of a srcW x srcH source into req.
//
// Source and target are each classified as square, landscape or portrait and
// the nine combinations pick the scale step. Landscape-to-landscape and
// portrait-to-portrait additionally compare the requested size with the
// aspect-preserving size so the source is scaled along the axis that avoids
// upscaling past the box. The crop then trims the overflow symmetrically,
// rounding the leading offset up.
//
// Returns ErrEmptySize when req has no positive dimension.
func PlanCut(srcW, srcH int, req SizeRequest, policy CutPolicy) (CutPlan, error) {
	size, err := Resolve(srcW, srcH, req)
	if err != nil {
		return CutPlan{}, err
	}

	w, h := size.Width, size.Height
	plan := CutPlan{
		Source: ClassifyAspect(srcW, srcH),
		Target: ClassifyAspect(w, h),
		Size:   size,
	}
	if srcW == w && srcH == h {
		plan.Skip = true
		return plan, nil
	}

	// trimX/trimY say which axis the crop trims; divisor applies to the
	// vertical overflow only
	var (
		trimX, trimY bool
		divisor      = 2
	)

	switch plan.Source {
	case Square:
		switch plan.Target {
		case Square:
			plan.Scale = SizeRequest{Width: w, Height: h}
		case Landscape:
			plan.Scale = SizeRequest{Width: w, Height: w}
			trimY = true
		case Portrait:
			plan.Scale = SizeRequest{Width: h, Height: h}
			trimX = true
		}

	case Landscape:
		switch {
		case plan.Target == Landscape && w > size.CalculatedWidth:
			plan.Scale = SizeRequest{Width: w + 1}
			trimY = true
		default:
			plan.Scale = SizeRequest{Height: h}
			trimX = true
		}

	case Portrait:
		switch plan.Target {
		case Square:
			plan.Scale = SizeRequest{Width: w}
			trimY = true
			if !policy.CenterPortrait {
				divisor = 4
			}
		case Landscape:
			plan.Scale = SizeRequest{Width: w}
			trimY = true
			if !policy.CenterPortrait {
				divisor = 6
			}
		case Portrait:
			if size.CalculatedWidth > w {
				plan.Scale = SizeRequest{Height: h}
			} else {
				plan.Scale = SizeRequest{Height: size.CalculatedHeight}
			}
			trimX = true
		}
	}

	// cannot fail: Scale always carries a positive dimension
	plan.Scaled, _ = Resolve(srcW, srcH, plan.Scale)

	plan.Crop = Window{Width: w, Height: h}
	if trimX {
		plan.Crop.X = ceilHalf(plan.Scaled.Width - w)
	}
	if trimY {
		plan.Crop.Y = ceilDiv(plan.Scaled.Height-h, divisor)
	}
	return plan, nil
}
