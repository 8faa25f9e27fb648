package geometry

// PaddingKind says how the area of a new canvas is painted before content is
// drawn on it.
type PaddingKind int

const (
	// PaddingTransparent leaves the canvas fully transparent.
	PaddingTransparent PaddingKind = iota
	// PaddingSolid paints the whole canvas with Primary.
	PaddingSolid
	// PaddingSplitHorizontal paints the upper half with Primary and the
	// lower half with Secondary.
	PaddingSplitHorizontal
	// PaddingSplitVertical paints the left half with Primary and the right
	// half with Secondary.
	PaddingSplitVertical
	// PaddingDelegateCut means padding would show a seam; the caller should
	// fill the canvas exactly with a cut instead.
	PaddingDelegateCut
)

var paddingNames = [...]string{"transparent", "solid", "split-horizontal", "split-vertical", "delegate-cut"}

func (k PaddingKind) String() string {
	if int(k) < len(paddingNames) {
		return paddingNames[k]
	}
	return "unknown"
}

// PaddingPlan is the outcome of PlanPadding.
type PaddingPlan struct {
	Kind      PaddingKind
	Primary   ColorID
	Secondary ColorID

	// Profile is the profile to use from here on. It differs from the input
	// only when every border is translucent, in which case all borders are
	// re-classified as defined.
	Profile BackgroundProfile
}

// PlanPadding chooses how to paint a canvas of the given size from the
// colours found along the source's borders.
//
//   - every border translucent: stay transparent, and treat every border as
//     defined from now on
//   - only top and bottom defined: split the canvas horizontally between the
//     two colours when the fitted content is shorter than the canvas,
//     otherwise delegate to a cut
//   - only left and right defined: the same, split vertically
//   - anything else: a solid fill with the first defined colour of top,
//     right, bottom, falling back to the left colour
func PlanPadding(profile BackgroundProfile, size ResolvedSize) PaddingPlan {
	if profile.Translucent() {
		return PaddingPlan{Kind: PaddingTransparent, Profile: profile.Reclassify()}
	}

	plan := PaddingPlan{Profile: profile}
	switch profile.pattern() {
	case [4]bool{true, false, true, false}:
		if size.CalculatedHeight < size.Height {
			plan.Kind = PaddingSplitHorizontal
			plan.Primary, plan.Secondary = profile.Top.Color, profile.Bottom.Color
		} else {
			plan.Kind = PaddingDelegateCut
		}
	case [4]bool{false, true, false, true}:
		if size.CalculatedWidth < size.Width {
			plan.Kind = PaddingSplitVertical
			plan.Primary, plan.Secondary = profile.Left.Color, profile.Right.Color
		} else {
			plan.Kind = PaddingDelegateCut
		}
	default:
		plan.Kind = PaddingSolid
		switch {
		case profile.Top.Defined:
			plan.Primary = profile.Top.Color
		case profile.Right.Defined:
			plan.Primary = profile.Right.Color
		case profile.Bottom.Defined:
			plan.Primary = profile.Bottom.Color
		default:
			plan.Primary = profile.Left.Color
		}
	}
	return plan
}
