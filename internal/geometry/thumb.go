package geometry

// ThumbMode is the strategy PlanThumb settles on.
type ThumbMode int

const (
	// ThumbSkip: the source already has the requested size.
	ThumbSkip ThumbMode = iota
	// ThumbAnchored: fit the whole source, pushed toward Anchor.
	ThumbAnchored
	// ThumbFit: fit the whole source, centred.
	ThumbFit
	// ThumbCut: the edges give no usable signal; fill exactly instead.
	ThumbCut
)

var thumbModeNames = [...]string{"skip", "anchored", "fit", "cut"}

func (m ThumbMode) String() string {
	if int(m) < len(thumbModeNames) {
		return thumbModeNames[m]
	}
	return "unknown"
}

// ThumbPlan is the outcome of PlanThumb. Window is meaningful for
// ThumbAnchored and ThumbFit only.
type ThumbPlan struct {
	Mode   ThumbMode
	Anchor Anchor
	Size   ResolvedSize
	Window Window
}

// anchorRule matches one defined-flag pattern (top, right, bottom, left).
type anchorRule struct {
	pattern [4]bool
	anchor  Anchor
	// sameColor additionally requires top, bottom and left to share a
	// dominant colour.
	sameColor bool
}

// anchorRules is evaluated in order; content is pushed toward the borders
// that are not defined so defined borders appear to continue into the
// padding.
var anchorRules = []anchorRule{
	{pattern: [4]bool{false, true, true, true}, anchor: AnchorTop},
	{pattern: [4]bool{false, true, true, false}, anchor: AnchorTopLeft},
	{pattern: [4]bool{false, false, true, true}, anchor: AnchorTopRight},
	{pattern: [4]bool{true, true, false, false}, anchor: AnchorBottomLeft},
	{pattern: [4]bool{true, false, false, true}, anchor: AnchorBottomRight},
	{pattern: [4]bool{true, false, true, true}, anchor: AnchorRight, sameColor: true},
	{pattern: [4]bool{true, true, false, true}, anchor: AnchorBottom},
	{pattern: [4]bool{true, true, true, false}, anchor: AnchorLeft},
}

// ChooseThumbMode applies the edge decision table to a profile. The returned
// anchor is only meaningful for ThumbAnchored.
func ChooseThumbMode(p BackgroundProfile) (ThumbMode, Anchor) {
	pattern := p.pattern()
	for _, rule := range anchorRules {
		if rule.pattern != pattern {
			continue
		}
		if rule.sameColor && !(p.Top.Color == p.Bottom.Color && p.Bottom.Color == p.Left.Color) {
			continue
		}
		return ThumbAnchored, rule.anchor
	}

	if (p.Top.Defined && p.Bottom.Defined) || (p.Right.Defined && p.Left.Defined) {
		return ThumbFit, AnchorCenter
	}
	return ThumbCut, AnchorCenter
}

// PlanThumb plans a thumbnail of exactly the requested size holding the
// entire srcW x srcH source.
//
// Returns ErrEmptySize when req has no positive dimension.
func PlanThumb(srcW, srcH int, req SizeRequest, profile BackgroundProfile) (ThumbPlan, error) {
	size, err := Resolve(srcW, srcH, req)
	if err != nil {
		return ThumbPlan{}, err
	}

	plan := ThumbPlan{Size: size}
	if srcW == size.Width && srcH == size.Height {
		plan.Mode = ThumbSkip
		return plan, nil
	}

	plan.Mode, plan.Anchor = ChooseThumbMode(profile)
	switch plan.Mode {
	case ThumbAnchored:
		plan.Window = AnchoredWindow(srcW, srcH, size, plan.Anchor)
	case ThumbFit:
		plan.Window = FitWindow(srcW, srcH, size)
	}
	return plan, nil
}
