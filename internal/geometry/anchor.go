package geometry

import "image"

// Align positions content along one axis of a canvas that has slack on it.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// offset returns where content starts when slack pixels are left over.
func (a Align) offset(slack int) int {
	switch a {
	case AlignStart:
		return 0
	case AlignEnd:
		return slack
	default:
		return ceilHalf(slack)
	}
}

// Anchor is a named side or corner toward which content is pushed when a
// canvas is larger than what is drawn on it.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorTopLeft
	AnchorTopRight
	AnchorRight
	AnchorBottom
	AnchorBottomLeft
	AnchorBottomRight
	AnchorLeft
)

var anchorNames = map[Anchor]string{
	AnchorCenter:      "center",
	AnchorTop:         "top",
	AnchorTopLeft:     "top-left",
	AnchorTopRight:    "top-right",
	AnchorRight:       "right",
	AnchorBottom:      "bottom",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottomRight: "bottom-right",
	AnchorLeft:        "left",
}

// String returns the hyphenated position name, e.g. "bottom-right".
func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return "center"
}

// ParseAnchor maps a position name to an Anchor. Unknown names fall back to
// AnchorCenter.
func ParseAnchor(name string) Anchor {
	for a, n := range anchorNames {
		if n == name {
			return a
		}
	}
	return AnchorCenter
}

// Align splits the anchor into its horizontal and vertical alignment.
func (a Anchor) Align() (horizontal, vertical Align) {
	switch a {
	case AnchorTop:
		return AlignCenter, AlignStart
	case AnchorTopLeft:
		return AlignStart, AlignStart
	case AnchorTopRight:
		return AlignEnd, AlignStart
	case AnchorRight:
		return AlignEnd, AlignCenter
	case AnchorBottom:
		return AlignCenter, AlignEnd
	case AnchorBottomLeft:
		return AlignStart, AlignEnd
	case AnchorBottomRight:
		return AlignEnd, AlignEnd
	case AnchorLeft:
		return AlignStart, AlignCenter
	default:
		return AlignCenter, AlignCenter
	}
}

// Place returns the top-left point at which a w x h overlay sits on a
// canvasW x canvasH canvas when pushed toward a. The point may be negative
// when the overlay is larger than the canvas.
func Place(a Anchor, canvasW, canvasH, w, h int) image.Point {
	ha, va := a.Align()
	return image.Pt(ha.offset(canvasW-w), va.offset(canvasH-h))
}
