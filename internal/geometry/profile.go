package geometry

import "fmt"

// DefinedThreshold is the share of an edge, in percent, that its dominant
// colour must exceed for the edge to count as defined.
const DefinedThreshold = 45

// ColorID identifies a colour as packed non-premultiplied 8-bit RGBA,
// 0xRRGGBBAA.
type ColorID uint32

// NewColorID packs the four components into a ColorID.
func NewColorID(r, g, b, a uint8) ColorID {
	return ColorID(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGBA unpacks the colour.
func (c ColorID) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Opaque reports whether the colour carries no transparency.
func (c ColorID) Opaque() bool {
	return uint8(c) == 0xff
}

func (c ColorID) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// EdgeClassification is the verdict for one border of an image.
type EdgeClassification struct {
	// Color is the most frequent colour along the border.
	Color ColorID `json:"color"`

	// Count is how many border pixels carry Color.
	Count int `json:"count"`

	// Length is the number of pixels along the border.
	Length int `json:"length"`

	// Defined is true when Color covers more than DefinedThreshold percent
	// of the border.
	Defined bool `json:"defined"`
}

// ClassifyEdge builds the classification of a border of length pixels whose
// dominant colour occurs count times.
func ClassifyEdge(color ColorID, count, length int) EdgeClassification {
	return EdgeClassification{
		Color:   color,
		Count:   count,
		Length:  length,
		Defined: length > 0 && 100*count > DefinedThreshold*length,
	}
}

// Share returns the percentage of the border covered by the dominant colour.
func (e EdgeClassification) Share() float64 {
	if e.Length == 0 {
		return 0
	}
	return 100 * float64(e.Count) / float64(e.Length)
}

// BackgroundProfile classifies the four borders of an image. It is computed
// once from the pixels of the loaded image and never edited in place;
// re-classification produces a new profile.
type BackgroundProfile struct {
	Top    EdgeClassification `json:"top"`
	Right  EdgeClassification `json:"right"`
	Bottom EdgeClassification `json:"bottom"`
	Left   EdgeClassification `json:"left"`
}

// AnyDefined reports whether at least one border is defined.
func (p BackgroundProfile) AnyDefined() bool {
	return p.Top.Defined || p.Right.Defined || p.Bottom.Defined || p.Left.Defined
}

// Translucent reports whether the dominant colour of every border carries
// transparency.
func (p BackgroundProfile) Translucent() bool {
	return !p.Top.Color.Opaque() && !p.Right.Color.Opaque() &&
		!p.Bottom.Color.Opaque() && !p.Left.Color.Opaque()
}

// DefineAll returns a copy of p with every border's Defined flag set to
// defined.
func (p BackgroundProfile) DefineAll(defined bool) BackgroundProfile {
	p.Top.Defined = defined
	p.Right.Defined = defined
	p.Bottom.Defined = defined
	p.Left.Defined = defined
	return p
}

// Reclassify returns the profile transforms work with under an automatic
// background: when every border is translucent all borders count as
// defined, otherwise p is returned unchanged.
func (p BackgroundProfile) Reclassify() BackgroundProfile {
	if p.Translucent() {
		return p.DefineAll(true)
	}
	return p
}

// pattern returns the defined flags in top, right, bottom, left order.
func (p BackgroundProfile) pattern() [4]bool {
	return [4]bool{p.Top.Defined, p.Right.Defined, p.Bottom.Defined, p.Left.Defined}
}
