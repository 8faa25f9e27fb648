package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-artifex/internal/geometry"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// DescribeColor expands a ColorID into its reporting forms.
func DescribeColor(id geometry.ColorID) ColorResult {
	r, g, b, a := id.RGBA()
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()

	return ColorResult{
		Hex:  strings.ToUpper(c.Hex()),
		RGBA: RGBAColor{R: r, G: g, B: b, A: a},
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// ColorIDOf converts any color to its non-premultiplied 8-bit ColorID.
func ColorIDOf(c color.Color) geometry.ColorID {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return geometry.NewColorID(n.R, n.G, n.B, n.A)
}

// NRGBA converts a ColorID to a color usable with the image packages.
func NRGBA(id geometry.ColorID) color.NRGBA {
	r, g, b, a := id.RGBA()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ParseColor parses a background colour.
//
// Accepted forms are "#RGB", "#RRGGBB" and "#RRGGBBAA" (the leading '#' is
// optional) and "r,g,b" with decimal components. Colours without an alpha
// component are opaque.
func ParseColor(s string) (geometry.ColorID, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return parseRGBList(s)
	}

	hex := strings.TrimPrefix(s, "#")
	alpha := uint8(0xff)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha in colour %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return geometry.NewColorID(r, g, b, alpha), nil
}

func parseRGBList(s string) (geometry.ColorID, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid colour %q: want r,g,b", s)
	}

	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return geometry.NewColorID(rgb[0], rgb[1], rgb[2], 0xff), nil
}
