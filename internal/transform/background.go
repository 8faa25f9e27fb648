package transform

import (
	"image"

	"github.com/ironsheep/image-artifex/internal/geometry"
	"github.com/ironsheep/image-artifex/internal/imaging"
)

// Background is the fill for a transform's new canvas. The zero value means
// automatic: the colour is chosen from the image's background profile.
type Background struct {
	color geometry.ColorID
	solid bool
}

// Auto returns the automatic background.
func Auto() Background { return Background{} }

// Solid returns a background painted with c.
func Solid(c geometry.ColorID) Background {
	return Background{color: c, solid: true}
}

// ParseBackground parses a colour as accepted by imaging.ParseColor. An
// empty string or "auto" yields Auto().
func ParseBackground(s string) (Background, error) {
	if s == "" || s == "auto" {
		return Auto(), nil
	}
	c, err := imaging.ParseColor(s)
	if err != nil {
		return Background{}, err
	}
	return Solid(c), nil
}

// IsAuto reports whether the background is chosen automatically.
func (b Background) IsAuto() bool { return !b.solid }

// Color returns the solid colour; it is meaningless for Auto().
func (b Background) Color() geometry.ColorID { return b.color }

func (b Background) String() string {
	if b.IsAuto() {
		return "auto"
	}
	return b.color.String()
}

// blank builds the canvas a transform draws on.
//
// A solid background is painted as is. An automatic one follows the padding
// plan of the image's profile; when the plan says padding would show a seam
// and delegate is true, blank returns nil and the caller must cut instead.
// Callers that cannot delegate get a transparent canvas in that case.
func (im *Image) blank(size geometry.ResolvedSize, bg Background, delegate bool) *image.NRGBA {
	w, h := size.Width, size.Height
	canvas := im.surface.Canvas(w, h)
	if !bg.IsAuto() {
		return im.surface.Fill(canvas, canvas.Bounds(), bg.Color())
	}

	plan := geometry.PlanPadding(im.profile, size)
	im.profile = plan.Profile
	im.logger.Debug("padding planned", "kind", plan.Kind, "primary", plan.Primary, "secondary", plan.Secondary)

	switch plan.Kind {
	case geometry.PaddingSolid:
		return im.surface.Fill(canvas, canvas.Bounds(), plan.Primary)
	case geometry.PaddingSplitHorizontal:
		canvas = im.surface.Fill(canvas, image.Rect(0, 0, w, h/2), plan.Primary)
		return im.surface.Fill(canvas, image.Rect(0, h/2, w, h), plan.Secondary)
	case geometry.PaddingSplitVertical:
		canvas = im.surface.Fill(canvas, image.Rect(0, 0, w/2, h), plan.Primary)
		return im.surface.Fill(canvas, image.Rect(w/2, 0, w, h), plan.Secondary)
	case geometry.PaddingDelegateCut:
		if delegate {
			return nil
		}
	}
	return canvas
}
