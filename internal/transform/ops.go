package transform

import (
	"image"

	"github.com/ironsheep/image-artifex/internal/geometry"
)

// Resize scales the image to fit inside w x h without cropping, padding the
// rest of the canvas. A dimension of zero or less is derived from the other
// one. With an automatic background, a padding that would show a seam turns
// the resize into a Cut.
//
// Returns geometry.ErrEmptySize when neither dimension is positive.
func (im *Image) Resize(w, h int, bg Background) error {
	size, err := geometry.Resolve(im.Width(), im.Height(), geometry.SizeRequest{Width: w, Height: h})
	if err != nil {
		return err
	}

	canvas := im.blank(size, bg, true)
	if canvas == nil {
		im.logger.Debug("resize delegated to cut", "width", size.Width, "height", size.Height)
		return im.Cut(size.Width, size.Height, bg)
	}

	win := geometry.FitWindow(im.Width(), im.Height(), size)
	im.logger.Debug("resize", "size", size, "window", win)

	im.replace(im.surface.SampleCopy(canvas, im.raster, win.Rect(), im.raster.Bounds()))
	return nil
}

// Crop cuts the w x h region whose top-left corner is (x, y) out of the
// image, unscaled. When only one of w and h is positive the region is
// square. Parts of the region outside the image show the background.
//
// Returns geometry.ErrEmptySize when neither dimension is positive.
func (im *Image) Crop(x, y, w, h int, bg Background) error {
	req := geometry.SizeRequest{Width: w, Height: h}
	if req.Empty() {
		return geometry.ErrEmptySize
	}
	if w <= 0 {
		w = h
	}
	if h <= 0 {
		h = w
	}

	size, err := geometry.Resolve(im.Width(), im.Height(), geometry.SizeRequest{Width: w, Height: h})
	if err != nil {
		return err
	}
	canvas := im.blank(size, bg, false)

	region := image.Rect(x, y, x+w, y+h)
	src := region.Intersect(im.raster.Bounds())
	dst := src.Sub(region.Min)
	im.logger.Debug("crop", "region", region, "covered", src)

	im.replace(im.surface.SampleCopy(canvas, im.raster, dst, src))
	return nil
}

// Cut fills a w x h canvas exactly: the image is scaled to cover the canvas
// and the overflowing axis is trimmed. Nothing is padded and content outside
// the target aspect ratio is discarded.
//
// Returns geometry.ErrEmptySize when neither dimension is positive.
func (im *Image) Cut(w, h int, bg Background) error {
	plan, err := geometry.PlanCut(im.Width(), im.Height(), geometry.SizeRequest{Width: w, Height: h}, im.policy)
	if err != nil {
		return err
	}
	if plan.Skip {
		im.logger.Debug("cut skipped, image already has the requested size")
		return nil
	}

	im.logger.Debug("cut",
		"source", plan.Source, "target", plan.Target,
		"scale", plan.Scale, "scaled", plan.Scaled, "crop", plan.Crop)

	scaledW, scaledH := plan.Scaled.Width, plan.Scaled.Height
	scaled := im.surface.SampleCopy(im.surface.Canvas(scaledW, scaledH), im.raster,
		image.Rect(0, 0, scaledW, scaledH), im.raster.Bounds())

	canvas := im.surface.Canvas(plan.Size.Width, plan.Size.Height)
	if !bg.IsAuto() {
		canvas = im.surface.Fill(canvas, canvas.Bounds(), bg.Color())
	}
	im.replace(im.surface.SampleCopy(canvas, scaled, canvas.Bounds(), plan.Crop.Rect()))
	return nil
}

// Thumb produces a w x h canvas holding the whole, uncropped image. The
// padding goes where the image's own borders have a defined colour, so the
// border appears to continue into it. When the borders give no usable
// signal the thumbnail is a Cut instead. Under an automatic background,
// borders that are all translucent count as defined.
//
// Returns geometry.ErrEmptySize when neither dimension is positive.
func (im *Image) Thumb(w, h int, bg Background) error {
	if bg.IsAuto() {
		im.profile = im.profile.Reclassify()
	}
	plan, err := geometry.PlanThumb(im.Width(), im.Height(), geometry.SizeRequest{Width: w, Height: h}, im.profile)
	if err != nil {
		return err
	}
	im.logger.Debug("thumb", "mode", plan.Mode, "anchor", plan.Anchor, "window", plan.Window)

	switch plan.Mode {
	case geometry.ThumbSkip:
		return nil
	case geometry.ThumbCut:
		return im.Cut(plan.Size.Width, plan.Size.Height, bg)
	}

	canvas := im.blank(plan.Size, bg, true)
	if canvas == nil {
		im.logger.Debug("thumb delegated to cut")
		return im.Cut(plan.Size.Width, plan.Size.Height, bg)
	}
	im.replace(im.surface.SampleCopy(canvas, im.raster, plan.Window.Rect(), im.raster.Bounds()))
	return nil
}

// Reduce shrinks the image to fit inside maxW x maxH, keeping its aspect
// ratio. It never enlarges: an image already within the bounds is left
// untouched. A bound of zero or less is derived from the other one.
//
// Returns geometry.ErrEmptySize when neither bound is positive.
func (im *Image) Reduce(maxW, maxH int) error {
	target, ok, err := geometry.PlanReduce(im.Width(), im.Height(), geometry.SizeRequest{Width: maxW, Height: maxH})
	if err != nil {
		return err
	}
	if !ok {
		im.logger.Debug("reduce skipped, image within bounds")
		return nil
	}
	return im.Resize(target.Width, target.Height, Auto())
}

// Rotate turns the image counter-clockwise by deg degrees. The canvas grows
// to the rotated bounding box and the uncovered corners show the background.
func (im *Image) Rotate(deg float64, bg Background) error {
	rotated := im.surface.Rotate(im.raster, deg)
	b := rotated.Bounds()

	size, err := geometry.Resolve(im.Width(), im.Height(), geometry.SizeRequest{Width: b.Dx(), Height: b.Dy()})
	if err != nil {
		return err
	}
	canvas := im.blank(size, bg, false)
	im.logger.Debug("rotate", "degrees", deg, "width", b.Dx(), "height", b.Dy())

	im.replace(im.surface.Composite(canvas, rotated, image.Point{}))
	return nil
}

// Opacity scales the alpha of every pixel to percent of its value. Values
// are clamped to 0..100.
func (im *Image) Opacity(percent int) {
	im.replace(im.surface.Opacity(im.raster, percent))
}

// DefaultWatermarkOpacity is the opacity, in percent, watermarks are drawn
// with unless told otherwise.
const DefaultWatermarkOpacity = 70

// Watermark loads the image at path and draws it over this one at the named
// position (one of the anchor names, unknown names centre it) with the given
// opacity in percent. The watermark keeps its own size.
func (im *Image) Watermark(path, position string, opacity int) error {
	mark, err := Load(path, WithSurface(im.surface), WithLogger(im.logger))
	if err != nil {
		return err
	}
	im.watermark(mark, geometry.ParseAnchor(position), opacity)
	return nil
}

func (im *Image) watermark(mark *Image, at geometry.Anchor, opacity int) {
	mark.Opacity(opacity)

	p := geometry.Place(at, im.Width(), im.Height(), mark.Width(), mark.Height())
	im.logger.Debug("watermark", "position", at, "x", p.X, "y", p.Y, "opacity", opacity)

	base := im.surface.Canvas(im.Width(), im.Height())
	base = im.surface.Composite(base, im.raster, image.Point{})
	im.replace(im.surface.Composite(base, mark.raster, p))
}
