package imaging

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-artifex/internal/geometry"
)

// Surface is the raster capability the transforms draw with. Every method
// that produces pixels returns a new raster and leaves its inputs untouched.
type Surface interface {
	// Canvas returns a fully transparent w x h raster.
	Canvas(w, h int) *image.NRGBA

	// Fill paints r with c, replacing whatever was there.
	Fill(dst *image.NRGBA, r image.Rectangle, c geometry.ColorID) *image.NRGBA

	// ColorAt returns the colour of one pixel.
	ColorAt(img image.Image, x, y int) geometry.ColorID

	// SampleCopy resamples the srcRect part of src into dstRect of dst,
	// blending over what is already there.
	SampleCopy(dst *image.NRGBA, src image.Image, dstRect, srcRect image.Rectangle) *image.NRGBA

	// Composite draws src over dst with its top-left corner at p.
	Composite(dst *image.NRGBA, src image.Image, p image.Point) *image.NRGBA

	// Rotate turns img counter-clockwise by deg degrees, growing the raster
	// to the rotated bounding box. Uncovered corners are transparent.
	Rotate(img image.Image, deg float64) *image.NRGBA

	// Opacity scales the alpha of every pixel to percent of its value.
	Opacity(img image.Image, percent int) *image.NRGBA

	Decode(r io.Reader, f Format) (image.Image, error)
	Encode(w io.Writer, img image.Image, f Format, quality int) error
}

// Raster implements Surface on top of the imaging and bild libraries.
type Raster struct {
	filter imaging.ResampleFilter
}

// filters are the resampling filters selectable by name.
var filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// NewRaster returns a Raster resampling with the named filter. An empty name
// selects lanczos.
func NewRaster(filter string) (*Raster, error) {
	if filter == "" {
		filter = "lanczos"
	}
	f, ok := filters[strings.ToLower(filter)]
	if !ok {
		return nil, fmt.Errorf("unknown resample filter %q", filter)
	}
	return &Raster{filter: f}, nil
}

// FilterNames lists the accepted filter names.
func FilterNames() []string {
	return []string{"lanczos", "catmullrom", "linear", "box", "nearest"}
}

func (s *Raster) Canvas(w, h int) *image.NRGBA {
	return imaging.New(w, h, color.NRGBA{})
}

func (s *Raster) Fill(dst *image.NRGBA, r image.Rectangle, c geometry.ColorID) *image.NRGBA {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return imaging.Clone(dst)
	}
	return imaging.Paste(dst, imaging.New(r.Dx(), r.Dy(), NRGBA(c)), r.Min)
}

func (s *Raster) ColorAt(img image.Image, x, y int) geometry.ColorID {
	return ColorIDOf(img.At(x, y))
}

func (s *Raster) SampleCopy(dst *image.NRGBA, src image.Image, dstRect, srcRect image.Rectangle) *image.NRGBA {
	if dstRect.Empty() || srcRect.Empty() {
		return imaging.Clone(dst)
	}

	part := imaging.Crop(src, srcRect)
	if part.Bounds().Dx() != dstRect.Dx() || part.Bounds().Dy() != dstRect.Dy() {
		part = imaging.Resize(part, dstRect.Dx(), dstRect.Dy(), s.filter)
	}
	return imaging.Overlay(dst, part, dstRect.Min, 1.0)
}

func (s *Raster) Composite(dst *image.NRGBA, src image.Image, p image.Point) *image.NRGBA {
	return imaging.Overlay(dst, src, p, 1.0)
}

func (s *Raster) Rotate(img image.Image, deg float64) *image.NRGBA {
	switch turn := math.Mod(deg, 360); {
	case turn < 0:
		return s.Rotate(img, turn+360)
	case turn == 0:
		return imaging.Clone(img)
	case turn == 90:
		return imaging.Rotate90(img)
	case turn == 180:
		return imaging.Rotate180(img)
	case turn == 270:
		return imaging.Rotate270(img)
	}

	// bild turns clockwise
	rotated := transform.Rotate(img, -deg, &transform.RotationOptions{ResizeBounds: true})
	return imaging.Clone(rotated)
}

func (s *Raster) Opacity(img image.Image, percent int) *image.NRGBA {
	percent = max(0, min(percent, 100))
	scale := float64(percent) / 100

	// bild works on premultiplied colour, so scaling all four channels
	// scales alpha while keeping the hue
	faded := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		return color.RGBA{
			R: uint8(math.Round(float64(c.R) * scale)),
			G: uint8(math.Round(float64(c.G) * scale)),
			B: uint8(math.Round(float64(c.B) * scale)),
			A: uint8(math.Round(float64(c.A) * scale)),
		}
	})
	return imaging.Clone(faded)
}

func (s *Raster) Decode(r io.Reader, f Format) (image.Image, error) {
	return Decode(r, f)
}

func (s *Raster) Encode(w io.Writer, img image.Image, f Format, quality int) error {
	return Encode(w, img, f, quality)
}
