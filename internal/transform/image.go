package transform

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-artifex/internal/geometry"
	"github.com/ironsheep/image-artifex/internal/imaging"
)

// ErrNativeLibraryUnavailable is returned when an Image is created without a
// raster surface to draw with.
var ErrNativeLibraryUnavailable = errors.New("raster surface unavailable")

// Image is a loaded raster plus everything the transforms need to know about
// it: where it came from, its format, and the background profile of its
// borders.
//
// An Image is not safe for concurrent use. Each transform replaces the
// held raster with a new one; the previous raster is never modified, so
// sources shared through an imaging.ImageCache stay intact.
type Image struct {
	path    string
	format  imaging.Format
	raster  image.Image
	profile geometry.BackgroundProfile

	surface imaging.Surface
	policy  geometry.CutPolicy
	logger  *log.Logger
}

// Option configures an Image.
type Option func(*Image)

// WithSurface sets the raster surface. The default is an imaging.Raster with
// the lanczos filter.
func WithSurface(s imaging.Surface) Option {
	return func(im *Image) { im.surface = s }
}

// WithCutPolicy sets the policy used by Cut and by every transform that
// falls back to it.
func WithCutPolicy(p geometry.CutPolicy) Option {
	return func(im *Image) { im.policy = p }
}

// WithLogger sets the logger that transform decisions are reported to at
// debug level.
func WithLogger(l *log.Logger) Option {
	return func(im *Image) {
		if l != nil {
			im.logger = l
		}
	}
}

// Load reads the image at path.
//
// # Errors
//
//   - imaging.ErrFileNotFound, imaging.ErrUnreadableImageMetadata or
//     imaging.ErrUnsupportedFormat from probing the file
//   - ErrNativeLibraryUnavailable when the surface option is nil
func Load(path string, opts ...Option) (*Image, error) {
	im, err := newImage(opts)
	if err != nil {
		return nil, err
	}

	src, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}
	im.adopt(src)
	return im, nil
}

// FromSource wraps an already decoded source, typically one held in an
// imaging.ImageCache.
func FromSource(src *imaging.Source, opts ...Option) (*Image, error) {
	if src == nil || src.Image == nil {
		return nil, errors.New("nil source")
	}
	im, err := newImage(opts)
	if err != nil {
		return nil, err
	}
	im.adopt(src)
	return im, nil
}

func newImage(opts []Option) (*Image, error) {
	im := &Image{
		surface: defaultSurface,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(im)
	}
	if im.surface == nil {
		return nil, ErrNativeLibraryUnavailable
	}
	return im, nil
}

func (im *Image) adopt(src *imaging.Source) {
	im.path = src.Path
	im.format = src.Format
	im.raster = src.Image
	im.profile = imaging.ClassifyEdges(src.Image)

	im.logger.Debug("image loaded", "path", src.Path, "format", src.Format,
		"width", im.Width(), "height", im.Height())
}

var defaultSurface = mustRaster("lanczos")

func mustRaster(filter string) imaging.Surface {
	r, err := imaging.NewRaster(filter)
	if err != nil {
		panic(fmt.Sprintf("transform: %v", err))
	}
	return r
}

// Path returns the file the image was loaded from.
func (im *Image) Path() string { return im.path }

// Format returns the format the image was loaded in. Save uses it.
func (im *Image) Format() imaging.Format { return im.format }

// Width returns the current width in pixels.
func (im *Image) Width() int { return im.raster.Bounds().Dx() }

// Height returns the current height in pixels.
func (im *Image) Height() int { return im.raster.Bounds().Dy() }

// Raster returns the current raster. It must not be modified.
func (im *Image) Raster() image.Image { return im.raster }

// Background returns the background profile classified when the image was
// loaded, as updated by any transparent re-classification since.
func (im *Image) Background() geometry.BackgroundProfile { return im.profile }

// replace swaps in the result of a transform.
func (im *Image) replace(raster *image.NRGBA) {
	im.raster = raster
}
