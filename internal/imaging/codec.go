package imaging

import (
	"fmt"
	"image"
	"io"
	"strings"

	webpenc "github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP so it probes as unsupported rather than unreadable
	_ "golang.org/x/image/tiff" // Register TIFF for the same reason
	_ "golang.org/x/image/webp" // Register WEBP decoder
)

// Format is one of the four raster formats the transforms read and write.
type Format string

const (
	FormatGIF  Format = "gif"
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWEBP Format = "webp"
)

// DefaultQuality is used when a caller passes a quality outside 1..100.
const DefaultQuality = 100

// ParseFormat maps a format name or file extension (with or without the
// leading dot) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "gif":
		return FormatGIF, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWEBP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// formatFromMIME maps a sniffed MIME type to a Format.
func formatFromMIME(mime string) (Format, bool) {
	switch mime {
	case "image/gif":
		return FormatGIF, true
	case "image/jpeg":
		return FormatJPEG, true
	case "image/png":
		return FormatPNG, true
	case "image/webp":
		return FormatWEBP, true
	}
	return "", false
}

// MimeType returns the Content-Type header value for the format.
func (f Format) MimeType() string {
	return "image/" + string(f)
}

// Decode reads a raster of format f from r.
func Decode(r io.Reader, f Format) (image.Image, error) {
	switch f {
	case FormatGIF, FormatJPEG, FormatPNG, FormatWEBP:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(f == FormatJPEG))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", f, err)
	}
	return img, nil
}

// Encode writes img to w in format f. Quality applies to JPEG and WEBP only
// and falls back to DefaultQuality when outside 1..100.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	var err error
	switch f {
	case FormatJPEG:
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case FormatPNG:
		err = imaging.Encode(w, img, imaging.PNG)
	case FormatGIF:
		err = imaging.Encode(w, img, imaging.GIF)
	case FormatWEBP:
		err = webpenc.Encode(w, img, &webpenc.Options{Quality: float32(quality)})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s image: %w", f, err)
	}
	return nil
}
