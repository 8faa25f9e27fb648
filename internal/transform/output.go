package transform

import (
	"bufio"
	"io"
	"os"

	"github.com/ironsheep/image-artifex/internal/imaging"
)

// Save writes the image to path in the format it was loaded in. An empty
// path overwrites the source file. Quality applies to JPEG and WEBP.
//
// Save reports failure through its result rather than an error; the reason
// is logged.
func (im *Image) Save(path string, quality int) bool {
	return im.saveAs(path, im.format, quality)
}

// SaveJPEG writes the image as JPEG.
func (im *Image) SaveJPEG(path string, quality int) bool {
	return im.saveAs(path, imaging.FormatJPEG, quality)
}

// SavePNG writes the image as PNG.
func (im *Image) SavePNG(path string) bool {
	return im.saveAs(path, imaging.FormatPNG, imaging.DefaultQuality)
}

// SaveGIF writes the image as GIF.
func (im *Image) SaveGIF(path string) bool {
	return im.saveAs(path, imaging.FormatGIF, imaging.DefaultQuality)
}

// SaveWEBP writes the image as WEBP.
func (im *Image) SaveWEBP(path string, quality int) bool {
	return im.saveAs(path, imaging.FormatWEBP, quality)
}

func (im *Image) saveAs(path string, f imaging.Format, quality int) bool {
	if path == "" {
		path = im.path
	}

	out, err := os.Create(path)
	if err != nil {
		im.logger.Error("save failed", "path", path, "err", err)
		return false
	}

	w := bufio.NewWriter(out)
	if err := im.surface.Encode(w, im.raster, f, quality); err != nil {
		out.Close()
		im.logger.Error("save failed", "path", path, "format", f, "err", err)
		return false
	}
	if err := w.Flush(); err != nil {
		out.Close()
		im.logger.Error("save failed", "path", path, "err", err)
		return false
	}
	if err := out.Close(); err != nil {
		im.logger.Error("save failed", "path", path, "err", err)
		return false
	}

	im.logger.Debug("saved", "path", path, "format", f)
	return true
}

// ContentType returns the MIME type Output writes.
func (im *Image) ContentType() string {
	return im.format.MimeType()
}

// Output encodes the image in its loaded format and writes it to w. Setting
// a Content-Type header from ContentType is up to the caller.
func (im *Image) Output(w io.Writer, quality int) bool {
	if err := im.surface.Encode(w, im.raster, im.format, quality); err != nil {
		im.logger.Error("output failed", "format", im.format, "err", err)
		return false
	}
	return true
}

// SaveOutput saves the image like Save and then writes it to w like Output.
// Both steps run; the result is true only when both succeed.
func (im *Image) SaveOutput(path string, w io.Writer, quality int) bool {
	saved := im.Save(path, quality)
	written := im.Output(w, quality)
	return saved && written
}
