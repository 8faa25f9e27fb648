package imaging

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrFileNotFound is returned when the source path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnreadableImageMetadata is returned when the dimensions of a file
	// cannot be read.
	ErrUnreadableImageMetadata = errors.New("unreadable image metadata")

	// ErrUnsupportedFormat is returned for images that are not GIF, JPEG,
	// PNG or WEBP.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// ImageInfo contains metadata about an image file, read without decoding the
// pixels.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is detected from the file contents, not its extension.
	Format Format `json:"format"`

	// MimeType is the sniffed content type.
	MimeType string `json:"mime_type"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Probe reads the format and dimensions of the image at path. The
// dimensions come from the file header and ignore EXIF orientation; Load
// reports the size after orientation.
//
// # Errors
//
//   - ErrFileNotFound if nothing exists at path
//   - ErrUnreadableImageMetadata if the dimensions cannot be read
//   - ErrUnsupportedFormat if the file is a readable image of a format other
//     than GIF, JPEG, PNG or WEBP
func Probe(path string) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImageMetadata, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImageMetadata, path, err)
	}

	format, ok := formatFromMIME(mime.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime.String())
	}

	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		MimeType:      mime.String(),
		FileSizeBytes: stat.Size(),
	}, nil
}

// Source is a decoded image together with where it came from.
type Source struct {
	Path   string
	Format Format
	Image  image.Image

	// Info is the probed metadata. Width and Height are those of Image,
	// so a JPEG rotated by its EXIF orientation reports its displayed size.
	Info ImageInfo
}

// Load probes and decodes the image at path.
func Load(path string) (*Source, error) {
	info, err := Probe(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f, info.Format)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	info.Width, info.Height = b.Dx(), b.Dy()
	return &Source{Path: path, Format: info.Format, Image: img, Info: *info}, nil
}

// ImageCache provides thread-safe caching of decoded sources to avoid
// redundant disk reads.
//
// Cached sources are shared: callers must treat Source.Image as read-only.
// Every transform produces a new raster, so this holds as long as nothing
// draws into a cached image directly.
//
// Entries remain in memory until removed via Evict() or Clear().
type ImageCache struct {
	mu      sync.RWMutex
	sources map[string]*Source
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		sources: make(map[string]*Source),
	}
}

// Load retrieves a source from the cache or loads it from disk if not
// cached. The cache key is the exact path string provided.
func (c *ImageCache) Load(path string) (*Source, error) {
	c.mu.RLock()
	if src, ok := c.sources[path]; ok {
		c.mu.RUnlock()
		return src, nil
	}
	c.mu.RUnlock()

	src, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sources[path] = src
	c.mu.Unlock()

	return src, nil
}

// Len returns the number of cached sources.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sources)
}

// Clear removes all sources from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.sources = make(map[string]*Source)
	c.mu.Unlock()
}

// Evict removes a specific source from the cache by its path. After
// eviction, the next Load() call for this path reads from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.sources, path)
	c.mu.Unlock()
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of a cached source.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	src, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := src.Image.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
