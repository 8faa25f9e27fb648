// Package imaging is the raster side of the transforms: decoding and
// encoding the four supported formats, probing files, caching decoded
// sources, classifying the colours along an image's borders, and the Surface
// that every transform draws with.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner, X increasing rightward and Y increasing downward.
// Rectangles follow image.Rectangle: Min is inclusive, Max exclusive.
//
// # Formats
//
// GIF, JPEG, PNG and WEBP are read and written. The format of a file is
// sniffed from its contents, never taken from its extension. BMP and TIFF
// decoders are registered only so that such files are reported as
// ErrUnsupportedFormat instead of ErrUnreadableImageMetadata.
//
// # Colours
//
// Colours cross package boundaries as geometry.ColorID, packed
// non-premultiplied RGBA. ParseColor and DescribeColor convert to and from
// the textual forms used in configuration and reports.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Raster methods never
// modify their inputs, so a cached source can be read by several transforms
// at once.
package imaging
