// Package transform is the public face of the geometry core: an Image is
// loaded once, reshaped by any sequence of Resize, Crop, Cut, Thumb, Reduce,
// Rotate, Opacity and Watermark calls, and written out with Save or Output.
//
// Sizing operations take a width and a height where zero or less means
// "derive from the other one"; passing neither returns geometry.ErrEmptySize.
// Structural problems (bad sizes, missing or unsupported files) are errors;
// encoding and writing problems make the save and output methods return
// false.
//
// Canvases created by Resize, Crop, Thumb and Rotate are painted with a
// Background. The automatic background looks at the colours along the
// source's borders: a uniform border is continued into the padding, two
// differing opposite borders split the canvas between them, and a
// translucent border keeps the canvas transparent.
package transform
