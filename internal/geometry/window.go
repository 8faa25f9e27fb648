package geometry

import "image"

// Window is the region of a destination canvas that sampled content occupies.
type Window struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the window as an image.Rectangle.
func (w Window) Rect() image.Rectangle {
	return image.Rect(w.X, w.Y, w.X+w.Width, w.Y+w.Height)
}

// clamp pulls the window inside a canvasW x canvasH canvas.
func (w Window) clamp(canvasW, canvasH int) Window {
	w.X, w.Width = clampSpan(w.X, w.Width, canvasW)
	w.Y, w.Height = clampSpan(w.Y, w.Height, canvasH)
	return w
}

func clampSpan(offset, size, limit int) (int, int) {
	if size > limit {
		size = limit
	}
	if offset < 0 {
		offset = 0
	}
	if offset+size > limit {
		offset = limit - size
	}
	return offset, size
}

// AnchoredWindow fits a whole srcW x srcH source inside the canvas described
// by size, preserving its aspect ratio, and pushes it toward anchor.
//
// The canvas/source relationship is split five ways, in order:
//
//  1. canvas at least as large as the source on both axes: the source is not
//     scaled at all
//  2. canvas at least as wide as the source: scale by height
//  3. canvas at least as tall as the source: scale by width
//  4. CalculatedWidth narrower than the canvas: scale by height
//  5. otherwise: scale by width
//
// The first three cases short-circuit before the general comparison so a
// canvas that dominates the source on one axis never yields an empty or
// negative window. Leftover space on each axis is given to the side opposite
// the anchor; a centred axis splits it, rounding the leading offset up.
func AnchoredWindow(srcW, srcH int, size ResolvedSize, anchor Anchor) Window {
	w, h := size.Width, size.Height

	var win Window
	switch {
	case w >= srcW && h >= srcH:
		win = Window{Width: srcW, Height: srcH}
	case w >= srcW:
		win = Window{Width: size.CalculatedWidth, Height: h}
	case h >= srcH:
		win = Window{Width: w, Height: size.CalculatedHeight}
	case size.CalculatedWidth < w:
		win = Window{Width: size.CalculatedWidth, Height: h}
	default:
		win = Window{Width: w, Height: size.CalculatedHeight}
	}

	ha, va := anchor.Align()
	win.X = ha.offset(w - win.Width)
	win.Y = va.offset(h - win.Height)

	return win.clamp(w, h)
}

// FitWindow is the centred fit-inside window used by resize: letterbox or
// pillarbox, never crop.
func FitWindow(srcW, srcH int, size ResolvedSize) Window {
	return AnchoredWindow(srcW, srcH, size, AnchorCenter)
}
