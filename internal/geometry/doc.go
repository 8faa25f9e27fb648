// Package geometry decides where pixels go.
//
// It holds the arithmetic half of every transform: completing a partially
// specified target size, computing the window a source is sampled into,
// planning the scale-then-crop steps of a fill-exact cut, choosing the anchor
// of a padded thumbnail from the classification of the image's edges, and
// choosing how new canvas area is painted. Nothing in this package touches
// pixels; the imaging package reads them and the transform package applies
// the plans produced here.
//
// # Rounding
//
// Every derived dimension and every centring offset is rounded up (toward
// positive infinity). A window therefore never falls short of the canvas by a
// fractional pixel. Windows are clamped to their canvas, so rounding up never
// makes one overflow it either.
//
// # Coordinates
//
// A Window describes placement on the destination canvas: X and Y are the
// offset at which the sampled content begins, Width and Height its size after
// scaling. The one exception is CutPlan.Crop, whose X and Y are offsets into
// the scaled raster that is being trimmed.
package geometry
