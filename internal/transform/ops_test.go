package transform

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-artifex/internal/geometry"
	"github.com/ironsheep/image-artifex/internal/imaging"
)

func TestResize(t *testing.T) {
	t.Run("fits inside and pads with the border colour", func(t *testing.T) {
		im := loadImage(t, solidImage(80, 40, white))
		require.NoError(t, im.Resize(30, 30, Auto()))

		assert.Equal(t, 30, im.Width())
		assert.Equal(t, 30, im.Height())
		assert.Equal(t, white, pixel(im, 0, 0))
		assert.Equal(t, white, pixel(im, 29, 29))
	})

	t.Run("derives the missing dimension", func(t *testing.T) {
		im := loadImage(t, quadrantImage(80, 40))
		require.NoError(t, im.Resize(0, 20, Auto()))
		assert.Equal(t, 40, im.Width())
		assert.Equal(t, 20, im.Height())
	})

	t.Run("solid background", func(t *testing.T) {
		im := loadImage(t, quadrantImage(40, 20))
		require.NoError(t, im.Resize(40, 40, Solid(imaging.ColorIDOf(black))))

		assert.Equal(t, black, pixel(im, 0, 0))
		assert.Equal(t, black, pixel(im, 39, 39))
		assert.Equal(t, red, pixel(im, 0, 10), "content is centred vertically")
	})

	t.Run("top and bottom bands split the padding", func(t *testing.T) {
		im := loadImage(t, bandedImage(40, 20))
		require.NoError(t, im.Resize(40, 40, Auto()))

		assert.Equal(t, red, pixel(im, 0, 0))
		assert.Equal(t, blue, pixel(im, 0, 39))
		assert.Equal(t, red, pixel(im, 5, 10), "first source row")
	})

	t.Run("bands that cannot be continued cut instead", func(t *testing.T) {
		im := loadImage(t, bandedImage(40, 20))
		require.NoError(t, im.Resize(40, 10, Auto()))

		assert.Equal(t, 40, im.Width())
		assert.Equal(t, 10, im.Height())
	})

	t.Run("translucent borders keep the padding transparent", func(t *testing.T) {
		im := loadImage(t, solidImage(10, 10, color.NRGBA{255, 0, 0, 128}))
		require.NoError(t, im.Resize(20, 20, Auto()))

		assert.Zero(t, pixel(im, 0, 0).A)
		assert.Equal(t, uint8(128), pixel(im, 10, 10).A)

		bg := im.Background()
		assert.True(t, bg.Top.Defined && bg.Right.Defined && bg.Bottom.Defined && bg.Left.Defined)
	})
}

func TestCrop(t *testing.T) {
	t.Run("region", func(t *testing.T) {
		im := loadImage(t, quadrantImage(40, 20))
		require.NoError(t, im.Crop(20, 0, 20, 10, Auto()))

		assert.Equal(t, 20, im.Width())
		assert.Equal(t, 10, im.Height())
		assert.Equal(t, green, pixel(im, 0, 0))
		assert.Equal(t, green, pixel(im, 19, 9))
	})

	t.Run("one dimension makes a square", func(t *testing.T) {
		im := loadImage(t, quadrantImage(40, 20))
		require.NoError(t, im.Crop(0, 0, 0, 8, Auto()))
		assert.Equal(t, 8, im.Width())
		assert.Equal(t, 8, im.Height())
	})

	t.Run("outside the image shows the background", func(t *testing.T) {
		im := loadImage(t, quadrantImage(40, 20))
		require.NoError(t, im.Crop(30, 10, 20, 20, Solid(imaging.ColorIDOf(black))))

		assert.Equal(t, white, pixel(im, 0, 0))
		assert.Equal(t, black, pixel(im, 15, 15))
	})
}

func TestCut(t *testing.T) {
	t.Run("landscape to square trims the sides", func(t *testing.T) {
		im := loadImage(t, quadrantImage(80, 40))
		require.NoError(t, im.Cut(30, 30, Auto()))

		assert.Equal(t, 30, im.Width())
		assert.Equal(t, 30, im.Height())
		assert.Equal(t, red, pixel(im, 0, 0))
		assert.Equal(t, green, pixel(im, 29, 0))
		assert.Equal(t, blue, pixel(im, 0, 29))
		assert.Equal(t, white, pixel(im, 29, 29))
	})

	t.Run("every aspect combination fills the target exactly", func(t *testing.T) {
		sources := [][2]int{{30, 30}, {60, 30}, {30, 60}}
		targets := [][2]int{{20, 20}, {40, 10}, {10, 40}, {45, 35}}

		for _, s := range sources {
			for _, tg := range targets {
				im := loadImage(t, quadrantImage(s[0], s[1]))
				require.NoError(t, im.Cut(tg[0], tg[1], Auto()))
				assert.Equal(t, tg[0], im.Width(), "source %v target %v", s, tg)
				assert.Equal(t, tg[1], im.Height(), "source %v target %v", s, tg)
			}
		}
	})

	t.Run("same size is a no-op", func(t *testing.T) {
		im := loadImage(t, quadrantImage(30, 20))
		before := im.Raster()
		require.NoError(t, im.Cut(30, 20, Auto()))
		assert.True(t, before == im.Raster())
	})

	t.Run("centred portrait policy", func(t *testing.T) {
		legacy := loadImage(t, quadrantImage(40, 80))
		centred := loadImage(t, quadrantImage(40, 80), WithCutPolicy(geometry.CutPolicy{CenterPortrait: true}))

		require.NoError(t, legacy.Cut(40, 20, Auto()))
		require.NoError(t, centred.Cut(40, 20, Auto()))

		// the legacy offset keeps the upper half, centring straddles the middle
		assert.Equal(t, red, pixel(legacy, 0, 19))
		assert.Equal(t, blue, pixel(centred, 0, 19))
	})
}

func TestThumb(t *testing.T) {
	t.Run("uniform borders fit and pad", func(t *testing.T) {
		im := loadImage(t, solidImage(100, 100, white))
		require.NoError(t, im.Thumb(200, 100, Auto()))

		assert.Equal(t, 200, im.Width())
		assert.Equal(t, 100, im.Height())
		assert.Equal(t, white, pixel(im, 0, 0))
		assert.Equal(t, white, pixel(im, 199, 99))
	})

	t.Run("undefined top anchors the picture to the top", func(t *testing.T) {
		src := solidImage(10, 10, white)
		for x := 0; x < 10; x++ {
			src.Set(x, 0, color.NRGBA{uint8(x * 20), 0, 0, 255})
		}
		im := loadImage(t, src)
		require.NoError(t, im.Thumb(30, 20, Auto()))

		assert.Equal(t, 30, im.Width())
		assert.Equal(t, 20, im.Height())
		assert.Equal(t, black, pixel(im, 10, 0), "source pixel (0,0)")
		assert.Equal(t, white, pixel(im, 0, 19))
		assert.Equal(t, white, pixel(im, 15, 19))
	})

	t.Run("no border signal cuts", func(t *testing.T) {
		im := loadImage(t, noisyImage(40, 20))
		require.NoError(t, im.Thumb(20, 20, Auto()))
		assert.Equal(t, 20, im.Width())
		assert.Equal(t, 20, im.Height())
	})

	t.Run("translucent borders without a dominant colour fit", func(t *testing.T) {
		palette := []color.NRGBA{{255, 0, 0, 100}, {0, 255, 0, 100}, {0, 0, 255, 100}}
		src := image.NewNRGBA(image.Rect(0, 0, 30, 30))
		for y := 0; y < 30; y++ {
			for x := 0; x < 30; x++ {
				src.SetNRGBA(x, y, palette[(x+y)%3])
			}
		}

		first := loadImage(t, src)
		require.NoError(t, first.Thumb(60, 30, Auto()))
		assert.Equal(t, 60, first.Width())
		assert.Equal(t, 30, first.Height())
		assert.Equal(t, color.NRGBA{}, pixel(first, 2, 15), "padding stays transparent")
		assert.Equal(t, palette[0], pixel(first, 15, 0), "source pixel (0,0)")
		assert.True(t, first.Background().AnyDefined())

		// A crop at full size re-plans padding first; thumb must not
		// depend on it.
		again := loadImage(t, src)
		require.NoError(t, again.Crop(0, 0, 30, 30, Auto()))
		require.NoError(t, again.Thumb(60, 30, Auto()))
		assert.Equal(t, pixel(first, 2, 15), pixel(again, 2, 15))
		assert.Equal(t, pixel(first, 15, 0), pixel(again, 15, 0))
	})

	t.Run("same size is a no-op", func(t *testing.T) {
		im := loadImage(t, solidImage(20, 10, white))
		before := im.Raster()
		require.NoError(t, im.Thumb(20, 0, Auto()))
		assert.True(t, before == im.Raster())
	})
}

func TestReduce(t *testing.T) {
	im := loadImage(t, solidImage(80, 40, white))

	require.NoError(t, im.Reduce(100, 100))
	assert.Equal(t, 80, im.Width(), "reduce never enlarges")

	require.NoError(t, im.Reduce(40, 40))
	assert.Equal(t, 40, im.Width())
	assert.Equal(t, 20, im.Height())
}

func TestReduce_AfterResizeIsNoOp(t *testing.T) {
	im := loadImage(t, quadrantImage(80, 40))
	require.NoError(t, im.Resize(50, 30, Solid(imaging.ColorIDOf(white))))

	before := im.Raster()
	require.NoError(t, im.Reduce(50, 30))
	assert.Equal(t, 50, im.Width())
	assert.Equal(t, 30, im.Height())
	assert.True(t, before == im.Raster())
}

func TestRotate(t *testing.T) {
	t.Run("right angle swaps the sides", func(t *testing.T) {
		im := loadImage(t, quadrantImage(40, 20))
		require.NoError(t, im.Rotate(90, Auto()))
		assert.Equal(t, 20, im.Width())
		assert.Equal(t, 40, im.Height())
		assert.Equal(t, red, pixel(im, 0, 39))
	})

	t.Run("oblique angle shows the background in the corners", func(t *testing.T) {
		im := loadImage(t, solidImage(40, 40, red))
		require.NoError(t, im.Rotate(45, Solid(imaging.ColorIDOf(white))))

		assert.Greater(t, im.Width(), 40)
		assert.Equal(t, white, pixel(im, 0, 0))
		centre := pixel(im, im.Width()/2, im.Height()/2)
		assert.InDelta(t, 255, int(centre.R), 2)
		assert.InDelta(t, 0, int(centre.G), 2)
	})
}

func TestOpacity(t *testing.T) {
	im := loadImage(t, solidImage(4, 4, red))
	im.Opacity(50)
	assert.InDelta(t, 128, int(pixel(im, 1, 1).A), 1)
}

func TestWatermark(t *testing.T) {
	mark := writeImage(t, solidImage(10, 10, red), "mark.png")

	t.Run("opaque corner", func(t *testing.T) {
		im := loadImage(t, solidImage(40, 40, white))
		require.NoError(t, im.Watermark(mark, "bottom-right", 100))

		assert.Equal(t, red, pixel(im, 39, 39))
		assert.Equal(t, red, pixel(im, 30, 30))
		assert.Equal(t, white, pixel(im, 29, 29))
		assert.Equal(t, 40, im.Width())
	})

	t.Run("unknown position centres", func(t *testing.T) {
		im := loadImage(t, solidImage(40, 40, white))
		require.NoError(t, im.Watermark(mark, "middle-ish", 100))
		assert.Equal(t, red, pixel(im, 15, 15))
		assert.Equal(t, white, pixel(im, 14, 14))
	})

	t.Run("translucent", func(t *testing.T) {
		im := loadImage(t, solidImage(40, 40, white))
		require.NoError(t, im.Watermark(mark, "top-left", DefaultWatermarkOpacity))

		p := pixel(im, 0, 0)
		assert.InDelta(t, 255, int(p.R), 1)
		assert.InDelta(t, 77, int(p.G), 3)
		assert.Equal(t, uint8(255), p.A)
	})

	t.Run("missing file", func(t *testing.T) {
		im := loadImage(t, solidImage(40, 40, white))
		assert.ErrorIs(t, im.Watermark("/nonexistent/mark.png", "center", 50), imaging.ErrFileNotFound)
	})
}
