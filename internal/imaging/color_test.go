package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-artifex/internal/geometry"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want geometry.ColorID
	}{
		{"#FF8040", geometry.NewColorID(255, 128, 64, 255)},
		{"ff8040", geometry.NewColorID(255, 128, 64, 255)},
		{"#fff", geometry.NewColorID(255, 255, 255, 255)},
		{"#00000080", geometry.NewColorID(0, 0, 0, 128)},
		{"255,128,64", geometry.NewColorID(255, 128, 64, 255)},
		{" 10, 20 ,30 ", geometry.NewColorID(10, 20, 30, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#GGGGGG", "#112233zz", "1,2", "1,2,300", "red"} {
		_, err := ParseColor(in)
		assert.Error(t, err, "ParseColor(%q)", in)
	}
}

func TestDescribeColor(t *testing.T) {
	got := DescribeColor(geometry.NewColorID(255, 0, 0, 128))

	assert.Equal(t, "#FF0000", got.Hex)
	assert.Equal(t, RGBAColor{R: 255, A: 128}, got.RGBA)
	assert.Equal(t, HSLColor{H: 0, S: 100, L: 50}, got.HSL)

	grey := DescribeColor(geometry.NewColorID(128, 128, 128, 255))
	assert.Equal(t, 0, grey.HSL.S)
}

func TestColorIDConversions(t *testing.T) {
	// premultiplied half-transparent red
	id := ColorIDOf(color.RGBA{128, 0, 0, 128})
	r, g, b, a := id.RGBA()
	assert.Equal(t, [4]uint8{255, 0, 0, 128}, [4]uint8{r, g, b, a})

	assert.Equal(t, color.NRGBA{1, 2, 3, 4}, NRGBA(geometry.NewColorID(1, 2, 3, 4)))
}
