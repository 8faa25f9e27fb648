package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseThumbMode(t *testing.T) {
	const T, F = true, false

	tests := []struct {
		top, right, bottom, left bool
		mode                     ThumbMode
		anchor                   Anchor
	}{
		{F, F, F, F, ThumbCut, AnchorCenter},
		{T, F, F, F, ThumbCut, AnchorCenter},
		{F, T, F, F, ThumbCut, AnchorCenter},
		{F, F, T, F, ThumbCut, AnchorCenter},
		{F, F, F, T, ThumbCut, AnchorCenter},
		{T, F, T, F, ThumbFit, AnchorCenter},
		{F, T, F, T, ThumbFit, AnchorCenter},
		{T, T, T, T, ThumbFit, AnchorCenter},
		{F, T, T, T, ThumbAnchored, AnchorTop},
		{F, T, T, F, ThumbAnchored, AnchorTopLeft},
		{F, F, T, T, ThumbAnchored, AnchorTopRight},
		{T, T, F, F, ThumbAnchored, AnchorBottomLeft},
		{T, F, F, T, ThumbAnchored, AnchorBottomRight},
		{T, F, T, T, ThumbAnchored, AnchorRight},
		{T, T, F, T, ThumbAnchored, AnchorBottom},
		{T, T, T, F, ThumbAnchored, AnchorLeft},
	}

	for _, tt := range tests {
		p := profileOf(white, tt.top, tt.right, tt.bottom, tt.left)
		mode, anchor := ChooseThumbMode(p)
		assert.Equal(t, tt.mode, mode, "pattern %v", p.pattern())
		if tt.mode == ThumbAnchored {
			assert.Equal(t, tt.anchor, anchor, "pattern %v", p.pattern())
		}
	}
}

func TestChooseThumbMode_RightNeedsMatchingColours(t *testing.T) {
	p := profileOf(white, true, false, true, true)
	p.Left.Color = black

	// top and bottom are still defined, so the picture is fitted
	mode, _ := ChooseThumbMode(p)
	assert.Equal(t, ThumbFit, mode)
}

func TestPlanThumb(t *testing.T) {
	t.Run("all edges defined fits centred", func(t *testing.T) {
		plan, err := PlanThumb(100, 100, SizeRequest{Width: 200, Height: 100}, profileOf(white, true, true, true, true))
		require.NoError(t, err)
		assert.Equal(t, ThumbFit, plan.Mode)
		assert.Equal(t, Window{50, 0, 100, 100}, plan.Window)
	})

	t.Run("anchored pushes content away from undefined edges", func(t *testing.T) {
		// only the top is undefined: content sits against the top
		plan, err := PlanThumb(100, 100, SizeRequest{Width: 300, Height: 200}, profileOf(white, false, true, true, true))
		require.NoError(t, err)
		assert.Equal(t, ThumbAnchored, plan.Mode)
		assert.Equal(t, AnchorTop, plan.Anchor)
		assert.Equal(t, Window{100, 0, 100, 100}, plan.Window)
	})

	t.Run("no signal cuts", func(t *testing.T) {
		plan, err := PlanThumb(800, 400, SizeRequest{Width: 100, Height: 100}, profileOf(white, false, false, false, false))
		require.NoError(t, err)
		assert.Equal(t, ThumbCut, plan.Mode)
		assert.Equal(t, Window{}, plan.Window)
	})

	t.Run("same size skips", func(t *testing.T) {
		plan, err := PlanThumb(120, 80, SizeRequest{Width: 120}, profileOf(white, true, true, true, true))
		require.NoError(t, err)
		assert.Equal(t, ThumbSkip, plan.Mode)
	})

	t.Run("empty size", func(t *testing.T) {
		_, err := PlanThumb(120, 80, SizeRequest{}, BackgroundProfile{})
		assert.ErrorIs(t, err, ErrEmptySize)
	})
}
