package imaging

import (
	"image"

	"github.com/ironsheep/image-artifex/internal/geometry"
)

// ClassifyEdges builds the background profile of img by tallying the colours
// along each of its four borders.
//
// Top and bottom scan every column of the first and last row; left and right
// scan every row of the first and last column. Each border's dominant colour
// is its most frequent one, with ties going to the colour seen first along
// the scan. Only border pixels are read.
func ClassifyEdges(img image.Image) geometry.BackgroundProfile {
	b := img.Bounds()
	if b.Empty() {
		return geometry.BackgroundProfile{}
	}

	row := func(y int) geometry.EdgeClassification {
		var t tally
		for x := b.Min.X; x < b.Max.X; x++ {
			t.add(ColorIDOf(img.At(x, y)))
		}
		return t.classify()
	}
	column := func(x int) geometry.EdgeClassification {
		var t tally
		for y := b.Min.Y; y < b.Max.Y; y++ {
			t.add(ColorIDOf(img.At(x, y)))
		}
		return t.classify()
	}

	return geometry.BackgroundProfile{
		Top:    row(b.Min.Y),
		Right:  column(b.Max.X - 1),
		Bottom: row(b.Max.Y - 1),
		Left:   column(b.Min.X),
	}
}

// tally counts colour occurrences and remembers first-seen order.
type tally struct {
	counts map[geometry.ColorID]int
	order  []geometry.ColorID
	total  int
}

func (t *tally) add(c geometry.ColorID) {
	if t.counts == nil {
		t.counts = make(map[geometry.ColorID]int)
	}
	if _, seen := t.counts[c]; !seen {
		t.order = append(t.order, c)
	}
	t.counts[c]++
	t.total++
}

func (t *tally) classify() geometry.EdgeClassification {
	var best geometry.ColorID
	bestCount := 0
	for _, c := range t.order {
		if n := t.counts[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return geometry.ClassifyEdge(best, bestCount, t.total)
}

// EdgeReport describes one classified border for display.
type EdgeReport struct {
	Edge    string      `json:"edge"`
	Color   ColorResult `json:"color"`
	Share   float64     `json:"share_percent"`
	Defined bool        `json:"defined"`
}

// BackgroundReport is the display form of a geometry.BackgroundProfile.
type BackgroundReport struct {
	Edges []EdgeReport `json:"edges"`

	// ThumbMode and ThumbAnchor are what a thumbnail of this image would do
	// with the profile.
	ThumbMode   string `json:"thumb_mode"`
	ThumbAnchor string `json:"thumb_anchor,omitempty"`
}

// DescribeProfile converts a profile into its report, in top, right, bottom,
// left order.
func DescribeProfile(p geometry.BackgroundProfile) BackgroundReport {
	edge := func(name string, e geometry.EdgeClassification) EdgeReport {
		return EdgeReport{
			Edge:    name,
			Color:   DescribeColor(e.Color),
			Share:   e.Share(),
			Defined: e.Defined,
		}
	}

	mode, anchor := geometry.ChooseThumbMode(p)
	report := BackgroundReport{
		Edges: []EdgeReport{
			edge("top", p.Top),
			edge("right", p.Right),
			edge("bottom", p.Bottom),
			edge("left", p.Left),
		},
		ThumbMode: mode.String(),
	}
	if mode == geometry.ThumbAnchored {
		report.ThumbAnchor = anchor.String()
	}
	return report
}
