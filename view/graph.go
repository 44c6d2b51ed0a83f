package view

import (
	"slices"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/chart"
	"github.com/gogpu/gg"
)

// GraphView is the stateful host of a chart.
type GraphView struct {
	base

	points     []int
	startColor gg.RGBA
	endColor   gg.RGBA
}

// NewGraphView returns a view with the default week of samples. It starts
// dirty so the first frame is drawn.
func NewGraphView(invalidate Invalidator) *GraphView {
	in := chart.DefaultInput()
	return &GraphView{
		base:       base{dirty: true, invalidate: invalidate},
		points:     in.Points,
		startColor: in.StartColor,
		endColor:   in.EndColor,
	}
}

// Points returns a copy of the current samples.
func (v *GraphView) Points() []int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.points)
}

// SetPoints replaces the samples. The slice is copied.
func (v *GraphView) SetPoints(points []int) {
	v.mu.Lock()
	v.points = slices.Clone(points)
	v.mu.Unlock()
	v.SetNeedsDisplay()
}

// SetColors replaces the gradient colors.
func (v *GraphView) SetColors(start, end gg.RGBA) {
	v.mu.Lock()
	v.startColor, v.endColor = start, end
	v.mu.Unlock()
	v.SetNeedsDisplay()
}

// Input returns a snapshot of the view's properties.
func (v *GraphView) Input() chart.Input {
	v.mu.Lock()
	defer v.mu.Unlock()
	return chart.Input{
		Points:     slices.Clone(v.points),
		StartColor: v.startColor,
		EndColor:   v.endColor,
	}
}

// Draw renders the current snapshot onto cv. The view stays dirty when
// rendering fails so the host can retry after fixing the data.
func (v *GraphView) Draw(cv flo.Canvas, opts ...chart.Option) error {
	if err := chart.Render(cv, v.Input(), opts...); err != nil {
		flo.Logger().Warn("view: graph draw failed", "error", err)
		return err
	}
	v.markClean()
	return nil
}
