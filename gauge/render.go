package gauge

import (
	"fmt"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/internal/arc"
	"github.com/gogpu/gg"
)

// Option configures a Render call.
type Option func(*options)

type options struct {
	policy CounterPolicy
}

// WithCounterPolicy selects how an out-of-range counter is handled.
// The default is Unclamped.
func WithCounterPolicy(p CounterPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Render draws the gauge for in onto cv.
//
// Errors wrap flo.ErrSurfaceUnavailable, flo.ErrInvalidCapacity or, with
// the Strict policy, flo.ErrCounterOutOfRange. Nothing is drawn when an
// error is returned before the first stroke.
func Render(cv flo.Canvas, in Input, opts ...Option) error {
	if err := flo.CheckCanvas(cv); err != nil {
		return err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g, err := NewGeometry(in.Counter, in.Capacity, float64(cv.Width()), float64(cv.Height()), o.policy)
	if err != nil {
		return err
	}

	flo.Logger().Debug("gauge: render",
		"counter", g.Counter, "capacity", in.Capacity, "policy", o.policy, "progress_end", g.ProgressEnd)

	cv.SetStrokeBrush(gg.Solid(in.FillColor))
	cv.SetLineWidth(ArcWidth)
	arc.Trace(cv, g.Track(), false)
	if err := cv.Stroke(); err != nil {
		return fmt.Errorf("gauge: track: %w", err)
	}

	outer, inner := g.Outline()
	arc.Trace(cv, outer, false)
	arc.Trace(cv, inner, true)
	cv.ClosePath()
	cv.SetStrokeBrush(gg.Solid(in.OutlineColor))
	cv.SetLineWidth(LineWidth)
	if err := cv.Stroke(); err != nil {
		return fmt.Errorf("gauge: outline: %w", err)
	}

	cv.SetFillBrush(gg.Solid(in.OutlineColor))
	for _, m := range g.Markers {
		c := m.Corners
		cv.MoveTo(c[0].X, c[0].Y)
		cv.LineTo(c[1].X, c[1].Y)
		cv.LineTo(c[2].X, c[2].Y)
		cv.LineTo(c[3].X, c[3].Y)
		cv.ClosePath()
	}
	if err := cv.Fill(); err != nil {
		return fmt.Errorf("gauge: markers: %w", err)
	}
	return nil
}
