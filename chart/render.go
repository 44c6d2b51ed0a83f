package chart

import (
	"fmt"

	"github.com/gogpu/flo"
	"github.com/gogpu/gg"
)

// Render draws the chart for in onto cv, filling the whole canvas.
//
// The input is validated before anything is drawn. Errors wrap
// flo.ErrSurfaceUnavailable, flo.ErrInsufficientData, flo.ErrNegativeSample
// or flo.ErrDegenerateRange. The canvas state (clip, brushes) is restored
// before Render returns.
func Render(cv flo.Canvas, in Input, opts ...Option) error {
	if err := flo.CheckCanvas(cv); err != nil {
		return err
	}
	o := newOptions(opts)

	l, err := NewLayout(in.Points, float64(cv.Width()), float64(cv.Height()))
	if err != nil {
		return err
	}
	var labels labelText
	if o.labels != nil {
		labels = newLabelText(*o.labels, in.Points, l.Max)
	}

	flo.Logger().Debug("chart: render",
		"width", l.Width, "height", l.Height, "points", len(l.Points), "max", l.Max)

	cv.Push()
	defer cv.Pop()

	// Rounded panel.
	cv.DrawRoundedRectangle(0, 0, l.Width, l.Height, CornerRadius)
	cv.Clip()

	cv.SetFillBrush(gradient(0, 0, 0, l.Height, in))
	cv.DrawRectangle(0, 0, l.Width, l.Height)
	if err := cv.Fill(); err != nil {
		return fmt.Errorf("chart: background: %w", err)
	}

	white := gg.Solid(gg.White)
	cv.SetStrokeBrush(white)
	cv.SetLineWidth(lineWidth)
	tracePolyline(cv, l.Points)
	if err := cv.Stroke(); err != nil {
		return fmt.Errorf("chart: line: %w", err)
	}

	if err := drawWash(cv, l, in); err != nil {
		return err
	}

	cv.SetStrokeBrush(white)
	cv.SetLineWidth(washLineWidth)
	tracePolyline(cv, l.Points)
	if err := cv.Stroke(); err != nil {
		return fmt.Errorf("chart: line: %w", err)
	}

	// Dots on top of the line.
	cv.SetFillBrush(white)
	for _, p := range l.Points {
		cv.DrawCircle(p.X, p.Y, CircleDiameter/2)
	}
	if err := cv.Fill(); err != nil {
		return fmt.Errorf("chart: points: %w", err)
	}

	cv.SetStrokeBrush(gg.SolidRGBA(1, 1, 1, GuideAlpha))
	cv.SetLineWidth(guideLineWidth)
	for _, y := range l.Guides {
		cv.MoveTo(Margin, y)
		cv.LineTo(l.Width-Margin, y)
	}
	if err := cv.Stroke(); err != nil {
		return fmt.Errorf("chart: guides: %w", err)
	}

	if o.labels != nil {
		drawLabels(cv, l, *o.labels, labels)
	}
	return nil
}

// drawWash repaints the gradient inside the region under the line. The
// gradient runs from the highest sample down to the bottom edge.
func drawWash(cv flo.Canvas, l Layout, in Input) error {
	cv.Push()
	defer cv.Pop()

	first, last := l.Points[0], l.Points[len(l.Points)-1]
	tracePolyline(cv, l.Points)
	cv.LineTo(last.X, l.Height)
	cv.LineTo(first.X, l.Height)
	cv.ClosePath()
	cv.Clip()

	cv.SetFillBrush(gradient(Margin, l.Top(), Margin, l.Height, in))
	cv.DrawRectangle(0, 0, l.Width, l.Height)
	if err := cv.Fill(); err != nil {
		return fmt.Errorf("chart: wash: %w", err)
	}
	return nil
}

func gradient(x0, y0, x1, y1 float64, in Input) *gg.LinearGradientBrush {
	return gg.NewLinearGradientBrush(x0, y0, x1, y1).
		AddColorStop(0, in.StartColor).
		AddColorStop(1, in.EndColor)
}

func tracePolyline(cv flo.Canvas, pts []gg.Point) {
	cv.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		cv.LineTo(p.X, p.Y)
	}
}
