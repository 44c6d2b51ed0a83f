package flo

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface the renderers write to.
//
// The method set is the subset of the gg immediate-mode API the widgets
// need, so a *gg.Context is a Canvas as-is. Use NewRecorderCanvas to capture
// the drawing commands instead of rasterizing them.
type Canvas interface {
	Width() int
	Height() int

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, r float64)
	DrawCircle(x, y, r float64)

	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetLineWidth(width float64)

	Fill() error
	Stroke() error
	Clip()
	Push()
	Pop()

	SetFont(face text.Face)
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var _ Canvas = (*gg.Context)(nil)

// recorderCanvas adapts a recording.Recorder, whose Fill and Stroke
// cannot fail, to Canvas.
type recorderCanvas struct {
	*recording.Recorder
}

// NewRecorderCanvas returns a Canvas that records every drawing command
// into rec. Call rec.FinishRecording to obtain the command list or to play
// it back onto a recording.Backend.
func NewRecorderCanvas(rec *recording.Recorder) Canvas {
	return recorderCanvas{Recorder: rec}
}

func (c recorderCanvas) Fill() error {
	c.Recorder.Fill()
	return nil
}

func (c recorderCanvas) Stroke() error {
	c.Recorder.Stroke()
	return nil
}

// CheckCanvas reports ErrSurfaceUnavailable when cv cannot be drawn on:
// nil, wrapping a nil target, or with an empty drawable area.
func CheckCanvas(cv Canvas) error {
	switch c := cv.(type) {
	case nil:
		return fmt.Errorf("%w: nil canvas", ErrSurfaceUnavailable)
	case *gg.Context:
		if c == nil {
			return fmt.Errorf("%w: nil context", ErrSurfaceUnavailable)
		}
	case recorderCanvas:
		if c.Recorder == nil {
			return fmt.Errorf("%w: nil recorder", ErrSurfaceUnavailable)
		}
	}
	if w, h := cv.Width(), cv.Height(); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSurfaceUnavailable, w, h)
	}
	return nil
}
