package chart

import (
	"fmt"

	"github.com/gogpu/flo"
	"github.com/gogpu/gg"
)

// Layout holds the screen positions of a chart. It is a pure function of
// the samples and the canvas size.
type Layout struct {
	Width  float64
	Height float64

	// GraphWidth is the horizontal span shared by the columns.
	GraphWidth float64
	// GraphHeight is the vertical span between the top and bottom borders.
	GraphHeight float64

	// Max is the largest sample, mapped to TopBorder.
	Max int

	// Points holds one position per sample, in input order.
	Points []gg.Point

	// Guides are the y positions of the top, center and bottom guide lines.
	Guides [3]float64
}

// NewLayout validates points and lays them out on a width x height canvas.
func NewLayout(points []int, width, height float64) (Layout, error) {
	if len(points) < 2 {
		return Layout{}, fmt.Errorf("%w: got %d, need at least 2", flo.ErrInsufficientData, len(points))
	}

	maxValue := 0
	for i, v := range points {
		if v < 0 {
			return Layout{}, fmt.Errorf("%w: points[%d] = %d", flo.ErrNegativeSample, i, v)
		}
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue == 0 {
		return Layout{}, fmt.Errorf("%w: all %d points are zero", flo.ErrDegenerateRange, len(points))
	}

	l := Layout{
		Width:       width,
		Height:      height,
		GraphWidth:  width - Margin*2 - columnInset*2,
		GraphHeight: height - TopBorder - BottomBorder,
		Max:         maxValue,
		Points:      make([]gg.Point, len(points)),
	}
	spacing := l.GraphWidth / float64(len(points)-1)
	for i, v := range points {
		l.Points[i] = gg.Pt(float64(i)*spacing+Margin+columnInset, l.Y(v))
	}
	l.Guides = [3]float64{
		TopBorder,
		l.GraphHeight/2 + TopBorder,
		height - BottomBorder,
	}
	return l, nil
}

// X returns the x coordinate of column i.
func (l Layout) X(i int) float64 {
	return l.Points[i].X
}

// Y maps a sample value to its y coordinate. Larger values sit higher on
// screen: Y(Max) is TopBorder and Y(0) is the bottom guide.
func (l Layout) Y(v int) float64 {
	scaled := float64(v) / float64(l.Max) * l.GraphHeight
	return l.GraphHeight + TopBorder - scaled
}

// Top returns the y coordinate of the highest sample.
func (l Layout) Top() float64 {
	return l.Y(l.Max)
}
