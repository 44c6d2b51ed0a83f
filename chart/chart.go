// Package chart renders the line chart panel: a rounded gradient panel with
// a connected line through the samples, a gradient wash under the line, a
// dot on every sample and three horizontal guide lines.
//
// Layout computes every coordinate up front; Render validates the input,
// derives the layout and only then issues drawing commands, so a rejected
// input never leaves a half-drawn panel behind.
package chart

import (
	"github.com/gogpu/gg"
)

// Panel geometry in canvas units.
const (
	CornerRadius   = 8.0
	Margin         = 20.0
	TopBorder      = 60.0
	BottomBorder   = 50.0
	CircleDiameter = 5.0

	// GuideAlpha is the opacity of the white guide lines.
	GuideAlpha = 0.3

	// columnInset keeps the first and last dots clear of the margin.
	columnInset = 2.0

	lineWidth      = 1.0
	washLineWidth  = 2.0
	guideLineWidth = 1.0
)

// Input is the data a chart is drawn from.
type Input struct {
	// Points are the samples in display order. At least two are required
	// and none may be negative; the largest sets the vertical scale.
	Points []int

	// StartColor is the gradient color at the top of the panel.
	StartColor gg.RGBA
	// EndColor is the gradient color at the bottom of the panel.
	EndColor gg.RGBA
}

// DefaultInput returns a week of sample data on a red to green panel.
func DefaultInput() Input {
	return Input{
		Points:     []int{4, 2, 6, 4, 5, 8, 3},
		StartColor: gg.Red,
		EndColor:   gg.Green,
	}
}
