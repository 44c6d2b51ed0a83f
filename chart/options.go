package chart

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
)

// Option configures a Render call.
//
// Example:
//
//	face, _ := flo.DefaultFace(12)
//	err := chart.Render(dc, in, chart.WithLabels(chart.Labels{Face: face}))
type Option func(*options)

type options struct {
	labels *Labels
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Labels describes the optional text drawn over the panel: a title and the
// average in the top-left corner, the scale next to the top and bottom
// guides and one label under each column.
type Labels struct {
	// Face is the font used for every label. A nil Face disables labels.
	Face text.Face

	// Title is drawn in the top-left corner. Empty means DefaultTitle.
	Title string

	// Columns are drawn under the columns. They are skipped unless there is
	// exactly one per point.
	Columns []string

	// Lang selects number formatting for the average and the scale.
	// The zero value formats like English.
	Lang language.Tag
}

// DefaultTitle is the caption used when Labels.Title is empty.
const DefaultTitle = "Water Drunk"

// WithLabels draws the labels described by l on top of the chart.
func WithLabels(l Labels) Option {
	return func(o *options) {
		if l.Face == nil {
			o.labels = nil
			return
		}
		o.labels = &l
	}
}
