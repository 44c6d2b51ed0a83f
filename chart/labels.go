package chart

import (
	"github.com/gogpu/flo"
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Label placement relative to the panel edges and guides.
const (
	labelInset   = 6.0
	labelGap     = 3.0
	averageBelow = 16.0
)

// labelText is the resolved text of a label pass.
type labelText struct {
	title   string
	average string
	max     string
	zero    string
	columns []string
}

func newLabelText(l Labels, points []int, maxValue int) labelText {
	tag := l.Lang
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	sum := 0
	for _, v := range points {
		sum += v
	}
	avg := float64(sum) / float64(len(points))

	t := labelText{
		title:   l.Title,
		average: p.Sprintf("Average: %.1f", avg),
		max:     p.Sprintf("%d", maxValue),
		zero:    p.Sprintf("%d", 0),
	}
	if t.title == "" {
		t.title = DefaultTitle
	}
	if len(l.Columns) == len(points) {
		t.columns = l.Columns
	}
	return t
}

func drawLabels(cv flo.Canvas, l Layout, lb Labels, t labelText) {
	cv.SetFont(lb.Face)
	cv.SetFillBrush(gg.Solid(gg.White))

	cv.DrawStringAnchored(t.title, Margin, labelInset, 0, 1)
	cv.DrawStringAnchored(t.average, Margin, TopBorder-averageBelow, 0, 0)

	right := l.Width - Margin
	cv.DrawStringAnchored(t.max, right, l.Guides[0]-labelGap, 1, 0)
	cv.DrawStringAnchored(t.zero, right, l.Guides[2]-labelGap, 1, 0)

	for i, s := range t.columns {
		cv.DrawStringAnchored(s, l.X(i), l.Guides[2]+labelInset, 0.5, 1)
	}
}
