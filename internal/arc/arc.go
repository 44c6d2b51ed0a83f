// Package arc flattens circular arcs into cubic Bézier segments.
//
// Angles are in radians, measured from the positive X axis. With the
// top-left origin used by gg, increasing angles turn clockwise on screen,
// so an arc with Clockwise set walks angles upward.
package arc

import (
	"math"

	"github.com/gogpu/gg"
)

const twoPi = 2 * math.Pi

// maxSegmentSweep is the largest angle a single cubic approximates.
const maxSegmentSweep = math.Pi / 2

// Arc is a circular arc around Center.
type Arc struct {
	Center    gg.Point
	Radius    float64
	Start     float64
	End       float64
	Clockwise bool
}

// Segment is one cubic Bézier piece of an arc. The piece starts where the
// previous one ended (or at the arc start for the first piece).
type Segment struct {
	Control1 gg.Point
	Control2 gg.Point
	End      gg.Point
}

// Pather receives path commands. Both *gg.Context and
// *recording.Recorder satisfy it.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
}

// Sweep returns the unsigned angle covered by the arc, in [0, 2π].
//
// The end angle is wrapped forward (clockwise) or backward
// (counter-clockwise) until it lies on the travel side of the start angle.
// Equal angles give a zero sweep; spans beyond a full turn give a full circle.
func (a Arc) Sweep() float64 {
	d := a.End - a.Start
	if !a.Clockwise {
		d = -d
	}
	if d == 0 {
		return 0
	}
	if d > twoPi {
		return twoPi
	}
	for d < 0 {
		d += twoPi
	}
	return d
}

// PointAt returns the point on the circle at angle theta.
func (a Arc) PointAt(theta float64) gg.Point {
	return gg.Pt(
		a.Center.X+a.Radius*math.Cos(theta),
		a.Center.Y+a.Radius*math.Sin(theta),
	)
}

// StartPoint returns the first point of the arc.
func (a Arc) StartPoint() gg.Point {
	return a.PointAt(a.Start)
}

// EndPoint returns the last point of the arc after sweep normalization.
func (a Arc) EndPoint() gg.Point {
	return a.PointAt(a.Start + a.direction()*a.Sweep())
}

func (a Arc) direction() float64 {
	if a.Clockwise {
		return 1
	}
	return -1
}

// Segments approximates the arc with cubic Béziers of at most a quarter
// turn each. A zero sweep yields no segments.
func (a Arc) Segments() []Segment {
	sweep := a.Sweep()
	if sweep == 0 {
		return nil
	}

	n := int(math.Ceil(sweep/maxSegmentSweep - 1e-9))
	if n < 1 {
		n = 1
	}
	step := a.direction() * sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * a.Radius

	segs := make([]Segment, 0, n)
	theta := a.Start
	for i := 0; i < n; i++ {
		next := theta + step
		p0 := a.PointAt(theta)
		p1 := a.PointAt(next)
		segs = append(segs, Segment{
			Control1: gg.Pt(p0.X-k*math.Sin(theta), p0.Y+k*math.Cos(theta)),
			Control2: gg.Pt(p1.X+k*math.Sin(next), p1.Y-k*math.Cos(next)),
			End:      p1,
		})
		theta = next
	}
	return segs
}

// Trace appends the arc to p. When connect is false the arc opens a new
// subpath; otherwise a straight line joins the current point to the arc
// start, the way CoreGraphics and canvas arcTo behave.
func Trace(p Pather, a Arc, connect bool) {
	start := a.StartPoint()
	if connect {
		p.LineTo(start.X, start.Y)
	} else {
		p.MoveTo(start.X, start.Y)
	}
	for _, s := range a.Segments() {
		p.CubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.End.X, s.End.Y)
	}
}
