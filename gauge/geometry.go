package gauge

import (
	"fmt"
	"math"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/internal/arc"
	"github.com/gogpu/gg"
)

// Marker is one tick on the dial.
type Marker struct {
	// Angle is the rotation applied to the marker rectangle.
	Angle float64
	// Transform maps marker space onto the canvas.
	Transform gg.Matrix
	// Corners are the rectangle corners in canvas space, clockwise from
	// the top-left corner in marker space.
	Corners [4]gg.Point
}

// Geometry holds every position and angle of a gauge. It is a pure
// function of the counter, capacity, policy and canvas size.
type Geometry struct {
	Width  float64
	Height float64
	Center gg.Point

	// Radius is half the larger canvas side.
	Radius float64
	// TrackRadius is the radius the track stroke is centered on.
	TrackRadius float64

	// Counter is the counter after the policy was applied.
	Counter int
	// AnglePerUnit is TotalSweep divided by the capacity.
	AnglePerUnit float64
	// ProgressEnd is the angle the outline reaches.
	ProgressEnd float64

	// OuterRadius and InnerRadius bound the progress outline.
	OuterRadius float64
	InnerRadius float64

	Markers []Marker
}

// NewGeometry validates the counter and capacity and lays out a gauge on a
// width x height canvas.
func NewGeometry(counter, capacity int, width, height float64, policy CounterPolicy) (Geometry, error) {
	if capacity <= 0 {
		return Geometry{}, fmt.Errorf("%w: %d", flo.ErrInvalidCapacity, capacity)
	}
	switch policy {
	case Clamp:
		counter = min(max(counter, 0), capacity)
	case Strict:
		if counter < 0 || counter > capacity {
			return Geometry{}, fmt.Errorf("%w: %d not in [0, %d]", flo.ErrCounterOutOfRange, counter, capacity)
		}
	}

	radius := math.Max(width, height) / 2
	perUnit := (2*math.Pi - StartAngle + EndAngle) / float64(capacity)

	g := Geometry{
		Width:        width,
		Height:       height,
		Center:       gg.Pt(width/2, height/2),
		Radius:       radius,
		TrackRadius:  radius - ArcWidth/2,
		Counter:      counter,
		AnglePerUnit: perUnit,
		ProgressEnd:  perUnit*float64(counter) + StartAngle,
		OuterRadius:  width/2 - LineWidth/2,
		InnerRadius:  width/2 - ArcWidth + LineWidth/2,
		Markers:      make([]Marker, capacity),
	}
	for i := range g.Markers {
		g.Markers[i] = newMarker(perUnit*float64(i+1)+StartAngle-math.Pi/2, width, height)
	}
	return g, nil
}

// MarkerTransform returns the matrix that moves the origin to the canvas
// center, rotates by angle and steps out to the rim.
func MarkerTransform(angle, width, height float64) gg.Matrix {
	return gg.Translate(width/2, height/2).
		Multiply(gg.Rotate(angle)).
		Multiply(gg.Translate(0, height/2-MarkerSize))
}

func newMarker(angle, width, height float64) Marker {
	m := MarkerTransform(angle, width, height)
	const x0, x1 = -MarkerWidth / 2, MarkerWidth / 2
	return Marker{
		Angle:     angle,
		Transform: m,
		Corners: [4]gg.Point{
			m.TransformPoint(gg.Pt(x0, 0)),
			m.TransformPoint(gg.Pt(x1, 0)),
			m.TransformPoint(gg.Pt(x1, MarkerSize)),
			m.TransformPoint(gg.Pt(x0, MarkerSize)),
		},
	}
}

// Track returns the background arc.
func (g Geometry) Track() arc.Arc {
	return arc.Arc{
		Center:    g.Center,
		Radius:    g.TrackRadius,
		Start:     StartAngle,
		End:       EndAngle,
		Clockwise: true,
	}
}

// Outline returns the outer and inner arcs of the progress outline. The
// outer arc runs clockwise to ProgressEnd and the inner one comes back.
func (g Geometry) Outline() (outer, inner arc.Arc) {
	outer = arc.Arc{
		Center:    g.Center,
		Radius:    g.OuterRadius,
		Start:     StartAngle,
		End:       g.ProgressEnd,
		Clockwise: true,
	}
	inner = arc.Arc{
		Center: g.Center,
		Radius: g.InnerRadius,
		Start:  g.ProgressEnd,
		End:    StartAngle,
	}
	return outer, inner
}
