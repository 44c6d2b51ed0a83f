// Package gauge renders the circular progress gauge: a thick 270° track,
// an outline around the filled share of the track and one tick marker per
// unit of capacity.
//
// The track starts at 3π/4 (bottom left) and runs clockwise through the
// top of the dial to π/4 (bottom right). Markers are positioned with an
// explicit matrix each, so rendering never touches the canvas transform.
package gauge

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Dial geometry in canvas units and radians.
const (
	ArcWidth    = 76.0
	LineWidth   = 5.0
	MarkerWidth = 5.0
	MarkerSize  = 10.0

	StartAngle = 3 * math.Pi / 4
	EndAngle   = math.Pi / 4

	// TotalSweep is the clockwise span from StartAngle to EndAngle.
	TotalSweep = 2*math.Pi - StartAngle + EndAngle

	// DefaultCapacity is the default daily glass target.
	DefaultCapacity = 8
)

// Input is the data a gauge is drawn from.
type Input struct {
	// Counter is the current count, normally in [0, Capacity].
	Counter int
	// Capacity is the number of units on the dial. Must be positive.
	Capacity int

	// OutlineColor strokes the progress outline and fills the markers.
	OutlineColor gg.RGBA
	// FillColor strokes the track.
	FillColor gg.RGBA
}

// DefaultInput returns a blue on orange gauge at five of eight.
func DefaultInput() Input {
	return Input{
		Counter:      5,
		Capacity:     DefaultCapacity,
		OutlineColor: gg.Blue,
		FillColor:    gg.RGB(1, 0.5, 0),
	}
}

// CounterPolicy decides what happens to a counter outside [0, Capacity].
type CounterPolicy int

const (
	// Unclamped draws the counter as given; the outline may overrun the
	// track or wrap backwards.
	Unclamped CounterPolicy = iota
	// Clamp pins the counter into [0, Capacity].
	Clamp
	// Strict rejects the counter with flo.ErrCounterOutOfRange.
	Strict
)

var policyNames = [...]string{
	Unclamped: "unclamped",
	Clamp:     "clamp",
	Strict:    "strict",
}

// String returns the policy name.
func (p CounterPolicy) String() string {
	if p >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("CounterPolicy(%d)", int(p))
}

// ParseCounterPolicy parses a policy name. The empty string selects
// Unclamped.
func ParseCounterPolicy(s string) (CounterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unclamped":
		return Unclamped, nil
	case "clamp":
		return Clamp, nil
	case "strict":
		return Strict, nil
	}
	return Unclamped, fmt.Errorf("gauge: unknown counter policy %q", s)
}
