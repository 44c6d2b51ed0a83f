package view

import (
	"fmt"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/gauge"
	"github.com/gogpu/gg"
)

// CounterView is the stateful host of a gauge.
type CounterView struct {
	base

	counter      int
	capacity     int
	outlineColor gg.RGBA
	fillColor    gg.RGBA
}

// NewCounterView returns a view at five of eight glasses. It starts dirty
// so the first frame is drawn.
func NewCounterView(invalidate Invalidator) *CounterView {
	in := gauge.DefaultInput()
	return &CounterView{
		base:         base{dirty: true, invalidate: invalidate},
		counter:      in.Counter,
		capacity:     in.Capacity,
		outlineColor: in.OutlineColor,
		fillColor:    in.FillColor,
	}
}

// Counter returns the current count.
func (v *CounterView) Counter() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.counter
}

// Capacity returns the number of units on the dial.
func (v *CounterView) Capacity() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.capacity
}

// SetCounter stores n. A repaint is requested only when n does not exceed
// the capacity; the return value reports whether one was.
func (v *CounterView) SetCounter(n int) bool {
	v.mu.Lock()
	v.counter = n
	ok := n <= v.capacity
	v.mu.Unlock()

	if ok {
		v.SetNeedsDisplay()
	}
	return ok
}

// Increment adds one unit unless the dial is already full.
func (v *CounterView) Increment() bool {
	return v.step(1)
}

// Decrement removes one unit unless the dial is already empty.
func (v *CounterView) Decrement() bool {
	return v.step(-1)
}

// step moves the counter by one unit. The bound check and the update happen
// under one lock so concurrent steps are never lost. Like SetCounter, a
// repaint is requested only when the new value does not exceed the capacity.
func (v *CounterView) step(delta int) bool {
	v.mu.Lock()
	n := v.counter + delta
	moved := (delta > 0 && v.counter < v.capacity) || (delta < 0 && v.counter > 0)
	if moved {
		v.counter = n
	}
	ok := moved && n <= v.capacity
	v.mu.Unlock()

	if ok {
		v.SetNeedsDisplay()
	}
	return ok
}

// SetCapacity changes the number of units on the dial.
func (v *CounterView) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: %d", flo.ErrInvalidCapacity, capacity)
	}
	v.mu.Lock()
	v.capacity = capacity
	v.mu.Unlock()
	v.SetNeedsDisplay()
	return nil
}

// SetColors replaces the outline and track colors.
func (v *CounterView) SetColors(outline, fill gg.RGBA) {
	v.mu.Lock()
	v.outlineColor, v.fillColor = outline, fill
	v.mu.Unlock()
	v.SetNeedsDisplay()
}

// Input returns a snapshot of the view's properties.
func (v *CounterView) Input() gauge.Input {
	v.mu.Lock()
	defer v.mu.Unlock()
	return gauge.Input{
		Counter:      v.counter,
		Capacity:     v.capacity,
		OutlineColor: v.outlineColor,
		FillColor:    v.fillColor,
	}
}

// Draw renders the current snapshot onto cv.
func (v *CounterView) Draw(cv flo.Canvas, opts ...gauge.Option) error {
	if err := gauge.Render(cv, v.Input(), opts...); err != nil {
		flo.Logger().Warn("view: counter draw failed", "error", err)
		return err
	}
	v.markClean()
	return nil
}
