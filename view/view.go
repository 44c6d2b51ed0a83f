// Package view holds widget state between renders.
//
// A view owns the properties a host sets (samples, colors, counter) and a
// dirty flag. Setters mark the view dirty and call the view's Invalidator,
// which is where a host schedules a repaint. Draw takes a snapshot of the
// properties and hands it to the stateless renderer; the renderer never
// sees the view itself.
package view

import "sync"

// Invalidator is called after a property change that needs a repaint.
// It runs on the goroutine that made the change, with no view lock held.
type Invalidator func()

// base carries the dirty flag and invalidation callback shared by views.
type base struct {
	mu         sync.Mutex
	dirty      bool
	invalidate Invalidator
}

// NeedsDisplay reports whether a property changed since the last
// successful Draw.
func (b *base) NeedsDisplay() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// SetNeedsDisplay marks the view dirty and notifies the invalidator.
func (b *base) SetNeedsDisplay() {
	b.mu.Lock()
	b.dirty = true
	fn := b.invalidate
	b.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (b *base) markClean() {
	b.mu.Lock()
	b.dirty = false
	b.mu.Unlock()
}
