package view

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/gauge"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func TestCounterViewSetCounterGuard(t *testing.T) {
	calls := 0
	v := NewCounterView(func() { calls++ })

	tests := []struct {
		n         int
		wantOK    bool
		wantCalls int
	}{
		{3, true, 1},
		{8, true, 2},
		{9, false, 2},
		{0, true, 3},
	}
	for _, tt := range tests {
		if got := v.SetCounter(tt.n); got != tt.wantOK {
			t.Errorf("SetCounter(%d) = %v, want %v", tt.n, got, tt.wantOK)
		}
		if calls != tt.wantCalls {
			t.Errorf("after SetCounter(%d): invalidations = %d, want %d", tt.n, calls, tt.wantCalls)
		}
		if v.Counter() != tt.n {
			t.Errorf("Counter() = %d, want %d", v.Counter(), tt.n)
		}
	}
}

func TestCounterViewIncrementDecrement(t *testing.T) {
	v := NewCounterView(nil)
	if !v.SetCounter(gauge.DefaultCapacity - 1) {
		t.Fatal("SetCounter below capacity was rejected")
	}
	if !v.Increment() {
		t.Error("Increment() below capacity = false, want true")
	}
	if v.Increment() {
		t.Error("Increment() at capacity = true, want false")
	}
	if v.Counter() != gauge.DefaultCapacity {
		t.Errorf("Counter() = %d, want %d", v.Counter(), gauge.DefaultCapacity)
	}

	v.SetCounter(0)
	if v.Decrement() {
		t.Error("Decrement() at zero = true, want false")
	}
	if v.Counter() != 0 {
		t.Errorf("Counter() = %d, want 0", v.Counter())
	}
}

func TestCounterViewConcurrentIncrement(t *testing.T) {
	const workers, each = 50, 20

	var calls atomic.Int32
	v := NewCounterView(func() { calls.Add(1) })
	if err := v.SetCapacity(workers * each * 2); err != nil {
		t.Fatal(err)
	}
	v.SetCounter(0)
	calls.Store(0)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range each {
				v.Increment()
			}
		}()
	}
	wg.Wait()

	if got := v.Counter(); got != workers*each {
		t.Errorf("Counter() = %d, want %d", got, workers*each)
	}
	if got := calls.Load(); got != workers*each {
		t.Errorf("invalidations = %d, want %d", got, workers*each)
	}

	for range workers * each {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Decrement()
		}()
	}
	wg.Wait()
	if got := v.Counter(); got != 0 {
		t.Errorf("Counter() after decrements = %d, want 0", got)
	}
}

func TestCounterViewSetCapacity(t *testing.T) {
	v := NewCounterView(nil)
	if err := v.SetCapacity(0); !errors.Is(err, flo.ErrInvalidCapacity) {
		t.Errorf("SetCapacity(0) error = %v, want %v", err, flo.ErrInvalidCapacity)
	}
	if err := v.SetCapacity(12); err != nil {
		t.Fatalf("SetCapacity(12) error = %v", err)
	}
	if !v.SetCounter(10) {
		t.Error("SetCounter(10) with capacity 12 = false, want true")
	}
}

func TestCounterViewDrawClearsDirty(t *testing.T) {
	v := NewCounterView(nil)
	if !v.NeedsDisplay() {
		t.Fatal("new view does not need display")
	}

	rec := recording.NewRecorder(230, 230)
	if err := v.Draw(flo.NewRecorderCanvas(rec)); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if v.NeedsDisplay() {
		t.Error("NeedsDisplay() after Draw = true, want false")
	}

	v.SetColors(gg.Red, gg.Green)
	if !v.NeedsDisplay() {
		t.Error("NeedsDisplay() after SetColors = false, want true")
	}
}

func TestGraphViewDrawFailureStaysDirty(t *testing.T) {
	calls := 0
	v := NewGraphView(func() { calls++ })

	v.SetPoints([]int{1})
	if calls != 1 {
		t.Errorf("invalidations = %d, want 1", calls)
	}

	rec := recording.NewRecorder(300, 250)
	err := v.Draw(flo.NewRecorderCanvas(rec))
	if !errors.Is(err, flo.ErrInsufficientData) {
		t.Fatalf("Draw() error = %v, want %v", err, flo.ErrInsufficientData)
	}
	if !v.NeedsDisplay() {
		t.Error("NeedsDisplay() after failed Draw = false, want true")
	}

	v.SetPoints([]int{1, 2, 3})
	if err := v.Draw(flo.NewRecorderCanvas(recording.NewRecorder(300, 250))); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if v.NeedsDisplay() {
		t.Error("NeedsDisplay() after Draw = true, want false")
	}
}

func TestGraphViewCopiesPoints(t *testing.T) {
	v := NewGraphView(nil)
	points := []int{1, 2, 3}
	v.SetPoints(points)
	points[0] = 99

	if got := v.Points()[0]; got != 1 {
		t.Errorf("Points()[0] = %d, want 1", got)
	}
	in := v.Input()
	in.Points[1] = 42
	if got := v.Points()[1]; got != 2 {
		t.Errorf("Points()[1] after mutating snapshot = %d, want 2", got)
	}
}
