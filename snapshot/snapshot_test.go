package snapshot

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/chart"
	"github.com/gogpu/flo/encode"
	"github.com/gogpu/flo/gauge"
)

func TestChartPNG(t *testing.T) {
	data, err := Chart(chart.DefaultInput(), Size{300, 250}, encode.PNG)
	if err != nil {
		t.Fatalf("Chart() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 250 {
		t.Errorf("bounds = %v, want 300x250", b)
	}
}

func TestGaugePNG(t *testing.T) {
	data, err := Gauge(gauge.DefaultInput(), Size{230, 230}, encode.PNG)
	if err != nil {
		t.Fatalf("Gauge() error = %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
}

func TestErrorsReturnNoImage(t *testing.T) {
	in := gauge.DefaultInput()
	in.Capacity = 0
	data, err := Gauge(in, Size{230, 230}, encode.PNG)
	if !errors.Is(err, flo.ErrInvalidCapacity) {
		t.Fatalf("Gauge() error = %v, want %v", err, flo.ErrInvalidCapacity)
	}
	if data != nil {
		t.Errorf("Gauge() returned %d bytes on failure", len(data))
	}

	if _, err := Chart(chart.DefaultInput(), Size{0, 10}, encode.PNG); !errors.Is(err, flo.ErrSurfaceUnavailable) {
		t.Errorf("Chart(0x10) error = %v, want %v", err, flo.ErrSurfaceUnavailable)
	}
}

func TestCommands(t *testing.T) {
	r, err := GaugeCommands(gauge.DefaultInput(), Size{230, 230})
	if err != nil {
		t.Fatalf("GaugeCommands() error = %v", err)
	}
	if len(r.Commands()) == 0 {
		t.Error("GaugeCommands() recorded nothing")
	}

	if _, err := ChartCommands(chart.Input{Points: []int{0, 0}}, Size{300, 250}); !errors.Is(err, flo.ErrDegenerateRange) {
		t.Errorf("ChartCommands() error = %v, want %v", err, flo.ErrDegenerateRange)
	}
}
