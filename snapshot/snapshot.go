// Package snapshot renders a widget into an encoded image or a command
// recording in one call.
package snapshot

import (
	"bytes"
	"fmt"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/chart"
	"github.com/gogpu/flo/encode"
	"github.com/gogpu/flo/gauge"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Size is the pixel size of a snapshot.
type Size struct {
	Width  int
	Height int
}

// Chart renders a chart and encodes it as f.
func Chart(in chart.Input, size Size, f encode.Format, opts ...chart.Option) ([]byte, error) {
	return rasterize(size, f, func(cv flo.Canvas) error {
		return chart.Render(cv, in, opts...)
	})
}

// Gauge renders a gauge and encodes it as f.
func Gauge(in gauge.Input, size Size, f encode.Format, opts ...gauge.Option) ([]byte, error) {
	return rasterize(size, f, func(cv flo.Canvas) error {
		return gauge.Render(cv, in, opts...)
	})
}

// ChartCommands records the drawing commands of a chart.
func ChartCommands(in chart.Input, size Size, opts ...chart.Option) (*recording.Recording, error) {
	return record(size, func(cv flo.Canvas) error {
		return chart.Render(cv, in, opts...)
	})
}

// GaugeCommands records the drawing commands of a gauge.
func GaugeCommands(in gauge.Input, size Size, opts ...gauge.Option) (*recording.Recording, error) {
	return record(size, func(cv flo.Canvas) error {
		return gauge.Render(cv, in, opts...)
	})
}

func rasterize(size Size, f encode.Format, draw func(flo.Canvas) error) ([]byte, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", flo.ErrSurfaceUnavailable, size.Width, size.Height)
	}
	dc := gg.NewContext(size.Width, size.Height)
	defer dc.Close()

	if err := draw(dc); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(&buf, dc.Image(), f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func record(size Size, draw func(flo.Canvas) error) (*recording.Recording, error) {
	rec := recording.NewRecorder(size.Width, size.Height)
	if err := draw(flo.NewRecorderCanvas(rec)); err != nil {
		return nil, err
	}
	return rec.FinishRecording(), nil
}
