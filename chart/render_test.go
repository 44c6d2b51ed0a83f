package chart

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/gogpu/flo"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func record(t *testing.T, w, h int, in Input, opts ...Option) (*recording.Recording, error) {
	t.Helper()
	rec := recording.NewRecorder(w, h)
	err := Render(flo.NewRecorderCanvas(rec), in, opts...)
	return rec.FinishRecording(), err
}

func countCommands(r *recording.Recording) map[recording.CommandType]int {
	counts := make(map[recording.CommandType]int)
	for _, cmd := range r.Commands() {
		counts[cmd.Type()]++
	}
	return counts
}

func TestRenderCommands(t *testing.T) {
	r, err := record(t, 300, 250, DefaultInput())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	counts := countCommands(r)
	want := map[recording.CommandType]int{
		recording.CmdFillPath:   3, // background, wash, dots
		recording.CmdStrokePath: 3, // thin line, thick line, guides
		recording.CmdSetClip:    2, // panel, wash region
		recording.CmdSave:       2,
		recording.CmdRestore:    2,
		recording.CmdDrawText:   0,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("%s commands = %d, want %d", typ, counts[typ], n)
		}
	}

	var widths []float64
	for _, cmd := range r.Commands() {
		if s, ok := cmd.(recording.StrokePathCommand); ok {
			widths = append(widths, s.Stroke.Width)
		}
	}
	wantWidths := []float64{1, 2, 1}
	if len(widths) != len(wantWidths) {
		t.Fatalf("stroke widths = %v, want %v", widths, wantWidths)
	}
	for i := range widths {
		if widths[i] != wantWidths[i] {
			t.Errorf("stroke %d width = %v, want %v", i, widths[i], wantWidths[i])
		}
	}
}

func TestRenderLabels(t *testing.T) {
	face, err := flo.DefaultFace(12)
	if err != nil {
		t.Fatalf("DefaultFace() error = %v", err)
	}

	in := DefaultInput()
	r, err := record(t, 300, 250, in, WithLabels(Labels{
		Face:    face,
		Columns: []string{"S", "M", "T", "W", "T", "F", "S"},
	}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// title, average, max, zero and one per column
	if got, want := countCommands(r)[recording.CmdDrawText], 4+len(in.Points); got != want {
		t.Errorf("DrawText commands = %d, want %d", got, want)
	}

	var texts []string
	for _, cmd := range r.Commands() {
		if d, ok := cmd.(recording.DrawTextCommand); ok {
			texts = append(texts, d.Text)
		}
	}
	if texts[0] != DefaultTitle {
		t.Errorf("title = %q, want %q", texts[0], DefaultTitle)
	}
	if texts[1] != "Average: 4.6" {
		t.Errorf("average = %q, want %q", texts[1], "Average: 4.6")
	}
	if texts[2] != "8" {
		t.Errorf("max label = %q, want %q", texts[2], "8")
	}
}

func TestRenderLabelsColumnMismatchSkipped(t *testing.T) {
	face, err := flo.DefaultFace(12)
	if err != nil {
		t.Fatalf("DefaultFace() error = %v", err)
	}

	r, err := record(t, 300, 250, DefaultInput(), WithLabels(Labels{
		Face:    face,
		Title:   "Steps",
		Columns: []string{"a", "b"},
	}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := countCommands(r)[recording.CmdDrawText]; got != 4 {
		t.Errorf("DrawText commands = %d, want 4", got)
	}
}

func TestRenderRejectsWithoutDrawing(t *testing.T) {
	tests := []struct {
		name   string
		points []int
		want   error
	}{
		{"empty", nil, flo.ErrInsufficientData},
		{"single", []int{3}, flo.ErrInsufficientData},
		{"zeros", []int{0, 0}, flo.ErrDegenerateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInput()
			in.Points = tt.points
			r, err := record(t, 300, 250, in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Render() error = %v, want %v", err, tt.want)
			}
			if n := len(r.Commands()); n != 0 {
				t.Errorf("recorded %d commands on failure, want 0", n)
			}
		})
	}
}

func TestRenderSurfaceUnavailable(t *testing.T) {
	var dc *gg.Context
	if err := Render(dc, DefaultInput()); !errors.Is(err, flo.ErrSurfaceUnavailable) {
		t.Errorf("Render(nil context) error = %v, want %v", err, flo.ErrSurfaceUnavailable)
	}
	if err := Render(nil, DefaultInput()); !errors.Is(err, flo.ErrSurfaceUnavailable) {
		t.Errorf("Render(nil) error = %v, want %v", err, flo.ErrSurfaceUnavailable)
	}
	rec := recording.NewRecorder(0, 100)
	if err := Render(flo.NewRecorderCanvas(rec), DefaultInput()); !errors.Is(err, flo.ErrSurfaceUnavailable) {
		t.Errorf("Render(0x100) error = %v, want %v", err, flo.ErrSurfaceUnavailable)
	}
}

func rasterize(t *testing.T, in Input) *image.RGBA {
	t.Helper()
	dc := gg.NewContext(300, 250)
	defer dc.Close()
	if err := Render(dc, in); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		t.Fatalf("Image() type = %T, want *image.RGBA", dc.Image())
	}
	return img
}

func TestRenderDeterministic(t *testing.T) {
	a := rasterize(t, DefaultInput())
	b := rasterize(t, DefaultInput())
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same input differ")
	}
}

func TestRenderGradientDirection(t *testing.T) {
	img := rasterize(t, DefaultInput())

	top := img.RGBAAt(150, 2)
	if top.R <= top.G {
		t.Errorf("top pixel = %v, want red dominant", top)
	}
	bottom := img.RGBAAt(150, 247)
	if bottom.G <= bottom.R {
		t.Errorf("bottom pixel = %v, want green dominant", bottom)
	}
}
