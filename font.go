package flo

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFontOnce   sync.Once
	defaultFontSource *text.FontSource
	defaultFontErr    error
)

// DefaultFace returns a Go Regular face at the given size in points.
// The font source is parsed once and shared by every caller.
func DefaultFace(size float64) (text.Face, error) {
	defaultFontOnce.Do(func() {
		defaultFontSource, defaultFontErr = text.NewFontSource(goregular.TTF)
	})
	if defaultFontErr != nil {
		return nil, fmt.Errorf("flo: load default font: %w", defaultFontErr)
	}
	return defaultFontSource.Face(size), nil
}
