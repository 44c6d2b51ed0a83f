package flo

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor converts a configuration string into a color.
//
// Accepted forms are hex notation ("#f80", "#f80c", "#ff8800", "#ff880080", with or
// without the leading '#') and SVG 1.1 color names such as "orange" or
// "steelblue", matched case-insensitively.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return gg.RGBA{}, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
	}
	return gg.Hex(hex), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
