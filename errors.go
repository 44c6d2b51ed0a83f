package flo

import "errors"

// Sentinel errors returned by the renderers. All of them are detected
// before any drawing command is issued, so a failed render leaves the
// canvas untouched. Match them with errors.Is; callers usually receive
// them wrapped with the offending values.
var (
	// ErrInsufficientData is returned when a chart has fewer than two points.
	ErrInsufficientData = errors.New("flo: insufficient data points")

	// ErrDegenerateRange is returned when every chart point is zero.
	ErrDegenerateRange = errors.New("flo: degenerate value range")

	// ErrNegativeSample is returned when a chart point is below zero.
	ErrNegativeSample = errors.New("flo: negative sample")

	// ErrInvalidCapacity is returned when a gauge capacity is not positive.
	ErrInvalidCapacity = errors.New("flo: invalid capacity")

	// ErrCounterOutOfRange is returned by the strict counter policy when the
	// counter lies outside [0, capacity].
	ErrCounterOutOfRange = errors.New("flo: counter out of range")

	// ErrSurfaceUnavailable is returned when the canvas is missing or has
	// no drawable area.
	ErrSurfaceUnavailable = errors.New("flo: surface unavailable")

	// ErrUnknownColor is returned by ParseColor for unrecognized input.
	ErrUnknownColor = errors.New("flo: unknown color")
)
