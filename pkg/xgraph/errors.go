package xgraph

import "errors"

var (
	// ErrInvalidRange is returned when a visible range is not positive.
	ErrInvalidRange = errors.New("xgraph: range must be positive")
	// ErrIndexOutOfRange is returned when removing a series that does not exist.
	ErrIndexOutOfRange = errors.New("xgraph: series index out of range")
	// ErrOddLength is returned for sample data that is not made of x,y pairs.
	ErrOddLength = errors.New("xgraph: series data must hold x,y pairs")
	// ErrNoContext is returned by New when the surface has no GPU context.
	ErrNoContext = errors.New("xgraph: surface has no GPU context")
	// ErrClosed is returned by every operation on a closed Graph.
	ErrClosed = errors.New("xgraph: graph is closed")
)
