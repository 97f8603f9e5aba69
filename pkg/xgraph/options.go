package xgraph

import (
	"image/color"

	"xgraph/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

type options struct {
	viewport   Viewport
	clip       ClipPolicy
	bufferPool bool
	background color.Color
	axis       color.Color
	autoClear  bool
	autoRender bool
}

func defaultOptions() options {
	s := config.Snapshot()
	o := options{
		viewport:   Viewport{RangeX: s.RangeX, RangeY: s.RangeY},
		bufferPool: s.BufferPool,
		background: s.Background,
		axis:       s.Axis,
	}
	if s.ClipBothAxes {
		o.clip = ClipBoth
	}
	return o
}

// Option configures a Graph at construction. Unset options fall back to the
// process defaults in the config package.
type Option func(*options)

// WithRange sets the initial visible range.
func WithRange(x, y float64) Option {
	return func(o *options) {
		o.viewport.RangeX = x
		o.viewport.RangeY = y
	}
}

// WithOrigin sets the initial origin placement.
func WithOrigin(origin Origin) Option {
	return func(o *options) {
		o.viewport.OriginX, o.viewport.OriginY = origin.Offsets()
	}
}

// WithClipPolicy selects how samples are clipped.
func WithClipPolicy(p ClipPolicy) Option {
	return func(o *options) {
		o.clip = p
	}
}

// WithBufferPool keeps one GPU buffer per series across renders instead of
// allocating a fresh buffer for every draw.
func WithBufferPool(enabled bool) Option {
	return func(o *options) {
		o.bufferPool = enabled
	}
}

// WithBackground sets the color Clear fills the surface with.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithAxisColor sets the color of the two axis lines.
func WithAxisColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.axis = c
		}
	}
}

// WithAutoClear sets the initial auto-clear flag.
func WithAutoClear(enabled bool) Option {
	return func(o *options) {
		o.autoClear = enabled
	}
}

// WithAutoRender sets the initial auto-render flag.
func WithAutoRender(enabled bool) Option {
	return func(o *options) {
		o.autoRender = enabled
	}
}

func vec4(c color.Color) mgl32.Vec4 {
	e := ElementColor(c)
	return mgl32.Vec4{float32(e[0] / 255), float32(e[1] / 255), float32(e[2] / 255), float32(e[3] / 255)}
}
