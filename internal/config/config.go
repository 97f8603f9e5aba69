package config

import (
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/image/colornames"
)

// RenderSettings holds process-wide defaults applied to new graphs
type RenderSettings struct {
	mu           sync.RWMutex
	rangeX       float64
	rangeY       float64
	background   color.Color
	axis         color.Color
	bufferPool   bool
	clipBothAxes bool
}

var globalRenderSettings = &RenderSettings{
	rangeX:     10,
	rangeY:     10,
	background: colornames.White,
	axis:       colornames.Black,
}

// Settings is a point-in-time copy of the render defaults
type Settings struct {
	RangeX, RangeY float64
	Background     color.Color
	Axis           color.Color
	BufferPool     bool
	ClipBothAxes   bool
}

// Snapshot returns the current defaults
func Snapshot() Settings {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return Settings{
		RangeX:       globalRenderSettings.rangeX,
		RangeY:       globalRenderSettings.rangeY,
		Background:   globalRenderSettings.background,
		Axis:         globalRenderSettings.axis,
		BufferPool:   globalRenderSettings.bufferPool,
		ClipBothAxes: globalRenderSettings.clipBothAxes,
	}
}

// SetDefaultRange sets the starting range; both values must be positive
func SetDefaultRange(x, y float64) error {
	if !(x > 0) || !(y > 0) {
		return fmt.Errorf("config: range must be positive, got (%v, %v)", x, y)
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.rangeX = x
	globalRenderSettings.rangeY = y
	return nil
}

// SetBackground sets the clear color; nil restores white
func SetBackground(c color.Color) {
	if c == nil {
		c = colornames.White
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.background = c
}

// SetAxisColor sets the crosshair color; nil restores black
func SetAxisColor(c color.Color) {
	if c == nil {
		c = colornames.Black
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.axis = c
}

// SetBufferPool toggles buffer reuse for new graphs
func SetBufferPool(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.bufferPool = enabled
}

// SetClipBothAxes selects the clipping test for new graphs
func SetClipBothAxes(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.clipBothAxes = enabled
}

// Reset restores the built-in defaults
func Reset() {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.rangeX = 10
	globalRenderSettings.rangeY = 10
	globalRenderSettings.background = colornames.White
	globalRenderSettings.axis = colornames.Black
	globalRenderSettings.bufferPool = false
	globalRenderSettings.clipBothAxes = false
}
