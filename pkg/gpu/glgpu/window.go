package glgpu

import (
	"fmt"

	"xgraph/pkg/gpu"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSurface exposes a glfw window's framebuffer as a gpu.Surface.
type WindowSurface struct {
	window *glfw.Window
	ctx    *Context
}

var _ gpu.Surface = (*WindowSurface)(nil)

// NewWindowSurface makes the window's context current and wraps it.
func NewWindowSurface(window *glfw.Window) (*WindowSurface, error) {
	if window == nil {
		return nil, fmt.Errorf("glgpu: nil window")
	}
	window.MakeContextCurrent()
	ctx, err := New()
	if err != nil {
		return nil, fmt.Errorf("glgpu: could not initialize OpenGL: %v", err)
	}
	return &WindowSurface{window: window, ctx: ctx}, nil
}

// Size returns the framebuffer size, which differs from the window size on
// high-DPI displays.
func (s *WindowSurface) Size() (int, int) {
	return s.window.GetFramebufferSize()
}

func (s *WindowSurface) Context() gpu.Context {
	if s.ctx == nil {
		return nil
	}
	return s.ctx
}

// Adapter returns the GL adapter behind Context, for toggling CheckErrors.
func (s *WindowSurface) Adapter() *Context {
	return s.ctx
}

// Release frees the adapter's GL objects. The window itself is not destroyed.
func (s *WindowSurface) Release() {
	if s.ctx != nil {
		s.ctx.Release()
		s.ctx = nil
	}
}
