package xgraph

import (
	"fmt"

	"xgraph/internal/graphics"
	"xgraph/internal/profiling"
	"xgraph/pkg/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// Graph renders a Store of series through a fixed line program.
type Graph struct {
	surface gpu.Surface
	ctx     gpu.Context
	program *graphics.Program
	buffers *graphics.Buffers

	store      Store
	viewport   Viewport
	clip       ClipPolicy
	background mgl32.Vec4
	axis       mgl32.Vec4
	autoClear  bool
	autoRender bool
	closed     bool

	scratch []Vertex
}

// New builds the line program on the surface's context. It fails with
// ErrNoContext when the surface has none, with ErrInvalidRange for a bad
// WithRange, and with a wrapped *graphics.ShaderError when the program cannot
// be compiled or linked.
func New(surface gpu.Surface, opts ...Option) (*Graph, error) {
	if surface == nil {
		return nil, ErrNoContext
	}
	ctx := surface.Context()
	if ctx == nil {
		return nil, ErrNoContext
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.viewport.Validate(); err != nil {
		return nil, err
	}

	program, err := graphics.NewProgram(ctx)
	if err != nil {
		return nil, fmt.Errorf("xgraph: building line program: %w", err)
	}

	return &Graph{
		surface:    surface,
		ctx:        ctx,
		program:    program,
		buffers:    graphics.NewBuffers(ctx, o.bufferPool),
		viewport:   o.viewport,
		clip:       o.clip,
		background: vec4(o.background),
		axis:       vec4(o.axis),
		autoClear:  o.autoClear,
		autoRender: o.autoRender,
	}, nil
}

func (g *Graph) changed() error {
	if g.autoRender {
		return g.Render()
	}
	return nil
}

// AddElement stores a copy of e and returns its index.
func (g *Graph) AddElement(e Element) (int, error) {
	if g.closed {
		return -1, ErrClosed
	}
	index, err := g.store.Add(e)
	if err != nil {
		return -1, err
	}
	return index, g.changed()
}

// RemoveElement deletes the series at index; later indices shift down.
func (g *Graph) RemoveElement(index int) error {
	if g.closed {
		return ErrClosed
	}
	if err := g.store.Remove(index); err != nil {
		return err
	}
	return g.changed()
}

// SetAutoClear controls whether Render clears the surface first.
func (g *Graph) SetAutoClear(enabled bool) {
	g.autoClear = enabled
}

// SetAutoRender controls whether mutations render immediately.
func (g *Graph) SetAutoRender(enabled bool) {
	g.autoRender = enabled
}

// AutoClear reports whether Render clears the surface first.
func (g *Graph) AutoClear() bool {
	return g.autoClear
}

// AutoRender reports whether mutations render immediately.
func (g *Graph) AutoRender() bool {
	return g.autoRender
}

// SetOrigin pins the origin according to the flag set.
func (g *Graph) SetOrigin(origin Origin) error {
	if g.closed {
		return ErrClosed
	}
	g.viewport.OriginX, g.viewport.OriginY = origin.Offsets()
	return g.changed()
}

// SetRange sets both visible ranges. Non-positive values are rejected and
// leave the current range in place.
func (g *Graph) SetRange(x, y float64) error {
	if g.closed {
		return ErrClosed
	}
	v := g.viewport
	v.RangeX, v.RangeY = x, y
	if err := v.Validate(); err != nil {
		return err
	}
	g.viewport = v
	return g.changed()
}

// Origin returns the current origin offsets, each -1, 0 or 1.
func (g *Graph) Origin() (x, y int) {
	return g.viewport.OriginX, g.viewport.OriginY
}

// Range returns the current visible range.
func (g *Graph) Range() (x, y float64) {
	return g.viewport.RangeX, g.viewport.RangeY
}

// Len returns the number of stored series.
func (g *Graph) Len() int {
	return g.store.Len()
}

// Series returns a copy of the series at index.
func (g *Graph) Series(index int) (Series, bool) {
	return g.store.At(index)
}

// Clear fills the surface with the background color and resets the GL
// viewport to the surface's current pixel size.
func (g *Graph) Clear() error {
	if g.closed {
		return ErrClosed
	}
	g.clear()
	return nil
}

func (g *Graph) clear() {
	width, height := g.surface.Size()
	g.ctx.ClearColor(g.background[0], g.background[1], g.background[2], g.background[3])
	g.ctx.Clear()
	g.ctx.Viewport(0, 0, width, height)
}

// Render draws every series in order followed by the two axis lines.
func (g *Graph) Render() error {
	if g.closed {
		return ErrClosed
	}
	defer profiling.Track("xgraph.Render")()

	if g.autoClear {
		g.clear()
	}
	g.ctx.UseProgram(g.program.ID)

	if err := g.drawSeries(); err != nil {
		return err
	}
	g.drawAxes()
	return nil
}

func (g *Graph) drawSeries() error {
	defer profiling.Track("xgraph.drawSeries")()

	for i, s := range g.store.series {
		vs, err := Transform(g.scratch[:0], s.Data, s.Color, g.viewport, g.clip)
		if err != nil {
			return fmt.Errorf("xgraph: series %d: %w", i, err)
		}
		g.scratch = vs
		g.buffers.Draw(g.program, i, vs)
	}
	g.buffers.Trim(g.store.Len())
	return nil
}

func (g *Graph) drawAxes() {
	defer profiling.Track("xgraph.drawAxes")()

	ox, oy := float32(g.viewport.OriginX), float32(g.viewport.OriginY)
	g.buffers.Draw(g.program, graphics.Transient, []Vertex{
		{Pos: mgl32.Vec2{ox, -1}, Color: g.axis},
		{Pos: mgl32.Vec2{ox, 1}, Color: g.axis},
	})
	g.buffers.Draw(g.program, graphics.Transient, []Vertex{
		{Pos: mgl32.Vec2{-1, oy}, Color: g.axis},
		{Pos: mgl32.Vec2{1, oy}, Color: g.axis},
	})
}

// Close releases the program and any pooled buffers and empties the store.
// The Graph cannot be used afterwards. Closing twice is a no-op.
func (g *Graph) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.store.Clear()
	g.buffers.Close()
	g.program.Delete(g.ctx)
	g.scratch = nil
	return nil
}
