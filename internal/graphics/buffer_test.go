package graphics

import (
	"slices"
	"strings"
	"testing"

	"xgraph/pkg/gpu"
	"xgraph/pkg/gpu/gputest"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestProgram(t *testing.T, ctx *gputest.Recorder) *Program {
	t.Helper()
	p, err := NewProgram(ctx)
	if err != nil {
		t.Fatalf("NewProgram failed: %v", err)
	}
	return p
}

var red = mgl32.Vec4{1, 0, 0, 1}

func TestPack(t *testing.T) {
	vs := []Vertex{
		{Pos: mgl32.Vec2{0, 0}, Color: red},
		{Pos: mgl32.Vec2{0.5, -0.5}, Color: red},
	}
	got := Pack(nil, vs)
	want := []float32{0, 0, 1, 0, 0, 1, 0.5, -0.5, 1, 0, 0, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTransientDraw(t *testing.T) {
	ctx := gputest.New(PositionAttrib, ColorAttrib)
	p := newTestProgram(t, ctx)
	b := NewBuffers(ctx, false)

	vs := []Vertex{
		{Pos: mgl32.Vec2{-1, 0}, Color: red},
		{Pos: mgl32.Vec2{1, 0}, Color: red},
	}
	b.Draw(p, 0, vs)

	if len(ctx.Draws) != 1 {
		t.Fatalf("Expected 1 draw, got %d", len(ctx.Draws))
	}
	d := ctx.Draws[0]
	if d.Count != 2 {
		t.Errorf("Expected 2 vertices, got %d", d.Count)
	}
	if len(d.Vertices) != 2*VertexStride {
		t.Errorf("Expected %d floats uploaded, got %d", 2*VertexStride, len(d.Vertices))
	}
	if ptr := d.Attribs[p.Position]; ptr != (gputest.Pointer{Size: 2, Stride: 6, Offset: 0}) {
		t.Errorf("Unexpected position pointer %+v", ptr)
	}
	if ptr := d.Attribs[p.Color]; ptr != (gputest.Pointer{Size: 4, Stride: 6, Offset: 2}) {
		t.Errorf("Unexpected color pointer %+v", ptr)
	}
	if ctx.LiveBuffers() != 0 {
		t.Errorf("Expected transient buffer to be deleted, %d alive", ctx.LiveBuffers())
	}
}

func TestDrawSkipsUnusedAttribute(t *testing.T) {
	ctx := gputest.New(PositionAttrib)
	p := newTestProgram(t, ctx)
	if p.Color != gpu.Unused {
		t.Fatalf("Expected color attribute to be unused, got %d", p.Color)
	}
	b := NewBuffers(ctx, false)
	ctx.Reset()

	b.Draw(p, Transient, []Vertex{{Color: red}, {Pos: mgl32.Vec2{1, 1}, Color: red}})

	if len(ctx.Draws) != 1 {
		t.Fatalf("Expected 1 draw, got %d", len(ctx.Draws))
	}
	if _, ok := ctx.Draws[0].Attribs[gpu.Unused]; ok {
		t.Errorf("Unused attribute must not be enabled for the draw")
	}
	if ptr := ctx.Draws[0].Attribs[p.Position]; ptr != (gputest.Pointer{Size: 2, Stride: 6, Offset: 0}) {
		t.Errorf("Unexpected position pointer %+v", ptr)
	}
	for _, call := range ctx.Calls {
		if strings.Contains(call, "VertexAttribArray -1") || strings.HasPrefix(call, "VertexAttribPointer -1") {
			t.Errorf("Unexpected call for unused attribute: %q", call)
		}
	}
}

func TestDrawEmptyIsNoop(t *testing.T) {
	ctx := gputest.New(PositionAttrib, ColorAttrib)
	p := newTestProgram(t, ctx)
	b := NewBuffers(ctx, false)
	ctx.Reset()

	b.Draw(p, 0, nil)
	if len(ctx.Calls) != 0 {
		t.Errorf("Expected no GPU calls, got %v", ctx.Calls)
	}
}

func TestPooledBuffersReuse(t *testing.T) {
	ctx := gputest.New(PositionAttrib, ColorAttrib)
	p := newTestProgram(t, ctx)
	b := NewBuffers(ctx, true)

	vs := []Vertex{{Color: red}, {Pos: mgl32.Vec2{1, 1}, Color: red}}
	b.Draw(p, 0, vs)
	first := ctx.Draws[0].Buffer
	b.Draw(p, 0, vs)
	if ctx.Draws[1].Buffer != first {
		t.Errorf("Expected buffer %d to be reused, got %d", first, ctx.Draws[1].Buffer)
	}
	if !slices.Contains(ctx.Calls, "BufferSubData 12") {
		t.Errorf("Expected same-size upload to use BufferSubData")
	}

	b.Draw(p, 1, vs[:1])
	if b.Pooled() != 2 {
		t.Errorf("Expected 2 pooled buffers, got %d", b.Pooled())
	}

	// Transient slot bypasses the pool.
	b.Draw(p, Transient, vs)
	if ctx.LiveBuffers() != 2 {
		t.Errorf("Expected 2 live buffers, got %d", ctx.LiveBuffers())
	}

	b.Trim(1)
	if b.Pooled() != 1 || ctx.LiveBuffers() != 1 {
		t.Errorf("Expected 1 pooled buffer after trim, pooled=%d live=%d", b.Pooled(), ctx.LiveBuffers())
	}

	b.Close()
	if ctx.LiveBuffers() != 0 {
		t.Errorf("Expected no live buffers after close, got %d", ctx.LiveBuffers())
	}
}

func BenchmarkPack(b *testing.B) {
	vs := make([]Vertex, 10000)
	for i := range vs {
		vs[i] = Vertex{Pos: mgl32.Vec2{float32(i), float32(i)}, Color: red}
	}
	dst := make([]float32, 0, len(vs)*VertexStride)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = Pack(dst[:0], vs)
	}
}
