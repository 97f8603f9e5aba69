package graphics

import (
	"xgraph/pkg/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// Interleaved vertex layout, in floats: x, y, r, g, b, a.
const (
	PositionSize = 2
	ColorSize    = 4
	VertexStride = PositionSize + ColorSize
)

// Vertex is one line-strip vertex in normalized device coordinates.
type Vertex struct {
	Pos   mgl32.Vec2
	Color mgl32.Vec4
}

// Pack appends the interleaved form of vs to dst.
func Pack(dst []float32, vs []Vertex) []float32 {
	for _, v := range vs {
		dst = append(dst, v.Pos[0], v.Pos[1], v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}
	return dst
}

// Transient is the slot for buffers that never outlive a single draw.
const Transient = -1

type pooledBuffer struct {
	id     gpu.Buffer
	floats int
}

// Buffers uploads vertex data for draw calls. By default every draw gets a
// fresh buffer that is deleted right after. With pooling enabled, buffers are
// kept per slot and reused while their size does not change.
type Buffers struct {
	ctx     gpu.Context
	pooled  bool
	pool    []pooledBuffer
	scratch []float32
}

func NewBuffers(ctx gpu.Context, pooled bool) *Buffers {
	return &Buffers{ctx: ctx, pooled: pooled}
}

// Upload creates a buffer holding data with a static usage hint and leaves
// the array binding cleared.
func (b *Buffers) Upload(data []float32) gpu.Buffer {
	buf := b.ctx.CreateBuffer()
	b.ctx.BindBuffer(buf)
	b.ctx.BufferData(data, gpu.StaticDraw)
	b.ctx.BindBuffer(gpu.NoBuffer)
	return buf
}

func (b *Buffers) acquire(slot int, data []float32) gpu.Buffer {
	if !b.pooled || slot < 0 {
		return b.Upload(data)
	}
	for len(b.pool) <= slot {
		b.pool = append(b.pool, pooledBuffer{})
	}
	pb := &b.pool[slot]
	if pb.id == gpu.NoBuffer {
		pb.id = b.ctx.CreateBuffer()
		pb.floats = -1
	}
	b.ctx.BindBuffer(pb.id)
	if pb.floats == len(data) {
		b.ctx.BufferSubData(data)
	} else {
		b.ctx.BufferData(data, gpu.DynamicDraw)
		pb.floats = len(data)
	}
	b.ctx.BindBuffer(gpu.NoBuffer)
	return pb.id
}

func (b *Buffers) release(slot int, buf gpu.Buffer) {
	if !b.pooled || slot < 0 {
		b.ctx.DeleteBuffer(buf)
	}
}

// Draw packs vs, uploads it and issues one line-strip draw through p.
// Empty input draws nothing.
func (b *Buffers) Draw(p *Program, slot int, vs []Vertex) {
	if len(vs) == 0 {
		return
	}
	b.scratch = Pack(b.scratch[:0], vs)
	buf := b.acquire(slot, b.scratch)

	ctx := b.ctx
	ctx.BindBuffer(buf)
	enableAttrib(ctx, p.Color, ColorSize, PositionSize)
	enableAttrib(ctx, p.Position, PositionSize, 0)
	ctx.DrawLineStrip(0, len(vs))
	disableAttrib(ctx, p.Color)
	disableAttrib(ctx, p.Position)
	ctx.BindBuffer(gpu.NoBuffer)
	ctx.Flush()

	b.release(slot, buf)
}

// enableAttrib points a used attribute at the interleaved layout. Attributes
// the program does not declare are skipped.
func enableAttrib(ctx gpu.Context, a gpu.Attrib, size, offset int) {
	if a < 0 {
		return
	}
	ctx.EnableVertexAttribArray(a)
	ctx.VertexAttribPointer(a, size, VertexStride, offset)
}

func disableAttrib(ctx gpu.Context, a gpu.Attrib) {
	if a >= 0 {
		ctx.DisableVertexAttribArray(a)
	}
}

// Trim deletes pooled buffers for slots at or beyond n.
func (b *Buffers) Trim(n int) {
	if n < 0 {
		n = 0
	}
	for i := n; i < len(b.pool); i++ {
		if b.pool[i].id != gpu.NoBuffer {
			b.ctx.DeleteBuffer(b.pool[i].id)
		}
	}
	if n < len(b.pool) {
		b.pool = b.pool[:n]
	}
}

// Pooled reports how many pooled buffers are currently allocated.
func (b *Buffers) Pooled() int {
	n := 0
	for _, pb := range b.pool {
		if pb.id != gpu.NoBuffer {
			n++
		}
	}
	return n
}

// Close deletes every pooled buffer.
func (b *Buffers) Close() {
	b.Trim(0)
	b.scratch = nil
}
