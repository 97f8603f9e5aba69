// Package gputest provides an in-memory gpu.Context that records every call,
// for testing code that draws through gpu.Context without a real GPU.
package gputest

import (
	"fmt"
	"slices"

	"xgraph/pkg/gpu"
)

// Draw is one line-strip submission along with the data of the buffer that
// was bound when it was issued.
type Draw struct {
	Buffer   gpu.Buffer
	First    int
	Count    int
	Vertices []float32
	Attribs  map[gpu.Attrib]Pointer
}

// Pointer is a recorded VertexAttribPointer call.
type Pointer struct {
	Size, Stride, Offset int
}

// Recorder is a fake gpu.Context. Zero value is not usable; use New.
type Recorder struct {
	// FailCompile makes shaders of the given stage fail compilation.
	FailCompile map[gpu.ShaderStage]bool
	// FailLink makes every LinkProgram fail.
	FailLink bool
	// Attribs maps attribute names to locations; missing names resolve to gpu.Unused.
	Attribs map[string]gpu.Attrib

	Calls  []string
	Draws  []Draw
	Clears int

	next       uint32
	shaders    map[gpu.Shader]*shaderState
	programs   map[gpu.Program]*programState
	buffers    map[gpu.Buffer][]float32
	bound      gpu.Buffer
	enabled    map[gpu.Attrib]bool
	pointers   map[gpu.Attrib]Pointer
	viewport   [4]int
	clearColor [4]float32
	current    gpu.Program
}

type shaderState struct {
	stage    gpu.ShaderStage
	source   string
	compiled bool
	log      string
}

type programState struct {
	shaders []gpu.Shader
	linked  bool
	log     string
}

var _ gpu.Context = (*Recorder)(nil)

// New returns a recorder whose programs expose the given attribute names at
// consecutive locations starting at 0.
func New(attribs ...string) *Recorder {
	r := &Recorder{
		FailCompile: make(map[gpu.ShaderStage]bool),
		Attribs:     make(map[string]gpu.Attrib),
		shaders:     make(map[gpu.Shader]*shaderState),
		programs:    make(map[gpu.Program]*programState),
		buffers:     make(map[gpu.Buffer][]float32),
		enabled:     make(map[gpu.Attrib]bool),
		pointers:    make(map[gpu.Attrib]Pointer),
	}
	for i, name := range attribs {
		r.Attribs[name] = gpu.Attrib(i)
	}
	return r
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) id() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) CreateShader(stage gpu.ShaderStage) gpu.Shader {
	s := gpu.Shader(r.id())
	r.shaders[s] = &shaderState{stage: stage}
	r.record("CreateShader %s", stage)
	return s
}

func (r *Recorder) ShaderSource(s gpu.Shader, source string) {
	if st, ok := r.shaders[s]; ok {
		st.source = source
	}
	r.record("ShaderSource %d", s)
}

func (r *Recorder) CompileShader(s gpu.Shader) {
	r.record("CompileShader %d", s)
	st, ok := r.shaders[s]
	if !ok {
		return
	}
	if r.FailCompile[st.stage] || st.source == "" {
		st.log = fmt.Sprintf("ERROR: 0:1: %s shader syntax error", st.stage)
		return
	}
	st.compiled = true
}

func (r *Recorder) ShaderCompiled(s gpu.Shader) bool {
	st, ok := r.shaders[s]
	return ok && st.compiled
}

func (r *Recorder) ShaderInfoLog(s gpu.Shader) string {
	if st, ok := r.shaders[s]; ok {
		return st.log
	}
	return ""
}

func (r *Recorder) DeleteShader(s gpu.Shader) {
	delete(r.shaders, s)
	r.record("DeleteShader %d", s)
}

func (r *Recorder) CreateProgram() gpu.Program {
	p := gpu.Program(r.id())
	r.programs[p] = &programState{}
	r.record("CreateProgram")
	return p
}

func (r *Recorder) AttachShader(p gpu.Program, s gpu.Shader) {
	if ps, ok := r.programs[p]; ok {
		ps.shaders = append(ps.shaders, s)
	}
	r.record("AttachShader %d %d", p, s)
}

func (r *Recorder) LinkProgram(p gpu.Program) {
	r.record("LinkProgram %d", p)
	ps, ok := r.programs[p]
	if !ok {
		return
	}
	if r.FailLink {
		ps.log = "error: linking failed"
		return
	}
	for _, s := range ps.shaders {
		if st, ok := r.shaders[s]; !ok || !st.compiled {
			ps.log = "error: attached shader not compiled"
			return
		}
	}
	ps.linked = true
}

func (r *Recorder) ProgramLinked(p gpu.Program) bool {
	ps, ok := r.programs[p]
	return ok && ps.linked
}

func (r *Recorder) ProgramInfoLog(p gpu.Program) string {
	if ps, ok := r.programs[p]; ok {
		return ps.log
	}
	return ""
}

func (r *Recorder) UseProgram(p gpu.Program) {
	r.current = p
	r.record("UseProgram %d", p)
}

func (r *Recorder) DeleteProgram(p gpu.Program) {
	delete(r.programs, p)
	if r.current == p {
		r.current = 0
	}
	r.record("DeleteProgram %d", p)
}

func (r *Recorder) AttribLocation(p gpu.Program, name string) gpu.Attrib {
	if loc, ok := r.Attribs[name]; ok {
		return loc
	}
	return gpu.Unused
}

func (r *Recorder) CreateBuffer() gpu.Buffer {
	b := gpu.Buffer(r.id())
	r.buffers[b] = nil
	r.record("CreateBuffer")
	return b
}

func (r *Recorder) BindBuffer(b gpu.Buffer) {
	r.bound = b
	r.record("BindBuffer %d", b)
}

func (r *Recorder) BufferData(data []float32, usage gpu.Usage) {
	if r.bound != gpu.NoBuffer {
		r.buffers[r.bound] = slices.Clone(data)
	}
	r.record("BufferData %d", len(data))
}

func (r *Recorder) BufferSubData(data []float32) {
	if r.bound != gpu.NoBuffer {
		copy(r.buffers[r.bound], data)
	}
	r.record("BufferSubData %d", len(data))
}

func (r *Recorder) DeleteBuffer(b gpu.Buffer) {
	delete(r.buffers, b)
	if r.bound == b {
		r.bound = gpu.NoBuffer
	}
	r.record("DeleteBuffer %d", b)
}

func (r *Recorder) EnableVertexAttribArray(a gpu.Attrib) {
	r.enabled[a] = true
	r.record("EnableVertexAttribArray %d", a)
}

func (r *Recorder) DisableVertexAttribArray(a gpu.Attrib) {
	delete(r.enabled, a)
	r.record("DisableVertexAttribArray %d", a)
}

func (r *Recorder) VertexAttribPointer(a gpu.Attrib, size, stride, offset int) {
	r.pointers[a] = Pointer{Size: size, Stride: stride, Offset: offset}
	r.record("VertexAttribPointer %d %d %d %d", a, size, stride, offset)
}

func (r *Recorder) ClearColor(cr, cg, cb, ca float32) {
	r.clearColor = [4]float32{cr, cg, cb, ca}
	r.record("ClearColor")
}

func (r *Recorder) Clear() {
	r.Clears++
	r.record("Clear")
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.viewport = [4]int{x, y, width, height}
	r.record("Viewport %d %d %d %d", x, y, width, height)
}

func (r *Recorder) DrawLineStrip(first, count int) {
	d := Draw{
		Buffer:   r.bound,
		First:    first,
		Count:    count,
		Vertices: slices.Clone(r.buffers[r.bound]),
		Attribs:  make(map[gpu.Attrib]Pointer),
	}
	for a := range r.enabled {
		d.Attribs[a] = r.pointers[a]
	}
	r.Draws = append(r.Draws, d)
	r.record("DrawLineStrip %d %d", first, count)
}

func (r *Recorder) Flush() {
	r.record("Flush")
}

// LiveBuffers reports how many buffers have been created and not deleted.
func (r *Recorder) LiveBuffers() int {
	return len(r.buffers)
}

// LivePrograms reports how many programs have been created and not deleted.
func (r *Recorder) LivePrograms() int {
	return len(r.programs)
}

// LiveShaders reports how many shaders have been created and not deleted.
func (r *Recorder) LiveShaders() int {
	return len(r.shaders)
}

// LastViewport returns the last viewport set.
func (r *Recorder) LastViewport() [4]int {
	return r.viewport
}

// LastClearColor returns the last clear color set.
func (r *Recorder) LastClearColor() [4]float32 {
	return r.clearColor
}

// CurrentProgram returns the program last passed to UseProgram.
func (r *Recorder) CurrentProgram() gpu.Program {
	return r.current
}

// Reset forgets recorded calls, draws and clears but keeps live objects.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Draws = nil
	r.Clears = 0
}

// Surface is a fixed-size gpu.Surface backed by a Recorder.
type Surface struct {
	Width, Height int
	Ctx           gpu.Context
}

func (s *Surface) Size() (int, int) {
	return s.Width, s.Height
}

func (s *Surface) Context() gpu.Context {
	return s.Ctx
}
