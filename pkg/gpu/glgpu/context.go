// Package glgpu implements gpu.Context on top of OpenGL 4.1 core.
//
// All calls must happen on the thread that owns the current GL context.
package glgpu

import (
	"log"
	"strings"

	"xgraph/pkg/gpu"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Context adapts the process-current OpenGL context.
type Context struct {
	vao uint32
	// CheckErrors logs glGetError after each draw when set.
	CheckErrors bool
}

var _ gpu.Context = (*Context)(nil)

// New loads the GL function pointers for the current context and binds the
// vertex array object that core profiles require for attribute setup.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c, nil
}

// Release deletes the vertex array object created by New.
func (c *Context) Release() {
	if c.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

func (c *Context) CreateShader(stage gpu.ShaderStage) gpu.Shader {
	switch stage {
	case gpu.FragmentStage:
		return gpu.Shader(gl.CreateShader(gl.FRAGMENT_SHADER))
	default:
		return gpu.Shader(gl.CreateShader(gl.VERTEX_SHADER))
	}
}

func (c *Context) ShaderSource(s gpu.Shader, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s gpu.Shader) {
	gl.CompileShader(uint32(s))
}

func (c *Context) ShaderCompiled(s gpu.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s gpu.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func (c *Context) DeleteShader(s gpu.Shader) {
	gl.DeleteShader(uint32(s))
}

func (c *Context) CreateProgram() gpu.Program {
	return gpu.Program(gl.CreateProgram())
}

func (c *Context) AttachShader(p gpu.Program, s gpu.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) LinkProgram(p gpu.Program) {
	gl.LinkProgram(uint32(p))
}

func (c *Context) ProgramLinked(p gpu.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p gpu.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func (c *Context) UseProgram(p gpu.Program) {
	gl.UseProgram(uint32(p))
}

func (c *Context) DeleteProgram(p gpu.Program) {
	gl.DeleteProgram(uint32(p))
}

func (c *Context) AttribLocation(p gpu.Program, name string) gpu.Attrib {
	return gpu.Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *Context) CreateBuffer() gpu.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gpu.Buffer(b)
}

func (c *Context) BindBuffer(b gpu.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (c *Context) BufferData(data []float32, usage gpu.Usage) {
	hint := uint32(gl.STATIC_DRAW)
	if usage == gpu.DynamicDraw {
		hint = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, hint)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), hint)
}

func (c *Context) BufferSubData(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
}

func (c *Context) DeleteBuffer(b gpu.Buffer) {
	buf := uint32(b)
	if buf != 0 {
		gl.DeleteBuffers(1, &buf)
	}
}

func (c *Context) EnableVertexAttribArray(a gpu.Attrib) {
	if a >= 0 {
		gl.EnableVertexAttribArray(uint32(a))
	}
}

func (c *Context) DisableVertexAttribArray(a gpu.Attrib) {
	if a >= 0 {
		gl.DisableVertexAttribArray(uint32(a))
	}
}

func (c *Context) VertexAttribPointer(a gpu.Attrib, size, stride, offset int) {
	if a < 0 {
		return
	}
	gl.VertexAttribPointerWithOffset(uint32(a), int32(size), gl.FLOAT, false, int32(stride*4), uintptr(offset*4))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *Context) DrawLineStrip(first, count int) {
	gl.DrawArrays(gl.LINE_STRIP, int32(first), int32(count))
	if c.CheckErrors {
		glCheckError("DrawLineStrip")
	}
}

func (c *Context) Flush() {
	gl.Flush()
}

func glCheckError(label string) {
	if err := gl.GetError(); err != gl.NO_ERROR {
		log.Printf("gl error %s: 0x%x", label, err)
	}
}
