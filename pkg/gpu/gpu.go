// Package gpu defines the small slice of a graphics API that the chart
// renderer draws through. Concrete adapters live in subpackages.
package gpu

type (
	Shader  uint32
	Program uint32
	Buffer  uint32

	// Attrib is a vertex attribute location. A negative value means the
	// linked program does not use the attribute.
	Attrib int32
)

// NoBuffer unbinds the array buffer when passed to BindBuffer.
const NoBuffer Buffer = 0

// Unused is the location reported for attributes the program does not declare.
const Unused Attrib = -1

// ShaderStage selects the pipeline stage a shader is compiled for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Usage is the upload hint passed with buffer data.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)

// Context is the capability set the renderer needs from a GPU context.
// All buffer operations target the array buffer binding point and all
// vertex attributes are tightly described in float32 units.
type Context interface {
	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)
	AttribLocation(p Program, name string) Attrib

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32, usage Usage)
	BufferSubData(data []float32)
	DeleteBuffer(b Buffer)

	EnableVertexAttribArray(a Attrib)
	DisableVertexAttribArray(a Attrib)
	// VertexAttribPointer describes a float attribute. size, stride and
	// offset are counted in floats, not bytes.
	VertexAttribPointer(a Attrib, size, stride, offset int)

	ClearColor(r, g, b, a float32)
	Clear()
	Viewport(x, y, width, height int)
	DrawLineStrip(first, count int)
	Flush()
}

// Surface is a drawable pixel area with an attached GPU context.
type Surface interface {
	// Size returns the current size in pixels.
	Size() (width, height int)
	// Context returns nil when no context could be acquired.
	Context() Context
}
