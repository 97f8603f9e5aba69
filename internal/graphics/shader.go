package graphics

import (
	"fmt"
	"log"

	"xgraph/pkg/gpu"
)

// Attribute names declared by the line shaders.
const (
	PositionAttrib = "position"
	ColorAttrib    = "color"
)

// VertexShaderSource passes the NDC position through and forwards the
// per-vertex color to the fragment stage.
const VertexShaderSource = `#version 410 core
in vec2 position;
in vec4 color;
out vec4 vColor;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
	vColor = color;
}`

// FragmentShaderSource writes the interpolated vertex color.
const FragmentShaderSource = `#version 410 core
in vec4 vColor;
out vec4 fragColor;
void main() {
	fragColor = vColor;
}`

// ErrorKind classifies a ShaderError.
type ErrorKind int

const (
	CompileFailure ErrorKind = iota + 1
	LinkFailure
)

func (k ErrorKind) String() string {
	switch k {
	case CompileFailure:
		return "compile failure"
	case LinkFailure:
		return "link failure"
	default:
		return "unknown"
	}
}

// ShaderError carries the driver diagnostic for a failed compile or link.
type ShaderError struct {
	Kind  ErrorKind
	Stage gpu.ShaderStage // only meaningful for CompileFailure
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Kind == CompileFailure {
		return fmt.Sprintf("failed to compile %s shader: %v", e.Stage, e.Log)
	}
	return fmt.Sprintf("failed to link program: %v", e.Log)
}

// Program is a linked line program and its resolved attribute slots.
type Program struct {
	ID       gpu.Program
	Position gpu.Attrib
	Color    gpu.Attrib
}

// NewProgram builds the fixed line program, makes it current and resolves
// its attribute locations. Nothing is left allocated on failure.
func NewProgram(ctx gpu.Context) (*Program, error) {
	id, err := compileProgram(ctx, VertexShaderSource, FragmentShaderSource)
	if err != nil {
		log.Printf("shader pipeline: %v", err)
		return nil, err
	}
	ctx.UseProgram(id)

	return &Program{
		ID:       id,
		Position: ctx.AttribLocation(id, PositionAttrib),
		Color:    ctx.AttribLocation(id, ColorAttrib),
	}, nil
}

// Delete releases the program.
func (p *Program) Delete(ctx gpu.Context) {
	if p.ID != 0 {
		ctx.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileShader compiles one stage. A failed shader is deleted before the
// error is returned.
func CompileShader(ctx gpu.Context, stage gpu.ShaderStage, source string) (gpu.Shader, error) {
	shader := ctx.CreateShader(stage)
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompiled(shader) {
		infoLog := ctx.ShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, &ShaderError{Kind: CompileFailure, Stage: stage, Log: infoLog}
	}
	return shader, nil
}

// LinkProgram links a vertex and fragment shader. The shaders are deleted
// once linking succeeds; on failure the caller still owns them.
func LinkProgram(ctx gpu.Context, vertexShader, fragmentShader gpu.Shader) (gpu.Program, error) {
	program := ctx.CreateProgram()
	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.LinkProgram(program)

	if !ctx.ProgramLinked(program) {
		infoLog := ctx.ProgramInfoLog(program)
		ctx.DeleteProgram(program)
		return 0, &ShaderError{Kind: LinkFailure, Log: infoLog}
	}
	ctx.DeleteShader(vertexShader)
	ctx.DeleteShader(fragmentShader)
	return program, nil
}

func compileProgram(ctx gpu.Context, vertexSrc, fragmentSrc string) (gpu.Program, error) {
	vertexShader, err := CompileShader(ctx, gpu.VertexStage, vertexSrc)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := CompileShader(ctx, gpu.FragmentStage, fragmentSrc)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		return 0, err
	}

	program, err := LinkProgram(ctx, vertexShader, fragmentShader)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		ctx.DeleteShader(fragmentShader)
		return 0, err
	}
	return program, nil
}
