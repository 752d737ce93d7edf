package mage

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	m "github.com/go-gl/mathgl/mgl32"
)

// Shader is the binding contract between a mesh and a shader program.
// SetAttribute with a nil buffer unbinds the named slot. Names unknown
// to the program are silently ignored, so a shader is free to not use
// attributes or uniforms a mesh carries.
type Shader interface {
	Bind()
	Unbind()
	SetAttribute(name string, buffer ArrayBuffer)

	SetUniformMatrix3(name string, value m.Mat3)
	SetUniformMatrix4(name string, value m.Mat4)
	SetUniformVec2(name string, value m.Vec2)
	SetUniformVec3(name string, value m.Vec3)
	SetUniformVec4(name string, value m.Vec4)
	SetUniformFloat(name string, value float32)
	SetUniformInt(name string, value int32)
	SetUniformBool(name string, value bool)
}

// Program is a linked OpenGL shader program. It caches attribute and
// uniform locations so repeated draws do not query the driver.
type Program struct {
	id uint32

	uniformCache map[string]int32
	attribCache  map[string]int32
}

// NewProgram compiles and links a program from vertex, fragment and an
// optional geometry stage. Pass "" to skip the geometry stage.
func NewProgram(vertexShaderSource, fragmentShaderSource, geometryShaderSource string) (*Program, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	defer gl.DeleteShader(vertexShader)

	gl.AttachShader(program, fragmentShader)
	defer gl.DeleteShader(fragmentShader)

	if geometryShaderSource != "" {
		geometryShader, err := compileShader(geometryShaderSource, gl.GEOMETRY_SHADER)
		if err != nil {
			return nil, err
		}
		gl.AttachShader(program, geometryShader)
		defer gl.DeleteShader(geometryShader)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return nil, fmt.Errorf("failed to link program: %v", log)
	}

	return &Program{
		id:           program,
		uniformCache: make(map[string]int32),
		attribCache:  make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}

// ID returns the GL program name.
func (program *Program) ID() uint32 { return program.id }

// Bind makes the program current.
func (program *Program) Bind() { gl.UseProgram(program.id) }

// Unbind makes no program current.
func (program *Program) Unbind() { gl.UseProgram(0) }

// Delete releases the program object.
func (program *Program) Delete() {
	gl.DeleteProgram(program.id)
	program.id = 0
}

func (program *Program) uniformLocation(name string) int32 {
	location, ok := program.uniformCache[name]
	if !ok {
		location = gl.GetUniformLocation(program.id, gl.Str(name+"\x00"))
		program.uniformCache[name] = location
	}
	return location
}

func (program *Program) attribLocation(name string) int32 {
	location, ok := program.attribCache[name]
	if !ok {
		location = gl.GetAttribLocation(program.id, gl.Str(name+"\x00"))
		program.attribCache[name] = location
	}
	return location
}

// SetAttribute points the named attribute slot at the buffer's vertex
// data, or disables the slot when buffer is nil. Attributes the program
// does not declare are ignored.
func (program *Program) SetAttribute(name string, buffer ArrayBuffer) {
	location := program.attribLocation(name)
	if location < 0 {
		return
	}
	if buffer == nil {
		gl.DisableVertexAttribArray(uint32(location))
		return
	}
	buffer.BindAttribute(uint32(location))
}

func (program *Program) SetUniformMatrix3(name string, value m.Mat3) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.UniformMatrix3fv(location, 1, false, &value[0])
	}
}

func (program *Program) SetUniformMatrix4(name string, value m.Mat4) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.UniformMatrix4fv(location, 1, false, &value[0])
	}
}

func (program *Program) SetUniformVec2(name string, value m.Vec2) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.Uniform2f(location, value.X(), value.Y())
	}
}

func (program *Program) SetUniformVec3(name string, value m.Vec3) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.Uniform3f(location, value.X(), value.Y(), value.Z())
	}
}

func (program *Program) SetUniformVec4(name string, value m.Vec4) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.Uniform4f(location, value.X(), value.Y(), value.Z(), value.W())
	}
}

func (program *Program) SetUniformFloat(name string, value float32) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.Uniform1f(location, value)
	}
}

func (program *Program) SetUniformInt(name string, value int32) {
	if location := program.uniformLocation(name); location >= 0 {
		gl.Uniform1i(location, value)
	}
}

func (program *Program) SetUniformBool(name string, value bool) {
	location := program.uniformLocation(name)
	if location < 0 {
		return
	}
	if value {
		gl.Uniform1i(location, 1)
	} else {
		gl.Uniform1i(location, 0)
	}
}
