package mage

import m "github.com/go-gl/mathgl/mgl32"

// UniformType tags the value stored in a Uniform. The set is closed:
// these are the only kinds of per-draw constants a shader can receive.
type UniformType uint16

const (
	Matrix3 UniformType = iota
	Matrix4
	Vector2
	Vector3
	Vector4
	Float
	Integer
	Boolean
)

// Uniform is one per-draw shader constant: a type tag and the value it
// names. Uniforms are immutable; a mesh replaces the whole entry when a
// value changes.
type Uniform struct {
	typ   UniformType
	value any
}

// Type returns the uniform's type tag.
func (u Uniform) Type() UniformType { return u.typ }

// apply pushes the value to the shader slot of the given name,
// dispatching on the type tag. The tag and the concrete value type
// always agree because the typed setters on Mesh pair them up.
func (u Uniform) apply(shader Shader, name string) {
	switch u.typ {
	case Matrix3:
		shader.SetUniformMatrix3(name, u.value.(m.Mat3))
	case Matrix4:
		shader.SetUniformMatrix4(name, u.value.(m.Mat4))
	case Vector2:
		shader.SetUniformVec2(name, u.value.(m.Vec2))
	case Vector3:
		shader.SetUniformVec3(name, u.value.(m.Vec3))
	case Vector4:
		shader.SetUniformVec4(name, u.value.(m.Vec4))
	case Float:
		shader.SetUniformFloat(name, u.value.(float32))
	case Integer:
		shader.SetUniformInt(name, u.value.(int32))
	case Boolean:
		shader.SetUniformBool(name, u.value.(bool))
	}
}

// SetUniformMatrix3 sets a mat3 uniform on the mesh.
func (mesh *Mesh) SetUniformMatrix3(name string, value m.Mat3) *Mesh {
	return mesh.setUniform(name, Matrix3, value)
}

// SetUniformMatrix4 sets a mat4 uniform on the mesh.
func (mesh *Mesh) SetUniformMatrix4(name string, value m.Mat4) *Mesh {
	return mesh.setUniform(name, Matrix4, value)
}

// SetUniformVec2 sets a vec2 uniform on the mesh.
func (mesh *Mesh) SetUniformVec2(name string, value m.Vec2) *Mesh {
	return mesh.setUniform(name, Vector2, value)
}

// SetUniformVec3 sets a vec3 uniform on the mesh.
func (mesh *Mesh) SetUniformVec3(name string, value m.Vec3) *Mesh {
	return mesh.setUniform(name, Vector3, value)
}

// SetUniformVec4 sets a vec4 uniform on the mesh.
func (mesh *Mesh) SetUniformVec4(name string, value m.Vec4) *Mesh {
	return mesh.setUniform(name, Vector4, value)
}

// SetUniformFloat sets a float uniform on the mesh.
func (mesh *Mesh) SetUniformFloat(name string, value float32) *Mesh {
	return mesh.setUniform(name, Float, value)
}

// SetUniformInt sets an int uniform on the mesh.
func (mesh *Mesh) SetUniformInt(name string, value int32) *Mesh {
	return mesh.setUniform(name, Integer, value)
}

// SetUniformBool sets a bool uniform on the mesh.
func (mesh *Mesh) SetUniformBool(name string, value bool) *Mesh {
	return mesh.setUniform(name, Boolean, value)
}
