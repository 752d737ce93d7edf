// Package mage implements the drawable core of a small OpenGL renderer:
// a static polygonal mesh described by named attribute buffers, an
// optional index buffer, per-draw uniforms and the shader used to draw
// it. The mesh orchestrates a single draw call; buffer upload, shader
// compilation and window setup live in their own types and in the
// caller.
package mage

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAttribute is reported when an attribute name is added
	// to a mesh twice. Attributes are write-once for the mesh lifetime.
	ErrDuplicateAttribute = errors.New("mage: attribute already exists")

	// ErrNilBuffer is reported when an attribute is added without a
	// backing buffer.
	ErrNilBuffer = errors.New("mage: attribute buffer is nil")
)

// Mesh is a static polygonal mesh: a set of vertices defined by named
// attribute buffers, an optional index buffer describing how triangles
// are assembled, a set of uniforms and the shader used for drawing.
//
// A mesh is populated through a MeshBuilder. Afterwards only the
// shader, the uniforms and the wireframe flag may change. Draw calls
// must all happen on the thread that owns the GL context.
type Mesh struct {
	id  uint32
	ctx Context

	shader      Shader
	indexBuffer IndexBuffer

	attributes map[string]ArrayBuffer
	uniforms   map[string]Uniform
	wireframe  bool
}

func newMesh(ctx Context) *Mesh {
	return &Mesh{
		id:         ctx.CreateVertexArray(),
		ctx:        ctx,
		attributes: make(map[string]ArrayBuffer),
		uniforms:   make(map[string]Uniform),
	}
}

// ID returns the vertex array object name backing this mesh.
func (mesh *Mesh) ID() uint32 { return mesh.id }

// SetShader replaces the shader used to draw the mesh. No check is made
// that the shader actually declares the mesh's attributes; unknown
// names simply do not bind at draw time.
func (mesh *Mesh) SetShader(shader Shader) *Mesh {
	mesh.shader = shader
	return mesh
}

// Shader returns the shader the mesh draws with, or nil.
func (mesh *Mesh) Shader() Shader { return mesh.shader }

// addAttribute associates a buffer with an attribute name. Once
// associated, the buffer cannot be replaced. Only MeshBuilder calls
// this.
func (mesh *Mesh) addAttribute(name string, buffer ArrayBuffer) error {
	if _, ok := mesh.attributes[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAttribute, name)
	}
	if buffer == nil {
		return fmt.Errorf("%w: %s", ErrNilBuffer, name)
	}
	mesh.attributes[name] = buffer
	return nil
}

// setIndexBuffer sets the mesh's index buffer, last write wins. Only
// MeshBuilder calls this.
func (mesh *Mesh) setIndexBuffer(buffer IndexBuffer) *Mesh {
	mesh.indexBuffer = buffer
	return mesh
}

// setUniform is the single funnel for all uniform updates: a nil value
// removes the entry, anything else replaces it wholesale.
func (mesh *Mesh) setUniform(name string, typ UniformType, value any) *Mesh {
	if value == nil {
		delete(mesh.uniforms, name)
	} else {
		mesh.uniforms[name] = Uniform{typ: typ, value: value}
	}
	return mesh
}

// DeleteUniform removes a uniform from the mesh. Removing a name that
// was never set is a no-op.
func (mesh *Mesh) DeleteUniform(name string) *Mesh {
	return mesh.setUniform(name, 0, nil)
}

// SetWireframe selects between wireframe and solid rasterization for
// the next Draw. The polygon mode is global context state: it stays in
// effect until another draw changes it.
func (mesh *Mesh) SetWireframe(wireframe bool) *Mesh {
	mesh.wireframe = wireframe
	return mesh
}

// Wireframe reports whether the mesh draws as wireframe.
func (mesh *Mesh) Wireframe() bool { return mesh.wireframe }

// Draw issues one draw call for the mesh. A mesh without a shader or
// without attributes is inert and draws nothing.
//
// The sequence is: set polygon mode, bind the VAO, bind the shader,
// bind every attribute buffer to its shader slot, push every uniform,
// then delegate the draw to the index buffer if one is set, otherwise
// to one of the attribute buffers. All bindings are undone afterwards,
// also when the draw delegate panics, so a failed draw cannot leak
// bound state into the next mesh's draw.
func (mesh *Mesh) Draw() *Mesh {
	if mesh.shader == nil || len(mesh.attributes) == 0 {
		return mesh
	}

	mesh.ctx.SetPolygonMode(mesh.wireframe)

	mesh.ctx.BindVertexArray(mesh.id)
	mesh.shader.Bind()
	defer func() {
		for name := range mesh.attributes {
			mesh.shader.SetAttribute(name, nil)
		}
		mesh.shader.Unbind()
		mesh.ctx.BindVertexArray(0)
	}()

	for name, buffer := range mesh.attributes {
		mesh.shader.SetAttribute(name, buffer)
	}
	for name, uniform := range mesh.uniforms {
		uniform.apply(mesh.shader, name)
	}

	if mesh.indexBuffer != nil {
		mesh.indexBuffer.Draw()
	} else {
		// No index buffer: any attribute buffer knows the vertex count,
		// draw with the first one the map yields.
		for _, buffer := range mesh.attributes {
			buffer.Draw()
			break
		}
	}
	return mesh
}
