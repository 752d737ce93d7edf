package mage

import "github.com/go-gl/gl/v4.1-core/gl"

// Primitive selects how vertices are assembled into primitives.
type Primitive uint16

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Lines
	LineStrip
	LineLoop
	Points
)

func (p Primitive) gl() uint32 {
	switch p {
	case Triangles:
		return gl.TRIANGLES
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case TriangleFan:
		return gl.TRIANGLE_FAN
	case Lines:
		return gl.LINES
	case LineStrip:
		return gl.LINE_STRIP
	case LineLoop:
		return gl.LINE_LOOP
	case Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

// ArrayBuffer is a buffer of per-vertex data. A mesh binds it to shader
// attribute slots through the Shader and, when the mesh has no index
// buffer, asks it to draw itself using its own vertex count and
// primitive mode.
type ArrayBuffer interface {
	// BindAttribute makes the buffer the active array buffer and points
	// the given attribute location at its vertex data.
	BindAttribute(location uint32)
	Draw()
}

// IndexBuffer is an ordered list of vertex indices. Its Draw call uses
// whatever array buffers are bound at that moment.
type IndexBuffer interface {
	Draw()
}

// VertexBuffer is a GL-backed ArrayBuffer holding tightly packed
// float32 vertex data, a fixed number of components per vertex.
type VertexBuffer struct {
	id         uint32
	components int32
	count      int32
	primitive  Primitive
}

// NewVertexBuffer uploads data to a new GL buffer object. components is
// the number of floats per vertex, so len(data) must be a multiple of
// it.
func NewVertexBuffer(data []float32, components int32, primitive Primitive) *VertexBuffer {
	buffer := &VertexBuffer{
		components: components,
		count:      int32(len(data)) / components,
		primitive:  primitive,
	}
	gl.GenBuffers(1, &buffer.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return buffer
}

// ID returns the GL buffer name.
func (buffer *VertexBuffer) ID() uint32 { return buffer.id }

// Count returns the number of vertices in the buffer.
func (buffer *VertexBuffer) Count() int32 { return buffer.count }

func (buffer *VertexBuffer) BindAttribute(location uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer.id)
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointer(location, buffer.components, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

// Draw issues a non-indexed draw over the whole buffer.
func (buffer *VertexBuffer) Draw() {
	gl.DrawArrays(buffer.primitive.gl(), 0, buffer.count)
}

// Release deletes the GL buffer object.
func (buffer *VertexBuffer) Release() {
	gl.DeleteBuffers(1, &buffer.id)
	buffer.id = 0
}

// ElementBuffer is a GL-backed IndexBuffer of 16-bit indices.
type ElementBuffer struct {
	id        uint32
	count     int32
	primitive Primitive
}

// NewElementBuffer uploads indices to a new GL element buffer object.
func NewElementBuffer(indices []uint16, primitive Primitive) *ElementBuffer {
	buffer := &ElementBuffer{
		count:     int32(len(indices)),
		primitive: primitive,
	}
	gl.GenBuffers(1, &buffer.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)
	return buffer
}

// ID returns the GL buffer name.
func (buffer *ElementBuffer) ID() uint32 { return buffer.id }

// Count returns the number of indices in the buffer.
func (buffer *ElementBuffer) Count() int32 { return buffer.count }

// Draw issues an indexed draw using the currently bound array buffers.
func (buffer *ElementBuffer) Draw() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer.id)
	gl.DrawElements(buffer.primitive.gl(), buffer.count, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

// Release deletes the GL buffer object.
func (buffer *ElementBuffer) Release() {
	gl.DeleteBuffers(1, &buffer.id)
	buffer.id = 0
}
