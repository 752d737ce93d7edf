package mage

import "github.com/go-gl/gl/v4.1-core/gl"

// Context is the slice of global graphics-context state the mesh core
// touches: vertex array objects and the rasterizer polygon mode. All of
// it is process-wide mutable state with no locking; callers serialize
// draws on the thread that owns the GL context.
type Context interface {
	CreateVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)

	// SetPolygonMode switches rasterization of front and back faces
	// between wireframe and fill. The mode persists until changed again.
	SetPolygonMode(wireframe bool)
}

type glContext struct{}

// GL returns the Context backed by the current OpenGL context. It is
// only valid after the context has been made current and the bindings
// initialized.
func GL() Context { return glContext{} }

func (glContext) CreateVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (glContext) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (glContext) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (glContext) SetPolygonMode(wireframe bool) {
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}
