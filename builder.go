package mage

// MeshBuilder assembles a Mesh. It is the only way to attach attribute
// buffers and an index buffer; once built, the mesh's geometry is
// fixed.
//
// Calls chain; the first error latches and Build reports it:
//
//	mesh, err := mage.NewMeshBuilder(mage.GL()).
//		AddAttribute("aPosition", positions).
//		AddAttribute("aNormal", normals).
//		SetIndexBuffer(indices).
//		SetShader(program).
//		Build()
type MeshBuilder struct {
	mesh *Mesh
	err  error
}

// NewMeshBuilder starts building a mesh. The context is captured by the
// mesh and used for every subsequent draw; its vertex array object is
// allocated here.
func NewMeshBuilder(ctx Context) *MeshBuilder {
	return &MeshBuilder{mesh: newMesh(ctx)}
}

// AddAttribute attaches a buffer to an attribute name. Each name can be
// attached exactly once.
func (builder *MeshBuilder) AddAttribute(name string, buffer ArrayBuffer) *MeshBuilder {
	if builder.err != nil {
		return builder
	}
	builder.err = builder.mesh.addAttribute(name, buffer)
	return builder
}

// SetIndexBuffer sets the mesh's index buffer; the last call wins.
func (builder *MeshBuilder) SetIndexBuffer(buffer IndexBuffer) *MeshBuilder {
	if builder.err != nil {
		return builder
	}
	builder.mesh.setIndexBuffer(buffer)
	return builder
}

// SetShader sets the shader the mesh draws with.
func (builder *MeshBuilder) SetShader(shader Shader) *MeshBuilder {
	if builder.err != nil {
		return builder
	}
	builder.mesh.SetShader(shader)
	return builder
}

// SetWireframe sets the initial wireframe flag.
func (builder *MeshBuilder) SetWireframe(wireframe bool) *MeshBuilder {
	if builder.err != nil {
		return builder
	}
	builder.mesh.SetWireframe(wireframe)
	return builder
}

// Build returns the assembled mesh, or the first error encountered
// while building it.
func (builder *MeshBuilder) Build() (*Mesh, error) {
	if builder.err != nil {
		return nil, builder.err
	}
	return builder.mesh, nil
}
