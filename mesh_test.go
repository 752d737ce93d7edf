package mage

import (
	"fmt"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callLog records the order of context, shader and buffer calls so the
// tests can assert on the exact draw protocol without a GPU.
type callLog struct {
	calls []string
}

func (log *callLog) add(format string, args ...any) {
	log.calls = append(log.calls, fmt.Sprintf(format, args...))
}

type stubContext struct {
	log    *callLog
	nextID uint32
}

func (ctx *stubContext) CreateVertexArray() uint32 {
	ctx.nextID++
	return ctx.nextID
}

func (ctx *stubContext) DeleteVertexArray(id uint32) {
	ctx.log.add("delete vao %d", id)
}

func (ctx *stubContext) BindVertexArray(id uint32) {
	ctx.log.add("bind vao %d", id)
}

func (ctx *stubContext) SetPolygonMode(wireframe bool) {
	ctx.log.add("polygon mode wireframe=%v", wireframe)
}

type stubShader struct {
	log *callLog
}

func (shader *stubShader) Bind()   { shader.log.add("bind shader") }
func (shader *stubShader) Unbind() { shader.log.add("unbind shader") }

func (shader *stubShader) SetAttribute(name string, buffer ArrayBuffer) {
	if buffer == nil {
		shader.log.add("clear attribute %s", name)
		return
	}
	shader.log.add("set attribute %s -> %s", name, buffer.(*stubBuffer).label)
}

func (shader *stubShader) SetUniformMatrix3(name string, value m.Mat3) {
	shader.log.add("uniform mat3 %s", name)
}

func (shader *stubShader) SetUniformMatrix4(name string, value m.Mat4) {
	shader.log.add("uniform mat4 %s", name)
}

func (shader *stubShader) SetUniformVec2(name string, value m.Vec2) {
	shader.log.add("uniform vec2 %s", name)
}

func (shader *stubShader) SetUniformVec3(name string, value m.Vec3) {
	shader.log.add("uniform vec3 %s", name)
}

func (shader *stubShader) SetUniformVec4(name string, value m.Vec4) {
	shader.log.add("uniform vec4 %s", name)
}

func (shader *stubShader) SetUniformFloat(name string, value float32) {
	shader.log.add("uniform float %s = %v", name, value)
}

func (shader *stubShader) SetUniformInt(name string, value int32) {
	shader.log.add("uniform int %s = %v", name, value)
}

func (shader *stubShader) SetUniformBool(name string, value bool) {
	shader.log.add("uniform bool %s = %v", name, value)
}

type stubBuffer struct {
	log   *callLog
	label string
}

func (buffer *stubBuffer) BindAttribute(location uint32) {
	buffer.log.add("bind attribute location %d on %s", location, buffer.label)
}

func (buffer *stubBuffer) Draw() {
	buffer.log.add("draw arrays %s", buffer.label)
}

type stubIndexBuffer struct {
	log    *callLog
	panics bool
}

func (buffer *stubIndexBuffer) Draw() {
	if buffer.panics {
		panic("draw failed")
	}
	buffer.log.add("draw elements")
}

func newTestMesh(t *testing.T, log *callLog) *Mesh {
	t.Helper()
	mesh, err := NewMeshBuilder(&stubContext{log: log}).Build()
	require.NoError(t, err)
	return mesh
}

func TestDrawWithoutShaderIsInert(t *testing.T) {
	log := &callLog{}
	mesh, err := NewMeshBuilder(&stubContext{log: log}).
		AddAttribute("aPosition", &stubBuffer{log: log, label: "positions"}).
		Build()
	require.NoError(t, err)

	assert.Same(t, mesh, mesh.Draw())
	assert.Empty(t, log.calls)
}

func TestDrawWithoutAttributesIsInert(t *testing.T) {
	log := &callLog{}
	mesh := newTestMesh(t, log)
	mesh.SetShader(&stubShader{log: log})

	assert.Same(t, mesh, mesh.Draw())
	assert.Empty(t, log.calls)
}

func TestDrawSequence(t *testing.T) {
	log := &callLog{}
	mesh, err := NewMeshBuilder(&stubContext{log: log}).
		AddAttribute("aPosition", &stubBuffer{log: log, label: "positions"}).
		SetShader(&stubShader{log: log}).
		Build()
	require.NoError(t, err)

	mesh.Draw()

	assert.Equal(t, []string{
		"polygon mode wireframe=false",
		"bind vao 1",
		"bind shader",
		"set attribute aPosition -> positions",
		"draw arrays positions",
		"clear attribute aPosition",
		"unbind shader",
		"bind vao 0",
	}, log.calls)
}

func TestDrawDelegatesToIndexBuffer(t *testing.T) {
	log := &callLog{}
	mesh, err := NewMeshBuilder(&stubContext{log: log}).
		AddAttribute("aPosition", &stubBuffer{log: log, label: "positions"}).
		SetIndexBuffer(&stubIndexBuffer{log: log}).
		SetShader(&stubShader{log: log}).
		Build()
	require.NoError(t, err)

	mesh.Draw()

	assert.Contains(t, log.calls, "draw elements")
	assert.NotContains(t, log.calls, "draw arrays positions")
}

func TestDrawWireframeSetsPolygonModeFirst(t *testing.T) {
	log := &callLog{}
	mesh, err := NewMeshBuilder(&stubContext{log: log}).
		AddAttribute("aPosition", &stubBuffer{log: log, label: "positions"}).
		SetShader(&stubShader{log: log}).
		Build()
	require.NoError(t, err)

	mesh.SetWireframe(true)
	assert.True(t, mesh.Wireframe())
	mesh.Draw()
	require.NotEmpty(t, log.calls)
	assert.Equal(t, "polygon mode wireframe=true", log.calls[0])

	log.calls = nil
	mesh.SetWireframe(false).Draw()
	require.NotEmpty(t, log.calls)
	assert.Equal(t, "polygon mode wireframe=false", log.calls[0])
}

func TestDrawTwiceIsIdentical(t *testing.T) {
	log := &callLog{}
	mesh, err := NewMeshBuilder(&stubContext{log: log}).
		AddAttribute("aPosition", &stubBuffer{log: log, label: "positions"}).
		SetShader(&stubShader{log: log}).
		Build()
	require.NoError(t, err)
	mesh.SetUniformFloat("uTime", 1.5)

	mesh.Draw()
	first := append([]string(nil), log.calls...)
	log.calls = nil
	mesh.Draw()

	assert.Equal(t, first, log.calls)
}

func TestDrawUnbindsAfterPanic(t *testing.T) {
	log := &callLog{}
	mesh, err := NewMeshBuilder(&stubContext{log: log}).
		AddAttribute("aPosition", &stubBuffer{log: log, label: "positions"}).
		SetIndexBuffer(&stubIndexBuffer{log: log, panics: true}).
		SetShader(&stubShader{log: log}).
		Build()
	require.NoError(t, err)

	assert.Panics(t, func() { mesh.Draw() })

	n := len(log.calls)
	require.GreaterOrEqual(t, n, 3)
	assert.Equal(t, []string{
		"clear attribute aPosition",
		"unbind shader",
		"bind vao 0",
	}, log.calls[n-3:])
}

func TestAddAttributeDuplicate(t *testing.T) {
	log := &callLog{}
	first := &stubBuffer{log: log, label: "first"}
	mesh := newTestMesh(t, log)

	require.NoError(t, mesh.addAttribute("aPosition", first))
	err := mesh.addAttribute("aPosition", &stubBuffer{log: log, label: "second"})
	assert.ErrorIs(t, err, ErrDuplicateAttribute)
	assert.Same(t, first, mesh.attributes["aPosition"].(*stubBuffer))
}

func TestAddAttributeNilBuffer(t *testing.T) {
	mesh := newTestMesh(t, &callLog{})

	err := mesh.addAttribute("aPosition", nil)
	assert.ErrorIs(t, err, ErrNilBuffer)
	assert.Empty(t, mesh.attributes)
}

func TestSetUniformOverwrites(t *testing.T) {
	mesh := newTestMesh(t, &callLog{})

	mesh.SetUniformFloat("uTime", 1)
	mesh.SetUniformFloat("uTime", 2)

	require.Len(t, mesh.uniforms, 1)
	assert.Equal(t, float32(2), mesh.uniforms["uTime"].value)
}

func TestDeleteUniform(t *testing.T) {
	mesh := newTestMesh(t, &callLog{})

	mesh.SetUniformVec3("uLight", m.Vec3{1, 2, 3})
	mesh.DeleteUniform("uLight")
	assert.Empty(t, mesh.uniforms)

	// Deleting an unknown name stays a no-op.
	mesh.DeleteUniform("uLight")
	assert.Empty(t, mesh.uniforms)
}

func TestSetShader(t *testing.T) {
	log := &callLog{}
	mesh := newTestMesh(t, log)
	assert.Nil(t, mesh.Shader())

	shader := &stubShader{log: log}
	assert.Same(t, mesh, mesh.SetShader(shader))
	assert.Same(t, shader, mesh.Shader().(*stubShader))
}

func TestMeshID(t *testing.T) {
	ctx := &stubContext{log: &callLog{}, nextID: 41}
	mesh, err := NewMeshBuilder(ctx).Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), mesh.ID())
}
