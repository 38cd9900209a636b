package rendering

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// Vertex is one interleaved vertex record: a position followed by a
// colour, six floats in total.
type Vertex struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
}

const (
	vertexFloats = 6
	vertexStride = vertexFloats * f32
	colourOffset = 3 * f32
)

// QuadVertices returns the four corners of the quad, centered on the
// origin and spanning half the clip space in each direction.
func QuadVertices() []Vertex {
	return []Vertex{
		{Position: mgl32.Vec3{-0.5, -0.5, 0.0}, Colour: mgl32.Vec3{1.0, 0.0, 0.0}}, // bottom left
		{Position: mgl32.Vec3{0.5, -0.5, 0.0}, Colour: mgl32.Vec3{0.0, 1.0, 0.0}},  // bottom right
		{Position: mgl32.Vec3{-0.5, 0.5, 0.0}, Colour: mgl32.Vec3{0.0, 0.0, 1.0}},  // top left
		{Position: mgl32.Vec3{0.5, 0.5, 0.0}, Colour: mgl32.Vec3{0.0, 1.0, 0.0}},   // top right
	}
}

// QuadIndices returns the two triangles that share the diagonal
// between vertices 1 and 2, both wound counter-clockwise.
func QuadIndices() []uint32 {
	return []uint32{2, 0, 1, 3, 2, 1}
}

func flatten(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*vertexFloats)
	for _, v := range vertices {
		data = append(data, v.Position.X(), v.Position.Y(), v.Position.Z())
		data = append(data, v.Colour.X(), v.Colour.Y(), v.Colour.Z())
	}
	return data
}

// Quad holds the GL objects for the one mesh this program ever draws.
type Quad struct {
	VAO uint32
	VBO uint32
	IBO uint32

	NumIndices int32
}

// NewQuad uploads the quad to the GPU and records the attribute layout
// in a fresh vertex array object. Attribute 0 is the position,
// attribute 1 the colour; both are re-enabled whenever the VAO is
// bound again, so they are disabled here before returning.
func NewQuad() *Quad {
	q := &Quad{}

	data := flatten(QuadVertices())
	indices := QuadIndices()
	q.NumIndices = int32(len(indices))

	gl.GenVertexArrays(1, &q.VAO)
	gl.BindVertexArray(q.VAO)

	gl.GenBuffers(1, &q.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &q.IBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.IBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*f32, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, colourOffset)

	gl.BindVertexArray(0)
	gl.DisableVertexAttribArray(0)
	gl.DisableVertexAttribArray(1)

	return q
}

// Draw issues the indexed draw for the quad. The caller is expected to
// have a program bound already.
func (q *Quad) Draw() {
	gl.BindVertexArray(q.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.VBO)

	ClearErrors()
	gl.DrawElements(gl.TRIANGLES, q.NumIndices, gl.UNSIGNED_INT, gl.PtrOffset(0))
	CheckErrors("glDrawElements")
}

// Delete releases the GL objects in reverse acquisition order.
func (q *Quad) Delete() {
	gl.DeleteBuffers(1, &q.IBO)
	gl.DeleteBuffers(1, &q.VBO)
	gl.DeleteVertexArrays(1, &q.VAO)
}
