package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadVertexData(t *testing.T) {
	vertices := QuadVertices()
	require.Len(t, vertices, 4)

	data := flatten(vertices)
	assert.Len(t, data, 4*vertexFloats)

	// positions stay within the centered half-size quad
	for _, v := range vertices {
		assert.LessOrEqual(t, v.Position.X(), float32(0.5))
		assert.GreaterOrEqual(t, v.Position.X(), float32(-0.5))
		assert.Equal(t, float32(0), v.Position.Z())
	}
}

func TestQuadIndices(t *testing.T) {
	indices := QuadIndices()
	require.Len(t, indices, 6)

	for _, i := range indices {
		assert.LessOrEqual(t, i, uint32(3))
	}

	// both triangles share the diagonal between vertices 1 and 2
	assert.Equal(t, []uint32{2, 0, 1, 3, 2, 1}, indices)
}

func TestQuadTrianglesAreCounterClockwise(t *testing.T) {
	vertices := QuadVertices()
	indices := QuadIndices()

	for tri := 0; tri < len(indices); tri += 3 {
		a := vertices[indices[tri]].Position
		b := vertices[indices[tri+1]].Position
		c := vertices[indices[tri+2]].Position

		// z component of the cross product of the two edges
		cross := (b.X()-a.X())*(c.Y()-b.Y()) - (b.Y()-a.Y())*(c.X()-b.X())
		assert.Greater(t, cross, float32(0), "triangle at index %d is not counter-clockwise", tri)
	}
}

func TestAttributeLayout(t *testing.T) {
	// attribute 0 reads positions from offset 0, attribute 1 colours
	// from byte offset 12, both with a 24 byte stride
	assert.Equal(t, 24, vertexStride)
	assert.Equal(t, 12, colourOffset)
	assert.Equal(t, 6, vertexFloats)
}

func TestFlattenInterleavesPositionAndColour(t *testing.T) {
	data := flatten(QuadVertices())

	// first vertex: bottom left position, red colour
	assert.Equal(t, []float32{-0.5, -0.5, 0.0, 1.0, 0.0, 0.0}, data[:6])
	// third vertex: top left position, blue colour
	assert.Equal(t, []float32{-0.5, 0.5, 0.0, 0.0, 0.0, 1.0}, data[12:18])
}
