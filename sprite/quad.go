package sprite

import (
	"encoding/binary"
	"math"
)

// Vertex is a sprite vertex: position in sprite-local units and texture
// coordinates with V pointing down.
type Vertex struct {
	X, Y float32
	U, V float32
}

// VertexStride is the size of one Vertex in a vertex buffer.
const VertexStride = 16

// Sized is anything with half-dimensions, typically *texture.Texture.
type Sized interface {
	HalfWidth() float64
	HalfHeight() float64
}

// Indices draws the quad from Quad as two counter-clockwise triangles.
var Indices = [6]uint16{0, 1, 2, 2, 3, 0}

// Quad returns the four corners of a sprite for s in the order
// top-left, bottom-left, bottom-right, top-right (Y up).
func Quad(s Sized) [4]Vertex {
	hw := float32(s.HalfWidth())
	hh := float32(s.HalfHeight())
	return [4]Vertex{
		{X: -hw, Y: hh, U: 0, V: 0},
		{X: -hw, Y: -hh, U: 0, V: 1},
		{X: hw, Y: -hh, U: 1, V: 1},
		{X: hw, Y: hh, U: 1, V: 0},
	}
}

// Bytes encodes vertices as little-endian float32s, ready for
// Queue.WriteBuffer.
func Bytes(vertices []Vertex) []byte {
	buf := make([]byte, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.X))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Y))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.U))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.V))
	}
	return buf
}

// TriangleList expands a quad through Indices into six vertices, for
// non-indexed draws.
func TriangleList(q [4]Vertex) [6]Vertex {
	var out [6]Vertex
	for i, idx := range Indices {
		out[i] = q[idx]
	}
	return out
}
