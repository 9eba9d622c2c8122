package scene

import (
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// sphereMesh is a UV sphere uploaded to the GPU: interleaved position,
// normal and texture coordinates.
type sphereMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// newSphereMesh builds a UV sphere of the given radius. UVs are laid out so
// that u=0 sits at longitude 180W, matching the equirectangular maps and
// the lat/lon-to-Cartesian convention used by the simulation.
func newSphereMesh(radius float32, segments, rings int) *sphereMesh {
	var vertices []float32
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * math.Pi / float64(rings)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg)*2.0*math.Pi/float64(segments) - math.Pi

			// Same convention as ProjectToSphere: lat = 90 - theta,
			// lon = phi; x = -cos(lat)cos(lon), y = sin(lat), z = cos(lat)sin(lon).
			nx := float32(-sinTheta * math.Cos(phi))
			ny := float32(cosTheta)
			nz := float32(sinTheta * math.Sin(phi))

			vertices = append(vertices,
				nx*radius, ny*radius, nz*radius, // position
				nx, ny, nz, // normal
				float32(seg)/float32(segments), // u
				float32(ring)/float32(rings),   // v
			)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring*(segments+1) + seg)
			b := a + uint32(segments) + 1
			indices = append(indices, a, b, a+1, b, b+1, a+1)
		}
	}

	m := &sphereMesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return m
}

func (m *sphereMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *sphereMesh) destroy() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}
