package scene

import (
	"fmt"
	"math"
	"math/rand"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/greaterbit/globesim/internal/engine/shader"
	"github.com/greaterbit/globesim/internal/engine/scene/shaders"
	"github.com/greaterbit/globesim/pkg/geomath"
)

// StarRenderer draws a static point-sprite starfield on a distant sphere.
type StarRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	count   int32

	locViewProj int32
}

// NewStarRenderer scatters count stars uniformly on a sphere of the given
// radius. The same seed always yields the same sky.
func NewStarRenderer(count int, radius float32, seed int64) (*StarRenderer, error) {
	program, err := shader.CompileProgram(shaders.StarVertexShader, shaders.StarFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("star shader: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	verts := make([]float32, 0, count*4)
	for i := 0; i < count; i++ {
		// Uniform on the sphere via cos(latitude) weighting.
		lat := math.Asin(rng.Float64()*2 - 1)
		lon := rng.Float64()*2*math.Pi - math.Pi
		x := float32(math.Cos(lat)*math.Cos(lon)) * radius
		y := float32(math.Sin(lat)) * radius
		z := float32(math.Cos(lat)*math.Sin(lon)) * radius
		brightness := float32(0.3 + rng.Float64()*0.7)
		verts = append(verts, x, y, z, brightness)
	}

	r := &StarRenderer{
		program:     program,
		count:       int32(count),
		locViewProj: shader.MustGetUniform(program, "uViewProj"),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, 4*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *StarRenderer) Render(viewProj geomath.Mat4) {
	gl.UseProgram(r.program)
	shader.SetMat4(r.locViewProj, viewProj)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.DepthMask(false)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, r.count)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.PROGRAM_POINT_SIZE)
}

func (r *StarRenderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
