package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/greaterbit/globesim/internal/engine/shader"
	"github.com/greaterbit/globesim/internal/engine/scene/shaders"
	"github.com/greaterbit/globesim/pkg/geomath"
)

// FlowOverlay streams a particle layer's line segments to the GPU every
// frame. The vertex buffers are sized once from the layer's fixed particle
// count and refilled in place, mirroring the CPU-side buffer reuse.
type FlowOverlay struct {
	vao    uint32
	posVBO uint32
	colVBO uint32

	vertexCount int32
	alpha       float32
}

// newFlowOverlay allocates GPU buffers for count particles (two vertices each).
func newFlowOverlay(count int, alpha float32) *FlowOverlay {
	o := &FlowOverlay{vertexCount: int32(count * 2), alpha: alpha}
	bufBytes := count * 2 * 3 * 4

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, bufBytes, nil, gl.STREAM_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &o.colVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.colVBO)
	gl.BufferData(gl.ARRAY_BUFFER, bufBytes, nil, gl.STREAM_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return o
}

// update refills both buffers from the layer's CPU-side arrays.
func (o *FlowOverlay) update(positions, colors []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, o.posVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*4, unsafe.Pointer(&positions[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, o.colVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(colors)*4, unsafe.Pointer(&colors[0]))
}

func (o *FlowOverlay) destroy() {
	gl.DeleteBuffers(1, &o.posVBO)
	gl.DeleteBuffers(1, &o.colVBO)
	gl.DeleteVertexArrays(1, &o.vao)
}

// staticLines holds an immutable line set such as the coastline overlay.
type staticLines struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

func newStaticLines(vertices []float32, color [3]float32) *staticLines {
	if len(vertices) == 0 {
		return nil
	}

	// Interleave position and a constant color so the same line program
	// serves both overlays.
	count := len(vertices) / 3
	interleaved := make([]float32, 0, count*6)
	for i := 0; i < count; i++ {
		interleaved = append(interleaved,
			vertices[i*3], vertices[i*3+1], vertices[i*3+2],
			color[0], color[1], color[2],
		)
	}

	s := &staticLines{vertexCount: int32(count)}
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, unsafe.Pointer(&interleaved[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return s
}

func (s *staticLines) destroy() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
}

// LineRenderer owns the shared line program and draws flow overlays and
// static line sets with it.
type LineRenderer struct {
	program uint32

	locMVP   int32
	locAlpha int32
}

func NewLineRenderer() (*LineRenderer, error) {
	program, err := shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	return &LineRenderer{
		program:  program,
		locMVP:   shader.MustGetUniform(program, "uMVP"),
		locAlpha: shader.MustGetUniform(program, "uAlpha"),
	}, nil
}

func (r *LineRenderer) begin(mvp geomath.Mat4) {
	gl.UseProgram(r.program)
	shader.SetMat4(r.locMVP, mvp)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (r *LineRenderer) end() {
	gl.Disable(gl.BLEND)
}

// RenderOverlay draws a flow overlay's current buffer contents.
func (r *LineRenderer) RenderOverlay(mvp geomath.Mat4, o *FlowOverlay) {
	r.begin(mvp)
	shader.SetFloat(r.locAlpha, o.alpha)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.LINES, 0, o.vertexCount)
	gl.BindVertexArray(0)
	r.end()
}

// RenderStatic draws a static line set such as coastlines.
func (r *LineRenderer) RenderStatic(mvp geomath.Mat4, s *staticLines, alpha float32) {
	if s == nil {
		return
	}
	r.begin(mvp)
	shader.SetFloat(r.locAlpha, alpha)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.LINES, 0, s.vertexCount)
	gl.BindVertexArray(0)
	r.end()
}

func (r *LineRenderer) Destroy() {
	gl.DeleteProgram(r.program)
}
