package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/greaterbit/globesim/internal/engine/shader"
	"github.com/greaterbit/globesim/internal/engine/scene/shaders"
	"github.com/greaterbit/globesim/pkg/geomath"
)

// AtmosphereRenderer draws an additive rim-lit shell around the globe.
type AtmosphereRenderer struct {
	program uint32
	mesh    *sphereMesh

	locMVP       int32
	locModel     int32
	locSunDir    int32
	locCameraPos int32
}

func NewAtmosphereRenderer(radius float32) (*AtmosphereRenderer, error) {
	program, err := shader.CompileProgram(shaders.AtmosphereVertexShader, shaders.AtmosphereFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("atmosphere shader: %w", err)
	}

	return &AtmosphereRenderer{
		program: program,
		mesh:    newSphereMesh(radius, sphereSegments, sphereRings),

		locMVP:       shader.MustGetUniform(program, "uMVP"),
		locModel:     shader.MustGetUniform(program, "uModel"),
		locSunDir:    shader.MustGetUniform(program, "uSunDir"),
		locCameraPos: shader.MustGetUniform(program, "uCameraPos"),
	}, nil
}

func (r *AtmosphereRenderer) Render(viewProj, model geomath.Mat4, cameraPos, sunDir geomath.Vec3) {
	gl.UseProgram(r.program)

	shader.SetMat4(r.locMVP, viewProj.Mul(model))
	shader.SetMat4(r.locModel, model)
	shader.SetVec3(r.locSunDir, sunDir)
	shader.SetVec3(r.locCameraPos, cameraPos)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)
	// Backfaces only, so the shell reads as a halo behind the limb.
	gl.CullFace(gl.FRONT)
	r.mesh.draw()
	gl.CullFace(gl.BACK)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (r *AtmosphereRenderer) Destroy() {
	r.mesh.destroy()
	gl.DeleteProgram(r.program)
}
