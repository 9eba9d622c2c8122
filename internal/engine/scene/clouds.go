package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/greaterbit/globesim/internal/engine/shader"
	"github.com/greaterbit/globesim/internal/engine/scene/shaders"
	"github.com/greaterbit/globesim/pkg/geomath"
)

// CloudRenderer draws the translucent cloud shell slightly above the globe.
// The shell rotates independently at the coupling-derived angular speed.
type CloudRenderer struct {
	program uint32
	mesh    *sphereMesh
	tex     uint32

	locMVP    int32
	locModel  int32
	locTex    int32
	locSunDir int32
}

func NewCloudRenderer(radius float32, cloudTex uint32) (*CloudRenderer, error) {
	program, err := shader.CompileProgram(shaders.CloudVertexShader, shaders.CloudFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cloud shader: %w", err)
	}

	return &CloudRenderer{
		program: program,
		mesh:    newSphereMesh(radius, sphereSegments, sphereRings),
		tex:     cloudTex,

		locMVP:    shader.MustGetUniform(program, "uMVP"),
		locModel:  shader.MustGetUniform(program, "uModel"),
		locTex:    shader.MustGetUniform(program, "uCloudTex"),
		locSunDir: shader.MustGetUniform(program, "uSunDir"),
	}, nil
}

// Render draws the cloud shell. cloudAngle is the accumulated rotation in
// radians; it is composed with the shared globe model matrix.
func (r *CloudRenderer) Render(viewProj, model geomath.Mat4, cloudAngle float32, sunDir geomath.Vec3) {
	gl.UseProgram(r.program)

	cloudModel := model.Mul(geomath.RotateY(cloudAngle))
	shader.SetMat4(r.locMVP, viewProj.Mul(cloudModel))
	shader.SetMat4(r.locModel, cloudModel)
	shader.SetVec3(r.locSunDir, sunDir)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	shader.SetInt(r.locTex, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	r.mesh.draw()
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (r *CloudRenderer) Destroy() {
	r.mesh.destroy()
	gl.DeleteProgram(r.program)
}
