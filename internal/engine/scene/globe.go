package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/greaterbit/globesim/internal/engine/shader"
	"github.com/greaterbit/globesim/internal/engine/scene/shaders"
	"github.com/greaterbit/globesim/internal/sim"
	"github.com/greaterbit/globesim/pkg/geomath"
)

// GlobeRenderer draws the textured planet sphere with day/night blending
// and ocean specular highlights.
type GlobeRenderer struct {
	program uint32
	mesh    *sphereMesh

	dayTex   uint32
	nightTex uint32

	locMVP       int32
	locModel     int32
	locDayTex    int32
	locNightTex  int32
	locSunDir    int32
	locCameraPos int32
	locShininess int32
	locSpecTint  int32
	locIntensity int32
}

// NewGlobeRenderer compiles the globe program and builds the sphere mesh.
// The day and night textures are owned by the caller.
func NewGlobeRenderer(radius float32, dayTex, nightTex uint32) (*GlobeRenderer, error) {
	program, err := shader.CompileProgram(shaders.GlobeVertexShader, shaders.GlobeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("globe shader: %w", err)
	}

	r := &GlobeRenderer{
		program:  program,
		mesh:     newSphereMesh(radius, sphereSegments, sphereRings),
		dayTex:   dayTex,
		nightTex: nightTex,

		locMVP:       shader.MustGetUniform(program, "uMVP"),
		locModel:     shader.MustGetUniform(program, "uModel"),
		locDayTex:    shader.MustGetUniform(program, "uDayTex"),
		locNightTex:  shader.MustGetUniform(program, "uNightTex"),
		locSunDir:    shader.MustGetUniform(program, "uSunDir"),
		locCameraPos: shader.MustGetUniform(program, "uCameraPos"),
		locShininess: shader.MustGetUniform(program, "uShininess"),
		locSpecTint:  shader.MustGetUniform(program, "uSpecularTint"),
		locIntensity: shader.MustGetUniform(program, "uLightIntensity"),
	}
	return r, nil
}

// Render draws the globe. sunDir is a unit vector in world space and visuals
// carries the current ocean material parameters.
func (r *GlobeRenderer) Render(viewProj, model geomath.Mat4, cameraPos, sunDir geomath.Vec3, visuals sim.VisualParams, lightIntensity float32) {
	gl.UseProgram(r.program)

	mvp := viewProj.Mul(model)
	shader.SetMat4(r.locMVP, mvp)
	shader.SetMat4(r.locModel, model)
	shader.SetVec3(r.locSunDir, sunDir)
	shader.SetVec3(r.locCameraPos, cameraPos)
	shader.SetFloat(r.locShininess, visuals.OceanShininess)
	shader.SetVec3(r.locSpecTint, geomath.Vec3{
		X: visuals.OceanSpecular[0],
		Y: visuals.OceanSpecular[1],
		Z: visuals.OceanSpecular[2],
	})
	shader.SetFloat(r.locIntensity, lightIntensity)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.dayTex)
	shader.SetInt(r.locDayTex, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.nightTex)
	shader.SetInt(r.locNightTex, 1)

	r.mesh.draw()
}

// Destroy releases GPU resources. Textures are not deleted here.
func (r *GlobeRenderer) Destroy() {
	r.mesh.destroy()
	gl.DeleteProgram(r.program)
}
