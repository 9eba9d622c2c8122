// Package scene renders the globe, its flow overlays and the surrounding sky.
package scene

import (
	"image"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/greaterbit/globesim/internal/assets"
	"github.com/greaterbit/globesim/internal/engine/texture"
	"github.com/greaterbit/globesim/internal/sim"
	"github.com/greaterbit/globesim/pkg/geomath"
)

const (
	sphereSegments = 64
	sphereRings    = 32

	cloudShellScale      = 1.012
	atmosphereShellScale = 1.055
	starSphereScale      = 60.0

	windOverlayAlpha    = 0.85
	currentOverlayAlpha = 0.75
	coastlineAlpha      = 0.40
)

var coastlineColor = [3]float32{0.65, 0.70, 0.72}

// Scene owns every renderer and the GL resources they share.
type Scene struct {
	globe      *GlobeRenderer
	clouds     *CloudRenderer
	atmosphere *AtmosphereRenderer
	lines      *LineRenderer
	stars      *StarRenderer

	windOverlay    *FlowOverlay
	currentOverlay *FlowOverlay
	coastline      *staticLines

	dayTex   uint32
	nightTex uint32
	cloudTex uint32

	projection geomath.Mat4
	fovY       float32
	nearPlane  float32
	farPlane   float32
}

// Config carries everything Scene needs that is not simulation state.
type Config struct {
	Assets        *assets.Manager
	CoastlinePath string
	StarCount     int
	StarSeed      int64
	Width         int
	Height        int
}

// New builds all renderers. Missing textures fall back to procedural ones,
// a missing coastline just disables that overlay.
func New(cfg Config, s *sim.Simulation) (*Scene, error) {
	sc := &Scene{
		fovY:      0.82,
		nearPlane: 1.0,
		farPlane:  float32(sim.GlobeRadius) * starSphereScale * 2,
	}

	sc.dayTex = loadOrFallback(cfg.Assets, assets.TexEarthDay, texture.FallbackDay)
	sc.nightTex = loadOrFallback(cfg.Assets, assets.TexEarthNight, texture.FallbackNight)
	sc.cloudTex = loadOrFallback(cfg.Assets, assets.TexClouds, texture.FallbackClouds)

	radius := float32(sim.GlobeRadius)

	var err error
	if sc.globe, err = NewGlobeRenderer(radius, sc.dayTex, sc.nightTex); err != nil {
		sc.Destroy()
		return nil, err
	}
	if sc.clouds, err = NewCloudRenderer(radius*cloudShellScale, sc.cloudTex); err != nil {
		sc.Destroy()
		return nil, err
	}
	if sc.atmosphere, err = NewAtmosphereRenderer(radius * atmosphereShellScale); err != nil {
		sc.Destroy()
		return nil, err
	}
	if sc.lines, err = NewLineRenderer(); err != nil {
		sc.Destroy()
		return nil, err
	}
	if sc.stars, err = NewStarRenderer(cfg.StarCount, radius*starSphereScale, cfg.StarSeed); err != nil {
		sc.Destroy()
		return nil, err
	}

	sc.windOverlay = newFlowOverlay(s.Wind.Config().ParticleCount, windOverlayAlpha)
	sc.currentOverlay = newFlowOverlay(s.Current.Config().ParticleCount, currentOverlayAlpha)

	if cfg.CoastlinePath != "" {
		verts, err := assets.LoadCoastline(cfg.CoastlinePath, sim.GlobeRadius*1.002)
		if err != nil {
			slog.Warn("coastline unavailable", "path", cfg.CoastlinePath, "error", err)
		} else {
			sc.coastline = newStaticLines(verts, coastlineColor)
			slog.Info("coastline loaded", "vertices", len(verts)/3)
		}
	}

	sc.Resize(cfg.Width, cfg.Height)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.01, 0.01, 0.02, 1.0)

	return sc, nil
}

func loadOrFallback(mgr *assets.Manager, name string, fallback func() *image.RGBA) uint32 {
	data, err := mgr.LoadTexture(name)
	if err != nil {
		slog.Warn("texture missing, using procedural fallback", "name", name, "error", err)
		return texture.Upload(fallback())
	}
	tex, err := texture.LoadFromBytes(data)
	if err != nil {
		slog.Warn("texture decode failed, using procedural fallback", "name", name, "error", err)
		return texture.Upload(fallback())
	}
	return tex
}

// Resize updates the projection matrix for a new framebuffer size.
func (sc *Scene) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	aspect := float32(width) / float32(height)
	sc.projection = geomath.Perspective(sc.fovY, aspect, sc.nearPlane, sc.farPlane)
}

// Render draws one frame from the simulation's current state.
func (sc *Scene) Render(s *sim.Simulation, view geomath.Mat4, cameraPos geomath.Vec3) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := sc.projection.Mul(view)
	model := geomath.Identity()
	sunDir := geomath.FromFloat64(s.SunDirection())

	lightIntensity := float32(1.0)
	if !s.Toggles.Solar {
		lightIntensity = 0.85
	}

	sc.stars.Render(viewProj)
	sc.globe.Render(viewProj, model, cameraPos, sunDir, s.Visuals, lightIntensity)

	mvp := viewProj.Mul(model)
	sc.lines.RenderStatic(mvp, sc.coastline, coastlineAlpha)
	if s.Wind.Enabled {
		sc.windOverlay.update(s.Wind.Positions(), s.Wind.Colors())
		sc.lines.RenderOverlay(mvp, sc.windOverlay)
	}
	if s.Current.Enabled {
		sc.currentOverlay.update(s.Current.Positions(), s.Current.Colors())
		sc.lines.RenderOverlay(mvp, sc.currentOverlay)
	}

	sc.clouds.Render(viewProj, model, float32(s.CloudAngle), sunDir)
	sc.atmosphere.Render(viewProj, model, cameraPos, sunDir)
}

// Destroy releases all GL resources. Safe to call on a partially built scene.
func (sc *Scene) Destroy() {
	if sc.globe != nil {
		sc.globe.Destroy()
	}
	if sc.clouds != nil {
		sc.clouds.Destroy()
	}
	if sc.atmosphere != nil {
		sc.atmosphere.Destroy()
	}
	if sc.lines != nil {
		sc.lines.Destroy()
	}
	if sc.stars != nil {
		sc.stars.Destroy()
	}
	if sc.windOverlay != nil {
		sc.windOverlay.destroy()
	}
	if sc.currentOverlay != nil {
		sc.currentOverlay.destroy()
	}
	if sc.coastline != nil {
		sc.coastline.destroy()
	}
	texture.Delete(sc.dayTex)
	texture.Delete(sc.nightTex)
	texture.Delete(sc.cloudTex)
}
