// Package app wires the window, input, camera, scene and simulation into the
// interactive globe client.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/greaterbit/globesim/internal/assets"
	"github.com/greaterbit/globesim/internal/config"
	"github.com/greaterbit/globesim/internal/engine/camera"
	"github.com/greaterbit/globesim/internal/engine/input"
	"github.com/greaterbit/globesim/internal/engine/scene"
	"github.com/greaterbit/globesim/internal/engine/window"
	"github.com/greaterbit/globesim/internal/sim"
)

const windowTitle = "GlobeSim"

// titleInterval throttles window title refreshes.
const titleInterval = 250 * time.Millisecond

// App is the main client instance.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.OrbitCamera
	scene  *scene.Scene
	sim    *sim.Simulation
	assets *assets.Manager

	dragging   bool
	lastMouseX int
	lastMouseY int
}

// New creates the app: window and GL context first, then the scene, then the
// simulation core.
func New(cfg *config.Config) (*App, error) {
	slog.Info("initializing app",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
		"density", cfg.Simulation.Density,
		"time_scale", cfg.Simulation.TimeScale,
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Bind the GL function pointers now that the context exists.
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	a.sim = sim.New(sim.Options{
		TimeScale: cfg.Simulation.TimeScale,
		Density:   sim.DensityTier(cfg.Simulation.Density),
		Toggles: sim.Toggles{
			Solar:    cfg.Simulation.Solar,
			Wind:     cfg.Simulation.Wind,
			Current:  cfg.Simulation.Current,
			Coupling: cfg.Simulation.Coupling,
		},
		Seed: cfg.Simulation.Seed,
	})

	a.assets = assets.NewManager(cfg.Assets.Dir)
	a.scene, err = scene.New(scene.Config{
		Assets:        a.assets,
		CoastlinePath: cfg.Assets.Coastline,
		StarCount:     cfg.Graphics.StarCount,
		StarSeed:      cfg.Simulation.Seed,
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
	}, a.sim)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.input = input.New()
	a.camera = camera.New(float32(sim.GlobeRadius))

	slog.Info("app initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	titleTimer := time.Now()

	slog.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.sim.Step(dt)

		view := a.camera.ViewMatrix()
		a.scene.Render(a.sim, view, a.camera.Position())
		a.window.SwapBuffers()

		if time.Since(titleTimer) >= titleInterval {
			titleTimer = time.Now()
			clock, flow := a.sim.StatusLines()
			a.window.SetTitle(fmt.Sprintf("%s | %s | %s | %gx", windowTitle, clock, flow, a.sim.Clock.TimeScale()))
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents processes the frame's input events.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.scene.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			a.handleKey(event.Key)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
				a.lastMouseX = event.MouseX
				a.lastMouseY = event.MouseY
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				dx := float32(event.MouseX - a.lastMouseX)
				dy := float32(event.MouseY - a.lastMouseY)
				a.lastMouseX = event.MouseX
				a.lastMouseY = event.MouseY
				a.camera.HandleDrag(dx, dy)
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(event.WheelY)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		a.running = false

	case sdl.SCANCODE_1:
		a.sim.Toggles.Solar = !a.sim.Toggles.Solar
		slog.Info("toggle", "solar", a.sim.Toggles.Solar)
	case sdl.SCANCODE_2:
		a.sim.Toggles.Wind = !a.sim.Toggles.Wind
		slog.Info("toggle", "wind", a.sim.Toggles.Wind)
	case sdl.SCANCODE_3:
		a.sim.Toggles.Current = !a.sim.Toggles.Current
		slog.Info("toggle", "current", a.sim.Toggles.Current)
	case sdl.SCANCODE_4:
		a.sim.Toggles.Coupling = !a.sim.Toggles.Coupling
		slog.Info("toggle", "coupling", a.sim.Toggles.Coupling)

	case sdl.SCANCODE_RIGHTBRACKET:
		a.sim.CycleTimeScale(true)
		slog.Info("time scale", "value", a.sim.Clock.TimeScale())
	case sdl.SCANCODE_LEFTBRACKET:
		a.sim.CycleTimeScale(false)
		slog.Info("time scale", "value", a.sim.Clock.TimeScale())
	}
}

// Close cleans up all resources.
func (a *App) Close() {
	slog.Info("closing app")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
