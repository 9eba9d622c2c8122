// Package config handles application configuration loading and management.
package config

// Config holds all globesim settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Assets     AssetsConfig     `yaml:"assets"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // multisample count, 0 disables
	StarCount  int  `yaml:"star_count"`
}

// SimulationConfig holds the initial state of the simulation core.
type SimulationConfig struct {
	TimeScale float64 `yaml:"time_scale"` // wall-to-simulated multiplier, > 0
	Density   string  `yaml:"density"`    // particle density tier: low, medium, high
	Solar     bool    `yaml:"solar"`      // solar-driven lighting
	Wind      bool    `yaml:"wind"`       // wind overlay
	Current   bool    `yaml:"current"`    // ocean current overlay
	Coupling  bool    `yaml:"coupling"`   // flow-statistics feedback
	Seed      int64   `yaml:"seed"`       // particle placement seed, 0 = default
}

// AssetsConfig holds asset lookup paths.
type AssetsConfig struct {
	Dir       string `yaml:"dir"`       // directory with equirectangular textures
	Coastline string `yaml:"coastline"` // optional coastline shapefile
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
			StarCount:  2000,
		},
		Simulation: SimulationConfig{
			TimeScale: 60,
			Density:   "medium",
			Solar:     true,
			Wind:      true,
			Current:   true,
			Coupling:  true,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
