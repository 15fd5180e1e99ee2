package config

// Presets are named starting points for common animations.
var presets = map[string]func(*Config){
	"cloud": func(c *Config) {
		c.Model.Init = "uniform"
		c.Anim.Style = "grid"
		c.Anim.Norm = "log"
	},
	"collapse": func(c *Config) {
		c.Model.Init = "collapse"
		c.Model.Bodies = 500
		c.Anim.Style = "grid"
		c.Anim.Norm = "log"
		c.Anim.Colormap = "inferno"
	},
	"orbits": func(c *Config) {
		c.Model.Init = "ring"
		c.Model.Bodies = 64
		c.Anim.Style = "points"
		c.Anim.Steps = 4
	},
	"collapse3d": func(c *Config) {
		c.Model.Init = "collapse"
		c.Model.Dims = 3
		c.Model.Grid = 32
		c.Model.Bodies = 400
		c.Anim.Style = "grid"
		c.Anim.Norm = "log"
	},
}

// GetPreset returns a config with the named preset applied over the
// defaults, or nil when the name is unknown.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
