package arena

import (
	"time"

	"cell-arena/internal/core"
)

// Presets maps preset names to their base configuration. Map overrides are
// applied on top.
var Presets = map[string]func() Config{
	"classic": DefaultConfig,
	"timed": func() Config {
		c := DefaultConfig()
		c.TargetCount = 3
		c.Params.TimeLimit = 60 * time.Second
		return c
	},
	"blitz": func() Config {
		c := DefaultConfig()
		c.Params.BaseSpeed = 2.4
		c.Params.TimeLimit = 30 * time.Second
		c.Params.ItemSpawnInterval = 800 * time.Millisecond
		c.Params.ItemLifetime = 6 * time.Second
		return c
	},
}

// PresetConfig builds the named preset with overrides applied. Unknown
// names fall back to the classic rules.
func PresetConfig(name string, overrides map[string]string) Config {
	base, ok := Presets[name]
	if !ok {
		base = DefaultConfig
	}
	c := base()
	ApplyMap(&c, overrides)
	return c
}

func init() {
	for name := range Presets {
		name := name
		core.Register(name, func(cfg map[string]string) core.Sim {
			return New(PresetConfig(name, cfg), WithName(name))
		})
	}
}
