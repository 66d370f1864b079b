package arena

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// AIParams tunes the autonomous steering of every cell.
type AIParams struct {
	TurnMin  time.Duration `yaml:"turn_min"`
	TurnMax  time.Duration `yaml:"turn_max"`
	Jitter   float64       `yaml:"jitter"`
	WallBias float64       `yaml:"wall_bias"`
}

// ItemWeights are the relative spawn weights per item kind.
type ItemWeights struct {
	Speed    float64 `yaml:"speed"`
	Revive   float64 `yaml:"revive"`
	Shuriken float64 `yaml:"shuriken"`
}

// Table returns the kinds and weights in a fixed order so that weighted
// draws stay reproducible.
func (w ItemWeights) Table() ([]ItemKind, []float64) {
	return []ItemKind{ItemSpeed, ItemRevive, ItemShuriken},
		[]float64{w.Speed, w.Revive, w.Shuriken}
}

// Params holds the gameplay tunables.
type Params struct {
	InitialRadius float64 `yaml:"initial_radius"`
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`

	BaseSpeed        float64       `yaml:"base_speed"`
	SpeedMultiplier  float64       `yaml:"speed_multiplier"`
	SpeedDuration    time.Duration `yaml:"speed_duration"`
	ShurikenDuration time.Duration `yaml:"shuriken_duration"`
	ReviveInvincible time.Duration `yaml:"revive_invincible"`

	// TimeLimit of zero means the run only ends on the survivor target.
	TimeLimit time.Duration `yaml:"time_limit"`

	ItemSpawnInterval time.Duration `yaml:"item_spawn_interval"`
	ItemLifetime      time.Duration `yaml:"item_lifetime"`
	ItemRadius        float64       `yaml:"item_radius"`
	ItemWeights       ItemWeights   `yaml:"item_weights"`

	AI AIParams `yaml:"ai"`

	// FrameCap limits accepted ticks per second; zero disables the cap.
	FrameCap int `yaml:"frame_cap"`
}

// Config controls arena dimensions, the default run setup and gameplay.
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"`

	Seed        string `yaml:"seed"`
	TargetCount int    `yaml:"target_count"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       1024,
		Height:      640,
		Margin:      24,
		TargetCount: 1,
		Params: Params{
			InitialRadius:     14,
			MinRadius:         8,
			MaxRadius:         64,
			BaseSpeed:         1.6,
			SpeedMultiplier:   2.0,
			SpeedDuration:     6 * time.Second,
			ShurikenDuration:  5 * time.Second,
			ReviveInvincible:  800 * time.Millisecond,
			ItemSpawnInterval: 1500 * time.Millisecond,
			ItemLifetime:      12 * time.Second,
			ItemRadius:        10,
			ItemWeights: ItemWeights{
				Speed:    0.45,
				Revive:   0.25,
				Shuriken: 0.30,
			},
			AI: AIParams{
				TurnMin:  600 * time.Millisecond,
				TurnMax:  1400 * time.Millisecond,
				Jitter:   0.35,
				WallBias: 0.7,
			},
			FrameCap: 60,
		},
	}
}

var (
	// ErrInvalidConfig wraps every Validate failure.
	ErrInvalidConfig = errors.New("arena: invalid config")
)

// Validate reports the first inconsistency in the configuration.
func (c Config) Validate() error {
	p := c.Params
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: arena size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Margin < 0:
		return fmt.Errorf("%w: negative margin %v", ErrInvalidConfig, c.Margin)
	case float64(c.Width) <= 2*(c.Margin+100) || float64(c.Height) <= 2*(c.Margin+100):
		return fmt.Errorf("%w: arena %dx%d too small for margin %v", ErrInvalidConfig, c.Width, c.Height, c.Margin)
	case p.MinRadius <= 0 || p.MinRadius > p.InitialRadius || p.InitialRadius > p.MaxRadius:
		return fmt.Errorf("%w: radii must satisfy 0 < min <= initial <= max (got %v/%v/%v)",
			ErrInvalidConfig, p.MinRadius, p.InitialRadius, p.MaxRadius)
	case p.BaseSpeed < 0 || p.SpeedMultiplier < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	case p.ItemRadius <= 0:
		return fmt.Errorf("%w: item radius %v", ErrInvalidConfig, p.ItemRadius)
	case p.ItemSpawnInterval <= 0:
		return fmt.Errorf("%w: item spawn interval %v", ErrInvalidConfig, p.ItemSpawnInterval)
	case p.TimeLimit < 0:
		return fmt.Errorf("%w: negative time limit", ErrInvalidConfig)
	case p.AI.TurnMin < 0 || p.AI.TurnMax < p.AI.TurnMin:
		return fmt.Errorf("%w: turn range %v..%v", ErrInvalidConfig, p.AI.TurnMin, p.AI.TurnMax)
	case p.AI.WallBias < 0 || p.AI.WallBias > 1:
		return fmt.Errorf("%w: wall bias %v outside [0,1]", ErrInvalidConfig, p.AI.WallBias)
	case p.FrameCap < 0:
		return fmt.Errorf("%w: negative frame cap", ErrInvalidConfig)
	}
	w := p.ItemWeights
	if w.Speed < 0 || w.Revive < 0 || w.Shuriken < 0 || w.Speed+w.Revive+w.Shuriken <= 0 {
		return fmt.Errorf("%w: item weights %+v", ErrInvalidConfig, w)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overlays key/value pairs onto an existing config.
func ApplyMap(c *Config, cfg map[string]string) {
	if cfg == nil {
		return
	}
	p := &c.Params
	setInt(cfg, "w", &c.Width, 1)
	setInt(cfg, "h", &c.Height, 1)
	setFloat(cfg, "margin", &c.Margin, 0)
	if v, ok := cfg["seed"]; ok {
		c.Seed = v
	}
	setInt(cfg, "target", &c.TargetCount, 1)

	setFloat(cfg, "initial_radius", &p.InitialRadius, 1)
	setFloat(cfg, "min_radius", &p.MinRadius, 1)
	setFloat(cfg, "max_radius", &p.MaxRadius, 1)
	setFloat(cfg, "base_speed", &p.BaseSpeed, 0)
	setFloat(cfg, "speed_multiplier", &p.SpeedMultiplier, 0)
	setMillis(cfg, "speed_duration_ms", &p.SpeedDuration)
	setMillis(cfg, "shuriken_duration_ms", &p.ShurikenDuration)
	setMillis(cfg, "revive_invincible_ms", &p.ReviveInvincible)
	if v, ok := cfg["time_limit_sec"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.TimeLimit = time.Duration(parsed * float64(time.Second))
		}
	}
	setMillis(cfg, "item_spawn_interval_ms", &p.ItemSpawnInterval)
	setMillis(cfg, "item_lifetime_ms", &p.ItemLifetime)
	setFloat(cfg, "item_radius", &p.ItemRadius, 1)
	setFloat(cfg, "weight_speed", &p.ItemWeights.Speed, 0)
	setFloat(cfg, "weight_revive", &p.ItemWeights.Revive, 0)
	setFloat(cfg, "weight_shuriken", &p.ItemWeights.Shuriken, 0)
	setMillis(cfg, "ai_turn_min_ms", &p.AI.TurnMin)
	setMillis(cfg, "ai_turn_max_ms", &p.AI.TurnMax)
	if p.AI.TurnMax < p.AI.TurnMin {
		p.AI.TurnMax = p.AI.TurnMin
	}
	setFloat(cfg, "ai_jitter", &p.AI.Jitter, 0)
	setFloat(cfg, "ai_wall_bias", &p.AI.WallBias, 0)
	if p.AI.WallBias > 1 {
		p.AI.WallBias = 1
	}
	setInt(cfg, "frame_cap", &p.FrameCap, 0)
}

func setInt(cfg map[string]string, key string, dst *int, min int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
			*dst = parsed
		}
	}
}

func setFloat(cfg map[string]string, key string, dst *float64, min float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min {
			*dst = parsed
		}
	}
}

func setMillis(cfg map[string]string, key string, dst *time.Duration) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*dst = time.Duration(parsed) * time.Millisecond
		}
	}
}
