package arena

import (
	"math"
	"strconv"
	"time"

	"cell-arena/internal/core"
)

func (e *Engine) Parameters() core.ParameterSnapshot {
	cfg := e.cfg
	params := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Arena",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				floatParam("margin", "Margin", cfg.Margin),
				stringParam("seed", "Seed", seedLabel(e.seed)),
				intParam("target", "Target survivors", e.target),
				intParam("time_limit_sec", "Time limit (s)", int(params.TimeLimit/time.Second)),
				intParam("frame_cap", "Frame cap", params.FrameCap),
			},
		},
		{
			Name: "Cells",
			Params: []core.Parameter{
				floatParam("initial_radius", "Initial radius", params.InitialRadius),
				floatParam("min_radius", "Min radius", params.MinRadius),
				floatParam("max_radius", "Max radius", params.MaxRadius),
				floatParam("base_speed", "Base speed", params.BaseSpeed),
				floatParam("speed_multiplier", "Speed multiplier", params.SpeedMultiplier),
				millisParam("revive_invincible_ms", "Revive invincibility (ms)", params.ReviveInvincible),
			},
		},
		{
			Name: "Items",
			Params: []core.Parameter{
				millisParam("item_spawn_interval_ms", "Spawn interval (ms)", params.ItemSpawnInterval),
				millisParam("item_lifetime_ms", "Lifetime (ms)", params.ItemLifetime),
				floatParam("item_radius", "Item radius", params.ItemRadius),
				millisParam("speed_duration_ms", "Speed duration (ms)", params.SpeedDuration),
				millisParam("shuriken_duration_ms", "Shuriken duration (ms)", params.ShurikenDuration),
				floatParam("weight_speed", "Speed weight", params.ItemWeights.Speed),
				floatParam("weight_revive", "Revive weight", params.ItemWeights.Revive),
				floatParam("weight_shuriken", "Shuriken weight", params.ItemWeights.Shuriken),
			},
		},
		{
			Name: "AI",
			Params: []core.Parameter{
				millisParam("ai_turn_min_ms", "Turn min (ms)", params.AI.TurnMin),
				millisParam("ai_turn_max_ms", "Turn max (ms)", params.AI.TurnMax),
				floatParam("ai_jitter", "Jitter", params.AI.Jitter),
				floatParam("ai_wall_bias", "Wall bias", params.AI.WallBias),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust during a run. None
// of them changes the number of RNG draws per tick.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "base_speed", Label: "Base speed", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 8, HasMin: true, HasMax: true},
		{Key: "ai_jitter", Label: "AI jitter", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "ai_wall_bias", Label: "AI wall bias", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "frame_cap", Label: "Frame cap", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 240, HasMin: true, HasMax: true},
	}
}

func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "frame_cap":
		e.cfg.Params.FrameCap = clampInt(value, 0, 240)
		e.gate.SetCap(e.cfg.Params.FrameCap)
		return true
	}
	return false
}

func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "base_speed":
		e.cfg.Params.BaseSpeed = clampFloat(value, 0.1, 8)
	case "ai_jitter":
		e.cfg.Params.AI.Jitter = clampFloat(value, 0, 1)
	case "ai_wall_bias":
		e.cfg.Params.AI.WallBias = clampFloat(value, 0, 1)
	default:
		return false
	}
	return true
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func millisParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value.Milliseconds(), 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
