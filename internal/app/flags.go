package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cell-arena/internal/arena"
	"cell-arena/internal/core"
)

// ErrUnknownPreset is returned by Build when the preset is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the well-formed pairs; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Config represents the command-line parameters shared by the arena
// commands.
type Config struct {
	Preset       string
	Scale        int
	TPS          int
	Seed         string
	Target       int
	Participants string
	ConfigFile   string
	EnvFile      string
	Verbose      bool
	Set          KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "classic", Scale: 1, TPS: 60, EnvFile: ".env"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "arena preset ("+strings.Join(core.SimNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed for the run (empty for time-based)")
	fs.IntVar(&c.Target, "target", c.Target, "survivors needed to end the run (0 uses the config value)")
	fs.StringVar(&c.Participants, "participants", c.Participants, "comma-separated participant IDs (default roster when empty)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML config file overlaid on the defaults")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "dotenv file with ARENA_* overrides")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// Overrides merges ARENA_* environment values with -set flags, the flags
// taking precedence. Non-empty -seed and -target flags win over both.
func (c *Config) Overrides() (map[string]string, error) {
	out, err := arena.LoadEnv(c.EnvFile)
	if err != nil {
		return nil, err
	}
	for k, v := range c.Set.Map() {
		out[k] = v
	}
	if c.Seed != "" {
		out["seed"] = c.Seed
	}
	if c.Target > 0 {
		out["target"] = strconv.Itoa(c.Target)
	}
	return out, nil
}

// ArenaConfig resolves the engine configuration: a YAML file when given,
// otherwise the named preset, then the overrides on top.
func (c *Config) ArenaConfig() (arena.Config, error) {
	cfg, _, err := c.resolve()
	return cfg, err
}

func (c *Config) resolve() (arena.Config, map[string]string, error) {
	overrides, err := c.Overrides()
	if err != nil {
		return arena.Config{}, nil, err
	}

	var cfg arena.Config
	if c.ConfigFile != "" {
		cfg, err = arena.LoadFile(c.ConfigFile)
		if err != nil {
			return arena.Config{}, nil, err
		}
		arena.ApplyMap(&cfg, overrides)
	} else {
		if _, ok := core.Sims()[c.Preset]; !ok {
			return arena.Config{}, nil, fmt.Errorf("%w %q (have %s)", ErrUnknownPreset, c.Preset, strings.Join(core.SimNames(), ", "))
		}
		cfg = arena.PresetConfig(c.Preset, overrides)
	}
	if err := cfg.Validate(); err != nil {
		return arena.Config{}, nil, err
	}
	return cfg, overrides, nil
}

// Roster returns the selected participants and checks them against the
// target.
func (c *Config) Roster(target int) ([]core.Participant, error) {
	var ids []string
	if c.Participants != "" {
		ids = strings.Split(c.Participants, ",")
	}
	roster := arena.SelectRoster(ids)
	if err := arena.ValidateStart(roster, target); err != nil {
		return nil, err
	}
	return roster, nil
}

// Logger builds the structured logger handed to the engine.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Build resolves the configuration and constructs an engine, returning it
// with the roster to start it with. Presets are built by their registered
// factory; a config file builds the engine directly under the name "custom".
func (c *Config) Build(w io.Writer, opts ...arena.Option) (*arena.Engine, []core.Participant, error) {
	cfg, overrides, err := c.resolve()
	if err != nil {
		return nil, nil, err
	}
	roster, err := c.Roster(cfg.TargetCount)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]arena.Option{arena.WithLogger(c.Logger(w))}, opts...)
	if c.ConfigFile != "" {
		opts = append([]arena.Option{arena.WithName("custom")}, opts...)
		return arena.New(cfg, opts...), roster, nil
	}

	sim := core.Sims()[c.Preset](overrides)
	eng, ok := sim.(*arena.Engine)
	if !ok {
		return nil, nil, fmt.Errorf("preset %q built %T, not an arena engine", c.Preset, sim)
	}
	eng.Apply(opts...)
	return eng, roster, nil
}
