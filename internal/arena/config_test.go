package arena

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                      "800",
		"seed":                   "abc",
		"target":                 "3",
		"base_speed":             "2.5",
		"time_limit_sec":         "90",
		"item_spawn_interval_ms": "750",
		"ai_wall_bias":           "4",
		"h":                      "not-a-number",
	})
	if cfg.Width != 800 || cfg.Height != 640 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != "abc" || cfg.TargetCount != 3 {
		t.Fatalf("unexpected seed/target %q/%d", cfg.Seed, cfg.TargetCount)
	}
	if cfg.Params.BaseSpeed != 2.5 || cfg.Params.TimeLimit != 90*time.Second {
		t.Fatalf("unexpected speed/limit %v/%v", cfg.Params.BaseSpeed, cfg.Params.TimeLimit)
	}
	if cfg.Params.ItemSpawnInterval != 750*time.Millisecond {
		t.Fatalf("unexpected spawn interval %v", cfg.Params.ItemSpawnInterval)
	}
	if cfg.Params.AI.WallBias != 1 {
		t.Fatalf("expected wall bias clamped to 1, got %v", cfg.Params.AI.WallBias)
	}
}

func TestValidateRejectsBadRadii(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.InitialRadius = 100
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	data := []byte(`
width: 1280
seed: tournament
params:
  time_limit: 2m
  item_weights:
    speed: 0.2
    revive: 0.2
    shuriken: 0.6
  ai:
    jitter: 0.1
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Width != 1280 || cfg.Height != 640 || cfg.Seed != "tournament" {
		t.Fatalf("unexpected arena fields %+v", cfg)
	}
	if cfg.Params.TimeLimit != 2*time.Minute {
		t.Fatalf("expected 2m limit, got %v", cfg.Params.TimeLimit)
	}
	if cfg.Params.ItemWeights.Shuriken != 0.6 || cfg.Params.AI.Jitter != 0.1 {
		t.Fatalf("unexpected nested overrides %+v", cfg.Params)
	}
	if cfg.Params.AI.TurnMax != 1400*time.Millisecond || cfg.Params.BaseSpeed != 1.6 {
		t.Fatal("fields absent from the file must keep their defaults")
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadEnvMergesFileAndProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "ARENA_SEED=from-file\nARENA_TARGET=2\nOTHER=ignored\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARENA_TARGET", "4")

	vars, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if vars["seed"] != "from-file" {
		t.Fatalf("expected seed from file, got %q", vars["seed"])
	}
	if vars["target"] != "4" {
		t.Fatalf("expected process env to win, got %q", vars["target"])
	}
	if _, ok := vars["other"]; ok {
		t.Fatal("unprefixed keys must be ignored")
	}

	if _, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
}

func TestValidateStart(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		target int
		want   error
	}{
		{"ok", 3, 1, nil},
		{"max target", 3, 2, nil},
		{"too few", 1, 1, ErrTooFewParticipants},
		{"target zero", 3, 0, ErrInvalidTarget},
		{"target equals roster", 3, 3, ErrInvalidTarget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStart(testRoster(tc.n), tc.target)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ValidateStart(%d, %d) = %v, want %v", tc.n, tc.target, err, tc.want)
			}
		})
	}
}

func TestSelectRoster(t *testing.T) {
	if got := len(SelectRoster(nil)); got != len(DefaultRoster()) {
		t.Fatalf("expected full roster, got %d", got)
	}
	got := SelectRoster([]string{"zo.7", " guest ", ""})
	if len(got) != 2 || got[0].ID != "zo.7" || got[1].ID != "guest" || got[1].Name != "guest" {
		t.Fatalf("unexpected selection %+v", got)
	}
}
