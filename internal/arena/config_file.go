package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override config keys, e.g.
// ARENA_TIME_LIMIT_SEC=90 maps to the "time_limit_sec" key of FromMap.
const EnvPrefix = "ARENA_"

// LoadFile reads a YAML config and overlays it on DefaultConfig. Fields the
// file does not mention keep their defaults. Durations accept Go duration
// strings such as "1.5s" or "800ms".
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("arena: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("arena: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("arena: config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv collects ARENA_* overrides from a dotenv file and the process
// environment, the latter taking precedence. A missing file is not an error.
// The returned map uses FromMap keys.
func LoadEnv(path string) (map[string]string, error) {
	out := map[string]string{}
	if path != "" {
		vars, err := godotenv.Read(path)
		switch {
		case err == nil:
			mergeEnv(out, vars)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("arena: read env file %s: %w", path, err)
		}
	}
	env := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			env[k] = v
		}
	}
	mergeEnv(out, env)
	return out, nil
}

func mergeEnv(dst, vars map[string]string) {
	for k, v := range vars {
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
		if key == "" {
			continue
		}
		dst[key] = v
	}
}
