package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const configFile = "puyo.yaml"

// Load reads the configuration, applies environment overrides and validates it.
// Search order: customPath -> ~/.puyo/configs/puyo.yaml -> ./configs/puyo.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only changes what it names.
func Load(customPath string) (PuyoConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(customPath string) (PuyoConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(configFile),
		filepath.Join("configs", configFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := cfg
		if err := yaml.Unmarshal(data, &layered); err == nil {
			return layered, nil
		}
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if that fails.
func embeddedDefault() PuyoConfig {
	var cfg PuyoConfig
	if err := yaml.Unmarshal(defaultPuyoYAML, &cfg); err != nil {
		return DefaultPuyoConfig()
	}
	return cfg
}

// ApplyEnv overrides fields tagged with env from the environment.
// Unset variables leave the current values alone.
func ApplyEnv(cfg *PuyoConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse env overrides: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puyo", "configs", filename)
}
