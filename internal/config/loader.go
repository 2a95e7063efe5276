package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the application configuration. Files overlay the defaults, so
// a partial file only changes the keys it names.
// Search order: customPath -> ~/.spacedefender/config.{yaml,toml} ->
// ./configs/defender.{yaml,toml} -> embedded default -> hard-coded default
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := decode(path, data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension. Anything not ending in
// .toml is read as YAML.
func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func searchPaths() []string {
	var paths []string
	if dir := UserDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "defender.yaml"),
		filepath.Join("configs", "defender.toml"),
	)
}

// UserDir returns ~/.spacedefender, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacedefender")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
