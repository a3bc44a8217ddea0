package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "factorrun.yaml"

// Load loads the Factor Run configuration.
// Search order: customPath -> ~/.factorrun/configs/factorrun.yaml ->
// ./configs/factorrun.yaml -> embedded default -> hard-coded default.
// Only an explicit customPath produces an error; the search path falls
// through silently.
func Load(customPath string) (FactorRunConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FactorRunConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FactorRunConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultFactorRunYAML)
	if err != nil {
		return DefaultFactorRunConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults, so a partial file
// only overrides the keys it names.
func Parse(data []byte) (FactorRunConfig, error) {
	cfg := DefaultFactorRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FactorRunConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".factorrun", "configs", filename)
}
