package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every config type.
type validator interface {
	Validate() error
}

// load fills cfg from the first source that parses.
// Search order: customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default
// A custom path that cannot be read, parsed or validated is an error; the
// other sources are skipped silently when they fail.
func load(customPath, name string, embedded []byte, cfg validator) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(name); userCfgPath != "" {
		if tryFile(userCfgPath, cfg) {
			return nil
		}
	}

	// Try local configs directory
	if tryFile(filepath.Join("configs", name), cfg) {
		return nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, cfg); err != nil {
		return fmt.Errorf("failed to parse embedded %s: %w", name, err)
	}
	return cfg.Validate()
}

func tryFile(path string, cfg validator) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false
	}
	return cfg.Validate() == nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadBeatem loads the fighting game configuration.
func LoadBeatem(customPath string) (BeatemConfig, error) {
	cfg := DefaultBeatemConfig()
	if err := load(customPath, "beatem.yaml", defaultBeatemYAML, &cfg); err != nil {
		return DefaultBeatemConfig(), err
	}
	return cfg, nil
}

// LoadPlatformer loads the platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := load(customPath, "platformer.yaml", defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), err
	}
	return cfg, nil
}

// LoadRacing loads the racing game configuration.
func LoadRacing(customPath string) (RacingConfig, error) {
	cfg := DefaultRacingConfig()
	if err := load(customPath, "racing.yaml", defaultRacingYAML, &cfg); err != nil {
		return DefaultRacingConfig(), err
	}
	return cfg, nil
}

// LoadPanel loads the terminal panel configuration.
func LoadPanel(customPath string) (PanelConfig, error) {
	cfg := DefaultPanelConfig()
	if err := load(customPath, "panel.yaml", defaultPanelYAML, &cfg); err != nil {
		return DefaultPanelConfig(), err
	}
	return cfg, nil
}
