package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMarble loads marble maze configuration.
// Search order: customPath -> ~/.arcade/configs/marble.yaml -> ./configs/marble.yaml -> embedded default
func LoadMarble(customPath string) (MarbleConfig, error) {
	return load("marble", customPath, DefaultMarbleConfig)
}

// LoadFighter loads geometry fighter configuration.
// Search order: customPath -> ~/.arcade/configs/fighter.yaml -> ./configs/fighter.yaml -> embedded default
func LoadFighter(customPath string) (FighterConfig, error) {
	return load("fighter", customPath, DefaultFighterConfig)
}

// load decodes the first readable config for gameID over the hardcoded
// defaults, so a file only needs the keys it changes. Only an explicit
// customPath produces an error; the other locations are optional.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := fallback()
		if err := yaml.Unmarshal(data, &fromFile); err == nil {
			return fromFile, nil
		}
	}

	if embedded := GetDefaultYAML(gameID); embedded != nil {
		fromEmbed := fallback()
		if err := yaml.Unmarshal(embedded, &fromEmbed); err == nil {
			return fromEmbed, nil
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
