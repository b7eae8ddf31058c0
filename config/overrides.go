package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the optional YAML overrides file.
const FileName = "tangent.yaml"

// ErrInvalidConfig is returned when overrides produce unusable geometry.
var ErrInvalidConfig = errors.New("invalid config")

// overrides mirrors the tunable globals. Sections missing from the file
// keep their defaults.
type overrides struct {
	Screen   Config         `yaml:"screen"`
	Player   PlayerConfig   `yaml:"player"`
	Platform PlatformConfig `yaml:"platform"`
	Coins    CoinConfig     `yaml:"coins"`
	Level    LevelConfig    `yaml:"level"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
}

func currentOverrides() overrides {
	return overrides{
		Screen:   *C,
		Player:   Player,
		Platform: Platform,
		Coins:    Coins,
		Level:    Level,
		Audio:    Audio,
		Debug:    Debug,
	}
}

// LoadOverrides applies YAML overrides to the global configuration.
// Search order: customPath -> ~/.tangent/tangent.yaml -> ./configs/tangent.yaml.
// It returns the path that was applied, or "" when defaults are kept.
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := ApplyYAML(data); err != nil {
			return "", fmt.Errorf("failed to apply config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := ApplyYAML(data); err != nil {
			return "", fmt.Errorf("failed to apply config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// ApplyYAML decodes data over the current configuration. Nothing is
// changed when decoding or validation fails.
func ApplyYAML(data []byte) error {
	o := currentOverrides()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := o.validate(); err != nil {
		return err
	}

	screen := o.Screen
	C = &screen
	Player = o.Player
	Platform = o.Platform
	Coins = o.Coins
	Level = o.Level
	Audio = o.Audio
	Debug = o.Debug
	return nil
}

func (o *overrides) validate() error {
	s := o.Screen
	switch {
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tileSize must be positive", ErrInvalidConfig)
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidConfig)
	case s.Width%s.TileSize != 0 || s.Height%s.TileSize != 0:
		return fmt.Errorf("%w: screen %dx%d is not a multiple of tile %d", ErrInvalidConfig, s.Width, s.Height, s.TileSize)
	case o.Level.Count < 1:
		return fmt.Errorf("%w: level count must be at least 1", ErrInvalidConfig)
	case o.Coins.PerLife < 1:
		return fmt.Errorf("%w: coins per life must be at least 1", ErrInvalidConfig)
	case o.Player.StartingLives < 0 || o.Player.StartingLives > o.Player.MaxLives:
		return fmt.Errorf("%w: starting lives %d outside [0, %d]", ErrInvalidConfig, o.Player.StartingLives, o.Player.MaxLives)
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tangent", filename)
}
