package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plus3/towerclimb/input"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// LocalPath is the project-local config file tried before the embedded default.
const LocalPath = "configs/towerclimb.yaml"

var ErrInvalid = errors.New("invalid config")

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default: %v", err))
	}
	return cfg
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load resolves the configuration.
// Search order: customPath -> ~/.towerclimb/config.yaml -> ./configs/towerclimb.yaml -> embedded default.
// Only a custom path is required to exist and parse; the other candidates are skipped on failure.
// It returns the path the config was read from, or "" for the embedded default.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := Default()
	return cfg, "", cfg.Validate()
}

// LoadFile reads path over the embedded default, so omitted keys keep their default value.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data over the embedded default and validates the result.
func Parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".towerclimb", "config.yaml")
}

// Validate rejects configurations the game cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.World.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("world.capacity must be positive, got %d", c.World.Capacity))
	}
	if c.Player.MaxJumpCount == 0 {
		errs = append(errs, errors.New("player.max_jump_count must be at least 1"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS < 0 {
		errs = append(errs, fmt.Errorf("window.tps must not be negative, got %d", c.Window.TPS))
	}

	if c.World.Capacity > 0 && int64(c.Tower.Stairs)+1 > int64(c.World.Capacity) {
		errs = append(errs, fmt.Errorf("tower.stairs (%d) plus the player exceed world.capacity (%d)", c.Tower.Stairs, c.World.Capacity))
	}

	switch c.Debug.OnDrawError {
	case DrawErrorFail, DrawErrorSkip:
	default:
		errs = append(errs, fmt.Errorf("debug.on_draw_error must be %q or %q, got %q", DrawErrorFail, DrawErrorSkip, c.Debug.OnDrawError))
	}

	for action, name := range c.Input.Bindings() {
		if _, err := input.ParseKey(name); err != nil {
			errs = append(errs, fmt.Errorf("input.%s: %w", action, err))
		}
	}

	for _, tex := range []string{c.Player.Texture, c.Tower.StairTexture} {
		if _, ok := c.Textures[tex]; !ok {
			errs = append(errs, fmt.Errorf("texture %q is not defined under textures", tex))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Bindings returns the configured key names by action.
func (c InputConfig) Bindings() map[string]string {
	return map[string]string{
		"jump":          c.Jump,
		"up":            c.Up,
		"down":          c.Down,
		"left":          c.Left,
		"right":         c.Right,
		"camera_up":     c.CameraUp,
		"camera_down":   c.CameraDown,
		"camera_left":   c.CameraLeft,
		"camera_right":  c.CameraRight,
		"camera_follow": c.CameraFollow,
		"confirm":       c.Confirm,
		"give_up":       c.GiveUp,
		"overlay":       c.Overlay,
	}
}
