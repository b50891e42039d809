package drafter

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// snapSettings is the on-disk TOML schema for snap configuration:
//
//	[grid]
//	enabled = true
//	size = 600.0
//
//	[ortho]
//	enabled = false
//
//	[osnap]
//	enabled = true
//	radius = 10.0
type snapSettings struct {
	Grid struct {
		Enabled bool    `toml:"enabled"`
		Size    float64 `toml:"size"`
	} `toml:"grid"`
	Ortho struct {
		Enabled bool `toml:"enabled"`
	} `toml:"ortho"`
	Osnap struct {
		Enabled bool    `toml:"enabled"`
		Radius  float64 `toml:"radius"`
	} `toml:"osnap"`
}

// LoadSnapConfig reads a snap configuration from a TOML file. A missing
// file is not an error: the defaults are returned so a first run works
// without any setup. Malformed TOML and out-of-range values are errors.
func LoadSnapConfig(path string) (SnapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger().Warn("snap settings not found, using defaults", "path", path)
			return DefaultSnapConfig(), nil
		}
		return SnapConfig{}, fmt.Errorf("reading snap settings %s: %w", path, err)
	}
	return ParseSnapConfig(data)
}

// ParseSnapConfig decodes and validates TOML snap settings.
func ParseSnapConfig(data []byte) (SnapConfig, error) {
	var s snapSettings
	if err := toml.Unmarshal(data, &s); err != nil {
		return SnapConfig{}, fmt.Errorf("parsing snap settings: %w", err)
	}

	cfg := SnapConfig{
		GridEnabled:       s.Grid.Enabled,
		GridSize:          s.Grid.Size,
		OrthoEnabled:      s.Ortho.Enabled,
		ObjectSnapEnabled: s.Osnap.Enabled,
		SnapRadius:        s.Osnap.Radius,
	}
	if cfg.GridSize == 0 {
		cfg.GridSize = GridFine
	}
	if cfg.SnapRadius == 0 {
		cfg.SnapRadius = DefaultSnapConfig().SnapRadius
	}

	if cfg.GridSize < 0 {
		return SnapConfig{}, fmt.Errorf("parsing snap settings: grid size must be positive, got %g", cfg.GridSize)
	}
	if cfg.SnapRadius < 0 {
		return SnapConfig{}, fmt.Errorf("parsing snap settings: snap radius must be positive, got %g", cfg.SnapRadius)
	}
	return cfg, nil
}

// SaveSnapConfig writes a snap configuration to a TOML file.
func SaveSnapConfig(path string, cfg SnapConfig) error {
	var s snapSettings
	s.Grid.Enabled = cfg.GridEnabled
	s.Grid.Size = cfg.GridSize
	s.Ortho.Enabled = cfg.OrthoEnabled
	s.Osnap.Enabled = cfg.ObjectSnapEnabled
	s.Osnap.Radius = cfg.SnapRadius

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding snap settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snap settings %s: %w", path, err)
	}
	return nil
}
