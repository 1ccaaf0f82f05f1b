// Package config holds the YAML configuration of the max7219 demo.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Display modes.
const (
	ModeText   = "text"
	ModeScroll = "scroll"
	ModeClock  = "clock"
)

// Config is the top-level demo configuration.
type Config struct {
	// SPI is the periph.io SPI port name. Empty selects the first port.
	SPI string `yaml:"spi"`

	// CS is the GPIO used as the LOAD line (e.g. "GPIO8").
	CS string `yaml:"cs"`

	// Chips is the number of daisy-chained modules.
	Chips int `yaml:"chips"`

	// Intensity is the brightness set at init, 0-15.
	Intensity int `yaml:"intensity"`

	// Mode selects what the demo shows: "text", "scroll" or "clock".
	Mode string `yaml:"mode"`

	// Text is shown in text mode and scrolled in scroll mode.
	Text string `yaml:"text"`

	// ScrollInterval is the delay between one-column scroll steps.
	ScrollInterval time.Duration `yaml:"scroll_interval"`

	// ClockSchedule is a cron schedule with a seconds field
	// (e.g. "*/1 * * * * *") driving clock mode redraws.
	ClockSchedule string `yaml:"clock_schedule"`

	// ClockFormat is a time.Format layout.
	ClockFormat string `yaml:"clock_format"`

	// Verbosity is the stdr verbosity. 1 logs init steps, 2 every
	// transaction.
	Verbosity int `yaml:"verbosity"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		SPI:            "",
		CS:             "GPIO8",
		Chips:          4,
		Intensity:      1,
		Mode:           ModeText,
		Text:           "Hi!",
		ScrollInterval: 50 * time.Millisecond,
		ClockSchedule:  "*/1 * * * * *",
		ClockFormat:    "15:04",
		Verbosity:      0,
	}
}

// Normalize fills in missing or out of range values with defaults so that
// partially-filled configs still behave.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.CS == "" {
		c.CS = def.CS
	}
	if c.Chips < 1 {
		c.Chips = def.Chips
	}
	if c.Intensity < 0 || c.Intensity > 15 {
		c.Intensity = def.Intensity
	}
	switch c.Mode {
	case ModeText, ModeScroll, ModeClock:
	default:
		c.Mode = def.Mode
	}
	if c.ScrollInterval <= 0 {
		c.ScrollInterval = def.ScrollInterval
	}
	if c.ClockSchedule == "" {
		c.ClockSchedule = def.ClockSchedule
	}
	if c.ClockFormat == "" {
		c.ClockFormat = def.ClockFormat
	}
	if c.Verbosity < 0 {
		c.Verbosity = 0
	}
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, the defaults are written there with 0600
// permissions and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file and rename. The parent
// directory is created 0700 and the file ends up 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".max7219-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
