package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/otterpet/constants"
)

// EnvPath names the environment variable consulted when no -config flag is given
const EnvPath = "OTTERPET_CONFIG"

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Display DisplayConfig `toml:"display"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`

	// Undecoded lists keys present in the file that matched no field
	Undecoded []string `toml:"-"`
}

type SimConfig struct {
	Seed          int64         `toml:"seed"` // 0 seeds from the clock
	FrameInterval time.Duration `toml:"frame_interval"`
}

type DisplayConfig struct {
	CellWidth  int  `toml:"cell_width"`  // world units per terminal column
	CellHeight int  `toml:"cell_height"` // world units per terminal row
	Mouse      bool `toml:"mouse"`
}

type AudioConfig struct {
	Enabled         bool    `toml:"enabled"`
	MasterVolume    float64 `toml:"master_volume"` // 0.0-1.0
	SampleRate      int     `toml:"sample_rate"`
	CueOnMoodChange bool    `toml:"cue_on_mood_change"`
}

type LoggingConfig struct {
	Debug     bool   `toml:"debug"`
	Level     string `toml:"level"`
	Format    string `toml:"format"` // "json" or "console"
	Dir       string `toml:"dir"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Sim: SimConfig{
			Seed:          0,
			FrameInterval: constants.FrameInterval,
		},
		Display: DisplayConfig{
			CellWidth:  constants.DefaultCellWidth,
			CellHeight: constants.DefaultCellHeight,
			Mouse:      true,
		},
		Audio: AudioConfig{
			Enabled:         true,
			MasterVolume:    0.5,
			SampleRate:      constants.DefaultSampleRate,
			CueOnMoodChange: false,
		},
		Logging: LoggingConfig{
			Debug:     false,
			Level:     "debug",
			Format:    "console",
			Dir:       "logs",
			MaxSizeMB: 10,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns flagPath, falling back to $OTTERPET_CONFIG
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvPath)
}

// Validate rejects values the runtime cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Sim.FrameInterval <= 0:
		return fmt.Errorf("%w: sim.frame_interval must be positive, got %s", ErrInvalid, c.Sim.FrameInterval)
	case c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0:
		return fmt.Errorf("%w: display cell size must be positive, got %dx%d", ErrInvalid, c.Display.CellWidth, c.Display.CellHeight)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume must be in [0,1], got %v", ErrInvalid, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	case c.Logging.Format != "json" && c.Logging.Format != "console":
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalid, c.Logging.Format)
	case c.Logging.MaxSizeMB < 0:
		return fmt.Errorf("%w: logging.max_size_mb must not be negative", ErrInvalid)
	}
	return nil
}
