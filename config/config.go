// Package config loads runtime settings from defaults, an optional YAML file and PORTFOLIO_ environment variables
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/portfolio-walk/audio"
	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/game"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/network"
	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/terminal"
)

// EnvPrefix namespaces environment overrides, e.g. PORTFOLIO_NETWORK_ADDRESS
const EnvPrefix = "PORTFOLIO"

// Config is the typed view of every setting
type Config struct {
	// Exhibits is a registry file path, empty uses the embedded dataset
	Exhibits string `mapstructure:"exhibits"`

	Simulation SimulationConfig `mapstructure:"simulation"`
	Input      InputConfig      `mapstructure:"input"`
	Viewport   ViewportConfig   `mapstructure:"viewport"`
	Terminal   TerminalConfig   `mapstructure:"terminal"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Network    NetworkConfig    `mapstructure:"network"`
	Log        LogConfig        `mapstructure:"log"`
}

// SimulationConfig tunes the world
type SimulationConfig struct {
	// Smoothing is "per-tick" or "time-constant"
	Smoothing          string  `mapstructure:"smoothing"`
	ProximityThreshold float64 `mapstructure:"proximityThreshold"`
	TopSpeed           float64 `mapstructure:"topSpeed"`
	Bound              float64 `mapstructure:"bound"`
}

// KeyBinding binds one key identifier to a direction name
type KeyBinding struct {
	Key       string `mapstructure:"key"`
	Direction string `mapstructure:"direction"`
}

// InputConfig tunes input sources
type InputConfig struct {
	// Keys replaces the default bindings when non-empty
	Keys         []KeyBinding `mapstructure:"keys"`
	JoystickSize float64      `mapstructure:"joystickSize"`
}

// ViewportConfig selects the device mode
type ViewportConfig struct {
	// Device is "", "desktop" or "mobile"; empty classifies by width
	Device string `mapstructure:"device"`
}

// TerminalConfig tunes the terminal frontend
type TerminalConfig struct {
	FrameInterval  time.Duration `mapstructure:"frameInterval"`
	MaxFrameDelta  time.Duration `mapstructure:"maxFrameDelta"`
	CellWidthPx    float64       `mapstructure:"cellWidthPx"`
	KeyHoldInitial time.Duration `mapstructure:"keyHoldInitial"`
	KeyHoldRepeat  time.Duration `mapstructure:"keyHoldRepeat"`
}

// AudioConfig tunes the chimes
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Muted   bool    `mapstructure:"muted"`
	Volume  float64 `mapstructure:"volume"`
}

// NetworkConfig tunes the websocket server
type NetworkConfig struct {
	Address        string        `mapstructure:"address"`
	Path           string        `mapstructure:"path"`
	StatusPath     string        `mapstructure:"statusPath"`
	MaxSessions    int           `mapstructure:"maxSessions"`
	FrameInterval  time.Duration `mapstructure:"frameInterval"`
	ReadTimeout    time.Duration `mapstructure:"readTimeout"`
	WriteTimeout   time.Duration `mapstructure:"writeTimeout"`
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
}

// LogConfig tunes logging
type LogConfig struct {
	Level string `mapstructure:"level"`
	// File receives logs; in terminal mode nothing else can
	File string `mapstructure:"file"`
	// Console also writes to stderr, ignored in terminal mode
	Console bool `mapstructure:"console"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("exhibits", "")

	v.SetDefault("simulation.smoothing", core.SmoothingPerTick.String())
	v.SetDefault("simulation.proximityThreshold", parameter.ProximityThreshold)
	v.SetDefault("simulation.topSpeed", parameter.AvatarTopSpeed)
	v.SetDefault("simulation.bound", parameter.AvatarBound)

	v.SetDefault("input.keys", []KeyBinding{})
	v.SetDefault("input.joystickSize", parameter.JoystickSize)

	v.SetDefault("viewport.device", "")

	v.SetDefault("terminal.frameInterval", parameter.FrameUpdateInterval)
	v.SetDefault("terminal.maxFrameDelta", parameter.MaxFrameDelta)
	v.SetDefault("terminal.cellWidthPx", parameter.TerminalCellWidthPx)
	v.SetDefault("terminal.keyHoldInitial", parameter.TerminalKeyHoldInitial)
	v.SetDefault("terminal.keyHoldRepeat", parameter.TerminalKeyHoldRepeat)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.muted", false)
	v.SetDefault("audio.volume", parameter.ChimeVolume)

	net := network.DefaultConfig()
	v.SetDefault("network.address", net.Address)
	v.SetDefault("network.path", net.Path)
	v.SetDefault("network.statusPath", net.StatusPath)
	v.SetDefault("network.maxSessions", net.MaxSessions)
	v.SetDefault("network.frameInterval", net.FrameInterval)
	v.SetDefault("network.readTimeout", net.ReadTimeout)
	v.SetDefault("network.writeTimeout", net.WriteTimeout)
	v.SetDefault("network.allowedOrigins", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.console", true)
}

// Load reads defaults, then the YAML file at path if given, then environment overrides
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the world cannot run with
func (c *Config) Validate() error {
	var errs []error
	if _, err := core.ParseSmoothing(c.Simulation.Smoothing); err != nil {
		errs = append(errs, err)
	}
	if c.Simulation.ProximityThreshold <= 0 {
		errs = append(errs, fmt.Errorf("simulation.proximityThreshold must be positive, got %v", c.Simulation.ProximityThreshold))
	}
	if c.Simulation.TopSpeed <= 0 {
		errs = append(errs, fmt.Errorf("simulation.topSpeed must be positive, got %v", c.Simulation.TopSpeed))
	}
	if c.Simulation.Bound <= 0 {
		errs = append(errs, fmt.Errorf("simulation.bound must be positive, got %v", c.Simulation.Bound))
	}
	if _, err := c.KeyTable(); err != nil {
		errs = append(errs, err)
	}
	switch c.Viewport.Device {
	case terminal.DeviceAuto, terminal.DeviceDesktop, terminal.DeviceMobile:
	default:
		errs = append(errs, fmt.Errorf("viewport.device must be desktop or mobile, got %q", c.Viewport.Device))
	}
	if c.Terminal.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("terminal.frameInterval must be positive"))
	}
	if c.Network.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("network.frameInterval must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0,1], got %v", c.Audio.Volume))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// KeyTable resolves the configured bindings, falling back to the defaults
func (c *Config) KeyTable() (input.KeyTable, error) {
	if len(c.Input.Keys) == 0 {
		return input.DefaultKeyTable(), nil
	}
	table := make(input.KeyTable, len(c.Input.Keys))
	for _, b := range c.Input.Keys {
		d, err := input.ParseDirection(b.Direction)
		if err != nil {
			return nil, fmt.Errorf("input.keys %q: %w", b.Key, err)
		}
		table[b.Key] = d
	}
	return table, nil
}

// GameOptions builds world options; the caller attaches the logger
func (c *Config) GameOptions() game.Options {
	smoothing, _ := core.ParseSmoothing(c.Simulation.Smoothing)
	opts := game.DefaultOptions().WithSmoothing(smoothing)
	opts.ProximityThreshold = c.Simulation.ProximityThreshold
	opts.Character.TopSpeed = c.Simulation.TopSpeed
	opts.Character.Bound = c.Simulation.Bound
	opts.JoystickSize = c.Input.JoystickSize
	if keys, err := c.KeyTable(); err == nil {
		opts.Keys = keys
	}
	return opts
}

// TerminalConfig builds the terminal frontend settings
func (c *Config) TerminalConfig() terminal.Config {
	tc := terminal.DefaultConfig()
	tc.FrameInterval = c.Terminal.FrameInterval
	tc.MaxFrameDelta = c.Terminal.MaxFrameDelta
	tc.CellWidthPx = c.Terminal.CellWidthPx
	tc.KeyHoldInitial = c.Terminal.KeyHoldInitial
	tc.KeyHoldRepeat = c.Terminal.KeyHoldRepeat
	tc.Device = c.Viewport.Device
	return tc
}

// NetworkConfig builds the websocket server settings
func (c *Config) NetworkConfig() *network.Config {
	nc := network.DefaultConfig()
	nc.Address = c.Network.Address
	nc.Path = c.Network.Path
	nc.StatusPath = c.Network.StatusPath
	nc.MaxSessions = c.Network.MaxSessions
	nc.FrameInterval = c.Network.FrameInterval
	nc.ReadTimeout = c.Network.ReadTimeout
	nc.WriteTimeout = c.Network.WriteTimeout
	nc.AllowedOrigins = c.Network.AllowedOrigins
	return nc
}

// AudioConfig builds the chime settings
func (c *Config) AudioConfig() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.Volume = c.Audio.Volume
	return ac
}
