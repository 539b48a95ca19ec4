// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Validation errors returned by Load.
var (
	ErrNoPlayers     = errors.New("config: no players configured")
	ErrDuplicateKey  = errors.New("config: key bound more than once")
	ErrUnknownColor  = errors.New("config: color must be #rrggbb")
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config holds all arena configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Noodle    NoodleConfig    `yaml:"noodle"`
	Collision CollisionConfig `yaml:"collision"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Match     MatchConfig     `yaml:"match"`
	Timing    TimingConfig    `yaml:"timing"`
	Keys      KeysConfig      `yaml:"keys"`
	Players   []PlayerConfig  `yaml:"players"`
	Server    ServerConfig    `yaml:"server"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds the playfield dimensions. The arena is square.
type ArenaConfig struct {
	Size float64 `yaml:"size"` // valid coordinates are [0, size)
}

// NoodleConfig holds movement parameters shared by every noodle.
type NoodleConfig struct {
	Speed    float64 `yaml:"speed"`     // units per second
	TurnRate float64 `yaml:"turn_rate"` // radians per second
	Radius   float64 `yaml:"radius"`    // collision radius; contact distance is 2x this
}

// CollisionConfig holds self-collision tuning.
type CollisionConfig struct {
	GraceWindow   int `yaml:"grace_window"`    // newest own trail points ignored
	MinSelfLength int `yaml:"min_self_length"` // own trail shorter than this never self-collides
}

// SpawnConfig holds the start grid layout.
type SpawnConfig struct {
	SlotSpacing float64 `yaml:"slot_spacing"`
	GridWidth   int     `yaml:"grid_width"`
}

// MatchConfig holds round/match parameters.
type MatchConfig struct {
	Rounds int `yaml:"rounds"`
}

// TimingConfig holds tick scheduling parameters.
type TimingConfig struct {
	TickHz        int     `yaml:"tick_hz"`         // scheduler rate for ticker-driven frontends
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds; larger deltas are clamped
	MaxStep       float64 `yaml:"max_step"`        // seconds; longer deltas are sub-stepped
}

// KeysConfig holds global key bindings.
type KeysConfig struct {
	Advance string `yaml:"advance"`
	Quit    string `yaml:"quit"`
}

// PlayerConfig describes one roster entry.
type PlayerConfig struct {
	Name  string `yaml:"name" csv:"name"`
	Color string `yaml:"color" csv:"color"` // #rrggbb
	Left  string `yaml:"left" csv:"left"`
	Right string `yaml:"right" csv:"right"`
}

// ServerConfig holds the liveness endpoint settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // ticks between perf log lines
}

// RGB is a parsed player color.
type RGB struct {
	R, G, B uint8
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ContactDist  float64 // 2 * Noodle.Radius
	TickInterval float64 // seconds per scheduled tick
	PlayerColors []RGB   // parallel to Players
	ScreenW32    float32
	ScreenH32    float32
	ArenaSize32  float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// A players list in the file replaces the default roster instead of merging by index.
		var probe struct {
			Players []PlayerConfig `yaml:"players"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if probe.Players != nil {
			cfg.Players = nil
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize validates the config and recomputes derived values.
// Call it again after replacing Players (e.g. from a roster file).
func (c *Config) Finalize() error {
	if err := c.validate(); err != nil {
		return err
	}
	return c.computeDerived()
}

func (c *Config) validate() error {
	if len(c.Players) == 0 {
		return ErrNoPlayers
	}
	positive := map[string]float64{
		"arena.size":             c.Arena.Size,
		"noodle.speed":           c.Noodle.Speed,
		"noodle.radius":          c.Noodle.Radius,
		"spawn.slot_spacing":     c.Spawn.SlotSpacing,
		"timing.max_frame_delta": c.Timing.MaxFrameDelta,
		"timing.max_step":        c.Timing.MaxStep,
	}
	for name, v := range positive {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, name, v)
		}
	}
	if c.Noodle.TurnRate < 0 {
		return fmt.Errorf("%w: noodle.turn_rate must be >= 0", ErrInvalidConfig)
	}
	if c.Collision.GraceWindow < 0 || c.Collision.MinSelfLength < 0 {
		return fmt.Errorf("%w: collision windows must be >= 0", ErrInvalidConfig)
	}
	if c.Spawn.GridWidth < 1 {
		return fmt.Errorf("%w: spawn.grid_width must be >= 1", ErrInvalidConfig)
	}
	if c.Match.Rounds < 1 {
		return fmt.Errorf("%w: match.rounds must be >= 1", ErrInvalidConfig)
	}
	if c.Timing.TickHz < 1 {
		return fmt.Errorf("%w: timing.tick_hz must be >= 1", ErrInvalidConfig)
	}
	if x, y := c.SpawnExtent(); x >= c.Arena.Size || y >= c.Arena.Size {
		return fmt.Errorf("%w: %d players need spawn slots up to (%v, %v), outside arena.size %v",
			ErrInvalidConfig, len(c.Players), x, y, c.Arena.Size)
	}

	seen := map[string]string{}
	bind := func(key, owner string) error {
		k := strings.ToLower(key)
		if k == "" {
			return fmt.Errorf("%w: empty key for %s", ErrInvalidConfig, owner)
		}
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateKey, key, prev, owner)
		}
		seen[k] = owner
		return nil
	}
	if err := bind(c.Keys.Advance, "advance"); err != nil {
		return err
	}
	if err := bind(c.Keys.Quit, "quit"); err != nil {
		return err
	}
	for i, p := range c.Players {
		owner := fmt.Sprintf("player %d (%s)", i+1, p.Name)
		if err := bind(p.Left, owner); err != nil {
			return err
		}
		if err := bind(p.Right, owner); err != nil {
			return err
		}
	}
	return nil
}

// SpawnExtent returns the largest start coordinate on each axis. Slot i sits
// at column i%grid_width and row i/grid_width, one slot_spacing from the
// origin.
func (c *Config) SpawnExtent() (x, y float64) {
	n := len(c.Players)
	if n == 0 || c.Spawn.GridWidth < 1 {
		return 0, 0
	}
	cols := min(n, c.Spawn.GridWidth)
	rows := (n + c.Spawn.GridWidth - 1) / c.Spawn.GridWidth
	return float64(cols) * c.Spawn.SlotSpacing, float64(rows) * c.Spawn.SlotSpacing
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ContactDist = 2 * c.Noodle.Radius
	c.Derived.TickInterval = 1.0 / float64(c.Timing.TickHz)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.ArenaSize32 = float32(c.Arena.Size)

	c.Derived.PlayerColors = make([]RGB, len(c.Players))
	for i := range c.Players {
		p := &c.Players[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("Player %d", i+1)
		}
		rgb, err := ParseColor(p.Color)
		if err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
		c.Derived.PlayerColors[i] = rgb
	}
	return nil
}

// ParseColor parses a #rrggbb color string.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
