package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/parameter"
)

// EnvPrefix namespaces environment overrides, e.g. BLADE_TARGET_COUNT
const EnvPrefix = "BLADE"

// PhysicsConfig holds integration and out-of-bounds settings
type PhysicsConfig struct {
	Gravity            float64 `mapstructure:"gravity"`
	BottomMarginTarget float64 `mapstructure:"bottom_margin_target"`
	BottomMarginBomb   float64 `mapstructure:"bottom_margin_bomb"`
	SideMargin         float64 `mapstructure:"side_margin"`
}

// TargetConfig holds target population and launch settings
type TargetConfig struct {
	Count         int     `mapstructure:"count"`
	Radius        float64 `mapstructure:"radius"`
	VXMin         float64 `mapstructure:"vx_min"`
	VXMax         float64 `mapstructure:"vx_max"`
	VYMin         float64 `mapstructure:"vy_min"`
	VYMax         float64 `mapstructure:"vy_max"`
	SpawnInset    int     `mapstructure:"spawn_inset"`
	SpawnDepthMin int     `mapstructure:"spawn_depth_min"`
	SpawnDepthMax int     `mapstructure:"spawn_depth_max"`
	StaggerMax    int     `mapstructure:"stagger_max"`
}

// BombConfig holds bomb scheduling and launch settings
type BombConfig struct {
	Radius        float64       `mapstructure:"radius"`
	Interval      time.Duration `mapstructure:"interval"`
	Max           int           `mapstructure:"max"`
	VYMinOffset   float64       `mapstructure:"vy_min_offset"`
	VYMaxOffset   float64       `mapstructure:"vy_max_offset"`
	SpawnInset    int           `mapstructure:"spawn_inset"`
	SpawnDepthMin int           `mapstructure:"spawn_depth_min"`
	SpawnDepthMax int           `mapstructure:"spawn_depth_max"`
	Color         string        `mapstructure:"color"`
}

type SliceConfig struct {
	SpeedThreshold float64 `mapstructure:"speed_threshold"`
}

type TrailConfig struct {
	Length int `mapstructure:"length"`
}

type EffectConfig struct {
	HitDuration       time.Duration `mapstructure:"hit_duration"`
	ExplosionDuration time.Duration `mapstructure:"explosion_duration"`
}

type TrackConfig struct {
	MinRadius float64 `mapstructure:"min_radius"`
	Mirror    bool    `mapstructure:"mirror"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type FrameConfig struct {
	Rate int `mapstructure:"rate"`
}

type TerminalConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

// Config is the full tuning surface; every value is fixed for the process lifetime
type Config struct {
	Physics  PhysicsConfig  `mapstructure:"physics"`
	Target   TargetConfig   `mapstructure:"target"`
	Bomb     BombConfig     `mapstructure:"bomb"`
	Slice    SliceConfig    `mapstructure:"slice"`
	Trail    TrailConfig    `mapstructure:"trail"`
	Effect   EffectConfig   `mapstructure:"effect"`
	Track    TrackConfig    `mapstructure:"track"`
	Palette  []string       `mapstructure:"palette"`
	Log      LogConfig      `mapstructure:"log"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Frame    FrameConfig    `mapstructure:"frame"`
	Terminal TerminalConfig `mapstructure:"terminal"`

	palette   []core.RGB
	bombColor core.RGB
}

// Default returns the built-in tuning, already validated
func Default() *Config {
	cfg := &Config{
		Physics: PhysicsConfig{
			Gravity:            parameter.Gravity,
			BottomMarginTarget: parameter.TargetBottomMargin,
			BottomMarginBomb:   parameter.BombBottomMargin,
			SideMargin:         parameter.SideMargin,
		},
		Target: TargetConfig{
			Count:         parameter.TargetCount,
			Radius:        parameter.TargetRadius,
			VXMin:         parameter.TargetVXMin,
			VXMax:         parameter.TargetVXMax,
			VYMin:         parameter.TargetVYMin,
			VYMax:         parameter.TargetVYMax,
			SpawnInset:    parameter.TargetSpawnInset,
			SpawnDepthMin: parameter.TargetSpawnDepthMin,
			SpawnDepthMax: parameter.TargetSpawnDepthMax,
			StaggerMax:    parameter.TargetStaggerMax,
		},
		Bomb: BombConfig{
			Radius:        parameter.BombRadius,
			Interval:      parameter.BombInterval,
			Max:           parameter.BombMax,
			VYMinOffset:   parameter.BombVYMinOffset,
			VYMaxOffset:   parameter.BombVYMaxOffset,
			SpawnInset:    parameter.BombSpawnInset,
			SpawnDepthMin: parameter.BombSpawnDepthMin,
			SpawnDepthMax: parameter.BombSpawnDepthMax,
			Color:         parameter.BombColor,
		},
		Slice:    SliceConfig{SpeedThreshold: parameter.SliceSpeedThreshold},
		Trail:    TrailConfig{Length: parameter.TrailLength},
		Effect:   EffectConfig{HitDuration: parameter.HitEffectDuration, ExplosionDuration: parameter.ExplosionEffectDuration},
		Track:    TrackConfig{MinRadius: parameter.TrackMinRadius, Mirror: parameter.TrackMirror},
		Palette:  append([]string(nil), parameter.Palette...),
		Log:      LogConfig{Level: parameter.LogLevel},
		Audio:    AudioConfig{Enabled: true, Volume: parameter.AudioVolume},
		Frame:    FrameConfig{Rate: parameter.FrameRate},
		Terminal: TerminalConfig{CellWidth: parameter.CellWidth, CellHeight: parameter.CellHeight},
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("config: built-in defaults invalid: %v", err))
	}
	return cfg
}

// Load reads an optional TOML file at path, applies BLADE_* environment
// overrides on top of defaults, and validates the result
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and resolves colours
func (c *Config) Validate() error {
	var errs []error
	nonNeg := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be non-negative, got %v", name, v))
		}
	}

	nonNeg("physics.gravity", c.Physics.Gravity)
	nonNeg("physics.bottom_margin_target", c.Physics.BottomMarginTarget)
	nonNeg("physics.bottom_margin_bomb", c.Physics.BottomMarginBomb)
	nonNeg("physics.side_margin", c.Physics.SideMargin)
	nonNeg("target.count", float64(c.Target.Count))
	nonNeg("target.radius", c.Target.Radius)
	nonNeg("target.spawn_inset", float64(c.Target.SpawnInset))
	nonNeg("target.stagger_max", float64(c.Target.StaggerMax))
	nonNeg("bomb.radius", c.Bomb.Radius)
	nonNeg("bomb.interval", float64(c.Bomb.Interval))
	nonNeg("bomb.max", float64(c.Bomb.Max))
	nonNeg("bomb.spawn_inset", float64(c.Bomb.SpawnInset))
	nonNeg("slice.speed_threshold", c.Slice.SpeedThreshold)
	nonNeg("effect.hit_duration", float64(c.Effect.HitDuration))
	nonNeg("effect.explosion_duration", float64(c.Effect.ExplosionDuration))
	nonNeg("track.min_radius", c.Track.MinRadius)

	if c.Trail.Length < 2 {
		errs = append(errs, fmt.Errorf("trail.length must be at least 2, got %d", c.Trail.Length))
	}
	if c.Target.VXMin > c.Target.VXMax {
		errs = append(errs, errors.New("target.vx_min exceeds target.vx_max"))
	}
	if c.Target.VYMin > c.Target.VYMax {
		errs = append(errs, errors.New("target.vy_min exceeds target.vy_max"))
	}
	if c.Target.VYMin+c.Bomb.VYMinOffset > c.Target.VYMax+c.Bomb.VYMaxOffset {
		errs = append(errs, errors.New("bomb vertical range is inverted"))
	}
	if c.Target.SpawnDepthMin > c.Target.SpawnDepthMax {
		errs = append(errs, errors.New("target.spawn_depth_min exceeds target.spawn_depth_max"))
	}
	if c.Bomb.SpawnDepthMin > c.Bomb.SpawnDepthMax {
		errs = append(errs, errors.New("bomb.spawn_depth_min exceeds bomb.spawn_depth_max"))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal cell dimensions must be positive"))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must contain at least one colour"))
	}
	c.palette = c.palette[:0]
	for _, hex := range c.Palette {
		rgb, err := core.ParseHex(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette: %w", err))
			continue
		}
		c.palette = append(c.palette, rgb)
	}
	bomb, err := core.ParseHex(c.Bomb.Color)
	if err != nil {
		errs = append(errs, fmt.Errorf("bomb.color: %w", err))
	}
	c.bombColor = bomb

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Colors returns the parsed target palette; valid after Validate
func (c *Config) Colors() []core.RGB {
	return c.palette
}

// BombRGB returns the parsed bomb colour; valid after Validate
func (c *Config) BombRGB() core.RGB {
	return c.bombColor
}

// BombVYRange returns the bomb vertical launch range derived from the target range
func (c *Config) BombVYRange() (lo, hi float64) {
	return c.Target.VYMin + c.Bomb.VYMinOffset, c.Target.VYMax + c.Bomb.VYMaxOffset
}

func defaults() map[string]any {
	return map[string]any{
		"physics.gravity":              parameter.Gravity,
		"physics.bottom_margin_target": parameter.TargetBottomMargin,
		"physics.bottom_margin_bomb":   parameter.BombBottomMargin,
		"physics.side_margin":          parameter.SideMargin,

		"target.count":           parameter.TargetCount,
		"target.radius":          parameter.TargetRadius,
		"target.vx_min":          parameter.TargetVXMin,
		"target.vx_max":          parameter.TargetVXMax,
		"target.vy_min":          parameter.TargetVYMin,
		"target.vy_max":          parameter.TargetVYMax,
		"target.spawn_inset":     parameter.TargetSpawnInset,
		"target.spawn_depth_min": parameter.TargetSpawnDepthMin,
		"target.spawn_depth_max": parameter.TargetSpawnDepthMax,
		"target.stagger_max":     parameter.TargetStaggerMax,

		"bomb.radius":          parameter.BombRadius,
		"bomb.interval":        parameter.BombInterval,
		"bomb.max":             parameter.BombMax,
		"bomb.vy_min_offset":   parameter.BombVYMinOffset,
		"bomb.vy_max_offset":   parameter.BombVYMaxOffset,
		"bomb.spawn_inset":     parameter.BombSpawnInset,
		"bomb.spawn_depth_min": parameter.BombSpawnDepthMin,
		"bomb.spawn_depth_max": parameter.BombSpawnDepthMax,
		"bomb.color":           parameter.BombColor,

		"slice.speed_threshold": parameter.SliceSpeedThreshold,
		"trail.length":          parameter.TrailLength,

		"effect.hit_duration":       parameter.HitEffectDuration,
		"effect.explosion_duration": parameter.ExplosionEffectDuration,

		"track.min_radius": parameter.TrackMinRadius,
		"track.mirror":     parameter.TrackMirror,

		"palette": append([]string(nil), parameter.Palette...),

		"log.level":     parameter.LogLevel,
		"audio.enabled": true,
		"audio.volume":  parameter.AudioVolume,
		"frame.rate":    parameter.FrameRate,

		"terminal.cell_width":  parameter.CellWidth,
		"terminal.cell_height": parameter.CellHeight,
	}
}
