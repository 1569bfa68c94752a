package config

import "image/color"

// PlayerConfig contains all craft-related configuration values.
// Durations are in seconds and converted to frame counts when the player is built.
type PlayerConfig struct {
	// Dimensions of the unrotated craft sprite
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Motion limits
	MaxVelo        float64 `yaml:"max_velo"`         // Upward speed cap
	TermVelo       float64 `yaml:"term_velo"`        // Downward speed cap
	MaxAccel       float64 `yaml:"max_accel"`        // Per-component accel cap when not thrusting
	ThrustMaxAccel float64 `yaml:"thrust_max_accel"` // Accel magnitude while thrusting
	AccelReduct    float64 `yaml:"accel_reduct"`     // Per-frame accel damping factor

	// Steering
	Handling          float64 `yaml:"handling"`
	ThrustHandling    float64 `yaml:"thrust_handling"`
	CollisionHandling float64 `yaml:"collision_handling"` // Handling multiplier during cooldown

	// Gravity; Mass 0 means the craft ignores gravity
	Mass     float64 `yaml:"mass"`
	GravityC float64 `yaml:"gravity_c"`
	GravityM float64 `yaml:"gravity_m"`

	// Phase durations (seconds)
	ThrustBeginSeconds       float64 `yaml:"thrust_begin_seconds"`
	ThrustEndSeconds         float64 `yaml:"thrust_end_seconds"`
	CollisionRecoilSeconds   float64 `yaml:"collision_recoil_seconds"` // Scaled by impact speed
	CollisionCooldownSeconds float64 `yaml:"collision_cooldown_seconds"`

	// Health and fuel
	MaxHealth         float64 `yaml:"max_health"`
	MaxFuel           float64 `yaml:"max_fuel"`
	FuelBurnPerSecond float64 `yaml:"fuel_burn_per_second"`
	CollisionDamage   float64 `yaml:"collision_damage"` // Damage per unit of impact speed

	// Visual (RGBA)
	Color         [4]uint8 `yaml:"color"`
	CooldownColor [4]uint8 `yaml:"cooldown_color"`
}

// AltConfig describes the highlight image a block flashes to when hit.
type AltConfig struct {
	Color      [4]uint8 `yaml:"color"`
	DurationMS int      `yaml:"duration_ms"`
}

// BlockConfig contains the size ranges and look of one group of terrain blocks.
type BlockConfig struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
	Padding   int `yaml:"padding"` // Gap between consecutive outline blocks

	Palette     string     `yaml:"palette"` // Key into Palettes; empty inherits the parent colour
	Alpha       uint8      `yaml:"alpha"`
	BorderColor [4]uint8   `yaml:"border_color"`
	BorderWidth int        `yaml:"border_width"`
	Alt         *AltConfig `yaml:"alt"`
	Mass        float64    `yaml:"mass"`
}

// MapConfig contains terrain generation configuration values.
type MapConfig struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	FillColor [4]uint8 `yaml:"fill_color"`

	EdgeFacing      int         `yaml:"edge_facing"` // -1 inside, 0 centred, +1 outside
	EdgeOutline     BlockConfig `yaml:"edge_outline"`
	Obstacle        BlockConfig `yaml:"obstacle"`
	ObstacleOutline BlockConfig `yaml:"obstacle_outline"`

	ObstacleCount int `yaml:"obstacle_count"`
	RetryCap      int `yaml:"retry_cap"`
	PaddingX      int `yaml:"padding_x"` // Extra clearance beyond the craft width
	PaddingY      int `yaml:"padding_y"`

	OverlapColor [4]uint8 `yaml:"overlap_color"` // Collision overlap visual
}

// HUDConfig contains HUD bar configuration values.
type HUDConfig struct {
	BarWidth     float64 `yaml:"bar_width"`
	BarHeight    float64 `yaml:"bar_height"`
	Margin       float64 `yaml:"margin"`
	SmoothFrames int     `yaml:"smooth_frames"`

	BgColor     [4]uint8 `yaml:"bg_color"`
	HealthColor [4]uint8 `yaml:"health_color"`
	FuelColor   [4]uint8 `yaml:"fuel_color"`
	TextColor   [4]uint8 `yaml:"text_color"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// File is the on-disk layout of a configuration file.
type File struct {
	Game     Config                `yaml:"game"`
	Player   PlayerConfig          `yaml:"player"`
	Map      MapConfig             `yaml:"map"`
	HUD      HUDConfig             `yaml:"hud"`
	Palettes map[string][][4]uint8 `yaml:"palettes"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Map MapConfig
var HUD HUDConfig
var Palettes map[string][][4]uint8

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// RGBA converts a config colour to color.RGBA.
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func init() {
	Apply(Defaults())
}

// Apply installs f as the global configuration.
func Apply(f *File) {
	game := f.Game
	C = &game
	Player = f.Player
	Map = f.Map
	HUD = f.HUD
	Palettes = f.Palettes
}

// Current returns a copy of the global configuration.
func Current() *File {
	return &File{
		Game:     *C,
		Player:   Player,
		Map:      Map,
		HUD:      HUD,
		Palettes: Palettes,
	}
}

// Defaults returns the built-in configuration.
func Defaults() *File {
	return &File{
		Game: Config{
			Width:  960,
			Height: 640,
			FPS:    125,
		},
		Player: PlayerConfig{
			Width:  24,
			Height: 16,

			MaxVelo:        3.0,
			TermVelo:       3.5,
			MaxAccel:       0.5,
			ThrustMaxAccel: 2.0,
			AccelReduct:    0.98,

			Handling:          0.05,
			ThrustHandling:    0.08,
			CollisionHandling: 0.5,

			Mass:     1.0,
			GravityC: 0.004,
			GravityM: 1.03,

			ThrustBeginSeconds:       0.6,
			ThrustEndSeconds:         0.8,
			CollisionRecoilSeconds:   0.3,
			CollisionCooldownSeconds: 1.0,

			MaxHealth:         100,
			MaxFuel:           100,
			FuelBurnPerSecond: 4,
			CollisionDamage:   6,

			Color:         [4]uint8{230, 230, 240, 255},
			CooldownColor: [4]uint8{255, 90, 90, 255},
		},
		Map: MapConfig{
			Width:     960,
			Height:    640,
			FillColor: [4]uint8{16, 18, 28, 255},

			EdgeFacing: -1,
			EdgeOutline: BlockConfig{
				MinWidth: 16, MaxWidth: 40,
				MinHeight: 16, MaxHeight: 40,
				Palette:     "rock",
				Alpha:       255,
				BorderColor: [4]uint8{20, 20, 24, 255},
				BorderWidth: 2,
				Alt:         &AltConfig{Color: [4]uint8{250, 240, 200, 255}, DurationMS: 200},
				Mass:        1,
			},
			Obstacle: BlockConfig{
				MinWidth: 40, MaxWidth: 120,
				MinHeight: 40, MaxHeight: 120,
				Palette:     "moss",
				Alpha:       255,
				BorderColor: [4]uint8{20, 20, 24, 255},
				BorderWidth: 2,
				Alt:         &AltConfig{Color: [4]uint8{250, 240, 200, 255}, DurationMS: 200},
				Mass:        1,
			},
			ObstacleOutline: BlockConfig{
				MinWidth: 8, MaxWidth: 20,
				MinHeight: 8, MaxHeight: 20,
				Padding:     2,
				Alpha:       255,
				BorderColor: [4]uint8{20, 20, 24, 255},
				BorderWidth: 1,
				Alt:         &AltConfig{Color: [4]uint8{250, 240, 200, 255}, DurationMS: 200},
				Mass:        1,
			},

			ObstacleCount: 8,
			RetryCap:      500,
			PaddingX:      12,
			PaddingY:      12,

			OverlapColor: [4]uint8{255, 0, 255, 255},
		},
		HUD: HUDConfig{
			BarWidth:     130,
			BarHeight:    13,
			Margin:       10,
			SmoothFrames: 20,

			BgColor:     [4]uint8{40, 40, 40, 255},
			HealthColor: [4]uint8{40, 220, 40, 255},
			FuelColor:   [4]uint8{240, 170, 40, 255},
			TextColor:   [4]uint8{255, 255, 255, 255},
		},
		Palettes: map[string][][4]uint8{
			"rock": {
				{92, 84, 78, 255},
				{110, 100, 90, 255},
				{76, 70, 66, 255},
				{124, 112, 98, 255},
			},
			"moss": {
				{58, 92, 60, 255},
				{70, 110, 64, 255},
				{48, 78, 56, 255},
			},
		},
	}
}
