package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every configuration error.
var ErrInvalid = errors.New("invalid configuration")

// Error names the config section and field responsible for a failure.
type Error struct {
	Section string
	Field   string
	Reason  string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config %s: %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("config %s.%s: %s", e.Section, e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

func invalid(section, field, format string, args ...any) error {
	return &Error{Section: section, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the whole file and returns every problem found.
func (f *File) Validate() error {
	return errors.Join(
		f.Game.Validate(),
		f.Player.Validate(),
		f.Map.Validate(f.Player, f.Palettes),
		f.HUD.Validate(),
	)
}

func (c Config) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, invalid("game", "fps", "must be positive, got %d", c.FPS))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, invalid("game", "width/height", "window size must be positive, got %dx%d", c.Width, c.Height))
	}
	return errors.Join(errs...)
}

func (p PlayerConfig) Validate() error {
	const section = "player"
	var errs []error
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, invalid(section, "width/height", "craft size must be positive, got %dx%d", p.Width, p.Height))
	}
	if p.MaxAccel <= 0 {
		errs = append(errs, invalid(section, "max_accel", "must be positive"))
	}
	if p.ThrustMaxAccel < p.MaxAccel {
		errs = append(errs, invalid(section, "thrust_max_accel", "%.3f is below max_accel %.3f", p.ThrustMaxAccel, p.MaxAccel))
	}
	if p.MaxVelo <= 0 || p.TermVelo <= 0 {
		errs = append(errs, invalid(section, "max_velo/term_velo", "must be positive"))
	} else if limit := min(p.MaxVelo, p.TermVelo); p.ThrustMaxAccel > limit {
		// Thrusting velocity equals the acceleration and is not clamped.
		errs = append(errs, invalid(section, "thrust_max_accel", "%.3f exceeds the vertical speed cap %.3f", p.ThrustMaxAccel, limit))
	}
	if p.AccelReduct <= 0 || p.AccelReduct > 1 {
		errs = append(errs, invalid(section, "accel_reduct", "must be in (0, 1], got %.3f", p.AccelReduct))
	}
	if p.Mass < 0 {
		errs = append(errs, invalid(section, "mass", "must not be negative"))
	}
	if p.ThrustBeginSeconds < 0 || p.ThrustEndSeconds < 0 || p.CollisionRecoilSeconds < 0 || p.CollisionCooldownSeconds < 0 {
		errs = append(errs, invalid(section, "*_seconds", "durations must not be negative"))
	}
	if p.MaxHealth <= 0 || p.MaxFuel <= 0 {
		errs = append(errs, invalid(section, "max_health/max_fuel", "must be positive"))
	}
	if p.FuelBurnPerSecond < 0 || p.CollisionDamage < 0 {
		errs = append(errs, invalid(section, "fuel_burn_per_second/collision_damage", "must not be negative"))
	}
	return errors.Join(errs...)
}

// Validate checks one block group. inherit allows an empty palette, meaning the colour
// comes from a parent block.
func (b BlockConfig) Validate(section string, palettes map[string][][4]uint8, inherit bool) error {
	var errs []error
	if b.MinWidth <= 0 || b.MinHeight <= 0 {
		errs = append(errs, invalid(section, "min_width/min_height", "must be positive"))
	}
	if b.MinWidth > b.MaxWidth {
		errs = append(errs, invalid(section, "min_width", "min %d > max %d", b.MinWidth, b.MaxWidth))
	}
	if b.MinHeight > b.MaxHeight {
		errs = append(errs, invalid(section, "min_height", "min %d > max %d", b.MinHeight, b.MaxHeight))
	}
	if b.Padding < 0 {
		errs = append(errs, invalid(section, "padding", "must not be negative, got %d", b.Padding))
	}
	if b.BorderWidth < 0 {
		errs = append(errs, invalid(section, "border_width", "must not be negative"))
	}
	if b.Mass < 0 {
		errs = append(errs, invalid(section, "mass", "must not be negative"))
	}
	if b.Alt != nil && b.Alt.DurationMS <= 0 {
		errs = append(errs, invalid(section, "alt.duration_ms", "must be positive"))
	}
	switch {
	case b.Palette == "" && !inherit:
		errs = append(errs, invalid(section, "palette", "no palette given"))
	case b.Palette != "":
		if len(palettes[b.Palette]) == 0 {
			errs = append(errs, invalid(section, "palette", "palette %q is missing or empty", b.Palette))
		}
	}
	return errors.Join(errs...)
}

func (m MapConfig) Validate(player PlayerConfig, palettes map[string][][4]uint8) error {
	const section = "map"
	var errs []error
	if m.Width <= 0 || m.Height <= 0 {
		errs = append(errs, invalid(section, "width/height", "bounds must be positive, got %dx%d", m.Width, m.Height))
	}
	if m.EdgeFacing < -1 || m.EdgeFacing > 1 {
		errs = append(errs, invalid(section, "edge_facing", "must be -1, 0 or 1, got %d", m.EdgeFacing))
	}
	if m.ObstacleCount < 0 {
		errs = append(errs, invalid(section, "obstacle_count", "must not be negative"))
	}
	if m.RetryCap < 1 {
		errs = append(errs, invalid(section, "retry_cap", "must be at least 1"))
	}
	if m.PaddingX < 0 || m.PaddingY < 0 {
		errs = append(errs, invalid(section, "padding_x/padding_y", "must not be negative"))
	}

	errs = append(errs,
		m.EdgeOutline.Validate("map.edge_outline", palettes, false),
		m.Obstacle.Validate("map.obstacle", palettes, false),
		m.ObstacleOutline.Validate("map.obstacle_outline", palettes, true),
	)

	if m.Obstacle.MaxWidth > m.Width || m.Obstacle.MaxHeight > m.Height {
		errs = append(errs, invalid("map.obstacle", "max_width/max_height", "obstacles larger than the map bounds"))
	}
	// Outlines grow outward from each obstacle; keep them inside the craft clearance so
	// passages stay open.
	if m.ObstacleOutline.MaxHeight > player.Height+m.PaddingY || m.ObstacleOutline.MaxWidth > player.Width+m.PaddingX {
		errs = append(errs, invalid("map.obstacle_outline", "max_width/max_height",
			"outline extent exceeds craft clearance (%dx%d)", player.Width+m.PaddingX, player.Height+m.PaddingY))
	}
	return errors.Join(errs...)
}

func (h HUDConfig) Validate() error {
	if h.BarWidth <= 0 || h.BarHeight <= 0 {
		return invalid("hud", "bar_width/bar_height", "must be positive")
	}
	if h.SmoothFrames < 0 {
		return invalid("hud", "smooth_frames", "must not be negative")
	}
	return nil
}
