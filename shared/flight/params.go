package flight

import (
	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamemath"
)

// Params are the player constants resolved once from config at a fixed frame rate.
type Params struct {
	Width, Height int

	MaxVelo        float64
	TermVelo       float64
	MaxAccel       float64
	ThrustMaxAccel float64
	AccelReduct    float64

	Handling          float64
	ThrustHandling    float64
	CollisionHandling float64

	Mass     float64
	HasMass  bool
	GravityC float64
	GravityM float64

	ThrustBeginFrames     int
	ThrustEndFrames       int
	ThrustEndLerpDecrease float64
	CollisionRecoilMulti  float64 // recoil frames per unit of impact speed
	CollisionCooldown     int

	MaxHealth       float64
	MaxFuel         float64
	FuelBurn        float64 // per frame
	CollisionDamage float64
}

// ParamsFrom converts durations in cfg to frame counts at fps.
func ParamsFrom(cfg config.PlayerConfig, fps int) Params {
	p := Params{
		Width:  cfg.Width,
		Height: cfg.Height,

		MaxVelo:        cfg.MaxVelo,
		TermVelo:       cfg.TermVelo,
		MaxAccel:       cfg.MaxAccel,
		ThrustMaxAccel: cfg.ThrustMaxAccel,
		AccelReduct:    cfg.AccelReduct,

		Handling:          cfg.Handling,
		ThrustHandling:    cfg.ThrustHandling,
		CollisionHandling: cfg.CollisionHandling,

		Mass:     cfg.Mass,
		HasMass:  cfg.Mass > 0,
		GravityC: cfg.GravityC,
		GravityM: cfg.GravityM,

		ThrustBeginFrames:    gamemath.Frames(cfg.ThrustBeginSeconds, fps),
		ThrustEndFrames:      gamemath.Frames(cfg.ThrustEndSeconds, fps),
		CollisionRecoilMulti: cfg.CollisionRecoilSeconds * float64(fps),
		CollisionCooldown:    gamemath.Frames(cfg.CollisionCooldownSeconds, fps),

		MaxHealth:       cfg.MaxHealth,
		MaxFuel:         cfg.MaxFuel,
		CollisionDamage: cfg.CollisionDamage,
	}
	if p.ThrustEndFrames > 0 {
		p.ThrustEndLerpDecrease = 1 / float64(p.ThrustEndFrames)
	}
	if fps > 0 {
		p.FuelBurn = cfg.FuelBurnPerSecond / float64(fps)
	}
	return p
}
