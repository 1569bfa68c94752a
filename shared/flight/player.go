// Package flight implements the player craft: a phase state machine driving
// acceleration, gravity and velocity one fixed frame at a time.
package flight

import (
	"image"
	"math"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/gamemath"
	"github.com/automoto/cavewing/shared/mask"
	"github.com/automoto/cavewing/shared/terrain"
)

const (
	nudgeThreshold = 0.1
	minEndAccel    = 0.1

	recoilDamping = 0.97
	beginGravity  = 0.99
	thrustGravity = 0.98
)

// Player is the craft. It never returns errors; conflicting phase counters are resolved
// by the transition table priority.
type Player struct {
	params Params

	pos  gamemath.Vector2
	vel  gamemath.Vector2
	acc  gamemath.Vector2
	dir  gamemath.Vector2
	grav float64

	angle  float64
	health float64
	fuel   float64

	thrusting    bool
	beginLeft    int
	endLeft      int
	recoilLeft   int
	cooldownLeft int

	beginInitial float64
	beginWeight  float64
	beginStep    float64
	endWeight    float64
	tempMaxAccel float64

	phase      PhaseKind
	lastImpact float64

	defaultImage  *image.RGBA
	cooldownImage *image.RGBA
	sprite        *Sprite
}

// NewPlayer builds a player at pos with the craft images rendered from cfg.
func NewPlayer(cfg config.PlayerConfig, pos gamemath.Vector2, ctx *gamectx.Context) *Player {
	p := &Player{
		params:        ParamsFrom(cfg, ctx.FPS),
		pos:           pos,
		acc:           gamemath.Epsilon,
		defaultImage:  CraftImage(cfg.Width, cfg.Height, config.RGBA(cfg.Color)),
		cooldownImage: CraftImage(cfg.Width, cfg.Height, config.RGBA(cfg.CooldownColor)),
	}
	p.health = p.params.MaxHealth
	p.fuel = p.params.MaxFuel
	p.sprite = NewSprite(p.defaultImage)
	p.orient()
	return p
}

// BeginThrust starts the ramp up to full thrust. It is ignored with an empty tank.
func (p *Player) BeginThrust() {
	if p.fuel <= 0 {
		return
	}
	p.recoilLeft = 0
	p.endLeft = 0
	if p.acc.IsZero() {
		p.acc = gamemath.Epsilon
	}

	p.beginInitial = p.acc.Length()
	span := p.params.ThrustMaxAccel - p.params.MaxAccel
	frac := 1.0
	if span > 0 {
		frac = gamemath.Clamp((p.params.ThrustMaxAccel-p.beginInitial)/span, 0, 1)
	}
	p.beginLeft = int(math.Round(float64(p.params.ThrustBeginFrames) * frac))
	p.beginWeight = 0
	p.beginStep = 0
	if p.beginLeft > 0 {
		p.beginStep = 1 / float64(p.beginLeft)
	}
	p.thrusting = true
}

// EndThrust starts the ramp back down to normal handling.
func (p *Player) EndThrust() {
	p.thrusting = false
	p.beginLeft = 0
	p.endLeft = p.params.ThrustEndFrames
	p.endWeight = 1
	p.tempMaxAccel = p.acc.Length()
}

// OnCollision starts the recoil. blocks are the terrain blocks whose masks touched the
// craft; an empty list is ignored.
func (p *Player) OnCollision(blocks []terrain.BlockID) {
	if len(blocks) == 0 {
		return
	}
	p.sprite.SetSource(p.cooldownImage)
	p.beginLeft = 0
	p.endLeft = 0

	p.lastImpact = p.vel.Length()
	p.TakeDamage(p.params.CollisionDamage * p.lastImpact)

	// Sign 0 leaves a resting component at rest; such a hit recoils for zero frames.
	if math.Abs(p.vel.X) < nudgeThreshold {
		p.vel.X += gamemath.Sign(p.vel.X) * nudgeThreshold
	}
	if math.Abs(p.vel.Y) < nudgeThreshold {
		p.vel.Y += gamemath.Sign(p.vel.Y) * nudgeThreshold
	}

	p.recoilLeft = int(math.Floor(p.vel.Length() * p.params.CollisionRecoilMulti))
	p.cooldownLeft = p.params.CollisionCooldown
	p.vel = p.vel.Scale(-0.5)
	p.acc = p.acc.Scale(0.01).Add(gamemath.Epsilon)
}

// DirectionDelta applies a key press (+1) or release (-1) to the held direction.
// Components stay within [-1, 1].
func (p *Player) DirectionDelta(dx, dy int) {
	p.dir.X = gamemath.Clamp(p.dir.X+float64(dx), -1, 1)
	p.dir.Y = gamemath.Clamp(p.dir.Y+float64(dy), -1, 1)
}

// TakeDamage removes health; hazards outside the terrain call it too.
func (p *Player) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	p.health = max(p.health-amount, 0)
}

// ResetStats refills health and fuel.
func (p *Player) ResetStats() {
	p.health = p.params.MaxHealth
	p.fuel = p.params.MaxFuel
}

// SetPosition moves the craft without touching its motion state.
func (p *Player) SetPosition(pos gamemath.Vector2) {
	p.pos = pos
}

// Update runs one frame: the highest priority phase, then integration and orientation.
func (p *Player) Update() {
	for _, t := range transitions {
		if t.active(p) {
			p.phase = t.kind
			t.frame(p)
			break
		}
	}

	if p.acc.IsZero() {
		p.acc = gamemath.Epsilon
	}
	p.pos = p.pos.Add(p.vel)
	p.orient()
}

func (p *Player) orient() {
	p.angle = gamemath.Vector2{}.AngleTo(p.acc)
	p.sprite.Rotate(p.angle)
}

func (p *Player) recoilFrame() {
	p.vel = p.vel.Scale(recoilDamping)
	p.acc = p.acc.Scale(recoilDamping)
	p.recoilLeft--
	if p.recoilLeft == 0 {
		p.cooldownLeft = p.params.CollisionCooldown
	}
}

func (p *Player) cooldownFrame() {
	if p.thrusting {
		p.thrustFrame()
	} else {
		p.steer(p.params.Handling * p.params.CollisionHandling)
		p.applyVelocity()
	}
	p.cooldownLeft--
	if p.cooldownLeft == 0 {
		p.sprite.SetSource(p.defaultImage)
	}
}

func (p *Player) thrustBeginFrame() {
	p.acc = p.acc.Add(p.dir.Scale(p.params.ThrustHandling))

	p.beginWeight = min(p.beginWeight+p.beginStep, 1)
	if p.beginLeft == 1 {
		p.beginWeight = 1
	}
	target := gamemath.Lerp(p.beginInitial, p.params.ThrustMaxAccel, p.beginWeight)
	p.acc = p.acc.WithLength(target)

	p.grav *= beginGravity
	p.applyVelocity()
	p.beginLeft--
	p.burnFuel()
}

func (p *Player) thrustFrame() {
	p.acc = p.acc.Add(p.dir.Scale(p.params.ThrustHandling)).WithLength(p.params.ThrustMaxAccel)
	p.grav *= thrustGravity
	p.vel = p.acc
	p.burnFuel()
}

func (p *Player) thrustEndFrame() {
	p.acc = p.acc.Add(p.dir.Scale(p.params.Handling))

	p.tempMaxAccel = gamemath.Lerp(p.params.MaxAccel, p.params.ThrustMaxAccel, p.endWeight)
	p.acc = p.acc.ClampLength(minEndAccel, p.tempMaxAccel)
	p.endWeight = max(p.endWeight-p.params.ThrustEndLerpDecrease, 0)

	p.applyVelocity()
	p.endLeft--
}

func (p *Player) defaultFrame() {
	p.steer(p.params.Handling)
	if p.grav < p.params.MaxAccel {
		p.grav = (p.grav + p.params.GravityC) * p.params.GravityM
	}
	p.applyVelocity()
}

// steer adds the held direction, clamps each component and applies damping.
func (p *Player) steer(handling float64) {
	p.acc = p.acc.Add(p.dir.Scale(handling)).
		ClampComponents(p.params.MaxAccel).
		Scale(p.params.AccelReduct)
}

// applyVelocity derives velocity from acceleration plus gravity and clamps the
// vertical speed.
func (p *Player) applyVelocity() {
	v := p.acc
	if p.params.HasMass {
		v.Y += p.params.Mass * p.grav
		if p.dir.Y == -1 && p.grav >= p.params.MaxAccel {
			v.Y -= p.acc.Y / p.params.Mass
		}
	}
	v.Y = gamemath.Clamp(v.Y, -p.params.MaxVelo, p.params.TermVelo)
	p.vel = v
}

func (p *Player) burnFuel() {
	if p.params.FuelBurn <= 0 {
		return
	}
	p.fuel = max(p.fuel-p.params.FuelBurn, 0)
	if p.fuel == 0 && p.thrusting {
		p.EndThrust()
	}
}

func (p *Player) Health() float64 { return p.health }
func (p *Player) Fuel() float64   { return p.fuel }
func (p *Player) Angle() float64  { return p.angle }

func (p *Player) MaxHealth() float64 { return p.params.MaxHealth }
func (p *Player) MaxFuel() float64   { return p.params.MaxFuel }

func (p *Player) Position() gamemath.Vector2     { return p.pos }
func (p *Player) Velocity() gamemath.Vector2     { return p.vel }
func (p *Player) Acceleration() gamemath.Vector2 { return p.acc }

func (p *Player) DirectionX() int { return int(p.dir.X) }
func (p *Player) DirectionY() int { return int(p.dir.Y) }

func (p *Player) GravEffect() float64 { return p.grav }
func (p *Player) Thrusting() bool     { return p.thrusting }
func (p *Player) Params() Params      { return p.params }

// LastImpact is the speed of the most recent collision.
func (p *Player) LastImpact() float64 { return p.lastImpact }

func (p *Player) ThrustBeginFramesLeft() int       { return p.beginLeft }
func (p *Player) ThrustEndFramesLeft() int         { return p.endLeft }
func (p *Player) CollisionRecoilFramesLeft() int   { return p.recoilLeft }
func (p *Player) CollisionCooldownFramesLeft() int { return p.cooldownLeft }

// Phase reports the mode that ran in the last Update.
func (p *Player) Phase() Phase {
	return p.snapshot(p.phase)
}

// CoolingDown reports whether the cooldown image is shown.
func (p *Player) CoolingDown() bool {
	return p.sprite.Source() == p.cooldownImage
}

// Image is the rotation buffer; draw it at ImageOrigin.
func (p *Player) Image() *image.RGBA {
	return p.sprite.Image()
}

// ImageOrigin is the top-left of the rotation buffer, centred on the position.
func (p *Player) ImageOrigin() image.Point {
	half := p.sprite.Side() / 2
	return image.Pt(int(math.Round(p.pos.X))-half, int(math.Round(p.pos.Y))-half)
}

// Rect is the craft's bounding rectangle at the current angle, centred on its position.
func (p *Player) Rect() image.Rectangle {
	return p.sprite.Tight().Add(p.ImageOrigin())
}

// Mask is the opaque area of the rotated craft; its top-left is Rect().Min.
func (p *Player) Mask() *mask.Mask {
	return p.sprite.Mask()
}
