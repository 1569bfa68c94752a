package flight

// PhaseKind names the exclusive per-frame mode of the player.
type PhaseKind int

const (
	PhaseDefault PhaseKind = iota
	PhaseThrustBegin
	PhaseThrusting
	PhaseThrustEnd
	PhaseCollisionRecoil
	PhaseCollisionCooldown
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseDefault:
		return "default"
	case PhaseThrustBegin:
		return "thrust_begin"
	case PhaseThrusting:
		return "thrusting"
	case PhaseThrustEnd:
		return "thrust_end"
	case PhaseCollisionRecoil:
		return "collision_recoil"
	case PhaseCollisionCooldown:
		return "collision_cooldown"
	}
	return "unknown"
}

// Phase is a snapshot of the mode that ran in the last frame, with the fields that
// mode is driven by.
type Phase struct {
	Kind       PhaseKind
	FramesLeft int     // remaining frames of a timed mode, 0 for untimed ones
	Weight     float64 // lerp weight of the thrust ramps
}

// transition is one row of the priority table: the first row whose guard holds runs
// the frame.
type transition struct {
	kind   PhaseKind
	active func(p *Player) bool
	frame  func(p *Player)
}

var transitions = [...]transition{
	{PhaseCollisionRecoil, func(p *Player) bool { return p.recoilLeft > 0 }, (*Player).recoilFrame},
	{PhaseCollisionCooldown, func(p *Player) bool { return p.cooldownLeft > 0 }, (*Player).cooldownFrame},
	{PhaseThrustBegin, func(p *Player) bool { return p.beginLeft > 0 }, (*Player).thrustBeginFrame},
	{PhaseThrusting, func(p *Player) bool { return p.thrusting }, (*Player).thrustFrame},
	{PhaseThrustEnd, func(p *Player) bool { return p.endLeft > 0 }, (*Player).thrustEndFrame},
	{PhaseDefault, func(*Player) bool { return true }, (*Player).defaultFrame},
}

// snapshot builds the Phase value for kind from the current counters.
func (p *Player) snapshot(kind PhaseKind) Phase {
	ph := Phase{Kind: kind}
	switch kind {
	case PhaseCollisionRecoil:
		ph.FramesLeft = p.recoilLeft
	case PhaseCollisionCooldown:
		ph.FramesLeft = p.cooldownLeft
	case PhaseThrustBegin:
		ph.FramesLeft = p.beginLeft
		ph.Weight = p.beginWeight
	case PhaseThrustEnd:
		ph.FramesLeft = p.endLeft
		ph.Weight = p.endWeight
	}
	return ph
}
