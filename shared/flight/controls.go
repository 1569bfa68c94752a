package flight

// Control is a key the craft responds to.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlUp
	ControlDown
	ControlThrust
)

// KeyEvent is a discrete key edge.
type KeyEvent struct {
	Control Control
	Down    bool
}

// Controls translates key edges into direction deltas and thrust events. It remembers
// which keys are held so repeated or unmatched edges cannot push the direction out of
// {-1, 0, 1}.
type Controls struct {
	held [ControlThrust + 1]bool
}

// Apply forwards ev to p. Edges that do not change the held state are dropped.
func (c *Controls) Apply(p *Player, ev KeyEvent) {
	if ev.Control < ControlLeft || ev.Control > ControlThrust {
		return
	}
	if c.held[ev.Control] == ev.Down {
		return
	}
	c.held[ev.Control] = ev.Down

	sign := 1
	if !ev.Down {
		sign = -1
	}
	switch ev.Control {
	case ControlLeft:
		p.DirectionDelta(-sign, 0)
	case ControlRight:
		p.DirectionDelta(sign, 0)
	case ControlUp:
		p.DirectionDelta(0, -sign)
	case ControlDown:
		p.DirectionDelta(0, sign)
	case ControlThrust:
		if ev.Down {
			p.BeginThrust()
		} else {
			p.EndThrust()
		}
	}
}

// Held reports whether control is currently down.
func (c *Controls) Held(control Control) bool {
	if control < ControlLeft || control > ControlThrust {
		return false
	}
	return c.held[control]
}

// Release lifts every held key, e.g. when the window loses focus or a scene ends.
func (c *Controls) Release(p *Player) {
	for ctrl := ControlLeft; ctrl <= ControlThrust; ctrl++ {
		c.Apply(p, KeyEvent{Control: ctrl, Down: false})
	}
}
