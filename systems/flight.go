package systems

import (
	cfg "github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/flight"
	"github.com/yohamta/donburi/ecs"
)

var flightControls = [...]struct {
	action  cfg.ActionID
	control flight.Control
}{
	{cfg.ActionLeft, flight.ControlLeft},
	{cfg.ActionRight, flight.ControlRight},
	{cfg.ActionUp, flight.ControlUp},
	{cfg.ActionDown, flight.ControlDown},
	{cfg.ActionThrust, flight.ControlThrust},
}

// UpdateFlightInput turns this frame's action edges into key events for the craft.
// Must run AFTER UpdateInput and BEFORE UpdateMap.
func UpdateFlightInput(e *ecs.ECS) {
	data := GetMap(e)
	if data == nil || data.Map == nil {
		return
	}
	input := getOrCreateInput(e)

	for _, fc := range flightControls {
		state := GetAction(input, fc.action)
		switch {
		case state.JustPressed:
			data.Map.HandleInput(flight.KeyEvent{Control: fc.control, Down: true})
		case state.JustReleased:
			data.Map.HandleInput(flight.KeyEvent{Control: fc.control, Down: false})
		}
	}
}
