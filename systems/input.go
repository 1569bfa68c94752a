package systems

import (
	"github.com/automoto/cavewing/archetypes"
	"github.com/automoto/cavewing/components"
	cfg "github.com/automoto/cavewing/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused every frame to avoid allocating the gamepad list.
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and every standard-layout gamepad into the Input
// component. It must run before any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboard, gamepad bool
	for id := range Bindings {
		k, g := pollBinding(&Bindings[id], gamepadIDs)
		input.Current[id] = k || g
		keyboard = keyboard || k
		gamepad = gamepad || g
	}

	// The keyboard wins a tie so a resting stick never steals the hint.
	switch {
	case keyboard:
		input.Device = components.DeviceKeyboard
	case gamepad:
		input.Device = components.DeviceGamepad
	}
}

func pollBinding(b *InputBinding, gamepads []ebiten.GamepadID) (keyboard, gamepad bool) {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			keyboard = true
			break
		}
	}

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return keyboard, true
			}
		}
		for _, s := range b.Sticks {
			if ebiten.StandardGamepadAxisValue(id, s.Axis)*s.Sign > cfg.AnalogDeadzone {
				return keyboard, true
			}
		}
	}
	return keyboard, false
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
	}
	return components.Input.Get(entry)
}

// GetAction derives the edge state of id from this frame and the last.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetInput returns the frame's input state.
func GetInput(e *ecs.ECS) *components.InputData {
	return getOrCreateInput(e)
}
