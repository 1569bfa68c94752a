package systems

import (
	"github.com/automoto/cavewing/components"
	cfg "github.com/automoto/cavewing/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// StickBinding fires an action when a standard-layout axis passes the deadzone in the
// direction of Sign.
type StickBinding struct {
	Axis ebiten.StandardGamepadAxis
	Sign float64
}

// InputBinding lists every key, button and stick direction that triggers one action.
type InputBinding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
	Sticks  []StickBinding
}

// Bindings maps every action to its inputs.
var Bindings = [cfg.ActionCount]InputBinding{
	cfg.ActionLeft: {
		Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		Sticks:  []StickBinding{{ebiten.StandardGamepadAxisLeftStickHorizontal, -1}},
	},
	cfg.ActionRight: {
		Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		Sticks:  []StickBinding{{ebiten.StandardGamepadAxisLeftStickHorizontal, 1}},
	},
	cfg.ActionUp: {
		Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		Sticks:  []StickBinding{{ebiten.StandardGamepadAxisLeftStickVertical, -1}},
	},
	cfg.ActionDown: {
		Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		Sticks:  []StickBinding{{ebiten.StandardGamepadAxisLeftStickVertical, 1}},
	},
	cfg.ActionThrust: {
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross, or either trigger
		Buttons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
			ebiten.StandardGamepadButtonFrontBottomRight,
			ebiten.StandardGamepadButtonFrontBottomLeft,
		},
	},
	cfg.ActionMenu: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
		// Start / Options
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuSelect: {
		Keys:    []ebiten.Key{ebiten.KeyEnter},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF11},
	},
}

// ControlsHint is the one-line control summary for device.
func ControlsHint(device components.InputDevice) string {
	if device == components.DeviceGamepad {
		return "Stick/D-pad: Steer   A/Triggers: Thrust   Start: Menu"
	}
	return "Arrows/WASD: Steer   Space: Thrust   Esc: Menu   F3: Debug   F11: Fullscreen"
}
