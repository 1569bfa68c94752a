package components

import (
	cfg "github.com/automoto/cavewing/config"
	"github.com/yohamta/donburi"
)

// InputDevice is the kind of device that produced the latest input.
type InputDevice int

const (
	DeviceKeyboard InputDevice = iota
	DeviceGamepad
)

// ActionState is one action's edge state for the frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds the pressed state of every action for this frame and the last.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Device   InputDevice
}

var Input = donburi.NewComponentType[InputData]()
