package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionThrust
	ActionMenu
	ActionMenuSelect
	ActionDebug
	ActionFullscreen
	ActionCount // Must be last - used for array sizing
)

// AnalogDeadzone is the stick deflection below which the left stick is ignored.
const AnalogDeadzone = 0.35
