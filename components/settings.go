package components

import (
	cfg "github.com/automoto/cavewing/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds the persisted toggles for the running scene.
type SettingsData struct {
	cfg.Settings
	Dirty bool // Changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
