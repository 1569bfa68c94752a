package systems

import (
	"github.com/automoto/cavewing/archetypes"
	"github.com/automoto/cavewing/components"
	cfg "github.com/automoto/cavewing/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// globalSettings carries the toggles across scenes; each scene's Settings component
// starts from it.
var globalSettings = cfg.DefaultSettings()

// ApplySettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySettingsGlobal(s cfg.Settings) {
	globalSettings = s
	ebiten.SetFullscreen(s.Fullscreen)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{Settings: globalSettings})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug overlay and fullscreen toggles and persists them.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !ebiten.IsFullscreen()
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}

	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	globalSettings = settings.Settings
	if err := SaveSettings(settings.Settings); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}
