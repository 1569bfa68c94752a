package systems

import (
	"github.com/automoto/cavewing/archetypes"
	"github.com/automoto/cavewing/components"
	cfg "github.com/automoto/cavewing/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system. Select starts a flight, the menu key quits.
func NewUpdateMenu(onStart, onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if entry, ok := components.Menu.First(e.World); ok {
			components.Menu.Get(entry).Device = input.Device
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			onStart()
			return
		}
		if GetAction(input, cfg.ActionMenu).JustPressed {
			onQuit()
		}
	}
}

// CreateMenu adds the menu entity. layouts lists the selectable layout names; the
// random map is always offered first.
func CreateMenu(e *ecs.ECS, layouts []string, selected, message string) *components.MenuData {
	options := append([]string{""}, layouts...)
	index := -1
	for i, name := range options {
		if name == selected {
			index = i
		}
	}
	if index < 0 {
		// A layout file from disk
		options = append(options, selected)
		index = len(options) - 1
	}

	entry := archetypes.Menu.Spawn(e)
	components.Menu.SetValue(entry, components.MenuData{
		Message:     message,
		Layouts:     options,
		LayoutIndex: index,
	})
	return components.Menu.Get(entry)
}

// CycleLayout selects the next layout and returns its name.
func CycleLayout(menu *components.MenuData) string {
	if len(menu.Layouts) == 0 {
		return ""
	}
	menu.LayoutIndex = (menu.LayoutIndex + 1) % len(menu.Layouts)
	return menu.Layout()
}

// LayoutLabel is the display name of a layout.
func LayoutLabel(name string) string {
	if name == "" {
		return "random"
	}
	return name
}
