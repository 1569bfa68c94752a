package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the main menu
type MenuData struct {
	Message     string   // Shown under the title, e.g. why the last flight ended
	Layouts     []string // "" is the random map
	LayoutIndex int
	Device      InputDevice // Picks the controls hint
}

// Layout returns the selected layout name.
func (m *MenuData) Layout() string {
	if len(m.Layouts) == 0 {
		return ""
	}
	return m.Layouts[m.LayoutIndex%len(m.Layouts)]
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
