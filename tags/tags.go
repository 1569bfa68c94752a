package tags

import "github.com/yohamta/donburi"

var (
	Map = donburi.NewTag().SetName("Map")
	HUD = donburi.NewTag().SetName("HUD")
)

// Resolv tags for broadphase collision
const (
	ResolvBlock  = "block"
	ResolvPlayer = "player"
)
