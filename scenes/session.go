package scenes

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	// Quit ends the game loop; a nil err is a normal exit.
	Quit(err error)
}

// Session is the state that outlives a single scene.
type Session struct {
	Logger *log.Logger
	Seed   uint64 // 0 draws a new seed for every flight
	Layout string // "" is the random map
}

func (s *Session) nextSeed() uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return rand.Uint64()
}
