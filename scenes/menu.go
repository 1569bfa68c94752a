package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cavewing/assets"
	"github.com/automoto/cavewing/components"
	"github.com/automoto/cavewing/systems"
	"github.com/automoto/cavewing/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	message      string
	menu         *components.MenuData
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldFly    bool
	shouldQuit   bool
}

// NewMenuScene creates a new menu scene. message explains why the last flight ended.
func NewMenuScene(sc SceneChanger, session *Session, message string) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session, message: message}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	if ms.ecs == nil {
		return
	}

	ms.ecs.Update()
	ms.menuUI.Update()

	switch {
	case ms.shouldFly:
		ms.session.Layout = ms.menu.Layout()
		ms.sceneChanger.ChangeScene(NewFlightScene(ms.sceneChanger, ms.session))
	case ms.shouldQuit:
		ms.sceneChanger.Quit(nil)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	names, err := assets.LayoutNames()
	if err != nil {
		ms.session.Logger.Warn("no embedded layouts", "err", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.NewUpdateMenu(
		func() { ms.shouldFly = true },
		func() { ms.shouldQuit = true },
	))

	ms.menu = systems.CreateMenu(e, names, ms.session.Layout, ms.message)
	ms.menuUI, err = ui.NewMenuUI(ms.menu,
		func() { ms.shouldFly = true },
		func() { ms.shouldQuit = true },
	)
	if err != nil {
		ms.sceneChanger.Quit(err)
		return
	}
	ms.ecs = e
}
