package scenes

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/automoto/cavewing/archetypes"
	"github.com/automoto/cavewing/assets"
	cfg "github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/shared/gamectx"
	"github.com/automoto/cavewing/shared/world"
	"github.com/automoto/cavewing/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlightScene runs one flight over a generated map until the craft crashes or the
// player returns to the menu.
type FlightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

func NewFlightScene(sc SceneChanger, session *Session) *FlightScene {
	return &FlightScene{sceneChanger: sc, session: session}
}

func (fs *FlightScene) Update() {
	var setupErr error
	fs.once.Do(func() { setupErr = fs.configure() })
	if setupErr != nil {
		fs.session.Logger.Error("map setup failed", "err", setupErr)
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.session, setupErr.Error()))
		return
	}
	if fs.ecs == nil {
		return
	}

	fs.ecs.Update()

	if systems.GetAction(systems.GetInput(fs.ecs), cfg.ActionMenu).JustPressed {
		fs.leave("")
		return
	}

	if data := systems.GetMap(fs.ecs); data != nil && data.Crashed {
		seconds := float64(data.Frames) / float64(cfg.C.FPS)
		fs.session.Logger.Info("crashed", "frames", data.Frames, "seconds", seconds)
		fs.leave(fmt.Sprintf("Crashed after %.1f seconds", seconds))
	}
}

func (fs *FlightScene) leave(message string) {
	systems.ReleaseMap(fs.ecs)
	fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.session, message))
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FlightScene) configure() error {
	layout, err := assets.ResolveLayout(fs.session.Layout)
	if err != nil {
		return err
	}

	bounds := image.Rect(0, 0, cfg.Map.Width, cfg.Map.Height)
	var presets []image.Rectangle
	if layout != nil {
		bounds = layout.Bounds
		presets = layout.Obstacles
	}

	seed := fs.session.nextSeed()
	ctx, err := gamectx.New(cfg.C.FPS, seed, gamectx.PalettesFrom(cfg.Palettes), fs.session.Logger)
	if err != nil {
		return err
	}

	m, err := world.New(bounds, cfg.Map, cfg.Player, ctx)
	if err != nil {
		return err
	}
	if err := m.GenerateTerrain(presets); err != nil {
		return err
	}

	spawn := m.SpawnPoint()
	if layout != nil && layout.HasSpawn {
		spawn = layout.Spawn
	}
	player := m.SpawnPlayer(spawn)

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateFlightInput)
	e.AddSystem(systems.UpdateMap)
	e.AddSystem(systems.UpdateHUD)

	e.AddRenderer(archetypes.LayerDefault, systems.DrawMap)
	e.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)
	e.AddRenderer(archetypes.LayerDebug, systems.DrawDebug)

	systems.CreateMap(e, m, layout)
	systems.CreateHUD(e, player)
	fs.ecs = e

	fs.session.Logger.Info("flight started",
		"seed", seed,
		"layout", systems.LayoutLabel(fs.session.Layout),
		"bounds", bounds,
		"blocks", len(m.Terrain().All),
	)
	return nil
}
