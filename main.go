// cavewing is a cave-flying arcade game: steer a thrust-driven craft through a
// generated map of rock outlines and obstacles without wrecking the hull.
//
// Usage:
//
//	cavewing [flags]
//
// Flags:
//
//	--fps <rate>         - Tick rate (default: config file value)
//	--seed <value>       - RNG seed for reproducible maps (0 = random)
//	--layout <name|path> - Embedded layout name or a .tmx file
//	--config <path>      - Custom config YAML
//	--debug              - Start with the debug overlay
//	--skip-menu          - Start flying immediately
//	--log-level <level>  - debug, info, warn, error
//
// Every flag can also be set as CAVEWING_<FLAG>, e.g. CAVEWING_SEED=42.
package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/fonts"
	"github.com/automoto/cavewing/scenes"
	"github.com/automoto/cavewing/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	quitting bool
	quitErr  error
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit stops the loop after the current frame.
func (g *Game) Quit(err error) {
	g.quitting = true
	g.quitErr = err
}

func NewGame(session *scenes.Session, skipMenu bool) *Game {
	g := &Game{}
	if skipMenu {
		g.scene = scenes.NewFlightScene(g, session)
	} else {
		g.scene = scenes.NewMenuScene(g, session, "")
	}
	return g
}

func (g *Game) Update() error {
	if !g.quitting {
		g.scene.Update()
	}
	if g.quitting {
		if g.quitErr != nil {
			return g.quitErr
		}
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "cavewing",
	Short: "Cavewing - fly a thrust craft through generated caves",
	Long: `Cavewing generates a cave of rock outlines and obstacles and drops you in
with a full tank. Steer with the arrows or WASD, hold Space to thrust.
Every collision costs hull; the flight ends when the hull is gone.

Examples:
  cavewing
  cavewing --seed 42 --layout canyon
  cavewing --config ./my-cave.yaml --fps 60
  CAVEWING_DEBUG=true cavewing --skip-menu`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := config.BindRuntime(v, cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	file, err := config.Load(v.GetString(config.FlagConfig))
	if err != nil {
		return err
	}
	rt := config.ReadRuntime(v, file.Game.FPS)
	if rt.FPS <= 0 {
		return &config.Error{Section: "game", Field: "fps", Reason: "fps must be positive"}
	}
	file.Game.FPS = rt.FPS
	config.Apply(file)

	logger, err := newLogger(rt.LogLevel)
	if err != nil {
		return err
	}
	log.SetDefault(logger)

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil {
		logger.Warn("ignoring saved settings", "err", err)
	}
	settings.Debug = settings.Debug || rt.Debug
	systems.ApplySettingsGlobal(settings)

	ebiten.SetWindowTitle("Cavewing")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.FPS)

	session := &scenes.Session{
		Logger: logger,
		Seed:   rt.Seed,
		Layout: rt.Layout,
	}
	logger.Info("starting", "fps", config.C.FPS, "seed", rt.Seed, "layout", rt.Layout)

	if err := ebiten.RunGame(NewGame(session, rt.SkipMenu)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "cavewing",
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, nil
}
