package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Runtime holds the knobs chosen at launch rather than read from the config file.
type Runtime struct {
	FPS        int
	Seed       uint64
	Debug      bool
	SkipMenu   bool
	ConfigPath string
	Layout     string
	LogLevel   string
}

// Flag names, also used as viper keys.
const (
	FlagFPS      = "fps"
	FlagSeed     = "seed"
	FlagDebug    = "debug"
	FlagSkipMenu = "skip-menu"
	FlagConfig   = "config"
	FlagLayout   = "layout"
	FlagLogLevel = "log-level"
)

// RegisterFlags adds the runtime flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int(FlagFPS, 0, "Tick rate (frames per second, 0 = config file value)")
	fs.Uint64(FlagSeed, 0, "RNG seed (0 = random based on time)")
	fs.Bool(FlagDebug, false, "Start with the debug overlay enabled")
	fs.Bool(FlagSkipMenu, false, "Start flying immediately")
	fs.String(FlagConfig, "", "Path to custom game config YAML")
	fs.String(FlagLayout, "", "Map layout name (see assets/layouts)")
	fs.String(FlagLogLevel, "info", "Log level: debug, info, warn, error")
}

// BindRuntime binds fs to v and enables CAVEWING_* environment overrides.
func BindRuntime(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix("cavewing")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(fs)
}

// ReadRuntime resolves the runtime knobs from v. A zero FPS falls back to fallbackFPS.
func ReadRuntime(v *viper.Viper, fallbackFPS int) Runtime {
	rt := Runtime{
		FPS:        v.GetInt(FlagFPS),
		Seed:       v.GetUint64(FlagSeed),
		Debug:      v.GetBool(FlagDebug),
		SkipMenu:   v.GetBool(FlagSkipMenu),
		ConfigPath: v.GetString(FlagConfig),
		Layout:     v.GetString(FlagLayout),
		LogLevel:   v.GetString(FlagLogLevel),
	}
	if rt.FPS == 0 {
		rt.FPS = fallbackFPS
	}
	return rt
}
