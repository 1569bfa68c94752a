package config

// Settings are the player-facing toggles that survive restarts.
type Settings struct {
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

// SettingsStoreConfig configures where settings are persisted.
type SettingsStoreConfig struct {
	AppName string
	Item    string
}

// SettingsStore is the global settings persistence configuration
var SettingsStore SettingsStoreConfig

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() Settings {
	return Settings{}
}

func init() {
	SettingsStore = SettingsStoreConfig{
		AppName: "cavewing",
		Item:    "settings.json",
	}
}
