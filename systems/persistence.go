package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/cavewing/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.SettingsStore.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. Missing or unreadable settings yield the
// defaults; only a corrupt file is reported.
func LoadSettings() (cfg.Settings, error) {
	settings := cfg.DefaultSettings()
	if gdataManager == nil {
		return settings, nil
	}

	data, err := gdataManager.LoadItem(cfg.SettingsStore.Item)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return settings, nil
	}
	if len(data) == 0 {
		// No saved settings yet
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return cfg.DefaultSettings(), fmt.Errorf("parse saved settings: %w", err)
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s cfg.Settings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(cfg.SettingsStore.Item, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
