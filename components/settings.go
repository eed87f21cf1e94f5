package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores the settings overlay state and the current values.
type SettingsData struct {
	IsOpen     bool
	InputMode  cfg.InputMode
	Controller cfg.ControllerSettings
	Fullscreen bool
	Debug      bool
	Dirty      bool // values changed since the last save

	TouchCapable bool // detected or forced at startup, not persisted
}

var Settings = donburi.NewComponentType[SettingsData]()
