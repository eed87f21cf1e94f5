package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/logger"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const settingsItem = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	InputMode  int  `json:"inputMode"`
	AttackMode int  `json:"attackMode"`
	ResumeLast bool `json:"resumeLast"`
	MirrorLeft bool `json:"mirrorLeft"`
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

// ItemStore is the subset of *gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence opens the gdata store for settings.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	store = m
	return nil
}

// SetStore replaces the settings store. A nil store disables persistence.
func SetStore(s ItemStore) {
	store = s
}

// LoadSettings loads settings from disk. It returns nil without error when
// persistence is disabled or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ToSaved captures the persisted part of the settings.
func ToSaved(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		InputMode:  int(s.InputMode),
		AttackMode: int(s.Controller.AttackMode),
		ResumeLast: s.Controller.ResumeLast,
		MirrorLeft: s.Controller.MirrorLeft,
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	}
}

// ApplySaved copies saved values over s. Out-of-range enums keep the
// current value.
func ApplySaved(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if mode := cfg.InputMode(saved.InputMode); mode >= 0 && mode < cfg.InputModeCount {
		s.InputMode = mode
	} else {
		logger.System("persistence").Warn("ignoring saved input mode", zap.Int("inputMode", saved.InputMode))
	}
	if mode := cfg.AttackMode(saved.AttackMode); mode >= 0 && mode < cfg.AttackModeCount {
		s.Controller.AttackMode = mode
	} else {
		logger.System("persistence").Warn("ignoring saved attack mode", zap.Int("attackMode", saved.AttackMode))
	}
	s.Controller.ResumeLast = saved.ResumeLast
	s.Controller.MirrorLeft = saved.MirrorLeft
	s.Fullscreen = saved.Fullscreen
	s.Debug = saved.Debug
}

// UpdatePersistence saves the settings after they change.
func UpdatePersistence(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	if err := SaveSettings(ToSaved(settings)); err != nil {
		logger.System("persistence").Warn("could not save settings", zap.Error(err))
	}
}
