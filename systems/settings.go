package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/input"
	"github.com/automoto/brawler/logger"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Window controls. Replaced in tests.
var (
	isFullscreen  = ebiten.IsFullscreen
	setFullscreen = ebiten.SetFullscreen
)

// UpdateSettings toggles the settings overlay and the debug HUD.
// This system should run AFTER UpdateInput but BEFORE gameplay systems.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	in := getOrCreateInput(ecs)

	if GetAction(in, cfg.ActionSettings).JustPressed {
		settings.IsOpen = !settings.IsOpen
	}
	if GetAction(in, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		ApplySettings(ecs)
	}
}

// WithGameplayChecks wraps a system to skip execution while the settings
// overlay is open.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if settings := GetOrCreateSettings(e); settings.IsOpen {
			return
		}
		system(e)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// with the configured defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, DefaultSettings())
	}
	return components.Settings.Get(entry)
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		InputMode:    cfg.InputModeAuto,
		Controller:   cloneControllerSettings(cfg.Controller),
		Debug:        cfg.Debug.HUD,
		TouchCapable: input.TouchCapable(),
	}
}

// ApplySettings pushes the current settings to the live controller, the
// input source and the window, and marks them for saving.
func ApplySettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Dirty = true
	cfg.Debug.HUD = settings.Debug

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if ctrl := components.Player.Get(entry).Controller; ctrl != nil {
			ctrl.SetSettings(settings.Controller)
		}
	})

	in := getOrCreateInput(e)
	source := input.Select(settings.InputMode, settings.TouchCapable, nil, nil, viewportReader{world: e.World})
	if in.Source == nil || in.Source.Name() != source.Name() {
		in.Source = source
		logger.System("settings").Info("input source changed",
			zap.String("source", source.Name()),
			zap.Stringer("mode", settings.InputMode))
	}

	if isFullscreen() != settings.Fullscreen {
		setFullscreen(settings.Fullscreen)
	}
}

// CycleAttackMode advances to the next attack mode.
func CycleAttackMode(s *components.SettingsData) {
	modes := cfg.SettingsMenu.AttackModes
	s.Controller.AttackMode = modes[(indexOf(modes, s.Controller.AttackMode)+1)%len(modes)]
}

// CycleInputMode advances to the next input mode.
func CycleInputMode(s *components.SettingsData) {
	modes := cfg.SettingsMenu.InputModes
	s.InputMode = modes[(indexOf(modes, s.InputMode)+1)%len(modes)]
}

func ToggleMirrorLeft(s *components.SettingsData) {
	s.Controller.MirrorLeft = !s.Controller.MirrorLeft
}

func ToggleResumeLast(s *components.SettingsData) {
	s.Controller.ResumeLast = !s.Controller.ResumeLast
}

func ToggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
}

func ToggleDebug(s *components.SettingsData) {
	s.Debug = !s.Debug
}

// MirrorLabel names the current facing convention.
func MirrorLabel(s *components.SettingsData) string {
	if s.Controller.MirrorLeft {
		return "Flip when facing left"
	}
	return "Flip when facing right"
}

func OnOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}

func cloneControllerSettings(s cfg.ControllerSettings) cfg.ControllerSettings {
	s.AttackSet = append([]cfg.AnimationKey(nil), s.AttackSet...)
	s.Emotes = append([]cfg.AnimationKey(nil), s.Emotes...)
	return s
}

// viewportReader resolves the viewport component on each call so input
// sources never hold a pointer into component storage.
type viewportReader struct {
	world donburi.World
}

func (v viewportReader) ViewportSize() (float64, float64) {
	entry, ok := components.Viewport.First(v.world)
	if !ok {
		return float64(cfg.C.WindowWidth), float64(cfg.C.WindowHeight)
	}
	return components.Viewport.Get(entry).ViewportSize()
}
