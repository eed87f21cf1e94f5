package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/logger"
	"github.com/automoto/brawler/systems"
	"github.com/automoto/brawler/systems/factory"
	"github.com/automoto/brawler/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// StageOptions configures a StageScene.
type StageOptions struct {
	Stage        string // embedded map path
	AnimationDir string // watched for animation overrides, empty disables
	Saved        *systems.SavedSettings
	ForceTouch   bool
	Debug        bool
}

// StageScene is the single playable scene: one stage, one player.
type StageScene struct {
	ecs        *ecs.ECS
	settingsUI *ui.SettingsUI
	watcher    *assets.Watcher
	opts       StageOptions
	once       sync.Once

	width, height float64
}

func NewStageScene(opts StageOptions) *StageScene {
	if opts.Stage == "" {
		opts.Stage = assets.DefaultStage
	}
	return &StageScene{
		opts:   opts,
		width:  float64(cfg.C.WindowWidth),
		height: float64(cfg.C.WindowHeight),
	}
}

func (s *StageScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()

	if systems.GetOrCreateSettings(s.ecs).IsOpen {
		s.settingsUI.UI.Update()
	}
}

func (s *StageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)

	if systems.GetOrCreateSettings(s.ecs).IsOpen {
		s.settingsUI.UI.Draw(screen)
	}
}

// Layout records the host size. It is applied by the viewport system on the
// next tick.
func (s *StageScene) Layout(width, height int) {
	s.width, s.height = float64(width), float64(height)
	if s.ecs != nil {
		systems.SetViewportSize(s.ecs, s.width, s.height)
	}
}

// Close stops the animation watcher.
func (s *StageScene) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

func (s *StageScene) configure() {
	stage := assets.NewStageLoader().MustLoadStage(s.opts.Stage)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateReload)
	ecs.AddSystem(systems.UpdateViewport)

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEmotes))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdatePersistence)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawTouchControls)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	s.ecs = ecs
	s.populate(stage)
	s.settingsUI = ui.NewSettingsUI(s.ecs)
}

// populate spawns the stage entities. Images are loaded here, so it needs a
// running game.
func (s *StageScene) populate(stage assets.Stage) {
	settings := systems.DefaultSettings()
	systems.ApplySaved(&settings, s.opts.Saved)
	settings.TouchCapable = settings.TouchCapable || s.opts.ForceTouch
	if s.opts.Debug {
		settings.Debug = true
	}
	factory.CreateSettings(s.ecs, settings)

	factory.CreateStage(s.ecs, stage, s.width, s.height)
	factory.CreateSpace(s.ecs, stage)
	factory.CreateCamera(s.ecs, stage.Spawn.X, s.height/2, float64(stage.WorldWidth), float64(stage.WorldHeight))
	factory.CreateBackground(s.ecs, assets.MustLoadImage(stage.Background))
	factory.CreatePlayer(s.ecs, stage.Spawn.X, stage.Spawn.Y, stage.SpriteSheet, settings.Controller)
	factory.CreateInput(s.ecs, nil)

	if s.opts.AnimationDir != "" {
		watcher, err := assets.NewWatcher(s.opts.AnimationDir)
		if err != nil {
			logger.System("reload").Warn("animation hot reload disabled",
				zap.String("dir", s.opts.AnimationDir), zap.Error(err))
		} else {
			s.watcher = watcher
			factory.CreateReload(s.ecs, s.opts.AnimationDir, watcher)
		}
	}

	// Selects the input source and pushes settings to the player.
	systems.ApplySettings(s.ecs)
	systems.GetOrCreateSettings(s.ecs).Dirty = false

	logger.System("scene").Info("stage ready",
		zap.String("stage", stage.Name),
		zap.Int("worldWidth", stage.WorldWidth),
		zap.Int("worldHeight", stage.WorldHeight),
		zap.String("input", inputName(s.ecs)))
}

func inputName(e *ecs.ECS) string {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return ""
	}
	if src := components.Input.Get(entry).Source; src != nil {
		return src.Name()
	}
	return ""
}
