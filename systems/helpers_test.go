package systems

import (
	"testing"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/controller"
	"github.com/automoto/brawler/input"
	"github.com/automoto/brawler/systems/factory"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scriptedSource replays a fixed intent.
type scriptedSource struct {
	intent controller.Intent
}

func (s *scriptedSource) Sample() controller.Intent { return s.intent }
func (s *scriptedSource) Name() string              { return "scripted" }

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(key ebiten.Key) bool { return f[key] }

type fakeTaps struct{ next []input.Pointer }

func (f *fakeTaps) AppendTaps(dst []input.Pointer) []input.Pointer {
	dst = append(dst, f.next...)
	f.next = nil
	return dst
}

func testStage() assets.Stage {
	return assets.Stage{
		Name:             "test",
		WorldWidth:       5036,
		WorldHeight:      1462,
		Background:       "background.png",
		BackgroundWidth:  5036,
		BackgroundHeight: 1462,
		SpriteSheet:      "brawler48x48.png",
		Spawn:            assets.PlayerSpawn{X: 2518, Y: 731},
	}
}

type testWorld struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	source *scriptedSource
}

// newTestWorld builds a stage without images. Settings use a fixed punch so
// attack timing is deterministic.
func newTestWorld(t *testing.T, stage assets.Stage, viewW, viewH float64) *testWorld {
	t.Helper()

	prevKeys, prevTaps := menuKeys, tapReader
	prevIs, prevSet := isFullscreen, setFullscreen
	menuKeys = fakeKeys{}
	tapReader = &fakeTaps{}
	isFullscreen = func() bool { return false }
	setFullscreen = func(bool) {}
	t.Cleanup(func() {
		menuKeys, tapReader = prevKeys, prevTaps
		isFullscreen, setFullscreen = prevIs, prevSet
	})

	e := ecs.NewECS(donburi.NewWorld())

	settings := DefaultSettings()
	settings.Controller.AttackMode = cfg.AttackFixed
	settings.Controller.FixedAttack = cfg.Punch
	factory.CreateSettings(e, settings)

	factory.CreateStage(e, stage, viewW, viewH)
	factory.CreateSpace(e, stage)
	factory.CreateCamera(e, stage.Spawn.X, viewH/2, float64(stage.WorldWidth), float64(stage.WorldHeight))
	factory.CreateBackground(e, nil)
	player := factory.CreatePlayer(e, stage.Spawn.X, stage.Spawn.Y, stage.SpriteSheet, settings.Controller)

	source := &scriptedSource{}
	factory.CreateInput(e, source)

	return &testWorld{ecs: e, player: player, source: source}
}

// tick runs the gameplay systems in scene order.
func (w *testWorld) tick() {
	UpdateInput(w.ecs)
	UpdateSettings(w.ecs)
	UpdateViewport(w.ecs)
	WithGameplayChecks(UpdateEmotes)(w.ecs)
	WithGameplayChecks(UpdatePlayer)(w.ecs)
	WithGameplayChecks(UpdateAnimations)(w.ecs)
	WithGameplayChecks(UpdatePhysics)(w.ecs)
	WithGameplayChecks(UpdateCamera)(w.ecs)
	UpdateTweens(w.ecs)
}

func (w *testWorld) controller() *controller.Controller {
	return components.Player.Get(w.player).Controller
}

func (w *testWorld) centerX() float64 {
	o := components.Object.Get(w.player)
	return o.X + o.W/2
}

func firstPlayer(e *ecs.ECS) *donburi.Entry {
	entry, _ := tags.Player.First(e.World)
	return entry
}
