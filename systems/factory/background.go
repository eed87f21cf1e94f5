package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackground spawns the stage backdrop. img may be nil in tests.
func CreateBackground(ecs *ecs.ECS, img *ebiten.Image) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(bg, components.BackgroundData{
		Image: img,
		Fade:  NewFade(),
	})
	return bg
}

// NewFade returns the redraw fade played after every refit.
func NewFade() *gween.Tween {
	return gween.New(0, 1, cfg.Background.FadeSeconds, ease.OutQuad)
}
