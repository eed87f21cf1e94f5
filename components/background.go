package components

import (
	"github.com/automoto/brawler/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BackgroundData is the stage backdrop scaled to the current fit.
type BackgroundData struct {
	Image  *ebiten.Image
	Fit    gamemath.FitResult
	Fade   *gween.Tween // redraw fade, restarted on every refit
	Alpha  float32
	Redraw int // number of refits so far
}

var Background = donburi.NewComponentType[BackgroundData]()
