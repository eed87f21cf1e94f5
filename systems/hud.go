package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudWidth      = 330
)

var hudBackground = color.RGBA{0, 0, 0, 160}

// DrawHUD renders the controller and fit state in the top-left corner when
// debug is on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}
	lines := HUDLines(ecs)

	vector.FillRect(screen, hudMargin/2, hudMargin/2,
		hudWidth, float32(len(lines)*hudLineHeight+hudMargin), hudBackground, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, color.White)
	}
}

// HUDLines formats the debug readout.
func HUDLines(ecs *ecs.ECS) []string {
	lines := make([]string, 0, 8)

	if entry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(entry)
		if player.Controller != nil {
			state := player.Controller.State()
			lines = append(lines,
				fmt.Sprintf("anim: %s  locked: %t  emote: %t", state.Current, state.Locked, state.Emote),
				fmt.Sprintf("facing: %s  flip: %t  vx: %.0f", state.Facing, player.LastCommand.FlipX, player.LastCommand.VelocityX),
			)
		}
		obj := components.Object.Get(entry)
		lines = append(lines, fmt.Sprintf("pos: %.0f,%.0f  scale: %.2f", obj.X+obj.W/2, obj.Y+obj.H/2, player.Scale))
	}

	if entry, ok := components.Background.First(ecs.World); ok {
		fit := components.Background.Get(entry).Fit
		lines = append(lines, fmt.Sprintf("fit: %.0fx%.0f @ %.0f,%.0f", fit.DisplayWidth, fit.DisplayHeight, fit.OffsetX, fit.OffsetY))
	}

	if entry, ok := components.Input.First(ecs.World); ok {
		in := components.Input.Get(entry)
		if in.Source != nil {
			lines = append(lines, fmt.Sprintf("input: %s  move: %s  action: %t", in.Source.Name(), in.Intent.Move, in.Intent.Action))
		}
	}

	lines = append(lines, fmt.Sprintf("tps: %.1f", ebiten.ActualTPS()))
	return lines
}
