package assets

import (
	"fmt"

	"github.com/lafriks/go-tiled"
)

// DefaultStage is the embedded stage map.
const DefaultStage = "levels/stage.tmx"

type PlayerSpawn struct {
	X float64
	Y float64
}

// SolidTile is a static obstacle from the "Solids" object group.
type SolidTile struct {
	X, Y          float64
	Width, Height float64
}

// Stage is the parsed stage layout. Images are referenced by name and loaded
// separately.
type Stage struct {
	Name             string
	WorldWidth       int
	WorldHeight      int
	Background       string
	BackgroundWidth  float64
	BackgroundHeight float64
	SpriteSheet      string
	Spawn            PlayerSpawn
	Solids           []SolidTile
}

// BackgroundAspect is the background's height/width ratio.
func (s Stage) BackgroundAspect() float64 {
	if s.BackgroundWidth <= 0 {
		return 0
	}
	return s.BackgroundHeight / s.BackgroundWidth
}

type StageLoader struct{}

func NewStageLoader() *StageLoader {
	return &StageLoader{}
}

// LoadStage parses a Tiled map from the embedded levels directory.
func (l *StageLoader) LoadStage(path string) (Stage, error) {
	stageMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Stage{}, fmt.Errorf("load stage %s: %w", path, err)
	}

	stage := Stage{
		Name:        path,
		WorldWidth:  stageMap.Width * stageMap.TileWidth,
		WorldHeight: stageMap.Height * stageMap.TileHeight,
	}
	// Spawn defaults to the world centre.
	stage.Spawn = PlayerSpawn{X: float64(stage.WorldWidth) / 2, Y: float64(stage.WorldHeight) / 2}

	if stageMap.Properties != nil {
		stage.Background = stageMap.Properties.GetString("background")
		stage.BackgroundWidth = stageMap.Properties.GetFloat("backgroundWidth")
		stage.BackgroundHeight = stageMap.Properties.GetFloat("backgroundHeight")
		stage.SpriteSheet = stageMap.Properties.GetString("spritesheet")
	}

	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				stage.Spawn = PlayerSpawn{X: o.X, Y: o.Y}
			}
		case "Solids":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				stage.Solids = append(stage.Solids, SolidTile{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		}
	}

	if stage.Background == "" || stage.SpriteSheet == "" {
		return Stage{}, fmt.Errorf("stage %s: background and spritesheet properties are required", path)
	}
	if stage.BackgroundAspect() <= 0 {
		return Stage{}, fmt.Errorf("stage %s: background size must be positive", path)
	}
	return stage, nil
}

func (l *StageLoader) MustLoadStage(path string) Stage {
	stage, err := l.LoadStage(path)
	if err != nil {
		panic(err)
	}
	return stage
}
