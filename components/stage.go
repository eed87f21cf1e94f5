package components

import (
	"github.com/automoto/brawler/assets"
	"github.com/yohamta/donburi"
)

type StageData struct {
	Stage assets.Stage
}

var Stage = donburi.NewComponentType[StageData]()
