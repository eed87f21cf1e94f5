package components

import (
	"github.com/automoto/brawler/assets"
	"github.com/yohamta/donburi"
)

// ReloadData links the scene to the animation override watcher.
type ReloadData struct {
	Dir     string
	Watcher *assets.Watcher
	Reloads int
}

var Reload = donburi.NewComponentType[ReloadData]()
