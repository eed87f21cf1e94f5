package components

import (
	"github.com/automoto/brawler/controller"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller  *controller.Controller
	LastCommand controller.Command
	Scale       float64 // sprite scale derived from the viewport height
	EmoteIndex  int     // next entry of the emote cycle
	LockWarned  bool    // watchdog already reported the current lock
}

var Player = donburi.NewComponentType[PlayerData]()
