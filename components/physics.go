package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is the kinematic body driven by the controller. There is no
// gravity or friction; velocity is set directly every tick.
type PhysicsData struct {
	VelocityX          float64 // world units per second
	FlipX              bool
	CollideWorldBounds bool
	Blocked            bool // last move was stopped by a world bound
}

var Physics = donburi.NewComponentType[PhysicsData]()
