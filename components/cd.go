package components

import (
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CDData is the proximity-triggered spinning disc.
type CDData struct {
	// Rest position. The animated height lives in Trigger.Pose.
	Position gamemath.Vec3
	Trigger  *gamemath.Trigger
	Radius   float64

	// InSound tracks the last sound radius check so the fader only retargets on crossings.
	InSound bool
}

// Current returns the animated position.
func (c *CDData) Current() gamemath.Vec3 {
	p := c.Position
	p.Y = c.Trigger.Pose.Y
	return p
}

var CD = donburi.NewComponentType[CDData]()
