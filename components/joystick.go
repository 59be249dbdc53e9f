package components

import (
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SticksData holds the two on-screen sticks. Input writes them, movement reads them.
type SticksData struct {
	Left  gamemath.Joystick
	Right gamemath.Joystick
}

var Sticks = donburi.NewComponentType[SticksData]()
