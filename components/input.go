package components

import (
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputPointer
	InputGamepad
)

func (m InputMethod) String() string {
	switch m {
	case InputPointer:
		return "pointer"
	case InputGamepad:
		return "gamepad"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Gamepad sticks after the dead zone, screen Y already flipped.
	PadLeft  gamemath.Stick
	PadRight gamemath.Stick
}

var Input = donburi.NewComponentType[InputData]()
