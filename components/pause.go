package components

import "github.com/yohamta/donburi"

// PauseReason records why the world stopped.
type PauseReason int

const (
	PauseNone PauseReason = iota
	PauseManual
	PauseFocusLost
)

// PauseData stores the pause state
type PauseData struct {
	IsPaused      bool
	Reason        PauseReason
	QuitRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
