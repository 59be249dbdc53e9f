package components

import (
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores the CD music state (singleton component)
type AudioData struct {
	Player  *audio.Player // nil until the loader delivers the track
	Source  string        // path of the loaded track, or "tone"
	Fader   *gamemath.Fader
	Playing bool
}

var Audio = donburi.NewComponentType[AudioData]()
