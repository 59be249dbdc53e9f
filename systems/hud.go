package systems

import (
	"fmt"

	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/fonts"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	hudPadding    = 6
	hudWidth      = 320
)

var hudLines []string

// DrawHUD renders the status panel in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := getOrCreateInput(e)
	left, right := effectiveSticks(GetOrCreateSticks(e), input)
	settings := GetOrCreateSettings(e)
	a := GetOrCreateAudio(e)

	hudLines = hudLines[:0]
	hudLines = append(hudLines,
		fmt.Sprintf("pos %.2f %.2f %.2f  %s", player.Position.X, player.Position.Y, player.Position.Z, player.Anim),
		fmt.Sprintf("move %s  look %s  %s", stickLabel(left), stickLabel(right), input.LastInputMethod),
	)
	if cdEntry, ok := tags.CD.First(e.World); ok {
		cd := components.CD.Get(cdEntry)
		state := "idle"
		if cd.Trigger.Active() {
			state = "spinning"
		}
		hudLines = append(hudLines, fmt.Sprintf("cd %s  dist %.2f", state, player.Position.Distance(cd.Current())))
	}
	vol := fmt.Sprintf("music %.0f%%", a.Fader.Volume*100)
	if settings.Muted {
		vol += " (muted)"
	}
	hudLines = append(hudLines, vol)

	h := float32(len(hudLines)*hudLineHeight + hudPadding*2)
	vector.FillRect(screen, hudMargin, hudMargin, hudWidth, h, cfg.UI.HUDTextBgColor, false)

	face := fonts.HUD.Get()
	for i, line := range hudLines {
		y := hudMargin + hudPadding + (i+1)*hudLineHeight - 4
		text.Draw(screen, line, face, hudMargin+hudPadding, y, cfg.UI.HUDTextColor)
	}
}

func stickLabel(s gamemath.Stick) string {
	if !s.Active {
		return "--"
	}
	return fmt.Sprintf("%+.2f,%+.2f", s.X, s.Y)
}

// DrawSticks renders both virtual joysticks.
func DrawSticks(e *ecs.ECS, screen *ebiten.Image) {
	sticks := GetOrCreateSticks(e)
	drawStick(screen, &sticks.Left)
	drawStick(screen, &sticks.Right)
}

func drawStick(screen *ebiten.Image, j *gamemath.Joystick) {
	r := float32(j.Size / 2)
	cx := float32(j.Left) + r
	cy := float32(j.Top) + r

	vector.DrawFilledCircle(screen, cx, cy, r, cfg.Joystick.BaseColor, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, cfg.Joystick.ThumbColor, true)
	vector.DrawFilledCircle(screen, cx+float32(j.ThumbX), cy+float32(j.ThumbY), r/2.5, cfg.Joystick.ThumbColor, true)
}
