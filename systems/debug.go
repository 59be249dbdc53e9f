package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/fonts"
	"github.com/automoto/cdwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const minimapMargin = 10

// DrawDebug renders a top-down minimap of the collision space when the overlay is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena

	// One world unit is MinimapScale pixels. Map pixels convert through PixelsPerUnit.
	scale := cfg.UI.MinimapScale
	px := scale / arena.PixelsPerUnit
	w := float32(arena.Width * scale)
	h := float32(arena.Depth * scale)
	originX := float32(screen.Bounds().Dx()) - w - minimapMargin
	originY := float32(minimapMargin)

	vector.FillRect(screen, originX, originY, w, h, cfg.UI.OverlayColor, false)

	toMini := func(x, z float64) (float32, float32) {
		mx, my := arena.ToMap(x, z)
		return originX + float32(mx*px), originY + float32(my*px)
	}

	// Collision objects straight from the resolv space.
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{160, 160, 160, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen,
				originX+float32(obj.X*px), originY+float32(obj.Y*px),
				float32(obj.W*px), float32(obj.H*px), 1, c, false)
		}
	}

	tags.CD.Each(e.World, func(entry *donburi.Entry) {
		cd := components.CD.Get(entry)
		x, y := toMini(cd.Position.X, cd.Position.Z)
		vector.StrokeCircle(screen, x, y, float32(cd.Trigger.Params.Radius*scale), 1, cfg.Yellow, true)
		vector.StrokeCircle(screen, x, y, float32(cfg.CD.SoundRadius*scale), 1, cfg.Green, true)
		vector.DrawFilledCircle(screen, x, y, 2, cfg.CD.Color, true)
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		x, y := toMini(player.Position.X, player.Position.Z)
		vector.DrawFilledCircle(screen, x, y, 3, cfg.Player.Color, true)

		face := fonts.Debug.Get()
		label := fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
		text.Draw(screen, label, face, int(originX), int(originY+h)+14, cfg.White)
	}
}
