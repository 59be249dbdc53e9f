package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/cdwalk/logger"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

type PauseUI struct {
	UI *ebitenui.UI

	OnResume     func()
	OnToggleMute func()
	OnQuit       func()

	musicLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewPauseUI(onResume, onToggleMute, onQuit func()) *PauseUI {
	ui := &PauseUI{
		OnResume:     onResume,
		OnToggleMute: onToggleMute,
		OnQuit:       onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logger.Log.Fatal("failed to load UI font", zap.Error(err))
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.musicLabel = widget.NewLabel(
		widget.LabelOpts.Text("Music: on", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{0, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(ui.musicLabel)

	contentContainer.AddChild(ui.button("Resume", color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnResume != nil {
			ui.OnResume()
		}
	}))
	contentContainer.AddChild(ui.button("Toggle Mute", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnToggleMute != nil {
			ui.OnToggleMute()
		}
	}))
	contentContainer.AddChild(ui.button("Quit", color.RGBA{110, 40, 40, 255}, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PauseUI) button(label string, base color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(base),
			Hover:   image.NewNineSliceColor(lighten(base, 30)),
			Pressed: image.NewNineSliceColor(lighten(base, -20)),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func lighten(c color.RGBA, d int) color.RGBA {
	shift := func(v uint8) uint8 {
		return uint8(max(0, min(255, int(v)+d)))
	}
	return color.RGBA{shift(c.R), shift(c.G), shift(c.B), c.A}
}

// SetMuted updates the music status line.
func (ui *PauseUI) SetMuted(muted bool) {
	if ui.musicLabel == nil {
		return
	}
	if muted {
		ui.musicLabel.Label = "Music: muted"
	} else {
		ui.musicLabel.Label = "Music: on"
	}
}

func (ui *PauseUI) Update() {
	ui.UI.Update()
}

func (ui *PauseUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
