package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/fonts"
	"github.com/automoto/cdwalk/logger"
	"github.com/automoto/cdwalk/scenes"
	"github.com/automoto/cdwalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var CLI struct {
	ConfigFile string `name:"config" help:"YAML file overriding the default tunables." type:"path" placeholder:"FILE"`
	Debug      bool   `help:"Enable debug logging and the debug overlay."`
	LogFile    string `help:"Also write JSON logs to this file, rotated." type:"path" placeholder:"FILE"`

	Play struct {
	} `cmd:"" default:"1" help:"Walk around the arena (default)."`

	Config struct {
	} `cmd:"" help:"Print the effective configuration as YAML."`

	Simulate simulateCmd `cmd:"" help:"Run the walk without a window and print the final state."`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
	Shutdown()
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		return nil, err
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Log.Warn("settings will not be saved", zap.Error(err))
	}
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettingsGlobal(saved)

	scene, err := scenes.NewWorldScene(saved)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Shutdown()
		return ebiten.Termination
	}

	g.scene.Update()

	if g.scene.QuitRequested() {
		g.scene.Shutdown()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cdwalk"),
		kong.Description("walk an arena and find the spinning CD"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if err := config.Load(CLI.ConfigFile); err != nil {
		writeError(err)
	}
	config.ApplyFlags(config.Flags{Debug: CLI.Debug, LogFile: CLI.LogFile})

	logger.Init(config.Debug.LogLevel, config.Debug.LogFile)
	defer logger.Sync()

	var err error
	switch ctx.Command() {
	case "play":
		err = playCommand()
	case "config":
		err = config.WriteYAML(os.Stdout)
	case "simulate":
		err = CLI.Simulate.Run(os.Stdout)
	}
	if err != nil {
		logger.Sync()
		writeError(err)
	}
}

func playCommand() error {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	game, err := NewGame()
	if err != nil {
		return err
	}

	logger.Log.Info("starting", zap.Int("width", config.C.Width), zap.Int("height", config.C.Height))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
