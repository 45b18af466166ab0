package main

import (
	"flag"
	"image"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vitoleone27/vhsplayer3d/assets"
	"github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/fonts"
	"github.com/vitoleone27/vhsplayer3d/logs"
	"github.com/vitoleone27/vhsplayer3d/scenes"
	"github.com/vitoleone27/vhsplayer3d/systems"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show the debug overlay (toggle with F3)")
	flag.StringVar(&config.Debug.LogLevel, "log-level", config.Debug.LogLevel, "log level: debug, info, warn, error")
	flag.StringVar(&config.Assets.Dir, "assets", config.Assets.Dir, "load assets from this directory instead of the embedded set")
	flag.DurationVar(&config.Assets.LoadTimeout, "timeout", config.Assets.LoadTimeout, "give up loading textures after this long")
	flag.Parse()

	ring := logs.NewRing(config.Debug.LogLines)
	slog.SetDefault(logs.New(os.Stderr, ring))
	if err := logs.SetLevel(config.Debug.LogLevel); err != nil {
		slog.Warn("using default log level", "err", err)
	}
	scenes.RecentLogLines = ring.Lines

	if err := fonts.LoadDefaults(config.OSD.FontSize); err != nil {
		slog.Error("font setup failed", "err", err)
		os.Exit(1)
	}

	// The picture falls back to an unfiltered frame without the shader
	if err := assets.LoadShaders(); err != nil {
		slog.Warn("shader compile failed", "err", err)
	}

	systems.InitAudio(assets.FS(config.Assets.Dir))
	systems.PreloadAllCues()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		slog.Error("game loop exited", "err", err)
		os.Exit(1)
	}
}
