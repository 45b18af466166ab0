package scenes

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/vitoleone27/vhsplayer3d/assets"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/fonts"
)

// loadResult is what the background load hands back to the game loop.
type loadResult struct {
	catalog *assets.Catalog
	covers  map[string]int
	images  []image.Image
	err     error
}

// LoadingScene decodes the catalog and texture set off the game loop and
// switches to the deck once everything has resolved.
type LoadingScene struct {
	sceneChanger SceneChanger
	once         sync.Once
	done         chan loadResult
	started      time.Time
	frames       int
}

// NewLoadingScene creates a new loading scene
func NewLoadingScene(sc SceneChanger) *LoadingScene {
	return &LoadingScene{sceneChanger: sc}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.configure)
	ls.frames++

	select {
	case res := <-ls.done:
		ls.finish(res)
	default:
	}
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Loading.BackgroundColor)

	dots := (ls.frames / 20) % 4
	msg := strings.TrimRight(cfg.Loading.Message, ".") + strings.Repeat(".", dots)
	face := fonts.HUDLarge.Get()
	text.Draw(screen, msg, face, cfg.C.Width/2-120, cfg.C.Height/2, cfg.Loading.TextColor)
}

func (ls *LoadingScene) configure() {
	ls.done = make(chan loadResult, 1)
	ls.started = time.Now()

	fsys := assets.FS(cfg.Assets.Dir)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Assets.LoadTimeout)
		defer cancel()
		ls.done <- load(ctx, fsys)
	}()
}

func (ls *LoadingScene) finish(res loadResult) {
	if res.err != nil {
		slog.Error("asset load failed", "err", res.err)
		ls.sceneChanger.ChangeScene(NewErrorScene(ls.sceneChanger, res.err))
		return
	}

	// GPU images are created on the game loop goroutine
	images := make([]*ebiten.Image, len(res.images))
	for i, img := range res.images {
		images[i] = ebiten.NewImageFromImage(img)
	}

	slog.Info("assets loaded",
		"textures", len(images),
		"titles", len(res.catalog.Titles),
		"elapsed", time.Since(ls.started).Round(time.Millisecond))
	ls.sceneChanger.ChangeScene(NewDeckScene(ls.sceneChanger, res.catalog, res.covers, images))
}

func load(ctx context.Context, fsys fs.FS) loadResult {
	catalog, err := assets.LoadCatalog(fsys)
	if err != nil {
		return loadResult{err: err}
	}
	covers, err := catalog.CoverSlots(cfg.TextureNames, cfg.TextureCoverFirst)
	if err != nil {
		return loadResult{err: err}
	}
	images, err := assets.LoadTextures(ctx, fsys, cfg.TextureNames)
	if err != nil {
		return loadResult{err: fmt.Errorf("loading textures: %w", err)}
	}
	return loadResult{catalog: catalog, covers: covers, images: images}
}
