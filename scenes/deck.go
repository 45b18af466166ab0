package scenes

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vitoleone27/vhsplayer3d/assets"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/media"
	"github.com/vitoleone27/vhsplayer3d/systems"
	"github.com/vitoleone27/vhsplayer3d/systems/factory"
	"github.com/vitoleone27/vhsplayer3d/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DeckScene is the player itself: the animated deck, the controls panel and
// the on-screen display.
type DeckScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	controls     *ui.ControlsUI
	idle         *systems.IdleCycler
	once         sync.Once

	catalog *assets.Catalog
	covers  map[string]int
	images  []*ebiten.Image
}

// RecentLogLines feeds the debug overlay; nil disables the log section.
var RecentLogLines func() []string

// NewDeckScene creates the deck scene from a loaded asset set
func NewDeckScene(sc SceneChanger, catalog *assets.Catalog, covers map[string]int, images []*ebiten.Image) *DeckScene {
	return &DeckScene{
		sceneChanger: sc,
		catalog:      catalog,
		covers:       covers,
		images:       images,
	}
}

func (ds *DeckScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
	ds.controls.Update()
}

func (ds *DeckScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Backdrop)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	ds.controls.Draw(screen)
}

func (ds *DeckScene) configure() {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateDeck(ds.ecs)
	factory.CreateTextures(ds.ecs, ds.images)
	player := media.NewTapePlayer(ds.catalog.Durations(), systems.SoundtrackOpener(ds.catalog), cfg.Audio.DefaultVolume)
	factory.CreatePlayback(ds.ecs, ds.catalog, ds.covers, player)
	systems.GetOrCreateAudio(ds.ecs)

	// Prime the first title so a tape is ready to insert
	if deckEntry, ok := components.Deck.First(ds.ecs.World); ok {
		if pbEntry, ok := components.Playback.First(ds.ecs.World); ok {
			systems.SelectTitle(components.Deck.Get(deckEntry), components.Playback.Get(pbEntry), 0)
		}
	}

	ds.controls = ui.NewControlsUI(ds.ecs)
	ds.idle = systems.StartIdleCycler(context.Background(), cfg.Assets.IdleCycleInterval)

	// Input first: the deck reads this frame's click
	ds.ecs.AddSystem(systems.NewUpdateInput(ds.controls.Contains))
	ds.ecs.AddSystem(systems.NewUpdateDeck(systems.ShowTransport))
	ds.ecs.AddSystem(systems.UpdatePlayback)
	ds.ecs.AddSystem(systems.NewUpdateIdleCycle(ds.idle))
	ds.ecs.AddSystem(systems.UpdateOSD)
	ds.ecs.AddSystem(systems.UpdateDebug)
	ds.ecs.AddSystem(systems.UpdateWindow)
	// Audio last: plays the cues queued this frame
	ds.ecs.AddSystem(systems.UpdateAudio)

	// The tape picture renders offscreen before the deck samples it
	ds.ecs.AddRenderer(cfg.Default, systems.DrawTapePicture)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDeck)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawOSD)
	ds.ecs.AddRenderer(cfg.Default, systems.NewDrawDebug(RecentLogLines))
}
