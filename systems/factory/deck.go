package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vitoleone27/vhsplayer3d/archetypes"
	"github.com/vitoleone27/vhsplayer3d/assets"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/media"
	"github.com/vitoleone27/vhsplayer3d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeck spawns the four deck objects and the deck singleton in their
// start position.
func CreateDeck(ecs *ecs.ECS) *donburi.Entry {
	for i, o := range cfg.Deck.Objects {
		e := archetypes.Renderable.Spawn(ecs, tags.ForObject(i))
		components.Renderable.SetValue(e, components.RenderableData{
			Index: i,
			Name:  o.Name,
		})
	}

	deck := archetypes.Deck.Spawn(ecs)
	components.Deck.SetValue(deck, components.NewDeckData())
	return deck
}

// CreatePlayback spawns the playback singleton for a catalog.
func CreatePlayback(ecs *ecs.ECS, catalog *assets.Catalog, covers map[string]int, player media.Player) *donburi.Entry {
	pb := archetypes.Playback.Spawn(ecs)
	components.Playback.SetValue(pb, components.PlaybackData{
		Player: player,
		Titles: catalog.Titles,
		Covers: covers,
	})
	return pb
}

// CreateTextures spawns the texture set singleton.
func CreateTextures(ecs *ecs.ECS, images []*ebiten.Image) *donburi.Entry {
	tex := archetypes.Textures.Spawn(ecs)
	components.Textures.SetValue(tex, components.TexturesData{
		Images: images,
	})
	return tex
}
