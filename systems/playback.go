package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi/ecs"
)

// clocked is a player whose position is advanced by the game loop.
type clocked interface {
	Update(dt float64)
}

// UpdatePlayback advances the tape clock and applies volume and title shortcuts.
func UpdatePlayback(e *ecs.ECS) {
	pbEntry, ok := components.Playback.First(e.World)
	if !ok {
		return
	}
	pb := components.Playback.Get(pbEntry)

	if c, ok := pb.Player.(clocked); ok {
		c.Update(1 / float64(ebiten.TPS()))
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionVolumeUp).JustPressed {
		SetVolume(e, pb.Player.Volume()+cfg.Controls.VolumeStep)
	}
	if GetAction(input, cfg.ActionVolumeDown).JustPressed {
		SetVolume(e, pb.Player.Volume()-cfg.Controls.VolumeStep)
	}

	if GetAction(input, cfg.ActionNextTitle).JustPressed {
		deckEntry, ok := components.Deck.First(e.World)
		if !ok {
			return
		}
		d := components.Deck.Get(deckEntry)
		if MenuDisabled(d) || len(pb.Titles) == 0 {
			return
		}
		next := (d.Selected + 1) % len(pb.Titles)
		if SelectTitle(d, pb, next) {
			ShowOSD(e, pb.Titles[next].Name)
		}
	}
}

// SetVolume applies a volume in [0, 1] to the player and shows it on the OSD.
func SetVolume(e *ecs.ECS, v float64) {
	pbEntry, ok := components.Playback.First(e.World)
	if !ok {
		return
	}
	pb := components.Playback.Get(pbEntry)
	pb.Player.SetVolume(v)
	ShowOSD(e, volumeLabel(pb.Player.Volume()))
}

func volumeLabel(v float64) string {
	const bars = 20
	n := int(v*bars + 0.5)
	label := "VOL "
	for i := 0; i < bars; i++ {
		if i < n {
			label += "|"
		} else {
			label += "."
		}
	}
	return label
}
