package components

import (
	"github.com/vitoleone27/vhsplayer3d/assets"
	"github.com/vitoleone27/vhsplayer3d/media"
	"github.com/yohamta/donburi"
)

// PlaybackData holds the player driving the virtual tape and the titles it can play.
type PlaybackData struct {
	Player media.Player
	Titles []assets.Title
	Covers map[string]int // Title ID -> texture index of its cover art
}

var Playback = donburi.NewComponentType[PlaybackData]()
