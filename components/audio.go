package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context     *audio.Context
	CueVolume   float64 // 0.0 - 1.0
	PendingCues []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
