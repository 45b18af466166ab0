package components

import (
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi"
)

// ObjectState is the mutable transform of one renderable object.
type ObjectState struct {
	Translation [3]float64
	Rotation    [3]float64 // Only X and Y are applied
	Scale       [3]float64
	Opacity     float64 // 0.0 - 1.0
}

// DeckData stores the tape/cover animation state (singleton component).
// Clicks only raise request flags; the per-frame update moves the numbers.
type DeckData struct {
	Objects [cfg.ObjectCount]ObjectState
	Phase   cfg.Phase

	TapeInserted  bool
	Clicked       bool // An insert or eject is pending
	Ejecting      bool
	RemovingCover bool // Tape motion waits while this is set

	// Seconds into each title where playback resumes, keyed by title ID
	Progress map[string]float64
	Selected int // Index into the title catalog

	// Texture slot drawn by each object
	Slots     [cfg.ObjectCount]int
	IdleFrame int // Texture index currently shown on the idle screen
}

var Deck = donburi.NewComponentType[DeckData]()

// NewDeckData returns the deck in its start position: tape outside, cover on.
func NewDeckData() DeckData {
	d := DeckData{
		Progress:  make(map[string]float64),
		IdleFrame: cfg.TextureIdleFirst,
	}
	for i, o := range cfg.Deck.Objects {
		d.Objects[i] = ObjectState{
			Translation: o.Translation,
			Rotation:    o.Rotation,
			Scale:       o.Scale,
			Opacity:     o.Opacity,
		}
		d.Slots[i] = o.TextureSlot
	}
	return d
}
