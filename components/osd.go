package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OSDData is the VCR-style on-screen display (singleton component)
type OSDData struct {
	Text      string
	HoldTimer int          // Frames left before the fade starts
	Fade      *gween.Tween // nil while holding or hidden
	Alpha     float32
}

var OSD = donburi.NewComponentType[OSDData]()
