package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = 0

// OSDConfig contains the on-screen display configuration
type OSDConfig struct {
	HoldFrames  int     // Frames the text stays fully visible
	FadeSeconds float32 // Fade-out duration after the hold
	TextColor   color.RGBA
	ShadowColor color.RGBA
	MarginX     int
	MarginY     int
	FontSize    float64
}

// OSD is the global on-screen display configuration
var OSD OSDConfig

func init() {
	OSD = OSDConfig{
		HoldFrames:  90, // 1.5 seconds at 60fps
		FadeSeconds: 0.75,
		TextColor:   BrightGreen,
		ShadowColor: color.RGBA{R: 0, G: 40, B: 0, A: 255},
		MarginX:     24,
		MarginY:     40,
		FontSize:    22,
	}
}
