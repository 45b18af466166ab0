package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TexturesData holds every loaded texture, indexed like the texture set.
type TexturesData struct {
	Images []*ebiten.Image

	// Current playback frame, drawn behind the idle screen
	Screen *ebiten.Image
}

var Textures = donburi.NewComponentType[TexturesData]()
