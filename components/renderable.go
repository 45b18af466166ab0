package components

import "github.com/yohamta/donburi"

// RenderableData links an entity to its slot in DeckData.Objects.
type RenderableData struct {
	Index int
	Name  string
}

var Renderable = donburi.NewComponentType[RenderableData]()
