package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	triOp = &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		Filter:         ebiten.FilterLinear,
	}
	triVerts   = make([]ebiten.Vertex, 3)
	triIndices = []uint16{0, 1, 2}
	drawItems  []drawItem
)

// DrawDeck renders the four deck objects with software projection. Faces of
// all objects are painted back to front; on equal depth lower indices win,
// so the cover sits on the tape it shares a transform with.
func DrawDeck(e *ecs.ECS, screen *ebiten.Image) {
	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	texEntry, ok := components.Textures.First(e.World)
	if !ok {
		return
	}
	d := components.Deck.Get(deckEntry)
	tex := components.Textures.Get(texEntry)

	// The playback frame gets a texture index past the loaded set
	screenTex := len(tex.Images)

	drawItems = drawItems[:0]
	components.Renderable.Each(e.World, func(entry *donburi.Entry) {
		r := components.Renderable.Get(entry)
		o := d.Objects[r.Index]
		tris := ProjectObject(o)

		if r.Index == cfg.ObjectIdleScreen && tex.Screen != nil && o.Opacity < 1 {
			for _, t := range tris {
				drawItems = append(drawItems, drawItem{tri: t, texture: screenTex, alpha: 1, order: 1})
			}
		}
		if o.Opacity <= 0 {
			return
		}
		for _, t := range tris {
			drawItems = append(drawItems, drawItem{
				tri:     t,
				texture: d.Slots[r.Index],
				alpha:   float32(o.Opacity),
				order:   r.Index * 2,
			})
		}
	})
	sortBackToFront(drawItems)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	for _, it := range drawItems {
		img := tex.Screen
		if it.texture < len(tex.Images) {
			img = tex.Images[it.texture]
		}
		if img == nil {
			continue
		}
		tw := float32(img.Bounds().Dx())
		th := float32(img.Bounds().Dy())

		for i, v := range it.tri {
			shade := min(v.Shade, 1) * it.alpha
			triVerts[i] = ebiten.Vertex{
				DstX:   (v.Pos.X() + 1) / 2 * w,
				DstY:   (1 - v.Pos.Y()) / 2 * h,
				SrcX:   v.UV.X() * tw,
				SrcY:   (1 - v.UV.Y()) * th,
				ColorR: shade,
				ColorG: shade,
				ColorB: shade,
				ColorA: it.alpha,
			}
		}
		screen.DrawTriangles(triVerts, triIndices, img, triOp)
	}
}
