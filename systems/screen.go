package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/vitoleone27/vhsplayer3d/assets"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/fonts"
	"github.com/yohamta/donburi/ecs"
)

const (
	screenWidth  = 256
	screenHeight = 192
)

var (
	screenFrame  *ebiten.Image
	screenDrawOp = &ebiten.DrawImageOptions{}
	screenRectOp = &ebiten.DrawRectShaderOptions{}
)

// DrawTapePicture renders the current playback frame into the offscreen image
// the idle screen reveals. The deck has no video decoder, so the picture is
// the title's cover art drifting with the tape position.
func DrawTapePicture(e *ecs.ECS, _ *ebiten.Image) {
	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	texEntry, ok := components.Textures.First(e.World)
	if !ok {
		return
	}
	pbEntry, ok := components.Playback.First(e.World)
	if !ok {
		return
	}
	d := components.Deck.Get(deckEntry)
	tex := components.Textures.Get(texEntry)
	pb := components.Playback.Get(pbEntry)

	// Nothing shows through while the idle screen is opaque
	if d.Objects[cfg.ObjectIdleScreen].Opacity >= 1 {
		return
	}

	if screenFrame == nil {
		screenFrame = ebiten.NewImage(screenWidth, screenHeight)
	}
	if tex.Screen == nil {
		tex.Screen = ebiten.NewImage(screenWidth, screenHeight)
	}

	t := pb.Player.CurrentTime()
	screenFrame.Fill(color.Black)

	id := currentTitleID(d, pb)
	if slot, ok := pb.Covers[id]; ok && slot < len(tex.Images) {
		art := tex.Images[slot]
		aw, ah := float64(art.Bounds().Dx()), float64(art.Bounds().Dy())
		scale := math.Max(screenWidth/aw, screenHeight/ah) * 1.15

		screenDrawOp.GeoM.Reset()
		screenDrawOp.GeoM.Scale(scale, scale)
		screenDrawOp.GeoM.Translate(
			-(aw*scale-screenWidth)/2+math.Sin(t*0.4)*12,
			-(ah*scale-screenHeight)/2+math.Cos(t*0.3)*8,
		)
		screenDrawOp.Filter = ebiten.FilterLinear
		screenFrame.DrawImage(art, screenDrawOp)
	}

	text.Draw(screenFrame, timecode(t), fonts.Timecode.Get(), 8, screenHeight-10, cfg.White)

	tex.Screen.Clear()
	if assets.ScanlineShader == nil {
		tex.Screen.DrawImage(screenFrame, nil)
		return
	}
	screenRectOp.Images[0] = screenFrame
	screenRectOp.Uniforms = map[string]any{"Time": float32(t)}
	tex.Screen.DrawRectShader(screenWidth, screenHeight, assets.ScanlineShader, screenRectOp)
}

// timecode formats seconds as a VCR counter, H:MM:SS.
func timecode(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
}
