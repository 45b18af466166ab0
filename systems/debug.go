package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay on its key.
func UpdateDebug(e *ecs.ECS) {
	d := getOrCreateDebug(e)
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		d.Visible = !d.Visible
	}
}

// NewDrawDebug returns the overlay renderer. recent supplies the latest log
// lines and may be nil.
func NewDrawDebug(recent func() []string) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !getOrCreateDebug(e).Visible {
			return
		}
		deckEntry, ok := components.Deck.First(e.World)
		if !ok {
			return
		}
		d := components.Deck.Get(deckEntry)

		lines := []string{
			fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			fmt.Sprintf("phase %s", d.Phase),
			fmt.Sprintf("inserted=%t clicked=%t ejecting=%t removingCover=%t",
				d.TapeInserted, d.Clicked, d.Ejecting, d.RemovingCover),
			fmt.Sprintf("cover x=%.3f  tape rot.x=%.3f z=%.3f  idle opacity=%.0f",
				d.Objects[cfg.ObjectCover].Translation[0],
				d.Objects[cfg.ObjectTape].Rotation[0],
				d.Objects[cfg.ObjectTape].Translation[2],
				d.Objects[cfg.ObjectIdleScreen].Opacity),
		}
		if pbEntry, ok := components.Playback.First(e.World); ok {
			pb := components.Playback.Get(pbEntry)
			id := currentTitleID(d, pb)
			lines = append(lines, fmt.Sprintf("title %s  t=%.2f  paused=%t  vol=%.2f  saved=%.2f",
				id, pb.Player.CurrentTime(), pb.Player.Paused(), pb.Player.Volume(), d.Progress[id]))
		}
		if recent != nil {
			lines = append(lines, "")
			lines = append(lines, recent()...)
		}

		const lineHeight = 14
		h := float32(len(lines)*lineHeight + 10)
		vector.FillRect(screen, 0, float32(screen.Bounds().Dy())-h, float32(screen.Bounds().Dx()), h, cfg.BlackOverlay, false)

		face := fonts.HUD.Get()
		y := screen.Bounds().Dy() - int(h) + lineHeight
		for _, l := range lines {
			text.Draw(screen, l, face, 8, y, cfg.White)
			y += lineHeight
		}
	}
}

func getOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Visible: cfg.Debug.Overlay})
	}
	return components.Debug.Get(entry)
}
