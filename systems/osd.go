package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/fonts"
	"github.com/yohamta/donburi/ecs"
)

// ShowOSD puts a message on the on-screen display, replacing the current one.
func ShowOSD(e *ecs.ECS, msg string) {
	showOSD(getOrCreateOSD(e), msg)
}

func showOSD(o *components.OSDData, msg string) {
	o.Text = msg
	o.HoldTimer = cfg.OSD.HoldFrames
	o.Fade = nil
	o.Alpha = 1
}

// stepOSD holds the message, then fades it out over cfg.OSD.FadeSeconds.
func stepOSD(o *components.OSDData, dt float32) {
	if o.Text == "" {
		return
	}
	if o.HoldTimer > 0 {
		o.HoldTimer--
		if o.HoldTimer == 0 {
			o.Fade = gween.New(1, 0, cfg.OSD.FadeSeconds, ease.OutQuad)
		}
		return
	}
	if o.Fade == nil {
		o.Fade = gween.New(1, 0, cfg.OSD.FadeSeconds, ease.OutQuad)
	}
	alpha, finished := o.Fade.Update(dt)
	o.Alpha = alpha
	if finished {
		o.Text = ""
		o.Fade = nil
		o.Alpha = 0
	}
}

// ShowTransport is the deck's transport callback: it names the action on the OSD.
func ShowTransport(e *ecs.ECS, t Transport) {
	msg := t.String()
	if t == TransportInsert {
		if pbEntry, ok := components.Playback.First(e.World); ok {
			pb := components.Playback.Get(pbEntry)
			deckEntry, ok := components.Deck.First(e.World)
			if ok {
				d := components.Deck.Get(deckEntry)
				if d.Selected >= 0 && d.Selected < len(pb.Titles) {
					msg = "INSERT " + pb.Titles[d.Selected].Name
				}
			}
		}
	}
	ShowOSD(e, msg)
}

func UpdateOSD(e *ecs.ECS) {
	stepOSD(getOrCreateOSD(e), 1/float32(ebiten.TPS()))
}

func DrawOSD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.OSD.First(e.World)
	if !ok {
		return
	}
	o := components.OSD.Get(entry)
	if o.Text == "" || o.Alpha <= 0 {
		return
	}

	face := fonts.OSD.Get()
	x, y := cfg.OSD.MarginX, cfg.OSD.MarginY
	text.Draw(screen, o.Text, face, x+2, y+2, fade(cfg.OSD.ShadowColor, o.Alpha))
	text.Draw(screen, o.Text, face, x, y, fade(cfg.OSD.TextColor, o.Alpha))
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func getOrCreateOSD(e *ecs.ECS) *components.OSDData {
	entry, ok := components.OSD.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.OSD))
	}
	return components.OSD.Get(entry)
}
