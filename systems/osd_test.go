package systems

import (
	"testing"

	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestOSDHoldsThenFades(t *testing.T) {
	var o components.OSDData
	showOSD(&o, "PLAY")

	for i := 0; i < cfg.OSD.HoldFrames-1; i++ {
		stepOSD(&o, 1.0/60)
		if o.Alpha != 1 || o.Text != "PLAY" {
			t.Fatalf("frame %d: alpha=%v text=%q during hold", i, o.Alpha, o.Text)
		}
	}

	last := o.Alpha
	frames := 0
	for o.Text != "" {
		stepOSD(&o, 1.0/60)
		if o.Alpha > last {
			t.Fatalf("alpha rose from %v to %v while fading", last, o.Alpha)
		}
		last = o.Alpha
		frames++
		if frames > 1000 {
			t.Fatalf("OSD never cleared")
		}
	}
	if o.Alpha != 0 || o.Fade != nil {
		t.Fatalf("cleared OSD should be invisible, alpha=%v", o.Alpha)
	}
}

func TestOSDReplaceRestartsHold(t *testing.T) {
	var o components.OSDData
	showOSD(&o, "PLAY")
	for i := 0; i < cfg.OSD.HoldFrames+5; i++ {
		stepOSD(&o, 1.0/60)
	}
	showOSD(&o, "PAUSE")
	if o.Text != "PAUSE" || o.Alpha != 1 || o.Fade != nil || o.HoldTimer != cfg.OSD.HoldFrames {
		t.Fatalf("replacement did not restart: %+v", o)
	}
}

func TestShowTransportNamesTitleOnInsert(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	r := newRig(t)

	deck := e.World.Entry(e.World.Create(components.Deck))
	components.Deck.SetValue(deck, *r.deck)
	pb := e.World.Entry(e.World.Create(components.Playback))
	r.pb.Titles[0].Name = "Cow"
	components.Playback.SetValue(pb, *r.pb)

	ShowTransport(e, TransportInsert)
	o := getOrCreateOSD(e)
	if o.Text != "INSERT Cow" {
		t.Fatalf("OSD = %q, want %q", o.Text, "INSERT Cow")
	}

	ShowTransport(e, TransportEject)
	if o.Text != "EJECT" {
		t.Fatalf("OSD = %q, want EJECT", o.Text)
	}
}
