package systems

import (
	"log/slog"

	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/media"
	"github.com/yohamta/donburi/ecs"
)

// Transport is the user-visible action a click or key resulted in.
type Transport int

const (
	TransportNone Transport = iota
	TransportInsert
	TransportPlay
	TransportPause
	TransportEject
)

func (t Transport) String() string {
	switch t {
	case TransportInsert:
		return "INSERT"
	case TransportPlay:
		return "PLAY"
	case TransportPause:
		return "PAUSE"
	case TransportEject:
		return "EJECT"
	default:
		return ""
	}
}

// HandleClick applies a classified click. It only raises request flags and
// drives the player; the transforms move in StepDeck.
func HandleClick(d *components.DeckData, pb *components.PlaybackData, a *components.AudioData, region cfg.Region) Transport {
	if d.TapeInserted {
		// Transport buttons are dead until the tape is back out
		if d.Ejecting {
			return TransportNone
		}
		switch region {
		case cfg.RegionEject:
			d.Ejecting = true
			d.Clicked = true
			SaveProgress(d, pb, a)
			queueCue(a, cfg.SoundTape)
			return TransportEject
		case cfg.RegionPlay:
			pb.Player.Seek(d.Progress[currentTitleID(d, pb)])
			pb.Player.Play()
			queueCue(a, cfg.SoundClick)
			return TransportPlay
		case cfg.RegionPause:
			SaveProgress(d, pb, a)
			return TransportPause
		}
		return TransportNone
	}

	switch region {
	case cfg.RegionTape:
		if d.Clicked {
			return TransportNone
		}
		d.Clicked = true
		return TransportInsert
	case cfg.RegionEject, cfg.RegionPlay, cfg.RegionPause:
		queueCue(a, cfg.SoundClick)
	}
	return TransportNone
}

// SaveProgress stores the player position for the selected title and pauses.
func SaveProgress(d *components.DeckData, pb *components.PlaybackData, a *components.AudioData) {
	d.Progress[currentTitleID(d, pb)] = pb.Player.CurrentTime()
	pb.Player.Pause()
	queueCue(a, cfg.SoundClick)
}

// AdvanceObject runs one frame of the animation for a single object.
// Objects must be advanced in index order.
func AdvanceObject(d *components.DeckData, p media.Player, a *components.AudioData, index int) {
	switch index {
	case cfg.ObjectCover:
		if !d.TapeInserted && d.Clicked {
			d.RemovingCover = true
			moveCover(d, true)
		} else if !d.TapeInserted && !d.Ejecting {
			d.RemovingCover = true
			moveCover(d, false)
		}
	case cfg.ObjectTape:
		if d.Clicked && !d.RemovingCover {
			moveTape(d, a, !d.TapeInserted)
		}
	}

	// Idle screen opacity carries over when neither rule matches
	idle := &d.Objects[cfg.ObjectIdleScreen]
	if (!d.TapeInserted && index == cfg.ObjectIdleScreen) || d.Ejecting {
		idle.Opacity = 1
	} else if d.TapeInserted && index == cfg.ObjectIdleScreen && p.Paused() {
		idle.Opacity = 0
	}
}

// StepDeck advances every object one frame and recomputes the phase.
func StepDeck(d *components.DeckData, p media.Player, a *components.AudioData) {
	for i := 0; i < cfg.ObjectCount; i++ {
		AdvanceObject(d, p, a, i)
	}
	d.Phase = currentPhase(d)
}

// MenuDisabled reports whether the title menu must ignore input.
func MenuDisabled(d *components.DeckData) bool {
	return d.Clicked || d.TapeInserted || d.RemovingCover
}

// SelectTitle makes the title at index current: its cover art goes on the
// tape and the player loads it at the saved position. It is a no-op while a
// tape is inserted.
func SelectTitle(d *components.DeckData, pb *components.PlaybackData, index int) bool {
	if d.TapeInserted || index < 0 || index >= len(pb.Titles) {
		return false
	}
	t := pb.Titles[index]
	d.Selected = index
	if slot, ok := pb.Covers[t.ID]; ok {
		d.Slots[cfg.ObjectCover] = slot
	}
	pb.Player.SetSource(t.Source())
	pb.Player.Seek(d.Progress[t.ID])
	slog.Debug("title selected", "title", t.ID, "resume", d.Progress[t.ID])
	return true
}

func currentPhase(d *components.DeckData) cfg.Phase {
	switch {
	case d.Clicked && d.TapeInserted:
		return cfg.PhaseTapeEjecting
	case d.Clicked && d.RemovingCover:
		return cfg.PhaseCoverOpening
	case d.Clicked:
		return cfg.PhaseTapeInserting
	case d.RemovingCover:
		return cfg.PhaseCoverClosing
	default:
		return cfg.PhaseIdle
	}
}

func currentTitleID(d *components.DeckData, pb *components.PlaybackData) string {
	if d.Selected < 0 || d.Selected >= len(pb.Titles) {
		return ""
	}
	return pb.Titles[d.Selected].ID
}

// moveCover slides the cover one step off (removing) or back onto the tape.
// The cover gate clears on the first frame the cover is found at its bound.
func moveCover(d *components.DeckData, removing bool) {
	x := &d.Objects[cfg.ObjectCover].Translation[0]
	if removing {
		if *x > cfg.Deck.CoverOpenX {
			*x = max(*x-cfg.Deck.CoverStep, cfg.Deck.CoverOpenX)
			return
		}
	} else if *x < cfg.Deck.CoverClosedX {
		*x = min(*x+cfg.Deck.CoverStep, cfg.Deck.CoverClosedX)
		return
	}
	d.RemovingCover = false
}

// moveTape runs one frame of the insert or eject sequence. Inserting stands the
// tape up then pushes it into the slot; ejecting does the reverse.
func moveTape(d *components.DeckData, a *components.AudioData, inserting bool) {
	tape := &d.Objects[cfg.ObjectTape]
	rotX := &tape.Rotation[0]
	z := &tape.Translation[2]
	step := cfg.Deck.TapeStep

	if inserting {
		switch {
		case *rotX < cfg.Deck.TapeInsertedRotX:
			*rotX = min(*rotX+step, cfg.Deck.TapeInsertedRotX)
		case *z < cfg.Deck.TapeInsertedZ:
			*z = min(*z+step, cfg.Deck.TapeInsertedZ)
			queueCue(a, cfg.SoundTape)
		default:
			d.TapeInserted = true
			d.RemovingCover = false
			d.Clicked = false
			d.Ejecting = false
			slog.Info("tape inserted")
		}
		return
	}

	switch {
	case *z > cfg.Deck.TapeOutsideZ:
		*z = max(*z-step, cfg.Deck.TapeOutsideZ)
	case *rotX > cfg.Deck.TapeOutsideRotX:
		*rotX = max(*rotX-step, cfg.Deck.TapeOutsideRotX)
	default:
		d.TapeInserted = false
		d.RemovingCover = true
		d.Clicked = false
		d.Ejecting = false
		slog.Info("tape ejected")
	}
}

func queueCue(a *components.AudioData, id cfg.SoundID) {
	if a == nil {
		return
	}
	a.PendingCues = append(a.PendingCues, id)
}

// NewUpdateDeck returns the system that feeds clicks and transport keys to
// the deck and advances the animation. onTransport may be nil.
func NewUpdateDeck(onTransport func(e *ecs.ECS, t Transport)) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		deckEntry, ok := components.Deck.First(e.World)
		if !ok {
			return
		}
		pbEntry, ok := components.Playback.First(e.World)
		if !ok {
			return
		}
		d := components.Deck.Get(deckEntry)
		pb := components.Playback.Get(pbEntry)
		a := GetOrCreateAudio(e)
		input := getOrCreateInput(e)

		var transports []Transport
		if input.Clicked {
			region := ClassifyClick(input.ClickX, input.ClickY, cfg.C.Width, cfg.C.Height)
			if region != cfg.RegionNone {
				slog.Debug("click", "region", region.String(), "x", input.ClickX, "y", input.ClickY)
			}
			transports = append(transports, HandleClick(d, pb, a, region))
		}
		if GetAction(input, cfg.ActionTape).JustPressed {
			transports = append(transports, HandleClick(d, pb, a, cfg.RegionTape))
		}
		if GetAction(input, cfg.ActionPlayPause).JustPressed {
			region := cfg.RegionPause
			if pb.Player.Paused() {
				region = cfg.RegionPlay
			}
			transports = append(transports, HandleClick(d, pb, a, region))
		}
		if GetAction(input, cfg.ActionEject).JustPressed {
			transports = append(transports, HandleClick(d, pb, a, cfg.RegionEject))
		}

		prev := d.Phase
		StepDeck(d, pb.Player, a)
		if d.Phase != prev {
			slog.Debug("phase", "from", prev.String(), "to", d.Phase.String())
		}

		if onTransport == nil {
			return
		}
		for _, t := range transports {
			if t != TransportNone {
				onTransport(e, t)
			}
		}
	}
}
