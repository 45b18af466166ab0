package factory

import (
	"testing"

	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateDeck(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	deck := CreateDeck(e)

	d := components.Deck.Get(deck)
	if d.Phase != cfg.PhaseIdle || d.TapeInserted || d.Clicked {
		t.Fatalf("deck not at rest: %+v", d)
	}
	if d.Objects[cfg.ObjectTape].Rotation[0] != -1.6 {
		t.Fatalf("tape rot.x = %v, want -1.6", d.Objects[cfg.ObjectTape].Rotation[0])
	}

	seen := map[int]bool{}
	components.Renderable.Each(e.World, func(entry *donburi.Entry) {
		r := components.Renderable.Get(entry)
		if seen[r.Index] {
			t.Fatalf("duplicate renderable %d", r.Index)
		}
		seen[r.Index] = true
		if !entry.HasComponent(tags.ForObject(r.Index)) {
			t.Errorf("renderable %d (%s) missing its role tag", r.Index, r.Name)
		}
	})
	if len(seen) != cfg.ObjectCount {
		t.Fatalf("got %d renderables, want %d", len(seen), cfg.ObjectCount)
	}

	if _, ok := tags.Tape.First(e.World); !ok {
		t.Fatalf("no tape entity")
	}
}
