package systems

import (
	"context"
	"log/slog"
	"time"

	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi/ecs"
)

// IdleCycler ticks on wall-clock time, independent of the frame rate. Ticks
// are only posted; the game loop applies them, so deck state stays
// single-owner.
type IdleCycler struct {
	ticks  chan struct{}
	cancel context.CancelFunc
}

// StartIdleCycler starts ticking every interval until ctx ends or Stop is called.
func StartIdleCycler(ctx context.Context, interval time.Duration) *IdleCycler {
	ctx, cancel := context.WithCancel(ctx)
	c := &IdleCycler{
		ticks:  make(chan struct{}, 1),
		cancel: cancel,
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				// A tick the loop has not drained yet absorbs this one
				select {
				case c.ticks <- struct{}{}:
				default:
				}
			}
		}
	}()

	return c
}

// Stop ends the ticker goroutine.
func (c *IdleCycler) Stop() {
	c.cancel()
}

// Ticked reports whether a tick arrived since the last call.
func (c *IdleCycler) Ticked() bool {
	select {
	case <-c.ticks:
		return true
	default:
		return false
	}
}

// AdvanceIdleFrame moves the idle screen to its next frame, wrapping after the last.
func AdvanceIdleFrame(d *components.DeckData) {
	d.IdleFrame++
	if d.IdleFrame > cfg.TextureIdleLast {
		d.IdleFrame = cfg.TextureIdleFirst
	}
	d.Slots[cfg.ObjectIdleScreen] = d.IdleFrame
}

// NewUpdateIdleCycle returns the system that applies the cycler's ticks.
func NewUpdateIdleCycle(c *IdleCycler) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		if !c.Ticked() {
			return
		}
		entry, ok := components.Deck.First(e.World)
		if !ok {
			return
		}
		d := components.Deck.Get(entry)
		AdvanceIdleFrame(d)
		slog.Debug("idle frame", "texture", d.IdleFrame)
	}
}
