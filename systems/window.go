package systems

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWindow toggles fullscreen on its key.
func UpdateWindow(e *ecs.ECS) {
	if !GetAction(getOrCreateInput(e), cfg.ActionFullscreen).JustPressed {
		return
	}
	full := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(full)
	slog.Debug("fullscreen", "on", full)
}
