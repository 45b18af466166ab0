package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// NewUpdateInput returns the system that polls keys, gamepads and the mouse.
// Clicks for which captured returns true belong to the UI and are dropped.
// Must run BEFORE UpdateDeck in the system order.
func NewUpdateInput(captured func(x, y int) bool) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		input.Clicked = false

		gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

		// Poll all actions - only set Pressed state
		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}

			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				for _, btn := range binding.StandardGamepadButtons {
					if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[actionID] = true
					}
				}
			}
		}

		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if captured == nil || !captured(x, y) {
				input.Clicked = true
				input.ClickX, input.ClickY = x, y
			}
		}
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			if captured == nil || !captured(x, y) {
				input.Clicked = true
				input.ClickX, input.ClickY = x, y
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
