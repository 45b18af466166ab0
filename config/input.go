package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical player action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTape
	ActionPlayPause
	ActionEject
	ActionVolumeUp
	ActionVolumeDown
	ActionNextTitle
	ActionFullscreen
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionTape: {
				Keys: []ebiten.Key{ebiten.KeyT, ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPlayPause: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyP},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionEject: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionVolumeUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyEqual},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionVolumeDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyMinus},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionNextTitle: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
