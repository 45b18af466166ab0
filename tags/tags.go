package tags

import "github.com/yohamta/donburi"

var (
	IdleScreen = donburi.NewTag().SetName("IdleScreen")
	Housing    = donburi.NewTag().SetName("Housing")
	Cover      = donburi.NewTag().SetName("Cover")
	Tape       = donburi.NewTag().SetName("Tape")
)

// ForObject returns the role tag for a deck object index.
func ForObject(index int) *donburi.ComponentType[donburi.Tag] {
	switch index {
	case 0:
		return IdleScreen
	case 1:
		return Housing
	case 2:
		return Cover
	default:
		return Tape
	}
}
