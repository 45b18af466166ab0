package components

import "github.com/yohamta/donburi"

type DebugData struct {
	Visible bool
}

var Debug = donburi.NewComponentType[DebugData]()
