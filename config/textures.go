package config

// Texture set, in load order. Objects draw DeckData.Slots[i] from this list.
var TextureNames = []string{
	"idle1.png", "VHSbar.png", "cowVHS.png", "VHS.png",
	"idle1.png", "idle2.png", "idle3.png",
	"cowVHS.png", "natureVHS.png", "fightVHS.png",
}

const (
	// Idle screen frames cycle through TextureIdleFirst..TextureIdleLast
	TextureIdleFirst = 4
	TextureIdleLast  = 6
)

// Cover art for the catalog titles starts here
const TextureCoverFirst = 7
