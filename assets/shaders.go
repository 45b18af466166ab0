package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// ScanlineShader darkens alternate rows and rolls a tracking band over the tape picture
	ScanlineShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/scanline.kage")
	if err != nil {
		return err
	}
	ScanlineShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}
