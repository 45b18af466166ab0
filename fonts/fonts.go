package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	OSD      FontName = "osd"       // Monospaced on-screen display
	Timecode FontName = "timecode"  // Counter burnt into the tape picture
	HUD      FontName = "hud"       // Debug overlay and status text
	HUDLarge FontName = "hud-large" // Loading and error screen titles
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads every face the player draws with from the Go fonts.
func LoadDefaults(osdSize float64) error {
	if err := LoadFontWithSize(OSD, gomono.TTF, osdSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Timecode, gomono.TTF, 12); err != nil {
		return err
	}
	if err := LoadFontWithSize(HUD, goregular.TTF, 12); err != nil {
		return err
	}
	return LoadFontWithSize(HUDLarge, goregular.TTF, 24)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
