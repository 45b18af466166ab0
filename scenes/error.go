package scenes

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/fonts"
)

// ErrorScene reports a start-up failure. R retries the load.
type ErrorScene struct {
	sceneChanger SceneChanger
	lines        []string
}

// NewErrorScene creates a scene showing err
func NewErrorScene(sc SceneChanger, err error) *ErrorScene {
	return &ErrorScene{
		sceneChanger: sc,
		lines:        wrap(err.Error(), 70),
	}
}

func (es *ErrorScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		es.sceneChanger.ChangeScene(NewLoadingScene(es.sceneChanger))
	}
}

func (es *ErrorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Loading.BackgroundColor)

	x, y := 40, cfg.C.Height/3
	text.Draw(screen, cfg.Loading.ErrorTitle, fonts.HUDLarge.Get(), x, y, cfg.Loading.ErrorColor)
	y += 36
	face := fonts.HUD.Get()
	for _, l := range es.lines {
		text.Draw(screen, l, face, x, y, cfg.Loading.TextColor)
		y += 18
	}
	text.Draw(screen, "Press R to retry", face, x, y+18, cfg.Grey)
}

// wrap breaks s into lines of at most width bytes at spaces.
func wrap(s string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
