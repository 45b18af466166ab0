package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/vitoleone27/vhsplayer3d/components"
	cfg "github.com/vitoleone27/vhsplayer3d/config"
	"github.com/vitoleone27/vhsplayer3d/systems"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI holds the title menu and volume panel drawn beside the player
type ControlsUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	panel        *widget.Container
	titleButtons []*widget.Button
	volumeLabel  *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewControlsUI builds the panel for the titles held by the scene's playback entity.
func NewControlsUI(e *ecs.ECS) *ControlsUI {
	cui := &ControlsUI{ecs: e}

	cui.loadFonts()
	cui.buildUI()

	return cui
}

func (cui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Controls.FontSize,
	}
	cui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Controls.SmallFontSize,
	}
}

func (cui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Panel in the top-right corner, clear of the deck
	cui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Controls.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	cui.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TITLES", &cui.normalFace, &widget.LabelColor{
			Idle: cfg.Controls.AccentColor,
		}),
	))

	for i, name := range cui.titles() {
		idx := i // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(150, 24),
			),
			widget.ButtonOpts.Image(cui.buttonImage()),
			widget.ButtonOpts.Text(name, &cui.smallFace, &widget.ButtonTextColor{
				Idle:     cfg.Controls.TextColor,
				Hover:    cfg.Controls.AccentColor,
				Pressed:  color.RGBA{200, 200, 200, 255},
				Disabled: cfg.Controls.DisabledColor,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				cui.selectTitle(idx)
			}),
		)
		cui.titleButtons = append(cui.titleButtons, button)
		cui.panel.AddChild(button)
	}

	cui.panel.AddChild(cui.buildVolumeRow())

	rootContainer.AddChild(cui.panel)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) buildVolumeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	step := func(label string, delta float64) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(28, 24),
			),
			widget.ButtonOpts.Image(cui.buttonImage()),
			widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.Controls.TextColor,
				Hover:   cfg.Controls.AccentColor,
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				cui.stepVolume(delta)
			}),
		)
	}

	row.AddChild(step("-", -cfg.Controls.VolumeStep))
	cui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(volumeText(cfg.Audio.DefaultVolume), &cui.smallFace, &widget.LabelColor{
			Idle: cfg.Controls.TextColor,
		}),
	)
	row.AddChild(cui.volumeLabel)
	row.AddChild(step("+", cfg.Controls.VolumeStep))

	return row
}

func (cui *ControlsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (cui *ControlsUI) playback() *components.PlaybackData {
	entry, ok := components.Playback.First(cui.ecs.World)
	if !ok {
		return nil
	}
	return components.Playback.Get(entry)
}

func (cui *ControlsUI) deck() *components.DeckData {
	entry, ok := components.Deck.First(cui.ecs.World)
	if !ok {
		return nil
	}
	return components.Deck.Get(entry)
}

func (cui *ControlsUI) titles() []string {
	pb := cui.playback()
	if pb == nil {
		return nil
	}
	names := make([]string, len(pb.Titles))
	for i, t := range pb.Titles {
		names[i] = t.Name
	}
	return names
}

func (cui *ControlsUI) selectTitle(index int) {
	d, pb := cui.deck(), cui.playback()
	if d == nil || pb == nil {
		return
	}
	if systems.SelectTitle(d, pb, index) {
		systems.ShowOSD(cui.ecs, pb.Titles[index].Name)
	}
	cui.UpdateUI()
}

func (cui *ControlsUI) stepVolume(delta float64) {
	pb := cui.playback()
	if pb == nil {
		return
	}
	systems.SetVolume(cui.ecs, pb.Player.Volume()+delta)
	cui.UpdateUI()
}

// Update runs the widget tree and syncs it with the deck state.
func (cui *ControlsUI) Update() {
	cui.UI.Update()
	cui.UpdateUI()
}

// Draw renders the panel on top of the scene.
func (cui *ControlsUI) Draw(screen *ebiten.Image) {
	cui.UI.Draw(screen)
}

// UpdateUI updates all UI elements to reflect current deck state
func (cui *ControlsUI) UpdateUI() {
	d, pb := cui.deck(), cui.playback()
	if d == nil || pb == nil {
		return
	}

	disabled := systems.MenuDisabled(d)
	for i, button := range cui.titleButtons {
		// Check for nil to handle widgets not laid out yet
		if textWidget := button.Text(); textWidget != nil && i < len(pb.Titles) {
			label := pb.Titles[i].Name
			if i == d.Selected {
				label = "> " + label
			}
			textWidget.Label = label
		}
		button.GetWidget().Disabled = disabled
	}

	if cui.volumeLabel != nil {
		cui.volumeLabel.Label = volumeText(pb.Player.Volume())
	}
}

// Contains reports whether a screen point falls on the panel, so the deck can
// leave that click to the UI.
func (cui *ControlsUI) Contains(x, y int) bool {
	if cui.panel == nil {
		return false
	}
	r := cui.panel.GetWidget().Rect
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func volumeText(v float64) string {
	return fmt.Sprintf("VOL %3d%%", int(v*100+0.5))
}
