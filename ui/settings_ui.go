package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// settingRow is one clickable setting: a label and how to change it.
type settingRow struct {
	title  string
	change func(s *components.SettingsData)
	value  func(s *components.SettingsData) string
	button *widget.Button
}

// SettingsUI is the ebitenui overlay toggled with Escape/P.
type SettingsUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	rows []*settingRow

	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI builds the overlay for the scene's settings.
func NewSettingsUI(e *ecs.ECS) *SettingsUI {
	sui := &SettingsUI{ecs: e}
	sui.rows = []*settingRow{
		{
			title:  "Attack",
			change: systems.CycleAttackMode,
			value:  func(s *components.SettingsData) string { return s.Controller.AttackMode.String() },
		},
		{
			title:  "Mirror",
			change: systems.ToggleMirrorLeft,
			value:  systems.MirrorLabel,
		},
		{
			title:  "Resume last",
			change: systems.ToggleResumeLast,
			value:  func(s *components.SettingsData) string { return systems.OnOff(s.Controller.ResumeLast) },
		},
		{
			title:  "Input",
			change: systems.CycleInputMode,
			value:  func(s *components.SettingsData) string { return s.InputMode.String() },
		},
		{
			title:  "Fullscreen",
			change: systems.ToggleFullscreen,
			value:  func(s *components.SettingsData) string { return systems.OnOff(s.Fullscreen) },
		},
		{
			title:  "Debug HUD",
			change: systems.ToggleDebug,
			value:  func(s *components.SettingsData) string { return systems.OnOff(s.Debug) },
		},
	}

	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 140})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	settings := systems.GetOrCreateSettings(sui.ecs)
	for _, row := range sui.rows {
		contentContainer.AddChild(sui.buildRow(row, settings))
	}

	contentContainer.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 32)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.GetOrCreateSettings(sui.ecs).IsOpen = false
		}),
	))

	rootContainer.AddChild(contentContainer)
	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) buildRow(row *settingRow, settings *components.SettingsData) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(row.title, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	r := row
	row.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(row.value(settings), &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Change(r)
		}),
	)
	container.AddChild(row.button)
	return container
}

// Change applies one row's change to the live scene and refreshes labels.
func (sui *SettingsUI) Change(row *settingRow) {
	row.change(systems.GetOrCreateSettings(sui.ecs))
	systems.ApplySettings(sui.ecs)
	sui.UpdateUI()
}

// UpdateUI refreshes every button label from the current settings.
func (sui *SettingsUI) UpdateUI() {
	settings := systems.GetOrCreateSettings(sui.ecs)
	for _, row := range sui.rows {
		if row.button == nil {
			continue
		}
		if textWidget := row.button.Text(); textWidget != nil {
			textWidget.Label = row.value(settings)
		}
	}
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (sui *SettingsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}
