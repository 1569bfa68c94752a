package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/cavewing/components"
	"github.com/automoto/cavewing/config"
	"github.com/automoto/cavewing/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	menuBackground = color.RGBA{20, 20, 30, 255}
	menuTitle      = config.White
	menuMessage    = color.RGBA{255, 100, 100, 255}
	menuHint       = color.RGBA{160, 160, 170, 255}
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// Callbacks
	OnFly  func()
	OnQuit func()

	layoutButton *widget.Button
	messageLabel *widget.Label
	hintLabel    *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu with ebitenui
func NewMenuUI(menu *components.MenuData, onFly, onQuit func()) (*MenuUI, error) {
	mui := &MenuUI{
		Menu:   menu,
		OnFly:  onFly,
		OnQuit: onQuit,
	}
	if err := mui.loadFonts(); err != nil {
		return nil, err
	}
	mui.buildUI()
	return mui, nil
}

func (mui *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load menu font: %w", err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(menuBackground)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CAVEWING", &mui.titleFace, &widget.LabelColor{
			Idle: menuTitle,
		}),
	))

	mui.messageLabel = widget.NewLabel(
		widget.LabelOpts.Text(mui.Menu.Message, &mui.smallFace, &widget.LabelColor{
			Idle: menuMessage,
		}),
	)
	contentContainer.AddChild(mui.messageLabel)

	contentContainer.AddChild(mui.button("Fly", func() {
		mui.OnFly()
	}))

	mui.layoutButton = mui.button(mui.layoutText(), func() {
		systems.CycleLayout(mui.Menu)
		mui.UpdateUI()
	})
	contentContainer.AddChild(mui.layoutButton)

	contentContainer.AddChild(mui.button("Quit", func() {
		mui.OnQuit()
	}))

	mui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text(systems.ControlsHint(mui.Menu.Device), &mui.smallFace, &widget.LabelColor{
			Idle: menuHint,
		}),
	)
	contentContainer.AddChild(mui.hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 32),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (mui *MenuUI) layoutText() string {
	return "Map: " + systems.LayoutLabel(mui.Menu.Layout())
}

// UpdateUI refreshes labels from the menu state.
func (mui *MenuUI) UpdateUI() {
	if textWidget := mui.layoutButton.Text(); textWidget != nil {
		textWidget.Label = mui.layoutText()
	}
	mui.messageLabel.Label = mui.Menu.Message
	mui.hintLabel.Label = systems.ControlsHint(mui.Menu.Device)
}

// Update refreshes the labels and runs the UI.
func (mui *MenuUI) Update() {
	mui.UpdateUI()
	mui.UI.Update()
}
