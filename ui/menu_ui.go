package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/zshdevopscatftw/moondust/config"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStartEngine func()
	OnLevelEditor func()
	OnQuit        func()

	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI creates the main menu with its three option buttons
func NewMenuUI(onStartEngine, onLevelEditor, onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnStartEngine: onStartEngine,
		OnLevelEditor: onLevelEditor,
		OnQuit:        onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   48,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		),
	)
	contentContainer.AddChild(title)

	contentContainer.AddChild(mui.menuButton("Start Engine", func() {
		if mui.OnStartEngine != nil {
			mui.OnStartEngine()
		}
	}))
	contentContainer.AddChild(mui.menuButton("Level Editor", func() {
		if mui.OnLevelEditor != nil {
			mui.OnLevelEditor()
		}
	}))
	contentContainer.AddChild(mui.menuButton("Quit", func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{Container: rootContainer}
}

func (mui *MenuUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 50),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle: cfg.Menu.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Menu.ButtonIdle)
	hover := image.NewNineSliceColor(cfg.Menu.ButtonHover)
	pressed := image.NewNineSliceColor(cfg.Menu.ButtonPressed)
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update processes UI events for the current frame
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
