package game

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Menu is an ebitenui screen with a title line, a status line and one button.
type Menu struct {
	UI *ebitenui.UI

	title, button string
	width, height int
	onClick       func()
}

// NewMenu builds a centered panel. onClick runs when the button is pressed.
func NewMenu(title, button string, width, height int, onClick func()) *Menu {
	m := &Menu{title: title, button: button, width: width, height: height, onClick: onClick}
	m.UI = m.build("")
	return m
}

// SetStatus rebuilds the screen with a new status line.
func (m *Menu) SetStatus(text string) {
	m.UI = m.build(text)
}

func (m *Menu) build(statusText string) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text(m.title, &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	status := widget.NewText(
		widget.TextOpts.Text(statusText, &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text(m.button, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			m.onClick()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(m.width/2, m.height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(status)
	panel.AddChild(btn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// Menus holds the title and death screens.
type Menus struct {
	Title *Menu
	Death *Menu
}

// NewMenus builds both screens. Their buttons fire phase events on g.
func NewMenus(g *Game, width, height int) *Menus {
	m := &Menus{
		Title: NewMenu("towerclimb", "Start", width, height, func() { g.Fire(EventStart) }),
		Death: NewMenu("You gave up", "Restart", width, height, func() { g.Fire(EventRestart) }),
	}
	m.Title.SetStatus("Press Enter or click Start")
	return m
}

// For returns the menu shown during p, or nil while the game runs.
func (m *Menus) For(p Phase) *Menu {
	switch p {
	case TitleScreen:
		return m.Title
	case DeathScreen:
		return m.Death
	}
	return nil
}

func deathStatus(score float32, level float32) string {
	return fmt.Sprintf("Score %.0f, level %.0f. Press Enter to restart", score, level)
}
