package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// blankFill is the color of an area nobody has colored yet
var blankFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// areaCell is a tappable rounded square. It renders numbered areas on the
// coloring canvas and swatches in the palette.
type areaCell struct {
	widget.BaseWidget

	text     string
	fill     color.Color
	selected bool
	side     float32
	onTapped func()
}

func newAreaCell(text string, fill color.Color, side float32, onTapped func()) *areaCell {
	c := &areaCell{text: text, fill: fill, side: side, onTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// SetFill changes the background color
func (c *areaCell) SetFill(fill color.Color) {
	c.fill = fill
	c.Refresh()
}

// SetSelected toggles the highlight border
func (c *areaCell) SetSelected(selected bool) {
	if c.selected == selected {
		return
	}
	c.selected = selected
	c.Refresh()
}

// Tapped implements fyne.Tappable
func (c *areaCell) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

// CreateRenderer implements fyne.Widget
func (c *areaCell) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(c.fill)
	bg.CornerRadius = kidsSize(SizeNameAreaRadius, AreaCornerRadius)

	label := canvas.NewText(c.text, theme.Color(theme.ColorNameForeground))
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	r := &areaCellRenderer{cell: c, bg: bg, label: label}
	r.Refresh()
	return r
}

type areaCellRenderer struct {
	cell  *areaCell
	bg    *canvas.Rectangle
	label *canvas.Text
}

func (r *areaCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	textSize := r.label.MinSize()
	r.label.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
	r.label.Resize(fyne.NewSize(size.Width, textSize.Height))
}

func (r *areaCellRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(r.cell.side)
}

func (r *areaCellRenderer) Refresh() {
	r.bg.FillColor = r.cell.fill
	r.bg.StrokeColor = theme.Color(theme.ColorNamePrimary)
	r.bg.StrokeWidth = 0
	if r.cell.selected {
		r.bg.StrokeWidth = SelectedStroke
	}
	r.bg.Refresh()

	r.label.Text = r.cell.text
	r.label.Color = theme.Color(theme.ColorNameForeground)
	r.label.Refresh()
}

func (r *areaCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.label}
}

func (r *areaCellRenderer) Destroy() {}
