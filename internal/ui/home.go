package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

// homeScreen lists categories and the app's features
type homeScreen struct {
	ui    *RootUI
	cards map[string]*widget.Button
	view  fyne.CanvasObject
}

func newHomeScreen(ui *RootUI) *homeScreen {
	s := &homeScreen{ui: ui, cards: make(map[string]*widget.Button)}
	l := ui.localization

	header := container.NewVBox(
		heading(IconPalette+" "+l.GetText(KeyAppTitle), theme.SizeNameHeadingText),
		widget.NewLabelWithStyle(l.GetText(KeyWelcome), fyne.TextAlignCenter, fyne.TextStyle{}),
	)
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSquareSize(64))
		img.FillMode = canvas.ImageFillContain
		header.Objects = append([]fyne.CanvasObject{img}, header.Objects...)
	}

	cards := container.NewVBox()
	for _, category := range ui.catalog.Categories() {
		cards.Add(s.categoryCard(category))
	}

	features := ui.mobile.CreateAdaptiveContainer(2,
		widget.NewLabel(l.GetText(KeyFeatureNumbers)),
		widget.NewLabel(l.GetText(KeyFeaturePens)),
		widget.NewLabel(l.GetText(KeyFeatureSounds)),
		widget.NewLabel(l.GetText(KeyFeatureRewards)),
	)

	s.view = container.NewVScroll(container.NewVBox(
		header,
		heading(l.GetText(KeyChooseAdventure), theme.SizeNameSubHeadingText),
		cards,
		widget.NewSeparator(),
		features,
	))
	return s
}

// categoryCard is a tappable card opening the category's picture list
func (s *homeScreen) categoryCard(category *model.Category) fyne.CanvasObject {
	categoryID := category.ID
	btn := widget.NewButton("", func() {
		if err := s.ui.Navigate(CategoryPath(categoryID)); err != nil {
			s.ui.showInfo(KeyPickErrorTitle, err.Error())
		}
	})
	s.cards[categoryID] = btn

	title := widget.NewLabelWithStyle(category.Icon+" "+category.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	description := widget.NewLabel(category.Description)
	description.Wrapping = fyne.TextWrapWord
	meta := widget.NewLabel(fmt.Sprintf("%d %s%s%d %s",
		category.Count, s.ui.localization.GetText(KeyPictures), MiddleDotSeparator, category.Stars, IconStar))

	return container.NewStack(btn, container.NewPadded(container.NewVBox(title, description, meta)))
}

// heading returns a centered bold label at the given text size
func heading(text string, size fyne.ThemeSizeName) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	label.SizeName = size
	return label
}

// starsText renders a 0..MaxStars rating as filled and empty stars
func starsText(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > model.MaxStars {
		stars = model.MaxStars
	}
	return strings.Repeat(IconStar, stars) + strings.Repeat(IconNoStar, model.MaxStars-stars)
}
