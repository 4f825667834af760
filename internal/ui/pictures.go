package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/catalog"
	"github.com/colorandlearn/color-and-learn/internal/model"
)

// pictureScreen is the Color tab: a category picker over a grid of pages
type pictureScreen struct {
	ui         *RootUI
	categoryID string
	titles     map[string]string
	selector   *widget.Select
	tally      *widget.Label
	grid       *fyne.Container
	cards      map[string]*widget.Button
	view       fyne.CanvasObject
}

func newPictureScreen(ui *RootUI) *pictureScreen {
	s := &pictureScreen{
		ui:     ui,
		titles: make(map[string]string),
		cards:  make(map[string]*widget.Button),
	}

	var options []string
	for _, category := range ui.catalog.Categories() {
		label := category.Icon + " " + category.Title
		s.titles[label] = category.ID
		options = append(options, label)
	}
	s.selector = widget.NewSelect(options, func(label string) {
		if id, ok := s.titles[label]; ok && id != s.categoryID {
			if err := ui.Navigate(CategoryPath(id)); err != nil {
				ui.showInfo(KeyPickErrorTitle, err.Error())
			}
		}
	})

	s.tally = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	s.grid = container.NewGridWithColumns(ui.mobile.CardColumns())
	s.view = container.NewBorder(
		container.NewVBox(
			heading(ui.localization.GetText(KeyChoosePicture), theme.SizeNameSubHeadingText),
			s.selector,
			s.tally,
		),
		nil, nil, nil,
		container.NewVScroll(s.grid),
	)
	return s
}

// ShowCategory fills the grid with the pages of categoryID. An empty id
// selects the default category; an unknown id shows an empty grid.
func (s *pictureScreen) ShowCategory(categoryID string) {
	if categoryID == "" {
		categoryID = catalog.DefaultCategory
	}
	s.categoryID = categoryID

	for label, id := range s.titles {
		if id == categoryID {
			s.selector.SetSelected(label)
		}
	}
	if category, ok := s.ui.catalog.Category(categoryID); ok {
		s.tally.SetText(s.ui.localization.Format(KeyCategoryTally,
			len(category.UnlockedPages()), len(category.Pages), len(category.CompletedPages())))
	} else {
		s.selector.ClearSelected()
		s.tally.SetText("")
	}

	s.cards = make(map[string]*widget.Button)
	s.grid.Objects = nil
	for _, page := range s.ui.catalog.Pages(categoryID) {
		s.grid.Add(s.pageCard(page))
	}
	s.grid.Refresh()
}

// pageCard is a tappable card for one page. Cards that cannot be played are disabled.
func (s *pictureScreen) pageCard(page *model.ColoringPage) fyne.CanvasObject {
	l := s.ui.localization
	pageID, categoryID := page.ID, s.categoryID

	btn := widget.NewButton("", func() {
		if err := s.ui.Navigate(PagePath(pageID, categoryID)); err != nil {
			s.ui.debugf("Page %s not opened: %v", pageID, err)
		}
	})
	s.cards[pageID] = btn

	title := widget.NewLabelWithStyle(s.ui.catalog.PageTitle(page.ID), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord

	var status *widget.Label
	if !page.IsPlayable() {
		btn.Disable()
		status = widget.NewLabelWithStyle(IconLock+" "+l.GetText(KeyUnlockHint), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
		status.Wrapping = fyne.TextWrapWord
	} else {
		status = widget.NewLabelWithStyle(starsText(page.PriorStars()), fyne.TextAlignCenter, fyne.TextStyle{})
	}

	meta := widget.NewLabelWithStyle(
		fmt.Sprintf("%s%s%d %s", page.Difficulty, MiddleDotSeparator, page.NumberedAreas, l.GetText(KeyAreas)),
		fyne.TextAlignCenter, fyne.TextStyle{})

	return container.NewStack(btn, container.NewPadded(container.NewVBox(title, status, meta)))
}
