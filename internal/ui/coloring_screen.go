package ui

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/coloring"
	"github.com/colorandlearn/color-and-learn/internal/model"
)

// coloringScreen shows one page: numbered areas, palette and pens
type coloringScreen struct {
	ui      *RootUI
	session *coloring.Session

	areas     []*areaCell
	swatches  map[coloring.Color]*areaCell
	pens      map[int]*widget.Button
	progress  *widget.ProgressBar
	starsText *widget.Label
	musicBtn  *widget.Button
	musicOn   bool

	view fyne.CanvasObject
}

func newColoringScreen(ui *RootUI, page *model.ColoringPage) *coloringScreen {
	s := &coloringScreen{
		ui:       ui,
		session:  coloring.NewSession(page),
		swatches: make(map[coloring.Color]*areaCell),
		pens:     make(map[int]*widget.Button),
		musicOn:  ui.settings.GetMusicEnabled(),
	}
	if err := s.session.SelectPenSize(ui.settings.GetDefaultPenSize()); err != nil {
		log.Printf("Keeping default pen: %v", err)
	}
	s.session.SetNoticeCallback(s.onNotice)

	l := ui.localization

	s.progress = widget.NewProgressBar()
	s.starsText = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.musicBtn = widget.NewButton("", s.toggleMusic)

	reference := container.NewStack(
		sized(canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)), ReferenceHeight),
		widget.NewLabelWithStyle("📸 "+page.Difficulty.String(), fyne.TextAlignCenter, fyne.TextStyle{}),
	)

	areaGrid := container.NewGridWithColumns(AreaColumns(s.session.TotalAreas()))
	for i := 1; i <= s.session.TotalAreas(); i++ {
		index := i
		cell := newAreaCell(strconv.Itoa(index), blankFill, kidsSize(SizeNameAreaCell, AreaCellSize), func() { s.onAreaTapped(index) })
		s.areas = append(s.areas, cell)
		areaGrid.Add(cell)
	}

	penRow := container.NewGridWithColumns(len(coloring.PenSizes))
	for _, pen := range coloring.PenSizes {
		size := pen.Size
		btn := widget.NewButton(pen.Icon+" "+pen.Label, func() { s.onPenSelected(size) })
		s.pens[size] = btn
		penRow.Add(btn)
	}

	palette := container.NewGridWithColumns(PaletteColumns)
	for _, c := range coloring.Palette {
		fill, err := c.RGBA()
		if err != nil {
			log.Printf("Skipping palette color %s: %v", c, err)
			continue
		}
		selected := c
		swatch := newAreaCell("", fill, kidsSize(SizeNameSwatch, SwatchSize), func() { s.onColorSelected(selected) })
		s.swatches[c] = swatch
		palette.Add(swatch)
	}

	resetBtn := widget.NewButton(IconReset+" "+l.GetText(KeyStartOver), s.onReset)
	saveBtn := ui.mobile.CreateMobileButton(IconSave+" "+l.GetText(KeySaveAndWin), s.onSave)

	content := container.NewVBox(
		widget.NewLabel(l.GetText(KeyReferencePicture)),
		reference,
		widget.NewLabel(l.GetText(KeyYourColoring)),
		container.NewBorder(nil, nil, nil, s.starsText, s.progress),
		areaGrid,
		widget.NewLabel(l.GetText(KeyChoosePen)),
		penRow,
		widget.NewLabel(l.GetText(KeyPickColors)),
		palette,
		s.musicBtn,
	)

	s.view = container.NewBorder(nil, container.NewGridWithColumns(2, resetBtn, saveBtn), nil, nil,
		container.NewVScroll(content))

	s.refresh()
	return s
}

// sized gives a rectangle a minimum height
func sized(rect *canvas.Rectangle, height float32) *canvas.Rectangle {
	rect.CornerRadius = kidsSize(SizeNameAreaRadius, AreaCornerRadius)
	rect.SetMinSize(fyne.NewSize(0, height))
	return rect
}

func (s *coloringScreen) onAreaTapped(index int) {
	added, err := s.session.MarkAreaComplete(index)
	if err != nil {
		log.Printf("Area tap rejected: %v", err)
		return
	}
	if added {
		s.ui.debugf("Area %d colored %s", index, s.session.SelectedColor())
	}
	s.refresh()
}

func (s *coloringScreen) onColorSelected(c coloring.Color) {
	if err := s.session.SelectColor(c); err != nil {
		log.Printf("Color rejected: %v", err)
		return
	}
	s.refresh()
}

func (s *coloringScreen) onPenSelected(size int) {
	if err := s.session.SelectPenSize(size); err != nil {
		log.Printf("Pen rejected: %v", err)
		return
	}
	s.ui.settings.SetDefaultPenSize(size)
	s.refresh()
}

func (s *coloringScreen) onReset() {
	s.session.RequestReset()
	s.ui.confirm(KeyResetTitle, KeyResetMessage, KeyStartOver, KeyKeepColoring, func(ok bool) {
		if ok {
			s.session.ConfirmReset()
		} else {
			s.session.CancelReset()
		}
		s.refresh()
	})
}

func (s *coloringScreen) onSave() {
	s.session.Save()
	s.refresh()
}

func (s *coloringScreen) toggleMusic() {
	s.musicOn = !s.musicOn
	s.ui.debugf("Music toggled: %v", s.musicOn)
	s.refresh()
}

// onNotice turns session notices into dialogs
func (s *coloringScreen) onNotice(notice coloring.Notice) {
	l := s.ui.localization

	switch notice.Kind {
	case coloring.NoticeComplete:
		s.ui.showInfo(KeyPerfectTitle, l.GetText(KeyPerfectMessage))
	case coloring.NoticeEncourage:
		s.ui.showInfo(KeyGreatTitle, l.GetText(KeyGreatMessage))
	case coloring.NoticeSaved:
		sum := notice.Summary
		d := dialog.NewConfirm(
			l.GetText(KeySavedTitle),
			l.Format(KeySavedMessage, sum.Completed, sum.Total, sum.Stars),
			func(keepColoring bool) {
				if !keepColoring {
					s.ui.Back()
				}
			},
			s.ui.window,
		)
		d.SetConfirmText(l.GetText(KeyContinueColoring))
		d.SetDismissText(l.GetText(KeyGoBack))
		d.Show()
	}
}

// refresh syncs every widget with the session
func (s *coloringScreen) refresh() {
	for i, cell := range s.areas {
		cell.SetFill(s.areaFill(i + 1))
	}

	selected := s.session.SelectedColor()
	for c, swatch := range s.swatches {
		swatch.SetSelected(c == selected)
	}

	for size, btn := range s.pens {
		if size == s.session.SelectedPenSize() {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	sum := s.session.Summary()
	s.progress.SetValue(s.session.Percent() / 100)
	s.starsText.SetText(fmt.Sprintf("%s %d/%d", starsText(sum.Stars), sum.Completed, sum.Total))

	if s.musicOn {
		s.musicBtn.SetText(s.ui.localization.GetText(KeyMusicOn))
	} else {
		s.musicBtn.SetText(s.ui.localization.GetText(KeyMusicOff))
	}
}

// areaFill returns the color an area was painted with, or blankFill
func (s *coloringScreen) areaFill(index int) color.Color {
	fill, ok := s.session.Fill(index)
	if !ok {
		return blankFill
	}
	rgba, err := fill.Color.RGBA()
	if err != nil {
		return blankFill
	}
	return rgba
}
