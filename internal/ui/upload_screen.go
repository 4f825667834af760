package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/model"
	"github.com/colorandlearn/color-and-learn/internal/platform"
	"github.com/colorandlearn/color-and-learn/internal/upload"
)

// uploadScreen lets the user add pictures and PDFs to a session-only list
type uploadScreen struct {
	ui *RootUI

	files      []*model.UploadedFile
	list       *widget.List
	countLabel *widget.Label
	emptyLabel *widget.Label

	view fyne.CanvasObject
}

func newUploadScreen(ui *RootUI) *uploadScreen {
	s := &uploadScreen{ui: ui, files: ui.uploads.Files()}
	l := ui.localization

	addBtn := ui.mobile.CreateMobileButton(IconUpload+" "+l.GetText(KeyAddPicture), s.pickFile)
	hint := widget.NewLabelWithStyle(l.GetText(KeyFormatsHint), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	s.countLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	s.emptyLabel = widget.NewLabelWithStyle(IconUpload+" "+l.GetText(KeyNoPictures), fyne.TextAlignCenter, fyne.TextStyle{})

	s.list = widget.NewList(
		func() int {
			return len(s.files)
		},
		s.createFileItem,
		s.updateFileItem,
	)

	top := container.NewVBox(
		heading(l.GetText(KeyUploadTitle), theme.SizeNameSubHeadingText),
		addBtn,
		hint,
		widget.NewSeparator(),
		s.countLabel,
		s.emptyLabel,
	)
	s.view = container.NewBorder(top, nil, nil, nil, s.list)

	ui.uploads.SetUpdateCallback(s.onFilesUpdated)
	s.refresh()
	return s
}

// pickFile opens the platform file picker
func (s *uploadScreen) pickFile() {
	d := dialog.NewFileOpen(s.onFilePicked, s.ui.window)
	d.SetFilter(platform.NewPickerFilter())
	d.Show()
}

// onFilePicked handles the picker result. A nil reader with no error means
// the user cancelled.
func (s *uploadScreen) onFilePicked(reader fyne.URIReadCloser, err error) {
	if err != nil {
		log.Printf("File picker failed: %v", err)
		s.showPickError()
		return
	}
	if reader == nil {
		return
	}
	defer reader.Close()

	s.addPicked(reader)
}

// addPicked describes a picked file and appends it to the list
func (s *uploadScreen) addPicked(file platform.PickedFile) {
	desc, err := platform.Describe(file)
	if err != nil {
		log.Printf("Failed to describe picked file: %v", err)
		s.showPickError()
		return
	}

	if !platform.IsAccepted(desc.MimeType) {
		log.Printf("Rejected %s with type %s", desc.Name, desc.MimeType)
		s.ui.showInfo(KeyPickErrorTitle, s.ui.localization.GetText(KeyUnsupportedMessage))
		return
	}

	added, err := s.ui.uploads.AddFile(desc)
	if err != nil {
		log.Printf("Failed to add upload: %v", err)
		s.showPickError()
		return
	}

	s.ui.showInfo(KeyFileAddedTitle, s.ui.localization.Format(KeyFileAddedMessage, added.GetDisplayName()))
}

func (s *uploadScreen) showPickError() {
	s.ui.showInfo(KeyPickErrorTitle, s.ui.localization.GetText(KeyPickErrorMessage))
}

// confirmRemove asks before removing an entry
func (s *uploadScreen) confirmRemove(id string) {
	file, ok := s.ui.uploads.GetFile(id)
	if !ok {
		log.Printf("Upload %s is already gone", id)
		return
	}
	s.ui.confirm(KeyRemoveTitle, KeyRemoveMessage, KeyRemove, KeyCancel, func(ok bool) {
		if !ok {
			return
		}
		if !s.ui.uploads.RemoveFile(id) {
			log.Printf("Upload %s was removed before confirmation", file.Name)
		}
	})
}

// openFile opens a local upload with the system viewer
func (s *uploadScreen) openFile(file *model.UploadedFile) {
	path, err := platform.LocalPath(file.URI)
	if err != nil {
		log.Printf("Cannot open %s: %v", file.Name, err)
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Failed to open %s: %v", path, err)
	}
}

// onFilesUpdated receives list changes from the upload service
func (s *uploadScreen) onFilesUpdated(files []*model.UploadedFile) {
	fyne.Do(func() {
		s.files = files
		s.refresh()
	})
}

func (s *uploadScreen) refresh() {
	count := s.ui.uploads.Len()
	s.countLabel.SetText(s.ui.localization.Format(KeyYourPictures, count))
	if count == 0 {
		s.emptyLabel.Show()
	} else {
		s.emptyLabel.Hide()
	}
	s.list.Refresh()
}

// createFileItem creates the row template
func (s *uploadScreen) createFileItem() fyne.CanvasObject {
	icon := widget.NewLabel(IconPicture)
	name := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	name.Truncation = fyne.TextTruncateEllipsis
	meta := widget.NewLabel("")
	openBtn := widget.NewButtonWithIcon("", theme.FileImageIcon(), nil)
	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	removeBtn.Importance = widget.DangerImportance

	return container.NewBorder(nil, nil, icon, container.NewHBox(openBtn, removeBtn), container.NewVBox(name, meta))
}

// updateFileItem binds row id to its template
func (s *uploadScreen) updateFileItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(s.files) {
		return
	}
	file := s.files[id]

	row := item.(*fyne.Container)
	// Border layout puts the center object first, then left and right
	texts := row.Objects[0].(*fyne.Container)
	icon := row.Objects[1].(*widget.Label)
	buttons := row.Objects[2].(*fyne.Container)

	if file.IsImage() {
		icon.SetText(IconPicture)
	} else {
		icon.SetText(IconFile)
	}
	texts.Objects[0].(*widget.Label).SetText(file.GetDisplayName())
	texts.Objects[1].(*widget.Label).SetText(upload.FormatSize(file.Size) + MiddleDotSeparator + file.MimeType)

	buttons.Objects[0].(*widget.Button).OnTapped = func() { s.openFile(file) }
	buttons.Objects[1].(*widget.Button).OnTapped = func() { s.confirmRemove(file.ID) }
}
