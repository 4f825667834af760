package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/license"
)

// licenseScreen edits the license owner form. The form outlives the screen
// so a lock survives Back.
type licenseScreen struct {
	ui   *RootUI
	form *license.Form

	entries   map[license.Field]*widget.Entry
	status    *widget.Label
	lockBtn   *widget.Button
	unlockBtn *widget.Button

	view fyne.CanvasObject
}

func newLicenseScreen(ui *RootUI) *licenseScreen {
	s := &licenseScreen{
		ui:      ui,
		form:    ui.license,
		entries: make(map[license.Field]*widget.Entry),
	}
	l := ui.localization
	record := s.form.Record()

	name := s.entry(license.FieldOwnerName, widget.NewEntry(), record.OwnerName)
	id := s.entry(license.FieldOwnerID, widget.NewEntry(), record.OwnerID)
	email := s.entry(license.FieldOwnerEmail, widget.NewEntry(), record.OwnerEmail)
	password := s.entry(license.FieldPassword, widget.NewPasswordEntry(), record.Password)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyFullName), name),
		widget.NewFormItem(l.GetText(KeyIDNumber), id),
		widget.NewFormItem(l.GetText(KeyEmail), email),
		widget.NewFormItem(l.GetText(KeyPassword), password),
	)

	s.status = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.lockBtn = ui.mobile.CreateMobileButton(IconLock+" "+l.GetText(KeyLockLicense), s.onLock)
	s.unlockBtn = widget.NewButton(IconUnlock+" "+l.GetText(KeyUnlockLicense), s.onUnlock)

	notice := widget.NewLabel(l.GetText(KeyOpenSourceNotice))
	notice.Wrapping = fyne.TextWrapWord

	s.view = container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyOwnerInfo), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		s.status,
		s.lockBtn,
		s.unlockBtn,
		widget.NewSeparator(),
		notice,
	))

	s.refresh()
	return s
}

// entry binds an input to a form field
func (s *licenseScreen) entry(field license.Field, e *widget.Entry, value string) *widget.Entry {
	e.SetText(value)
	e.OnChanged = func(text string) {
		if s.form.Locked() {
			return
		}
		if err := s.form.Set(field, text); err != nil {
			log.Printf("License edit rejected: %v", err)
		}
	}
	s.entries[field] = e
	return e
}

func (s *licenseScreen) onLock() {
	s.syncFields()
	if err := s.form.RequestLock(); err != nil {
		if errors.Is(err, license.ErrMissingFields) {
			s.ui.showInfo(KeyMissingInfoTitle, s.ui.localization.GetText(KeyMissingInfoMessage))
			return
		}
		log.Printf("Lock request failed: %v", err)
		return
	}

	s.ui.confirm(KeyLockTitle, KeyLockMessage, KeyLockLicense, KeyCancel, func(ok bool) {
		if !ok {
			s.form.Cancel()
			return
		}
		if err := s.form.ConfirmLock(); err != nil {
			log.Printf("Lock failed: %v", err)
			dialog.ShowError(err, s.ui.window)
			return
		}
		s.refresh()
		s.ui.showInfo(KeyLockedTitle, s.ui.localization.GetText(KeyLockedMessage))
	})
}

func (s *licenseScreen) onUnlock() {
	if err := s.form.RequestUnlock(); err != nil {
		log.Printf("Unlock request failed: %v", err)
		return
	}
	s.ui.confirm(KeyUnlockTitle, KeyUnlockMessage, KeyUnlockLicense, KeyCancel, s.confirmUnlock)
}

// confirmUnlock completes or abandons a pending unlock
func (s *licenseScreen) confirmUnlock(ok bool) {
	if !ok {
		s.form.Cancel()
		return
	}
	if err := s.form.ConfirmUnlock(); err != nil {
		log.Printf("Unlock failed: %v", err)
		return
	}

	s.refresh()
	s.ui.showInfo(KeyUnlockedTitle, s.ui.localization.GetText(KeyUnlockedMessage))
}

// syncFields copies every input into the form
func (s *licenseScreen) syncFields() {
	if s.form.Locked() {
		return
	}
	for field, e := range s.entries {
		if err := s.form.Set(field, e.Text); err != nil {
			log.Printf("License edit rejected: %v", err)
		}
	}
}

// refresh enables inputs and buttons for the current lock state
func (s *licenseScreen) refresh() {
	locked := s.form.Locked()

	for _, e := range s.entries {
		if locked {
			e.Disable()
		} else {
			e.Enable()
		}
	}

	l := s.ui.localization
	if locked {
		s.status.SetText(IconLock + " " + l.GetText(KeyLicenseLocked))
		s.lockBtn.Hide()
		s.unlockBtn.Show()
	} else {
		s.status.SetText(IconUnlock + " " + l.GetText(KeyLicenseUnlocked))
		s.lockBtn.Show()
		s.unlockBtn.Hide()
	}
}
