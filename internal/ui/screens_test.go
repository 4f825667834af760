package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/coloring"
	"github.com/colorandlearn/color-and-learn/internal/license"
)

func rgba(t *testing.T, c coloring.Color) color.Color {
	t.Helper()
	v, err := c.RGBA()
	if err != nil {
		t.Fatalf("RGBA(%s): %v", c, err)
	}
	return v
}

func TestColoringScreen_PlaceholderPage(t *testing.T) {
	ui := newTestUI(t)

	s := newColoringScreen(ui, ui.catalog.PageOrPlaceholder("unicorn"))
	if len(s.areas) != 10 {
		t.Errorf("expected 10 areas for an unknown page, got %d", len(s.areas))
	}
	if got := ui.catalog.PageTitle("unicorn"); got != "Coloring Page" {
		t.Errorf("PageTitle(unknown) = %q", got)
	}
}

func TestColoringScreen_TapColorsArea(t *testing.T) {
	ui := newTestUI(t)
	page, _ := ui.catalog.Page("cat")
	s := newColoringScreen(ui, page)

	if len(s.areas) != page.NumberedAreas {
		t.Fatalf("expected %d areas, got %d", page.NumberedAreas, len(s.areas))
	}

	test.Tap(s.areas[0])
	if s.session.CompletedCount() != 1 {
		t.Fatalf("expected 1 completed area, got %d", s.session.CompletedCount())
	}
	if s.areas[0].fill != rgba(t, coloring.DefaultColor) {
		t.Errorf("area 1 fill = %v, want default color", s.areas[0].fill)
	}

	// A new color applies to new areas only
	blue := coloring.Color("#54A0FF")
	test.Tap(s.swatches[blue])
	if s.session.SelectedColor() != blue {
		t.Fatalf("selected color = %s, want %s", s.session.SelectedColor(), blue)
	}
	if !s.swatches[blue].selected || s.swatches[coloring.DefaultColor].selected {
		t.Error("only the tapped swatch should be highlighted")
	}

	test.Tap(s.areas[0])
	test.Tap(s.areas[1])
	if s.areas[0].fill != rgba(t, coloring.DefaultColor) {
		t.Error("re-tapping a colored area must not repaint it")
	}
	if s.areas[1].fill != rgba(t, blue) {
		t.Errorf("area 2 fill = %v, want blue", s.areas[1].fill)
	}
	if s.areas[2].fill != blankFill {
		t.Error("untouched area should stay blank")
	}
	if !strings.Contains(s.starsText.Text, "2/8") {
		t.Errorf("stars label = %q, want it to count 2/8", s.starsText.Text)
	}
}

func TestColoringScreen_FullPageEarnsThreeStars(t *testing.T) {
	ui := newTestUI(t)
	page, _ := ui.catalog.Page("cat")
	s := newColoringScreen(ui, page)

	for _, cell := range s.areas {
		test.Tap(cell)
	}

	if s.session.Stars() != 3 {
		t.Errorf("expected 3 stars, got %d", s.session.Stars())
	}
	if s.progress.Value != 1 {
		t.Errorf("progress = %v, want 1", s.progress.Value)
	}
	if !strings.HasPrefix(s.starsText.Text, strings.Repeat(IconStar, 3)) {
		t.Errorf("stars label = %q", s.starsText.Text)
	}
}

func TestColoringScreen_ResetAsksFirst(t *testing.T) {
	ui := newTestUI(t)
	page, _ := ui.catalog.Page("dog")
	s := newColoringScreen(ui, page)

	test.Tap(s.areas[0])
	s.onReset()

	if !s.session.ResetPending() {
		t.Error("reset should wait for confirmation")
	}
	if s.session.CompletedCount() != 1 {
		t.Error("reset must not clear areas before confirmation")
	}
}

func TestColoringScreen_PenAndMusicFollowSettings(t *testing.T) {
	ui := newTestUI(t)
	page, _ := ui.catalog.Page("dog")

	ui.settings.SetMusicEnabled(false)
	s := newColoringScreen(ui, page)
	if s.musicOn {
		t.Error("music toggle should start from the Background Music setting")
	}
	if s.musicBtn.Text != ui.localization.GetText(KeyMusicOff) {
		t.Errorf("music button = %q", s.musicBtn.Text)
	}

	test.Tap(s.pens[4])
	if s.session.SelectedPenSize() != 4 {
		t.Errorf("pen size = %d, want 4", s.session.SelectedPenSize())
	}
	if ui.settings.GetDefaultPenSize() != 4 {
		t.Error("selected pen should be remembered")
	}

	next := newColoringScreen(ui, page)
	if next.session.SelectedPenSize() != 4 {
		t.Errorf("new session pen = %d, want 4", next.session.SelectedPenSize())
	}
}

// pickedFile implements platform.PickedFile over a string
type pickedFile struct {
	*strings.Reader
	uri fyne.URI
}

func (p pickedFile) URI() fyne.URI { return p.uri }

func writePicked(t *testing.T, name, content string) pickedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return pickedFile{Reader: strings.NewReader(content), uri: storage.NewFileURI(path)}
}

func TestUploadScreen_AddPicked(t *testing.T) {
	ui := newTestUI(t)
	s := ui.uploadV

	s.addPicked(writePicked(t, "cat.png", "not really a png"))

	files := ui.uploads.Files()
	if len(files) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(files))
	}
	if files[0].Name != "cat.png" || files[0].MimeType != "image/png" {
		t.Errorf("unexpected upload %+v", files[0])
	}
	if files[0].Size != int64(len("not really a png")) {
		t.Errorf("size = %d", files[0].Size)
	}
}

func TestUploadScreen_RejectsUnsupported(t *testing.T) {
	ui := newTestUI(t)

	ui.uploadV.addPicked(writePicked(t, "notes.txt", "hello"))

	if ui.uploads.Len() != 0 {
		t.Errorf("text files should not be added, got %d uploads", ui.uploads.Len())
	}
}

func TestUploadScreen_PickerCancelAndError(t *testing.T) {
	ui := newTestUI(t)

	ui.uploadV.onFilePicked(nil, nil)
	ui.uploadV.onFilePicked(nil, os.ErrPermission)

	if ui.uploads.Len() != 0 {
		t.Errorf("cancel or error must not add uploads, got %d", ui.uploads.Len())
	}
}

// findButton walks a widget tree for the button labelled text
func findButton(obj fyne.CanvasObject, text string) *widget.Button {
	switch o := obj.(type) {
	case *widget.Button:
		if o.Text == text {
			return o
		}
	case *fyne.Container:
		for _, child := range o.Objects {
			if b := findButton(child, text); b != nil {
				return b
			}
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(o).Objects() {
			if b := findButton(child, text); b != nil {
				return b
			}
		}
	}
	return nil
}

// tapDialogButton taps a button on the topmost dialog of the window
func tapDialogButton(t *testing.T, ui *RootUI, text string) {
	t.Helper()
	top := ui.window.Canvas().Overlays().Top()
	if top == nil {
		t.Fatal("expected a dialog to be showing")
	}
	btn := findButton(top, text)
	if btn == nil {
		t.Fatalf("dialog has no %q button", text)
	}
	test.Tap(btn)
}

func TestUploadScreen_RemoveNeedsConfirmation(t *testing.T) {
	ui := newTestUI(t)
	s := ui.uploadV

	s.addPicked(writePicked(t, "cat.png", "png"))
	s.addPicked(writePicked(t, "dog.pdf", "pdf"))
	if !strings.Contains(s.countLabel.Text, "(2)") || s.emptyLabel.Visible() {
		t.Fatalf("count label = %q, empty visible = %v", s.countLabel.Text, s.emptyLabel.Visible())
	}

	first := ui.uploads.Files()[0]
	s.confirmRemove(first.ID)
	if ui.uploads.Len() != 2 {
		t.Fatal("nothing should be removed before the user answers")
	}
	tapDialogButton(t, ui, ui.localization.GetText(KeyCancel))
	if _, ok := ui.uploads.GetFile(first.ID); !ok {
		t.Fatal("dismissing the dialog must keep the entry")
	}

	s.confirmRemove(first.ID)
	tapDialogButton(t, ui, ui.localization.GetText(KeyRemove))
	if _, ok := ui.uploads.GetFile(first.ID); ok {
		t.Fatal("confirming the dialog should remove the entry")
	}
	if !strings.Contains(s.countLabel.Text, "(1)") {
		t.Errorf("count label = %q, want 1 picture", s.countLabel.Text)
	}

	last := ui.uploads.Files()[0]
	s.confirmRemove(last.ID)
	tapDialogButton(t, ui, ui.localization.GetText(KeyRemove))
	if !strings.Contains(s.countLabel.Text, "(0)") || !s.emptyLabel.Visible() {
		t.Errorf("count label = %q, empty visible = %v", s.countLabel.Text, s.emptyLabel.Visible())
	}
}

func TestSettingsScreen_Toggles(t *testing.T) {
	ui := newTestUI(t)
	s := ui.prefs

	if !s.soundCheck.Checked || !s.musicCheck.Checked || !s.vibrationCheck.Checked {
		t.Error("all toggles should default to on")
	}

	test.Tap(s.soundCheck)
	test.Tap(s.vibrationCheck)

	if ui.settings.GetSoundEnabled() {
		t.Error("sound should be off after tapping its switch")
	}
	if ui.settings.GetVibrationEnabled() {
		t.Error("vibration should be off after tapping its switch")
	}
	if !ui.settings.GetMusicEnabled() {
		t.Error("music should be unchanged")
	}
	if s.languageSelect.Selected != "System Default" {
		t.Errorf("language select = %q", s.languageSelect.Selected)
	}
}

func TestLicenseScreen_LockUnlock(t *testing.T) {
	ui := newTestUI(t)
	if err := ui.Navigate("/license"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	s := newLicenseScreen(ui)

	// Missing fields keep the form editable
	s.onLock()
	if ui.license.Locked() {
		t.Fatal("form should not lock with empty fields")
	}
	if err := ui.license.ConfirmLock(); err == nil {
		t.Fatal("no lock request should be pending after a failed validation")
	}

	s.entries[license.FieldOwnerName].SetText("Ada Lovelace")
	s.entries[license.FieldOwnerID].SetText("AL-1815")
	s.entries[license.FieldOwnerEmail].SetText("ada@example.com")
	s.entries[license.FieldPassword].SetText("secret")

	s.onLock()
	if err := ui.license.ConfirmLock(); err != nil {
		t.Fatalf("ConfirmLock: %v", err)
	}
	s.refresh()

	for field, e := range s.entries {
		if !e.Disabled() {
			t.Errorf("field %d should be disabled when locked", field)
		}
	}
	if s.lockBtn.Visible() || !s.unlockBtn.Visible() {
		t.Error("only the unlock button should be visible when locked")
	}

	if want := IconLock + " " + ui.localization.GetText(KeyLicenseLocked); s.status.Text != want {
		t.Errorf("status = %q, want %q", s.status.Text, want)
	}

	s.onUnlock()
	s.confirmUnlock(false)
	if !ui.license.Locked() {
		t.Fatal("dismissing the unlock dialog must keep the license locked")
	}

	s.onUnlock()
	s.confirmUnlock(true)
	if ui.license.Locked() {
		t.Fatal("confirming the unlock dialog should unlock")
	}
	if s.entries[license.FieldOwnerName].Disabled() {
		t.Error("fields should be editable after unlock")
	}
	if want := IconUnlock + " " + ui.localization.GetText(KeyLicenseUnlocked); s.status.Text != want {
		t.Errorf("status = %q, want %q", s.status.Text, want)
	}
	if got := s.entries[license.FieldPassword].Text; got != "secret" {
		t.Errorf("password entry = %q, want it kept", got)
	}
	if got := ui.license.Record().OwnerName; got != "Ada Lovelace" {
		t.Errorf("owner name = %q", got)
	}
}

func TestLicenseScreen_LockSurvivesBack(t *testing.T) {
	ui := newTestUI(t)
	if err := ui.Navigate("/license"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	s := newLicenseScreen(ui)
	s.entries[license.FieldOwnerName].SetText("Ada")
	s.entries[license.FieldOwnerID].SetText("1")
	s.entries[license.FieldOwnerEmail].SetText("ada@example.com")
	s.entries[license.FieldPassword].SetText("pw")
	s.onLock()
	if err := ui.license.ConfirmLock(); err != nil {
		t.Fatalf("ConfirmLock: %v", err)
	}

	ui.Back()
	if err := ui.Navigate("/license"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	again := newLicenseScreen(ui)
	if !again.entries[license.FieldOwnerName].Disabled() {
		t.Error("a locked license should reopen locked")
	}
	if again.entries[license.FieldOwnerName].Text != "Ada" {
		t.Errorf("owner name = %q", again.entries[license.FieldOwnerName].Text)
	}
}
