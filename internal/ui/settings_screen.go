package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/colorandlearn/color-and-learn/internal/config"
)

// settingsScreen is the Settings tab
type settingsScreen struct {
	ui *RootUI

	soundCheck     *widget.Check
	musicCheck     *widget.Check
	vibrationCheck *widget.Check
	languageSelect *widget.Select
	languageCodes  map[string]string

	view fyne.CanvasObject
}

func newSettingsScreen(ui *RootUI) *settingsScreen {
	s := &settingsScreen{ui: ui, languageCodes: make(map[string]string)}
	settings := ui.settings
	l := ui.localization

	s.soundCheck = toggle(l.GetText(KeySoundEffects), settings.GetSoundEnabled(), settings.SetSoundEnabled)
	s.musicCheck = toggle(l.GetText(KeyBackgroundMusic), settings.GetMusicEnabled(), settings.SetMusicEnabled)
	s.vibrationCheck = toggle(l.GetText(KeyVibration), settings.GetVibrationEnabled(), settings.SetVibrationEnabled)

	// "system" first, then by code
	options := settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		if code != config.DefaultLanguage {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	codes = append([]string{config.DefaultLanguage}, codes...)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, options[code])
		s.languageCodes[options[code]] = code
	}
	s.languageSelect = widget.NewSelect(names, nil)
	s.languageSelect.SetSelected(options[settings.GetLanguage()])
	s.languageSelect.OnChanged = func(name string) {
		if code, ok := s.languageCodes[name]; ok && code != settings.GetLanguage() {
			ui.onLanguageChange(code)
		}
	}

	aboutBtn := widget.NewButtonWithIcon(l.GetText(KeyAbout), theme.InfoIcon(), s.showAbout)
	licenseBtn := widget.NewButton(IconShield+" "+l.GetText(KeyLicense), func() {
		if err := ui.Navigate("/" + RouteLicense); err != nil {
			ui.showInfo(KeyPickErrorTitle, err.Error())
		}
	})
	contactBtn := widget.NewButton(IconMail+" "+l.GetText(KeyContact), s.showContact)

	s.view = container.NewVScroll(container.NewVBox(
		heading(IconSettings+" "+l.GetText(KeyTabSettings), theme.SizeNameSubHeadingText),
		widget.NewCard("🔊", "", container.NewVBox(s.soundCheck, s.musicCheck)),
		widget.NewCard(IconPalette, "", container.NewVBox(
			s.vibrationCheck,
			widget.NewForm(widget.NewFormItem(l.GetText(KeyLanguage), s.languageSelect)),
		)),
		widget.NewCard(IconInfo, "", container.NewVBox(aboutBtn, licenseBtn, contactBtn)),
	))
	return s
}

// toggle creates a check bound to a persisted setting
func toggle(label string, value bool, save func(bool)) *widget.Check {
	check := widget.NewCheck(label, nil)
	check.SetChecked(value)
	check.OnChanged = save
	return check
}

func (s *settingsScreen) showAbout() {
	s.ui.showInfo(KeyAboutTitle, s.ui.localization.Format(KeyAboutMessage, AppVersion))
}

func (s *settingsScreen) showContact() {
	s.ui.showInfo(KeyContactTitle, s.ui.localization.Format(KeyContactMessage, SupportEmail))
}
