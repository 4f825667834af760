package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeySoundEnabled     = "sound_enabled"
	KeyMusicEnabled     = "music_enabled"
	KeyVibrationEnabled = "vibration_enabled"
	KeyLanguage         = "app_language"
	KeyDefaultPenSize   = "default_pen_size"
)

// Default values
const (
	DefaultSoundEnabled     = true
	DefaultMusicEnabled     = true
	DefaultVibrationEnabled = true
	DefaultLanguage         = "system"
	DefaultPenSize          = 2
)

// Pen size bounds
const (
	MinPenSize = 1
	MaxPenSize = 4
)

// Settings manages the toggles on the settings screen
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSoundEnabled returns whether sound effects play while coloring
func (s *Settings) GetSoundEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeySoundEnabled, DefaultSoundEnabled)
}

// SetSoundEnabled sets whether sound effects play while coloring
func (s *Settings) SetSoundEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeySoundEnabled, enabled)
}

// GetMusicEnabled returns whether background music plays
func (s *Settings) GetMusicEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyMusicEnabled, DefaultMusicEnabled)
}

// SetMusicEnabled sets whether background music plays
func (s *Settings) SetMusicEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyMusicEnabled, enabled)
}

// GetVibrationEnabled returns whether completing an area vibrates
func (s *Settings) GetVibrationEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyVibrationEnabled, DefaultVibrationEnabled)
}

// SetVibrationEnabled sets whether completing an area vibrates
func (s *Settings) SetVibrationEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyVibrationEnabled, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultPenSize returns the pen size a new coloring page starts with
func (s *Settings) GetDefaultPenSize() int {
	value := s.app.Preferences().Int(KeyDefaultPenSize)
	if value <= 0 {
		s.SetDefaultPenSize(DefaultPenSize)
		return DefaultPenSize
	}
	return value
}

// SetDefaultPenSize sets the starting pen size, clamped to the offered sizes
func (s *Settings) SetDefaultPenSize(size int) {
	if size < MinPenSize {
		size = MinPenSize
	}
	if size > MaxPenSize {
		size = MaxPenSize
	}
	s.app.Preferences().SetInt(KeyDefaultPenSize, size)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
