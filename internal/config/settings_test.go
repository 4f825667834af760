package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestToggles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if settings.GetSoundEnabled() != DefaultSoundEnabled {
		t.Errorf("Expected default sound %v", DefaultSoundEnabled)
	}
	if settings.GetMusicEnabled() != DefaultMusicEnabled {
		t.Errorf("Expected default music %v", DefaultMusicEnabled)
	}
	if settings.GetVibrationEnabled() != DefaultVibrationEnabled {
		t.Errorf("Expected default vibration %v", DefaultVibrationEnabled)
	}

	// Test setting custom values
	settings.SetSoundEnabled(false)
	settings.SetMusicEnabled(false)
	settings.SetVibrationEnabled(false)

	if settings.GetSoundEnabled() || settings.GetMusicEnabled() || settings.GetVibrationEnabled() {
		t.Error("Expected all toggles to be off")
	}

	settings.SetMusicEnabled(true)
	if !settings.GetMusicEnabled() {
		t.Error("Expected music to be back on")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestDefaultPenSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetDefaultPenSize(); got != DefaultPenSize {
		t.Errorf("Expected default pen size %d, got %d", DefaultPenSize, got)
	}

	settings.SetDefaultPenSize(3)
	if got := settings.GetDefaultPenSize(); got != 3 {
		t.Errorf("Expected pen size 3, got %d", got)
	}

	// Test boundary values
	settings.SetDefaultPenSize(0)
	if settings.GetDefaultPenSize() != MinPenSize {
		t.Errorf("Pen size should be clamped to minimum %d", MinPenSize)
	}

	settings.SetDefaultPenSize(12)
	if settings.GetDefaultPenSize() != MaxPenSize {
		t.Errorf("Pen size should be clamped to maximum %d", MaxPenSize)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
