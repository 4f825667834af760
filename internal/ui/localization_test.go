package ui

import "testing"

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyTabHome); got != "Home" {
		t.Errorf("GetText(KeyTabHome) = %q", got)
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system language should resolve to en, got %q", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("unknown language should be ignored, got %q", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("missing key should fall back to itself, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang, texts := range l.texts {
		for key := range l.texts["en"] {
			if _, ok := texts[key]; !ok {
				t.Errorf("%s is missing %s", lang, key)
			}
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	if got := l.Format(KeyYourPictures, 2); got != "Your Pictures 🖼️ (2)" {
		t.Errorf("Format(KeyYourPictures) = %q", got)
	}

	l.SetLanguage("pt")
	if got := l.Format(KeyFileAddedMessage, "gato.png"); got != "gato.png foi adicionado à sua coleção!" {
		t.Errorf("Format(KeyFileAddedMessage) = %q", got)
	}
}
