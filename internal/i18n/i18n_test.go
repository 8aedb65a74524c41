package i18n

import "testing"

func TestLanguagesAreSupported(t *testing.T) {
	for _, lang := range Languages() {
		if !IsSupported(lang.Code) {
			t.Fatalf("language %q missing from IsSupported", lang.Code)
		}
	}
	if IsSupported("fr") {
		t.Fatal("unexpected support for fr")
	}
}

func TestSpeechLocale(t *testing.T) {
	cases := map[string]string{
		"en":      "en-IN",
		"hi":      "hi-IN",
		"ta":      "ta-IN",
		"unknown": "en-IN",
	}
	for code, want := range cases {
		if got := SpeechLocale(code); got != want {
			t.Fatalf("SpeechLocale(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestTranslate(t *testing.T) {
	if got := Translate("Emergency", "hi"); got != "आपातकाल" {
		t.Fatalf("unexpected hindi translation %q", got)
	}
	if got := Translate("Emergency", "en"); got != "Emergency" {
		t.Fatalf("english must return the source text, got %q", got)
	}

	// Unknown strings and languages fall back to the source text.
	if got := Translate("Not a known string", "hi"); got != "Not a known string" {
		t.Fatalf("unknown string must fall back, got %q", got)
	}
	if got := Translate("Emergency", "fr"); got != "Emergency" {
		t.Fatalf("unknown language must fall back, got %q", got)
	}
}
