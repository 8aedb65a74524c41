package assist

import (
	"strings"
	"testing"

	"github.com/civishield/civi-shield/backend/internal/model/location"
)

func TestFallbackKeywordPriority(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		category string
	}{
		{"fire", "there is a FIRE in my kitchen", "fire"},
		{"fire beats flood", "fire and flood at the same time", "fire"},
		{"flood", "flood water is rising", "flood"},
		{"flood beats cpr", "flood victim unconscious", "flood"},
		{"cpr", "how to do cpr", "cpr"},
		{"unconscious", "my father is unconscious", "cpr"},
		{"police", "police stopped me", "police"},
		{"rights", "what are my rights", "police"},
		{"help beats nothing", "help me", "police"},
		{"generic", "what is the weather", "generic"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answer := Fallback(tc.query, "en", location.Data{})
			if answer.Category != tc.category {
				t.Fatalf("expected category %q, got %q", tc.category, answer.Category)
			}
		})
	}
}

func TestFallbackConfidence(t *testing.T) {
	matched := Fallback("fire", "en", location.Data{})
	if matched.Confidence != 0.9 {
		t.Fatalf("expected matched confidence 0.9, got %v", matched.Confidence)
	}

	generic := Fallback("hello there", "en", location.Data{})
	if generic.Confidence != 0.7 {
		t.Fatalf("expected generic confidence 0.7, got %v", generic.Confidence)
	}
}

func TestFallbackHindiTemplates(t *testing.T) {
	answer := Fallback("fire", "hi", location.Data{})
	if !strings.Contains(answer.Text, "101 पर कॉल करें") {
		t.Fatalf("expected hindi fire template, got %q", answer.Text)
	}

	// Languages without a template render English.
	kannada := Fallback("fire", "kn", location.Data{})
	if !strings.Contains(kannada.Text, "Call 101 immediately") {
		t.Fatalf("expected english template for kn, got %q", kannada.Text)
	}
}

func TestFallbackAppendsLocation(t *testing.T) {
	loc := location.Data{Name: "Mumbai", State: "Maharashtra"}

	answer := Fallback("flood", "en", loc)
	if !strings.Contains(answer.Text, "Your current location: Mumbai, Maharashtra") {
		t.Fatalf("expected location note, got %q", answer.Text)
	}

	hindi := Fallback("flood", "hi", loc)
	if !strings.Contains(hindi.Text, "आपका वर्तमान स्थान: Mumbai, Maharashtra") {
		t.Fatalf("expected hindi location note, got %q", hindi.Text)
	}

	bare := Fallback("flood", "en", location.Data{})
	if strings.Contains(bare.Text, "📍") {
		t.Fatalf("expected no location note without a location, got %q", bare.Text)
	}
}
