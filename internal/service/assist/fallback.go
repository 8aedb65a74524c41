package assist

import (
	"fmt"
	"strings"

	"github.com/civishield/civi-shield/backend/internal/model/location"
)

// Fallback confidence levels. Matched keyword answers are near-certain,
// the generic prompt-for-detail answer is not.
const (
	matchedConfidence = 0.9
	genericConfidence = 0.7
)

// fallbackRule pairs a keyword set with its canned answer. Rules are checked
// in order and the first match wins, so fire outranks flood, flood outranks
// CPR, and so on.
type fallbackRule struct {
	category string
	keywords []string
	english  string
	hindi    string
}

var fallbackRules = []fallbackRule{
	{
		category: "fire",
		keywords: []string{"fire"},
		english:  "🚨 Fire Safety Steps: 1) Call 101 immediately 2) Get away from the fire 3) Stay low to avoid smoke 4) Feel doors for heat before opening 5) Have an escape route planned",
		hindi:    "🚨 आग के दौरान सुरक्षा के लिए: 1) तुरंत 101 पर कॉल करें 2) आग से दूर हटें 3) धुएं से बचने के लिए नीचे रहें 4) दरवाजे को छूकर गर्मी महसूस करें",
	},
	{
		category: "flood",
		keywords: []string{"flood"},
		english:  "🌊 Flood Safety: 1) Move to higher ground 2) Avoid electrical equipment 3) Call 108 if trapped 4) Don't walk in flowing water 5) Stay informed via radio/alerts",
		hindi:    "🌊 बाढ़ की सुरक्षा: 1) ऊंची जगह पर जाएं 2) बिजली के उपकरणों से दूर रहें 3) 108 पर कॉल करें अगर फंस गए हों 4) बहते पानी में न चलें",
	},
	{
		category: "cpr",
		keywords: []string{"cpr", "unconscious"},
		english:  "🫀 CPR Steps: 1) Call 102 immediately 2) Place person on firm surface 3) Put hands on center of chest 4) Push hard and fast 100-120 BPM 5) 30 compressions then 2 rescue breaths",
		hindi:    "🫀 CPR के चरण: 1) 102 पर कॉल करें 2) व्यक्ति को सख्त सतह पर रखें 3) सीने के बीच में हाथ रखें 4) 100-120 BPM की रेट से दबाएं 5) 30 compressions फिर 2 rescue breaths",
	},
	{
		category: "police",
		keywords: []string{"police", "rights", "help"},
		english:  "👮 Your Rights: 1) Right to know reason for arrest 2) Right to legal counsel 3) Right to inform family 4) Right to be presented before magistrate within 24 hours 5) Right to remain silent",
		hindi:    "👮 आपके अधिकार: 1) गिरफ्तारी का कारण जानने का अधिकार 2) वकील से मिलने का अधिकार 3) परिवार को सूचित करने का अधिकार 4) 24 घंटे में मजिस्ट्रेट के सामने पेश होने का अधिकार",
	},
}

const (
	genericEnglish = "🤖 I'm here to help you. Please provide more details about your situation so I can assist you better. For immediate emergencies, dial 112."
	genericHindi   = "🤖 मैं आपकी मदद के लिए यहां हूं। कृपया अपनी स्थिति के बारे में और बताएं ताकि मैं बेहतर सहायता प्रदान कर सकूं। आपातकाल के लिए 112 डायल करें।"
)

// FallbackAnswer is the offline keyword responder result.
type FallbackAnswer struct {
	Text       string
	Confidence float64
	Category   string
}

// Fallback generates a deterministic offline answer for query. Matching is
// case-insensitive with a fixed keyword priority; only English and Hindi
// templates exist, every other language code renders English. The current
// location is appended so canned guidance stays location-aware.
func Fallback(query, languageCode string, loc location.Data) FallbackAnswer {
	lowered := strings.ToLower(query)
	hindi := languageCode == "hi"

	for _, rule := range fallbackRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				text := rule.english
				if hindi {
					text = rule.hindi
				}
				return FallbackAnswer{
					Text:       withLocationNote(text, hindi, loc),
					Confidence: matchedConfidence,
					Category:   rule.category,
				}
			}
		}
	}

	text := genericEnglish
	if hindi {
		text = genericHindi
	}
	return FallbackAnswer{
		Text:       withLocationNote(text, hindi, loc),
		Confidence: genericConfidence,
		Category:   "generic",
	}
}

func withLocationNote(text string, hindi bool, loc location.Data) string {
	if loc.Name == "" {
		return text
	}
	if hindi {
		return fmt.Sprintf("%s\n\n📍 आपका वर्तमान स्थान: %s, %s", text, loc.Name, loc.State)
	}
	return fmt.Sprintf("%s\n\n📍 Your current location: %s, %s", text, loc.Name, loc.State)
}
