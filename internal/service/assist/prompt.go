package assist

import (
	"fmt"
	"strings"

	"github.com/civishield/civi-shield/backend/internal/i18n"
	"github.com/civishield/civi-shield/backend/internal/model/location"
)

// languageName resolves a code to the prompt-facing language name.
func languageName(code string) string {
	for _, lang := range i18n.Languages() {
		if lang.Code == code {
			return lang.Name
		}
	}
	return "English"
}

// buildPrompt concatenates the system framing and the user query into the
// single prompt string the completion endpoint expects.
func buildPrompt(query, languageCode string, loc location.Data) string {
	var b strings.Builder

	b.WriteString("You are CIVI-SHIELD, an emergency assistance AI for Indian citizens. ")
	b.WriteString("Give short, actionable safety guidance. Always include the relevant Indian emergency number ")
	b.WriteString("(Police 100, Fire 101, Ambulance 102, Disaster 108, universal 112) when it applies. ")
	b.WriteString("If a situation is life-threatening, tell the user to call 112 first.\n\n")

	fmt.Fprintf(&b, "Respond in %s.\n", languageName(languageCode))
	if loc.Name != "" {
		fmt.Fprintf(&b, "The user is in %s, %s. Prefer guidance and services relevant there.\n", loc.Name, loc.State)
	}

	b.WriteString("\nUser query: ")
	b.WriteString(query)

	return b.String()
}
