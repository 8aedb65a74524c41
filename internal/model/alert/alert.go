package alert

import "time"

// Alert is one rotating entry of the alert strip.
type Alert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Active    bool      `json:"active"`
}

// QuickPrompt is a one-tap shortcut that pre-fills the chat input.
type QuickPrompt struct {
	Emoji  string `json:"emoji"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// Seed returns the default alert strip entries.
func Seed() []Alert {
	now := time.Now().UTC()
	return []Alert{
		{
			ID:       1,
			Type:     "weather",
			Severity: "high",
			Title:    "Heavy Rainfall Alert",
			Message:  "Heavy rainfall expected in Bangalore. Avoid low-lying areas.",
			Location: "Bangalore, Karnataka", Timestamp: now, Active: true,
		},
		{
			ID:       2,
			Type:     "traffic",
			Severity: "medium",
			Title:    "Road Closure",
			Message:  "Major traffic disruption on Ring Road due to waterlogging.",
			Location: "Delhi NCR", Timestamp: now, Active: true,
		},
	}
}

// QuickPrompts returns the fixed chat shortcut list.
func QuickPrompts() []QuickPrompt {
	return []QuickPrompt{
		{Emoji: "🔥", Title: "House Fire", Prompt: "There is a fire in my house, what should I do immediately?"},
		{Emoji: "🌊", Title: "Flood", Prompt: "My area is flooding, how can I stay safe?"},
		{Emoji: "🫀", Title: "CPR Help", Prompt: "Someone is unconscious and not breathing, how do I perform CPR?"},
		{Emoji: "👮", Title: "Legal Rights", Prompt: "I am being detained by police, what are my rights?"},
		{Emoji: "🏥", Title: "Medical Emergency", Prompt: "Someone had a heart attack, what should I do while waiting for ambulance?"},
		{Emoji: "🌪️", Title: "Natural Disaster", Prompt: "There is an earthquake happening, how do I protect myself?"},
	}
}
