package directory

// Service is one emergency phone service. The lists are reference data and
// never change at runtime.
type Service struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Icon        string `json:"icon"`
	Urgent      bool   `json:"urgent,omitempty"`
	Description string `json:"description,omitempty"`
	TelURI      string `json:"telUri"`
}

func entry(name, number, icon, description string) Service {
	return Service{
		Name:        name,
		Number:      number,
		Icon:        icon,
		Urgent:      true,
		Description: description,
		TelURI:      "tel:" + number,
	}
}

func infoEntry(name, number, icon, description string) Service {
	s := entry(name, number, icon, description)
	s.Urgent = false
	return s
}

// NationalNumbers returns the all-India emergency services.
func NationalNumbers() []Service {
	return []Service{
		entry("Police", "100", "🚓", "For crime, theft, violence, or any law enforcement emergency"),
		entry("Fire Department", "101", "🔥", "For fire emergencies, rescue operations"),
		entry("Ambulance", "102", "🚑", "For medical emergencies and ambulance services"),
		entry("Emergency Services (All)", "112", "🆘", "Universal emergency number for all services"),
		entry("Disaster Management", "108", "⛑️", "For natural disasters and emergency response"),
		entry("Women Helpline", "1091", "👩‍🦱", "For women in distress, domestic violence"),
		entry("Child Helpline", "1098", "👶", "For child abuse, missing children emergencies"),
		entry("Senior Citizens Helpline", "14567", "👴", "For elderly citizens in need of assistance"),
	}
}

// StateSpecialNumbers returns state-level and special-purpose helplines.
func StateSpecialNumbers() []Service {
	return []Service{
		infoEntry("Tourist Helpline", "1363", "🗺️", "For tourist assistance and information"),
		entry("Road Accident Emergency", "1073", "🛣️", "NHAI road accident emergency service"),
		entry("COVID-19 Helpline", "1075", "😷", "For COVID-19 related queries and assistance"),
		entry("Mental Health (KIRAN)", "1800-599-0019", "🧠", "Mental health support and suicide prevention"),
		infoEntry("AIDS Helpline", "1097", "🏥", "For AIDS/HIV related information and support"),
		infoEntry("Central Vigilance Commission", "1964", "🕵️", "For reporting corruption in government offices"),
		entry("Railway Accident Emergency", "1072", "🚂", "For railway accidents and emergencies"),
		entry("Anti-Poison Helpline", "1066", "☠️", "For poisoning emergencies and treatment guidance"),
		entry("Cyber Crime Helpline", "1930", "💻", "For reporting cyber crimes and online fraud"),
		infoEntry("LPG Emergency", "1906", "🔥", "For LPG gas leak and related emergencies"),
		entry("Electricity Emergency", "1912", "⚡", "For power outages and electrical emergencies"),
		infoEntry("Water Emergency", "1916", "💧", "For water supply related emergencies"),
	}
}
