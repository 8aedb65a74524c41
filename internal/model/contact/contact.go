package contact

// FamilyContact is a user-added emergency contact. Duplicates by name or
// number are allowed; only the id is unique.
type FamilyContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Number       string `json:"number"`
	Relationship string `json:"relationship,omitempty"`
}
