package location

// Coordinates is a latitude/longitude pair from a position fix.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Data identifies the city the user is assisted from. It is replaced as a
// whole on explicit selection or on a successful geolocation fix.
type Data struct {
	Name        string       `json:"name"`
	State       string       `json:"state"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// City is one entry of the fixed selector list.
type City struct {
	Name  string `json:"name"`
	State string `json:"state"`
	Tier  int    `json:"tier"`
}

// Default is the startup location before any selection or detection.
func Default() Data {
	return Data{Name: "Delhi", State: "Delhi"}
}

// Cities returns the fixed list offered by the location selector.
func Cities() []City {
	return []City{
		{Name: "Mumbai", State: "Maharashtra", Tier: 1},
		{Name: "Delhi", State: "Delhi", Tier: 1},
		{Name: "Bangalore", State: "Karnataka", Tier: 1},
		{Name: "Hyderabad", State: "Telangana", Tier: 1},
		{Name: "Chennai", State: "Tamil Nadu", Tier: 1},
		{Name: "Kolkata", State: "West Bengal", Tier: 1},
		{Name: "Pune", State: "Maharashtra", Tier: 1},
		{Name: "Ahmedabad", State: "Gujarat", Tier: 1},
		{Name: "Jaipur", State: "Rajasthan", Tier: 2},
		{Name: "Surat", State: "Gujarat", Tier: 2},
	}
}
