package models

import "strings"

// Branch is static reference data; orders, dishes and staff point at it by ID.
type Branch struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	OpeningHours string  `json:"opening_hours"`
}

var Branches = []Branch{
	{ID: "br1", Name: "Banjara Hills", Address: "Road No. 12, Banjara Hills, Hyderabad", Latitude: 17.4156, Longitude: 78.4347, OpeningHours: "11:00 AM - 11:00 PM"},
	{ID: "br2", Name: "Jubilee Hills", Address: "Road No. 36, Jubilee Hills, Hyderabad", Latitude: 17.4326, Longitude: 78.4071, OpeningHours: "11:00 AM - 11:00 PM"},
	{ID: "br3", Name: "Gachibowli", Address: "DLF Road, Gachibowli, Hyderabad", Latitude: 17.4401, Longitude: 78.3489, OpeningHours: "11:00 AM - 11:00 PM"},
	{ID: "br4", Name: "Madhapur", Address: "Hitech City Road, Madhapur, Hyderabad", Latitude: 17.4483, Longitude: 78.3915, OpeningHours: "11:00 AM - 11:00 PM"},
	{ID: "br5", Name: "Kondapur", Address: "Botanical Garden Road, Kondapur, Hyderabad", Latitude: 17.4700, Longitude: 78.3578, OpeningHours: "11:00 AM - 11:00 PM"},
}

func FindBranch(id string) (Branch, bool) {
	for _, b := range Branches {
		if b.ID == id {
			return b, true
		}
	}
	return Branch{}, false
}

// BranchesWithNames returns the branch list with display-name overrides applied.
func BranchesWithNames(names map[string]string) []Branch {
	out := make([]Branch, len(Branches))
	copy(out, Branches)
	for i := range out {
		if name := strings.TrimSpace(names[out[i].ID]); name != "" {
			out[i].Name = name
		}
	}
	return out
}
