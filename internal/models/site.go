package models

type NavLink struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

type OpeningHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type GymInfo struct {
	Name         string         `json:"name"`
	Tagline      string         `json:"tagline"`
	AddressLines []string       `json:"address_lines"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Hours        []OpeningHours `json:"hours"`
	MapEmbedURL  string         `json:"map_embed_url"`
}
