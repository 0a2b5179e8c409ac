package models

type ClassOffering struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Trainer     string   `json:"trainer"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Benefits    []string `json:"benefits"`
	Schedule    []string `json:"schedule"`
}

type Category struct {
	Name         string `json:"name"`
	DisplayCount string `json:"display_count"`
	Tooltip      string `json:"tooltip"`
}

// CategoryAudit compares a category's authored count label with the class
// records that actually carry it.
type CategoryAudit struct {
	Category
	ClassCount    int  `json:"class_count"`
	CountMismatch bool `json:"count_mismatch"`
}

type FeaturedStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FeaturedCategory struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Stats       []FeaturedStat `json:"stats"`
}

type Trainer struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Experience     string   `json:"experience"`
	Image          string   `json:"image"`
	Bio            string   `json:"bio"`
	Certifications []string `json:"certifications"`
	Schedule       []string `json:"schedule"`
	Instagram      string   `json:"instagram"`
	Achievements   []string `json:"achievements"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
