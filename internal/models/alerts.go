package models

// Alert types. An alert matches articles by keyword, source name or author.
const (
	AlertTypeKeyword = "keyword"
	AlertTypeSource  = "source"
	AlertTypeAuthor  = "author"
)

// Alert is a user-defined notification rule. Alerts live in the local
// store, not in Mongo, and carry no server-side validation beyond the type.
type Alert struct {
	ID        string `json:"id"`
	Keyword   string `json:"keyword"`
	Type      string `json:"type"` // keyword, source, author
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}

// AlertSettings is the single document persisted per user: the alert list
// plus a global on/off switch.
type AlertSettings struct {
	Alerts  []Alert `json:"alerts"`
	Enabled bool    `json:"enabled"`
}

// Notifications toggles inside Preferences.
type Notifications struct {
	Breaking bool `json:"breaking"`
	Daily    bool `json:"daily"`
	Weekly   bool `json:"weekly"`
}

// Preferences holds a user's news settings, persisted as one JSON document
// in the local store.
type Preferences struct {
	Categories      []string      `json:"categories"`
	Sources         []string      `json:"sources"`
	Language        string        `json:"language"`
	Region          string        `json:"region"`
	RefreshInterval int           `json:"refreshInterval"`
	Notifications   Notifications `json:"notifications"`
	DarkMode        bool          `json:"darkMode"`
	AutoRefresh     bool          `json:"autoRefresh"`
}

// DefaultPreferences returns the initial settings for a user who has never
// saved any.
func DefaultPreferences() Preferences {
	return Preferences{
		Categories:      []string{"general", "technology", "science"},
		Sources:         []string{"bbc-news", "the-verge", "reuters"},
		Language:        "en",
		Region:          "us",
		RefreshInterval: 30,
		Notifications:   Notifications{Breaking: true, Daily: true},
		AutoRefresh:     true,
	}
}
