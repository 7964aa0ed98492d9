package settings

// Theme is the display theme tag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings are the app-level preferences. They live independently of the user
// profile and default to the light theme when nothing is stored.
type Settings struct {
	Theme Theme `json:"theme"`
}

// Default is what reads fall back to when the record is absent or unreadable.
func Default() Settings {
	return Settings{Theme: ThemeLight}
}
