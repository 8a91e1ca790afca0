package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type ThemeRepository interface {
	Save(theme Theme) error
	// Load returns the stored preference, or ThemeLight when none exists.
	Load() (Theme, error)
}
