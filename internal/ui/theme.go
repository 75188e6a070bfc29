// Theme management for the application. Themes define the color palette used
// throughout the UI, allowing users to customize the visual appearance of
// ChatDeck.
package ui

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for assistant messages, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string // Warnings
	Error     string // Error messages
	Success   string // Success states, copy confirmation
	Info      string // Information, suggestions

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Code rendering
	CodeBg string // Code block background

	// Text selection
	TextSelectionBg string // Selection highlight background
	TextSelectionFg string // Selection highlight foreground
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDark    ThemeName = "dark"
	ThemeLight   ThemeName = "light"
	ThemeNord    ThemeName = "nord"
	ThemeDracula ThemeName = "dracula"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDark

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDark: {
		Name:            "Dark",
		Primary:         "#38BDF8",
		Secondary:       "#818CF8",
		Bg:              "#0F172A",
		BgSelected:      "#1E3A5F",
		Text:            "#F1F5F9",
		TextMuted:       "#94A3B8",
		TextInverse:     "#0F172A",
		User:            "#7DD3FC",
		Assistant:       "#A5B4FC",
		Warning:         "#FBBF24",
		Error:           "#F87171",
		Success:         "#4ADE80",
		Info:            "#38BDF8",
		Border:          "#334155",
		CodeBg:          "#1E293B",
		TextSelectionBg: "#1E3A5F",
		TextSelectionFg: "#F1F5F9",
	},
	ThemeLight: {
		Name:            "Light",
		Primary:         "#0EA5E9",
		Secondary:       "#6366F1",
		Bg:              "#FFFFFF",
		BgSelected:      "#E0F2FE",
		Text:            "#1F2937",
		TextMuted:       "#6B7280",
		TextInverse:     "#FFFFFF",
		User:            "#0284C7",
		Assistant:       "#4F46E5",
		Warning:         "#F59E0B",
		Error:           "#EF4444",
		Success:         "#22C55E",
		Info:            "#0EA5E9",
		Border:          "#D1D5DB",
		BorderFocus:     "#0EA5E9",
		CodeBg:          "#F3F4F6",
		TextSelectionBg: "#BAE6FD",
		TextSelectionFg: "#1F2937",
	},
	ThemeNord: {
		Name:            "Nord",
		Primary:         "#88C0D0",
		Secondary:       "#81A1C1",
		Bg:              "#2E3440",
		Text:            "#ECEFF4",
		TextMuted:       "#D8DEE9",
		TextInverse:     "#2E3440",
		User:            "#A3BE8C",
		Assistant:       "#88C0D0",
		Warning:         "#EBCB8B",
		Error:           "#BF616A",
		Success:         "#A3BE8C",
		Info:            "#81A1C1",
		Border:          "#4C566A",
		CodeBg:          "#242933",
		TextSelectionBg: "#4C566A",
		TextSelectionFg: "#ECEFF4",
	},
	ThemeDracula: {
		Name:            "Dracula",
		Primary:         "#BD93F9",
		Secondary:       "#8BE9FD",
		Bg:              "#282A36",
		Text:            "#F8F8F2",
		TextMuted:       "#6272A4",
		TextInverse:     "#282A36",
		User:            "#FF79C6",
		Assistant:       "#8BE9FD",
		Warning:         "#FFB86C",
		Error:           "#FF5555",
		Success:         "#50FA7B",
		Info:            "#8BE9FD",
		Border:          "#44475A",
		CodeBg:          "#21222C",
		TextSelectionBg: "#44475A",
		TextSelectionFg: "#F8F8F2",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDark,
		ThemeLight,
		ThemeNord,
		ThemeDracula,
	}
}

// GetTheme returns a theme by name, defaulting to Dark if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}
