package ui

import "charm.land/lipgloss/v2"

// Color palette - Sky + Indigo theme
var (
	ColorPrimary     = lipgloss.Color("#38BDF8") // Sky blue
	ColorSecondary   = lipgloss.Color("#818CF8") // Indigo
	ColorMuted       = lipgloss.Color("#94A3B8") // Slate gray
	ColorBorder      = lipgloss.Color("#334155") // Dark slate
	ColorBorderFocus = lipgloss.Color("#38BDF8") // Sky when focused
	ColorBg          = lipgloss.Color("#0F172A") // Dark background
	ColorText        = lipgloss.Color("#F1F5F9") // Light text
	ColorTextMuted   = lipgloss.Color("#94A3B8") // Muted text
	ColorTextInverse = lipgloss.Color("#0F172A") // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#7DD3FC") // Light sky for user messages
	ColorAssistant   = lipgloss.Color("#A5B4FC") // Light indigo for assistant messages
	ColorWarning     = lipgloss.Color("#FBBF24") // Amber for warnings
	ColorInfo        = lipgloss.Color("#38BDF8") // Sky for info/suggestions
	ColorError       = lipgloss.Color("#F87171") // Red for errors
	ColorSuccess     = lipgloss.Color("#4ADE80") // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Sidebar styles
var (
	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)

	SidebarTimeStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
				Foreground(ColorAssistant).
				Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ChatTimestampStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	ChatEditedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)

	ChatInputEditStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorWarning).
				Padding(0, 1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Suggestion styles (assistant "try asking for..." messages)
var (
	SuggestionBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorInfo).
				Padding(0, 1)
)

// Text selection style (updated by regenerateStyles)
var (
	TextSelectionStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].TextSelectionBg)).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].TextSelectionFg))

	// TextSelectionFlashStyle is used briefly when text is copied to indicate success
	// (updated by regenerateStyles)
	TextSelectionFlashStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].Success)).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse))
)

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	// Update header styles
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update panel styles
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	// Update sidebar styles
	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	SidebarTimeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	// Update chat styles
	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatTimestampStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ChatEditedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ChatInputEditStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(0, 1)

	// Update status styles
	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Update suggestion styles
	SuggestionBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorInfo).
		Padding(0, 1)

	// Update text selection styles
	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.TextSelectionBg)).
		Foreground(lipgloss.Color(t.TextSelectionFg))

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.Success)).
		Foreground(lipgloss.Color(t.TextInverse))
}
