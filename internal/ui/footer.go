package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width          int
	bindings       []KeyBinding
	sidebarFocused bool // Whether sidebar has focus
	editMode       bool // Whether the input is editing an existing message
	panelOpen      bool // Whether a side panel is open
	typing         bool // Whether a reply is pending
	compact        bool // Whether the terminal is below the compact breakpoint
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+e", Desc: "code"},
			{Key: "ctrl+g", Desc: "graph"},
			{Key: "ctrl+f", Desc: "files"},
			{Key: "ctrl+t", Desc: "ai features"},
			{Key: "ctrl+b", Desc: "sidebar"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sidebarFocused, editMode, panelOpen, typing, compact bool) {
	f.sidebarFocused = sidebarFocused
	f.editMode = editMode
	f.panelOpen = panelOpen
	f.typing = typing
	f.compact = compact
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	var active []KeyBinding

	switch {
	case f.editMode:
		active = []KeyBinding{
			{Key: "enter", Desc: "save edit"},
			{Key: "esc", Desc: "cancel"},
		}
	case f.sidebarFocused:
		active = []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "ctrl+n", Desc: "new chat"},
			{Key: "/", Desc: "search"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "q", Desc: "quit"},
		}
	case f.panelOpen:
		active = []KeyBinding{
			{Key: "esc", Desc: "close panel"},
			{Key: "shift+←/→", Desc: "resize"},
			{Key: "ctrl+y", Desc: "copy code"},
			{Key: "tab", Desc: "switch pane"},
		}
	case f.typing:
		active = []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	default:
		active = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+r", Desc: "retry"},
			{Key: "ctrl+x", Desc: "edit last"},
			{Key: "ctrl+e", Desc: "code"},
			{Key: "ctrl+g", Desc: "graph"},
			{Key: "ctrl+f", Desc: "files"},
			{Key: "ctrl+t", Desc: "ai"},
			{Key: "ctrl+b", Desc: "sidebar"},
			{Key: "tab", Desc: "switch pane"},
		}
		// Narrow terminals get the short list
		if f.compact {
			active = []KeyBinding{
				{Key: "enter", Desc: "send"},
				{Key: "ctrl+r", Desc: "retry"},
				{Key: "ctrl+b", Desc: "sidebar"},
				{Key: "tab", Desc: "switch pane"},
			}
		}
	}

	var parts []string
	for _, b := range active {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
