package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width             int
	conversationTitle string
	typing            bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetConversationTitle sets the active conversation title to display
func (h *Header) SetConversationTitle(title string) {
	h.conversationTitle = title
}

// SetTyping sets whether a reply is currently pending, shown as a status hint
func (h *Header) SetTyping(typing bool) {
	h.typing = typing
}

// View renders the header
func (h *Header) View() string {
	titleText := " chatdeck"
	var rightText string
	if h.conversationTitle != "" {
		rightText = h.conversationTitle
		if h.typing {
			rightText += " (typing…)"
		}
		rightText += " "
	}

	// Calculate padding
	paddingLen := h.width - len(titleText) - len([]rune(rightText))
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#38BDF8") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background
// fading from the primary color into the main background.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(textColor).
			Bold(i < len(titlePrefix))

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}

// titlePrefix is the bolded portion of the header (" chatdeck")
const titlePrefix = " chatdeck"
