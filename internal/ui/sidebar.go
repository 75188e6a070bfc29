package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"chatdeck/internal/keys"
	"chatdeck/internal/sample"
)

// SidebarTickMsg is sent to advance the spinner animation
type SidebarTickMsg time.Time

// Sidebar represents the left panel with the conversation list
type Sidebar struct {
	conversations []sample.ConversationSummary
	filtered      []sample.ConversationSummary // conversations matching the search filter
	selectedIdx   int
	width         int
	height        int
	focused       bool
	scrollOffset  int

	typingConversation string // ID of the conversation waiting on a reply, "" when none
	spinner            *SpinnerState

	user sample.User

	// Search mode
	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = SidebarSearchCharLimit

	return &Sidebar{
		searchInput: ti,
		spinner:     NewSpinnerState(),
		user:        sample.DemoUser,
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetConversations updates the conversation list
func (s *Sidebar) SetConversations(conversations []sample.ConversationSummary) {
	s.conversations = conversations
	if s.selectedIdx >= len(s.conversations) {
		s.selectedIdx = len(s.conversations) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// AddConversation inserts a conversation at the top of the list and selects it
func (s *Sidebar) AddConversation(c sample.ConversationSummary) {
	s.conversations = append([]sample.ConversationSummary{c}, s.conversations...)
	s.selectedIdx = 0
	s.scrollOffset = 0
}

// SetTypingConversation marks the conversation that is waiting on a reply.
// Pass "" to clear.
func (s *Sidebar) SetTypingConversation(id string) {
	s.typingConversation = id
}

// IsTyping returns whether any conversation is waiting on a reply
func (s *Sidebar) IsTyping() bool {
	return s.typingConversation != ""
}

// Selected returns the currently selected conversation, or nil.
func (s *Sidebar) Selected() *sample.ConversationSummary {
	list := s.visible()
	if s.selectedIdx < 0 || s.selectedIdx >= len(list) {
		return nil
	}
	c := list[s.selectedIdx]
	return &c
}

// Select selects a conversation by ID
func (s *Sidebar) Select(id string) {
	for i, c := range s.visible() {
		if c.ID == id {
			s.selectedIdx = i
			return
		}
	}
}

// MarkRead clears the unread flag on a conversation
func (s *Sidebar) MarkRead(id string) {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			s.conversations[i].Unread = false
		}
	}
}

// SetPreview updates a conversation's preview line (latest user message)
func (s *Sidebar) SetPreview(id, preview string) {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			s.conversations[i].Preview = preview
			s.conversations[i].Timestamp = time.Now()
		}
	}
}

// visible returns the conversations currently shown (filtered or all)
func (s *Sidebar) visible() []sample.ConversationSummary {
	if s.searchMode && s.filtered != nil {
		return s.filtered
	}
	return s.conversations
}

// SidebarTick returns a command that sends a tick message after a delay
func SidebarTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return SidebarTickMsg(t)
	})
}

// EnterSearchMode activates search mode
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	s.searchInput.SetValue("")
	s.searchInput.Focus()
	s.applyFilter("")
	return nil
}

// ExitSearchMode deactivates search mode and clears the filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.filtered = nil
	if s.selectedIdx >= len(s.conversations) {
		s.selectedIdx = len(s.conversations) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// IsSearchMode returns whether search mode is active
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// applyFilter filters conversations by title and preview
func (s *Sidebar) applyFilter(query string) {
	if query == "" {
		s.filtered = nil
		return
	}

	query = strings.ToLower(query)
	s.filtered = nil

	for _, c := range s.conversations {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Preview), query) {
			s.filtered = append(s.filtered, c)
		}
	}

	if len(s.filtered) > 0 && s.selectedIdx >= len(s.filtered) {
		s.selectedIdx = len(s.filtered) - 1
	}
	if len(s.filtered) == 0 {
		s.selectedIdx = 0
	}
	s.scrollOffset = 0
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case SidebarTickMsg:
		if s.IsTyping() {
			s.spinner.Advance()
			return s, SidebarTick()
		}
		return s, nil

	case tea.KeyPressMsg:
		if !s.focused {
			return s, nil
		}

		if s.searchMode {
			switch msg.String() {
			case keys.Escape:
				s.ExitSearchMode()
				return s, nil
			case keys.Enter:
				// Exit search mode but keep the filter applied
				s.searchMode = false
				s.searchInput.Blur()
				return s, nil
			case keys.Up:
				if s.selectedIdx > 0 {
					s.selectedIdx--
				}
				return s, nil
			case keys.Down:
				if s.selectedIdx < len(s.visible())-1 {
					s.selectedIdx++
				}
				return s, nil
			default:
				var cmd tea.Cmd
				s.searchInput, cmd = s.searchInput.Update(msg)
				s.applyFilter(s.searchInput.Value())
				return s, cmd
			}
		}

		switch msg.String() {
		case keys.Up, "k":
			if s.selectedIdx > 0 {
				s.selectedIdx--
			}
		case keys.Down, "j":
			if s.selectedIdx < len(s.visible())-1 {
				s.selectedIdx++
			}
		case "/":
			return s, s.EnterSearchMode()
		}
	}

	return s, nil
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	var sections []string

	// Search line when in search mode
	if s.searchMode {
		searchStyle := lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
		s.searchInput.SetWidth(innerWidth - 3) // Leave room for "/ "
		sections = append(sections, searchStyle.Render("/")+" "+s.searchInput.View())
		innerHeight--
	}

	list := s.visible()
	if len(list) == 0 {
		empty := "No conversations."
		if s.searchMode && s.searchInput.Value() != "" {
			empty = "No matches."
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(empty))
	}

	// Two lines per conversation: title row and preview row
	userFooterHeight := 2
	listHeight := innerHeight - userFooterHeight
	var lines []string
	selectedStartLine := 0

	for idx, conv := range list {
		isSelected := idx == s.selectedIdx

		title := s.renderTitleRow(conv, isSelected, innerWidth)
		preview := s.renderPreviewRow(conv, isSelected, innerWidth)

		if isSelected {
			selectedStartLine = len(lines)
		}
		lines = append(lines, title, preview)
	}

	// Keep the selected conversation visible
	if selectedStartLine < s.scrollOffset {
		s.scrollOffset = selectedStartLine
	} else if selectedStartLine+1 >= s.scrollOffset+listHeight {
		s.scrollOffset = selectedStartLine + 2 - listHeight
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	maxScroll := len(lines) - listHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}

	if s.scrollOffset > 0 && s.scrollOffset < len(lines) {
		lines = lines[s.scrollOffset:]
	}
	if listHeight > 0 && len(lines) > listHeight {
		lines = lines[:listHeight]
	}
	if len(lines) > 0 {
		sections = append(sections, strings.Join(lines, "\n"))
	}

	// Pad so the user footer sits at the bottom
	content := strings.Join(sections, "\n")
	contentLines := strings.Count(content, "\n") + 1
	padding := innerHeight - userFooterHeight - contentLines
	if padding > 0 {
		content += strings.Repeat("\n", padding)
	}

	content += "\n" + s.renderUserFooter(innerWidth)

	return style.Width(s.width).Height(s.height).Render(content)
}

// renderTitleRow renders a conversation's title line with its status markers.
func (s *Sidebar) renderTitleRow(conv sample.ConversationSummary, isSelected bool, innerWidth int) string {
	var marker string
	switch {
	case conv.ID == s.typingConversation:
		marker = s.spinner.Frame()
	case conv.Unread:
		marker = "●"
	default:
		marker = " "
	}

	timeLabel := relativeTime(conv.Timestamp)

	// Truncate the title to fit next to the marker and timestamp
	avail := innerWidth - runewidth.StringWidth(marker) - runewidth.StringWidth(timeLabel) - 4
	title := runewidth.Truncate(conv.Title, avail, "…")

	pad := innerWidth - runewidth.StringWidth(marker) - runewidth.StringWidth(title) - runewidth.StringWidth(timeLabel) - 4
	if pad < 0 {
		pad = 0
	}

	if isSelected {
		row := fmt.Sprintf("%s %s%s%s", marker, title, strings.Repeat(" ", pad+1), timeLabel)
		return SidebarSelectedStyle.Width(innerWidth).Render(row)
	}

	markerStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	if conv.Unread {
		markerStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	}
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(conv.Unread)

	return " " + markerStyle.Render(marker) + " " + titleStyle.Render(title) +
		strings.Repeat(" ", pad) + SidebarTimeStyle.Render(timeLabel)
}

// renderPreviewRow renders a conversation's preview line.
func (s *Sidebar) renderPreviewRow(conv sample.ConversationSummary, isSelected bool, innerWidth int) string {
	preview := runewidth.Truncate(conv.Preview, innerWidth-4, "…")
	if isSelected {
		return SidebarSelectedStyle.Width(innerWidth).Render("   " + preview)
	}
	return "   " + lipgloss.NewStyle().Foreground(ColorTextMuted).Render(preview)
}

// renderUserFooter renders the signed-in user at the bottom of the sidebar.
func (s *Sidebar) renderUserFooter(innerWidth int) string {
	sep := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", innerWidth))

	statusStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	nameStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	name := runewidth.Truncate(s.user.Name, innerWidth-4, "…")
	return sep + "\n " + statusStyle.Render("●") + " " + nameStyle.Render(name)
}

// relativeTime formats a timestamp relative to now (e.g., "2h", "3d").
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
