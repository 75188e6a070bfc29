package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"chatdeck/internal/conversation"
	"chatdeck/internal/logger"
)

// Chat represents the center panel with the conversation view and input.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool
	messages []conversation.Message

	typing      bool      // A reply is pending
	typingStart time.Time // When the pending reply was submitted
	spinner     *SpinnerState

	// Edit mode: non-empty when the input is editing an existing message
	editingID string

	// Mouse text selection
	selection *TextSelection
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = MaxMessageLength
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:  vp,
		input:     ti,
		spinner:   NewSpinnerState(),
		selection: NewTextSelection(),
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	// Chat panel height (excluding input area which is separate)
	chatPanelHeight := height - InputTotalHeight

	innerWidth := ctx.InnerWidth(width)
	viewportHeight := ctx.InnerHeight(chatPanelHeight)

	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	inputInnerWidth := ctx.InnerWidth(width) - InputPaddingWidth
	c.input.SetWidth(inputInnerWidth)

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the displayed message log.
func (c *Chat) SetMessages(messages []conversation.Message) {
	c.messages = messages
	c.updateContent()
}

// Messages returns the displayed message log.
func (c *Chat) Messages() []conversation.Message {
	return c.messages
}

// SetTyping sets whether a reply is pending. The typing indicator and its
// stopwatch run while this is true.
func (c *Chat) SetTyping(typing bool) {
	if typing && !c.typing {
		c.typingStart = time.Now()
		c.spinner.Idx = 0
		c.spinner.Tick = 0
	}
	c.typing = typing
	c.updateContent()
}

// IsTyping returns whether the typing indicator is showing
func (c *Chat) IsTyping() bool {
	return c.typing
}

// GetInput returns the current input text, trimmed
func (c *Chat) GetInput() string {
	val := strings.TrimSpace(c.input.Value())
	logger.Debug("Chat.GetInput: value=%q, len=%d", val, len(val))
	return val
}

// ClearInput clears the input field
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the input field value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// StartEdit puts the input into edit mode for the given message.
func (c *Chat) StartEdit(messageID, content string) {
	c.editingID = messageID
	c.input.SetValue(content)
	c.input.Focus()
}

// CancelEdit leaves edit mode without saving, clearing the input.
func (c *Chat) CancelEdit() {
	c.editingID = ""
	c.input.Reset()
}

// EditingID returns the ID of the message being edited, or "" when not editing.
func (c *Chat) EditingID() string {
	return c.editingID
}

// IsEditing returns whether the input is in edit mode
func (c *Chat) IsEditing() bool {
	return c.editingID != ""
}

// LastUserMessage returns the most recent user message, or nil.
func (c *Chat) LastUserMessage() *conversation.Message {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Sender == conversation.SenderUser {
			m := c.messages[i]
			return &m
		}
	}
	return nil
}

// LastCodeMessage returns the most recent code message, or nil.
func (c *Chat) LastCodeMessage() *conversation.Message {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].IsCode() {
			m := c.messages[i]
			return &m
		}
	}
	return nil
}

// ScrollToBottom scrolls the viewport to the latest message
func (c *Chat) ScrollToBottom() {
	c.viewport.GotoBottom()
}

func (c *Chat) updateContent() {
	var sb strings.Builder

	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if len(c.messages) == 0 && !c.typing {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("Start a conversation..."))
	} else {
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(c.renderMessage(msg, wrapWidth))
		}

		if c.typing {
			if len(c.messages) > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(renderTypingIndicator(c.spinner.Idx, time.Since(c.typingStart)))
		}
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// renderMessage renders a single message with its sender label and content.
func (c *Chat) renderMessage(msg conversation.Message, wrapWidth int) string {
	var sb strings.Builder

	var roleStyle lipgloss.Style
	var roleName string
	switch msg.Sender {
	case conversation.SenderUser:
		roleStyle = ChatUserStyle
		roleName = "You"
	case conversation.SenderSystem:
		roleStyle = ChatTimestampStyle
		roleName = "System"
	default:
		roleStyle = ChatAssistantStyle
		roleName = "Assistant"
	}

	sb.WriteString(roleStyle.Render(roleName))
	if !msg.Timestamp.IsZero() {
		sb.WriteString(" ")
		sb.WriteString(ChatTimestampStyle.Render(msg.Timestamp.Format("15:04")))
	}
	sb.WriteString("\n")

	switch {
	case msg.IsCode():
		sb.WriteString(renderCodeMessage(msg, wrapWidth))
	case msg.Type == conversation.TypeSuggestion:
		boxWidth := wrapWidth
		if boxWidth > 60 {
			boxWidth = 60
		}
		sb.WriteString(SuggestionBoxStyle.Width(boxWidth).Render(
			renderMarkdown(strings.TrimSpace(msg.Content), boxWidth-BorderSize)))
	default:
		sb.WriteString(renderMarkdown(strings.TrimSpace(msg.Content), wrapWidth))
	}

	return sb.String()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case TypingTickMsg:
		cmds = append(cmds, c.handleTypingTick())
		return c, tea.Batch(cmds...)
	case SelectionFlashTickMsg:
		cmds = append(cmds, c.handleSelectionFlashTick())
		return c, tea.Batch(cmds...)
	}

	if c.focused {
		// Scroll keys bypass the input
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end",
				"page up", "page down", "ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				cmds = append(cmds, cmd)
				return c, tea.Batch(cmds...)
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Don't pass key events to the viewport while typing in the input;
		// spacebar and arrows would scroll otherwise.
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	viewportContent := c.selectionView(c.viewport.View())

	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(viewportContent)

	inputStyle := ChatInputStyle
	if c.IsEditing() {
		inputStyle = ChatInputEditStyle
	} else if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
