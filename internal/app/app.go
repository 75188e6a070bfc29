// Package app wires the conversation stores, the layout controller, and the
// UI components into the root Bubble Tea model.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"chatdeck/internal/config"
	"chatdeck/internal/conversation"
	"chatdeck/internal/layout"
	"chatdeck/internal/logger"
	"chatdeck/internal/sample"
	"chatdeck/internal/ui"
)

// Focus represents which pane has keyboard focus
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
	FocusPanel
)

// cellPx maps the pixel-based layout contract onto terminal cells. Panel
// widths and the responsive breakpoint are specified in pixels; one terminal
// cell stands in for roughly this many.
const cellPx = 10

// ReplyDeliveredMsg is sent when a scheduled assistant reply's delay elapses
type ReplyDeliveredMsg struct {
	ConversationID string
	Pending        conversation.PendingReply
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	panel   *ui.SidePanel

	controller *layout.Controller

	// One store per conversation; only the active one is rendered
	stores   map[string]*conversation.Store
	activeID string

	width  int
	height int
	focus  Focus

	windowFocused bool // Whether the terminal window has OS focus
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		sidebar:       ui.NewSidebar(),
		chat:          ui.NewChat(),
		panel:         ui.NewSidePanel(),
		controller:    layout.NewController(),
		stores:        make(map[string]*conversation.Store),
		focus:         FocusChat,
		windowFocused: true,
	}

	m.sidebar.SetConversations(sample.Conversations())

	active := sample.DefaultConversation()
	m.activeID = active.ID
	m.sidebar.Select(active.ID)
	m.sidebar.MarkRead(active.ID)
	m.header.SetConversationTitle(active.Title)

	m.storeFor(active.ID)

	if !cfg.GetWelcomeShown() {
		cfg.SetWelcomeShown()
		if err := cfg.Save(); err != nil {
			logger.Warn("App: could not persist welcome flag: %v", err)
		}
	}

	m.chat.SetFocused(true)
	m.syncConversation()

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// activeStore returns the store for the active conversation
func (m *Model) activeStore() *conversation.Store {
	return m.storeFor(m.activeID)
}

// storeFor returns the store for a conversation, creating it on first use.
// Every conversation opens with the demo exchange.
func (m *Model) storeFor(id string) *conversation.Store {
	if s, ok := m.stores[id]; ok {
		return s
	}
	s := conversation.NewStore(id,
		conversation.WithReplyDelay(m.config.ReplyDelay()),
		conversation.WithSeed(sample.InitialMessages()),
	)
	m.stores[id] = s
	return s
}

// setFocus moves keyboard focus to a pane
func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)
	m.chat.SetFocused(f == FocusChat)
	m.panel.SetFocused(f == FocusPanel)
}

// toggleFocus cycles focus through the visible panes
func (m *Model) toggleFocus() {
	switch m.focus {
	case FocusSidebar:
		m.setFocus(FocusChat)
	case FocusChat:
		if m.panel.IsOpen() {
			m.setFocus(FocusPanel)
		} else if m.controller.SidebarOpen() {
			m.setFocus(FocusSidebar)
		}
	case FocusPanel:
		if m.controller.SidebarOpen() {
			m.setFocus(FocusSidebar)
		} else {
			m.setFocus(FocusChat)
		}
	}
}

// syncConversation refreshes the chat, header, and sidebar from the active
// store
func (m *Model) syncConversation() {
	store := m.activeStore()
	m.chat.SetMessages(store.Messages())
	m.chat.SetTyping(store.Typing())
	m.header.SetTyping(store.Typing())
	if !store.Typing() {
		m.sidebar.SetTypingConversation("")
	}
}

// selectConversation switches the active conversation
func (m *Model) selectConversation(c sample.ConversationSummary) {
	if c.ID == m.activeID {
		m.setFocus(FocusChat)
		return
	}

	logger.Debug("App: switching conversation %s -> %s", m.activeID, c.ID)
	m.activeID = c.ID
	m.sidebar.MarkRead(c.ID)
	m.header.SetConversationTitle(c.Title)
	m.chat.CancelEdit()
	m.chat.SelectionClear()
	m.syncConversation()
	m.chat.ScrollToBottom()
	m.setFocus(FocusChat)
}

// newConversation starts a fresh conversation seeded with the demo opening
func (m *Model) newConversation() {
	c := sample.NewConversation()

	m.sidebar.AddConversation(c)
	m.activeID = c.ID
	m.header.SetConversationTitle(c.Title)
	m.storeFor(c.ID)

	m.chat.CancelEdit()
	m.chat.SelectionClear()
	m.syncConversation()
	m.chat.ScrollToBottom()
	m.setFocus(FocusChat)
}

// openPanel toggles a side panel and synchronizes the panel component
func (m *Model) openPanel(id layout.PanelID) {
	m.controller.TogglePanel(id)
	m.syncPanel()
}

// closePanel closes any open panel and returns focus to the chat
func (m *Model) closePanel() {
	m.controller.ClosePanel()
	m.syncPanel()
	if m.focus == FocusPanel {
		m.setFocus(FocusChat)
	}
}

// syncPanel reconciles the panel component with the layout controller
func (m *Model) syncPanel() {
	active := m.controller.ActivePanel()
	if active == layout.PanelNone {
		m.panel.Close()
		if m.focus == FocusPanel {
			m.setFocus(FocusChat)
		}
		m.updateSizes()
		return
	}

	if active == layout.PanelCode {
		store := m.activeStore()
		language := ""
		if msg := m.chat.LastCodeMessage(); msg != nil {
			language = msg.Language
		}
		m.panel.SetCode(store.Code(), language)
	}
	m.panel.Open(m.controller.Panel(active))
	m.updateSizes()
}

// scheduleReply returns a command that delivers a pending reply after its
// simulated latency.
func scheduleReply(conversationID string, p conversation.PendingReply) tea.Cmd {
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return ReplyDeliveredMsg{ConversationID: conversationID, Pending: p}
	})
}

// sendMessage submits the chat input to the active conversation
func (m *Model) sendMessage() tea.Cmd {
	if m.chat.IsEditing() {
		return m.saveEdit()
	}

	text := m.chat.GetInput()
	if text == "" {
		return nil
	}

	store := m.activeStore()
	pending := store.Submit(text)
	if pending == nil {
		return nil
	}

	m.chat.ClearInput()
	m.sidebar.SetPreview(m.activeID, text)
	m.sidebar.SetTypingConversation(m.activeID)
	m.syncConversation()
	m.chat.ScrollToBottom()

	return tea.Batch(
		scheduleReply(m.activeID, *pending),
		ui.TypingTick(),
		ui.SidebarTick(),
	)
}

// saveEdit applies the in-progress edit to its message
func (m *Model) saveEdit() tea.Cmd {
	id := m.chat.EditingID()
	text := m.chat.GetInput()
	if text == "" {
		return nil
	}

	if m.activeStore().Edit(id, text) {
		m.sidebar.SetPreview(m.activeID, text)
	}
	m.chat.CancelEdit()
	m.syncConversation()
	return nil
}

// editLast starts editing the most recent user message
func (m *Model) editLast() {
	msg := m.chat.LastUserMessage()
	if msg == nil {
		return
	}
	m.chat.StartEdit(msg.ID, msg.Content)
	m.setFocus(FocusChat)
}

// retryLast regenerates the most recent assistant reply
func (m *Model) retryLast() tea.Cmd {
	store := m.activeStore()

	messages := store.Messages()
	var lastAssistant string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender == conversation.SenderAssistant {
			lastAssistant = messages[i].ID
			break
		}
	}
	if lastAssistant == "" {
		return nil
	}

	pending := store.Retry(lastAssistant)
	if pending == nil {
		return nil
	}

	m.sidebar.SetTypingConversation(m.activeID)
	m.syncConversation()
	m.chat.ScrollToBottom()

	return tea.Batch(
		scheduleReply(m.activeID, *pending),
		ui.TypingTick(),
		ui.SidebarTick(),
	)
}
