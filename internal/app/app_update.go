package app

import (
	tea "charm.land/bubbletea/v2"

	"chatdeck/internal/clipboard"
	"chatdeck/internal/conversation"
	"chatdeck/internal/keys"
	"chatdeck/internal/layout"
	"chatdeck/internal/logger"
	"chatdeck/internal/notification"
	"chatdeck/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.FocusMsg:
		m.windowFocused = true
		logger.Debug("App: window focused")

	case tea.BlurMsg:
		m.windowFocused = false
		logger.Debug("App: window blurred")

	case tea.KeyPressMsg:
		if model, cmd, handled := m.handleKeyPress(msg); handled {
			return model, cmd
		}
		return m.routeToFocused(msg)

	case ReplyDeliveredMsg:
		return m.handleReplyDelivered(msg)

	case ui.TypingTickMsg, ui.SelectionFlashTickMsg:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		cmds = append(cmds, cmd)

	case ui.SidebarTickMsg:
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)

	case ui.ClipboardErrorMsg:
		logger.Warn("App: clipboard write failed: %v", msg.Error)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)

	default:
		return m.routeToFocused(msg)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles global shortcuts. Returns handled=false for keys the
// focused pane should process instead.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	// Search mode owns the keyboard except for global quit
	if m.focus == FocusSidebar && m.sidebar.IsSearchMode() && key != keys.CtrlC {
		if key == keys.Enter {
			if sel := m.sidebar.Selected(); sel != nil {
				m.sidebar.ExitSearchMode()
				m.selectConversation(*sel)
				return m, nil, true
			}
		}
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return m, cmd, true
	}

	switch key {
	case keys.CtrlC:
		return m, tea.Quit, true

	case "q":
		if m.focus == FocusSidebar {
			return m, tea.Quit, true
		}

	case keys.Tab:
		m.toggleFocus()
		return m, nil, true

	case keys.CtrlB:
		m.controller.ToggleSidebar()
		if !m.controller.SidebarOpen() && m.focus == FocusSidebar {
			m.setFocus(FocusChat)
		}
		m.updateSizes()
		return m, nil, true

	case keys.CtrlE:
		m.openPanel(layout.PanelCode)
		return m, nil, true

	case keys.CtrlG:
		m.openPanel(layout.PanelGraph)
		return m, nil, true

	case keys.CtrlF:
		m.openPanel(layout.PanelFiles)
		return m, nil, true

	case keys.CtrlT:
		m.openPanel(layout.PanelAIFeatures)
		return m, nil, true

	case keys.Escape:
		switch {
		case m.chat.IsEditing():
			m.chat.CancelEdit()
		case m.chat.HasTextSelection():
			m.chat.SelectionClear()
		case m.panel.IsOpen():
			m.closePanel()
		}
		return m, nil, true

	case keys.Enter:
		if m.focus == FocusSidebar {
			if sel := m.sidebar.Selected(); sel != nil {
				m.selectConversation(*sel)
			}
			return m, nil, true
		}
		if m.focus == FocusChat {
			return m, m.sendMessage(), true
		}

	case keys.CtrlN:
		m.newConversation()
		return m, nil, true

	case keys.CtrlR:
		if m.focus == FocusChat {
			return m, m.retryLast(), true
		}

	case keys.CtrlX:
		if m.focus == FocusChat {
			m.editLast()
			return m, nil, true
		}

	case keys.CtrlY:
		return m, m.copyCode(), true

	case keys.ShiftLeft, keys.ShiftRight:
		if active := m.controller.ActivePanel(); active != layout.PanelNone {
			p := m.controller.Panel(active)
			step := ui.PanelResizeStep * cellPx
			if key == keys.ShiftRight {
				step = -step
			}
			m.controller.ResizePanel(active, p.Width+step)
			m.updateSizes()
			return m, nil, true
		}
	}

	return m, nil, false
}

// routeToFocused delivers a message to whichever pane has focus
func (m *Model) routeToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusSidebar:
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return m, cmd
	case FocusPanel:
		panel, cmd := m.panel.Update(msg)
		m.panel = panel
		return m, cmd
	default:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return m, cmd
	}
}

// handleReplyDelivered resolves a scheduled assistant reply against its store
func (m *Model) handleReplyDelivered(msg ReplyDeliveredMsg) (tea.Model, tea.Cmd) {
	store := m.storeFor(msg.ConversationID)
	requests := store.Resolve(msg.Pending)

	if msg.ConversationID == m.activeID {
		m.syncConversation()
		m.chat.ScrollToBottom()
	} else if !store.Typing() {
		m.sidebar.SetTypingConversation("")
	}

	// Panel requests only apply to the conversation on screen; a reply
	// resolving in a background conversation must not reshape the layout
	// or leak its code buffer into the active view.
	if msg.ConversationID == m.activeID {
		for _, req := range requests {
			if req == conversation.PanelNone {
				continue
			}
			id := layout.PanelID(req)
			if m.controller.ActivePanel() != id {
				m.controller.TogglePanel(id)
			}
			m.syncPanel()
		}
		// Keep code panel content fresh even when it is already open
		if m.controller.ActivePanel() == layout.PanelCode {
			m.syncPanel()
		}
	}

	if !m.windowFocused && m.config.GetNotificationsEnabled() {
		messages := store.Messages()
		if len(messages) > 0 {
			preview := messages[len(messages)-1].Content
			go notification.ReplyReady(preview)
		}
	}

	return m, nil
}

// copyCode copies the running code buffer to the clipboard
func (m *Model) copyCode() tea.Cmd {
	code := m.activeStore().Code()
	if code == "" {
		return nil
	}

	logger.Debug("App: copying code buffer (%d bytes)", len(code))
	return tea.Batch(
		tea.SetClipboard(code),
		func() tea.Msg {
			if err := clipboard.WriteText(code); err != nil {
				logger.Warn("App: native clipboard write failed: %v", err)
			}
			return nil
		},
	)
}
