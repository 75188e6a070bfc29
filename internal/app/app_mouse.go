package app

import (
	tea "charm.land/bubbletea/v2"

	"chatdeck/internal/layout"
	"chatdeck/internal/ui"
)

// handleMouse routes mouse events to drag-resize, text selection, or
// scrolling depending on where they land.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	}
	return nil
}

// panelLeft returns the terminal column of the open panel's left edge, or -1
// when no panel is open.
func (m *Model) panelLeft() int {
	active := m.controller.ActivePanel()
	if active == layout.PanelNone {
		return -1
	}
	ctx := ui.GetViewContext()
	return ctx.TerminalWidth - m.controller.Panel(active).Width/cellPx
}

// chatLeft returns the terminal column where the chat pane starts
func (m *Model) chatLeft() int {
	return ui.GetViewContext().SidebarWidth
}

// inChatRegion reports whether a terminal coordinate falls inside the chat
// pane's content area.
func (m *Model) inChatRegion(x, y int) bool {
	if y < ui.HeaderHeight || y >= m.height-ui.FooterHeight {
		return false
	}
	if x < m.chatLeft() {
		return false
	}
	if left := m.panelLeft(); left >= 0 && x >= left {
		return false
	}
	return true
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	// Clicks on or next to the panel's left edge start a resize drag
	if left := m.panelLeft(); left >= 0 && msg.X >= left-1 && msg.X <= left+1 {
		m.controller.StartDrag(m.controller.ActivePanel(), msg.X*cellPx)
		m.setFocus(FocusPanel)
		return nil
	}

	if m.controller.SidebarOpen() && msg.X < m.chatLeft() {
		m.setFocus(FocusSidebar)
		return nil
	}

	if m.inChatRegion(msg.X, msg.Y) {
		m.setFocus(FocusChat)
		// Adjust for the sidebar, the header row, and the chat border
		return m.chat.HandleMouseClick(
			msg.X-m.chatLeft()-1,
			msg.Y-ui.HeaderHeight-1,
		)
	}

	if left := m.panelLeft(); left >= 0 && msg.X > left {
		m.setFocus(FocusPanel)
	}
	return nil
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) tea.Cmd {
	if m.controller.Dragging() {
		m.controller.DragTo(msg.X * cellPx)
		m.updateSizes()
		return nil
	}

	m.chat.ExtendSelection(
		msg.X-m.chatLeft()-1,
		msg.Y-ui.HeaderHeight-1,
	)
	return nil
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	if m.controller.Dragging() {
		m.controller.EndDrag()
		m.updateSizes()
		return nil
	}

	m.chat.SelectionStop()
	if m.chat.HasTextSelection() {
		return m.chat.CopySelectedText()
	}
	return nil
}

func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if left := m.panelLeft(); left >= 0 && msg.X >= left {
		panel, cmd := m.panel.Update(msg)
		m.panel = panel
		return cmd
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return cmd
}
