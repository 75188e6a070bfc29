package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"chatdeck/internal/layout"
	"chatdeck/internal/ui"
)

// updateSizes recalculates component dimensions from the terminal size and
// the current layout state.
func (m *Model) updateSizes() {
	m.controller.SetViewportWidth(m.width * cellPx)

	sidebarVisible := m.controller.SidebarOpen()
	panelCols := 0
	if active := m.controller.ActivePanel(); active != layout.PanelNone {
		panelCols = m.controller.Panel(active).Width / cellPx
	}

	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, sidebarVisible, panelCols)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
	if panelCols > 0 {
		m.panel.SetSize(panelCols, ctx.ContentHeight)
	}
}

// updateFooterContext refreshes the footer's conditional bindings
func (m *Model) updateFooterContext() {
	ctx := ui.GetViewContext()
	m.footer.SetContext(
		m.focus == FocusSidebar,
		m.chat.IsEditing(),
		m.panel.IsOpen(),
		m.activeStore().Typing(),
		ctx.Compact,
	)
}

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	header := m.header.View()
	footer := m.footer.View()

	var panes []string
	if m.controller.SidebarOpen() {
		panes = append(panes, m.sidebar.View())
	}
	panes = append(panes, m.chat.View())
	if m.panel.IsOpen() {
		panes = append(panes, m.panel.View())
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		footer,
	)
}
