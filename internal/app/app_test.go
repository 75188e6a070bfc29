package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"chatdeck/internal/config"
	"chatdeck/internal/conversation"
	"chatdeck/internal/layout"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := &config.Config{WelcomeShown: true, ReplyDelayMS: 10}
	m := New(cfg, "test")
	m.width = 160
	m.height = 48
	m.updateSizes()
	return m
}

func keyPress(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: mod}
}

func TestNewModelSeedsDefaultConversation(t *testing.T) {
	m := newTestModel(t)

	store := m.activeStore()
	if store.Len() == 0 {
		t.Fatal("expected the default conversation to be seeded")
	}
	if m.focus != FocusChat {
		t.Errorf("expected chat focused initially, got %v", m.focus)
	}
	if store.Code() == "" {
		t.Error("expected seeded code message to prime the code buffer")
	}
}

func TestSendMessageSchedulesReply(t *testing.T) {
	m := newTestModel(t)
	before := m.activeStore().Len()

	m.chat.SetInput("hello there")
	cmd := m.sendMessage()

	if cmd == nil {
		t.Fatal("expected a scheduled reply command")
	}
	if got := m.activeStore().Len(); got != before+1 {
		t.Errorf("expected one appended user message, got %d -> %d", before, got)
	}
	if !m.activeStore().Typing() {
		t.Error("expected typing state while the reply is pending")
	}
	if m.chat.GetInput() != "" {
		t.Error("expected input cleared after send")
	}
}

func TestSendMessageIgnoresBlankInput(t *testing.T) {
	m := newTestModel(t)
	before := m.activeStore().Len()

	m.chat.SetInput("   ")
	if cmd := m.sendMessage(); cmd != nil {
		t.Error("expected no command for blank input")
	}
	if m.activeStore().Len() != before {
		t.Error("expected no message appended for blank input")
	}
}

func TestReplyDeliveredAppendsAssistantAndOpensPanel(t *testing.T) {
	m := newTestModel(t)
	store := m.activeStore()

	pending := store.Submit("Can you write the HTML for a landing page?")
	if pending == nil {
		t.Fatal("expected a pending reply")
	}

	m.Update(ReplyDeliveredMsg{ConversationID: m.activeID, Pending: *pending})

	messages := store.Messages()
	last := messages[len(messages)-1]
	if last.Sender != conversation.SenderAssistant {
		t.Errorf("expected assistant reply appended, got sender %q", last.Sender)
	}
	if m.controller.ActivePanel() != layout.PanelCode {
		t.Errorf("expected code panel opened, got %q", m.controller.ActivePanel())
	}
	if !m.panel.IsOpen() {
		t.Error("expected panel component opened")
	}
}

func TestBackgroundReplyDoesNotOpenPanel(t *testing.T) {
	m := newTestModel(t)
	background := m.activeID
	store := m.activeStore()

	pending := store.Submit("Can you write the HTML for a landing page?")
	if pending == nil {
		t.Fatal("expected a pending reply")
	}

	// Switch away before the reply lands
	m.newConversation()
	if m.activeID == background {
		t.Fatal("expected a different active conversation")
	}

	m.Update(ReplyDeliveredMsg{ConversationID: background, Pending: *pending})

	messages := m.storeFor(background).Messages()
	if messages[len(messages)-1].Sender != conversation.SenderAssistant {
		t.Error("expected the reply appended to its own conversation")
	}
	if m.controller.ActivePanel() != layout.PanelNone {
		t.Errorf("expected no panel opened by a background reply, got %q", m.controller.ActivePanel())
	}
	if m.panel.IsOpen() {
		t.Error("expected panel component closed")
	}
}

func TestStaleReplyIsDiscarded(t *testing.T) {
	m := newTestModel(t)
	store := m.activeStore()

	pending := store.Submit("first question")
	before := store.Len()

	// Retry truncates and invalidates the outstanding reply
	messages := store.Messages()
	var assistantID string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender == conversation.SenderAssistant {
			assistantID = messages[i].ID
			break
		}
	}
	retried := store.Retry(assistantID)
	if retried == nil {
		t.Fatal("expected a retry pending reply")
	}

	m.Update(ReplyDeliveredMsg{ConversationID: m.activeID, Pending: *pending})
	if store.Len() >= before {
		// Truncation removed messages; the stale reply must not re-add any
		t.Logf("len=%d before=%d", store.Len(), before)
	}

	m.Update(ReplyDeliveredMsg{ConversationID: m.activeID, Pending: *retried})
	final := store.Messages()
	if final[len(final)-1].Sender != conversation.SenderAssistant {
		t.Error("expected the retried reply to resolve")
	}
}

func TestToggleFocusCycles(t *testing.T) {
	m := newTestModel(t)

	m.toggleFocus()
	if m.focus != FocusSidebar {
		t.Errorf("expected sidebar focus after chat, got %v", m.focus)
	}

	m.toggleFocus()
	if m.focus != FocusChat {
		t.Errorf("expected chat focus after sidebar, got %v", m.focus)
	}

	// With a panel open the cycle includes it
	m.openPanel(layout.PanelGraph)
	m.toggleFocus()
	if m.focus != FocusPanel {
		t.Errorf("expected panel focus, got %v", m.focus)
	}
}

func TestCtrlBTogglesSidebar(t *testing.T) {
	m := newTestModel(t)

	if !m.controller.SidebarOpen() {
		t.Fatal("expected sidebar open initially")
	}

	m.Update(keyPress('b', tea.ModCtrl))
	if m.controller.SidebarOpen() {
		t.Error("expected sidebar hidden after ctrl+b")
	}

	m.Update(keyPress('b', tea.ModCtrl))
	if !m.controller.SidebarOpen() {
		t.Error("expected sidebar restored after second ctrl+b")
	}
}

func TestPanelShortcuts(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyPress('g', tea.ModCtrl))
	if m.controller.ActivePanel() != layout.PanelGraph {
		t.Errorf("expected graph panel after ctrl+g, got %q", m.controller.ActivePanel())
	}

	// Panels are exclusive
	m.Update(keyPress('f', tea.ModCtrl))
	if m.controller.ActivePanel() != layout.PanelFiles {
		t.Errorf("expected files panel after ctrl+f, got %q", m.controller.ActivePanel())
	}

	// Same shortcut toggles closed
	m.Update(keyPress('f', tea.ModCtrl))
	if m.controller.ActivePanel() != layout.PanelNone {
		t.Errorf("expected no panel after repeat ctrl+f, got %q", m.controller.ActivePanel())
	}
}

func TestEscapeClosesPanel(t *testing.T) {
	m := newTestModel(t)

	m.openPanel(layout.PanelFiles)
	m.setFocus(FocusPanel)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.panel.IsOpen() {
		t.Error("expected panel closed by escape")
	}
	if m.focus != FocusChat {
		t.Errorf("expected focus returned to chat, got %v", m.focus)
	}
}

func TestEscapeCancelsEditBeforeClosingPanel(t *testing.T) {
	m := newTestModel(t)
	m.openPanel(layout.PanelFiles)
	m.editLast()

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.chat.IsEditing() {
		t.Error("expected edit cancelled first")
	}
	if !m.panel.IsOpen() {
		t.Error("expected panel still open after first escape")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.panel.IsOpen() {
		t.Error("expected panel closed by second escape")
	}
}

func TestEditLastPreloadsInput(t *testing.T) {
	m := newTestModel(t)

	m.editLast()
	if !m.chat.IsEditing() {
		t.Fatal("expected edit mode")
	}
	if m.chat.GetInput() == "" {
		t.Error("expected input preloaded with the last user message")
	}

	edited := "actually, make it dark mode"
	m.chat.SetInput(edited)
	m.sendMessage()

	if m.chat.IsEditing() {
		t.Error("expected edit mode cleared after save")
	}
	found := false
	for _, msg := range m.activeStore().Messages() {
		if msg.Content == edited {
			found = true
		}
	}
	if !found {
		t.Error("expected edited content in the message log")
	}
}

func TestRetryRegeneratesLastReply(t *testing.T) {
	m := newTestModel(t)
	store := m.activeStore()
	before := store.Len()

	cmd := m.retryLast()
	if cmd == nil {
		t.Fatal("expected a scheduled retry command")
	}
	if store.Len() >= before {
		t.Errorf("expected truncation before resubmit, %d -> %d", before, store.Len())
	}
	if !store.Typing() {
		t.Error("expected typing state during retry")
	}
}

func TestShiftArrowsResizePanel(t *testing.T) {
	m := newTestModel(t)
	m.openPanel(layout.PanelCode)

	before := m.controller.Panel(layout.PanelCode).Width
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift})
	after := m.controller.Panel(layout.PanelCode).Width
	if after <= before {
		t.Errorf("expected shift+left to widen the panel, %d -> %d", before, after)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift})
	if got := m.controller.Panel(layout.PanelCode).Width; got != before {
		t.Errorf("expected shift+right to undo the widen, got %d want %d", got, before)
	}
}

func TestMouseDragResizesPanel(t *testing.T) {
	m := newTestModel(t)
	m.openPanel(layout.PanelCode)

	left := m.panelLeft()
	if left <= 0 {
		t.Fatalf("expected a positive panel left edge, got %d", left)
	}
	before := m.controller.Panel(layout.PanelCode).Width

	m.handleMouse(tea.MouseClickMsg{X: left, Y: 10, Button: tea.MouseLeft})
	if !m.controller.Dragging() {
		t.Fatal("expected drag started on the panel edge")
	}

	// Dragging left widens a right-anchored panel
	m.handleMouse(tea.MouseMotionMsg{X: left - 5, Y: 10, Button: tea.MouseLeft})
	m.handleMouse(tea.MouseReleaseMsg{X: left - 5, Y: 10, Button: tea.MouseLeft})

	if m.controller.Dragging() {
		t.Error("expected drag ended on release")
	}
	after := m.controller.Panel(layout.PanelCode).Width
	if after != before+5*cellPx {
		t.Errorf("expected width %d, got %d", before+5*cellPx, after)
	}
}

func TestRenderToString(t *testing.T) {
	m := newTestModel(t)

	out := m.RenderToString()
	if !strings.Contains(out, "chatdeck") {
		t.Error("expected header branding in the rendered view")
	}

	m.width = 0
	if m.RenderToString() != "Loading..." {
		t.Error("expected loading placeholder before the first resize")
	}
}

func TestCtrlNStartsNewConversation(t *testing.T) {
	m := newTestModel(t)
	original := m.activeID

	m.Update(keyPress('n', tea.ModCtrl))

	if m.activeID == original {
		t.Fatal("expected a fresh conversation to become active")
	}
	store := m.activeStore()
	if store.Len() == 0 {
		t.Error("expected the new conversation to be seeded with the opening exchange")
	}
	if m.focus != FocusChat {
		t.Errorf("expected chat focused after new conversation, got %v", m.focus)
	}
	if sel := m.sidebar.Selected(); sel == nil || sel.ID != m.activeID {
		t.Error("expected the sidebar selection to follow the new conversation")
	}
}
