package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"chatdeck/internal/conversation"
)

func testMessages() []conversation.Message {
	return []conversation.Message{
		conversation.NewUserMessage("Build me a landing page"),
		conversation.NewAssistantMessage("Here is a starting point.", conversation.TypeText, ""),
		conversation.NewAssistantMessage("<html><body>hi</body></html>", conversation.TypeCode, "html"),
	}
}

func TestChatEmptyState(t *testing.T) {
	c := NewChat()
	c.SetSize(80, 24)

	view := ansi.Strip(c.View())
	if !strings.Contains(view, "Start a conversation") {
		t.Errorf("expected empty-state prompt, got %q", view)
	}
}

func TestChatRendersMessages(t *testing.T) {
	c := NewChat()
	c.SetSize(80, 24)
	c.SetMessages(testMessages())

	view := ansi.Strip(c.View())
	if !strings.Contains(view, "Build me a landing page") {
		t.Error("expected user message in view")
	}
	if !strings.Contains(view, "You") {
		t.Error("expected user label in view")
	}
	if !strings.Contains(view, "Assistant") {
		t.Error("expected assistant label in view")
	}
}

func TestChatTypingIndicator(t *testing.T) {
	c := NewChat()
	c.SetSize(80, 24)
	c.SetMessages(testMessages())
	c.SetTyping(true)

	view := ansi.Strip(c.View())
	if !strings.Contains(view, "Assistant is typing") {
		t.Error("expected typing indicator while waiting on a reply")
	}

	c.SetTyping(false)
	view = ansi.Strip(c.View())
	if strings.Contains(view, "Assistant is typing") {
		t.Error("expected typing indicator cleared")
	}
}

func TestChatEditMode(t *testing.T) {
	c := NewChat()
	c.SetSize(80, 24)

	if c.IsEditing() {
		t.Fatal("expected no edit in progress initially")
	}

	c.StartEdit("msg-1", "original text")
	if !c.IsEditing() || c.EditingID() != "msg-1" {
		t.Errorf("expected edit of msg-1, got %q", c.EditingID())
	}
	if c.GetInput() != "original text" {
		t.Errorf("expected input preloaded with original text, got %q", c.GetInput())
	}

	c.CancelEdit()
	if c.IsEditing() {
		t.Error("expected edit cancelled")
	}
	if c.GetInput() != "" {
		t.Error("expected input cleared after cancel")
	}
}

func TestChatLastUserMessage(t *testing.T) {
	c := NewChat()
	msgs := testMessages()
	c.SetMessages(msgs)

	last := c.LastUserMessage()
	if last == nil || last.Content != "Build me a landing page" {
		t.Errorf("expected the user message, got %v", last)
	}
}

func TestChatLastCodeMessage(t *testing.T) {
	c := NewChat()
	c.SetMessages(testMessages())

	last := c.LastCodeMessage()
	if last == nil || last.Language != "html" {
		t.Errorf("expected the html code message, got %v", last)
	}

	c.SetMessages(nil)
	if c.LastCodeMessage() != nil {
		t.Error("expected nil when no code messages exist")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1200 * time.Millisecond, "1.2s"},
		{59 * time.Second, "59.0s"},
		{75 * time.Second, "1:15"},
	}

	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSpinnerStateEasing(t *testing.T) {
	s := NewSpinnerState()

	// First frame holds for multiple ticks before advancing
	start := s.Idx
	for i := 0; i < spinnerFrameHoldTimes[0]; i++ {
		if s.Idx != start {
			t.Fatalf("frame advanced too early at tick %d", i)
		}
		s.Advance()
	}
	if s.Idx == start {
		t.Error("expected frame to advance after hold time")
	}
}
