package sample

import (
	"testing"

	"chatdeck/internal/conversation"
)

func TestInitialMessagesShape(t *testing.T) {
	msgs := InitialMessages()
	if len(msgs) != 5 {
		t.Fatalf("len = %d, want 5", len(msgs))
	}

	wantSenders := []conversation.Sender{
		conversation.SenderAssistant,
		conversation.SenderUser,
		conversation.SenderAssistant,
		conversation.SenderUser,
		conversation.SenderAssistant,
	}
	for i, m := range msgs {
		if m.Sender != wantSenders[i] {
			t.Errorf("message %d sender = %s, want %s", i, m.Sender, wantSenders[i])
		}
		if m.ID == "" {
			t.Errorf("message %d has empty ID", i)
		}
	}

	code := msgs[2]
	if code.Type != conversation.TypeCode || code.Language != "html" {
		t.Errorf("message 3 = %s/%s, want code/html", code.Type, code.Language)
	}
	if code.Content != conversation.LandingPageHTML {
		t.Error("code message content does not match the canned landing page")
	}
}

func TestInitialMessagesReturnsFreshSlice(t *testing.T) {
	a := InitialMessages()
	a[0].Content = "mutated"
	b := InitialMessages()
	if b[0].Content == "mutated" {
		t.Error("callers share a slice")
	}
}

func TestConversationsOrderedNewestFirst(t *testing.T) {
	convs := Conversations()
	if len(convs) != 3 {
		t.Fatalf("len = %d, want 3", len(convs))
	}
	for i := 1; i < len(convs); i++ {
		if convs[i].Timestamp.After(convs[i-1].Timestamp) {
			t.Errorf("conversation %d is newer than %d", i, i-1)
		}
	}
	if DefaultConversation().ID != convs[0].ID {
		t.Error("default conversation is not the first entry")
	}
}

func TestGraphLinksReferenceKnownNodes(t *testing.T) {
	g := Graph()
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, l := range g.Links {
		if !ids[l.Source] {
			t.Errorf("link source %q is not a node", l.Source)
		}
		if !ids[l.Target] {
			t.Errorf("link target %q is not a node", l.Target)
		}
	}
}
