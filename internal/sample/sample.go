// Package sample holds the canned demo data: the signed-in user, the
// conversation list shown in the sidebar, the opening exchange every
// conversation is seeded with, and the datasets behind the graph and
// file panels.
package sample

import (
	"time"

	"github.com/google/uuid"

	"chatdeck/internal/conversation"
)

// User is the demo identity shown in the sidebar footer.
type User struct {
	ID     string
	Name   string
	Email  string
	Status string
}

// DemoUser is the only account in the demo.
var DemoUser = User{
	ID:     "demo-user-001",
	Name:   "Demo User",
	Email:  "demo@example.com",
	Status: "online",
}

// ConversationSummary is a sidebar entry. Every conversation opens with the
// same seed exchange on first visit.
type ConversationSummary struct {
	ID        string
	Title     string
	Preview   string
	Timestamp time.Time
	Unread    bool
}

// Conversations returns the sidebar entries, newest first. Timestamps are
// relative to now so the list always reads as recent activity.
func Conversations() []ConversationSummary {
	now := time.Now()
	return []ConversationSummary{
		{
			ID:        "conv-001",
			Title:     "Modern Landing Page",
			Preview:   "Can you create an HTML landing page for me?",
			Timestamp: now.Add(-1 * time.Hour),
		},
		{
			ID:        "conv-002",
			Title:     "Responsive CSS Grid",
			Preview:   "How do I create a responsive grid with CSS?",
			Timestamp: now.Add(-24 * time.Hour),
		},
		{
			ID:        "conv-003",
			Title:     "JavaScript Animation",
			Preview:   "Need help with smooth scroll animations",
			Timestamp: now.Add(-48 * time.Hour),
			Unread:    true,
		},
	}
}

// DefaultConversation returns the conversation selected on startup.
func DefaultConversation() ConversationSummary {
	return Conversations()[0]
}

// NewConversation returns a summary for a freshly started conversation.
func NewConversation() ConversationSummary {
	return ConversationSummary{
		ID:        uuid.New().String(),
		Title:     "New Conversation",
		Preview:   "What would you like to create today?",
		Timestamp: time.Now(),
	}
}

// InitialMessages returns the opening exchange used to seed a conversation.
// Fresh Message values are built on each call so callers can't mutate a
// shared slice.
func InitialMessages() []conversation.Message {
	now := time.Now()
	return []conversation.Message{
		{
			ID:        "msg-init-001",
			Content:   "Hello! I'm your web development assistant. I can help you with HTML, CSS, and JavaScript. What would you like to create today?",
			Sender:    conversation.SenderAssistant,
			Type:      conversation.TypeText,
			Timestamp: now.Add(-6 * time.Minute),
		},
		{
			ID:        "msg-init-002",
			Content:   "Can you show me a simple HTML landing page?",
			Sender:    conversation.SenderUser,
			Type:      conversation.TypeText,
			Timestamp: now.Add(-5 * time.Minute),
		},
		{
			ID:        "msg-init-003",
			Content:   conversation.LandingPageHTML,
			Sender:    conversation.SenderAssistant,
			Type:      conversation.TypeCode,
			Language:  "html",
			Timestamp: now.Add(-4 * time.Minute),
		},
		{
			ID:        "msg-init-004",
			Content:   "Thanks! Can you add some more sections to it?",
			Sender:    conversation.SenderUser,
			Type:      conversation.TypeText,
			Timestamp: now.Add(-3 * time.Minute),
		},
		{
			ID:        "msg-init-005",
			Content:   "Of course! I'd be happy to expand the landing page. Try asking for a more complete version with features section, testimonials, and a footer. Or if you'd like, I can add specific sections based on your needs.",
			Sender:    conversation.SenderAssistant,
			Type:      conversation.TypeText,
			Timestamp: now.Add(-2 * time.Minute),
		},
	}
}

// GraphNode is a vertex in the retrieval graph shown by the graph panel.
type GraphNode struct {
	ID      string
	Kind    string // query, document, chunk, answer
	Content string
	Size    int
}

// GraphLink is a weighted edge between two graph nodes.
type GraphLink struct {
	Source string
	Target string
	Value  float64
	Label  string
}

// GraphData is the static retrieval graph rendered by the graph panel.
type GraphData struct {
	Nodes []GraphNode
	Links []GraphLink
}

// Graph returns the demo retrieval graph: one query fanning out to three
// chunks, the chunks resolving to their source documents and the answer.
func Graph() GraphData {
	return GraphData{
		Nodes: []GraphNode{
			{ID: "query1", Kind: "query", Content: "How do I implement a responsive navbar?", Size: 15},
			{ID: "doc1", Kind: "document", Content: "HTML5 documentation", Size: 20},
			{ID: "doc2", Kind: "document", Content: "CSS3 best practices", Size: 20},
			{ID: "chunk1", Kind: "chunk", Content: "Responsive design patterns", Size: 12},
			{ID: "chunk2", Kind: "chunk", Content: "Mobile-first navbar techniques", Size: 12},
			{ID: "chunk3", Kind: "chunk", Content: "Media queries usage guide", Size: 12},
			{ID: "answer1", Kind: "answer", Content: "Here is how to implement a responsive navbar...", Size: 18},
		},
		Links: []GraphLink{
			{Source: "query1", Target: "chunk1", Value: 0.92, Label: "92%"},
			{Source: "query1", Target: "chunk2", Value: 0.87, Label: "87%"},
			{Source: "query1", Target: "chunk3", Value: 0.75, Label: "75%"},
			{Source: "chunk1", Target: "answer1", Value: 1, Label: "used"},
			{Source: "chunk2", Target: "answer1", Value: 1, Label: "used"},
			{Source: "chunk1", Target: "doc1", Value: 1},
			{Source: "chunk2", Target: "doc1", Value: 1},
			{Source: "chunk3", Target: "doc2", Value: 1},
		},
	}
}

// File describes an attachment shown in the files panel.
type File struct {
	ID           string
	Name         string
	Type         string
	Size         int64 // bytes
	LastModified time.Time
}

// Document returns the demo attachment for the files panel.
func Document() File {
	return File{
		ID:           "sample-doc",
		Name:         "project-overview.pdf",
		Type:         "pdf",
		Size:         2500000,
		LastModified: time.Now(),
	}
}
