package ui

import "time"

// TextSelection tracks mouse-based text selection state in the chat viewport.
type TextSelection struct {
	StartCol, StartLine int  // Start position (column, line in viewport)
	EndCol, EndLine     int  // End position (column, line in viewport)
	Active              bool // True during drag operation

	// Click tracking for double/triple click detection
	LastClickTime time.Time
	LastClickX    int
	LastClickY    int
	ClickCount    int

	// Selection flash animation (brief highlight after copy, then clear)
	FlashFrame int // -1 = inactive, 0 = flash visible, 1+ = done
}

// NewTextSelection creates a new TextSelection in inactive state.
func NewTextSelection() *TextSelection {
	return &TextSelection{
		FlashFrame: -1,
	}
}

// HasSelection returns true if there's a non-empty text selection.
func (s *TextSelection) HasSelection() bool {
	if s.StartLine != s.EndLine {
		return true
	}
	return s.StartCol != s.EndCol
}

// Clear resets the selection to empty state.
func (s *TextSelection) Clear() {
	s.StartCol = 0
	s.StartLine = 0
	s.EndCol = 0
	s.EndLine = 0
	s.Active = false
}
