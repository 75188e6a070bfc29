package ui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// TypingTickMsg is sent to advance the typing indicator animation
type TypingTickMsg time.Time

// SelectionFlashTickMsg is sent to animate the selection copy flash
type SelectionFlashTickMsg time.Time

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// spinnerFrameHoldTimes defines how long each frame is held (in ticks).
// First and last frames hold longer for a "breathing" effect.
var spinnerFrameHoldTimes = []int{3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3}

// SpinnerState tracks the typing indicator animation.
type SpinnerState struct {
	Idx  int // Current spinner frame index
	Tick int // Tick counter for frame hold timing
}

// NewSpinnerState creates a new SpinnerState.
func NewSpinnerState() *SpinnerState {
	return &SpinnerState{}
}

// Advance steps the animation one tick, honoring per-frame hold times so the
// first and last frames linger.
func (s *SpinnerState) Advance() {
	s.Tick++
	holdTime := spinnerFrameHoldTimes[s.Idx%len(spinnerFrameHoldTimes)]
	if s.Tick >= holdTime {
		s.Tick = 0
		s.Idx = (s.Idx + 1) % len(spinnerFrames)
	}
}

// Frame returns the current spinner frame character
func (s *SpinnerState) Frame() string {
	return spinnerFrames[s.Idx%len(spinnerFrames)]
}

// TypingTick returns a command that sends a tick message after a delay
func TypingTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return TypingTickMsg(t)
	})
}

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

// renderTypingIndicator renders the animated "Assistant is typing" line.
// Format: ✺ Assistant is typing... (1.2s)
func renderTypingIndicator(frameIdx int, elapsed time.Duration) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Italic(true)

	metaStyle := lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	return spinnerStyle.Render(frame) + " " +
		textStyle.Render("Assistant is typing...") + " " +
		metaStyle.Render("("+formatElapsed(elapsed)+")")
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// handleTypingTick advances the spinner animation while a reply is pending
func (c *Chat) handleTypingTick() tea.Cmd {
	if !c.typing {
		return nil
	}

	c.spinner.Advance()
	c.updateContent()
	return TypingTick()
}

// handleSelectionFlashTick handles the copy confirmation flash animation
func (c *Chat) handleSelectionFlashTick() tea.Cmd {
	if c.selection.FlashFrame < 0 {
		return nil
	}

	c.selection.FlashFrame++
	if c.selection.FlashFrame >= 2 {
		// Flash done; clear the selection as well
		c.selection.FlashFrame = -1
		c.selection.Clear()
	}
	if c.selection.FlashFrame >= 0 {
		return SelectionFlashTick()
	}
	return nil
}
