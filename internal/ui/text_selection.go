// # Text Selection Coordinate System
//
// Mouse events from Bubble Tea arrive in terminal coordinates (0,0 =
// top-left of terminal). The app layer adjusts them to chat panel
// coordinates before they reach this code, and the selection handlers
// subtract 1 from both X and Y to account for the panel border, yielding
// viewport-relative coordinates.
//
// Selection coordinates are stored in viewport-relative coordinates. When
// rendering the selection highlight, they are used directly with the
// ultraviolet screen buffer, which also operates in viewport-relative
// coordinates. When extracting selected text, ANSI escape codes are
// stripped first so coordinates align with visible character positions.
package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"chatdeck/internal/clipboard"
	"chatdeck/internal/logger"
)

// ClipboardErrorMsg is sent when clipboard operations fail
type ClipboardErrorMsg struct {
	Error error
}

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

// StartSelection begins a text selection at the given coordinates
func (c *Chat) StartSelection(col, line int) {
	c.selection.StartCol = col
	c.selection.StartLine = line
	c.selection.EndCol = col
	c.selection.EndLine = line
	c.selection.Active = true
}

// ExtendSelection updates the end position of the selection during drag
func (c *Chat) ExtendSelection(col, line int) {
	if !c.selection.Active {
		return
	}
	c.selection.EndCol = col
	c.selection.EndLine = line
}

// SelectionStop ends the drag but keeps the selection visible
func (c *Chat) SelectionStop() {
	c.selection.Active = false
}

// SelectionClear clears the selection entirely
func (c *Chat) SelectionClear() {
	c.selection.Clear()
}

// HasTextSelection returns true if there is an active or completed selection
func (c *Chat) HasTextSelection() bool {
	return c.selection.HasSelection()
}

// HandleMouseClick handles mouse click events and detects double/triple clicks
func (c *Chat) HandleMouseClick(x, y int) tea.Cmd {
	now := time.Now()

	if now.Sub(c.selection.LastClickTime) <= doubleClickThreshold &&
		abs(x-c.selection.LastClickX) <= clickTolerance &&
		abs(y-c.selection.LastClickY) <= clickTolerance {
		c.selection.ClickCount++
	} else {
		c.selection.ClickCount = 1
	}

	c.selection.LastClickTime = now
	c.selection.LastClickX = x
	c.selection.LastClickY = y

	switch c.selection.ClickCount {
	case 1:
		c.StartSelection(x, y)
	case 2:
		// Double click - select word and copy immediately
		c.SelectWord(x, y)
		return c.CopySelectedText()
	case 3:
		// Triple click - select paragraph and copy immediately
		c.SelectParagraph(x, y)
		c.selection.ClickCount = 0
		return c.CopySelectedText()
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectWord selects the word at the given position
func (c *Chat) SelectWord(col, line int) {
	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	currentLine := ansi.Strip(lines[line])
	if col < 0 || col >= len(currentLine) {
		return
	}

	// Find word boundaries using uniseg
	startCol := col
	endCol := col

	// Search backward for word start
	gr := uniseg.NewGraphemes(currentLine[:col])
	pos := 0
	lastBoundary := 0
	for gr.Next() {
		if gr.IsWordBoundary() {
			lastBoundary = pos
		}
		pos += len(gr.Str())
	}
	startCol = lastBoundary

	// Search forward for word end
	gr = uniseg.NewGraphemes(currentLine[col:])
	pos = col
	for gr.Next() {
		if gr.IsWordBoundary() {
			endCol = pos
			break
		}
		pos += len(gr.Str())
	}
	if endCol <= col {
		endCol = len(currentLine)
	}

	c.selection.StartCol = startCol
	c.selection.StartLine = line
	c.selection.EndCol = endCol
	c.selection.EndLine = line
	c.selection.Active = false
}

// SelectParagraph selects the paragraph at the given position
func (c *Chat) SelectParagraph(col, line int) {
	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	// Paragraph boundaries are blank lines
	startLine := line
	endLine := line

	for startLine > 0 {
		prevLine := ansi.Strip(lines[startLine-1])
		if strings.TrimSpace(prevLine) == "" {
			break
		}
		startLine--
	}

	for endLine < len(lines)-1 {
		nextLine := ansi.Strip(lines[endLine+1])
		if strings.TrimSpace(nextLine) == "" {
			break
		}
		endLine++
	}

	lastLineWidth := len(ansi.Strip(lines[endLine]))

	c.selection.StartCol = 0
	c.selection.StartLine = startLine
	c.selection.EndCol = lastLineWidth
	c.selection.EndLine = endLine
	c.selection.Active = false
}

// selectionArea returns the normalized selection area (start before end in
// reading order). Selection can happen in any direction - the user might
// drag from bottom-right to top-left.
func (c *Chat) selectionArea() (startCol, startLine, endCol, endLine int) {
	startCol = c.selection.StartCol
	startLine = c.selection.StartLine
	endCol = c.selection.EndCol
	endLine = c.selection.EndLine

	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}

	return
}

// GetSelectedText returns the currently selected text.
//
// ANSI codes are stripped because selection coordinates correspond to
// visible character positions, not raw string positions. A bold "Hello"
// might be stored as "\x1b[1mHello\x1b[0m" (15 bytes) but displays as 5
// characters; selecting characters 0-5 should yield "Hello", not a partial
// escape sequence.
func (c *Chat) GetSelectedText() string {
	if !c.HasTextSelection() {
		return ""
	}

	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	startCol, startLine, endCol, endLine := c.selectionArea()

	var result strings.Builder

	for y := startLine; y <= endLine && y < len(lines); y++ {
		line := ansi.Strip(lines[y])

		var lineStart, lineEnd int
		if y == startLine {
			lineStart = startCol
		}
		if y == endLine {
			lineEnd = endCol
		} else {
			lineEnd = len(line)
		}

		if lineStart < 0 {
			lineStart = 0
		}
		if lineEnd > len(line) {
			lineEnd = len(line)
		}
		if lineStart > lineEnd {
			lineStart = lineEnd
		}

		if lineStart < len(line) {
			result.WriteString(line[lineStart:lineEnd])
		}
		if y < endLine {
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String())
}

// CopySelectedText copies the selected text to the clipboard and starts the
// flash animation.
func (c *Chat) CopySelectedText() tea.Cmd {
	if !c.HasTextSelection() {
		return nil
	}

	selectedText := c.GetSelectedText()
	if selectedText == "" {
		return nil
	}

	c.selection.FlashFrame = 0

	return tea.Batch(
		// OSC 52 escape sequence (works in modern terminals)
		tea.SetClipboard(selectedText),
		// Native clipboard fallback - returns error message if it fails
		func() tea.Msg {
			if err := clipboard.WriteText(selectedText); err != nil {
				logger.Warn("Failed to write to clipboard: %v", err)
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		SelectionFlashTick(),
	)
}

// selectionView applies selection highlighting to the rendered view using
// an ultraviolet screen buffer.
func (c *Chat) selectionView(view string) string {
	if !c.HasTextSelection() {
		return view
	}

	width := c.viewport.Width()
	height := c.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	startCol, startLine, endCol, endLine := c.selectionArea()

	// Use the flash style briefly after a copy to confirm it
	var selBg, selFg color.Color
	if c.selection.FlashFrame == 0 {
		selBg = TextSelectionFlashStyle.GetBackground()
		selFg = TextSelectionFlashStyle.GetForeground()
	} else {
		selBg = TextSelectionStyle.GetBackground()
		selFg = TextSelectionStyle.GetForeground()
	}

	for y := startLine; y <= endLine && y < height; y++ {
		var xStart, xEnd int
		switch {
		case y == startLine && y == endLine:
			xStart, xEnd = startCol, endCol
		case y == startLine:
			xStart, xEnd = startCol, width
		case y == endLine:
			xStart, xEnd = 0, endCol
		default:
			xStart, xEnd = 0, width
		}

		for x := xStart; x < xEnd && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = selBg
				cell.Style.Fg = selFg
				scr.SetCell(x, y, cell)
			}
		}
	}

	return scr.Render()
}
