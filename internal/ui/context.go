package ui

import (
	"sync"

	"chatdeck/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ChatWidth     int

	// Compact reports whether the terminal is below the compact breakpoint
	Compact bool

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when the terminal is
// resized. sidebarVisible and panelWidth reflect the current layout state:
// the chat gets whatever width the sidebar and side panel leave over.
// This method is thread-safe and should be called from the main event loop.
func (v *ViewContext) UpdateTerminalSize(width, height int, sidebarVisible bool, panelWidth int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.Compact = width < CompactWidthCols

	// Header and footer each take exactly 1 line of content
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	if sidebarVisible {
		v.SidebarWidth = SidebarWidthCols
	} else {
		v.SidebarWidth = 0
	}
	v.ChatWidth = width - v.SidebarWidth - panelWidth
	if v.ChatWidth < 0 {
		v.ChatWidth = 0
	}

	log := logger.WithComponent("ui")
	log.Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"panelWidth", panelWidth,
		"chatWidth", v.ChatWidth,
		"compact", v.Compact,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
