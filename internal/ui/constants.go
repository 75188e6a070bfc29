// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthCols is the sidebar width in terminal columns
	SidebarWidthCols = 30

	// CompactWidthCols is the terminal width below which the sidebar
	// auto-collapses and panels take the full content width
	CompactWidthCols = 100

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth is the smallest terminal width the layout will calculate for
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest terminal height the layout will calculate for
	MinTerminalHeight = 10
)

// Input limits
const (
	// MaxMessageLength is the character limit for a single chat message
	MaxMessageLength = 4000

	// SidebarSearchCharLimit is the character limit for the sidebar search input
	SidebarSearchCharLimit = 64
)

// Panel resize step for keyboard-driven resizing (shift+left/shift+right)
const PanelResizeStep = 10
