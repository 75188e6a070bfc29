// Package ui provides the user interface components for the ChatDeck TUI.
//
// # Overview
//
// The ui package implements the visual components of ChatDeck using the
// Bubble Tea framework and Lipgloss styling library. It follows the
// Model-Update-View pattern established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Header (1 line)                                              │
//	├──────────────┬──────────────────────────────┬────────────────┤
//	│              │                              │                │
//	│   Sidebar    │         Chat Panel           │  Side Panel    │
//	│ (fixed cols) │      (remaining width)       │ (resizable,    │
//	│              │                              │  at most one)  │
//	├──────────────┴──────────────────────────────┴────────────────┤
//	│ Footer (1 line)                                              │
//	└──────────────────────────────────────────────────────────────┘
//
// The side panel appears only when one of the toolbar panels (code, graph,
// files, AI features) is open. Its
// width is controlled by the layout package and can be adjusted by dragging
// the panel's left edge or with shift+arrow keys.
//
// On narrow terminals the sidebar collapses automatically; the layout
// package tracks those transitions.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title and the active conversation title.
// Uses a gradient background with the primary color.
//
// Footer: Shows context-aware keyboard shortcuts. The displayed shortcuts
// change based on focus state, edit mode, and whether a panel is open.
//
// Sidebar: Lists conversations with relative timestamps and unread markers.
// Supports keyboard navigation (j/k or arrow keys) and a search filter.
//
// Chat: The main conversation panel showing message history and input.
// Includes a viewport for scrolling through messages, syntax highlighting
// for code messages, a typing indicator while a reply is pending, and a
// textarea for input. Mouse text selection with double/triple click is
// supported inside the viewport.
//
// # Focus System
//
// The application has three focus states:
//   - FocusSidebar: Conversation list is focused, keyboard controls navigation
//   - FocusChat: Chat panel is focused, keyboard input goes to textarea
//   - FocusPanel: The open side panel is focused, keys scroll its content
//
// Tab cycles focus through the visible panes. The 'q' key only quits when
// the sidebar is focused (to allow typing 'q' in chat).
package ui
