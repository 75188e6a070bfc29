// Package layout arbitrates the side panels, the sidebar, and responsive
// breakpoint transitions for the chat application.
//
// The controller is a flat configuration object with clamped setters rather
// than a guarded state machine: the active panel, sidebar visibility, and the
// viewport class are orthogonal axes and no combination is illegal. Panel
// widths live only for the session; nothing here is persisted.
package layout

import (
	"chatdeck/internal/logger"
)

// PanelID identifies one of the toggleable side panels.
type PanelID string

const (
	PanelNone       PanelID = ""
	PanelCode       PanelID = "code"
	PanelGraph      PanelID = "graph"
	PanelFiles      PanelID = "files"
	PanelAIFeatures PanelID = "ai-features"
)

// Position anchors a panel to one edge of the viewport. It determines the
// sign of drag-resize deltas.
type Position int

const (
	PositionRight Position = iota
	PositionLeft
)

// DefaultBreakpoint is the viewport width below which the layout switches to
// the compact (overlay) presentation.
const DefaultBreakpoint = 768

// Panel holds the per-panel display configuration. Width is clamped to
// [MinWidth, MaxWidth] on every mutation.
type Panel struct {
	ID       PanelID
	Title    string
	Icon     string
	Width    int
	MinWidth int
	MaxWidth int
	Position Position
}

// defaultPanels mirrors the demo application's panel set. Widths vary per
// panel; clamp bounds stay inside the 250-800 range.
func defaultPanels() map[PanelID]*Panel {
	return map[PanelID]*Panel{
		PanelCode: {
			ID: PanelCode, Title: "Code", Icon: "{}",
			Width: 450, MinWidth: 300, MaxWidth: 800,
		},
		PanelGraph: {
			ID: PanelGraph, Title: "Knowledge Graph", Icon: "◉",
			Width: 400, MinWidth: 300, MaxWidth: 700,
		},
		PanelFiles: {
			ID: PanelFiles, Title: "Files", Icon: "▤",
			Width: 350, MinWidth: 250, MaxWidth: 600,
		},
		PanelAIFeatures: {
			ID: PanelAIFeatures, Title: "AI Features", Icon: "✦",
			Width: 300, MinWidth: 250, MaxWidth: 500,
		},
	}
}

// dragState tracks an in-progress resize drag. Deltas are always computed
// from the captured start coordinate and width, never accumulated, so
// repeated identical pointer positions cannot drift.
type dragState struct {
	panel      PanelID
	startX     int
	startWidth int
}

// Controller owns which side panel is active, each panel's width, sidebar
// visibility, and the mobile/desktop viewport classification.
type Controller struct {
	panels      map[PanelID]*Panel
	activePanel PanelID
	sidebarOpen bool
	mobile      bool
	breakpoint  int
	drag        *dragState
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithBreakpoint overrides the mobile breakpoint width.
func WithBreakpoint(px int) ControllerOption {
	return func(c *Controller) {
		if px > 0 {
			c.breakpoint = px
		}
	}
}

// WithPanelWidth overrides a panel's starting width (clamped).
func WithPanelWidth(id PanelID, width int) ControllerOption {
	return func(c *Controller) {
		if p, ok := c.panels[id]; ok {
			p.Width = clamp(width, p.MinWidth, p.MaxWidth)
		}
	}
}

// NewController creates a layout controller with the default panel set,
// sidebar open, desktop classification.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		panels:      defaultPanels(),
		sidebarOpen: true,
		breakpoint:  DefaultBreakpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActivePanel returns the active panel ID, or PanelNone.
func (c *Controller) ActivePanel() PanelID {
	return c.activePanel
}

// Panel returns the configuration for the given panel, or nil for unknown
// IDs. The returned value is a snapshot copy.
func (c *Controller) Panel(id PanelID) *Panel {
	p, ok := c.panels[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// PanelIDs returns the known panel IDs in toolbar order.
func (c *Controller) PanelIDs() []PanelID {
	return []PanelID{PanelCode, PanelGraph, PanelFiles, PanelAIFeatures}
}

// SidebarOpen reports whether the conversation sidebar is visible.
func (c *Controller) SidebarOpen() bool {
	return c.sidebarOpen
}

// Mobile reports whether the viewport is below the breakpoint.
func (c *Controller) Mobile() bool {
	return c.mobile
}

// TogglePanel activates the panel, or deactivates it when it is already
// active. At most one panel is active at a time; activating a panel
// implicitly deactivates any other. Unknown IDs are ignored.
func (c *Controller) TogglePanel(id PanelID) {
	if _, ok := c.panels[id]; !ok {
		return
	}
	if c.activePanel == id {
		c.activePanel = PanelNone
	} else {
		c.activePanel = id
	}
	logger.Debug("Layout: active panel = %q", c.activePanel)
}

// ClosePanel deactivates whatever panel is active.
func (c *Controller) ClosePanel() {
	c.activePanel = PanelNone
}

// ResizePanel sets the panel width, clamped to the panel's bounds.
// Out-of-range values are clamped, never rejected.
func (c *Controller) ResizePanel(id PanelID, width int) {
	p, ok := c.panels[id]
	if !ok {
		return
	}
	p.Width = clamp(width, p.MinWidth, p.MaxWidth)
}

// ToggleSidebar flips sidebar visibility, independent of the viewport class.
func (c *Controller) ToggleSidebar() {
	c.sidebarOpen = !c.sidebarOpen
}

// SetViewportWidth reclassifies the viewport. Crossing the breakpoint forces
// the sidebar: closed on entry to mobile, open on return to desktop. The
// active panel is never altered here.
func (c *Controller) SetViewportWidth(px int) {
	mobile := px < c.breakpoint
	if mobile == c.mobile {
		return
	}
	c.mobile = mobile
	c.sidebarOpen = !mobile
	logger.Debug("Layout: viewport %dpx, mobile=%v", px, mobile)
}

// StartDrag begins a resize drag on the given panel at pointer coordinate x.
// Any drag already in progress is replaced.
func (c *Controller) StartDrag(id PanelID, x int) {
	p, ok := c.panels[id]
	if !ok {
		return
	}
	c.drag = &dragState{panel: id, startX: x, startWidth: p.Width}
}

// DragTo updates the dragged panel's width for the current pointer
// coordinate. Right-anchored panels grow as the pointer moves left. No-op
// when no drag is in progress.
func (c *Controller) DragTo(x int) {
	if c.drag == nil {
		return
	}
	p := c.panels[c.drag.panel]
	delta := c.drag.startX - x
	if p.Position == PositionLeft {
		delta = x - c.drag.startX
	}
	p.Width = clamp(c.drag.startWidth+delta, p.MinWidth, p.MaxWidth)
}

// EndDrag finishes the drag. The width set by the last DragTo sticks.
func (c *Controller) EndDrag() {
	c.drag = nil
}

// Dragging reports whether a resize drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
