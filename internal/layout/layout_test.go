package layout

import "testing"

func TestTogglePanelExclusivity(t *testing.T) {
	c := NewController()

	if c.ActivePanel() != PanelNone {
		t.Fatalf("initial active panel = %q, want none", c.ActivePanel())
	}

	c.TogglePanel(PanelGraph)
	if c.ActivePanel() != PanelGraph {
		t.Errorf("active = %q, want graph", c.ActivePanel())
	}

	// Activating another panel implicitly deactivates the first.
	c.TogglePanel(PanelFiles)
	if c.ActivePanel() != PanelFiles {
		t.Errorf("active = %q, want files", c.ActivePanel())
	}

	// Toggling the active panel closes it.
	c.TogglePanel(PanelFiles)
	if c.ActivePanel() != PanelNone {
		t.Errorf("active = %q after double toggle, want none", c.ActivePanel())
	}
}

func TestTogglePanelUnknownID(t *testing.T) {
	c := NewController()
	c.TogglePanel(PanelCode)
	c.TogglePanel("settings")
	if c.ActivePanel() != PanelCode {
		t.Errorf("unknown toggle changed active panel to %q", c.ActivePanel())
	}
}

func TestResizePanelClamp(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"within bounds", 500, 500},
		{"below min", 10, 300},
		{"far below min", -1000, 300},
		{"above max", 900, 800},
		{"far above max", 100000, 800},
		{"at min", 300, 300},
		{"at max", 800, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			c.ResizePanel(PanelCode, tt.width)
			if got := c.Panel(PanelCode).Width; got != tt.want {
				t.Errorf("ResizePanel(code, %d): width = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestResizeUnknownPanel(t *testing.T) {
	c := NewController()
	c.ResizePanel("nope", 400) // must not panic
}

func TestPanelBoundsWithinObservedRange(t *testing.T) {
	c := NewController()
	for _, id := range c.PanelIDs() {
		p := c.Panel(id)
		if p == nil {
			t.Fatalf("Panel(%q) = nil", id)
		}
		if p.MinWidth < 250 || p.MaxWidth > 800 {
			t.Errorf("%s bounds [%d,%d] outside 250-800", id, p.MinWidth, p.MaxWidth)
		}
		if p.Width < p.MinWidth || p.Width > p.MaxWidth {
			t.Errorf("%s default width %d outside [%d,%d]", id, p.Width, p.MinWidth, p.MaxWidth)
		}
		if p.Width < 300 || p.Width > 450 {
			t.Errorf("%s default width %d outside the 300-450 default range", id, p.Width)
		}
	}
}

func TestResponsiveTransitions(t *testing.T) {
	c := NewController()

	if !c.SidebarOpen() || c.Mobile() {
		t.Fatal("want desktop with open sidebar initially")
	}

	c.SetViewportWidth(500)
	if !c.Mobile() {
		t.Error("500px should classify as mobile")
	}
	if c.SidebarOpen() {
		t.Error("entering mobile must force the sidebar closed")
	}

	// Manual toggle while mobile is allowed...
	c.ToggleSidebar()
	if !c.SidebarOpen() {
		t.Error("manual toggle while mobile was ignored")
	}

	// ...but the next breakpoint transition overrides it.
	c.SetViewportWidth(1024)
	if c.Mobile() {
		t.Error("1024px should classify as desktop")
	}
	if !c.SidebarOpen() {
		t.Error("returning to desktop must force the sidebar open")
	}
}

func TestViewportWidthKeepsActivePanel(t *testing.T) {
	c := NewController()
	c.TogglePanel(PanelGraph)

	c.SetViewportWidth(400)
	if c.ActivePanel() != PanelGraph {
		t.Error("mobile transition altered the active panel")
	}
	c.SetViewportWidth(1200)
	if c.ActivePanel() != PanelGraph {
		t.Error("desktop transition altered the active panel")
	}
}

func TestBreakpointBoundary(t *testing.T) {
	c := NewController()
	c.SetViewportWidth(DefaultBreakpoint)
	if c.Mobile() {
		t.Errorf("width == breakpoint (%d) should be desktop", DefaultBreakpoint)
	}
	c.SetViewportWidth(DefaultBreakpoint - 1)
	if !c.Mobile() {
		t.Error("width just below breakpoint should be mobile")
	}
}

func TestWithBreakpoint(t *testing.T) {
	c := NewController(WithBreakpoint(100))
	c.SetViewportWidth(99)
	if !c.Mobile() {
		t.Error("custom breakpoint not applied")
	}
	c.SetViewportWidth(100)
	if c.Mobile() {
		t.Error("width at custom breakpoint should be desktop")
	}
}

func TestDragResizeRightAnchored(t *testing.T) {
	c := NewController()
	start := c.Panel(PanelCode).Width

	c.StartDrag(PanelCode, 1000)
	if !c.Dragging() {
		t.Fatal("Dragging() = false after StartDrag")
	}

	// Pointer moves left 100px: a right-anchored panel grows by 100.
	c.DragTo(900)
	if got := c.Panel(PanelCode).Width; got != start+100 {
		t.Errorf("width = %d, want %d", got, start+100)
	}

	// Repeated identical coordinates accumulate no error.
	for i := 0; i < 50; i++ {
		c.DragTo(900)
	}
	if got := c.Panel(PanelCode).Width; got != start+100 {
		t.Errorf("width drifted to %d after repeated identical drags", got)
	}

	// Pointer moves right past the start: panel shrinks, clamped at min.
	c.DragTo(1000 + start)
	if got := c.Panel(PanelCode).Width; got != c.Panel(PanelCode).MinWidth {
		t.Errorf("width = %d, want clamped to min %d", got, c.Panel(PanelCode).MinWidth)
	}

	c.EndDrag()
	if c.Dragging() {
		t.Error("Dragging() = true after EndDrag")
	}

	// Width set by the last DragTo sticks after the drag ends.
	if got := c.Panel(PanelCode).Width; got != c.Panel(PanelCode).MinWidth {
		t.Errorf("width = %d after EndDrag, want %d", got, c.Panel(PanelCode).MinWidth)
	}
}

func TestDragToWithoutStart(t *testing.T) {
	c := NewController()
	before := c.Panel(PanelCode).Width
	c.DragTo(500)
	if got := c.Panel(PanelCode).Width; got != before {
		t.Errorf("DragTo without StartDrag changed width to %d", got)
	}
}

func TestDragClampsAtMax(t *testing.T) {
	c := NewController()
	c.StartDrag(PanelCode, 2000)
	c.DragTo(0) // pointer 2000px left
	if got, max := c.Panel(PanelCode).Width, c.Panel(PanelCode).MaxWidth; got != max {
		t.Errorf("width = %d, want clamped to max %d", got, max)
	}
}

func TestWithPanelWidth(t *testing.T) {
	c := NewController(WithPanelWidth(PanelFiles, 400), WithPanelWidth(PanelCode, 5000))
	if got := c.Panel(PanelFiles).Width; got != 400 {
		t.Errorf("files width = %d, want 400", got)
	}
	if got := c.Panel(PanelCode).Width; got != 800 {
		t.Errorf("code width = %d, want clamped to 800", got)
	}
}
