package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFooterDefaultBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(160)

	view := ansi.Strip(f.View())
	for _, want := range []string{"enter", "ctrl+b", "tab"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in default footer, got %q", want, view)
		}
	}
}

func TestFooterEditModeBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(160)
	f.SetContext(false, true, false, false, false)

	view := ansi.Strip(f.View())
	if !strings.Contains(view, "save") {
		t.Errorf("expected save binding in edit mode footer, got %q", view)
	}
	if !strings.Contains(view, "cancel") {
		t.Errorf("expected cancel binding in edit mode footer, got %q", view)
	}
}

func TestFooterSidebarBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(160)
	f.SetContext(true, false, false, false, false)

	view := ansi.Strip(f.View())
	if !strings.Contains(view, "search") {
		t.Errorf("expected search binding in sidebar footer, got %q", view)
	}
}

func TestFooterPanelBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(160)
	f.SetContext(false, false, true, false, false)

	view := ansi.Strip(f.View())
	if !strings.Contains(view, "close") {
		t.Errorf("expected close binding in panel footer, got %q", view)
	}
	if !strings.Contains(view, "resize") {
		t.Errorf("expected resize binding in panel footer, got %q", view)
	}
}
