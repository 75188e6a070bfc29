package ui

import (
	"strings"
	"testing"

	"chatdeck/internal/layout"
	"chatdeck/internal/sample"
)

func TestSidePanelOpenClose(t *testing.T) {
	p := NewSidePanel()
	if p.IsOpen() {
		t.Fatal("expected panel closed initially")
	}

	ctrl := layout.NewController()
	ctrl.TogglePanel(layout.PanelCode)
	p.Open(ctrl.Panel(layout.PanelCode))

	if !p.IsOpen() || p.ID() != layout.PanelCode {
		t.Errorf("expected code panel open, got %q", p.ID())
	}

	p.Close()
	if p.IsOpen() {
		t.Error("expected panel closed after Close")
	}
	if p.View() != "" {
		t.Error("expected empty view when closed")
	}
}

func TestSidePanelCodeContent(t *testing.T) {
	p := NewSidePanel()
	p.SetSize(50, 24)
	p.SetCode("body { margin: 0; }", "css")

	ctrl := layout.NewController()
	ctrl.TogglePanel(layout.PanelCode)
	p.Open(ctrl.Panel(layout.PanelCode))

	view := p.View()
	if !strings.Contains(view, "css") {
		t.Error("expected language tag in code panel view")
	}
	if !strings.Contains(view, "Code") {
		t.Error("expected panel title in view")
	}
}

func TestSidePanelGraphContent(t *testing.T) {
	p := NewSidePanel()
	p.SetSize(60, 24)

	ctrl := layout.NewController()
	ctrl.TogglePanel(layout.PanelGraph)
	p.Open(ctrl.Panel(layout.PanelGraph))

	view := p.View()
	if !strings.Contains(view, "responsive navbar") {
		t.Error("expected query content in graph panel view")
	}
	if !strings.Contains(view, "92%") {
		t.Error("expected relevance label in graph panel view")
	}
}

func TestSidePanelFilesContent(t *testing.T) {
	p := NewSidePanel()
	p.SetSize(50, 24)

	ctrl := layout.NewController()
	ctrl.TogglePanel(layout.PanelFiles)
	p.Open(ctrl.Panel(layout.PanelFiles))

	view := p.View()
	if !strings.Contains(view, "project-overview.pdf") {
		t.Error("expected file name in files panel view")
	}
	if !strings.Contains(view, "2.5 MB") {
		t.Error("expected humanized size in files panel view")
	}
}

func TestRenderGraphOrdersByRelevance(t *testing.T) {
	out := renderGraph(sample.Graph(), 60)

	first := strings.Index(out, "92%")
	second := strings.Index(out, "87%")
	third := strings.Index(out, "75%")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("expected all relevance labels, got:\n%s", out)
	}
	if !(first < second && second < third) {
		t.Error("expected chunks ordered by descending relevance")
	}
}

func TestAIFeaturesFormDefaults(t *testing.T) {
	f := NewAIFeaturesForm()

	if f.Model() != ModelBalanced {
		t.Errorf("expected default model %q, got %q", ModelBalanced, f.Model())
	}
	for _, feature := range []string{FeatureRAG, FeatureCAG, FeatureContextMemory} {
		if !f.Enabled(feature) {
			t.Errorf("expected %s enabled by default", feature)
		}
	}
	for _, feature := range []string{FeatureSummarization, FeatureReasoning, FeatureVisualization} {
		if f.Enabled(feature) {
			t.Errorf("expected %s disabled by default", feature)
		}
	}
}

func TestAIFeaturesFormView(t *testing.T) {
	f := NewAIFeaturesForm()
	f.SetWidth(40)

	view := f.View()
	if !strings.Contains(view, "Model") {
		t.Error("expected model field in form view")
	}
	if !strings.Contains(view, "Features") {
		t.Error("expected features field in form view")
	}
}
