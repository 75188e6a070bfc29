package scenarios

import (
	"testing"

	"chatdeck/internal/demo"
)

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 2 {
		t.Errorf("All() should return 2 scenarios, got %d", len(scenarios))
	}

	// Verify each scenario is valid
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"basic", true},
		{"panels", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Get(tt.name)
			found := scenario != nil

			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestBasicScenario(t *testing.T) {
	scenario := Basic

	if scenario.Name != "basic" {
		t.Errorf("Name = %v, want 'basic'", scenario.Name)
	}

	if scenario.Width != 120 {
		t.Errorf("Width = %v, want 120", scenario.Width)
	}

	if len(scenario.Steps) == 0 {
		t.Error("Steps should not be empty")
	}

	// Check for variety of step types
	stepTypes := make(map[demo.StepType]bool)
	for _, step := range scenario.Steps {
		stepTypes[step.Type] = true
	}

	if !stepTypes[demo.StepTypeText] {
		t.Error("Basic scenario should have a Type step for user input")
	}

	if !stepTypes[demo.StepKey] {
		t.Error("Basic scenario should have key press steps")
	}

	if !stepTypes[demo.StepCapture] {
		t.Error("Basic scenario should capture frames")
	}
}

func TestPanelsScenarioCoversEveryPanel(t *testing.T) {
	keys := make(map[string]bool)
	for _, step := range Panels.Steps {
		if step.Type == demo.StepKey {
			keys[step.Key] = true
		}
	}

	for _, key := range []string{"ctrl+e", "ctrl+g", "ctrl+f", "ctrl+t", "ctrl+b", "shift+left"} {
		if !keys[key] {
			t.Errorf("Panels scenario missing %q step", key)
		}
	}
}
