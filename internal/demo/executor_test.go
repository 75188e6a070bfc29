package demo

import (
	"strings"
	"testing"
	"time"
)

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}

	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}

	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}

	if cfg.ReplyDelayMS != 25 {
		t.Errorf("ReplyDelayMS = %v, want 25", cfg.ReplyDelayMS)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := &Scenario{
		Name:        "test",
		Description: "Test scenario",
		Width:       120,
		Height:      40,
		Steps: []Step{
			Wait(100 * time.Millisecond),
			Key("enter"),
			Wait(100 * time.Millisecond),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	executor := NewExecutor(cfg)
	frames, err := executor.Run(scenario)

	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Should have at least the initial frame + frames from steps
	if len(frames) < 3 {
		t.Errorf("Expected at least 3 frames, got %d", len(frames))
	}

	// First frame should have initial delay
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}
}

func TestExecutorRunInvalidScenario(t *testing.T) {
	scenario := &Scenario{
		// Missing Name - should fail validation
		Description: "Invalid",
	}

	executor := NewExecutor(DefaultExecutorConfig())
	_, err := executor.Run(scenario)

	if err == nil {
		t.Error("Run() should return error for invalid scenario")
	}
}

func TestExecutorTypedTextAppearsInFrames(t *testing.T) {
	scenario := &Scenario{
		Name:   "typing",
		Width:  120,
		Height: 40,
		Steps: []Step{
			Type("hello from the demo"),
			Capture(),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	last := frames[len(frames)-1]
	if !strings.Contains(last.Content, "hello from the demo") {
		t.Error("Final frame should contain the typed text")
	}
}

func TestExecutorReplyResolves(t *testing.T) {
	scenario := &Scenario{
		Name:   "reply",
		Width:  120,
		Height: 40,
		Steps: []Step{
			Type("help"),
			Key("enter"),
			Capture(),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// The scheduled reply is drained synchronously, so the frame after
	// sending should already show the assistant's response.
	last := frames[len(frames)-1]
	if !strings.Contains(last.Content, "What specific help do you need") {
		t.Error("Final frame should contain the simulated reply")
	}
}

func TestExecutorAnnotationAppliesToNextFrame(t *testing.T) {
	scenario := &Scenario{
		Name:   "annotated",
		Width:  120,
		Height: 40,
		Steps: []Step{
			Annotate("The opening view"),
			Capture(),
			Capture(),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// frames[0] is the initial frame, frames[1] the first Capture
	if frames[1].Annotation != "The opening view" {
		t.Errorf("Annotation = %q, want 'The opening view'", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Errorf("Annotation should be cleared after use, got %q", frames[2].Annotation)
	}
}
