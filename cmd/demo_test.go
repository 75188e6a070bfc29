package cmd

import (
	"testing"
)

func TestGetScenario(t *testing.T) {
	origWidth, origHeight := demoWidth, demoHeight
	defer func() { demoWidth, demoHeight = origWidth, origHeight }()

	demoWidth, demoHeight = 100, 30
	s, err := getScenario("basic")
	if err != nil {
		t.Fatalf("getScenario() error = %v", err)
	}
	if s.Width != 100 || s.Height != 30 {
		t.Errorf("dimensions = %dx%d, want 100x30", s.Width, s.Height)
	}

	if _, err := getScenario("nonexistent"); err == nil {
		t.Error("getScenario() should reject an unknown scenario")
	}
}

func TestOutputPath(t *testing.T) {
	origOutput := demoOutput
	defer func() { demoOutput = origOutput }()

	demoOutput = ""
	if got := outputPath("basic", "tape"); got != "basic.tape" {
		t.Errorf("outputPath() = %q, want basic.tape", got)
	}

	demoOutput = "custom.cast"
	if got := outputPath("basic", "cast"); got != "custom.cast" {
		t.Errorf("outputPath() = %q, want custom.cast", got)
	}
}

func TestCaptureAllFlagScopedToFrameSubcommands(t *testing.T) {
	if demoRunCmd.Flags().Lookup("capture-all") == nil {
		t.Error("run should have --capture-all")
	}
	if demoCastCmd.Flags().Lookup("capture-all") == nil {
		t.Error("cast should have --capture-all")
	}
	if demoGenerateCmd.Flags().Lookup("capture-all") != nil {
		t.Error("generate should not have --capture-all")
	}
}
