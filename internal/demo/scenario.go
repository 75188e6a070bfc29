// Package demo provides infrastructure for generating recordings of the
// chat interface. Scenarios drive the real app model with scripted input,
// so recordings are deterministic and need no terminal emulator.
package demo

import (
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Steps       []Step
}

// Validate checks that the scenario is valid and fills in dimension
// defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
