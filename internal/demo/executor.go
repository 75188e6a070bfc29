package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"chatdeck/internal/app"
	"chatdeck/internal/config"
	"chatdeck/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// ReplyDelayMS overrides the simulated assistant latency so scripted
	// replies resolve quickly (default: 25ms)
	ReplyDelayMS int
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false,
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		ReplyDelayMS:     25,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		e.executeStep(i, step)
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	cfg := &config.Config{
		WelcomeShown: true, // Skip first-run persistence in demos
		ReplyDelayMS: e.config.ReplyDelayMS,
	}

	e.model = app.New(cfg, "demo")

	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// update delivers a message to the model and drains the returned commands,
// so scheduled replies resolve inside the scripted run instead of needing a
// running program loop.
func (e *Executor) update(msg tea.Msg) {
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	e.drain(cmd, 0)
}

// drainDepth bounds command-chain recursion; tick commands reschedule
// themselves forever otherwise.
const drainDepth = 8

func (e *Executor) drain(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > drainDepth {
		return
	}

	msg := cmd()
	if msg == nil {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, inner := range batch {
			e.drain(inner, depth+1)
		}
		return
	}

	result, next := e.model.Update(msg)
	e.model = result.(*app.Model)

	// A single animation advance is enough for a captured frame
	switch msg.(type) {
	case ui.TypingTickMsg, ui.SidebarTickMsg, ui.SelectionFlashTickMsg:
		return
	}

	e.drain(next, depth+1)
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "ctrl+b":
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	case "ctrl+e":
		return tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}
	case "ctrl+g":
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	case "ctrl+f":
		return tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl}
	case "ctrl+t":
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case "ctrl+n":
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case "ctrl+r":
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case "ctrl+x":
		return tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
	case "shift+left":
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift}
	case "shift+right":
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
