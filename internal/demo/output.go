package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// VHSConfig configures VHS tape generation.
type VHSConfig struct {
	Output   string // Output file the tape renders to (e.g., demo.gif)
	Width    int
	Height   int
	FontSize int
	Theme    string
}

// DefaultVHSConfig returns sensible defaults for tape generation.
func DefaultVHSConfig() VHSConfig {
	return VHSConfig{
		Output:   "demo.gif",
		Width:    120,
		Height:   40,
		FontSize: 14,
		Theme:    "Catppuccin Mocha",
	}
}

// GenerateVHSTape writes a VHS tape that replays the scenario's input
// script. Render it with the vhs CLI.
func GenerateVHSTape(w io.Writer, s *Scenario, cfg VHSConfig) error {
	if err := s.Validate(); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s: %s\n\n", s.Name, s.Description)
	fmt.Fprintf(&sb, "Output %s\n\n", cfg.Output)
	fmt.Fprintf(&sb, "Set Width %d\n", cfg.Width*10)
	fmt.Fprintf(&sb, "Set Height %d\n", cfg.Height*20)
	fmt.Fprintf(&sb, "Set FontSize %d\n", cfg.FontSize)
	if cfg.Theme != "" {
		fmt.Fprintf(&sb, "Set Theme %q\n", cfg.Theme)
	}
	sb.WriteString("\nType \"chatdeck\"\nEnter\nSleep 1s\n\n")

	for _, step := range s.Steps {
		if step.Description != "" {
			fmt.Fprintf(&sb, "# %s\n", step.Description)
		}
		switch step.Type {
		case StepWait:
			fmt.Fprintf(&sb, "Sleep %s\n", vhsDuration(step.Duration))
		case StepKey:
			sb.WriteString(vhsKey(step.Key) + "\n")
		case StepTypeText:
			fmt.Fprintf(&sb, "Type %q\n", step.Text)
		case StepAnnotate, StepCapture:
			// Frame-level steps have no tape equivalent
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// vhsDuration formats a duration the way VHS expects
func vhsDuration(d time.Duration) string {
	if d <= 0 {
		d = 500 * time.Millisecond
	}
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	return fmt.Sprintf("%dms", int(d/time.Millisecond))
}

// vhsKey maps a scenario key string to a VHS tape command
func vhsKey(key string) string {
	switch key {
	case "enter":
		return "Enter"
	case "tab":
		return "Tab"
	case "escape", "esc":
		return "Escape"
	case "backspace":
		return "Backspace"
	case "up":
		return "Up"
	case "down":
		return "Down"
	case "left":
		return "Left"
	case "right":
		return "Right"
	case "space":
		return "Space"
	default:
		if strings.HasPrefix(key, "ctrl+") && len(key) == 6 {
			return "Ctrl+" + strings.ToUpper(key[5:])
		}
		if strings.HasPrefix(key, "shift+") && len(key) > 6 {
			rest := key[6:]
			return "Shift+" + strings.ToUpper(rest[:1]) + rest[1:]
		}
		return fmt.Sprintf("Type %q", key)
	}
}

// castHeader is the asciinema v2 file header.
type castHeader struct {
	Version   int    `json:"version"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Timestamp int64  `json:"timestamp"`
	Title     string `json:"title,omitempty"`
}

// GenerateASCIICast writes captured frames as an asciinema v2 cast file.
// Each frame clears the screen and redraws, so playback matches what the
// executor rendered.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)

	header := castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
	}
	if err := enc.Encode(header); err != nil {
		return err
	}

	elapsed := 0.0
	for _, frame := range frames {
		elapsed += frame.Delay.Seconds()

		// Clear, home, then redraw with CRLF line endings
		content := "\x1b[2J\x1b[H" + strings.ReplaceAll(frame.Content, "\n", "\r\n")
		event := []interface{}{elapsed, "o", content}
		if err := enc.Encode(event); err != nil {
			return err
		}
	}

	return nil
}
