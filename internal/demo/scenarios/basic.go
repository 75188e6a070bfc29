// Package scenarios contains built-in demo scenarios for chatdeck.
package scenarios

import (
	"time"

	"chatdeck/internal/demo"
)

// Basic demonstrates the core chat workflow:
// - Starting with the seeded conversation open
// - Sending a message and watching the simulated reply arrive
// - The code panel opening automatically for code replies
// - Switching conversations from the sidebar
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Send a message, receive a reply, browse the code panel",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		// Initial view with the seeded conversation
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Type a message that triggers a code reply
		demo.TypeWithDesc("Can you write the HTML for a landing page?", "Ask for code"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),

		// Send it and let the reply resolve
		demo.Key("enter"),
		demo.Wait(2 * time.Second),
		demo.Capture(),

		// The code panel opened for the reply, scroll it
		demo.KeyWithDesc("tab", "Focus the panel"),
		demo.Key("down"),
		demo.Key("down"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Close the panel and browse conversations
		demo.Key("escape"),
		demo.KeyWithDesc("tab", "Focus the sidebar"),
		demo.Key("down"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("enter", "Open another conversation"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),
	},
}

// Panels walks through every side panel and the layout controls:
// keyboard panel shortcuts, exclusive panel switching, resize,
// and the sidebar toggle.
var Panels = &demo.Scenario{
	Name:        "panels",
	Description: "Tour the side panels, resizing, and sidebar toggle",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Code panel, seeded by the initial conversation
		demo.KeyWithDesc("ctrl+e", "Open the code panel"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Switching panels closes the previous one
		demo.KeyWithDesc("ctrl+g", "Switch to the graph panel"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		demo.KeyWithDesc("ctrl+f", "Switch to the files panel"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		demo.KeyWithDesc("ctrl+t", "Switch to AI features"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Widen the active panel
		demo.KeyWithDesc("shift+left", "Widen the panel"),
		demo.Key("shift+left"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),

		// Collapse chrome for a focused view
		demo.KeyWithDesc("ctrl+b", "Hide the sidebar"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),

		demo.Key("ctrl+b"),
		demo.Key("escape"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),
	},
}

// All returns every built-in scenario.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Panels,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
