package keys

import "testing"

// The constants exist so handlers can switch on tea.KeyPressMsg.String()
// without hardcoding strings. Pin the runtime values here so a Bubble Tea
// upgrade that changes them fails loudly.
func TestKeyStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},
		{"Enter", Enter, "enter"},
		{"Tab", Tab, "tab"},
		{"Space", Space, "space"},
		{"Backspace", Backspace, "backspace"},
		{"Escape", Escape, "esc"},
		{"ShiftLeft", ShiftLeft, "shift+left"},
		{"ShiftRight", ShiftRight, "shift+right"},
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlB", CtrlB, "ctrl+b"},
		{"CtrlE", CtrlE, "ctrl+e"},
		{"CtrlG", CtrlG, "ctrl+g"},
		{"CtrlF", CtrlF, "ctrl+f"},
		{"CtrlT", CtrlT, "ctrl+t"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlX", CtrlX, "ctrl+x"},
		{"CtrlY", CtrlY, "ctrl+y"},
		{"CtrlU", CtrlU, "ctrl+u"},
		{"CtrlD", CtrlD, "ctrl+d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
