// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"chatdeck/internal/logger"
)

// notifyFunc matches beeep.Notify and can be swapped out in tests.
type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the underlying notification call. Tests use this to
// avoid touching the desktop.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the default beeep-backed notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: sending - title=%q, message=%q", title, message)
	// Empty icon lets beeep pick the platform default
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// ReplyReady notifies that the assistant finished while the window was
// unfocused. Long code replies are summarized rather than dumped into the
// notification body.
func ReplyReady(preview string) error {
	const maxPreview = 80
	r := []rune(preview)
	if len(r) > maxPreview {
		preview = string(r[:maxPreview]) + "..."
	}
	return Send("ChatDeck", preview)
}
