// Package clipboard wraps the system clipboard for copying code blocks and
// message text out of the chat.
package clipboard

import (
	"golang.design/x/clipboard"

	"chatdeck/internal/errors"
	"chatdeck/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times. On headless systems without a
// display server it fails; callers should degrade gracefully.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		return errors.ClipboardUnavailable(err)
	}

	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

// WriteText places text on the system clipboard.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}

// ReadText returns the text currently on the clipboard, or "" if the
// clipboard is empty or holds a non-text format.
func ReadText() (string, error) {
	if !initialized {
		if err := Init(); err != nil {
			return "", err
		}
	}

	return string(clipboard.Read(clipboard.FmtText)), nil
}
