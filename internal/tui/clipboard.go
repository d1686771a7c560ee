package tui

import (
	"errors"

	"github.com/atotto/clipboard"
)

func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

var errClipboardUnsupported = errors.New("clipboard is not available")
