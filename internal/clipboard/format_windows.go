//go:build windows

// Package clipboard reads text from the system clipboard.
package clipboard

import "github.com/lxn/win"

// textAvailable reports whether the clipboard offers Unicode text.
func textAvailable() bool {
	return win.IsClipboardFormatAvailable(win.CF_UNICODETEXT)
}
