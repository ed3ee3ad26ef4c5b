//go:build windows

// Package pointer drives the system pointer through a platform input handle.
package pointer

import (
	"fmt"
	"syscall"

	"github.com/lxn/win"
)

// winInjector injects mouse input using SendInput.
type winInjector struct{}

// NewInjector returns a Windows input handle.
func NewInjector() (Injector, error) {
	return &winInjector{}, nil
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (w *winInjector) MoveAbs(x, y int) error {
	dx, dy := mapAbsolute(x, y)
	flags := uint32(win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK)
	if err := sendMouseInput(flags, dx, dy, 0); err != nil {
		if win.SetCursorPos(int32(x), int32(y)) {
			return nil
		}
		return err
	}
	win.SetCursorPos(int32(x), int32(y))
	return nil
}

// Down presses a mouse button.
func (w *winInjector) Down(b Button) error {
	down, _, err := buttonFlags(b)
	if err != nil {
		return err
	}
	return sendMouseInput(down, 0, 0, 0)
}

// Up releases a mouse button.
func (w *winInjector) Up(b Button) error {
	_, up, err := buttonFlags(b)
	if err != nil {
		return err
	}
	return sendMouseInput(up, 0, 0, 0)
}

// Click presses and releases a mouse button.
func (w *winInjector) Click(b Button) error {
	if err := w.Down(b); err != nil {
		return err
	}
	return w.Up(b)
}

// Location returns the current cursor position.
func (w *winInjector) Location() (int, int, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, syscall.Errno(win.GetLastError())
	}
	return int(pt.X), int(pt.Y), nil
}

// buttonFlags returns the down/up SendInput flags for a button.
func buttonFlags(b Button) (uint32, uint32, error) {
	switch b {
	case ButtonLeft:
		return win.MOUSEEVENTF_LEFTDOWN, win.MOUSEEVENTF_LEFTUP, nil
	case ButtonRight:
		return win.MOUSEEVENTF_RIGHTDOWN, win.MOUSEEVENTF_RIGHTUP, nil
	case ButtonMiddle:
		return win.MOUSEEVENTF_MIDDLEDOWN, win.MOUSEEVENTF_MIDDLEUP, nil
	default:
		return 0, 0, fmt.Errorf("unsupported button %q", b)
	}
}

// mapAbsolute converts screen coordinates to the WinAPI absolute range.
func mapAbsolute(x, y int) (int32, int32) {
	return scaleAbsolute(x, y,
		int(win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)),
		int(win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)),
		int(win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)),
		int(win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)),
	)
}
