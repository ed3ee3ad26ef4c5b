//go:build windows

// Package pointer drives the system pointer through a platform input handle.
package pointer

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// newMouseInput builds a single SendInput mouse record.
func newMouseInput(flags uint32, dx, dy int32, data uint32) win.MOUSE_INPUT {
	return win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:        dx,
			Dy:        dy,
			MouseData: data,
			DwFlags:   flags,
		},
	}
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32, data uint32) error {
	input := newMouseInput(flags, dx, dy, data)
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return syscall.Errno(win.GetLastError())
	}
	return nil
}
