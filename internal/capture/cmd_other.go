//go:build !windows

// Package capture grabs screen regions as base64-encoded PNG images.
package capture

import "os/exec"

// configureCmd is a no-op outside Windows.
func configureCmd(cmd *exec.Cmd) {
	_ = cmd
}
