// Package capture grabs screen regions as base64-encoded PNG images.
package capture

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/frudas24/deskpilot/internal/geom"
)

// Runner executes an external command to completion.
type Runner interface {
	Run(path string, args []string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run starts the command, waits for it, and folds stderr into the error.
func (ExecRunner) Run(path string, args []string) error {
	cmd := exec.Command(path, args...)
	configureCmd(cmd)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ToolBackend captures by shelling out to a screenshot executable.
type ToolBackend struct {
	Path   string
	Runner Runner
}

// NewToolBackend returns a backend for the given screenshot tool path.
func NewToolBackend(path string) *ToolBackend {
	if path == "" {
		path = DefaultToolPath
	}
	return &ToolBackend{Path: path, Runner: ExecRunner{}}
}

// Capture writes a PNG of area (or the full screen when area is nil) to outPath.
func (t *ToolBackend) Capture(area *geom.BoardArea, outPath string) error {
	args := BuildFullArgs(outPath)
	if area != nil {
		args = BuildRegionArgs(*area, outPath)
	}
	runner := t.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	return runner.Run(t.Path, args)
}

// Name identifies the backend in logs.
func (t *ToolBackend) Name() string {
	return "tool:" + t.Path
}
