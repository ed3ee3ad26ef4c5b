// Package capture grabs screen regions as base64-encoded PNG images.
package capture

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/frudas24/deskpilot/internal/geom"
)

const (
	boardCaptureFile  = "deskpilot_board_capture.png"
	screenCaptureFile = "deskpilot_screen_capture.png"
)

// Backend writes a PNG screenshot to a file path. A nil area means the full screen.
type Backend interface {
	Capture(area *geom.BoardArea, outPath string) error
	Name() string
}

// Gateway produces base64 PNG captures through a backend and a scoped temp file.
//
// The temp file path is fixed per capture kind, so captures are serialized
// inside the process; separate processes sharing the temp dir still race.
type Gateway struct {
	mu      sync.Mutex
	backend Backend
	tempDir string
	log     *zap.Logger
}

// NewGateway returns a gateway writing temp files under tempDir (os.TempDir when empty).
func NewGateway(backend Backend, tempDir string, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{backend: backend, tempDir: tempDir, log: logger}
}

// CaptureRegion captures a board area and returns it as base64 PNG.
func (g *Gateway) CaptureRegion(area geom.BoardArea) (string, error) {
	if err := area.Validate(); err != nil {
		return "", &CaptureError{Kind: InvalidArea, Err: err}
	}
	return g.capture(&area, boardCaptureFile)
}

// CaptureFullScreen captures the primary display and returns it as base64 PNG.
func (g *Gateway) CaptureFullScreen() (string, error) {
	return g.capture(nil, screenCaptureFile)
}

// capture runs the backend against the temp path, reads the file back, and removes it.
func (g *Gateway) capture(area *geom.BoardArea, name string) (string, error) {
	if g.backend == nil {
		return "", &CaptureError{Kind: ToolFailed, Err: errors.New("no capture backend configured")}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	dir := g.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, name)
	_ = os.Remove(path)
	defer g.cleanup(path)

	start := time.Now()
	if err := g.backend.Capture(area, path); err != nil {
		return "", &CaptureError{Kind: ToolFailed, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &CaptureError{Kind: ReadFailed, Err: err}
	}
	if len(data) == 0 {
		return "", &CaptureError{Kind: ReadFailed, Err: errors.New("capture file is empty")}
	}

	g.log.Debug("capture complete",
		zap.String("backend", g.backend.Name()),
		zap.Bool("region", area != nil),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))
	return base64.StdEncoding.EncodeToString(data), nil
}

// cleanup removes the temp file; failures are logged, never returned.
func (g *Gateway) cleanup(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		g.log.Warn("capture temp file not removed", zap.String("path", path), zap.Error(err))
	}
}
