package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frudas24/deskpilot/internal/sequence"
)

// clearEnv blanks every key the loader reads so host settings cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "UI_PASSWORD", "DATA_DIR", "CALIB_PATH", "TIMING_PROFILE",
		"GESTURE_MODE", "RELEASE_ON_FAILURE", "CAPTURE_BACKEND", "CAPTURE_TOOL",
		"CAPTURE_DISPLAY", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

// writeEnv writes a dotenv file and returns its path.
func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	return path
}

// TestLoadFile_Defaults verifies defaults apply when nothing is configured.
func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr || cfg.GestureMode != sequence.ModeDrag {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CaptureBackend != BackendTool || cfg.CaptureTool != "screencapture" || cfg.ReleaseOnFailure {
		t.Fatalf("unexpected capture defaults: %+v", cfg)
	}
	if cfg.CalibPath != filepath.Join(defaultDataDir, "calib.json") {
		t.Fatalf("unexpected calib path %q", cfg.CalibPath)
	}
	if cfg.UIPassword != "" {
		t.Fatalf("expected empty password, got %q", cfg.UIPassword)
	}
}

// TestLoadFile_DotEnv verifies values from the dotenv file are applied.
func TestLoadFile_DotEnv(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, strings.Join([]string{
		"# comment",
		"UI_PASSWORD=hunter2",
		"GESTURE_MODE=two_click",
		"RELEASE_ON_FAILURE=yes",
		"CAPTURE_BACKEND=inprocess",
		"CAPTURE_DISPLAY=2",
		"DATA_DIR=/var/lib/deskpilot",
	}, "\n"))

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.UIPassword != "hunter2" || cfg.GestureMode != sequence.ModeTwoClick || !cfg.ReleaseOnFailure {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.CaptureBackend != BackendInProcess || cfg.CaptureDisplay != 2 {
		t.Fatalf("unexpected capture config: %+v", cfg)
	}
	if cfg.CalibPath != filepath.Join("/var/lib/deskpilot", "calib.json") {
		t.Fatalf("expected calib path under DATA_DIR, got %q", cfg.CalibPath)
	}
	if cfg.EnvFile != path {
		t.Fatalf("expected EnvFile %q independent of DATA_DIR, got %q", path, cfg.EnvFile)
	}
}

// TestLoadFile_EnvWinsOverFile verifies process env overrides the dotenv file.
func TestLoadFile_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "LISTEN_ADDR=0.0.0.0:1\n")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9999")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9999" {
		t.Fatalf("expected env override, got %q", cfg.ListenAddr)
	}
}

// TestLoadFile_InvalidValues verifies each validation error names its key.
func TestLoadFile_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"GESTURE_MODE":       "hover",
		"RELEASE_ON_FAILURE": "maybe",
		"CAPTURE_BACKEND":    "ffmpeg",
		"CAPTURE_DISPLAY":    "first",
		"LOG_FORMAT":         "xml",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := LoadFile("")
			if err == nil || !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error naming %s, got %v", key, err)
			}
		})
	}
}
