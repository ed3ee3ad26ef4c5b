// Package config loads environment configuration for DeskPilot.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/frudas24/deskpilot/internal/sequence"
)

const (
	defaultListenAddr     = "127.0.0.1:8787"
	defaultDataDir        = "./data"
	defaultCalibFile      = "calib.json"
	defaultTimingFile     = "timing.yaml"
	defaultGestureMode    = "drag"
	defaultCaptureBackend = BackendTool
	defaultCaptureTool    = "screencapture"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Capture backends.
const (
	BackendTool      = "tool"
	BackendInProcess = "inprocess"
)

// Config holds runtime configuration values.
type Config struct {
	EnvFile          string
	ListenAddr       string
	UIPassword       string
	DataDir          string
	CalibPath        string
	TimingProfile    string
	GestureMode      sequence.GestureMode
	ReleaseOnFailure bool
	CaptureBackend   string
	CaptureTool      string
	CaptureDisplay   int
	LogLevel         string
	LogFormat        string
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	return LoadFile(filepath.Join(defaultDataDir, ".env"))
}

// LoadFile reads configuration from a dotenv file plus the environment.
// Environment variables win over the file; a missing file is not an error.
func LoadFile(envPath string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LISTEN_ADDR", defaultListenAddr)
	v.SetDefault("DATA_DIR", defaultDataDir)
	v.SetDefault("GESTURE_MODE", defaultGestureMode)
	v.SetDefault("RELEASE_ON_FAILURE", "false")
	v.SetDefault("CAPTURE_BACKEND", defaultCaptureBackend)
	v.SetDefault("CAPTURE_TOOL", defaultCaptureTool)
	v.SetDefault("CAPTURE_DISPLAY", "0")
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FORMAT", defaultLogFormat)

	if envPath != "" {
		if err := readEnvFile(v, envPath); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		EnvFile:     envPath,
		ListenAddr:  str(v, "LISTEN_ADDR"),
		UIPassword:  str(v, "UI_PASSWORD"),
		DataDir:     str(v, "DATA_DIR"),
		CaptureTool: str(v, "CAPTURE_TOOL"),
		LogLevel:    strings.ToLower(str(v, "LOG_LEVEL")),
	}
	cfg.CalibPath = str(v, "CALIB_PATH")
	if cfg.CalibPath == "" {
		cfg.CalibPath = filepath.Join(cfg.DataDir, defaultCalibFile)
	}
	cfg.TimingProfile = str(v, "TIMING_PROFILE")
	if cfg.TimingProfile == "" {
		cfg.TimingProfile = filepath.Join(cfg.DataDir, defaultTimingFile)
	}

	mode, err := sequence.ParseMode(str(v, "GESTURE_MODE"))
	if err != nil {
		return Config{}, fmt.Errorf("GESTURE_MODE: %w", err)
	}
	cfg.GestureMode = mode

	release, err := parseBool(str(v, "RELEASE_ON_FAILURE"))
	if err != nil {
		return Config{}, fmt.Errorf("RELEASE_ON_FAILURE: %w", err)
	}
	cfg.ReleaseOnFailure = release

	switch backend := strings.ToLower(str(v, "CAPTURE_BACKEND")); backend {
	case BackendTool, BackendInProcess:
		cfg.CaptureBackend = backend
	default:
		return Config{}, fmt.Errorf("CAPTURE_BACKEND must be %q or %q, got %q", BackendTool, BackendInProcess, backend)
	}

	display, err := strconv.Atoi(str(v, "CAPTURE_DISPLAY"))
	if err != nil {
		return Config{}, fmt.Errorf("CAPTURE_DISPLAY must be an integer: %w", err)
	}
	if display < 0 {
		return Config{}, errors.New("CAPTURE_DISPLAY must be >= 0")
	}
	cfg.CaptureDisplay = display

	switch format := strings.ToLower(str(v, "LOG_FORMAT")); format {
	case "json", "console":
		cfg.LogFormat = format
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT must be json or console, got %q", format)
	}

	return cfg, nil
}

// readEnvFile merges KEY=VALUE pairs from a dotenv file into v.
func readEnvFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// str returns a trimmed string value with surrounding quotes removed.
func str(v *viper.Viper, key string) string {
	return strings.Trim(strings.TrimSpace(v.GetString(key)), `"'`)
}

// parseBool accepts the usual spellings of true and false.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "n", "off":
		return false, nil
	case "1", "true", "yes", "y", "on":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", raw)
	}
}
