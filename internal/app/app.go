// Package app wires configuration, session state, and the command boundary together.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/frudas24/deskpilot/internal/calib"
	"github.com/frudas24/deskpilot/internal/capture"
	"github.com/frudas24/deskpilot/internal/clipboard"
	"github.com/frudas24/deskpilot/internal/command"
	"github.com/frudas24/deskpilot/internal/config"
	"github.com/frudas24/deskpilot/internal/monitor"
	"github.com/frudas24/deskpilot/internal/pointer"
	"github.com/frudas24/deskpilot/internal/sequence"
	"github.com/frudas24/deskpilot/internal/session"
	"github.com/frudas24/deskpilot/internal/timing"
)

// DisplayProvider returns the current list of displays.
type DisplayProvider func() ([]monitor.Display, error)

// Deps holds the platform collaborators an App drives.
type Deps struct {
	Pointer   sequence.Pointer
	Backend   capture.Backend
	Clipboard command.ClipboardReader
	Displays  DisplayProvider
	Profile   timing.Profile
	// Sleep replaces time.Sleep for settle waits; nil uses the real clock.
	Sleep func(time.Duration)
	// TempDir holds capture temp files; empty uses os.TempDir.
	TempDir string
}

// App coordinates the HTTP API, the command server, and the automation core.
type App struct {
	mu         sync.Mutex
	cfg        config.Config
	log        *zap.Logger
	session    *session.Session
	sequencer  *sequence.Sequencer
	capture    *capture.Gateway
	dispatcher *command.Dispatcher
	command    *command.Server
	displays   DisplayProvider
}

// New creates an application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, deps Deps, logger *zap.Logger) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if deps.Pointer == nil {
		return nil, errors.New("pointer driver is required")
	}
	if deps.Backend == nil {
		return nil, errors.New("capture backend is required")
	}
	if deps.Clipboard == nil {
		return nil, errors.New("clipboard reader is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Displays == nil {
		deps.Displays = monitor.ListDisplays
	}

	a := &App{
		cfg:      cfg,
		log:      logger,
		session:  sess,
		displays: deps.Displays,
	}
	a.sequencer = sequence.New(deps.Pointer, sequence.Options{
		Mode:             cfg.GestureMode,
		Profile:          deps.Profile,
		ReleaseOnFailure: cfg.ReleaseOnFailure,
		Sleep:            deps.Sleep,
		Logger:           logger.Named("sequence"),
	})
	a.capture = capture.NewGateway(deps.Backend, deps.TempDir, logger.Named("capture"))
	a.dispatcher = command.NewDispatcher(command.Deps{
		Sequencer:    a.sequencer,
		Capturer:     a.capture,
		Clipboard:    deps.Clipboard,
		InputEnabled: sess.InputEnabled,
		Board:        sess.Board,
		Logger:       logger.Named("command"),
	})
	a.command = command.NewServer(a.dispatcher, sess.Authorize, logger.Named("command"))
	return a, nil
}

// NewSystem creates an application bound to the real pointer, screen, and clipboard.
func NewSystem(cfg config.Config, sess *session.Session, logger *zap.Logger) (*App, error) {
	profile, err := timing.Load(cfg.TimingProfile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.TimingProfile, err)
	}
	return New(cfg, sess, Deps{
		Pointer:   pointer.NewSystemDriver(),
		Backend:   NewBackend(cfg),
		Clipboard: clipboard.NewReader(),
		Displays:  monitor.ListDisplays,
		Profile:   profile,
	}, logger)
}

// NewBackend selects the capture backend named in cfg.
func NewBackend(cfg config.Config) capture.Backend {
	if cfg.CaptureBackend == config.BackendInProcess {
		return capture.NewInProcessBackend(cfg.CaptureDisplay)
	}
	return capture.NewToolBackend(cfg.CaptureTool)
}

// Start loads the stored calibration into the session.
func (a *App) Start() error {
	c, err := calib.Load(a.cfg.CalibPath)
	if err != nil {
		return fmt.Errorf("load calibration: %w", err)
	}
	a.session.SetCalib(c)
	if c.HasBoard() {
		a.log.Info("board calibration loaded",
			zap.String("path", a.cfg.CalibPath),
			zap.Stringer("topLeft", c.Board.TopLeft),
			zap.Stringer("bottomRight", c.Board.BottomRight))
	}
	return nil
}

// SaveBoard validates, persists, and activates a board calibration.
func (a *App) SaveBoard(c calib.Calib) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := calib.Save(a.cfg.CalibPath, c); err != nil {
		return err
	}
	a.session.SetCalib(c)
	a.log.Info("board calibration saved", zap.String("path", a.cfg.CalibPath))
	return nil
}

// ListDisplays returns the active displays.
func (a *App) ListDisplays() ([]monitor.Display, error) {
	return a.displays()
}

// Sequencer returns the gesture sequencer.
func (a *App) Sequencer() *sequence.Sequencer {
	return a.sequencer
}

// Capture returns the capture gateway.
func (a *App) Capture() *capture.Gateway {
	return a.capture
}

// Dispatcher returns the command dispatcher shared by all transports.
func (a *App) Dispatcher() *command.Dispatcher {
	return a.dispatcher
}

// Command returns the command websocket handler.
func (a *App) Command() *command.Server {
	return a.command
}

// Session returns the controller session.
func (a *App) Session() *session.Session {
	return a.session
}
