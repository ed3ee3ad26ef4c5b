// Package command exposes automation operations over a JSON request/response protocol.
package command

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/frudas24/deskpilot/internal/capture"
	"github.com/frudas24/deskpilot/internal/clipboard"
	"github.com/frudas24/deskpilot/internal/geom"
	"github.com/frudas24/deskpilot/internal/pointer"
	"github.com/frudas24/deskpilot/internal/sequence"
)

// Sequencer runs pointer gestures.
type Sequencer interface {
	ClickPosition(x, y int) (string, error)
	ExecuteMoveWithMode(cmd geom.MoveCommand, mode sequence.GestureMode) (string, error)
	MoveMouse(x, y int) (string, error)
	MousePosition() (geom.Position, error)
}

// Capturer produces base64 PNG screenshots.
type Capturer interface {
	CaptureRegion(area geom.BoardArea) (string, error)
	CaptureFullScreen() (string, error)
}

// ClipboardReader returns the clipboard text.
type ClipboardReader interface {
	ReadText() (string, error)
}

// Deps holds the collaborators a Dispatcher calls into.
type Deps struct {
	Sequencer Sequencer
	Capturer  Capturer
	Clipboard ClipboardReader
	// InputEnabled gates pointer operations; nil means always enabled.
	InputEnabled func() bool
	// Board returns the stored board area used when a capture request omits one.
	Board  func() (geom.BoardArea, bool)
	Logger *zap.Logger
}

// Dispatcher executes requests one at a time.
type Dispatcher struct {
	mu   sync.Mutex
	deps Deps
	log  *zap.Logger
}

// NewDispatcher returns a dispatcher over deps.
func NewDispatcher(deps Deps) *Dispatcher {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{deps: deps, log: logger}
}

// Handle runs a request to completion and returns its response.
// Calls are serialized so gestures from different callers never interleave.
func (d *Dispatcher) Handle(req Request) Response {
	d.mu.Lock()
	defer d.mu.Unlock()

	op := canonicalOp(req.Op)
	start := time.Now()
	result, err := d.dispatch(op, req)
	if err != nil {
		kind := errorKind(err)
		d.log.Warn("command failed",
			zap.Int("id", req.ID),
			zap.String("op", op),
			zap.String("kind", kind),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return Response{ID: req.ID, OK: false, Error: &ErrorDetail{Kind: kind, Message: err.Error()}}
	}
	d.log.Info("command complete",
		zap.Int("id", req.ID),
		zap.String("op", op),
		zap.Duration("elapsed", time.Since(start)))
	return Response{ID: req.ID, OK: true, Result: result}
}

// dispatch routes an operation to its handler.
func (d *Dispatcher) dispatch(op string, req Request) (any, error) {
	if isInputOp(op) && d.deps.InputEnabled != nil && !d.deps.InputEnabled() {
		return nil, &requestError{kind: KindInputDisabled, msg: "pointer input is disabled"}
	}

	switch op {
	case OpClickPosition:
		x, y, err := coords(req)
		if err != nil {
			return nil, err
		}
		return d.sequencer().ClickPosition(x, y)
	case OpMoveMouse:
		x, y, err := coords(req)
		if err != nil {
			return nil, err
		}
		return d.sequencer().MoveMouse(x, y)
	case OpExecuteChessMove:
		if req.Move == nil {
			return nil, badRequest("move is required")
		}
		var mode sequence.GestureMode
		if req.Mode != "" {
			m, err := sequence.ParseMode(req.Mode)
			if err != nil {
				return nil, badRequest(err.Error())
			}
			mode = m
		}
		return d.sequencer().ExecuteMoveWithMode(*req.Move, mode)
	case OpGetMousePosition:
		return d.sequencer().MousePosition()
	case OpCaptureBoard:
		area, err := d.area(req)
		if err != nil {
			return nil, err
		}
		return d.capturer().CaptureRegion(area)
	case OpCaptureFullScreen:
		return d.capturer().CaptureFullScreen()
	case OpGetClipboardText:
		return d.clipboard().ReadText()
	default:
		return nil, &requestError{kind: KindUnknownOp, msg: fmt.Sprintf("unknown op %q", req.Op)}
	}
}

// area picks the request area, falling back to the stored board.
func (d *Dispatcher) area(req Request) (geom.BoardArea, error) {
	if req.Area != nil {
		return *req.Area, nil
	}
	if d.deps.Board != nil {
		if a, ok := d.deps.Board(); ok {
			return a, nil
		}
	}
	return geom.BoardArea{}, badRequest("area is required and no board is stored")
}

// sequencer returns the configured sequencer or a failing placeholder.
func (d *Dispatcher) sequencer() Sequencer {
	if d.deps.Sequencer == nil {
		return missing{}
	}
	return d.deps.Sequencer
}

// capturer returns the configured capturer or a failing placeholder.
func (d *Dispatcher) capturer() Capturer {
	if d.deps.Capturer == nil {
		return missing{}
	}
	return d.deps.Capturer
}

// clipboard returns the configured clipboard reader or a failing placeholder.
func (d *Dispatcher) clipboard() ClipboardReader {
	if d.deps.Clipboard == nil {
		return missing{}
	}
	return d.deps.Clipboard
}

// coords extracts required x/y fields.
func coords(req Request) (int, int, error) {
	if req.X == nil || req.Y == nil {
		return 0, 0, badRequest("x and y are required")
	}
	return *req.X, *req.Y, nil
}

// requestError is a failure raised by the command layer.
type requestError struct {
	kind string
	msg  string
}

// Error returns the message.
func (e *requestError) Error() string {
	return e.msg
}

// badRequest builds a BadRequest error.
func badRequest(msg string) error {
	return &requestError{kind: KindBadRequest, msg: msg}
}

// errorKind maps an error onto its wire kind.
func errorKind(err error) string {
	var (
		re *requestError
		de *pointer.DriverError
		ce *capture.CaptureError
		ke *clipboard.Error
	)
	switch {
	case errors.As(err, &re):
		return re.kind
	case errors.As(err, &de):
		return string(de.Kind)
	case errors.As(err, &ce):
		return string(ce.Kind)
	case errors.As(err, &ke):
		return string(ke.Kind)
	default:
		return KindInternal
	}
}

var errUnavailable = errors.New("operation not configured")

// missing fills in for collaborators that were not wired.
type missing struct{}

// ClickPosition fails.
func (missing) ClickPosition(int, int) (string, error) { return "", errUnavailable }

// ExecuteMoveWithMode fails.
func (missing) ExecuteMoveWithMode(geom.MoveCommand, sequence.GestureMode) (string, error) {
	return "", errUnavailable
}

// MoveMouse fails.
func (missing) MoveMouse(int, int) (string, error) { return "", errUnavailable }

// MousePosition fails.
func (missing) MousePosition() (geom.Position, error) { return geom.Position{}, errUnavailable }

// CaptureRegion fails.
func (missing) CaptureRegion(geom.BoardArea) (string, error) { return "", errUnavailable }

// CaptureFullScreen fails.
func (missing) CaptureFullScreen() (string, error) { return "", errUnavailable }

// ReadText fails.
func (missing) ReadText() (string, error) { return "", errUnavailable }
