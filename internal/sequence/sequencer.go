// Package sequence composes pointer primitives into timed board gestures.
package sequence

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/frudas24/deskpilot/internal/geom"
	"github.com/frudas24/deskpilot/internal/pointer"
	"github.com/frudas24/deskpilot/internal/timing"
)

// Pointer is the set of driver primitives a sequence needs.
type Pointer interface {
	MoveAbsolute(x, y int) error
	Click(b pointer.Button) error
	Press(b pointer.Button) error
	Release(b pointer.Button) error
	CurrentLocation() (geom.Position, error)
}

// Options configures a Sequencer.
type Options struct {
	Mode             GestureMode
	Profile          timing.Profile
	ReleaseOnFailure bool
	Sleep            func(time.Duration)
	Logger           *zap.Logger
}

// Sequencer runs gesture plans against a pointer driver.
//
// Every call blocks until the whole plan, including its settle waits, has run.
// Waits are unconditional and a started plan cannot be cancelled. Sequencer
// is not reentrant: concurrent calls interleave their physical effects.
type Sequencer struct {
	driver           Pointer
	mode             GestureMode
	profile          timing.Profile
	releaseOnFailure bool
	sleep            func(time.Duration)
	log              *zap.Logger
}

// New returns a sequencer bound to a driver.
func New(driver Pointer, opts Options) *Sequencer {
	if opts.Mode == "" {
		opts.Mode = ModeDrag
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Sequencer{
		driver:           driver,
		mode:             opts.Mode,
		profile:          opts.Profile,
		releaseOnFailure: opts.ReleaseOnFailure,
		sleep:            opts.Sleep,
		log:              opts.Logger,
	}
}

// Mode returns the configured gesture mode.
func (s *Sequencer) Mode() GestureMode {
	return s.mode
}

// ClickPosition moves to (x, y) and left-clicks there.
func (s *Sequencer) ClickPosition(x, y int) (string, error) {
	at := geom.Position{X: x, Y: y}
	if err := s.Run(ClickPlan(s.profile, at)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Clicked at (%d, %d)", x, y), nil
}

// ExecuteMove performs a piece move using the configured gesture mode.
func (s *Sequencer) ExecuteMove(cmd geom.MoveCommand) (string, error) {
	return s.ExecuteMoveWithMode(cmd, s.mode)
}

// ExecuteMoveWithMode performs a piece move using an explicit gesture mode.
//
// On failure the pointer and button state are wherever the last successful
// step left them; in drag mode the left button may still be held unless
// ReleaseOnFailure is set.
func (s *Sequencer) ExecuteMoveWithMode(cmd geom.MoveCommand, mode GestureMode) (string, error) {
	if mode == "" {
		mode = s.mode
	}
	s.log.Info("move requested",
		zap.String("mode", string(mode)),
		zap.Stringer("from", cmd.From),
		zap.Stringer("to", cmd.To))
	if err := s.Run(MovePlan(s.profile, mode, cmd)); err != nil {
		return "", err
	}
	f, t := cmd.From, cmd.To
	if mode == ModeTwoClick {
		return fmt.Sprintf("Two-click: (%d,%d) → (%d,%d)", f.X, f.Y, t.X, t.Y), nil
	}
	return fmt.Sprintf("Drag&Drop: (%d,%d) → (%d,%d)", f.X, f.Y, t.X, t.Y), nil
}

// MoveMouse places the pointer at (x, y) without clicking.
func (s *Sequencer) MoveMouse(x, y int) (string, error) {
	if err := s.driver.MoveAbsolute(x, y); err != nil {
		return "", err
	}
	return fmt.Sprintf("Moved to (%d, %d)", x, y), nil
}

// MousePosition reports the pointer's current absolute position.
func (s *Sequencer) MousePosition() (geom.Position, error) {
	return s.driver.CurrentLocation()
}

// Run executes a plan in order and stops at the first driver error.
func (s *Sequencer) Run(actions []Action) error {
	held := false
	for i, a := range actions {
		if err := s.apply(a); err != nil {
			s.log.Warn("sequence step failed",
				zap.Int("step", i),
				zap.String("action", string(a.Type)),
				zap.Error(err))
			if held && s.releaseOnFailure {
				s.recoverRelease()
			}
			return err
		}
		switch a.Type {
		case ActLeftDown:
			held = true
		case ActLeftUp:
			held = false
		}
	}
	return nil
}

// apply executes a single action.
func (s *Sequencer) apply(a Action) error {
	switch a.Type {
	case ActMove:
		s.log.Debug("move", zap.Int("x", a.X), zap.Int("y", a.Y))
		return s.driver.MoveAbsolute(a.X, a.Y)
	case ActLeftDown:
		s.log.Debug("press")
		return s.driver.Press(pointer.ButtonLeft)
	case ActLeftUp:
		s.log.Debug("release")
		return s.driver.Release(pointer.ButtonLeft)
	case ActClick:
		s.log.Debug("click")
		return s.driver.Click(pointer.ButtonLeft)
	case ActWait:
		s.sleep(a.Wait)
		return nil
	default:
		return fmt.Errorf("unknown action %q", a.Type)
	}
}

// recoverRelease lets go of a button held by a failed drag.
func (s *Sequencer) recoverRelease() {
	if err := s.driver.Release(pointer.ButtonLeft); err != nil {
		s.log.Warn("corrective release failed", zap.Error(err))
		return
	}
	s.log.Info("corrective release issued")
}
