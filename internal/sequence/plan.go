// Package sequence composes pointer primitives into timed board gestures.
package sequence

import (
	"time"

	"github.com/frudas24/deskpilot/internal/geom"
	"github.com/frudas24/deskpilot/internal/timing"
)

// ClickPlan moves to a point, settles, clicks, and settles again.
func ClickPlan(p timing.Profile, at geom.Position) []Action {
	return clickSteps(p, at, timing.ClickSettleMove, timing.ClickSettleClick)
}

// DragPlan builds the press-move-release sequence for a piece move.
func DragPlan(p timing.Profile, cmd geom.MoveCommand) []Action {
	mid := cmd.Midpoint()
	return []Action{
		{Type: ActMove, X: cmd.From.X, Y: cmd.From.Y},
		wait(p, timing.DragSettleSource),
		{Type: ActLeftDown},
		wait(p, timing.DragSettlePress),
		{Type: ActMove, X: mid.X, Y: mid.Y},
		wait(p, timing.DragSettleMidpoint),
		{Type: ActMove, X: cmd.To.X, Y: cmd.To.Y},
		wait(p, timing.DragSettleTarget),
		{Type: ActLeftUp},
		wait(p, timing.DragSettleRelease),
	}
}

// TwoClickPlan clicks the source square, waits, then clicks the target square.
func TwoClickPlan(p timing.Profile, cmd geom.MoveCommand) []Action {
	out := clickSteps(p, cmd.From, timing.TwoClickSettleMove, timing.TwoClickSettleClick)
	out = append(out, wait(p, timing.TwoClickSettleBetween))
	return append(out, clickSteps(p, cmd.To, timing.TwoClickSettleMove, timing.TwoClickSettleClick)...)
}

// MovePlan builds the plan for the given gesture mode.
func MovePlan(p timing.Profile, mode GestureMode, cmd geom.MoveCommand) []Action {
	if mode == ModeTwoClick {
		return TwoClickPlan(p, cmd)
	}
	return DragPlan(p, cmd)
}

// PlanDuration sums the wait steps of a plan.
func PlanDuration(actions []Action) time.Duration {
	var total time.Duration
	for _, a := range actions {
		if a.Type == ActWait {
			total += a.Wait
		}
	}
	return total
}

// clickSteps returns move, settle, click, settle.
func clickSteps(p timing.Profile, at geom.Position, moveStep, clickStep timing.Step) []Action {
	return []Action{
		{Type: ActMove, X: at.X, Y: at.Y},
		wait(p, moveStep),
		{Type: ActClick},
		wait(p, clickStep),
	}
}
