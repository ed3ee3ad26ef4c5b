package sequence

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/frudas24/deskpilot/internal/geom"
	"github.com/frudas24/deskpilot/internal/pointer"
	"github.com/frudas24/deskpilot/internal/testutil"
	"github.com/frudas24/deskpilot/internal/timing"
)

// newTestSequencer wires a sequencer to a recording injector and a non-blocking sleeper.
func newTestSequencer(mode GestureMode, releaseOnFailure bool) (*Sequencer, *testutil.FakeInjector, *testutil.FakeSleeper) {
	inj := &testutil.FakeInjector{}
	sleeper := &testutil.FakeSleeper{}
	seq := New(pointer.NewDriver(inj.Opener()), Options{
		Mode:             mode,
		Profile:          timing.Default(),
		ReleaseOnFailure: releaseOnFailure,
		Sleep:            sleeper.Sleep,
	})
	return seq, inj, sleeper
}

// TestClickPosition_SequenceAndMessage verifies the move, settle, click, settle order.
func TestClickPosition_SequenceAndMessage(t *testing.T) {
	seq, inj, sleeper := newTestSequencer(ModeDrag, false)

	msg, err := seq.ClickPosition(100, 100)
	if err != nil {
		t.Fatalf("ClickPosition failed: %v", err)
	}
	if strings.Count(msg, "100") != 2 {
		t.Fatalf("expected both coordinates in %q", msg)
	}
	if got := inj.Names(); !reflect.DeepEqual(got, []string{"MoveAbs", "Click"}) {
		t.Fatalf("unexpected call sequence %#v", got)
	}
	if inj.Count("Click") != 1 {
		t.Fatalf("expected exactly one click, got %d", inj.Count("Click"))
	}
	if inj.Calls[0].X != 100 || inj.Calls[0].Y != 100 {
		t.Fatalf("expected move to (100,100), got %+v", inj.Calls[0])
	}
	want := []time.Duration{100 * time.Millisecond, 50 * time.Millisecond}
	if !reflect.DeepEqual(sleeper.Waits, want) {
		t.Fatalf("expected waits %v, got %v", want, sleeper.Waits)
	}
}

// TestClickPosition_MoveFailureAborts verifies a failed move skips the click.
func TestClickPosition_MoveFailureAborts(t *testing.T) {
	seq, inj, sleeper := newTestSequencer(ModeDrag, false)
	inj.Fail = map[string]error{"MoveAbs": errors.New("rejected")}

	if _, err := seq.ClickPosition(1, 2); !errors.Is(err, pointer.MoveFailed) {
		t.Fatalf("expected MoveFailed, got %v", err)
	}
	if inj.Count("Click") != 0 || len(sleeper.Waits) != 0 {
		t.Fatalf("expected abort before click, calls=%#v waits=%v", inj.Calls, sleeper.Waits)
	}
}

// TestExecuteMove_DragSequence verifies press, two moves, and release in order.
func TestExecuteMove_DragSequence(t *testing.T) {
	seq, inj, sleeper := newTestSequencer(ModeDrag, false)
	cmd := geom.MoveCommand{From: geom.Position{X: 101, Y: 200}, To: geom.Position{X: 300, Y: 401}}

	type mark struct {
		calls int
		wait  time.Duration
	}
	var marks []mark
	sleeper.OnWait = func(d time.Duration) {
		marks = append(marks, mark{calls: len(inj.Calls), wait: d})
	}

	msg, err := seq.ExecuteMove(cmd)
	if err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	if !strings.Contains(msg, "(101,200)") || !strings.Contains(msg, "(300,401)") {
		t.Fatalf("expected both endpoints in %q", msg)
	}
	want := []string{"MoveAbs", "Down", "MoveAbs", "MoveAbs", "Up"}
	if got := inj.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if inj.Calls[2].X != 200 || inj.Calls[2].Y != 300 {
		t.Fatalf("expected midpoint (200,300), got (%d,%d)", inj.Calls[2].X, inj.Calls[2].Y)
	}
	if inj.Calls[3].X != 300 || inj.Calls[3].Y != 401 {
		t.Fatalf("expected target (300,401), got (%d,%d)", inj.Calls[3].X, inj.Calls[3].Y)
	}
	if inj.Calls[1].Button != pointer.ButtonLeft || inj.Calls[4].Button != pointer.ButtonLeft {
		t.Fatalf("expected left button press/release, got %#v", inj.Calls)
	}

	wantMarks := []mark{
		{calls: 1, wait: 250 * time.Millisecond},
		{calls: 2, wait: 350 * time.Millisecond},
		{calls: 3, wait: 100 * time.Millisecond},
		{calls: 4, wait: 300 * time.Millisecond},
		{calls: 5, wait: 200 * time.Millisecond},
	}
	if !reflect.DeepEqual(marks, wantMarks) {
		t.Fatalf("expected waits %+v, got %+v", wantMarks, marks)
	}
	if sleeper.Total() < 1200*time.Millisecond {
		t.Fatalf("expected at least 1.2s of settle time, got %s", sleeper.Total())
	}
}

// TestExecuteMove_SamePoint verifies a degenerate move still presses and releases once.
func TestExecuteMove_SamePoint(t *testing.T) {
	seq, inj, _ := newTestSequencer(ModeDrag, false)
	p := geom.Position{X: 40, Y: 40}

	if _, err := seq.ExecuteMove(geom.MoveCommand{From: p, To: p}); err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	if inj.Count("Down") != 1 || inj.Count("Up") != 1 || inj.Count("MoveAbs") != 3 {
		t.Fatalf("unexpected calls %#v", inj.Calls)
	}
}

// TestExecuteMove_TwoClickSequence verifies the two-click variant avoids press/release.
func TestExecuteMove_TwoClickSequence(t *testing.T) {
	seq, inj, sleeper := newTestSequencer(ModeTwoClick, false)
	cmd := geom.MoveCommand{From: geom.Position{X: 10, Y: 20}, To: geom.Position{X: 30, Y: 40}}

	msg, err := seq.ExecuteMove(cmd)
	if err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	if !strings.HasPrefix(msg, "Two-click") {
		t.Fatalf("unexpected message %q", msg)
	}
	want := []string{"MoveAbs", "Click", "MoveAbs", "Click"}
	if got := inj.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if inj.Calls[2].X != 30 || inj.Calls[2].Y != 40 {
		t.Fatalf("expected second click at target, got %+v", inj.Calls[2])
	}
	wantWaits := []time.Duration{
		100 * time.Millisecond, 50 * time.Millisecond,
		300 * time.Millisecond,
		100 * time.Millisecond, 50 * time.Millisecond,
	}
	if !reflect.DeepEqual(sleeper.Waits, wantWaits) {
		t.Fatalf("expected waits %v, got %v", wantWaits, sleeper.Waits)
	}
}

// TestExecuteMoveWithMode_OverridesConfigured verifies an explicit mode wins.
func TestExecuteMoveWithMode_OverridesConfigured(t *testing.T) {
	seq, inj, _ := newTestSequencer(ModeTwoClick, false)
	cmd := geom.MoveCommand{From: geom.Position{X: 1, Y: 1}, To: geom.Position{X: 9, Y: 9}}

	if _, err := seq.ExecuteMoveWithMode(cmd, ModeDrag); err != nil {
		t.Fatalf("ExecuteMoveWithMode failed: %v", err)
	}
	if inj.Count("Down") != 1 || inj.Count("Click") != 0 {
		t.Fatalf("expected drag gesture, got %#v", inj.Calls)
	}
}

// TestExecuteMove_MidDragFailure_LeavesButtonHeld verifies the default partial-failure behavior.
func TestExecuteMove_MidDragFailure_LeavesButtonHeld(t *testing.T) {
	seq, inj, sleeper := newTestSequencer(ModeDrag, false)
	inj.FailAt = map[int]error{2: errors.New("rejected")}
	cmd := geom.MoveCommand{From: geom.Position{X: 0, Y: 0}, To: geom.Position{X: 10, Y: 10}}

	_, err := seq.ExecuteMove(cmd)
	if !errors.Is(err, pointer.MoveFailed) {
		t.Fatalf("expected MoveFailed, got %v", err)
	}
	if got := inj.Names(); !reflect.DeepEqual(got, []string{"MoveAbs", "Down", "MoveAbs"}) {
		t.Fatalf("expected abort after midpoint move, got %v", got)
	}
	if len(sleeper.Waits) != 2 {
		t.Fatalf("expected 2 waits before failure, got %v", sleeper.Waits)
	}
}

// TestExecuteMove_ReleaseOnFailure verifies the corrective release after a held button.
func TestExecuteMove_ReleaseOnFailure(t *testing.T) {
	seq, inj, _ := newTestSequencer(ModeDrag, true)
	inj.FailAt = map[int]error{3: errors.New("rejected")}
	cmd := geom.MoveCommand{From: geom.Position{X: 0, Y: 0}, To: geom.Position{X: 10, Y: 10}}

	_, err := seq.ExecuteMove(cmd)
	if !errors.Is(err, pointer.MoveFailed) {
		t.Fatalf("expected original MoveFailed, got %v", err)
	}
	want := []string{"MoveAbs", "Down", "MoveAbs", "MoveAbs", "Up"}
	if got := inj.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected corrective release, got %v", got)
	}
}

// TestExecuteMove_ReleaseOnFailure_NotBeforePress verifies no release is sent when nothing is held.
func TestExecuteMove_ReleaseOnFailure_NotBeforePress(t *testing.T) {
	seq, inj, _ := newTestSequencer(ModeDrag, true)
	inj.FailAt = map[int]error{1: errors.New("rejected")}

	_, err := seq.ExecuteMove(geom.MoveCommand{To: geom.Position{X: 5, Y: 5}})
	if !errors.Is(err, pointer.PressFailed) {
		t.Fatalf("expected PressFailed, got %v", err)
	}
	if inj.Count("Up") != 0 {
		t.Fatalf("expected no release, got %#v", inj.Calls)
	}
}

// TestExecuteMove_InitFailure verifies handle failures surface as InitFailed.
func TestExecuteMove_InitFailure(t *testing.T) {
	seq, inj, sleeper := newTestSequencer(ModeDrag, false)
	inj.OpenErr = errors.New("no accessibility permission")

	if _, err := seq.ExecuteMove(geom.MoveCommand{}); !errors.Is(err, pointer.InitFailed) {
		t.Fatalf("expected InitFailed, got %v", err)
	}
	if len(sleeper.Waits) != 0 {
		t.Fatalf("expected no waits, got %v", sleeper.Waits)
	}
}

// TestMousePosition_AfterMove verifies the reported position matches the last move.
func TestMousePosition_AfterMove(t *testing.T) {
	seq, _, _ := newTestSequencer(ModeDrag, false)

	if _, err := seq.MoveMouse(500, 300); err != nil {
		t.Fatalf("MoveMouse failed: %v", err)
	}
	pos, err := seq.MousePosition()
	if err != nil {
		t.Fatalf("MousePosition failed: %v", err)
	}
	if abs(pos.X-500) > 1 || abs(pos.Y-300) > 1 {
		t.Fatalf("expected (500,300)±1, got %+v", pos)
	}
}

// TestMousePosition_QueryFailure verifies query errors propagate.
func TestMousePosition_QueryFailure(t *testing.T) {
	seq, inj, _ := newTestSequencer(ModeDrag, false)
	inj.Fail = map[string]error{"Location": errors.New("no cursor")}

	if _, err := seq.MousePosition(); !errors.Is(err, pointer.QueryFailed) {
		t.Fatalf("expected QueryFailed, got %v", err)
	}
}

// TestExecuteMove_WallClock verifies the real drag takes at least the summed minimums.
func TestExecuteMove_WallClock(t *testing.T) {
	if testing.Short() {
		t.Skip("sleeps for the full drag schedule")
	}
	inj := &testutil.FakeInjector{}
	seq := New(pointer.NewDriver(inj.Opener()), Options{Profile: timing.Default()})

	start := time.Now()
	if _, err := seq.ExecuteMove(geom.MoveCommand{To: geom.Position{X: 8, Y: 8}}); err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 1200*time.Millisecond {
		t.Fatalf("expected >= 1.2s, got %s", elapsed)
	}
}

// TestParseMode verifies gesture mode names.
func TestParseMode(t *testing.T) {
	cases := map[string]GestureMode{
		"":          ModeDrag,
		"DRAG":      ModeDrag,
		"two_click": ModeTwoClick,
		"two-click": ModeTwoClick,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("swipe"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

// TestPlanDuration verifies plan waits add up per mode.
func TestPlanDuration(t *testing.T) {
	p := timing.Default()
	cmd := geom.MoveCommand{}
	if got := PlanDuration(DragPlan(p, cmd)); got != 1200*time.Millisecond {
		t.Fatalf("expected 1.2s drag, got %s", got)
	}
	if got := PlanDuration(TwoClickPlan(p, cmd)); got != 600*time.Millisecond {
		t.Fatalf("expected 600ms two-click, got %s", got)
	}
}

// abs returns the absolute value of an integer.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
