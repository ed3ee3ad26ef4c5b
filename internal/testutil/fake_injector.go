// Package testutil provides recording fakes shared by package tests.
package testutil

import (
	"sync"

	"github.com/frudas24/deskpilot/internal/pointer"
)

// Call records a single injected action.
type Call struct {
	Name   string
	X      int
	Y      int
	Button pointer.Button
}

// FakeInjector implements pointer.Injector and records calls for tests.
//
// MoveAbs updates the reported location. Fail makes every call to the named
// method return the error; FailAt fails only the call with the given index in
// Calls (failed calls are recorded too).
type FakeInjector struct {
	mu      sync.Mutex
	Calls   []Call
	X       int
	Y       int
	Fail    map[string]error
	FailAt  map[int]error
	OpenErr error
	Opens   int
}

// Ensure FakeInjector implements the interface.
var _ pointer.Injector = (*FakeInjector)(nil)

// Opener returns an opener that hands out this fake.
func (f *FakeInjector) Opener() pointer.Opener {
	return func() (pointer.Injector, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.Opens++
		if f.OpenErr != nil {
			return nil, f.OpenErr
		}
		return f, nil
	}
}

// MoveAbs records an absolute move.
func (f *FakeInjector) MoveAbs(x, y int) error {
	if err := f.record(Call{Name: "MoveAbs", X: x, Y: y}); err != nil {
		return err
	}
	f.mu.Lock()
	f.X, f.Y = x, y
	f.mu.Unlock()
	return nil
}

// Down records a button press.
func (f *FakeInjector) Down(b pointer.Button) error {
	return f.record(Call{Name: "Down", Button: b})
}

// Up records a button release.
func (f *FakeInjector) Up(b pointer.Button) error {
	return f.record(Call{Name: "Up", Button: b})
}

// Click records a click.
func (f *FakeInjector) Click(b pointer.Button) error {
	return f.record(Call{Name: "Click", Button: b})
}

// Location records a query and returns the last moved-to position.
func (f *FakeInjector) Location() (int, int, error) {
	if err := f.record(Call{Name: "Location"}); err != nil {
		return 0, 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.X, f.Y, nil
}

// Names returns the recorded call names in order.
func (f *FakeInjector) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.Name)
	}
	return out
}

// Count returns how many calls with the given name were recorded.
func (f *FakeInjector) Count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// record appends a call and returns any configured failure for it.
func (f *FakeInjector) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := len(f.Calls)
	f.Calls = append(f.Calls, c)
	if err, ok := f.FailAt[idx]; ok {
		return err
	}
	if err, ok := f.Fail[c.Name]; ok {
		return err
	}
	return nil
}
