// Package timing holds the settle intervals used between pointer events.
package timing

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Step names a settle interval inside an action sequence.
type Step string

const (
	// ClickSettleMove is the pause after moving onto a click target.
	ClickSettleMove Step = "click.settle_move"
	// ClickSettleClick is the pause after a click.
	ClickSettleClick Step = "click.settle_click"
	// DragSettleSource is the pause after reaching the drag source.
	DragSettleSource Step = "drag.settle_source"
	// DragSettlePress is the hold after pressing at the source.
	DragSettlePress Step = "drag.settle_press"
	// DragSettleMidpoint is the pause at the drag midpoint.
	DragSettleMidpoint Step = "drag.settle_midpoint"
	// DragSettleTarget is the pause on the target before release.
	DragSettleTarget Step = "drag.settle_target"
	// DragSettleRelease is the pause after releasing the button.
	DragSettleRelease Step = "drag.settle_release"
	// TwoClickSettleBetween separates the select click from the target click.
	TwoClickSettleBetween Step = "two_click.settle_between"
	// TwoClickSettleMove is the pause after each two-click move.
	TwoClickSettleMove Step = "two_click.settle_move"
	// TwoClickSettleClick is the pause after each two-click click.
	TwoClickSettleClick Step = "two_click.settle_click"
)

// defaults are the empirically tuned minimums target boards need to register input.
var defaults = map[Step]time.Duration{
	ClickSettleMove:       100 * time.Millisecond,
	ClickSettleClick:      50 * time.Millisecond,
	DragSettleSource:      250 * time.Millisecond,
	DragSettlePress:       350 * time.Millisecond,
	DragSettleMidpoint:    100 * time.Millisecond,
	DragSettleTarget:      300 * time.Millisecond,
	DragSettleRelease:     200 * time.Millisecond,
	TwoClickSettleBetween: 300 * time.Millisecond,
	TwoClickSettleMove:    100 * time.Millisecond,
	TwoClickSettleClick:   50 * time.Millisecond,
}

// Profile maps step names to settle durations.
type Profile struct {
	steps map[Step]time.Duration
}

// Default returns the profile with every step at its minimum.
func Default() Profile {
	steps := make(map[Step]time.Duration, len(defaults))
	for k, v := range defaults {
		steps[k] = v
	}
	return Profile{steps: steps}
}

// Minimum returns the built-in minimum for a step.
func Minimum(step Step) (time.Duration, bool) {
	d, ok := defaults[step]
	return d, ok
}

// Get returns the duration for a step, falling back to the built-in minimum.
func (p Profile) Get(step Step) time.Duration {
	if d, ok := p.steps[step]; ok {
		return d
	}
	return defaults[step]
}

// Sum adds the durations of the given steps.
func (p Profile) Sum(steps ...Step) time.Duration {
	var total time.Duration
	for _, s := range steps {
		total += p.Get(s)
	}
	return total
}

// With returns a copy of the profile with one step overridden.
func (p Profile) With(step Step, d time.Duration) Profile {
	out := Default()
	for k, v := range p.steps {
		out.steps[k] = v
	}
	out.steps[step] = d
	return out
}

// Steps returns the known step names in sorted order.
func Steps() []Step {
	out := make([]Step, 0, len(defaults))
	for k := range defaults {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type profileFile struct {
	AllowShorter bool              `yaml:"allow_shorter"`
	Steps        map[string]string `yaml:"steps"`
}

// Load reads a YAML profile and merges it over the defaults. Missing files return defaults.
func Load(path string) (Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, err
	}
	return Parse(data)
}

// Parse decodes a YAML profile and merges it over the defaults.
func Parse(data []byte) (Profile, error) {
	p := Default()
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return p, fmt.Errorf("timing profile: %w", err)
	}
	for name, raw := range file.Steps {
		step := Step(name)
		floor, ok := defaults[step]
		if !ok {
			return Default(), fmt.Errorf("timing profile: unknown step %q", name)
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Default(), fmt.Errorf("timing profile: step %q: %w", name, err)
		}
		if d < 0 {
			return Default(), fmt.Errorf("timing profile: step %q must be >= 0", name)
		}
		if d < floor && !file.AllowShorter {
			return Default(), fmt.Errorf("timing profile: step %q is %s, below the %s minimum (set allow_shorter to override)", name, d, floor)
		}
		p.steps[step] = d
	}
	return p, nil
}
