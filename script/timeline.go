// Package script builds transition timelines from tengo scripts. A script
// runs once at load time and calls the injected builder functions to
// append steps:
//
//	transition("library", "slide_left", 0.4)
//	wait(2)
//	transition("menu", "zoom")
//	wait(2)
//
// The resulting timeline loops, driving a Stage one step per tick.
package script

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/motion/transition"
)

// Stage is the surface a timeline drives; the showcase adapts its screen
// registry and orchestrator to it. Methods return false for unknown
// screen names.
type Stage interface {
	IsTransitioning() bool
	TransitionToNamed(name string, kind transition.Kind, duration float64) bool
	SetNamed(name string) bool
}

type stepKind int

const (
	stepWait stepKind = iota
	stepTransition
	stepSet
)

type step struct {
	kind     stepKind
	seconds  float64
	screen   string
	trKind   transition.Kind
	duration float64
}

// Timeline is a looping sequence of steps built by a script at load time.
type Timeline struct {
	steps   []step
	idx     int
	elapsed float64
}

// Load compiles and runs src, collecting the steps it declares. The
// standard math/rand/text modules are importable from scripts.
func Load(src []byte) (*Timeline, error) {
	t := &Timeline{}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math", "rand", "text"))
	builders := map[string]tengo.CallableFunc{
		"transition": t.addTransition,
		"wait":       t.addWait,
		"set":        t.addSet,
	}
	for name, fn := range builders {
		if err := s.Add(name, &tengo.UserFunction{Name: name, Value: fn}); err != nil {
			return nil, fmt.Errorf("script: add builder %s: %w", name, err)
		}
	}

	if _, err := s.Run(); err != nil {
		return nil, fmt.Errorf("script: run timeline: %w", err)
	}
	if len(t.steps) == 0 {
		return nil, fmt.Errorf("script: timeline declares no steps")
	}
	return t, nil
}

// Len returns the number of declared steps.
func (t *Timeline) Len() int {
	return len(t.steps)
}

// Tick executes at most one step against the stage. Wait steps hold the
// timeline for their duration; transition steps additionally hold it until
// the stage is free. The timeline loops back to the first step after the
// last.
func (t *Timeline) Tick(dt float64, stage Stage) {
	if t == nil || stage == nil || len(t.steps) == 0 {
		return
	}

	s := &t.steps[t.idx]
	switch s.kind {
	case stepWait:
		t.elapsed += dt
		if t.elapsed < s.seconds {
			return
		}
		t.elapsed = 0
	case stepTransition:
		if stage.IsTransitioning() {
			return
		}
		if !stage.TransitionToNamed(s.screen, s.trKind, s.duration) {
			log.Printf("script: unknown screen %q, skipping step", s.screen)
		}
	case stepSet:
		if !stage.SetNamed(s.screen) {
			log.Printf("script: unknown screen %q, skipping step", s.screen)
		}
	}
	t.idx = (t.idx + 1) % len(t.steps)
}

func (t *Timeline) addTransition(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	screen, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "screen", Expected: "string", Found: args[0].TypeName()}
	}

	kind := transition.Fade
	if len(args) > 1 {
		name, ok := tengo.ToString(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "kind", Expected: "string", Found: args[1].TypeName()}
		}
		kind, ok = transition.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("script: unknown transition kind %q", name)
		}
	}

	// Duration 0 defers to the orchestrator's configured default.
	duration := 0.0
	if len(args) > 2 {
		d, ok := tengo.ToFloat64(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "duration", Expected: "float", Found: args[2].TypeName()}
		}
		duration = d
	}

	t.steps = append(t.steps, step{kind: stepTransition, screen: screen, trKind: kind, duration: duration})
	return tengo.UndefinedValue, nil
}

func (t *Timeline) addWait(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	seconds, ok := tengo.ToFloat64(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "seconds", Expected: "float", Found: args[0].TypeName()}
	}
	t.steps = append(t.steps, step{kind: stepWait, seconds: seconds})
	return tengo.UndefinedValue, nil
}

func (t *Timeline) addSet(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	screen, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "screen", Expected: "string", Found: args[0].TypeName()}
	}
	t.steps = append(t.steps, step{kind: stepSet, screen: screen})
	return tengo.UndefinedValue, nil
}
