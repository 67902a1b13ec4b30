package tween

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestScheduleEagerInitialUpdate(t *testing.T) {
	e := NewEngine()

	var got []float64
	e.Schedule(3, 7, 1.0, Linear, func(v float64) { got = append(got, v) }, nil)
	if len(got) != 1 || !almost(got[0], 3) {
		t.Fatalf("Schedule should fire onUpdate(start) once before returning, got %v", got)
	}

	// ScheduleLoop defers its first update to the first tick.
	var loopGot []float64
	e.ScheduleLoop(3, 7, 1.0, Linear, func(v float64) { loopGot = append(loopGot, v) })
	if len(loopGot) != 0 {
		t.Fatalf("ScheduleLoop should not fire an eager update, got %v", loopGot)
	}
	e.Step(0.25)
	if len(loopGot) != 1 || !almost(loopGot[0], 4) {
		t.Fatalf("first loop update should arrive on the first tick, got %v", loopGot)
	}
}

func TestLinearSampling(t *testing.T) {
	e := NewEngine()
	h := e.Schedule(2, 6, 2.0, Linear, nil, nil)

	steps := []struct {
		dt       float64
		expected float64
	}{
		{0.5, 3}, // alpha 0.25
		{0.5, 4}, // alpha 0.5
		{0.5, 5}, // alpha 0.75
	}
	for _, s := range steps {
		e.Step(s.dt)
		if got := e.CurrentValue(h); !almost(got, s.expected) {
			t.Fatalf("after dt %v: CurrentValue = %v, expected %v", s.dt, got, s.expected)
		}
	}
}

func TestQuadOutScenario(t *testing.T) {
	e := NewEngine()

	var captured float64
	completions := 0
	h := e.Schedule(0, 1, 1.0, QuadOut, func(v float64) { captured = v }, func() { completions++ })

	e.Step(0.5)
	if !almost(captured, 0.75) {
		t.Fatalf("captured = %v, expected 0.75", captured)
	}
	if completions != 0 {
		t.Fatalf("completion fired early")
	}

	e.Step(0.5)
	if !almost(captured, 1.0) {
		t.Fatalf("captured = %v, expected 1.0", captured)
	}
	if completions != 1 {
		t.Fatalf("completions = %d, expected exactly 1", completions)
	}
	if e.IsActive(h) {
		t.Fatalf("handle should be inactive after completion")
	}

	// Further steps must not fire anything.
	e.Step(1.0)
	if completions != 1 {
		t.Fatalf("completion fired again after removal")
	}
}

func TestLoopHardReset(t *testing.T) {
	e := NewEngine()

	var last float64
	h := e.ScheduleLoop(0, 10, 1.0, Linear, func(v float64) { last = v })

	e.Step(1.0)
	if !almost(last, 10) {
		t.Fatalf("loop should report the end value on the boundary tick, got %v", last)
	}
	if got := e.CurrentValue(h); !almost(got, 0) {
		t.Fatalf("CurrentValue after a full period = %v, expected hard reset to start", got)
	}

	// Second period behaves identically: no reverse, no completion.
	e.Step(0.5)
	if got := e.CurrentValue(h); !almost(got, 5) {
		t.Fatalf("CurrentValue mid second period = %v, expected 5", got)
	}
	e.Step(0.5)
	if got := e.CurrentValue(h); !almost(got, 0) {
		t.Fatalf("CurrentValue after second period = %v, expected 0", got)
	}
	if !e.IsActive(h) {
		t.Fatalf("looping animation should stay active until cancelled")
	}
}

func TestCancelActive(t *testing.T) {
	e := NewEngine()

	updates := 0
	completions := 0
	h := e.Schedule(0, 1, 1.0, Linear, func(float64) { updates++ }, func() { completions++ })
	e.Step(0.25)
	seen := updates

	e.Cancel(h)
	if e.IsActive(h) {
		t.Fatalf("handle should be inactive immediately after Cancel")
	}

	e.Step(2.0)
	if updates != seen {
		t.Fatalf("update fired after cancellation")
	}
	if completions != 0 {
		t.Fatalf("completion fired after cancellation")
	}
}

// Pending delayed entries carry no handle index, so cancelling before the
// delay elapses does not stop the animation from starting. This is
// documented behavior; the test pins it.
func TestCancelCannotReachPendingDelayed(t *testing.T) {
	e := NewEngine()

	updates := 0
	h := e.ScheduleDelayed(1.0, 0, 1, 2.0, Linear, func(float64) { updates++ }, nil)
	e.Cancel(h)

	e.Step(1.5)
	if !e.IsActive(h) {
		t.Fatalf("delayed animation should have started despite the early Cancel")
	}
	if updates == 0 {
		t.Fatalf("delayed animation should be updating despite the early Cancel")
	}

	// Once active, the same handle cancels normally.
	e.Cancel(h)
	if e.IsActive(h) {
		t.Fatalf("active delayed animation should cancel by handle")
	}
}

func TestDelayedActivation(t *testing.T) {
	e := NewEngine()

	var got []float64
	h := e.ScheduleDelayed(0.5, 0, 1, 1.0, Linear, func(v float64) { got = append(got, v) }, nil)

	if e.IsActive(h) || e.CurrentValue(h) != 0 {
		t.Fatalf("pending delayed entry should report inactive and zero")
	}
	if e.PendingCount() != 1 {
		t.Fatalf("PendingCount = %d, expected 1", e.PendingCount())
	}

	e.Step(0.25)
	if e.IsActive(h) || len(got) != 0 {
		t.Fatalf("entry activated before its delay elapsed")
	}

	// The activation tick installs the record (with its eager update) and
	// then advances it by the same dt.
	e.Step(0.25)
	if !e.IsActive(h) {
		t.Fatalf("entry should be active after the delay elapsed")
	}
	if len(got) != 2 || !almost(got[0], 0) || !almost(got[1], 0.25) {
		t.Fatalf("activation tick updates = %v, expected [0 0.25]", got)
	}
	if e.PendingCount() != 0 {
		t.Fatalf("PendingCount = %d, expected 0", e.PendingCount())
	}
}

func TestCancelAllClearsPending(t *testing.T) {
	e := NewEngine()

	fired := false
	e.Schedule(0, 1, 1.0, Linear, nil, func() { fired = true })
	e.ScheduleDelayed(0.1, 0, 1, 1.0, Linear, func(float64) { fired = true }, nil)

	e.CancelAll()
	if e.ActiveCount() != 0 || e.PendingCount() != 0 {
		t.Fatalf("CancelAll left records behind: active=%d pending=%d", e.ActiveCount(), e.PendingCount())
	}

	e.Step(5.0)
	if fired {
		t.Fatalf("callback fired after CancelAll")
	}
}

func TestMissingHandleFailSafe(t *testing.T) {
	e := NewEngine()

	if e.IsActive(NoHandle) {
		t.Fatalf("zero handle should never be active")
	}
	if got := e.CurrentValue(999); got != 0 {
		t.Fatalf("CurrentValue for missing handle = %v, expected 0", got)
	}
	// No panic.
	e.Cancel(999)
	e.Step(0.1)
}

func TestHandlesMonotonicNeverReused(t *testing.T) {
	e := NewEngine()

	h1 := e.Schedule(0, 1, 1.0, Linear, nil, nil)
	h2 := e.ScheduleDelayed(1.0, 0, 1, 1.0, Linear, nil, nil)
	e.Cancel(h1)
	h3 := e.ScheduleLoop(0, 1, 1.0, Linear, nil)

	if h1 == NoHandle || h2 <= h1 || h3 <= h2 {
		t.Fatalf("handles not strictly increasing: %d %d %d", h1, h2, h3)
	}
}

func TestZeroDurationCoerced(t *testing.T) {
	e := NewEngine()

	completions := 0
	h := e.Schedule(0, 5, 0, Linear, nil, func() { completions++ })

	e.Step(0.001)
	if completions != 1 {
		t.Fatalf("zero-duration animation should complete on the first tick")
	}
	if e.IsActive(h) {
		t.Fatalf("handle should be inactive after completion")
	}
}

func TestCompletionsDeferredToSecondPass(t *testing.T) {
	e := NewEngine()

	// Both animations finish on the same tick. The completion callback of
	// the first must observe the second's fully updated value, proving
	// completions run after the whole advance pass.
	var hb Handle
	var observed float64
	e.Schedule(0, 1, 1.0, Linear, nil, func() {
		observed = e.CurrentValue(hb)
	})
	hb = e.Schedule(0, 2, 2.0, Linear, nil, nil)

	e.Step(1.0)
	if !almost(observed, 1.0) {
		t.Fatalf("completion observed partially updated batch: %v", observed)
	}
}

func TestHandleDeadInsideCompletion(t *testing.T) {
	e := NewEngine()

	// The record is removed before onComplete fires, so the callback sees
	// its own handle as already dead. The final value reaches onUpdate
	// during the advance pass, not the terminal.
	var h Handle
	var last float64
	activeInside := true
	valueInside := -1.0
	h = e.Schedule(0, 5, 1.0, Linear, func(v float64) { last = v }, func() {
		activeInside = e.IsActive(h)
		valueInside = e.CurrentValue(h)
	})

	e.Step(1.0)
	if activeInside {
		t.Fatalf("handle should be inactive inside its own completion")
	}
	if valueInside != 0 {
		t.Fatalf("CurrentValue inside completion = %v, expected 0", valueInside)
	}
	if !almost(last, 5.0) {
		t.Fatalf("final value never reached onUpdate: %v", last)
	}
}

func TestCallbackCancellingOtherRecord(t *testing.T) {
	e := NewEngine()

	var other Handle
	otherUpdates := 0
	// The first record's update cancels the second mid-pass; the pass must
	// survive and the second record must not advance.
	e.Schedule(0, 1, 1.0, Linear, func(float64) {
		if other != NoHandle {
			e.Cancel(other)
		}
	}, nil)
	other = e.Schedule(0, 1, 1.0, Linear, func(float64) { otherUpdates++ }, nil)
	otherUpdates = 0 // discard the eager update

	e.Step(0.5)
	if e.IsActive(other) {
		t.Fatalf("record cancelled from a callback should be gone")
	}
	if otherUpdates != 0 {
		t.Fatalf("cancelled record still received %d updates", otherUpdates)
	}
}
