package tween

import (
	"github.com/milk9111/motion/common"
)

// Handle identifies one scheduled animation. Handles are issued
// monotonically starting at 1 and are never reused; zero means "no
// animation".
type Handle uint64

// NoHandle is the zero handle, never issued by an Engine.
const NoHandle Handle = 0

// UpdateFunc receives the animated value each tick.
type UpdateFunc func(value float64)

// CompleteFunc runs once when a non-looping animation reaches its end.
type CompleteFunc func()

// Durations below this are coerced up so progress math never divides by
// zero.
const minDuration = 1e-4

type record struct {
	handle     Handle
	start      float64
	end        float64
	current    float64
	duration   float64
	elapsed    float64
	easing     Easing
	loop       bool
	onUpdate   UpdateFunc
	onComplete CompleteFunc
}

type pendingEntry struct {
	remaining float64
	activate  func()
}

// Engine owns every scheduled animation and advances them once per tick.
// It is single-threaded by contract: Step and all scheduling calls must
// come from the same update loop, and callbacks run synchronously inside
// Step. Callbacks must not re-enter Step.
//
// Records live in a dense slice with a handle index on the side, so
// lookup and removal are O(1) and the per-tick pass walks contiguous
// memory.
type Engine struct {
	nextHandle Handle
	records    []record
	index      map[Handle]int
	pending    []pendingEntry

	// scratch buffers reused across ticks
	order     []Handle
	completed []Handle
}

// NewEngine returns an empty engine. One engine is meant to be owned by a
// UI root and shared by reference; there is no package-level instance.
func NewEngine() *Engine {
	return &Engine{
		nextHandle: 1,
		index:      make(map[Handle]int),
	}
}

func (e *Engine) alloc() Handle {
	h := e.nextHandle
	e.nextHandle++
	return h
}

func (e *Engine) insert(r record) {
	e.records = append(e.records, r)
	e.index[r.handle] = len(e.records) - 1
}

// remove swap-deletes the record for h, keeping the dense slice packed.
func (e *Engine) remove(h Handle) {
	idx, ok := e.index[h]
	if !ok {
		return
	}
	last := len(e.records) - 1
	if idx != last {
		e.records[idx] = e.records[last]
		e.index[e.records[idx].handle] = idx
	}
	e.records = e.records[:last]
	delete(e.index, h)
}

// activate installs an active record under a pre-allocated handle and
// fires the eager initial update so dependent visual state is consistent
// before the first tick.
func (e *Engine) activate(h Handle, start, end, duration float64, easing Easing, onUpdate UpdateFunc, onComplete CompleteFunc) {
	if duration < minDuration {
		duration = minDuration
	}
	e.insert(record{
		handle:     h,
		start:      start,
		end:        end,
		current:    start,
		duration:   duration,
		easing:     easing,
		onUpdate:   onUpdate,
		onComplete: onComplete,
	})
	if onUpdate != nil {
		onUpdate(start)
	}
}

// Schedule registers an animation from start to end over duration seconds
// and returns its handle. onUpdate is invoked synchronously with the start
// value before Schedule returns, then once per Step with the current
// value. onComplete fires exactly once when the animation finishes.
func (e *Engine) Schedule(start, end, duration float64, easing Easing, onUpdate UpdateFunc, onComplete CompleteFunc) Handle {
	h := e.alloc()
	e.activate(h, start, end, duration, easing, onUpdate, onComplete)
	return h
}

// ScheduleLoop registers an animation that hard-resets to start every time
// it reaches its end. It never completes; cancel it to stop it. Unlike
// Schedule, there is no eager initial update: the first onUpdate arrives
// on the first tick.
func (e *Engine) ScheduleLoop(start, end, duration float64, easing Easing, onUpdate UpdateFunc) Handle {
	if duration < minDuration {
		duration = minDuration
	}
	h := e.alloc()
	e.insert(record{
		handle:   h,
		start:    start,
		end:      end,
		current:  start,
		duration: duration,
		easing:   easing,
		loop:     true,
		onUpdate: onUpdate,
	})
	return h
}

// ScheduleDelayed returns a handle immediately but only installs the
// animation once delay seconds of Step time have elapsed. Until then the
// handle reports inactive and Cancel cannot reach it; see Cancel.
func (e *Engine) ScheduleDelayed(delay, start, end, duration float64, easing Easing, onUpdate UpdateFunc, onComplete CompleteFunc) Handle {
	h := e.alloc()
	e.pending = append(e.pending, pendingEntry{
		remaining: delay,
		activate: func() {
			e.activate(h, start, end, duration, easing, onUpdate, onComplete)
		},
	})
	return h
}

// Cancel removes the active animation for h. No further callbacks fire
// for it. A delayed animation whose delay has not yet elapsed is NOT
// cancelled: pending entries are not indexed by handle, so they can only
// leave the queue by activating. Callers that need to stop one early must
// cancel after activation or use CancelAll.
func (e *Engine) Cancel(h Handle) {
	e.remove(h)
}

// CancelAll drops every active animation and every pending delayed entry.
// No callbacks fire.
func (e *Engine) CancelAll() {
	e.records = e.records[:0]
	e.pending = e.pending[:0]
	clear(e.index)
}

// IsActive reports whether h refers to an installed animation. Delayed
// animations are inactive until their delay elapses.
func (e *Engine) IsActive(h Handle) bool {
	_, ok := e.index[h]
	return ok
}

// CurrentValue returns the animated value for h, or 0 if h is not active.
func (e *Engine) CurrentValue(h Handle) float64 {
	idx, ok := e.index[h]
	if !ok {
		return 0
	}
	return e.records[idx].current
}

// ActiveCount returns the number of installed animations.
func (e *Engine) ActiveCount() int {
	return len(e.records)
}

// PendingCount returns the number of delayed entries not yet activated.
func (e *Engine) PendingCount() int {
	return len(e.pending)
}

// Step advances every animation by dt seconds. Delayed entries are counted
// down first, so an entry that comes due is installed and then advanced by
// the same dt. Completions are deferred to a final pass so no completion
// callback observes a half-updated batch.
func (e *Engine) Step(dt float64) {
	// Pending entries first. The queue is detached before iterating so
	// activation callbacks that schedule or cancel cannot invalidate the
	// walk.
	if len(e.pending) > 0 {
		due := e.pending
		e.pending = nil
		for i := range due {
			due[i].remaining -= dt
			if due[i].remaining <= 0 {
				due[i].activate()
			} else {
				e.pending = append(e.pending, due[i])
			}
		}
	}

	// Advance pass. Iteration goes through a handle snapshot so update
	// callbacks may cancel records without breaking the walk; every handle
	// is re-looked-up after its callback runs.
	e.order = e.order[:0]
	for i := range e.records {
		e.order = append(e.order, e.records[i].handle)
	}
	e.completed = e.completed[:0]
	for _, h := range e.order {
		idx, ok := e.index[h]
		if !ok {
			continue
		}
		r := &e.records[idx]
		r.elapsed += dt
		alpha := common.Clamp(r.elapsed/r.duration, 0, 1)
		r.current = common.Lerp(r.start, r.end, Ease(alpha, r.easing))
		update := r.onUpdate
		if update != nil {
			update(r.current)
		}
		idx, ok = e.index[h]
		if !ok {
			continue
		}
		r = &e.records[idx]
		if alpha < 1 {
			continue
		}
		if r.loop {
			// Hard reset to the raw start value, not a ping-pong.
			r.elapsed = 0
			r.current = r.start
			continue
		}
		e.completed = append(e.completed, h)
	}

	// Completion pass. The record is removed before its callback runs, so
	// onComplete fires exactly once even if the callback schedules or
	// cancels more animations. Inside onComplete the handle is already
	// dead: IsActive reports false and CurrentValue reports 0, not the
	// end value.
	for _, h := range e.completed {
		idx, ok := e.index[h]
		if !ok {
			continue
		}
		done := e.records[idx].onComplete
		e.remove(h)
		if done != nil {
			done()
		}
	}
}
