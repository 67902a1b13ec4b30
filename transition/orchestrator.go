package transition

import (
	"github.com/milk9111/motion/tween"
)

// Content is one swappable piece of UI. The orchestrator compares contents
// by interface identity, so passing the value that is already current is a
// no-op. Pointer types are the expected currency.
type Content = any

// DefaultSlideDistance is how far slide choreographies travel, in pixels.
const DefaultSlideDistance = 400.0

// Choreography shape constants, expressed as fractions of the total
// transition duration so every recipe stays duration-independent.
const (
	fadeOutFraction   = 0.4
	fadeDelayFraction = 0.2
	fadeInFraction    = 0.6
	fadeStartScale    = 0.98

	zoomOutFraction   = 0.4
	zoomDelayFraction = 0.3
	zoomInFraction    = 0.7
	zoomStartScale    = 0.9
	zoomEndScale      = 1.1

	blackInFraction  = 0.4
	blackOutFraction = 0.6
)

// Orchestrator swaps between a current and a next piece of content by
// issuing coordinated sets of tween schedules. It holds two content slots,
// seven animated floats (opacity/offset/scale per slot plus an overlay
// opacity) and a busy flag. Outside a transition at most one slot is set;
// during one both are, and the busy flag is up.
//
// All calls must come from the single update thread that ticks the engine;
// the busy flag is a guard, not a lock.
type Orchestrator struct {
	engine *tween.Engine

	current Content
	next    Content
	busy    bool

	defaultKind   Kind
	duration      float64
	slideDistance float64

	currentOpacity float64
	currentOffset  float64
	currentScale   float64
	nextOpacity    float64
	nextOffset     float64
	nextScale      float64
	overlayOpacity float64

	hCurrentOpacity tween.Handle
	hCurrentOffset  tween.Handle
	hCurrentScale   tween.Handle
	hNextOpacity    tween.Handle
	hNextOffset     tween.Handle
	hNextScale      tween.Handle
	hOverlay        tween.Handle
}

// NewOrchestrator wraps the given engine. Pass nil to let the orchestrator
// own a private engine; Tick steps whichever engine it holds, so callers
// sharing one engine across subsystems should hand the orchestrator a
// dedicated one.
func NewOrchestrator(engine *tween.Engine) *Orchestrator {
	if engine == nil {
		engine = tween.NewEngine()
	}
	o := &Orchestrator{
		engine:        engine,
		defaultKind:   Fade,
		duration:      tween.DefaultTransitionDuration,
		slideDistance: DefaultSlideDistance,
	}
	o.resetFloats()
	return o
}

// Tick advances the held engine; all transition state evolves through its
// callbacks.
func (o *Orchestrator) Tick(dt float64) {
	o.engine.Step(dt)
}

// TransitionTo starts a transition to content using the default kind and
// duration.
func (o *Orchestrator) TransitionTo(content Content) {
	o.TransitionToTimed(content, o.defaultKind, o.duration)
}

// TransitionToKind starts a transition to content with the given kind and
// the default duration.
func (o *Orchestrator) TransitionToKind(content Content, kind Kind) {
	o.TransitionToTimed(content, kind, o.duration)
}

// TransitionToTimed starts a transition to content with the given kind and
// duration in seconds. The call is a complete no-op when content is
// already current or another transition is in flight: there is no queue,
// the in-flight transition always runs to completion. Callers that need
// queuing poll IsTransitioning themselves. A non-positive duration falls
// back to the configured default.
func (o *Orchestrator) TransitionToTimed(content Content, kind Kind, duration float64) {
	if o.busy || content == o.current {
		return
	}
	if kind == None {
		o.SetContent(content)
		return
	}
	if duration <= 0 {
		duration = o.duration
	}
	o.begin(content, kind, duration)
}

// SetContent swaps content instantly: residual animations on the tracked
// handles are cancelled, every float returns to steady state and the swap
// happens synchronously.
func (o *Orchestrator) SetContent(content Content) {
	o.cancelTracked()
	o.resetFloats()
	o.current = content
	o.next = nil
	o.busy = false
}

// IsTransitioning reports whether a transition is in flight.
func (o *Orchestrator) IsTransitioning() bool {
	return o.busy
}

// CurrentContent returns the content occupying the current slot.
func (o *Orchestrator) CurrentContent() Content {
	return o.current
}

// NextContent returns the incoming content, or nil outside a transition.
func (o *Orchestrator) NextContent() Content {
	return o.next
}

// SetDefaultTransition changes the kind used by TransitionTo.
func (o *Orchestrator) SetDefaultTransition(kind Kind) {
	o.defaultKind = kind
}

// SetTransitionDuration changes the default duration in seconds.
// Non-positive values are ignored.
func (o *Orchestrator) SetTransitionDuration(seconds float64) {
	if seconds <= 0 {
		return
	}
	o.duration = seconds
}

// SetSlideDistance changes how far slide choreographies travel.
// Non-positive values are ignored.
func (o *Orchestrator) SetSlideDistance(pixels float64) {
	if pixels <= 0 {
		return
	}
	o.slideDistance = pixels
}

// Animated float accessors, read by the renderer every frame.

func (o *Orchestrator) CurrentOpacity() float64 { return o.currentOpacity }
func (o *Orchestrator) CurrentOffset() float64  { return o.currentOffset }
func (o *Orchestrator) CurrentScale() float64   { return o.currentScale }
func (o *Orchestrator) NextOpacity() float64    { return o.nextOpacity }
func (o *Orchestrator) NextOffset() float64     { return o.nextOffset }
func (o *Orchestrator) NextScale() float64      { return o.nextScale }
func (o *Orchestrator) OverlayOpacity() float64 { return o.overlayOpacity }

func (o *Orchestrator) setCurrentOpacity(v float64) { o.currentOpacity = v }
func (o *Orchestrator) setCurrentOffset(v float64)  { o.currentOffset = v }
func (o *Orchestrator) setCurrentScale(v float64)   { o.currentScale = v }
func (o *Orchestrator) setNextOpacity(v float64)    { o.nextOpacity = v }
func (o *Orchestrator) setNextOffset(v float64)     { o.nextOffset = v }
func (o *Orchestrator) setNextScale(v float64)      { o.nextScale = v }
func (o *Orchestrator) setOverlayOpacity(v float64) { o.overlayOpacity = v }

func (o *Orchestrator) resetFloats() {
	o.currentOpacity = 1
	o.currentOffset = 0
	o.currentScale = 1
	o.nextOpacity = 0
	o.nextOffset = 0
	o.nextScale = 1
	o.overlayOpacity = 0
}

func (o *Orchestrator) cancelTracked() {
	for _, h := range []*tween.Handle{
		&o.hCurrentOpacity, &o.hCurrentOffset, &o.hCurrentScale,
		&o.hNextOpacity, &o.hNextOffset, &o.hNextScale,
		&o.hOverlay,
	} {
		if *h != tween.NoHandle {
			o.engine.Cancel(*h)
			*h = tween.NoHandle
		}
	}
}

func (o *Orchestrator) begin(content Content, kind Kind, d float64) {
	o.cancelTracked()
	o.resetFloats()
	o.next = content
	o.busy = true

	switch kind {
	case SlideLeft:
		o.beginSlide(d, -1)
	case SlideRight:
		o.beginSlide(d, 1)
	case Zoom:
		o.beginZoom(d)
	case FadeToBlack:
		o.beginFadeToBlack(d)
	default:
		o.beginFade(d)
	}
}

// Fade: current fades out over the first 0.4 of the duration; next fades
// and settles in from a slight shrink, staggered by 0.2. The next-opacity
// completion is the terminal callback.
func (o *Orchestrator) beginFade(d float64) {
	o.nextScale = fadeStartScale
	o.hCurrentOpacity = o.engine.Schedule(1, 0, fadeOutFraction*d, tween.QuadOut, o.setCurrentOpacity, nil)
	o.hNextOpacity = o.engine.ScheduleDelayed(fadeDelayFraction*d, 0, 1, fadeInFraction*d, tween.QuadOut, o.setNextOpacity, o.completeTransition)
	o.hNextScale = o.engine.ScheduleDelayed(fadeDelayFraction*d, fadeStartScale, 1, fadeInFraction*d, tween.QuadOut, o.setNextScale, nil)
}

// Slide: current slides out toward dir while fading; next rides in from
// the opposite side at full opacity. The next-offset completion is the
// terminal callback.
func (o *Orchestrator) beginSlide(d, dir float64) {
	dist := dir * o.slideDistance
	o.nextOpacity = 1
	o.hCurrentOffset = o.engine.Schedule(0, dist, d, tween.QuadOut, o.setCurrentOffset, nil)
	o.hCurrentOpacity = o.engine.Schedule(1, 0, d, tween.QuadOut, o.setCurrentOpacity, nil)
	o.hNextOffset = o.engine.Schedule(-dist, 0, d, tween.QuadOut, o.setNextOffset, o.completeTransition)
}

// Zoom: current fades out while growing slightly; next grows into place
// from a shrink with a back-out settle, staggered by 0.3. The next-opacity
// completion is the terminal callback.
func (o *Orchestrator) beginZoom(d float64) {
	o.nextScale = zoomStartScale
	o.hCurrentOpacity = o.engine.Schedule(1, 0, zoomOutFraction*d, tween.QuadOut, o.setCurrentOpacity, nil)
	o.hCurrentScale = o.engine.Schedule(1, zoomEndScale, zoomOutFraction*d, tween.QuadOut, o.setCurrentScale, nil)
	o.hNextOpacity = o.engine.ScheduleDelayed(zoomDelayFraction*d, 0, 1, zoomInFraction*d, tween.QuadOut, o.setNextOpacity, o.completeTransition)
	o.hNextScale = o.engine.ScheduleDelayed(zoomDelayFraction*d, zoomStartScale, 1, zoomInFraction*d, tween.BackOut, o.setNextScale, nil)
}

// FadeToBlack: an opaque overlay covers the screen, the contents swap
// instantly behind it, then the overlay clears. The only recipe with a
// mid-sequence hard swap; the overlay-out completion is the terminal
// callback.
func (o *Orchestrator) beginFadeToBlack(d float64) {
	o.hOverlay = o.engine.Schedule(0, 1, blackInFraction*d, tween.QuadOut, o.setOverlayOpacity, func() {
		o.currentOpacity = 0
		o.nextOpacity = 1
		o.hOverlay = o.engine.Schedule(1, 0, blackOutFraction*d, tween.QuadOut, o.setOverlayOpacity, o.completeTransition)
	})
}

// completeTransition is the terminal callback of every choreography:
// promote next to current, cancel whatever tracked handles are still
// running and return every float to steady state. A terminal riding a
// delayed entry can outlive a SetContent teardown, so a completion
// that arrives with no transition in flight only sweeps the floats its
// stale siblings may have driven off steady state.
func (o *Orchestrator) completeTransition() {
	if !o.busy {
		o.cancelTracked()
		o.resetFloats()
		return
	}
	o.current = o.next
	o.next = nil
	o.cancelTracked()
	o.resetFloats()
	o.busy = false
}
