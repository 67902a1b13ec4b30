package tween

// Shared interaction constants. Widget code and the transition layer both
// read these so hover/press/focus feel identical across the UI.
const (
	HoverScale = 1.08
	PressScale = 1.04
	FocusScale = 1.05

	HoverDuration     = 0.15
	PressDuration     = 0.10
	FocusGlowDuration = 0.20

	// DefaultTransitionDuration is the stock screen-transition length in
	// seconds.
	DefaultTransitionDuration = 0.30
)

// FadeIn animates opacity 0 to 1 over duration seconds.
func (e *Engine) FadeIn(duration float64, onUpdate UpdateFunc, onComplete CompleteFunc) Handle {
	return e.Schedule(0, 1, duration, QuadOut, onUpdate, onComplete)
}

// FadeOut animates opacity 1 to 0 over duration seconds.
func (e *Engine) FadeOut(duration float64, onUpdate UpdateFunc, onComplete CompleteFunc) Handle {
	return e.Schedule(1, 0, duration, QuadOut, onUpdate, onComplete)
}

// ScaleHover eases a widget's scale between 1.0 and the hover scale.
// current is the widget's present scale so a mid-flight reversal starts
// from where the previous animation left off.
func (e *Engine) ScaleHover(hovering bool, current float64, onUpdate UpdateFunc) Handle {
	target := 1.0
	if hovering {
		target = HoverScale
	}
	return e.Schedule(current, target, HoverDuration, QuadOut, onUpdate, nil)
}

// ScalePress eases a widget's scale between 1.0 and the press scale.
func (e *Engine) ScalePress(pressed bool, current float64, onUpdate UpdateFunc) Handle {
	target := 1.0
	if pressed {
		target = PressScale
	}
	return e.Schedule(current, target, PressDuration, QuadOut, onUpdate, nil)
}

// ScaleFocus eases a widget's scale between 1.0 and the focus scale over
// the focus-glow duration.
func (e *Engine) ScaleFocus(focused bool, current float64, onUpdate UpdateFunc) Handle {
	target := 1.0
	if focused {
		target = FocusScale
	}
	return e.Schedule(current, target, FocusGlowDuration, QuadOut, onUpdate, nil)
}
