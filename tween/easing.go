package tween

import "math"

// Easing identifies one of the built-in easing curves. Every curve maps
// progress 0 to 0 and progress 1 to 1; BackOut and ElasticOut overshoot
// that range for intermediate progress.
type Easing int

const (
	Linear Easing = iota
	QuadIn
	QuadOut
	QuadInOut
	BackOut
	ElasticOut
)

const (
	backOvershoot = 1.70158
	elasticPeriod = 0.3
)

// Ease reshapes normalized progress through the named curve. Unknown kinds
// fall back to Linear.
func Ease(t float64, kind Easing) float64 {
	switch kind {
	case QuadIn:
		return t * t
	case QuadOut:
		return 1 - (1-t)*(1-t)
	case QuadInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	case BackOut:
		c := backOvershoot + 1
		u := t - 1
		return 1 + c*u*u*u + backOvershoot*u*u
	case ElasticOut:
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		s := elasticPeriod / 4
		return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/elasticPeriod) + 1
	default:
		return t
	}
}
