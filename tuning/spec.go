package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/motion/transition"
	"github.com/milk9111/motion/tween"
)

// Spec holds the motion constants exposed for live editing. Zero fields
// are backfilled from the built-in defaults, so a partial yaml file only
// overrides what it names.
type Spec struct {
	TransitionDuration float64 `yaml:"transition_duration"`
	SlideDistance      float64 `yaml:"slide_distance"`
	DefaultTransition  string  `yaml:"default_transition"`

	HoverScale float64 `yaml:"hover_scale"`
	PressScale float64 `yaml:"press_scale"`
	FocusScale float64 `yaml:"focus_scale"`

	HoverDuration     float64 `yaml:"hover_duration"`
	PressDuration     float64 `yaml:"press_duration"`
	FocusGlowDuration float64 `yaml:"focus_glow_duration"`
}

// Default returns the stock motion constants.
func Default() Spec {
	return Spec{
		TransitionDuration: tween.DefaultTransitionDuration,
		SlideDistance:      transition.DefaultSlideDistance,
		DefaultTransition:  transition.Fade.String(),
		HoverScale:         tween.HoverScale,
		PressScale:         tween.PressScale,
		FocusScale:         tween.FocusScale,
		HoverDuration:      tween.HoverDuration,
		PressDuration:      tween.PressDuration,
		FocusGlowDuration:  tween.FocusGlowDuration,
	}
}

// Parse unmarshals a motion spec and backfills missing fields from the
// defaults.
func Parse(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("tuning: unmarshal motion spec: %w", err)
	}
	s.backfill()
	return s, nil
}

// Load reads tuning/motion.yaml from disk if present, falling back to the
// embedded default.
func Load() (Spec, error) {
	data, err := read(specFile)
	if err != nil {
		return Spec{}, fmt.Errorf("tuning: load %s: %w", specFile, err)
	}
	return Parse(data)
}

// DefaultKind resolves the configured default transition name, falling
// back to Fade for unknown names.
func (s Spec) DefaultKind() transition.Kind {
	if kind, ok := transition.ParseKind(s.DefaultTransition); ok {
		return kind
	}
	return transition.Fade
}

func (s *Spec) backfill() {
	d := Default()
	if s.TransitionDuration <= 0 {
		s.TransitionDuration = d.TransitionDuration
	}
	if s.SlideDistance <= 0 {
		s.SlideDistance = d.SlideDistance
	}
	if s.DefaultTransition == "" {
		s.DefaultTransition = d.DefaultTransition
	}
	if s.HoverScale <= 0 {
		s.HoverScale = d.HoverScale
	}
	if s.PressScale <= 0 {
		s.PressScale = d.PressScale
	}
	if s.FocusScale <= 0 {
		s.FocusScale = d.FocusScale
	}
	if s.HoverDuration <= 0 {
		s.HoverDuration = d.HoverDuration
	}
	if s.PressDuration <= 0 {
		s.PressDuration = d.PressDuration
	}
	if s.FocusGlowDuration <= 0 {
		s.FocusGlowDuration = d.FocusGlowDuration
	}
}
