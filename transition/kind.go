package transition

import "strings"

// Kind names one of the built-in transition choreographies.
type Kind int

const (
	// None swaps content instantly, bypassing animation entirely.
	None Kind = iota
	Fade
	SlideLeft
	SlideRight
	Zoom
	FadeToBlack
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Fade:
		return "fade"
	case SlideLeft:
		return "slide_left"
	case SlideRight:
		return "slide_right"
	case Zoom:
		return "zoom"
	case FadeToBlack:
		return "fade_to_black"
	default:
		return "unknown"
	}
}

// ParseKind maps a config or script name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, true
	case "fade":
		return Fade, true
	case "slide_left", "slideleft", "left":
		return SlideLeft, true
	case "slide_right", "slideright", "right":
		return SlideRight, true
	case "zoom":
		return Zoom, true
	case "fade_to_black", "fadetoblack", "black":
		return FadeToBlack, true
	default:
		return None, false
	}
}
