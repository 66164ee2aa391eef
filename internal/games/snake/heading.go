package snake

import "fmt"

// Heading is the snake's direction of travel.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// ParseHeading parses "up", "down", "left" or "right".
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "up":
		return HeadingUp, nil
	case "down":
		return HeadingDown, nil
	case "left":
		return HeadingLeft, nil
	case "right":
		return HeadingRight, nil
	}
	return HeadingRight, fmt.Errorf("%w: unknown heading %q", ErrInvalidConfig, s)
}

// Vector returns the unit step (dcol, drow) for the heading.
func (h Heading) Vector() (int, int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// steering holds the heading in effect and the one queued by input. The
// queued heading takes effect at the start of the next tick.
type steering struct {
	current Heading
	next    Heading
}

func newSteering(h Heading) steering {
	return steering{current: h, next: h}
}

// queue buffers h for the next tick. A reversal of the heading currently in
// effect is rejected, even if another turn is already queued.
func (s *steering) queue(h Heading) bool {
	if h == s.current.Opposite() {
		return false
	}
	s.next = h
	return true
}

// apply promotes the queued heading and returns the heading for this tick.
func (s *steering) apply() Heading {
	if s.next != s.current.Opposite() {
		s.current = s.next
	}
	s.next = s.current
	return s.current
}
