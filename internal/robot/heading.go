package robot

import "fmt"

// Heading is the compass direction a robot faces.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in clockwise order.
func Headings() []Heading {
	return []Heading{North, East, South, West}
}

// ParseHeading accepts exactly one of N, E, S or W.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return North, fmt.Errorf("unknown heading %q", s)
}

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// Left is a quarter turn anti-clockwise.
func (h Heading) Left() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	return h
}

// Right is a quarter turn clockwise.
func (h Heading) Right() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return h
}

// Delta is the one-cell displacement of moving forward. North is +y.
func (h Heading) Delta() Point {
	switch h {
	case North:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, -1}
	case West:
		return Point{-1, 0}
	}
	return Point{}
}

// Icon is an arrow pointing along the heading.
func (h Heading) Icon() rune {
	switch h {
	case North:
		return '↑'
	case East:
		return '→'
	case South:
		return '↓'
	case West:
		return '←'
	}
	return '?'
}

// MarshalText lets headings travel as "N", "E", "S", "W" in JSON.
func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Capture implements participle.Capture so grammars can bind a heading
// token straight into a Heading field.
func (h *Heading) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("expected a single heading, got %d values", len(values))
	}
	return h.UnmarshalText([]byte(values[0]))
}
