package core

import "fmt"

// Orientation is the way an actor faces.
// The four values form a cyclic group under clockwise rotation.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// Orientations returns all orientations in clockwise order starting at North.
func Orientations() []Orientation {
	return []Orientation{North, East, South, West}
}

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseOrientation converts a name produced by String back to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range Orientations() {
		if o.String() == s {
			return o, nil
		}
	}
	return North, fmt.Errorf("core: unknown orientation %q", s)
}

// IsValid returns true for the four cardinal orientations.
func (o Orientation) IsValid() bool {
	return o >= North && o <= West
}

// Clockwise returns the orientation after a quarter turn to the right.
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % 4
}

// Counterclockwise returns the orientation after a quarter turn to the left.
func (o Orientation) Counterclockwise() Orientation {
	return (o + 3) % 4
}

// Reverse returns the opposite orientation.
func (o Orientation) Reverse() Orientation {
	return (o + 2) % 4
}

// Delta returns the one-tile step in this direction.
func (o Orientation) Delta() Point {
	switch o {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("core: invalid orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
