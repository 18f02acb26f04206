// Package level defines the ordered proficiency bands and the gating
// policy that decides which bands a learner can enter.
package level

import "fmt"

// Level is a proficiency band. The zero value is Unknown; bands order
// strictly PreA0 < A0 < A1 < A2 < B1 < B2 < C1 < C2.
type Level int

const (
	Unknown Level = iota
	PreA0
	A0
	A1
	A2
	B1
	B2
	C1
	C2
)

// AllLevels returns the gated bands in ascending order (Unknown excluded).
func AllLevels() []Level {
	return []Level{PreA0, A0, A1, A2, B1, B2, C1, C2}
}

// String returns the canonical band name.
func (l Level) String() string {
	switch l {
	case PreA0:
		return "PreA0"
	case A0:
		return "A0"
	case A1:
		return "A1"
	case A2:
		return "A2"
	case B1:
		return "B1"
	case B2:
		return "B2"
	case C1:
		return "C1"
	case C2:
		return "C2"
	default:
		return "Unknown"
	}
}

// Parse converts a band name into a Level.
func Parse(s string) (Level, error) {
	for _, l := range AllLevels() {
		if l.String() == s {
			return l, nil
		}
	}
	if s == "Unknown" {
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown level: %q", s)
}

// Prev returns the band immediately below l, or Unknown if there is none.
func (l Level) Prev() Level {
	if l <= PreA0 {
		return Unknown
	}
	return l - 1
}

// MarshalText implements encoding.TextMarshaler so levels persist by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized names
// decode as Unknown rather than failing the whole profile load.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		*l = Unknown
		return nil
	}
	*l = parsed
	return nil
}
