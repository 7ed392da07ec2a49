package filtration

import (
	"fmt"
	"strings"
)

// Kind tags the filtration variant. The set is closed.
type Kind uint8

const (
	// LowerStar extends a per-vertex field by max (sublevel) or min (superlevel).
	LowerStar Kind = iota
	// Rips uses the longest edge of each simplex in a distance matrix.
	Rips
	// Alpha uses edge circumradii (half lengths) on a Delaunay complex.
	Alpha
)

// String returns the canonical name used in configs and logs.
func (k Kind) String() string {
	switch k {
	case LowerStar:
		return "lower-star"
	case Rips:
		return "rips"
	case Alpha:
		return "alpha"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind accepts the canonical names plus a few common spellings.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower-star", "lowerstar", "lower_star", "levelset", "":
		return LowerStar, nil
	case "rips", "vietoris-rips", "flag":
		return Rips, nil
	case "alpha", "weak-alpha":
		return Alpha, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// Valid reports whether k is one of the declared variants.
func (k Kind) Valid() bool { return k <= Alpha }
