package geo

import "fmt"

// =============================================================================
// Side & Alignment
// =============================================================================

// Side names the edge of the reference a floating element attaches to.
type Side string

// Valid sides.
const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Opposite returns the side across the reference.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return s
}

// IsVertical reports whether the side is top or bottom.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// Alignment names how the floating element lines up along the chosen side.
type Alignment string

// Valid alignments. AlignCenter is the zero behavior and is never encoded
// in a placement string.
const (
	AlignCenter Alignment = ""
	AlignStart  Alignment = "start"
	AlignEnd    Alignment = "end"
)

// =============================================================================
// Placement - Side/Alignment Pair
// =============================================================================

// Placement names where a floating element sits relative to its reference.
// The encoding is "<side>" or "<side>-<alignment>" (e.g. "bottom",
// "top-start"), matching the strings accepted by [ParsePlacement].
type Placement string

// All twelve placements.
const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementLeft        Placement = "left"
	PlacementLeftStart   Placement = "left-start"
	PlacementLeftEnd     Placement = "left-end"
	PlacementRight       Placement = "right"
	PlacementRightStart  Placement = "right-start"
	PlacementRightEnd    Placement = "right-end"
)

// placements is the canonical set, in documentation order.
var placements = []Placement{
	PlacementTop, PlacementTopStart, PlacementTopEnd,
	PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
	PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
	PlacementRight, PlacementRightStart, PlacementRightEnd,
}

// Placements returns all valid placements in a stable order.
func Placements() []Placement {
	out := make([]Placement, len(placements))
	copy(out, placements)
	return out
}

// Side extracts the side component of the placement.
func (p Placement) Side() Side {
	for i := 0; i < len(p); i++ {
		if p[i] == '-' {
			return Side(p[:i])
		}
	}
	return Side(p)
}

// Alignment extracts the alignment component of the placement.
// Placements without an explicit alignment return [AlignCenter].
func (p Placement) Alignment() Alignment {
	for i := 0; i < len(p); i++ {
		if p[i] == '-' {
			return Alignment(p[i+1:])
		}
	}
	return AlignCenter
}

// WithAlignment returns the placement rebuilt with the given alignment.
func (p Placement) WithAlignment(a Alignment) Placement {
	if a == AlignCenter {
		return Placement(p.Side())
	}
	return Placement(string(p.Side()) + "-" + string(a))
}

// Opposite returns the placement flipped to the other side of the
// reference, preserving alignment.
func (p Placement) Opposite() Placement {
	return Placement(string(p.Side().Opposite())).WithAlignment(p.Alignment())
}

// Valid reports whether p is one of the twelve canonical placements.
func (p Placement) Valid() bool {
	for _, known := range placements {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePlacement validates a placement string and returns the Placement.
// An empty string parses to [PlacementBottom], the library default.
func ParsePlacement(s string) (Placement, error) {
	if s == "" {
		return PlacementBottom, nil
	}
	p := Placement(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid placement %q", s)
	}
	return p, nil
}
