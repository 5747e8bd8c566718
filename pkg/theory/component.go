// Package theory compiles a parsed puzzle into CNF clauses. The
// encoding splits into named components that can be toggled
// individually, mirroring the dotted tags used on the command line.
package theory

import "fmt"

// Component identifies one togglable group of clauses in the encoding.
type Component int

const (
	// NoOverlap (T.1) forbids two pieces from covering the same cell.
	NoOverlap Component = iota
	// NoTabu (T.2) keeps every piece off the tabu cells.
	NoTabu
	// PlacementCovers (T.3.1) puts the covered cells of a placement
	// into its conjunct.
	PlacementCovers
	// PlacementExcludes (T.3.2) puts the negated remaining cells of a
	// placement into its conjunct.
	PlacementExcludes
	// AllPiecesPlaced (T.4) requires every piece to appear somewhere.
	AllPiecesPlaced
	// SelectorAtLeastOne (E.1.1) requires some placement selector per
	// piece.
	SelectorAtLeastOne
	// SelectorAtMostOne (E.1.2) allows at most one selector per piece.
	SelectorAtMostOne
	// SelectorImplies (E.2.1) binds a selector to its conjunct
	// literals.
	SelectorImplies
	// SelectorImplied (E.2.2) binds a conjunct back to its selector.
	SelectorImplied
	// TargetUncovered (I.1) keeps the target date cells piece-free.
	TargetUncovered
	// OthersCovered (I.2) covers every other playable cell.
	OthersCovered
)

var componentTags = [...]string{
	NoOverlap:          "T.1",
	NoTabu:             "T.2",
	PlacementCovers:    "T.3.1",
	PlacementExcludes:  "T.3.2",
	AllPiecesPlaced:    "T.4",
	SelectorAtLeastOne: "E.1.1",
	SelectorAtMostOne:  "E.1.2",
	SelectorImplies:    "E.2.1",
	SelectorImplied:    "E.2.2",
	TargetUncovered:    "I.1",
	OthersCovered:      "I.2",
}

var componentDescriptions = [...]string{
	NoOverlap:          "no two pieces overlap",
	NoTabu:             "no piece covers a tabu cell",
	PlacementCovers:    "a selected placement covers its cells",
	PlacementExcludes:  "a selected placement leaves every other cell of its piece empty",
	AllPiecesPlaced:    "every piece appears on the board",
	SelectorAtLeastOne: "some placement is selected for each piece",
	SelectorAtMostOne:  "at most one placement is selected for each piece",
	SelectorImplies:    "a selector implies its placement literals",
	SelectorImplied:    "a satisfied placement implies its selector",
	TargetUncovered:    "the target date cells stay visible",
	OthersCovered:      "every remaining playable cell is covered",
}

// String returns the dotted tag, e.g. "T.3.1".
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentTags) {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentTags[c]
}

// Describe returns a short phrase naming what the component enforces.
func (c Component) Describe() string {
	if c < 0 || int(c) >= len(componentDescriptions) {
		return ""
	}
	return componentDescriptions[c]
}

// Required reports whether removing the component stops the encoding
// from describing the original puzzle. Disabling a required component
// is still permitted; the resulting models answer a different
// question.
func (c Component) Required() bool {
	switch c {
	case NoOverlap, NoTabu, PlacementCovers, SelectorAtLeastOne, SelectorImplies, TargetUncovered:
		return true
	}
	return false
}

// Components returns every component in its canonical order.
func Components() []Component {
	return []Component{
		NoOverlap,
		NoTabu,
		PlacementCovers,
		PlacementExcludes,
		AllPiecesPlaced,
		SelectorAtLeastOne,
		SelectorAtMostOne,
		SelectorImplies,
		SelectorImplied,
		TargetUncovered,
		OthersCovered,
	}
}

// ParseComponent maps a dotted tag back to its Component.
func ParseComponent(tag string) (Component, error) {
	for _, c := range Components() {
		if c.String() == tag {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown theory component %q", tag)
}
