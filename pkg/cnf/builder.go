package cnf

// AtLeastOne returns the single clause requiring at least one of lits
// to hold.
func AtLeastOne(lits []int) []Clause {
	return []Clause{append(Clause{}, lits...)}
}

// AtMostOne forbids any two of lits from holding together, one binary
// clause per unordered pair.
func AtMostOne(lits []int) []Clause {
	var clauses []Clause
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			clauses = append(clauses, Clause{-lits[i], -lits[j]})
		}
	}
	return clauses
}

// ExactlyOne requires exactly one of lits to hold.
func ExactlyOne(lits []int) []Clause {
	return append(AtLeastOne(lits), AtMostOne(lits)...)
}

// NoneOf forbids every one of lits, one negated unit clause each.
func NoneOf(lits []int) []Clause {
	clauses := make([]Clause, 0, len(lits))
	for _, lit := range lits {
		clauses = append(clauses, Clause{-lit})
	}
	return clauses
}

// TseytinConfig selects which clause groups AtLeastOneConjunct emits.
// Selector variables are minted regardless, so variable numbering does
// not depend on the configuration.
type TseytinConfig struct {
	// SelectorAtLeastOne asserts that some selector holds.
	SelectorAtLeastOne bool
	// SelectorAtMostOne forbids two selectors from holding together.
	SelectorAtMostOne bool
	// SelectorImplies binds each selector to every literal of its
	// conjunct, one binary clause per literal.
	SelectorImplies bool
	// SelectorImplied binds each conjunct back to its selector, one
	// clause of the selector plus the negated conjunct literals.
	SelectorImplied bool
}

// AtLeastOneConjunct encodes a DNF, "at least one conjunct holds
// entirely", as CNF via the Tseytin transform: one fresh selector
// variable per conjunct instead of the exponential distribution of
// disjunctions over conjunctions. The emitted clause count is linear
// in the total literal count of the input. Returns the clauses and the
// selectors in minting order.
func AtLeastOneConjunct(alloc *Allocator, conjuncts [][]int, cfg TseytinConfig) ([]Clause, []int) {
	selectors := make([]int, len(conjuncts))
	for i := range conjuncts {
		selectors[i] = alloc.Aux()
	}

	var clauses []Clause
	if cfg.SelectorAtLeastOne {
		clauses = append(clauses, AtLeastOne(selectors)...)
	}
	if cfg.SelectorAtMostOne {
		clauses = append(clauses, AtMostOne(selectors)...)
	}
	if cfg.SelectorImplies {
		for i, conjunct := range conjuncts {
			for _, lit := range conjunct {
				clauses = append(clauses, Clause{-selectors[i], lit})
			}
		}
	}
	if cfg.SelectorImplied {
		for i, conjunct := range conjuncts {
			clause := make(Clause, 0, len(conjunct)+1)
			clause = append(clause, selectors[i])
			for _, lit := range conjunct {
				clause = append(clause, -lit)
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses, selectors
}
