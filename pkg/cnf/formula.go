// Package cnf holds the propositional side of the puzzle: a variable
// allocator that maps (piece, cell) pairs to DIMACS variables, clause
// building primitives, and the containers for formulas and models.
package cnf

// Clause is a disjunction of non-zero DIMACS literals: the positive
// integer v stands for variable v, the negative integer -v for its
// negation.
type Clause []int

// Formula is a conjunction of clauses over the variables 1..Vars.
// Clauses may repeat; no normalization is performed.
type Formula struct {
	Vars    int
	Clauses []Clause
}

// Literals returns the number of literal occurrences summed over all
// clauses.
func (f *Formula) Literals() int {
	n := 0
	for _, c := range f.Clauses {
		n += len(c)
	}
	return n
}

// Model is a truth assignment keyed by variable. Variables absent from
// the map are false, so partial models are usable as-is.
type Model map[int]bool

// Value returns the assignment of variable v, defaulting to false.
func (m Model) Value(v int) bool {
	return m[v]
}
