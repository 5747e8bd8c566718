// Package solver adapts the gini SAT engine to pull-based model
// enumeration: each pull excludes the previous model and searches for
// the next one.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/dotypuzzle/doty/pkg/cnf"
)

// Incomplete is reported when solving stops before the engine reaches
// an answer, typically because the context was cancelled.
var Incomplete = errors.New("cancelled before an answer could be found")

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Enumerator walks the models of a formula one pull at a time.
// Exhaustion is a normal outcome, not an error: a formula with no
// models yields zero pulls and a nil Err. Not safe for concurrent use.
type Enumerator struct {
	g        *gini.Gini
	core     int
	record   bool
	logger   *logrus.Logger
	model    cnf.Model
	count    int
	blocking []cnf.Clause
	done     bool
	err      error
}

// New loads the configured formula into a fresh engine.
func New(options ...Option) (*Enumerator, error) {
	config := defaultConfig()
	config.apply(options)
	if err := config.validate(); err != nil {
		return nil, err
	}

	g := gini.New()
	for _, clause := range config.formula.Clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}

	core := config.coreVariables
	if core == 0 {
		core = config.formula.Vars
	}

	return &Enumerator{
		g:      g,
		core:   core,
		record: config.recordBlocking,
		logger: config.logger,
	}, nil
}

// Next pulls the next model, first excluding the one returned by the
// previous pull. It returns false either on exhaustion, leaving Err
// nil, or on failure, with Err saying why. Cancelling ctx stops the
// engine mid-search.
func (e *Enumerator) Next(ctx context.Context) bool {
	if e.done {
		return false
	}

	if e.model != nil {
		e.block()
	}

	switch waitForSolution(ctx, e.g.GoSolve()) {
	case satisfiable:
		e.model = e.readModel()
		e.count++
		e.logger.WithField("models", e.count).Debug("model found")
		return true
	case unsatisfiable:
		e.done = true
		e.model = nil
		e.logger.WithField("models", e.count).Debug("enumeration exhausted")
		return false
	}

	e.done = true
	e.model = nil
	e.err = Incomplete
	return false
}

// Model returns the positive core assignment of the last successful
// pull.
func (e *Enumerator) Model() cnf.Model {
	return e.model
}

// Count returns the number of models pulled so far.
func (e *Enumerator) Count() int {
	return e.count
}

// Blocking returns the recorded blocking clauses, one per excluded
// model, in exclusion order. Nil unless WithBlockingRecord was given.
func (e *Enumerator) Blocking() []cnf.Clause {
	return e.blocking
}

// Err reports why enumeration stopped early, or nil after a clean
// exhaustion (or while models keep coming).
func (e *Enumerator) Err() error {
	return e.err
}

// block forbids the current core assignment. Auxiliary variables are
// left out: they follow from the core ones, and keeping them would
// let the engine return the same arrangement again under a different
// selector labeling.
func (e *Enumerator) block() {
	clause := make(cnf.Clause, 0, e.core)
	for v := 1; v <= e.core; v++ {
		if e.model.Value(v) {
			clause = append(clause, -v)
		} else {
			clause = append(clause, v)
		}
	}
	if e.record {
		e.blocking = append(e.blocking, clause)
	}
	for _, lit := range clause {
		e.g.Add(z.Dimacs2Lit(lit))
	}
	e.g.Add(z.LitNull)
}

func (e *Enumerator) readModel() cnf.Model {
	m := cnf.Model{}
	for v := 1; v <= e.core; v++ {
		if e.g.Value(z.Dimacs2Lit(v)) {
			m[v] = true
		}
	}
	return m
}

func waitForSolution(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(50 * time.Millisecond)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}
