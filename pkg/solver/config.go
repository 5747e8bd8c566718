package solver

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dotypuzzle/doty/pkg/cnf"
)

type enumeratorConfig struct {
	formula        *cnf.Formula
	coreVariables  int
	recordBlocking bool
	logger         *logrus.Logger
}

// Option applies an option to the given enumerator config.
type Option func(config *enumeratorConfig)

// apply sequentially applies the given options to the config.
func (c *enumeratorConfig) apply(options []Option) {
	for _, option := range options {
		option(c)
	}
}

func newInvalidConfigError(msg string) error {
	return errors.Errorf("invalid enumerator config: %s", msg)
}

// validate returns an error if the config isn't valid.
func (c *enumeratorConfig) validate() (err error) {
	switch config := c; {
	case config.formula == nil:
		err = newInvalidConfigError("nil formula")
	case config.coreVariables < 0:
		err = newInvalidConfigError("negative core variable count")
	case config.coreVariables > config.formula.Vars:
		err = newInvalidConfigError("core variable count exceeds formula variables")
	case config.logger == nil:
		err = newInvalidConfigError("nil logger")
	}

	return
}

func defaultConfig() *enumeratorConfig {
	return &enumeratorConfig{
		logger: logrus.New(),
	}
}

// WithFormula sets the CNF formula to enumerate models of.
func WithFormula(f *cnf.Formula) Option {
	return func(config *enumeratorConfig) {
		config.formula = f
	}
}

// WithCoreVariables restricts blocking clauses and returned models to
// the variables 1..n. Auxiliary variables above that range follow from
// the core assignment and are left out of both. Defaults to every
// formula variable.
func WithCoreVariables(n int) Option {
	return func(config *enumeratorConfig) {
		config.coreVariables = n
	}
}

// WithBlockingRecord keeps every blocking clause added during
// enumeration for later export.
func WithBlockingRecord() Option {
	return func(config *enumeratorConfig) {
		config.recordBlocking = true
	}
}

// WithLogger sets the logger used for solver diagnostics.
func WithLogger(logger *logrus.Logger) Option {
	return func(config *enumeratorConfig) {
		config.logger = logger
	}
}
