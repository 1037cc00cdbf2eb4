// Package combination applies factored load combinations to results that
// were computed per load case.
package combination

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/notargets/strengl/results"
)

var (
	ErrMissingCase        = errors.New("combination: load case has no result")
	ErrInvalidCombination = errors.New("combination: invalid combination")
)

// Combination is one row of a load combination table, e.g. 1.2D + 1.6L
type Combination struct {
	ID          string
	Description string
	Factors     map[string]float64 // load case name -> load factor
}

// Validate checks the combination has an ID and at least one finite factor
func (c Combination) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCombination)
	}
	if len(c.Factors) == 0 {
		return fmt.Errorf("%w: %s has no load factors", ErrInvalidCombination, c.ID)
	}
	for name, f := range c.Factors {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s factor for %q is %v", ErrInvalidCombination, c.ID, name, f)
		}
	}
	return nil
}

// Cases returns the referenced load case names in sorted order
func (c Combination) Cases() []string {
	names := make([]string, 0, len(c.Factors))
	for name := range c.Factors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply superposes the per-case results with the combination's factors.
// Cases are visited in sorted name order so the result is reproducible;
// all results must be expressed in the same frame.
func Apply[T results.Result](c Combination, cases map[string]T) (T, error) {
	var zero T
	if err := c.Validate(); err != nil {
		return zero, err
	}
	names := c.Cases()
	terms := make([]results.Term[T], 0, len(names))
	for _, name := range names {
		r, ok := cases[name]
		if !ok {
			return zero, fmt.Errorf("%w: %s needs case %q", ErrMissingCase, c.ID, name)
		}
		terms = append(terms, results.Term[T]{Factor: c.Factors[name], Result: r})
	}
	out, err := results.Combine(terms...)
	if err != nil {
		return zero, fmt.Errorf("combination %s: %w", c.ID, err)
	}
	return out, nil
}

// Covers reports whether every case the combination references is present
func Covers[T any](c Combination, cases map[string]T) bool {
	for name := range c.Factors {
		if _, ok := cases[name]; !ok {
			return false
		}
	}
	return true
}
