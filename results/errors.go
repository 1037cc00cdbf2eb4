package results

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrTypeMismatch     = errors.New("results: operands are different result variants")
	ErrDivision         = errors.New("results: division by zero")
	ErrInvalidThickness = errors.New("results: thickness must be positive")
	ErrInvalidMargin    = errors.New("results: margin implies non-positive thickness")
	ErrNotImplemented   = errors.New("results: operation not implemented")
	ErrShape            = errors.New("results: component vector has wrong length")
	ErrNonFinite        = errors.New("results: component is NaN or Inf")
	ErrNoThickness      = errors.New("results: no thickness for element")
	ErrNoSamples        = errors.New("results: no samples to interpolate")
	ErrNilSample        = errors.New("results: sample has no node")
	ErrEmptyCombination = errors.New("results: nothing to combine")
)

// TypeMismatchError reports an operator applied across two variants
type TypeMismatchError struct {
	Op   string
	Want Kind
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("results: %s: cannot combine %s with %s", e.Op, e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

func mismatch(op string, want Kind, got Result) error {
	name := "<nil>"
	if got != nil {
		name = got.Kind().String()
	}
	return &TypeMismatchError{Op: op, Want: want, Got: name}
}

func checkDivisor(k float64) error {
	if k == 0 {
		return ErrDivision
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("%w: divisor %v", ErrNonFinite, k)
	}
	return nil
}

// checkFinite rejects a result whose arithmetic overflowed
func checkFinite(op string, r Result) error {
	for _, c := range r.Components() {
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return fmt.Errorf("%w: %s gives %s = %v", ErrNonFinite, op, c.Name, c.Value)
		}
	}
	return nil
}
