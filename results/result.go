package results

import (
	"fmt"
	"math"

	"github.com/notargets/strengl/utils"
)

// Kind identifies the concrete result variant
type Kind uint8

const (
	KindNode Kind = iota
	Kind0D
	Kind1D
	Kind2D
	Kind3D
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "Node"
	case Kind0D:
		return "Element0D"
	case Kind1D:
		return "Element1D"
	case Kind2D:
		return "Element2D"
	case Kind3D:
		return "Element3D"
	default:
		return "Unknown"
	}
}

// ID is a grid or element identifier. Solver identifiers are positive, so
// the zero value NoID marks a result that no longer belongs to one entity.
type ID int

const NoID ID = 0

// Valid reports whether id refers to a physical entity
func (id ID) Valid() bool { return id > 0 }

// Identity is informational and never takes part in arithmetic
type Identity struct {
	Subcase int    // analysis case the result was computed under
	ID      ID     // grid or element, NoID after combination
	Source  string // origin tag, e.g. the result file
}

// combined returns the identity carried by the output of a binary operator
func (id Identity) combined() Identity {
	id.ID = NoID
	return id
}

// Component is one named scalar of a result, in the variant's fixed order
type Component struct {
	Name  string
	Value float64
}

// Result is the vector-space contract every variant satisfies. Binary
// operators never mutate their arguments and return a new result with
// ID = NoID. Combining results expressed in different frames is a caller
// error that is not detected here. Div and DivInPlace reject zero and
// non-finite divisors and quotients that overflow; Scale has no error
// return, so callers pass finite factors (Combine checks them).
type Result interface {
	Identity() Identity
	Kind() Kind
	Components() []Component

	Add(other Result) (Result, error)
	Sub(other Result) (Result, error)
	Scale(k float64) Result
	ScaleInPlace(k float64) Result
	Div(k float64) (Result, error)
	DivInPlace(k float64) error
}

// Rotatable results transform with a direction cosine matrix. R must be
// orthonormal; that precondition is not validated.
type Rotatable interface {
	Result
	Rotate(R utils.DCM) Result
}

var (
	_ Rotatable = (*Node)(nil)
	_ Rotatable = (*Element0D)(nil)
	_ Rotatable = (*Element1D)(nil)
	_ Rotatable = (*Element3D)(nil)
	_ Result    = (*Element2D)(nil)
)

// Add returns a + b with the static type of the operands
func Add[T Result](a, b T) (T, error) {
	r, err := a.Add(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.(T), nil
}

// Sub returns a - b
func Sub[T Result](a, b T) (T, error) {
	r, err := a.Sub(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.(T), nil
}

// Scale returns k·a
func Scale[T Result](a T, k float64) T {
	return a.Scale(k).(T)
}

// Div returns a / k
func Div[T Result](a T, k float64) (T, error) {
	r, err := a.Div(k)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.(T), nil
}

// Rotate returns a expressed in the frame described by R
func Rotate[T Rotatable](a T, R utils.DCM) T {
	return a.Rotate(R).(T)
}

// Term is one factored contribution to a superposition
type Term[T Result] struct {
	Factor float64
	Result T
}

// Combine returns Σ factor·result over terms. The output carries ID = NoID
// and the Subcase/Source of the first term. Non-finite factors and sums that
// overflow fail with ErrNonFinite.
func Combine[T Result](terms ...Term[T]) (T, error) {
	var zero T
	if len(terms) == 0 {
		return zero, ErrEmptyCombination
	}
	var acc Result
	for i, term := range terms {
		if math.IsNaN(term.Factor) || math.IsInf(term.Factor, 0) {
			return zero, fmt.Errorf("%w: factor %d is %v", ErrNonFinite, i, term.Factor)
		}
		scaled := term.Result.Scale(term.Factor)
		if i == 0 {
			acc = scaled
			continue
		}
		var err error
		if acc, err = acc.Add(scaled); err != nil {
			return zero, err
		}
	}
	if err := checkFinite("combine", acc); err != nil {
		return zero, err
	}
	return acc.(T), nil
}
