package results

import (
	"github.com/notargets/strengl/utils"
)

// Element0D is the force result of a point-like element (spring, bush, mass)
type Element0D struct {
	id      Identity
	forces  Vec3 // Px, Py, Pz
	moments Vec3 // Mx, My, Mz
}

// NewElement0D validates and copies the component vectors
func NewElement0D(id Identity, forces, moments []float64) (*Element0D, error) {
	f, err := vec3From("forces", forces)
	if err != nil {
		return nil, err
	}
	m, err := vec3From("moments", moments)
	if err != nil {
		return nil, err
	}
	return &Element0D{id: id, forces: f, moments: m}, nil
}

func (e *Element0D) Identity() Identity { return e.id }
func (e *Element0D) Kind() Kind         { return Kind0D }
func (e *Element0D) Forces() Vec3       { return e.forces }
func (e *Element0D) Moments() Vec3      { return e.moments }

// Named projections read the vectors directly so they can never go stale
func (e *Element0D) Px() float64 { return e.forces[0] }
func (e *Element0D) Py() float64 { return e.forces[1] }
func (e *Element0D) Pz() float64 { return e.forces[2] }
func (e *Element0D) Mx() float64 { return e.moments[0] }
func (e *Element0D) My() float64 { return e.moments[1] }
func (e *Element0D) Mz() float64 { return e.moments[2] }

func (e *Element0D) Components() []Component {
	return []Component{
		{"Px", e.Px()}, {"Py", e.Py()}, {"Pz", e.Pz()},
		{"Mx", e.Mx()}, {"My", e.My()}, {"Mz", e.Mz()},
	}
}

func (e *Element0D) derive(forces, moments Vec3) *Element0D {
	return &Element0D{id: e.id.combined(), forces: forces, moments: moments}
}

func asElement0D(op string, other Result) (*Element0D, error) {
	o, ok := other.(*Element0D)
	if !ok {
		return nil, mismatch(op, Kind0D, other)
	}
	return o, nil
}

func (e *Element0D) Add(other Result) (Result, error) {
	o, err := asElement0D("add", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.forces.Add(o.forces), e.moments.Add(o.moments)), nil
}

func (e *Element0D) Sub(other Result) (Result, error) {
	o, err := asElement0D("subtract", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.forces.Sub(o.forces), e.moments.Sub(o.moments)), nil
}

func (e *Element0D) Scale(k float64) Result {
	return e.derive(e.forces.Scale(k), e.moments.Scale(k))
}

func (e *Element0D) ScaleInPlace(k float64) Result {
	e.forces = e.forces.Scale(k)
	e.moments = e.moments.Scale(k)
	return e
}

func (e *Element0D) Div(k float64) (Result, error) {
	if err := checkDivisor(k); err != nil {
		return nil, err
	}
	q := e.derive(e.forces.Div(k), e.moments.Div(k))
	if err := checkFinite("divide", q); err != nil {
		return nil, err
	}
	return q, nil
}

func (e *Element0D) DivInPlace(k float64) error {
	out, err := e.Div(k)
	if err != nil {
		return err
	}
	q := out.(*Element0D)
	e.forces = q.forces
	e.moments = q.moments
	return nil
}

// FlipSigns reverses the positive sign convention, e.g. when the other side
// of a connection is taken as end A
func (e *Element0D) FlipSigns() {
	e.forces = e.forces.Scale(-1)
	e.moments = e.moments.Scale(-1)
}

func (e *Element0D) Rotate(R utils.DCM) Result {
	return &Element0D{id: e.id, forces: e.forces.Rotate(R), moments: e.moments.Rotate(R)}
}
