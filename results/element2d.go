package results

import (
	"github.com/notargets/strengl/utils"
)

// Element2D is the stress resultant of a plate or shell element in its
// local x-y plane. Membrane forces and bending moments are each the
// independent components (t11, t22, t12) of a symmetric in-plane tensor.
type Element2D struct {
	id      Identity
	forces  Vec3 // Nx, Ny, Nxy
	moments Vec3 // Mx, My, Mxy
	shears  Vec2 // Qx, Qy
}

// NewElement2D validates and copies the component vectors
func NewElement2D(id Identity, forces, moments, shears []float64) (*Element2D, error) {
	f, err := vec3From("forces", forces)
	if err != nil {
		return nil, err
	}
	m, err := vec3From("moments", moments)
	if err != nil {
		return nil, err
	}
	q, err := vec2From("shears", shears)
	if err != nil {
		return nil, err
	}
	return &Element2D{id: id, forces: f, moments: m, shears: q}, nil
}

func (e *Element2D) Identity() Identity { return e.id }
func (e *Element2D) Kind() Kind         { return Kind2D }
func (e *Element2D) Forces() Vec3       { return e.forces }
func (e *Element2D) Moments() Vec3      { return e.moments }
func (e *Element2D) Shears() Vec2       { return e.shears }

func (e *Element2D) Nx() float64  { return e.forces[0] }
func (e *Element2D) Ny() float64  { return e.forces[1] }
func (e *Element2D) Nxy() float64 { return e.forces[2] }
func (e *Element2D) Mx() float64  { return e.moments[0] }
func (e *Element2D) My() float64  { return e.moments[1] }
func (e *Element2D) Mxy() float64 { return e.moments[2] }
func (e *Element2D) Qx() float64  { return e.shears[0] }
func (e *Element2D) Qy() float64  { return e.shears[1] }

func (e *Element2D) Components() []Component {
	return []Component{
		{"Nx", e.Nx()}, {"Ny", e.Ny()}, {"Nxy", e.Nxy()},
		{"Mx", e.Mx()}, {"My", e.My()}, {"Mxy", e.Mxy()},
		{"Qx", e.Qx()}, {"Qy", e.Qy()},
	}
}

func (e *Element2D) derive(forces, moments Vec3, shears Vec2) *Element2D {
	return &Element2D{id: e.id.combined(), forces: forces, moments: moments, shears: shears}
}

func asElement2D(op string, other Result) (*Element2D, error) {
	o, ok := other.(*Element2D)
	if !ok {
		return nil, mismatch(op, Kind2D, other)
	}
	return o, nil
}

func (e *Element2D) Add(other Result) (Result, error) {
	o, err := asElement2D("add", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.forces.Add(o.forces), e.moments.Add(o.moments), e.shears.Add(o.shears)), nil
}

func (e *Element2D) Sub(other Result) (Result, error) {
	o, err := asElement2D("subtract", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.forces.Sub(o.forces), e.moments.Sub(o.moments), e.shears.Sub(o.shears)), nil
}

func (e *Element2D) Scale(k float64) Result {
	return e.derive(e.forces.Scale(k), e.moments.Scale(k), e.shears.Scale(k))
}

func (e *Element2D) ScaleInPlace(k float64) Result {
	e.forces = e.forces.Scale(k)
	e.moments = e.moments.Scale(k)
	e.shears = e.shears.Scale(k)
	return e
}

func (e *Element2D) Div(k float64) (Result, error) {
	if err := checkDivisor(k); err != nil {
		return nil, err
	}
	q := e.derive(e.forces.Div(k), e.moments.Div(k), e.shears.Div(k))
	if err := checkFinite("divide", q); err != nil {
		return nil, err
	}
	return q, nil
}

func (e *Element2D) DivInPlace(k float64) error {
	out, err := e.Div(k)
	if err != nil {
		return err
	}
	q := out.(*Element2D)
	e.forces = q.forces
	e.moments = q.moments
	e.shears = q.shears
	return nil
}

// Rotate turns the result counter-clockwise by angle (radians) about the
// element normal. Membrane and bending tensors follow T' = R·T·Rᵀ, the shear
// vector follows the in-plane 2×2 block of R.
//
// Components in a frame whose x axis sits at β from the local x axis are
// therefore Rotate(-β).
func (e *Element2D) Rotate(angle float64) *Element2D {
	R := utils.RotationZ(angle)
	q := R.Apply([3]float64{e.shears[0], e.shears[1], 0})
	return &Element2D{
		id:      e.id,
		forces:  planeComponents(R.TransformTensor(e.forces.planeTensor())),
		moments: planeComponents(R.TransformTensor(e.moments.planeTensor())),
		shears:  Vec2{q[0], q[1]},
	}
}
