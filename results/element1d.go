package results

import (
	"math"

	"github.com/notargets/strengl/utils"
)

// End names one end of a line element
type End uint8

const (
	EndA End = iota
	EndB
)

func (e End) String() string {
	if e == EndB {
		return "B"
	}
	return "A"
}

// Element1D is the force result of a line element (bar, beam)
//
// Torsion T appears in both end vectors. Every operation treats the two end
// vectors identically so their torsion entries stay consistent.
type Element1D struct {
	id       Identity
	forces   Vec3 // Px, Vy, Vz
	momentsA Vec3 // T, Mya, Mza
	momentsB Vec3 // T, Myb, Mzb
}

// NewElement1D validates and copies the component vectors
func NewElement1D(id Identity, forces, momentsA, momentsB []float64) (*Element1D, error) {
	f, err := vec3From("forces", forces)
	if err != nil {
		return nil, err
	}
	ma, err := vec3From("momentsA", momentsA)
	if err != nil {
		return nil, err
	}
	mb, err := vec3From("momentsB", momentsB)
	if err != nil {
		return nil, err
	}
	return &Element1D{id: id, forces: f, momentsA: ma, momentsB: mb}, nil
}

func (e *Element1D) Identity() Identity { return e.id }
func (e *Element1D) Kind() Kind         { return Kind1D }
func (e *Element1D) Forces() Vec3       { return e.forces }
func (e *Element1D) MomentsA() Vec3     { return e.momentsA }
func (e *Element1D) MomentsB() Vec3     { return e.momentsB }

func (e *Element1D) Px() float64 { return e.forces[0] }
func (e *Element1D) Vy() float64 { return e.forces[1] }
func (e *Element1D) Vz() float64 { return e.forces[2] }

// T is the torsion as stored at end A
func (e *Element1D) T() float64   { return e.momentsA[0] }
func (e *Element1D) Mya() float64 { return e.momentsA[1] }
func (e *Element1D) Mza() float64 { return e.momentsA[2] }
func (e *Element1D) Myb() float64 { return e.momentsB[1] }
func (e *Element1D) Mzb() float64 { return e.momentsB[2] }

func (e *Element1D) Components() []Component {
	return []Component{
		{"Px", e.Px()}, {"Vy", e.Vy()}, {"Vz", e.Vz()},
		{"T", e.T()}, {"Mya", e.Mya()}, {"Mza", e.Mza()},
		{"Myb", e.Myb()}, {"Mzb", e.Mzb()},
	}
}

func (e *Element1D) derive(forces, momentsA, momentsB Vec3) *Element1D {
	return &Element1D{id: e.id.combined(), forces: forces, momentsA: momentsA, momentsB: momentsB}
}

func asElement1D(op string, other Result) (*Element1D, error) {
	o, ok := other.(*Element1D)
	if !ok {
		return nil, mismatch(op, Kind1D, other)
	}
	return o, nil
}

func (e *Element1D) Add(other Result) (Result, error) {
	o, err := asElement1D("add", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.forces.Add(o.forces), e.momentsA.Add(o.momentsA), e.momentsB.Add(o.momentsB)), nil
}

func (e *Element1D) Sub(other Result) (Result, error) {
	o, err := asElement1D("subtract", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.forces.Sub(o.forces), e.momentsA.Sub(o.momentsA), e.momentsB.Sub(o.momentsB)), nil
}

func (e *Element1D) Scale(k float64) Result {
	return e.derive(e.forces.Scale(k), e.momentsA.Scale(k), e.momentsB.Scale(k))
}

func (e *Element1D) ScaleInPlace(k float64) Result {
	e.forces = e.forces.Scale(k)
	e.momentsA = e.momentsA.Scale(k)
	e.momentsB = e.momentsB.Scale(k)
	return e
}

func (e *Element1D) Div(k float64) (Result, error) {
	if err := checkDivisor(k); err != nil {
		return nil, err
	}
	q := e.derive(e.forces.Div(k), e.momentsA.Div(k), e.momentsB.Div(k))
	if err := checkFinite("divide", q); err != nil {
		return nil, err
	}
	return q, nil
}

func (e *Element1D) DivInPlace(k float64) error {
	out, err := e.Div(k)
	if err != nil {
		return err
	}
	q := out.(*Element1D)
	e.forces = q.forces
	e.momentsA = q.momentsA
	e.momentsB = q.momentsB
	return nil
}

// Rotate applies R to forces, momentsA and momentsB as independent vectors,
// torsion entry included
func (e *Element1D) Rotate(R utils.DCM) Result {
	return &Element1D{
		id:       e.id,
		forces:   e.forces.Rotate(R),
		momentsA: e.momentsA.Rotate(R),
		momentsB: e.momentsB.Rotate(R),
	}
}

// MaxMoment returns the full moment vector of the end with the larger
// bending magnitude |(My, Mz)|. Torsion is not part of the comparison.
// End A wins a tie.
func (e *Element1D) MaxMoment() (Vec3, End) {
	a := math.Hypot(e.momentsA[1], e.momentsA[2])
	b := math.Hypot(e.momentsB[1], e.momentsB[2])
	if b > a {
		return e.momentsB, EndB
	}
	return e.momentsA, EndA
}
