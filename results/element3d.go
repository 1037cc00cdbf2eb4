package results

import (
	"github.com/notargets/strengl/utils"
)

// Element3D is the stress/strain result of a solid element. Strain shears
// are engineering shears (γ = 2ε).
type Element3D struct {
	id       Identity
	stresses Tensor6 // sxx, syy, szz, sxy, syz, szx
	strains  Tensor6 // exx, eyy, ezz, gxy, gyz, gzx
}

// NewElement3D validates and copies the six independent components of each
// tensor
func NewElement3D(id Identity, stresses, strains []float64) (*Element3D, error) {
	s, err := tensor6FromSlice("stresses", stresses)
	if err != nil {
		return nil, err
	}
	e, err := tensor6FromSlice("strains", strains)
	if err != nil {
		return nil, err
	}
	return &Element3D{id: id, stresses: s, strains: e}, nil
}

func (e *Element3D) Identity() Identity { return e.id }
func (e *Element3D) Kind() Kind         { return Kind3D }
func (e *Element3D) Stresses() Tensor6  { return e.stresses }
func (e *Element3D) Strains() Tensor6   { return e.strains }

var (
	stressNames = [6]string{"Sxx", "Syy", "Szz", "Sxy", "Syz", "Szx"}
	strainNames = [6]string{"Exx", "Eyy", "Ezz", "Gxy", "Gyz", "Gzx"}
)

func (e *Element3D) Components() []Component {
	out := make([]Component, 0, 12)
	for i, n := range stressNames {
		out = append(out, Component{n, e.stresses[i]})
	}
	for i, n := range strainNames {
		out = append(out, Component{n, e.strains[i]})
	}
	return out
}

func (e *Element3D) derive(stresses, strains Tensor6) *Element3D {
	return &Element3D{id: e.id.combined(), stresses: stresses, strains: strains}
}

func asElement3D(op string, other Result) (*Element3D, error) {
	o, ok := other.(*Element3D)
	if !ok {
		return nil, mismatch(op, Kind3D, other)
	}
	return o, nil
}

func (e *Element3D) Add(other Result) (Result, error) {
	o, err := asElement3D("add", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.stresses.Add(o.stresses), e.strains.Add(o.strains)), nil
}

func (e *Element3D) Sub(other Result) (Result, error) {
	o, err := asElement3D("subtract", other)
	if err != nil {
		return nil, err
	}
	return e.derive(e.stresses.Sub(o.stresses), e.strains.Sub(o.strains)), nil
}

func (e *Element3D) Scale(k float64) Result {
	return e.derive(e.stresses.Scale(k), e.strains.Scale(k))
}

func (e *Element3D) ScaleInPlace(k float64) Result {
	e.stresses = e.stresses.Scale(k)
	e.strains = e.strains.Scale(k)
	return e
}

func (e *Element3D) Div(k float64) (Result, error) {
	if err := checkDivisor(k); err != nil {
		return nil, err
	}
	q := e.derive(e.stresses.Div(k), e.strains.Div(k))
	if err := checkFinite("divide", q); err != nil {
		return nil, err
	}
	return q, nil
}

func (e *Element3D) DivInPlace(k float64) error {
	out, err := e.Div(k)
	if err != nil {
		return err
	}
	q := out.(*Element3D)
	e.stresses = q.stresses
	e.strains = q.strains
	return nil
}

// Rotate transforms both tensors with T' = R·T·Rᵀ
func (e *Element3D) Rotate(R utils.DCM) Result {
	return &Element3D{id: e.id, stresses: e.RotateStress(R), strains: e.RotateStrain(R)}
}

// RotateStress returns the stress components in the frame R
func (e *Element3D) RotateStress(R utils.DCM) Tensor6 {
	return tensor6From(R.TransformTensor(e.stresses.Matrix(1)), 1)
}

// RotateStrain returns the strain components in the frame R. Engineering
// shears are halved into the tensor and doubled back out.
func (e *Element3D) RotateStrain(R utils.DCM) Tensor6 {
	return tensor6From(R.TransformTensor(e.strains.Matrix(0.5)), 0.5)
}
