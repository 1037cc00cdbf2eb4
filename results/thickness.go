package results

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/strengl/utils"
)

// ScaleThickness rescales the resultants for a plate of thickness tNew in
// place of tOld under constant material stiffness: moments by r², membrane
// forces and transverse shears by r, with r = tNew/tOld.
func (e *Element2D) ScaleThickness(tOld, tNew float64) (*Element2D, error) {
	if tOld <= 0 || tNew <= 0 {
		return nil, fmt.Errorf("%w: t_old=%g, t_new=%g", ErrInvalidThickness, tOld, tNew)
	}
	r := tNew / tOld
	return &Element2D{
		id:      e.id,
		forces:  e.forces.Scale(r),
		moments: e.moments.Scale(r * r),
		shears:  e.shears.Scale(r),
	}, nil
}

// ShrinkThickness is ScaleThickness for tNew < tOld
func (e *Element2D) ShrinkThickness(tOld, tNew float64) (*Element2D, error) {
	return e.ScaleThickness(tOld, tNew)
}

// GrowThickness is ScaleThickness for tNew > tOld
func (e *Element2D) GrowThickness(tOld, tNew float64) (*Element2D, error) {
	return e.ScaleThickness(tOld, tNew)
}

// MinThickness returns the minimum thickness that gives the target margin of
// safety ms (allowable/applied - 1), taking the stress at tOld as the
// allowable, i.e. zero margin at tOld.
//
// The loads are held fixed, so the governing surface stress is
// σ(t) = a/t + b/t² with a the largest membrane principal resultant and b six
// times the largest bending principal resultant. The result solves
// σ(t) = σ(tOld)/(1+ms): t0·(1+ms) for pure membrane, t0·√(1+ms) for pure
// bending.
func (e *Element2D) MinThickness(tOld, ms float64) (float64, error) {
	if !(tOld > 0) || math.IsInf(tOld, 0) {
		return 0, fmt.Errorf("%w: t_old=%g", ErrInvalidThickness, tOld)
	}
	f := 1 + ms
	if math.IsNaN(ms) || math.IsInf(ms, 0) || f <= 0 {
		return 0, fmt.Errorf("%w: MS=%g", ErrInvalidMargin, ms)
	}
	a := maxAbsPrincipal(e.forces)
	b := 6 * maxAbsPrincipal(e.moments)
	if a == 0 && b == 0 {
		return 0, fmt.Errorf("%w: element carries no membrane or bending load", ErrInvalidMargin)
	}
	applied := e.GoverningStress(tOld) / f
	t := (a + math.Sqrt(a*a+4*applied*b)) / (2 * applied)
	if !(t > 0) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w: MS=%g gives t=%g", ErrInvalidMargin, ms, t)
	}
	return t, nil
}

// GoverningStress is the surface stress bound a/t + b/t² used by
// MinThickness, with a the largest membrane principal resultant and b six
// times the largest bending principal resultant. It is not checked for t ≤ 0.
func (e *Element2D) GoverningStress(t float64) float64 {
	a := maxAbsPrincipal(e.forces)
	b := 6 * maxAbsPrincipal(e.moments)
	return a/t + b/(t*t)
}

func maxAbsPrincipal(v Vec3) float64 {
	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(2, []float64{v[0], v[2], v[2], v[1]}), false) {
		// 2x2 symmetric factorization does not fail; fall back to the bound
		return math.Abs(v[0]) + math.Abs(v[1]) + math.Abs(v[2])
	}
	var m float64
	for _, l := range es.Values(nil) {
		m = math.Max(m, math.Abs(l))
	}
	return m
}

// PlaneStress is the in-plane stress state at one surface of a plate
type PlaneStress struct {
	Sx, Sy, Sxy float64
}

// VonMises is the plane-stress equivalent stress
func (s PlaneStress) VonMises() float64 {
	return math.Sqrt(s.Sx*s.Sx - s.Sx*s.Sy + s.Sy*s.Sy + 3*s.Sxy*s.Sxy)
}

// Principal returns the major and minor principal stresses and the angle
// (radians) from x to the major direction
func (s PlaneStress) Principal() (s1, s2, angle float64) {
	c := 0.5 * (s.Sx + s.Sy)
	r := math.Hypot(0.5*(s.Sx-s.Sy), s.Sxy)
	return c + r, c - r, 0.5 * math.Atan2(2*s.Sxy, s.Sx-s.Sy)
}

// UpperStress is the stress at z = +t/2: σ = N/t + 6·M/t²
func (e *Element2D) UpperStress(t float64) (PlaneStress, error) {
	return e.surfaceStress(t, 1)
}

// LowerStress is the stress at z = -t/2: σ = N/t - 6·M/t²
func (e *Element2D) LowerStress(t float64) (PlaneStress, error) {
	return e.surfaceStress(t, -1)
}

func (e *Element2D) surfaceStress(t, side float64) (PlaneStress, error) {
	if t <= 0 {
		return PlaneStress{}, fmt.Errorf("%w: t=%g", ErrInvalidThickness, t)
	}
	kb := side * 6 / (t * t)
	return PlaneStress{
		Sx:  e.forces[0]/t + kb*e.moments[0],
		Sy:  e.forces[1]/t + kb*e.moments[1],
		Sxy: e.forces[2]/t + kb*e.moments[2],
	}, nil
}

// ThicknessSource supplies element thickness, which is property data and
// not part of a result
type ThicknessSource interface {
	Thickness(id ID) (float64, error)
}

// ThicknessTable maps element IDs to thickness
type ThicknessTable map[ID]float64

func (tt ThicknessTable) Thickness(id ID) (float64, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("%w: result has no element ID", ErrNoThickness)
	}
	t, ok := tt[id]
	if !ok {
		return 0, fmt.Errorf("%w: element %d", ErrNoThickness, id)
	}
	return t, nil
}

// SurfaceStresses looks up the element thickness in src and returns the
// upper and lower surface stresses. Combined results carry no ID and fail;
// use UpperStress/LowerStress with an explicit thickness for those.
func (e *Element2D) SurfaceStresses(src ThicknessSource) (upper, lower PlaneStress, err error) {
	t, err := src.Thickness(e.id.ID)
	if err != nil {
		return
	}
	if upper, err = e.UpperStress(t); err != nil {
		return
	}
	lower, err = e.LowerStress(t)
	return
}

// StressProfile is the in-plane stress at height z above the midplane,
// with +z toward the upper surface
type StressProfile func(z float64) PlaneStress

// IntegrateThickness builds plate resultants from a through-thickness stress
// profile, N = ∫σ dz and M = ∫σ·z dz over [-t/2, t/2], with an order point
// Gauss-Legendre rule. Linear profiles are exact for any order ≥ 2 and the
// result satisfies UpperStress(t) = profile(t/2). Transverse shears are
// taken as given.
func IntegrateThickness(id Identity, t float64, order int, profile StressProfile, shears []float64) (*Element2D, error) {
	if !(t > 0) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("%w: t=%g", ErrInvalidThickness, t)
	}
	x, w, err := utils.GaussLegendre(order)
	if err != nil {
		return nil, err
	}
	h := 0.5 * t
	var N, M Vec3
	for i := range x {
		z := h * x[i]
		s := profile(z)
		v := Vec3{s.Sx, s.Sy, s.Sxy}
		N = N.Add(v.Scale(w[i] * h))
		M = M.Add(v.Scale(w[i] * h * z))
	}
	return NewElement2D(id, N.Slice(), M.Slice(), shears)
}
