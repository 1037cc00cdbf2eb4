package results

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/strengl/utils"
)

// Vec3 holds three components in a variant-specific axis order
type Vec3 [3]float64

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v[0] * k, v[1] * k, v[2] * k} }
func (v Vec3) Div(k float64) Vec3   { return Vec3{v[0] / k, v[1] / k, v[2] / k} }

// Norm is the Euclidean length
func (v Vec3) Norm() float64 { return floats.Norm(v[:], 2) }

// Rotate returns R·v
func (v Vec3) Rotate(R utils.DCM) Vec3 { return Vec3(R.Apply(v)) }

// Slice returns the components as a fresh slice
func (v Vec3) Slice() []float64 { return []float64{v[0], v[1], v[2]} }

// planeTensor expands (t11, t22, t12) into a symmetric 3×3 with no
// out-of-plane components
func (v Vec3) planeTensor() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		v[0], v[2], 0,
		v[2], v[1], 0,
		0, 0, 0,
	})
}

func planeComponents(t mat.Symmetric) Vec3 {
	return Vec3{t.At(0, 0), t.At(1, 1), t.At(0, 1)}
}

// Vec2 holds the two transverse shear components (Qx, Qy)
type Vec2 [2]float64

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v[0] + o[0], v[1] + o[1]} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v[0] - o[0], v[1] - o[1]} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v[0] * k, v[1] * k} }
func (v Vec2) Div(k float64) Vec2   { return Vec2{v[0] / k, v[1] / k} }
func (v Vec2) Norm() float64        { return math.Hypot(v[0], v[1]) }
func (v Vec2) Slice() []float64     { return []float64{v[0], v[1]} }

// Tensor6 holds the independent components of a symmetric 3×3 tensor in
// the order xx, yy, zz, xy, yz, zx
type Tensor6 [6]float64

func (t Tensor6) Add(o Tensor6) (out Tensor6) {
	for i := range t {
		out[i] = t[i] + o[i]
	}
	return
}

func (t Tensor6) Sub(o Tensor6) (out Tensor6) {
	for i := range t {
		out[i] = t[i] - o[i]
	}
	return
}

func (t Tensor6) Scale(k float64) (out Tensor6) {
	for i := range t {
		out[i] = t[i] * k
	}
	return
}

func (t Tensor6) Div(k float64) (out Tensor6) {
	for i := range t {
		out[i] = t[i] / k
	}
	return
}

func (t Tensor6) Slice() []float64 { return append([]float64(nil), t[:]...) }

// Matrix expands the components into a symmetric 3×3. shear multiplies the
// off-diagonal entries: 1 for stresses, 0.5 for engineering strains.
func (t Tensor6) Matrix(shear float64) *mat.SymDense {
	xy, yz, zx := shear*t[3], shear*t[4], shear*t[5]
	return mat.NewSymDense(3, []float64{
		t[0], xy, zx,
		xy, t[1], yz,
		zx, yz, t[2],
	})
}

// tensor6From is the inverse of Matrix
func tensor6From(m mat.Symmetric, shear float64) Tensor6 {
	return Tensor6{
		m.At(0, 0), m.At(1, 1), m.At(2, 2),
		m.At(0, 1) / shear, m.At(1, 2) / shear, m.At(2, 0) / shear,
	}
}

func checkVector(name string, s []float64, n int) error {
	if len(s) != n {
		return fmt.Errorf("%w: %s has %d components, want %d", ErrShape, name, len(s), n)
	}
	for i, x := range s {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, name, i, x)
		}
	}
	return nil
}

func vec3From(name string, s []float64) (v Vec3, err error) {
	if err = checkVector(name, s, 3); err != nil {
		return
	}
	copy(v[:], s)
	return
}

func vec2From(name string, s []float64) (v Vec2, err error) {
	if err = checkVector(name, s, 2); err != nil {
		return
	}
	copy(v[:], s)
	return
}

func tensor6FromSlice(name string, s []float64) (t Tensor6, err error) {
	if err = checkVector(name, s, 6); err != nil {
		return
	}
	copy(t[:], s)
	return
}
