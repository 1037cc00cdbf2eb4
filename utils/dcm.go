package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DCM is a 3×3 direction cosine matrix mapping vector components from a
// result's native coordinate system into a target system: v' = R·v.
// Row i holds the target axis i expressed in native coordinates.
//
// DCM implements mat.Matrix so it can be handed straight to gonum routines.
// The zero value is not a rotation; build one with Identity, RotationX/Y/Z,
// NewDCM, DCMFromMatrix or DCMFromAxes.
type DCM struct {
	r [9]float64 // row-major
}

var _ mat.Matrix = DCM{}

// Identity returns the DCM of a frame coincident with the native frame
func Identity() DCM {
	return DCM{r: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewDCM builds a DCM from its rows. Orthonormality is not checked.
func NewDCM(rows [3][3]float64) DCM {
	var d DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.r[3*i+j] = rows[i][j]
		}
	}
	return d
}

// DCMFromMatrix copies a 3×3 gonum matrix into a DCM
func DCMFromMatrix(m mat.Matrix) (DCM, error) {
	rows, cols := m.Dims()
	if rows != 3 || cols != 3 {
		return DCM{}, fmt.Errorf("direction cosine matrix must be 3x3, got %dx%d", rows, cols)
	}
	var d DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.r[3*i+j] = m.At(i, j)
		}
	}
	return d, nil
}

// DCMFromAxes builds the DCM of a target frame from its three axes expressed
// in native coordinates. Axes are normalized; they must be mutually
// orthogonal within orthoTol.
func DCMFromAxes(x, y, z [3]float64) (DCM, error) {
	const orthoTol = 1e-9
	axes := [3][]float64{x[:], y[:], z[:]}
	var d DCM
	for i, ax := range axes {
		mag := floats.Norm(ax, 2)
		if mag < 1e-14 {
			return DCM{}, fmt.Errorf("zero length axis %d: %v", i, ax)
		}
		for j := 0; j < 3; j++ {
			d.r[3*i+j] = ax[j] / mag
		}
	}
	if !d.IsOrthonormal(orthoTol) {
		return DCM{}, fmt.Errorf("axes are not mutually orthogonal: x=%v y=%v z=%v", x, y, z)
	}
	return d, nil
}

// RotationX returns the counter-clockwise rotation by angle (radians) about x
func RotationX(angle float64) DCM {
	s, c := math.Sincos(angle)
	return NewDCM([3][3]float64{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	})
}

// RotationY returns the counter-clockwise rotation by angle (radians) about y
func RotationY(angle float64) DCM {
	s, c := math.Sincos(angle)
	return NewDCM([3][3]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	})
}

// RotationZ returns the counter-clockwise rotation by angle (radians) about z
func RotationZ(angle float64) DCM {
	s, c := math.Sincos(angle)
	return NewDCM([3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})
}

// Dims returns 3, 3
func (d DCM) Dims() (r, c int) { return 3, 3 }

// At returns R[i][j]
func (d DCM) At(i, j int) float64 {
	if uint(i) >= 3 || uint(j) >= 3 {
		panic(mat.ErrIndexOutOfRange)
	}
	return d.r[3*i+j]
}

// T returns the implicit transpose
func (d DCM) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// Transpose returns Rᵀ, which for an orthonormal R is the inverse rotation
func (d DCM) Transpose() DCM {
	var t DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.r[3*j+i] = d.r[3*i+j]
		}
	}
	return t
}

// Mul returns R·O, i.e. O applied first, then R
func (d DCM) Mul(o DCM) DCM {
	var p mat.Dense
	p.Mul(d, o)
	out, _ := DCMFromMatrix(&p)
	return out
}

// IsOrthonormal reports whether RᵀR = I within tol
func (d DCM) IsOrthonormal(tol float64) bool {
	var rtr mat.Dense
	rtr.Mul(d.T(), d)
	return mat.EqualApprox(&rtr, Identity(), tol)
}

// Apply returns R·v
func (d DCM) Apply(v [3]float64) (out [3]float64) {
	for i := 0; i < 3; i++ {
		out[i] = d.r[3*i]*v[0] + d.r[3*i+1]*v[1] + d.r[3*i+2]*v[2]
	}
	return
}

// TransformTensor returns R·T·Rᵀ for a second-order tensor T.
// The product is symmetrized so round-off never yields an asymmetric result.
func (d DCM) TransformTensor(t mat.Symmetric) *mat.SymDense {
	var rt mat.Dense
	rt.Product(d, t, d.T())
	out := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			out.SetSym(i, j, 0.5*(rt.At(i, j)+rt.At(j, i)))
		}
	}
	return out
}

// String formats the matrix one row per line
func (d DCM) String() string {
	return fmt.Sprintf("[%g %g %g]\n[%g %g %g]\n[%g %g %g]",
		d.r[0], d.r[1], d.r[2], d.r[3], d.r[4], d.r[5], d.r[6], d.r[7], d.r[8])
}
