package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRotationsAreOrthonormal(t *testing.T) {
	builders := map[string]func(float64) DCM{
		"X": RotationX,
		"Y": RotationY,
		"Z": RotationZ,
	}
	for name, build := range builders {
		for _, deg := range []float64{0, 17, 90, 135, -60, 270} {
			t.Run(fmt.Sprintf("%s/%g", name, deg), func(t *testing.T) {
				R := build(deg * math.Pi / 180)
				assert.True(t, R.IsOrthonormal(1e-12))
				assert.InDelta(t, 1.0, mat.Det(R), 1e-12)
			})
		}
	}
}

func TestRotationZQuarterTurn(t *testing.T) {
	R := RotationZ(math.Pi / 2)
	got := R.Apply([3]float64{1, 0, 0})
	assert.InDeltaSlice(t, []float64{0, 1, 0}, got[:], 1e-12)
}

func TestTransposeInvertsRotation(t *testing.T) {
	R := RotationX(0.3).Mul(RotationY(-1.1)).Mul(RotationZ(2.4))
	require.True(t, R.IsOrthonormal(1e-12))

	v := [3]float64{1.5, -2, 7}
	back := R.Transpose().Apply(R.Apply(v))
	assert.InDeltaSlice(t, v[:], back[:], 1e-12)

	var p mat.Dense
	p.Mul(R, R.T())
	assert.True(t, mat.EqualApprox(&p, Identity(), 1e-12))
}

func TestMulComposesRightToLeft(t *testing.T) {
	// rotate about z then about x
	v := [3]float64{1, 0, 0}
	R := RotationX(math.Pi / 2).Mul(RotationZ(math.Pi / 2))
	got := R.Apply(v)
	assert.InDeltaSlice(t, []float64{0, 0, 1}, got[:], 1e-12)
}

func TestDCMFromAxes(t *testing.T) {
	t.Run("scaled axes are normalized", func(t *testing.T) {
		R, err := DCMFromAxes([3]float64{0, 2, 0}, [3]float64{-3, 0, 0}, [3]float64{0, 0, 0.5})
		require.NoError(t, err)
		assert.True(t, R.IsOrthonormal(1e-12))
		got := R.Apply([3]float64{1, 0, 0})
		// native x lies along the target -y axis
		assert.InDeltaSlice(t, []float64{0, -1, 0}, got[:], 1e-12)
	})
	t.Run("zero axis", func(t *testing.T) {
		_, err := DCMFromAxes([3]float64{1, 0, 0}, [3]float64{}, [3]float64{0, 0, 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zero length axis 1")
	})
	t.Run("skew axes", func(t *testing.T) {
		_, err := DCMFromAxes([3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{0, 0, 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not mutually orthogonal")
	})
}

func TestDCMFromMatrix(t *testing.T) {
	_, err := DCMFromMatrix(mat.NewDense(2, 3, nil))
	require.Error(t, err)

	src := mat.NewDense(3, 3, []float64{0, 1, 0, -1, 0, 0, 0, 0, 1})
	R, err := DCMFromMatrix(src)
	require.NoError(t, err)
	assert.True(t, mat.Equal(src, R))
}

// In-plane stress transformation in closed form for a frame rotated by β
func rotatedPlaneStress(beta, sx, sy, sxy float64) (sxp, syp, sxyp float64) {
	si, co := math.Sin(beta), math.Cos(beta)
	ss, cc, cs := si*si, co*co, co*si
	sxp = cc*sx + ss*sy + 2.0*cs*sxy
	syp = ss*sx + cc*sy - 2.0*cs*sxy
	sxyp = -cs*sx + cs*sy + (cc-ss)*sxy
	return
}

func TestTransformTensorMatchesPlaneStress(t *testing.T) {
	sx, sy, sxy := 120.0, -35.0, 42.0
	T := mat.NewSymDense(3, []float64{
		sx, sxy, 0,
		sxy, sy, 0,
		0, 0, 0,
	})
	for _, deg := range []float64{0, 15, 30, 45, 90, 161} {
		t.Run(fmt.Sprintf("beta=%g", deg), func(t *testing.T) {
			beta := deg * math.Pi / 180
			// components in a frame rotated by β are R(-β)·T·R(-β)ᵀ
			Tp := RotationZ(-beta).TransformTensor(T)
			ex, ey, exy := rotatedPlaneStress(beta, sx, sy, sxy)
			assert.InDelta(t, ex, Tp.At(0, 0), 1e-10)
			assert.InDelta(t, ey, Tp.At(1, 1), 1e-10)
			assert.InDelta(t, exy, Tp.At(0, 1), 1e-10)
			assert.InDelta(t, 0.0, Tp.At(2, 2), 1e-12)
			assert.InDelta(t, sx+sy, mat.Trace(Tp), 1e-10)
		})
	}
}
