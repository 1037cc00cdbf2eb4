package results

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/strengl/utils"
)

func TestElement0DSuperposition(t *testing.T) {
	a, err := NewElement0D(Identity{ID: 1}, []float64{10, 0, 0}, []float64{0, 0, 5})
	require.NoError(t, err)
	b, err := NewElement0D(Identity{ID: 2}, []float64{-4, 0, 0}, []float64{0, 0, -1})
	require.NoError(t, err)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, Vec3{6, 0, 0}, sum.Forces())
	assert.Equal(t, Vec3{0, 0, 4}, sum.Moments())
	assert.Equal(t, NoID, sum.Identity().ID)
}

func TestElement0DProjectionsFollowMutation(t *testing.T) {
	e, err := NewElement0D(Identity{ID: 3}, []float64{1, -2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)

	e.ScaleInPlace(2)
	f, m := e.Forces(), e.Moments()
	assert.Equal(t, f[0], e.Px())
	assert.Equal(t, []float64{2, -4, 6}, []float64{e.Px(), e.Py(), e.Pz()})
	assert.Equal(t, []float64{m[0], m[1], m[2]}, []float64{e.Mx(), e.My(), e.Mz()})

	require.NoError(t, e.DivInPlace(4))
	assert.Equal(t, 0.5, e.Px())
	assert.Equal(t, 3.0, e.Mz())

	e.FlipSigns()
	assert.Equal(t, Vec3{-0.5, 1, -1.5}, e.Forces())
	assert.Equal(t, Vec3{-2, 2.5, -3}, e.Moments())
	assert.Equal(t, -0.5, e.Px())
	assert.Equal(t, ID(3), e.Identity().ID)
}

func TestElement1DMaxMoment(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		wantEnd  End
		wantVec3 Vec3
	}{
		{"end A larger", []float64{1, 3, 4}, []float64{1, 0, 0}, EndA, Vec3{1, 3, 4}},
		{"end B larger", []float64{2, 1, 1}, []float64{2, -3, 0}, EndB, Vec3{2, -3, 0}},
		{"tie goes to A", []float64{5, 3, 4}, []float64{5, -4, 3}, EndA, Vec3{5, 3, 4}},
		{"torsion ignored", []float64{100, 1, 0}, []float64{0, 0, 2}, EndB, Vec3{0, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewElement1D(Identity{ID: 1}, []float64{0, 0, 0}, tt.a, tt.b)
			require.NoError(t, err)
			v, end := e.MaxMoment()
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantVec3, v)
		})
	}
}

func TestElement1DAccessors(t *testing.T) {
	e, err := NewElement1D(Identity{ID: 4}, []float64{1, 2, 3}, []float64{7, 8, 9}, []float64{7, 10, 11})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 7, 8, 9, 10, 11},
		[]float64{e.Px(), e.Vy(), e.Vz(), e.T(), e.Mya(), e.Mza(), e.Myb(), e.Mzb()})

	e.ScaleInPlace(-1)
	assert.Equal(t, -7.0, e.T())
	assert.Equal(t, -11.0, e.Mzb())
	assert.Equal(t, "A", EndA.String())
	assert.Equal(t, "B", EndB.String())
}

func TestElement1DRotateTreatsEndsAlike(t *testing.T) {
	e, err := NewElement1D(Identity{ID: 8}, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{4, -5, 1})
	require.NoError(t, err)
	R := utils.RotationY(0.7).Mul(utils.RotationZ(-0.2))

	r := Rotate(e, R)
	assert.Equal(t, e.Identity(), r.Identity())
	a, b := r.MomentsA(), r.MomentsB()
	wantA, wantB := e.MomentsA().Rotate(R), e.MomentsB().Rotate(R)
	assert.InDeltaSlice(t, wantA.Slice(), a.Slice(), 1e-12)
	assert.InDeltaSlice(t, wantB.Slice(), b.Slice(), 1e-12)
	assert.InDelta(t, e.MomentsA().Norm(), a.Norm(), 1e-12)
}

func TestNodeRotateQuarterTurn(t *testing.T) {
	n, err := NewNode(Identity{ID: 100}, []float64{1, 0, 0}, []float64{0, 0, 0})
	require.NoError(t, err)
	r := Rotate(n, utils.RotationZ(math.Pi/2))
	assert.InDeltaSlice(t, []float64{0, 1, 0}, r.Translations().Slice(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, r.Rotations().Slice(), 1e-12)
	assert.Equal(t, ID(100), r.Identity().ID)
}

func TestRotationIsIsometry(t *testing.T) {
	frames := []utils.DCM{
		utils.RotationX(0.4),
		utils.RotationY(-2.1),
		utils.RotationZ(3.0).Mul(utils.RotationX(1.3)),
	}
	n, err := NewNode(Identity{ID: 1}, []float64{1.5, -2, 0.25}, []float64{0.01, 0.02, -0.03})
	require.NoError(t, err)
	e0, err := NewElement0D(Identity{ID: 2}, []float64{-3, 4, 12}, []float64{1, 1, 1})
	require.NoError(t, err)
	e1, err := NewElement1D(Identity{ID: 3}, []float64{2, 0, 1}, []float64{1, 5, 9}, []float64{1, -2, 0})
	require.NoError(t, err)

	for i, R := range frames {
		t.Run(fmt.Sprintf("frame=%d", i), func(t *testing.T) {
			rn := Rotate(n, R)
			assert.InDelta(t, n.Translations().Norm(), rn.Translations().Norm(), 1e-12)
			assert.InDelta(t, n.Rotations().Norm(), rn.Rotations().Norm(), 1e-12)
			r0 := Rotate(e0, R)
			assert.InDelta(t, 13.0, r0.Forces().Norm(), 1e-12)
			assert.InDelta(t, e0.Moments().Norm(), r0.Moments().Norm(), 1e-12)
			r1 := Rotate(e1, R)
			assert.InDelta(t, e1.Forces().Norm(), r1.Forces().Norm(), 1e-12)

			back := Rotate(r1, R.Transpose())
			assert.InDeltaSlice(t, values(e1), values(back), 1e-12)
		})
	}
}

func TestRotateByIdentity(t *testing.T) {
	e, err := NewElement0D(Identity{Subcase: 2, ID: 5, Source: "x"}, []float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	r := Rotate(e, utils.Identity())
	assert.Equal(t, values(e), values(r))
	assert.Equal(t, e.Identity(), r.Identity())
	assert.NotSame(t, e, r)
}
