package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussLegendre returns the n point Gauss-Legendre nodes (ascending) and
// weights on [-1, 1]. The nodes are the eigenvalues of the symmetric
// tridiagonal Jacobi matrix of the Legendre recurrence; each weight is
// 2·v₀² for the first component v₀ of the matching unit eigenvector.
// The rule is exact for polynomials up to degree 2n-1.
func GaussLegendre(n int) (x, w []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("quadrature needs at least one point, got %d", n)
	}
	if n == 1 {
		return []float64{0}, []float64{2}, nil
	}

	JJ := mat.NewSymDense(n, nil)
	for i := 1; i < n; i++ {
		k := float64(i)
		JJ.SetSym(i-1, i, k/math.Sqrt(4*k*k-1))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		return nil, nil, errors.New("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	var V mat.Dense
	eig.VectorsTo(&V)
	w = make([]float64, n)
	for j := range w {
		v := V.At(0, j)
		w[j] = 2 * v * v
	}
	// the middle node of an odd rule is exactly zero
	if n%2 == 1 {
		x[n/2] = 0
	}
	return x, w, nil
}

// Integrate applies the n point Gauss-Legendre rule to f on [a, b]
func Integrate(f func(float64) float64, a, b float64, n int) (float64, error) {
	x, w, err := GaussLegendre(n)
	if err != nil {
		return 0, err
	}
	half, mid := 0.5*(b-a), 0.5*(a+b)
	var sum float64
	for i := range x {
		sum += w[i] * f(mid+half*x[i])
	}
	return half * sum, nil
}
