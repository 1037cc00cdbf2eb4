package results

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scheme selects how nodal samples are spread to an unmeasured location
type Scheme uint8

const (
	InverseDistance Scheme = iota // Shepard weighting, power 2
	LeastSquares
	Spline
)

func (s Scheme) String() string {
	switch s {
	case InverseDistance:
		return "inverse-distance"
	case LeastSquares:
		return "least-squares"
	case Spline:
		return "spline"
	default:
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}
}

// Sample is a nodal result at a known position
type Sample struct {
	Node     *Node
	Position [3]float64
}

// Interpolate returns a Node at target built from samples. The result has
// ID = NoID unless target coincides with a sample, in which case that
// sample's values and identity are returned.
func Interpolate(samples []Sample, target [3]float64, scheme Scheme) (*Node, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if scheme != InverseDistance {
		return nil, fmt.Errorf("%w: interpolation scheme %s", ErrNotImplemented, scheme)
	}
	const hit = 1e-12
	dist := make([]float64, len(samples))
	for i, s := range samples {
		if s.Node == nil {
			return nil, fmt.Errorf("%w: sample %d", ErrNilSample, i)
		}
		d := floats.Distance(s.Position[:], target[:], 2)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v from the target", ErrNonFinite, i, d)
		}
		if d < hit {
			return &Node{id: s.Node.id, translations: s.Node.translations, rotations: s.Node.rotations}, nil
		}
		dist[i] = d
	}
	// weights relative to the nearest sample stay in (0, 1] so far-off
	// targets do not underflow
	dmin := floats.Min(dist)
	var (
		tr, rot Vec3
		wsum    float64
	)
	for i, s := range samples {
		r := dmin / dist[i]
		w := r * r
		tr = tr.Add(s.Node.translations.Scale(w))
		rot = rot.Add(s.Node.rotations.Scale(w))
		wsum += w
	}
	return samples[0].Node.derive(tr.Div(wsum), rot.Div(wsum)), nil
}

// Extrapolate is declared for callers that need values outside the sampled
// region; no scheme supports it yet
func Extrapolate(samples []Sample, target [3]float64, scheme Scheme) (*Node, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return nil, fmt.Errorf("%w: extrapolation with scheme %s", ErrNotImplemented, scheme)
}

// FitData is declared for evaluating a field fitted through the samples at
// target; no scheme supports it yet
func FitData(samples []Sample, target [3]float64, scheme Scheme) (*Node, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return nil, fmt.Errorf("%w: data fit with scheme %s", ErrNotImplemented, scheme)
}
