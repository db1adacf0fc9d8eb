package relationship

import "math"

// EuclideanMatcher computes the L2 distance between two face signatures,
// matching what the upstream embedding extractor is calibrated against.
type EuclideanMatcher struct{}

func (EuclideanMatcher) Distance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
