package relationship

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclideanMatcherDistance(t *testing.T) {
	m := EuclideanMatcher{}

	assert.Equal(t, 0.0, m.Distance([]float64{0.3, 0.7}, []float64{0.3, 0.7}))
	assert.InDelta(t, 5.0, m.Distance([]float64{0, 0}, []float64{3, 4}), 1e-9)
}

func TestEuclideanMatcherRejectsMismatchedDimensions(t *testing.T) {
	m := EuclideanMatcher{}

	assert.True(t, math.IsInf(m.Distance([]float64{1, 2}, []float64{1}), 1))
	assert.True(t, math.IsInf(m.Distance(nil, []float64{1}), 1))
	assert.True(t, math.IsInf(m.Distance(nil, nil), 1))
}
