package potential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHimmelblau_GradientVanishesAtMinima(t *testing.T) {
	h := Himmelblau{}
	for _, m := range h.Minima() {
		x := mat.NewDense(1, 2, []float64{m[0], m[1]})
		g, err := h.Gradient(x)
		require.NoError(t, err)
		assert.InDelta(t, 0, g.At(0, 0), 1e-3, "df/dx at (%v, %v)", m[0], m[1])
		assert.InDelta(t, 0, g.At(0, 1), 1e-3, "df/dy at (%v, %v)", m[0], m[1])
		assert.InDelta(t, 0, h.Value(m[0], m[1]), 1e-6)
	}
}

func TestHimmelblau_GradientMatchesFiniteDifference(t *testing.T) {
	h := Himmelblau{Scale: 100}
	pts := [][2]float64{{0, 0}, {1.5, -2.5}, {-3, 4}, {0.1, 0.1}}

	x := mat.NewDense(len(pts), 2, nil)
	for i, p := range pts {
		x.SetRow(i, p[:])
	}
	g, err := h.Gradient(x)
	require.NoError(t, err)

	for i, p := range pts {
		want := numGrad2(func(px, py float64) float64 { return h.Value(px, py) }, p[0], p[1])
		assert.InDelta(t, want[0], g.At(i, 0), 1e-5)
		assert.InDelta(t, want[1], g.At(i, 1), 1e-5)
	}
}

func TestHimmelblau_ScaleDividesGradient(t *testing.T) {
	x := mat.NewDense(1, 2, []float64{2, -3})
	flat, err := Himmelblau{Scale: 100}.Gradient(x)
	require.NoError(t, err)
	steep, err := Himmelblau{}.Gradient(x)
	require.NoError(t, err)
	assert.Equal(t, steep.At(0, 0)/100, flat.At(0, 0))
	assert.Equal(t, steep.At(0, 1)/100, flat.At(0, 1))
}

func TestHimmelblau_RejectsWrongDims(t *testing.T) {
	_, err := Himmelblau{}.Gradient(mat.NewDense(3, 4, nil))
	assert.ErrorContains(t, err, "plane")
}

func TestQuadraticBowl_DefaultIsIdentityGradient(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{1, -2, 3, 0.5, 0, -0.5})
	g, err := QuadraticBowl{}.Gradient(x)
	require.NoError(t, err)
	assert.True(t, mat.Equal(x, g))
}

func TestQuadraticBowl_CenterAndScale(t *testing.T) {
	q := QuadraticBowl{Center: []float64{1, -1}, Scale: 2}
	x := mat.NewDense(1, 2, []float64{3, 3})
	g, err := q.Gradient(x)
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.At(0, 0)) // (3-1)/2
	assert.Equal(t, 2.0, g.At(0, 1)) // (3+1)/2

	assert.Equal(t, 5.0, q.Value([]float64{3, 3})) // (4+16)/(2*2)
}

func TestQuadraticBowl_CenterDimsMismatch(t *testing.T) {
	q := QuadraticBowl{Center: []float64{1, 2, 3}}
	_, err := q.Gradient(mat.NewDense(2, 2, nil))
	assert.Error(t, err)
}

func TestRosenbrock_GradientVanishesAtMinimum(t *testing.T) {
	r := Rosenbrock{}
	x := mat.NewDense(1, 2, []float64{1, 1})
	g, err := r.Gradient(x)
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.At(0, 0))
	assert.Equal(t, 0.0, g.At(0, 1))
	assert.Equal(t, 0.0, r.Value(1, 1))
}

func TestRosenbrock_GradientMatchesFiniteDifference(t *testing.T) {
	r := Rosenbrock{}
	pts := [][2]float64{{0.5, 1.2}, {-1, 2}, {0, 0}}

	x := mat.NewDense(len(pts), 2, nil)
	for i, p := range pts {
		x.SetRow(i, p[:])
	}
	g, err := r.Gradient(x)
	require.NoError(t, err)

	for i, p := range pts {
		want := numGrad2(r.Value, p[0], p[1])
		assert.InDelta(t, want[0], g.At(i, 0), 1e-4)
		assert.InDelta(t, want[1], g.At(i, 1), 1e-4)
	}
}

func TestRosenbrock_RejectsWrongDims(t *testing.T) {
	_, err := Rosenbrock{}.Gradient(mat.NewDense(2, 1, nil))
	assert.Error(t, err)
}

// numGrad2 is a central-difference gradient on the plane.
func numGrad2(f func(x, y float64) float64, x, y float64) [2]float64 {
	const eps = 1e-6
	return [2]float64{
		(f(x+eps, y) - f(x-eps, y)) / (2 * eps),
		(f(x, y+eps) - f(x, y-eps)) / (2 * eps),
	}
}
