package potential

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Rosenbrock is the banana-valley benchmark
//
//	f(x, y) = (1 - x)^2 + 100 * (y - x^2)^2
//
// with its single minimum at (1, 1). The long curved valley makes it a
// harder transport problem than the bowl: the gradient along the valley
// floor is tiny compared to the walls.
type Rosenbrock struct{}

// Value evaluates the potential at a single point.
func (Rosenbrock) Value(x, y float64) float64 {
	a := 1 - x
	b := y - x*x
	return a*a + 100*b*b
}

// Gradient evaluates the potential gradient at every particle. The
// particle set must be two-dimensional.
func (Rosenbrock) Gradient(x *mat.Dense) (*mat.Dense, error) {
	n, d := x.Dims()
	if d != 2 {
		return nil, fmt.Errorf("potential: rosenbrock is defined on the plane, got %d dims", d)
	}
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		px, py := row[0], row[1]
		b := py - px*px
		out.Set(i, 0, -2*(1-px)-400*px*b)
		out.Set(i, 1, 200*b)
	}
	return out, nil
}
