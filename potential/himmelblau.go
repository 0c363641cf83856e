// potential/himmelblau.go

// Package potential provides ready-made potentials for svgd runs. Each
// potential exposes the gradient of the function being minimized; the
// engine applies the sign flip that turns it into attraction.
package potential

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Himmelblau is the classic four-minima benchmark on the plane,
//
//	f(x, y) = ((x^2 + y - 11)^2 + (x + y^2 - 7)^2) / Scale.
//
// Scale flattens the surface, which keeps particles from being thrown
// out of the frame by the steep outer walls; the usual demo runs
// Scale = 100. A zero Scale means 1.
type Himmelblau struct {
	Scale float64
}

func (h Himmelblau) scale() float64 {
	if h.Scale == 0 {
		return 1
	}
	return h.Scale
}

// Value evaluates the potential at a single point.
func (h Himmelblau) Value(x, y float64) float64 {
	a := x*x + y - 11
	b := x + y*y - 7
	return (a*a + b*b) / h.scale()
}

// Gradient evaluates the potential gradient at every particle. The
// particle set must be two-dimensional.
func (h Himmelblau) Gradient(x *mat.Dense) (*mat.Dense, error) {
	n, d := x.Dims()
	if d != 2 {
		return nil, fmt.Errorf("potential: himmelblau is defined on the plane, got %d dims", d)
	}
	s := h.scale()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		px, py := row[0], row[1]
		a := px*px + py - 11
		b := px + py*py - 7
		out.Set(i, 0, (4*px*a+2*b)/s)
		out.Set(i, 1, (2*a+4*py*b)/s)
	}
	return out, nil
}

// Minima returns the four global minima. All have f = 0.
func (Himmelblau) Minima() [][2]float64 {
	return [][2]float64{
		{3.0, 2.0},
		{-2.805118, 3.131312},
		{-3.779310, -3.283186},
		{3.584428, -1.848126},
	}
}
