// svgd/opt_adagrad.go
package svgd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AdaGrad rescales each coordinate of the update direction by the
// inverse square root of a decayed accumulator of squared directions.
// The accumulator is the only state carried between iterations besides
// the particles themselves.
type AdaGrad struct {
	StepSize    float64
	Alpha       float64
	FudgeFactor float64
	Hist        *mat.Dense
}

// NewAdaGrad sizes the accumulator for an n-by-d particle set and seeds
// every entry with historical.
func NewAdaGrad(n, d int, stepSize, alpha, fudge, historical float64) *AdaGrad {
	data := make([]float64, n*d)
	for i := range data {
		data[i] = historical
	}
	return &AdaGrad{
		StepSize:    stepSize,
		Alpha:       alpha,
		FudgeFactor: fudge,
		Hist:        mat.NewDense(n, d, data),
	}
}

// Step folds phi into the accumulator and moves x in place:
//
//	hist = alpha*hist + (1-alpha)*phi^2
//	x   += stepSize * phi / (fudge + sqrt(hist))
//
// The accumulator and fudge factor are strictly positive, so the
// denominator never reaches zero.
func (opt *AdaGrad) Step(x, phi *mat.Dense) {
	n, d := x.Dims()
	for i := 0; i < n; i++ {
		hr := opt.Hist.RawRowView(i)
		pr := phi.RawRowView(i)
		xr := x.RawRowView(i)
		for c := 0; c < d; c++ {
			g := pr[c]
			hr[c] = opt.Alpha*hr[c] + (1-opt.Alpha)*g*g
			xr[c] += opt.StepSize * g / (opt.FudgeFactor + math.Sqrt(hr[c]))
		}
	}
}
