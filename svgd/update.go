// svgd/update.go

// Package svgd implements Stein Variational Gradient Descent. A set of
// particles is moved jointly by the gradient of a potential while an
// RBF kernel term keeps the particles apart, so the final cloud settles
// over all the low-potential regions instead of collapsing into one.
package svgd

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// GradientFunc evaluates the gradient of the potential at every
// particle. Row i of the result is the gradient of the function being
// minimized at particle i, so the output shape must equal the input
// shape.
type GradientFunc func(x *mat.Dense) (*mat.Dense, error)

// Update runs cfg.NIter iterations of SVGD on x and returns x. The
// particle set is moved in place; nothing else may read or write it
// while the run is going. There is no early stopping, the budget is
// always spent in full.
func Update(x *mat.Dense, grad GradientFunc, cfg Config) (*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, fmt.Errorf("svgd: initial particle set is nil")
	}
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return nil, fmt.Errorf("svgd: initial particle set is empty, got %dx%d", n, d)
	}
	if grad == nil {
		return nil, fmt.Errorf("svgd: gradient function is nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("starting svgd run",
		zap.Int("particles", n),
		zap.Int("dims", d),
		zap.Int("iterations", cfg.NIter),
		zap.Float64("stepsize", cfg.StepSize),
		zap.Float64("alpha", cfg.Alpha),
		zap.Float64("fudge_factor", cfg.FudgeFactor),
		zap.Float64("historical_grad", cfg.HistoricalGrad))

	opt := NewAdaGrad(n, d, cfg.StepSize, cfg.Alpha, cfg.FudgeFactor, cfg.HistoricalGrad)

	for t := 0; t < cfg.NIter; t++ {
		g, err := grad(x)
		if err != nil {
			return nil, fmt.Errorf("svgd: gradient at iteration %d: %w", t, err)
		}
		if g == nil {
			return nil, fmt.Errorf("svgd: gradient function returned nil at iteration %d", t)
		}
		if gr, gc := g.Dims(); gr != n || gc != d {
			return nil, &ShapeError{Op: "gradient output", WantRows: n, WantCols: d, GotRows: gr, GotCols: gc}
		}

		kxy, dxkxy := RBFKernel(x, 0)
		phi := Phi(g, kxy, dxkxy)
		opt.Step(x, phi)

		if cfg.LogEvery > 0 && t%cfg.LogEvery == 0 {
			logger.Debug("svgd iteration",
				zap.Int("iter", t),
				zap.Float64("phi_norm", mat.Norm(phi, 2)),
				zap.Float64("bandwidth", MedianBandwidth(x)))
		}
		if cfg.Observer != nil {
			cfg.Observer(t, x)
		}
	}
	return x, nil
}
