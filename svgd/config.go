// svgd/config.go
package svgd

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Observer receives the iteration index and the particle set right after
// the positions were updated. The matrix is the live buffer owned by the
// run; copy it if you keep it past the callback.
type Observer func(iter int, x mat.Matrix)

// Config holds the tunables of an Update run.
type Config struct {
	NIter          int     // iteration budget, always run in full
	StepSize       float64 // base step size applied to the rescaled direction
	Alpha          float64 // accumulator decay in (0,1), closer to 1 keeps a longer memory
	FudgeFactor    float64 // floor keeping the adaptive denominator away from zero
	HistoricalGrad float64 // initial accumulator value, larger makes early steps smaller

	// Observer, if set, is called once per iteration.
	Observer Observer

	// Logger receives run diagnostics. Nil means no logging. LogEvery
	// emits an iteration entry every LogEvery iterations; zero logs only
	// the run start.
	Logger   *zap.Logger
	LogEvery int
}

// DefaultConfig returns the baseline tunables. They match the usual
// published settings and work unchanged on all bundled potentials.
func DefaultConfig() Config {
	return Config{
		NIter:          1000,
		StepSize:       0.1,
		Alpha:          0.9,
		FudgeFactor:    1e-3,
		HistoricalGrad: 1.0,
	}
}

func (c Config) validate() error {
	if c.NIter < 1 {
		return fmt.Errorf("svgd: NIter must be at least 1, got %d", c.NIter)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("svgd: StepSize must be positive, got %v", c.StepSize)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("svgd: Alpha must be in (0,1), got %v", c.Alpha)
	}
	if c.FudgeFactor <= 0 {
		return fmt.Errorf("svgd: FudgeFactor must be positive, got %v", c.FudgeFactor)
	}
	if c.HistoricalGrad <= 0 {
		return fmt.Errorf("svgd: HistoricalGrad must be positive, got %v", c.HistoricalGrad)
	}
	return nil
}
