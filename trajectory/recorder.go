// trajectory/recorder.go

// Package trajectory records particle snapshots from an svgd run so the
// run can be replayed, plotted or animated by external tooling.
package trajectory

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/larsgeb/Stein-Variational-Gradient-Descent/svgd"
)

// Frame is one recorded snapshot.
type Frame struct {
	Iter      int         `json:"iter"`
	Particles [][]float64 `json:"particles"`
}

// Recorder keeps every Stride-th snapshot it observes, plus always the
// most recent one, so the end state of a run is never lost to the
// stride. Snapshots are deep copies; they stay valid after the run
// moves on.
type Recorder struct {
	RunID  string
	Stride int

	frames []Frame
	last   Frame
	n, d   int
}

// NewRecorder returns a Recorder with a fresh run ID that keeps one
// frame per stride iterations. A stride below 1 keeps every frame.
func NewRecorder(stride int) *Recorder {
	if stride < 1 {
		stride = 1
	}
	return &Recorder{RunID: uuid.NewString(), Stride: stride}
}

// Observe records a snapshot. It satisfies the svgd.Observer contract.
func (r *Recorder) Observe(iter int, x mat.Matrix) {
	r.n, r.d = x.Dims()
	r.last = snapshot(iter, x)
	if iter%r.Stride == 0 {
		r.frames = append(r.frames, r.last)
	}
}

// Frames returns the recorded snapshots in iteration order. The most
// recent snapshot is included even when it fell off the stride.
func (r *Recorder) Frames() []Frame {
	if len(r.frames) == 0 {
		if r.last.Particles == nil {
			return nil
		}
		return []Frame{r.last}
	}
	if r.frames[len(r.frames)-1].Iter == r.last.Iter {
		return r.frames
	}
	out := make([]Frame, 0, len(r.frames)+1)
	out = append(out, r.frames...)
	return append(out, r.last)
}

// Len returns the number of frames Frames would return.
func (r *Recorder) Len() int {
	return len(r.Frames())
}

func snapshot(iter int, x mat.Matrix) Frame {
	n, _ := x.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, x)
	}
	return Frame{Iter: iter, Particles: rows}
}

// Chain fans one observer callback out to several. Nil entries are
// skipped.
func Chain(obs ...svgd.Observer) svgd.Observer {
	return func(iter int, x mat.Matrix) {
		for _, o := range obs {
			if o != nil {
				o(iter, x)
			}
		}
	}
}
