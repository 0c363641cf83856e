package trajectory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/larsgeb/Stein-Variational-Gradient-Descent/potential"
	"github.com/larsgeb/Stein-Variational-Gradient-Descent/svgd"
)

func TestNewRecorder_Defaults(t *testing.T) {
	r := NewRecorder(0)
	assert.Equal(t, 1, r.Stride, "stride below 1 keeps every frame")
	assert.NotEmpty(t, r.RunID)
	assert.NotEqual(t, r.RunID, NewRecorder(1).RunID)
}

func TestRecorder_StrideKeepsFinalFrame(t *testing.T) {
	r := NewRecorder(4)
	x := mat.NewDense(1, 1, []float64{0})
	for iter := 0; iter < 10; iter++ {
		x.Set(0, 0, float64(iter))
		r.Observe(iter, x)
	}

	frames := r.Frames()
	require.Equal(t, 4, len(frames))
	iters := []int{frames[0].Iter, frames[1].Iter, frames[2].Iter, frames[3].Iter}
	assert.Equal(t, []int{0, 4, 8, 9}, iters, "final frame is kept even off the stride")
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 9.0, frames[3].Particles[0][0])
}

func TestRecorder_SnapshotsAreDeepCopies(t *testing.T) {
	r := NewRecorder(1)
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	r.Observe(0, x)
	x.Set(0, 0, -99)

	frames := r.Frames()
	require.Equal(t, 1, len(frames))
	assert.Equal(t, 1.0, frames[0].Particles[0][0], "recorded frames must not alias the live buffer")
}

func TestRecorder_EmptyHasNoFrames(t *testing.T) {
	r := NewRecorder(3)
	assert.Nil(t, r.Frames())
	assert.Equal(t, 0, r.Len())
}

func TestChain_FansOutAndSkipsNil(t *testing.T) {
	var first, second []int
	obs := Chain(
		func(iter int, _ mat.Matrix) { first = append(first, iter) },
		nil,
		func(iter int, _ mat.Matrix) { second = append(second, iter) },
	)
	x := mat.NewDense(1, 1, []float64{0})
	obs(0, x)
	obs(1, x)

	assert.Equal(t, []int{0, 1}, first)
	assert.Equal(t, []int{0, 1}, second)
}

func TestSaveLoadJSON_RoundTrip(t *testing.T) {
	rec := NewRecorder(2)
	cfg := svgd.DefaultConfig()
	cfg.NIter = 6
	cfg.Observer = rec.Observe

	x := mat.NewDense(2, 2, []float64{1, 1, -1, -1})
	_, err := svgd.Update(x, potential.QuadraticBowl{}.Gradient, cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.SaveJSON(path))

	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr), "temp file must be renamed away")

	f, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, f.RunID)
	assert.Equal(t, 2, f.N)
	assert.Equal(t, 2, f.D)
	assert.Equal(t, 2, f.Stride)

	// Iterations 0..5 at stride 2, plus the final frame.
	require.Equal(t, 4, len(f.Frames))
	assert.Equal(t, 0, f.Frames[0].Iter)
	assert.Equal(t, 5, f.Frames[3].Iter)
	assert.Equal(t, rec.Frames()[0].Particles, f.Frames[0].Particles)
}

func TestLoadJSON_MissingAndMalformed(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadJSON(bad)
	assert.ErrorContains(t, err, "decode")
}
