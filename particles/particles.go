// Package particles builds initial particle sets for svgd runs.
package particles

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal draws an n-by-d particle set with every coordinate sampled
// independently from N(mean, sigma^2). The same seed always produces
// the same cloud.
func Normal(n, d int, mean, sigma float64, seed uint64) *mat.Dense {
	dist := distuv.Normal{Mu: mean, Sigma: sigma, Src: rand.NewSource(seed)}
	data := make([]float64, n*d)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(n, d, data)
}
