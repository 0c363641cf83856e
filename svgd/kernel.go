// svgd/kernel.go
package svgd

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// minBandwidth is the floor for the kernel bandwidth. A single particle
// or a fully collapsed particle set yields a zero median distance, and
// the kernel divides by h.
const minBandwidth = 1e-12

// RBFKernel evaluates the Gaussian kernel
//
//	K[i,j] = exp(-|x_i - x_j|^2 / h)
//
// over the particle set x, along with the summed kernel gradient
//
//	dxkxy[i] = sum_j grad_{x_j} K[j,i] = (2/h) * (x_i * sumK_i - (K*x)_i)
//
// which is the repulsive term consumed by Phi. A non-positive h selects
// the median heuristic, h = median(|x_i - x_j|^2) / ln(n).
func RBFKernel(x *mat.Dense, h float64) (kxy, dxkxy *mat.Dense) {
	n, d := x.Dims()
	dist := pairwiseSqDist(x)
	if h <= 0 {
		h = bandwidth(dist, n)
	}
	hInv := 1 / h

	kxy = mat.NewDense(n, n, nil)
	kxy.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(-v * hInv)
	}, dist)

	// dxkxy starts as K*x, then each row i becomes (2/h)*(x_i*sumK_i - (K*x)_i).
	dxkxy = mat.NewDense(n, d, nil)
	dxkxy.Mul(kxy, x)
	for i := 0; i < n; i++ {
		sumk := floats.Sum(kxy.RawRowView(i))
		xi := x.RawRowView(i)
		row := dxkxy.RawRowView(i)
		for c := 0; c < d; c++ {
			row[c] = (xi[c]*sumk - row[c]) * 2 * hInv
		}
	}
	return kxy, dxkxy
}

// MedianBandwidth returns the bandwidth the median heuristic would pick
// for the particle set x, clamped to minBandwidth.
func MedianBandwidth(x *mat.Dense) float64 {
	n, _ := x.Dims()
	return bandwidth(pairwiseSqDist(x), n)
}

func bandwidth(dist *mat.Dense, n int) float64 {
	if n < 2 {
		return minBandwidth
	}
	h := medianAll(dist) / math.Log(float64(n))
	if h < minBandwidth {
		h = minBandwidth
	}
	return h
}

// medianAll takes the median over every entry of the distance matrix,
// diagonal zeros included, averaging the two middle values for an even
// count. dist is freshly built by pairwiseSqDist, so its backing slice
// is contiguous.
func medianAll(dist *mat.Dense) float64 {
	raw := dist.RawMatrix().Data
	buf := make([]float64, len(raw))
	copy(buf, raw)
	sort.Float64s(buf)
	m := len(buf) / 2
	if len(buf)%2 == 0 {
		return (buf[m-1] + buf[m]) / 2
	}
	return buf[m]
}

// pairwiseSqDist builds the squared Euclidean distance matrix through
// the Gram identity D[i,j] = S[i,i] + S[j,j] - 2*S[i,j] with S = x*x^T,
// so the heavy lifting is a single dense matmul. Rounding can push tiny
// distances below zero; those are clamped.
func pairwiseSqDist(x *mat.Dense) *mat.Dense {
	n, _ := x.Dims()
	var gram mat.Dense
	gram.Mul(x, x.T())

	dist := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		gii := gram.At(i, i)
		for j := i + 1; j < n; j++ {
			v := gii + gram.At(j, j) - 2*gram.At(i, j)
			if v < 0 {
				v = 0
			}
			dist.Set(i, j, v)
			dist.Set(j, i, v)
		}
	}
	return dist
}
