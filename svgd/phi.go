package svgd

import "gonum.org/v1/gonum/mat"

// Phi computes the update direction for every particle,
//
//	phi(x_i) = (1/n) * sum_j [ K[j,i] * (-grad_j) + grad_{x_j} K[j,i] ],
//
// where grad holds the potential gradient at each particle and kxy,
// dxkxy come from RBFKernel. The first term drags particles toward low
// potential along a kernel-weighted average of their neighbours'
// gradients, the second pushes overlapping particles apart. With a
// single particle the kernel term vanishes and phi reduces to -grad.
func Phi(grad, kxy, dxkxy *mat.Dense) *mat.Dense {
	n, _ := grad.Dims()
	var phi mat.Dense
	phi.Mul(kxy, grad) // K is symmetric, so K*grad sums K[j,i]*grad_j over j
	phi.Scale(-1, &phi)
	phi.Add(&phi, dxkxy)
	phi.Scale(1/float64(n), &phi)
	return &phi
}
