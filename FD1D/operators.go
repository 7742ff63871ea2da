package FD1D

import (
	"fmt"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/utils"
)

// Difference1D carries the finite difference operators for a uniform 1D
// grid of NX points with spacing DX. The stencils follow the scheme used
// by the flow solver: first derivative is second order central in the
// interior with first order one sided rows at the walls, second derivative
// is central in the interior with the second order one sided four point
// rows at the walls. Operators are assembled once as DOK and applied as
// read only CSR.
type Difference1D struct {
	NX int
	DX float64
	D1 utils.CSR
	D2 utils.CSR
}

func NewDifference1D(nx int, dx float64) (dfd *Difference1D) {
	if nx < 4 {
		err := fmt.Errorf("grid of %d points is too short for the boundary stencils, need at least 4", nx)
		panic(err)
	}
	if dx <= 0 {
		err := fmt.Errorf("non-positive grid spacing %v", dx)
		panic(err)
	}
	var (
		d1  = utils.NewDOK(nx, nx)
		d2  = utils.NewDOK(nx, nx)
		dx2 = dx * dx
	)
	d1.Set(0, 0, -1/dx).Set(0, 1, 1/dx)
	for i := 1; i < nx-1; i++ {
		d1.Set(i, i-1, -0.5/dx).Set(i, i+1, 0.5/dx)
	}
	d1.Set(nx-1, nx-2, -1/dx).Set(nx-1, nx-1, 1/dx)

	d2.Set(0, 0, 2/dx2).Set(0, 1, -5/dx2).Set(0, 2, 4/dx2).Set(0, 3, -1/dx2)
	for i := 1; i < nx-1; i++ {
		d2.Set(i, i-1, 1/dx2).Set(i, i, -2/dx2).Set(i, i+1, 1/dx2)
	}
	d2.Set(nx-1, nx-1, 2/dx2).Set(nx-1, nx-2, -5/dx2).Set(nx-1, nx-3, 4/dx2).Set(nx-1, nx-4, -1/dx2)

	dfd = &Difference1D{
		NX: nx,
		DX: dx,
		D1: d1.ToCSR(),
		D2: d2.ToCSR(),
	}
	dfd.D1.SetReadOnly("D1")
	dfd.D2.SetReadOnly("D2")
	return
}

// Grad returns the first spatial derivative of u.
func (dfd *Difference1D) Grad(u []float64) []float64 {
	return dfd.D1.MulVec(u)
}

// Laplace returns the second spatial derivative of u.
func (dfd *Difference1D) Laplace(u []float64) []float64 {
	return dfd.D2.MulVec(u)
}
