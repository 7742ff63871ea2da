package Piston1D

import (
	"fmt"
	"time"

	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/FD1D"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/InputParameters"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/piston_fourier"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/readfiles"
	"github.com/MsMiracle/BUAA-Missiles-and-Rockets-Aerodynamics/utils"
)

// Piston solves the isothermal 1D Euler equations in a closed tube driven
// by a piecewise constant piston body acceleration. The closure is the
// ideal gas isothermal relation pres = KGas*rho with KGas = R*T0/MuStar,
// which removes the energy equation. Time advance is a second order
// Taylor step
//
//	u(t+DT) = u + DT*u_t + (DT^2/2)*u_tt
//
// with the time derivatives expanded analytically from
//
//	rho_t = -vel*rho_x - rho*vel_x
//	vel_t = -vel*vel_x - (KGas/rho)*rho_x - A(t)
//
// and spatial derivatives taken with the FD1D operators.
type Piston struct {
	// Input parameters
	DT, FinalTime  float64
	KGas           float64
	Forcing        piston_fourier.Forcing
	Dfd            *FD1D.Difference1D
	Rho, Vel, Pres []float64
	// Snapshot and logging cadence
	SnapshotInterval float64
	SnapshotStride   int
	OutDir           string
	Compress         bool
	PrintInterval    int
}

func NewPiston(ip *InputParameters.InputParameters1D, outDir string, compress bool) (c *Piston) {
	var (
		nx      = ip.NX
		kGas    = ip.GasConstant * ip.TInit / ip.MolarMass
		rhoInit = ip.PInit * ip.MolarMass / (ip.GasConstant * ip.TInit)
		stride  = ip.SnapshotStride
	)
	if stride == 0 {
		stride = nx / 1000
	}
	if stride < 1 {
		stride = 1
	}
	c = &Piston{
		DT:        ip.DT,
		FinalTime: ip.FinalTime,
		KGas:      kGas,
		Forcing: piston_fourier.Forcing{
			T:        ip.Piston.Period,
			Segments: make([]piston_fourier.Segment, len(ip.Piston.Segments)),
		},
		Dfd:              FD1D.NewDifference1D(nx, ip.DX),
		Rho:              utils.ConstArray(nx, rhoInit),
		Vel:              utils.ConstArray(nx, 0),
		Pres:             utils.ConstArray(nx, ip.PInit),
		SnapshotInterval: ip.SnapshotInterval,
		SnapshotStride:   stride,
		OutDir:           outDir,
		Compress:         compress,
		PrintInterval:    ip.PrintInterval,
	}
	for i, sg := range ip.Piston.Segments {
		c.Forcing.Segments[i] = piston_fourier.Segment{
			Start: sg.Start, End: sg.End, Value: sg.Value,
		}
	}
	if err := c.Forcing.Validate(); err != nil {
		panic(err)
	}
	fmt.Printf("Isothermal Euler Equations in 1 Dimension\nSolving the piston driven tube\n")
	fmt.Printf("NX = %8d, DX = %8.5f, DT = %v, FinalTime = %8.4f, KGas = %8.1f\n\n",
		nx, ip.DX, ip.DT, ip.FinalTime, kGas)
	return
}

// Step advances the state one DT from time t. The three new fields are
// computed from the committed state, then committed together, so the
// pressure used in the right border form is the pre-advance K*rho.
func (c *Piston) Step(t float64) {
	var (
		dfd      = c.Dfd
		nx       = dfd.NX
		dx       = dfd.DX
		kGas     = c.KGas
		dt       = c.DT
		halfDT2  = 0.5 * dt * dt
		acc      = c.Forcing.At(t)
		rhoX     = dfd.Grad(c.Rho)
		velX     = dfd.Grad(c.Vel)
		rhoXX    = dfd.Laplace(c.Rho)
		velXX    = dfd.Laplace(c.Vel)
		newRho   = make([]float64, nx)
		newVel   = make([]float64, nx)
		newPres  = make([]float64, nx)
		rho, vel = c.Rho, c.Vel
	)
	for i := 1; i < nx-1; i++ {
		var (
			r, v     = rho[i], vel[i]
			rx, vx   = rhoX[i], velX[i]
			rxx, vxx = rhoXX[i], velXX[i]
			rhoT     = -v*rx - r*vx
			velT     = -v*vx - kGas/r*rx - acc
			// time derivatives of the spatial gradients
			rhoXT = -vx*rx - v*rxx - rx*vx - r*vxx
			velXT = -utils.POW(vx, 2) - v*vxx + kGas*utils.POW(rx/r, 2) - kGas/r*rxx
			rhoTT = -velT*rx - v*rhoXT - rhoT*vx - r*velXT
			velTT = -velT*vx - v*velXT + kGas/(r*r)*rhoT*rx - kGas/r*rhoXT
		)
		newRho[i] = r + dt*rhoT + halfDT2*rhoTT
		newVel[i] = v + dt*velT + halfDT2*velTT
	}
	// Left wall: no flow through the piston face, density by the
	// continuity equation with a forward difference.
	newVel[0] = 0
	newRho[0] = rho[0] - rho[0]*dt*velX[0]
	// Right border: first order upwind forms, backward differences.
	var (
		i  = nx - 1
		fx = -rho[i] * acc
	)
	newRho[i] = rho[i] + dt*(-rho[i]*velX[i]-vel[i]*rhoX[i])
	newVel[i] = vel[i] + dt*((fx-(c.Pres[i]-c.Pres[i-1])/dx)/rho[i]-vel[i]*velX[i])
	for i := 0; i < nx; i++ {
		newPres[i] = kGas * rho[i]
	}
	c.Rho, c.Vel, c.Pres = newRho, newVel, newPres
}

func (c *Piston) Run() {
	var (
		nx           = c.Dfd.NX
		t            float64
		tstep        int
		maxSteps     = int(c.FinalTime/c.DT) + 1
		nextSnapshot float64
		start        = time.Now()
	)
	for tstep = 0; tstep < maxSteps; tstep++ {
		c.Step(t)
		t += c.DT
		if c.PrintInterval > 0 && tstep%c.PrintInterval == 0 {
			fmt.Printf("t = %10.5f, step = %8d, rho[0] = %10.6f, vel[0] = %10.6f, pres[0] = %12.2f\n",
				t, tstep, c.Rho[0], c.Vel[0], c.Pres[0])
		}
		if t > nextSnapshot {
			nextSnapshot += c.SnapshotInterval
			if c.OutDir != "" {
				filename, err := readfiles.WriteSnapshot(c.OutDir, t, c.SnapshotStride,
					c.Rho, c.Vel, c.Pres, c.Compress)
				if err != nil {
					fmt.Printf("[WARN] %v; continuing without CSV output\n", err)
				} else if c.PrintInterval > 0 {
					fmt.Printf("Saved snapshot at t = %8.4f to %s\n", t, filename)
				}
			}
		}
		if utils.IsNan(c.Rho) || utils.IsNan(c.Vel) {
			fmt.Printf("NaN in the field at t = %10.5f, step %d, stopping\n", t, tstep)
			break
		}
	}
	elapsed := time.Since(start)
	rate := elapsed.Seconds() / (float64(tstep) * float64(nx))
	fmt.Printf("\nDone: %d steps to t = %8.4f in %v, %8.3g sec/(step*point)\n",
		tstep, t, elapsed, rate)
	fmt.Printf("Mem: %s\n", utils.GetMemUsage())
}
