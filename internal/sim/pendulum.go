// Package sim holds the small demo dynamics the interactive tool
// visualizes: a damped pendulum integrated with classic RK4.
package sim

import "math"

// State is {theta, omega}.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

type Pendulum struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Mass:    1.0,
		Length:  1.0,
		Damping: 0.1,
		Gravity: 9.81,
	}
}

func (p *Pendulum) Derivative(x State, t float64) State {
	theta := x[0]
	omega := x[1]

	alpha := (-p.Damping*omega - p.Mass*p.Gravity*p.Length*math.Sin(theta)) / (p.Mass * p.Length * p.Length)

	return State{omega, alpha}
}

func (p *Pendulum) Energy(x State) float64 {
	theta := x[0]
	omega := x[1]
	ke := 0.5 * p.Mass * p.Length * p.Length * omega * omega
	pe := p.Mass * p.Gravity * p.Length * (1 - math.Cos(theta))
	return ke + pe
}

// Step advances x by dt using a fourth-order Runge-Kutta step.
func Step(p *Pendulum, x State, t, dt float64) State {
	n := len(x)

	k1 := p.Derivative(x, t)

	scratch := make(State, n)
	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k1[i]
	}
	k2 := p.Derivative(scratch, t+dt*0.5)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k2[i]
	}
	k3 := p.Derivative(scratch, t+dt*0.5)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*k3[i]
	}
	k4 := p.Derivative(scratch, t+dt)

	result := make(State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}

// Run integrates from x0 for the given number of steps and returns every
// intermediate state, x0 first.
func Run(p *Pendulum, x0 State, dt float64, steps int) []State {
	states := make([]State, 0, steps+1)
	states = append(states, x0.Clone())

	x := x0.Clone()
	t := 0.0
	for i := 0; i < steps; i++ {
		x = Step(p, x, t, dt)
		t += dt
		states = append(states, x.Clone())
	}
	return states
}
