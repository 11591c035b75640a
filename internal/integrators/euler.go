package integrators

import "github.com/san-kum/atlas/internal/dynamo"

// Euler is the explicit first-order scheme x' = x + dt*f(x). It is the
// stepping rule behind chaos.Lorenz.Step.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dx[i]*dt
	}
	return result
}
