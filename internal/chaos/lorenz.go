package chaos

import "github.com/san-kum/atlas/internal/dynamo"

type Lorenz struct{ Sigma, Rho, Beta float64 }

func NewLorenz() *Lorenz          { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }
func (l *Lorenz) StateDim() int   { return 3 }
func (l *Lorenz) ControlDim() int { return 0 }

// Field evaluates (σ(y−x), x(ρ−z)−y, xy−βz).
func (l *Lorenz) Field(x, y, z float64) (dx, dy, dz float64) {
	return l.Sigma * (y - x), x*(l.Rho-z) - y, x*y - l.Beta*z
}

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	dx, dy, dz := l.Field(s[0], s[1], s[2])
	return dynamo.State{dx, dy, dz}
}

// Step advances one explicit Euler step of size dt. There is no step size
// control; dt = 0.01 keeps the canonical attractor bounded.
func (l *Lorenz) Step(x, y, z, dt float64) (float64, float64, float64) {
	dx, dy, dz := l.Field(x, y, z)
	return x + dx*dt, y + dy*dt, z + dz*dt
}

func LorenzStep(x, y, z, dt, sigma, rho, beta float64) (float64, float64, float64) {
	l := Lorenz{Sigma: sigma, Rho: rho, Beta: beta}
	return l.Step(x, y, z, dt)
}

func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{0.1, 0.0, 0.0} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.Sigma, "rho": l.Rho, "beta": l.Beta}
}

func (l *Lorenz) SetParam(n string, v float64) error {
	switch n {
	case "sigma":
		l.Sigma = v
	case "rho":
		l.Rho = v
	case "beta":
		l.Beta = v
	default:
		return dynamo.UnknownParam("lorenz", n)
	}
	return nil
}
