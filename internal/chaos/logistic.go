package chaos

// Map1D is a one-parameter map of the real line.
type Map1D func(x, r float64) float64

var (
	Logistic Map1D = LogisticStep
	Tent     Map1D = TentStep
)

// LogisticStep computes x_{n+1} = r * x_n * (1 - x_n).
func LogisticStep(x, r float64) float64 {
	return r * x * (1 - x)
}

// TentStep computes r*x below the midpoint and r*(1-x) at or above it.
func TentStep(x, r float64) float64 {
	const mid = 0.5
	if x < mid {
		return r * x
	}
	return r * (1 - x)
}

// LogisticFixedPoint returns the non-trivial fixed point 1 - 1/r.
func LogisticFixedPoint(r float64) float64 {
	return 1 - 1/r
}

// LogisticDerivative is f'(x) = r(1 - 2x), used for Lyapunov estimates.
func LogisticDerivative(x, r float64) float64 {
	return r * (1 - 2*x)
}

// ByName resolves "logistic" or "tent".
func ByName(name string) (Map1D, bool) {
	switch name {
	case "logistic":
		return Logistic, true
	case "tent":
		return Tent, true
	}
	return nil, false
}
