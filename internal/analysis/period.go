package analysis

import "math"

// DetectPeriod finds the smallest power-of-two period p <= maxPeriod such
// that values[i] and values[i+p] agree within tol for every i. It returns
// -1 when no such period exists or the tail is shorter than 2*maxPeriod.
func DetectPeriod(values []float64, tol float64, maxPeriod int) int {
	if maxPeriod < 1 || len(values) < 2*maxPeriod {
		return -1
	}

	for period := 1; period <= maxPeriod; period *= 2 {
		periodic := true
		for i := 0; i+period < len(values); i++ {
			if !(math.Abs(values[i]-values[i+period]) <= tol) {
				periodic = false
				break
			}
		}
		if periodic {
			return period
		}
	}

	return -1
}

// MaxPeriodFor returns the longest power-of-two period DetectPeriod can
// confirm on a tail of n values, or 0 when n < 2.
func MaxPeriodFor(n int) int {
	if n < 2 {
		return 0
	}
	p := 1
	for p <= n/4 {
		p *= 2
	}
	return p
}

// Periods runs DetectPeriod on every grouped sweep point.
func Periods(points []BifurcationPoint, tol float64, maxPeriod int) []int {
	periods := make([]int, len(points))
	for i, p := range points {
		periods[i] = DetectPeriod(p.Values, tol, maxPeriod)
	}
	return periods
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
