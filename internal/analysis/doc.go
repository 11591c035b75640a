// Package analysis provides bifurcation and chaos analysis tools.
//
// The package includes tools for characterizing the maps in [chaos]:
//
//   - [Sweep]: parameter sweep with transient discard (bifurcation diagram)
//   - [SweepParallel]: the same sweep partitioned across workers
//   - [DetectPeriod]: smallest power-of-two period of a long-run tail
//   - [LogisticLyapunov]: Lyapunov exponent of the logistic map
//   - [LyapunovExponent]: largest Lyapunov exponent of a continuous system
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LogisticLyapunov(3.9, 0.2, 5000, 500)
//	if lambda > 0 {
//	    // orbit is chaotic
//	}
package analysis
