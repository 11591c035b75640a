// Package chaos provides the discrete maps and continuous systems behind the
// chaos gallery:
//
//   - [LogisticStep]: x -> r x (1 - x)
//   - [TentStep]: piecewise-linear tent map
//   - [Henon]: planar quadratic map with the classic strange attractor
//   - [Ikeda]: planar rotation map from the optical ring cavity model
//   - [Lorenz]: butterfly attractor, stepped with explicit Euler
//
// Every step function is total over float64. Trajectories that leave the
// basin overflow to ±Inf or NaN instead of returning an error; callers
// decide whether that matters.
//
// [Henon], [Ikeda] and [Lorenz] implement [dynamo.Configurable], and
// [Lorenz] implements [dynamo.System] so any integrator can drive it.
package chaos
