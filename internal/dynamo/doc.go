// Package dynamo provides the core value types shared by the dynamics engine.
//
// The package defines the fundamental interfaces and types used by the
// map library, the orbit generator and the bifurcation sampler:
//
//   - [State]: vector representing a point in phase space
//   - [System]: interface for continuous-time systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical integrator interface
//   - [Configurable]: named parameter access for maps and systems
//   - [ParallelFor]: fan-out helper for independent work items
//
// # Example
//
//	lz := chaos.NewLorenz()
//	traj, _ := orbit.Trajectory(lz, integrators.NewEuler(), dynamo.State{0.1, 0, 0}, 0.01, 1000)
//
// # Thread Safety
//
// Nothing in this package holds shared mutable state. Integrators that keep
// scratch buffers (RK4) must not be shared between goroutines.
package dynamo
