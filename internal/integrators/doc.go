// Package integrators provides fixed-step ODE integrators for [dynamo.System].
//
//   - [Euler]: explicit first order, the scheme the Lorenz view animates with
//   - [RK4]: classical fourth order, used to compare against Euler drift
//
// Get-by-name lookup is provided by [ByName].
package integrators
