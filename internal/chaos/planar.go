package chaos

import (
	"math"

	"github.com/san-kum/atlas/internal/dynamo"
)

// Map2D is a planar map with its parameters bound.
type Map2D interface {
	Step(x, y float64) (float64, float64)
}

// Henon is the map (x, y) -> (1 - a x^2 + y, b x).
type Henon struct{ A, B float64 }

// NewHenon returns the canonical attractor parameters a=1.4, b=0.3.
func NewHenon() *Henon { return &Henon{A: 1.4, B: 0.3} }

func (h *Henon) Step(x, y float64) (float64, float64) {
	return HenonStep(x, y, h.A, h.B)
}

func HenonStep(x, y, a, b float64) (float64, float64) {
	return 1 - a*x*x + y, b * x
}

func (h *Henon) GetParams() map[string]float64 {
	return map[string]float64{"a": h.A, "b": h.B}
}

func (h *Henon) SetParam(n string, v float64) error {
	switch n {
	case "a":
		h.A = v
	case "b":
		h.B = v
	default:
		return dynamo.UnknownParam("henon", n)
	}
	return nil
}

// Ikeda is the map
//
//	t  = c - a / (1 + x^2 + y^2)
//	x' = 1 + u (x cos t - y sin t)
//	y' = u (x sin t + y cos t)
//
// B is carried for interface compatibility with existing callers and does not
// enter the transition. The textbook form uses it as the offset coefficient
// in place of the constant 1.
type Ikeda struct{ U, A, B, C float64 }

func NewIkeda() *Ikeda { return &Ikeda{U: 0.918, A: 0.4, B: 0.9, C: 6.0} }

func (k *Ikeda) Step(x, y float64) (float64, float64) {
	return IkedaStep(x, y, k.U, k.A, k.B, k.C)
}

func IkedaStep(x, y, u, a, _, c float64) (float64, float64) {
	t := c - a/(1+x*x+y*y)
	sin, cos := math.Sincos(t)
	return 1 + u*(x*cos-y*sin), u * (x*sin + y*cos)
}

func (k *Ikeda) GetParams() map[string]float64 {
	return map[string]float64{"u": k.U, "a": k.A, "b": k.B, "c": k.C}
}

func (k *Ikeda) SetParam(n string, v float64) error {
	switch n {
	case "u":
		k.U = v
	case "a":
		k.A = v
	case "b":
		k.B = v
	case "c":
		k.C = v
	default:
		return dynamo.UnknownParam("ikeda", n)
	}
	return nil
}
