// SPDX-License-Identifier: MIT

// Package activation provides the logistic sigmoid, its derivative and
// its inverse, plus the clamping used to keep the inverse finite.
package activation

import "math"

// DefaultEpsilon is the margin SafeSigmoidInverse keeps away from 0 and 1.
const DefaultEpsilon = 1e-12

// Func bundles an activation with its derivative. The derivative takes the
// pre-activation z, not the activated value.
type Func struct {
	Forward    func(z float64) float64
	Derivative func(z float64) float64
}

// Logistic is the sigmoid pair consumed by the network trainers.
var Logistic = Func{Forward: Sigmoid, Derivative: SigmoidDerivative}

// Sigmoid returns 1 / (1 + e^-x), in (0, 1) for finite x.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidDerivative returns σ(x)·(1-σ(x)).
func SigmoidDerivative(x float64) float64 {
	s := Sigmoid(x)

	return s * (1 - s)
}

// SigmoidInverse returns ln(y / (1-y)). It yields -Inf at 0, +Inf at 1 and
// NaN outside [0, 1]; callers that cannot tolerate that use
// SafeSigmoidInverse.
func SigmoidInverse(y float64) float64 {
	return math.Log(y / (1 - y))
}

// Clamp maps y into [eps, 1-eps]. NaN stays NaN.
func Clamp(y, eps float64) float64 {
	switch {
	case y < eps:
		return eps
	case y > 1-eps:
		return 1 - eps
	}

	return y
}

// SafeSigmoidInverse is SigmoidInverse on Clamp(y, DefaultEpsilon); it is
// finite for every non-NaN input.
func SafeSigmoidInverse(y float64) float64 {
	return SigmoidInverse(Clamp(y, DefaultEpsilon))
}
