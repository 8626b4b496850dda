package nn

import (
	"fmt"
	"strings"
)

// Activation selects the elementwise function applied to a layer's
// pre-activation values, together with its derivative.
//
// The set is closed; switch statements over Activation cover every value.
type Activation int

const (
	// Identity passes values through: f(u) = u, f'(u) = 1.
	Identity Activation = iota

	// ReLU is the rectified linear unit: f(u) = max(0, u).
	// The derivative at u = 0 is taken as 1.
	ReLU

	// LeakyReLU keeps a small slope for negative inputs: f(u) = 0.01u for u < 0.
	LeakyReLU
)

// leakySlope is the LeakyReLU slope for negative inputs.
const leakySlope = 0.01

// Forward evaluates the activation at u.
func (a Activation) Forward(u float64) float64 {
	switch a {
	case Identity:
		return u
	case ReLU:
		if u >= 0 {
			return u
		}
		return 0
	case LeakyReLU:
		if u >= 0 {
			return u
		}
		return leakySlope * u
	default:
		panic(fmt.Sprintf("nn: Forward on unknown activation %d", int(a)))
	}
}

// Derivative evaluates the activation's derivative at u.
func (a Activation) Derivative(u float64) float64 {
	switch a {
	case Identity:
		return 1
	case ReLU:
		if u >= 0 {
			return 1
		}
		return 0
	case LeakyReLU:
		if u >= 0 {
			return 1
		}
		return leakySlope
	default:
		panic(fmt.Sprintf("nn: Derivative on unknown activation %d", int(a)))
	}
}

// Valid reports whether a is one of the declared activations.
func (a Activation) Valid() bool {
	switch a {
	case Identity, ReLU, LeakyReLU:
		return true
	default:
		return false
	}
}

// String returns the activation name as accepted by ParseActivation.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case ReLU:
		return "relu"
	case LeakyReLU:
		return "leaky_relu"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation maps a name ("identity", "relu", "leaky_relu") to its
// Activation. Matching is case-insensitive; "-" is accepted for "_".
func ParseActivation(name string) (Activation, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "identity", "linear":
		return Identity, nil
	case "relu":
		return ReLU, nil
	case "leaky_relu", "leakyrelu":
		return LeakyReLU, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownActivation)
	}
}
