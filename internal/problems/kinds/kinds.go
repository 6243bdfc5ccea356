// Package kinds implements the built-in problem kinds and registers them
// into a problems.Registry at startup.
package kinds

import (
	"math/rand"
	"strconv"
	"strings"

	"taskgen/internal/problems"
)

// RegisterBuiltins adds every built-in kind to the registry. Called once
// during startup wiring, before any request is served.
func RegisterBuiltins(reg *problems.Registry) error {
	builtins := []problems.Kind{
		PolynomialZeros{},
		SetOperations{},
		LinearEquation{},
		FractionReduction{},
	}
	for _, kind := range builtins {
		if err := reg.Register(kind); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultRegistry returns a registry with all built-in kinds. Duplicate
// identifiers among builtins would be a programming error, hence panic.
func NewDefaultRegistry() *problems.Registry {
	reg := problems.NewRegistry()
	if err := RegisterBuiltins(reg); err != nil {
		panic(err)
	}
	return reg
}

// intn returns a random integer in [lo, hi], inclusive on both ends.
func intn(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// joinInts renders a slice as "1, 2, 3".
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// setNotation renders a slice as "{1, 2, 3}".
func setNotation(values []int) string {
	return "{" + joinInts(values) + "}"
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
