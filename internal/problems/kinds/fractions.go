package kinds

import (
	"fmt"
	"math/rand"

	"taskgen/internal/problems"
	"taskgen/internal/render"
)

// FractionReduction asks to reduce a fraction to lowest terms. Draws that
// are already reduced, or that collapse to a whole number, are rejected.
type FractionReduction struct{}

func (FractionReduction) Identifier() string { return "fraction_reduction" }

func (FractionReduction) DefaultTemplate() *render.Template {
	return &render.Template{
		Instruction: `Reduce the fraction $@fraction$ to lowest terms.`,
		Solution:    `$@fraction = @reduced$`,
	}
}

func (FractionReduction) Generate(r *rand.Rand) (problems.Data, error) {
	numerator := intn(r, 2, 99)
	denominator := intn(r, 2, 99)

	divisor := gcd(numerator, denominator)
	if err := problems.Check(divisor > 1); err != nil {
		return nil, err
	}
	if err := problems.Check(denominator/divisor > 1); err != nil {
		return nil, err
	}

	return problems.Data{
		"fraction": fmt.Sprintf("%d/%d", numerator, denominator),
		"reduced":  fmt.Sprintf("%d/%d", numerator/divisor, denominator/divisor),
		"factor":   divisor,
	}, nil
}
