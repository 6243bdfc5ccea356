package kinds

import (
	"fmt"
	"math/rand"
	"strconv"

	"taskgen/internal/problems"
	"taskgen/internal/render"
)

// LinearEquation asks to solve a x + b = c where the solution is always
// an integer. Degenerate draws (a = 0, or an equation already in the
// form x = c) are rejected.
type LinearEquation struct{}

func (LinearEquation) Identifier() string { return "linear_equation" }

func (LinearEquation) DefaultTemplate() *render.Template {
	return &render.Template{
		Instruction: `Solve the equation $@equation$.`,
		Solution:    `$x = @solution$`,
	}
}

func (LinearEquation) Generate(r *rand.Rand) (problems.Data, error) {
	a := intn(r, -9, 9)
	b := intn(r, -20, 20)
	x := intn(r, -10, 10)

	if err := problems.Check(a != 0); err != nil {
		return nil, err
	}
	// a = 1, b = 0 would read "x = c" and leave nothing to solve.
	if err := problems.Check(a != 1 || b != 0); err != nil {
		return nil, err
	}

	c := a*x + b
	return problems.Data{
		"equation": formatLinearEquation(a, b, c),
		"solution": x,
	}, nil
}

func formatLinearEquation(a, b, c int) string {
	var left string
	switch a {
	case 1:
		left = "x"
	case -1:
		left = "-x"
	default:
		left = strconv.Itoa(a) + "x"
	}
	switch {
	case b > 0:
		left += fmt.Sprintf(" + %d", b)
	case b < 0:
		left += fmt.Sprintf(" - %d", -b)
	}
	return fmt.Sprintf("%s = %d", left, c)
}
