package kinds

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"taskgen/internal/problems"
	"taskgen/internal/render"
)

// PolynomialZeros asks for the zeros of a monic polynomial given in
// expanded form. Zeros are drawn small, but the expanded coefficients can
// still grow too large to be pleasant to factor by hand; such draws are
// rejected.
type PolynomialZeros struct{}

func (PolynomialZeros) Identifier() string { return "polynomial_zeros" }

func (PolynomialZeros) DefaultTemplate() *render.Template {
	return &render.Template{
		Instruction: `Find all zeros of the polynomial $p(x) = @polynomial$.`,
		Solution:    `The zeros are $@zeros$.`,
	}
}

const maxPolynomialCoefficient = 100

func (PolynomialZeros) Generate(r *rand.Rand) (problems.Data, error) {
	degree := intn(r, 2, 3)
	zeros := make([]int, degree)
	for i := range zeros {
		zeros[i] = intn(r, -5, 5)
	}

	coefficients := expandFromZeros(zeros)
	for _, c := range coefficients {
		if err := problems.Check(c <= maxPolynomialCoefficient && c >= -maxPolynomialCoefficient); err != nil {
			return nil, err
		}
	}

	sort.Ints(zeros)
	return problems.Data{
		"polynomial": formatPolynomial(coefficients),
		"zeros":      joinInts(zeros),
		"degree":     degree,
	}, nil
}

// expandFromZeros multiplies out (x - z_1)...(x - z_n). The result is
// ordered from the leading coefficient (always 1) down to the constant.
func expandFromZeros(zeros []int) []int {
	coefficients := []int{1}
	for _, z := range zeros {
		next := make([]int, len(coefficients)+1)
		for i, c := range coefficients {
			next[i] += c
			next[i+1] -= c * z
		}
		coefficients = next
	}
	return coefficients
}

// formatPolynomial renders expanded coefficients as "x^3 - 2x^2 + x - 5",
// skipping zero terms and the usual redundant ones and signs.
func formatPolynomial(coefficients []int) string {
	degree := len(coefficients) - 1
	var b strings.Builder
	for i, c := range coefficients {
		if c == 0 {
			continue
		}
		power := degree - i
		if b.Len() == 0 {
			if c < 0 {
				b.WriteString("-")
			}
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs != 1 || power == 0 {
			b.WriteString(strconv.Itoa(abs))
		}
		switch {
		case power == 1:
			b.WriteString("x")
		case power > 1:
			b.WriteString("x^" + strconv.Itoa(power))
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
