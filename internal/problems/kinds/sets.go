package kinds

import (
	"math/rand"
	"sort"

	"taskgen/internal/problems"
	"taskgen/internal/render"
)

// SetOperations asks for the union, intersection and difference of two
// small subsets of {1, ..., 20}. Draws with a disjoint pair are rejected
// so the intersection is never trivially empty.
type SetOperations struct{}

func (SetOperations) Identifier() string { return "set_operations" }

func (SetOperations) DefaultTemplate() *render.Template {
	return &render.Template{
		Instruction: `Let $A = @set_a$ and $B = @set_b$. Determine $A \cup B$, $A \cap B$ and $A \setminus B$.`,
		Solution:    `$A \cup B = @union$, $A \cap B = @intersection$, $A \setminus B = @difference$`,
	}
}

func (SetOperations) Generate(r *rand.Rand) (problems.Data, error) {
	setA := randomSubset(r, 20, intn(r, 3, 5))
	setB := randomSubset(r, 20, intn(r, 3, 5))

	intersection := intersect(setA, setB)
	if err := problems.Check(len(intersection) > 0); err != nil {
		return nil, err
	}

	return problems.Data{
		"set_a":        setNotation(setA),
		"set_b":        setNotation(setB),
		"union":        setNotation(union(setA, setB)),
		"intersection": setNotation(intersection),
		"difference":   setNotation(difference(setA, setB)),
	}, nil
}

// randomSubset draws size distinct elements of {1, ..., universe},
// returned sorted.
func randomSubset(r *rand.Rand, universe, size int) []int {
	perm := r.Perm(universe)
	subset := make([]int, size)
	for i := 0; i < size; i++ {
		subset[i] = perm[i] + 1
	}
	sort.Ints(subset)
	return subset
}

func union(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		seen[v] = true
	}
	result := make([]int, 0, len(seen))
	for v := range seen {
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}

func intersect(a, b []int) []int {
	inB := make(map[int]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	result := []int{}
	for _, v := range a {
		if inB[v] {
			result = append(result, v)
		}
	}
	return result
}

func difference(a, b []int) []int {
	inB := make(map[int]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	result := []int{}
	for _, v := range a {
		if !inB[v] {
			result = append(result, v)
		}
	}
	return result
}
