// Package problems holds the generation engine: the registry of problem
// kinds and the deterministic, seeded protocol that turns a kind into
// per-student problem data.
//
// A kind is a parametrized exercise algorithm (finding zeros of a
// polynomial, computing set operations, ...). Each kind draws its
// parameters from a pseudo-random source and returns a dictionary of
// labels and values, for example
//
//	Data{"polynomial": "x^2 - 1", "zeros": "-1, 1"}
//
// which is then substituted into a template such as
//
//	"Find all the zeros of the polynomial @polynomial."
package problems

import (
	"errors"
	"math/rand"

	"taskgen/internal/render"
)

// Data maps placeholder names to renderable values produced by one call
// to a kind's generator. It is ephemeral: never persisted, regenerated on
// demand from a seed.
type Data map[string]any

// ErrRejected is returned by a generator to discard its own draw, for
// example when a derived value falls out of an acceptable range only
// after the draw. The protocol retries with the next state of the same
// random source; the signal never reaches callers of GenerateAll.
var ErrRejected = errors.New("problems: generated data rejected")

// Check is a convenience for generators: it returns ErrRejected when the
// condition does not hold.
func Check(condition bool) error {
	if !condition {
		return ErrRejected
	}
	return nil
}

// Kind is the extension point new problem kinds plug into.
//
// Generate must be a pure function of the supplied random source: any two
// calls seeing the same source state must produce the same data. A kind
// returning ErrRejected must leave a non-empty acceptance region, since
// the protocol retries rejected draws indefinitely.
type Kind interface {
	// Identifier is the stable name stored as a foreign-key-like value
	// by the persistence layer. Lowercase snake_case.
	Identifier() string

	Generate(r *rand.Rand) (Data, error)

	// DefaultTemplate returns the kind's built-in instruction/solution
	// texts, or nil when every problem of this kind must carry its own.
	DefaultTemplate() *render.Template
}
