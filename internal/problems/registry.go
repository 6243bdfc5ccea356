package problems

import (
	"sort"

	"taskgen/internal/domain"
)

// Registry maps kind identifiers to their implementations. It is built
// explicitly at process startup, before any entity operation runs, and is
// read-only afterwards, so lookups need no locking.
type Registry struct {
	kinds map[string]Kind
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds a kind. Registering the same identifier twice is a
// configuration error and fails with DUPLICATE_KIND.
func (r *Registry) Register(kind Kind) error {
	id := kind.Identifier()
	if _, exists := r.kinds[id]; exists {
		return domain.NewDuplicateKindError(id)
	}
	r.kinds[id] = kind
	return nil
}

// MustRegister panics on registration failure. Intended for startup
// wiring where a duplicate identifier is a programming error.
func (r *Registry) MustRegister(kind Kind) {
	if err := r.Register(kind); err != nil {
		panic(err)
	}
}

// Resolve returns the kind registered under the identifier, failing with
// UNKNOWN_KIND otherwise.
func (r *Registry) Resolve(identifier string) (Kind, error) {
	kind, ok := r.kinds[identifier]
	if !ok {
		return nil, domain.NewUnknownKindError(identifier)
	}
	return kind, nil
}

// Identifiers returns all registered kind identifiers, sorted for stable
// listings.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.kinds))
	for id := range r.kinds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
