package resolver

import (
	"github.com/mcoot/geoquiz/internal/model"
)

// Catalog is the subset of the catalog the resolver reads
type Catalog interface {
	IDs() []model.EntityID
	Aliases(id model.EntityID) []string
}

// Resolver decides whether free text names a specific entity.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	keys map[model.EntityID]map[string]string // normalized key -> literal alias
}

// New precomputes the normalized alias keys of every catalog entity
func New(cat Catalog) *Resolver {
	ids := cat.IDs()
	r := &Resolver{keys: make(map[model.EntityID]map[string]string, len(ids))}
	for _, id := range ids {
		aliases := cat.Aliases(id)
		keys := make(map[string]string, len(aliases))
		for _, alias := range aliases {
			key := Normalize(alias)
			if key == "" {
				continue
			}
			if _, exists := keys[key]; !exists {
				keys[key] = alias
			}
		}
		r.keys[id] = keys
	}
	return r
}

// CheckAnswer reports whether raw names the entity.
// Unknown ids and input that normalizes to nothing never match.
func (r *Resolver) CheckAnswer(id model.EntityID, raw string) bool {
	matched, _ := r.Match(id, raw)
	return matched
}

// Match is CheckAnswer that also returns the literal alias that matched
func (r *Resolver) Match(id model.EntityID, raw string) (bool, string) {
	keys, ok := r.keys[id]
	if !ok {
		return false, ""
	}
	key := Normalize(raw)
	if key == "" {
		return false, ""
	}
	alias, ok := keys[key]
	return ok, alias
}

// Knows reports whether the id is an entity the resolver can check
func (r *Resolver) Knows(id model.EntityID) bool {
	_, ok := r.keys[id]
	return ok
}
