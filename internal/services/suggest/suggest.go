package suggest

import (
	"strings"

	"github.com/mcoot/geoquiz/internal/model"
)

// DefaultLimit is the number of suggestions returned when no limit is given
const DefaultLimit = 8

// Catalog is the subset of the catalog suggestions are drawn from
type Catalog interface {
	Entities() []model.Entity
}

type candidate struct {
	suggestion model.Suggestion
	lower      string
}

// Service suggests entity names for partial input
type Service struct {
	candidates []candidate // Sorted by name
}

// New creates a suggestion service over the catalog's display names
func New(cat Catalog) *Service {
	entities := cat.Entities()
	svc := &Service{candidates: make([]candidate, 0, len(entities))}
	for _, e := range entities {
		name := e.DisplayName()
		svc.candidates = append(svc.candidates, candidate{
			suggestion: model.Suggestion{ID: e.ID, Name: name, Region: e.Region},
			lower:      strings.ToLower(name),
		})
	}
	return svc
}

// Suggest returns names of unguessed entities matching the query.
// Names starting with the query come first; only when there are none are
// names containing it anywhere returned. A limit <= 0 uses DefaultLimit.
func (s *Service) Suggest(query string, guessed map[model.EntityID]struct{}, limit int) []model.Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Suggestion{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	matches := s.collect(guessed, limit, func(name string) bool {
		return strings.HasPrefix(name, q)
	})
	if len(matches) == 0 {
		matches = s.collect(guessed, limit, func(name string) bool {
			return strings.Contains(name, q)
		})
	}
	return matches
}

func (s *Service) collect(guessed map[model.EntityID]struct{}, limit int, match func(string) bool) []model.Suggestion {
	out := []model.Suggestion{}
	for _, c := range s.candidates {
		if _, done := guessed[c.suggestion.ID]; done {
			continue
		}
		if !match(c.lower) {
			continue
		}
		out = append(out, c.suggestion)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Names returns the display names of every unguessed entity, sorted
func (s *Service) Names(guessed map[model.EntityID]struct{}) []string {
	names := make([]string, 0, len(s.candidates))
	for _, c := range s.candidates {
		if _, done := guessed[c.suggestion.ID]; !done {
			names = append(names, c.suggestion.Name)
		}
	}
	return names
}
