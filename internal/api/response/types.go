package response

import (
	"time"

	"github.com/mcoot/geoquiz/internal/model"
)

// Session represents a quiz session in API responses
type Session struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	Lives            int        `json:"lives"`
	MaxLives         int        `json:"max_lives"`
	UnlimitedLives   bool       `json:"unlimited_lives"`
	CorrectCount     int        `json:"correct_count"`
	TotalEntities    int        `json:"total_entities"`
	Guessed          []int      `json:"guessed"`
	SelectedEntityID *int       `json:"selected_entity_id"`
	ElapsedSeconds   int        `json:"elapsed_seconds"`
	TimeLimitSeconds int        `json:"time_limit_seconds"`
	RemainingSeconds *int       `json:"remaining_seconds"`
	EndReason        string     `json:"end_reason,omitempty"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
}

// SessionFromSnapshot converts a session snapshot
func SessionFromSnapshot(s model.SessionSnapshot) Session {
	out := Session{
		ID:               string(s.ID),
		Status:           string(s.Status),
		Lives:            s.Lives,
		MaxLives:         s.MaxLives,
		UnlimitedLives:   s.HasUnlimitedLives(),
		CorrectCount:     s.CorrectCount,
		TotalEntities:    s.TotalEntities,
		Guessed:          make([]int, len(s.Guessed)),
		ElapsedSeconds:   s.ElapsedSeconds,
		TimeLimitSeconds: s.TimeLimitSeconds,
		EndReason:        string(s.EndReason),
	}
	for i, id := range s.Guessed {
		out.Guessed[i] = int(id)
	}
	if s.SelectedEntityID != nil {
		id := int(*s.SelectedEntityID)
		out.SelectedEntityID = &id
	}
	if remaining := s.RemainingSeconds(); remaining >= 0 {
		out.RemainingSeconds = &remaining
	}
	if !s.StartedAt.IsZero() {
		t := s.StartedAt
		out.StartedAt = &t
	}
	if !s.EndedAt.IsZero() {
		t := s.EndedAt
		out.EndedAt = &t
	}
	return out
}

// GuessResult is the response for submitting a guess
type GuessResult struct {
	Outcome        string  `json:"outcome"`
	Correct        bool    `json:"correct"`
	EntityID       *int    `json:"entity_id,omitempty"`
	Region         string  `json:"region,omitempty"`
	LivesRemaining *int    `json:"lives_remaining,omitempty"`
	Session        Session `json:"session"`
}

// GuessResultFromModel converts a guess result and the session state after it
func GuessResultFromModel(r model.GuessResult, s model.SessionSnapshot) GuessResult {
	out := GuessResult{
		Outcome: string(r.Outcome),
		Correct: r.Correct(),
		Region:  r.Region,
		Session: SessionFromSnapshot(s),
	}
	if r.Outcome != model.GuessNoSelection {
		id := int(r.EntityID)
		out.EntityID = &id
	}
	if r.Outcome == model.GuessIncorrect {
		lives := r.LivesRemaining
		out.LivesRemaining = &lives
	}
	return out
}

// Entity represents a catalog entity
type Entity struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Aliases   []string           `json:"aliases"`
	Region    string             `json:"region"`
	Subregion string             `json:"subregion"`
	Color     string             `json:"color,omitempty"`
	Marker    *model.Coordinates `json:"marker,omitempty"`
}

// EntityFromModel converts model.Entity
func EntityFromModel(e model.Entity) Entity {
	return Entity{
		ID:        int(e.ID),
		Name:      e.DisplayName(),
		Aliases:   e.Aliases,
		Region:    e.Region,
		Subregion: e.Subregion,
	}
}

// MapInfo is the catalog data used to place an entity on the map
type MapInfo interface {
	RegionColor(name string) string
	Marker(id model.EntityID) (model.Coordinates, bool)
}

// EntityFromCatalog converts model.Entity along with its region color and marker
func EntityFromCatalog(e model.Entity, info MapInfo) Entity {
	out := EntityFromModel(e)
	out.Color = info.RegionColor(e.Region)
	if coords, ok := info.Marker(e.ID); ok {
		out.Marker = &coords
	}
	return out
}

// Marker is an entity drawn as a circle marker
type Marker struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Longitude float64 `json:"lon"`
	Latitude  float64 `json:"lat"`
}

// MapLayers lists the quizzable entities by how the map draws them
type MapLayers struct {
	Polygons []int    `json:"polygons"`
	Markers  []Marker `json:"markers"`
}

// MapLayersFromModel converts a quizzable set, resolving marker positions and names
func MapLayersFromModel(set model.QuizzableSet, coords map[model.EntityID]model.Coordinates, name func(model.EntityID) string) MapLayers {
	out := MapLayers{
		Polygons: make([]int, len(set.Polygons)),
		Markers:  make([]Marker, 0, len(set.Markers)),
	}
	for i, id := range set.Polygons {
		out.Polygons[i] = int(id)
	}
	for _, id := range set.Markers {
		c := coords[id]
		out.Markers = append(out.Markers, Marker{
			ID:        int(id),
			Name:      name(id),
			Longitude: c.Longitude,
			Latitude:  c.Latitude,
		})
	}
	return out
}

// Catalog is the response for listing the catalog
type Catalog struct {
	Count    int      `json:"count"`
	Entities []Entity `json:"entities"`
}

// Regions is the response for the region partition
type Regions struct {
	Regions []model.RegionDef `json:"regions"`
}

// RegionProgress represents guessed/total counts for one region
type RegionProgress struct {
	Region  string `json:"region"`
	Color   string `json:"color"`
	Guessed int    `json:"guessed"`
	Total   int    `json:"total"`
}

// Progress is the response for per-region session progress
type Progress struct {
	SessionID string           `json:"session_id"`
	Regions   []RegionProgress `json:"regions"`
}

// ProgressFromModel converts region progress
func ProgressFromModel(id model.SessionID, progress []model.RegionProgress) Progress {
	out := Progress{SessionID: string(id), Regions: make([]RegionProgress, len(progress))}
	for i, p := range progress {
		out.Regions[i] = RegionProgress{Region: p.Region, Color: p.Color, Guessed: p.Guessed, Total: p.Total}
	}
	return out
}

// Suggestion represents an autocomplete suggestion
type Suggestion struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Suggestions is the response for the suggestions endpoint
type Suggestions struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

// SuggestionsFromModel converts suggestions
func SuggestionsFromModel(query string, suggestions []model.Suggestion) Suggestions {
	out := Suggestions{Query: query, Suggestions: make([]Suggestion, len(suggestions))}
	for i, s := range suggestions {
		out.Suggestions[i] = Suggestion{ID: int(s.ID), Name: s.Name, Region: s.Region}
	}
	return out
}

// Names is the response listing the entities a session has yet to name
type Names struct {
	SessionID string   `json:"session_id"`
	Count     int      `json:"count"`
	Names     []string `json:"names"`
}

// Health is the response for the health endpoint
type Health struct {
	Status          string `json:"status"`
	Sessions        int    `json:"sessions"`
	CatalogEntities int    `json:"catalog_entities"`
}
