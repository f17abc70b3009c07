package model

// EntityID identifies a quizzable country or territory.
// Values are the numeric codes used by the external map geometry (ISO 3166-1 numeric).
type EntityID int

// Entity is a quizzable country or territory
type Entity struct {
	ID        EntityID
	Aliases   []string // First alias is the canonical display name
	Region    string
	Subregion string
}

// DisplayName returns the canonical name of the entity
func (e Entity) DisplayName() string {
	if len(e.Aliases) == 0 {
		return ""
	}
	return e.Aliases[0]
}

// SubregionDef lists the members of a named subregion
type SubregionDef struct {
	Name    string     `json:"name"`
	Members []EntityID `json:"members"`
}

// RegionDef is one group of the fixed region partition
type RegionDef struct {
	Name       string         `json:"name"`
	Color      string         `json:"color"`
	Subregions []SubregionDef `json:"subregions"`
}

// Coordinates is a longitude/latitude pair
type Coordinates struct {
	Longitude float64 `json:"lon"`
	Latitude  float64 `json:"lat"`
}

// CatalogFeed is the raw data feed a catalog is built from.
// It is the shape stored in storage and read from JSON files.
type CatalogFeed struct {
	Regions []RegionDef              `json:"regions"`
	Aliases map[EntityID][]string    `json:"aliases"`
	Markers map[EntityID]Coordinates `json:"markers,omitempty"` // Entities too small to click as polygons
}

// RegionProgress reports how many entities of a region have been guessed
type RegionProgress struct {
	Region  string
	Color   string
	Guessed int
	Total   int
}

// Percent returns the guessed share of the region in [0, 100]
func (p RegionProgress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Guessed) / float64(p.Total) * 100
}

// QuizzableSet splits catalog entities by how the map should draw them
type QuizzableSet struct {
	Polygons []EntityID // Entities backed by a geometry feature
	Markers  []EntityID // Entities drawn as circle markers
}

// Suggestion is one autocomplete candidate
type Suggestion struct {
	ID     EntityID `json:"id"`
	Name   string   `json:"name"`
	Region string   `json:"region"`
}
