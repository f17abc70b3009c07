package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/geoquiz/internal/model"
)

// Catalog is the immutable set of quizzable entities and the region partition.
// It is built once and shared by the resolver, sessions and suggestions.
type Catalog struct {
	entities map[model.EntityID]model.Entity
	ids      []model.EntityID // Sorted ascending
	regions  []model.RegionDef
	markers  map[model.EntityID]model.Coordinates
}

// New validates a feed and builds a Catalog from it
func New(feed model.CatalogFeed) (*Catalog, error) {
	c := &Catalog{
		entities: make(map[model.EntityID]model.Entity, len(feed.Aliases)),
		markers:  make(map[model.EntityID]model.Coordinates, len(feed.Markers)),
	}

	seenRegion := make(map[string]bool, len(feed.Regions))
	for _, region := range feed.Regions {
		if region.Name == "" {
			return nil, fmt.Errorf("%w: region with empty name", model.ErrInvalidCatalog)
		}
		if seenRegion[region.Name] {
			return nil, fmt.Errorf("%w: duplicate region %q", model.ErrInvalidCatalog, region.Name)
		}
		seenRegion[region.Name] = true

		def := model.RegionDef{Name: region.Name, Color: region.Color}
		for _, sub := range region.Subregions {
			def.Subregions = append(def.Subregions, model.SubregionDef{
				Name:    sub.Name,
				Members: slices.Clone(sub.Members),
			})

			for _, id := range sub.Members {
				if existing, ok := c.entities[id]; ok {
					return nil, fmt.Errorf("%w: entity %d in both %q and %q",
						model.ErrInvalidCatalog, id, existing.Region, region.Name)
				}
				aliases := cleanAliases(feed.Aliases[id])
				if len(aliases) == 0 {
					return nil, fmt.Errorf("%w: entity %d has no aliases", model.ErrInvalidCatalog, id)
				}
				c.entities[id] = model.Entity{
					ID:        id,
					Aliases:   aliases,
					Region:    region.Name,
					Subregion: sub.Name,
				}
			}
		}
		c.regions = append(c.regions, def)
	}

	for id := range feed.Aliases {
		if _, ok := c.entities[id]; !ok {
			return nil, fmt.Errorf("%w: entity %d has no region", model.ErrInvalidCatalog, id)
		}
	}

	for id, coords := range feed.Markers {
		if _, ok := c.entities[id]; ok {
			c.markers[id] = coords
		}
	}

	c.ids = make([]model.EntityID, 0, len(c.entities))
	for id := range c.entities {
		c.ids = append(c.ids, id)
	}
	slices.Sort(c.ids)

	return c, nil
}

// cleanAliases trims names and drops empty ones, keeping order
func cleanAliases(aliases []string) []string {
	var out []string
	for _, a := range aliases {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

var (
	worldOnce    sync.Once
	worldCatalog *Catalog
)

// World returns the built-in world catalog
func World() *Catalog {
	worldOnce.Do(func() {
		c, err := New(WorldFeed())
		if err != nil {
			panic(fmt.Sprintf("built-in world catalog is invalid: %v", err))
		}
		worldCatalog = c
	})
	return worldCatalog
}

// WorldFeed returns a copy of the built-in world data as a feed
func WorldFeed() model.CatalogFeed {
	feed := model.CatalogFeed{
		Aliases: make(map[model.EntityID][]string, len(worldAliases)),
		Markers: make(map[model.EntityID]model.Coordinates, len(worldMarkers)),
	}
	for _, r := range worldRegions {
		def := model.RegionDef{Name: r.Name, Color: r.Color}
		for _, sub := range r.Subregions {
			def.Subregions = append(def.Subregions, model.SubregionDef{Name: sub.Name, Members: slices.Clone(sub.Members)})
		}
		feed.Regions = append(feed.Regions, def)
	}
	for id, aliases := range worldAliases {
		feed.Aliases[id] = slices.Clone(aliases)
	}
	for id, coords := range worldMarkers {
		feed.Markers[id] = coords
	}
	return feed
}

// Feed converts the catalog back to its feed form
func (c *Catalog) Feed() model.CatalogFeed {
	feed := model.CatalogFeed{
		Regions: c.Regions(),
		Aliases: make(map[model.EntityID][]string, len(c.entities)),
		Markers: make(map[model.EntityID]model.Coordinates, len(c.markers)),
	}
	for id, e := range c.entities {
		feed.Aliases[id] = slices.Clone(e.Aliases)
	}
	for id, coords := range c.markers {
		feed.Markers[id] = coords
	}
	return feed
}

// Len returns the number of quizzable entities
func (c *Catalog) Len() int {
	return len(c.ids)
}

// IDs returns all entity ids in ascending order
func (c *Catalog) IDs() []model.EntityID {
	return slices.Clone(c.ids)
}

// Contains returns true if the id is a catalog entity
func (c *Catalog) Contains(id model.EntityID) bool {
	_, ok := c.entities[id]
	return ok
}

// Entity returns a copy of the entity with the given id
func (c *Catalog) Entity(id model.EntityID) (model.Entity, bool) {
	e, ok := c.entities[id]
	if !ok {
		return model.Entity{}, false
	}
	e.Aliases = slices.Clone(e.Aliases)
	return e, true
}

// Aliases returns a copy of the entity's alias list, or nil if unknown
func (c *Catalog) Aliases(id model.EntityID) []string {
	e, ok := c.entities[id]
	if !ok {
		return nil
	}
	return slices.Clone(e.Aliases)
}

// Region returns the region name of an entity, or "" if unknown
func (c *Catalog) Region(id model.EntityID) string {
	return c.entities[id].Region
}

// DisplayName returns the canonical name of an entity, or "" if unknown
func (c *Catalog) DisplayName(id model.EntityID) string {
	return c.entities[id].DisplayName()
}

// Regions returns a copy of the region partition in display order
func (c *Catalog) Regions() []model.RegionDef {
	out := make([]model.RegionDef, len(c.regions))
	for i, r := range c.regions {
		out[i] = model.RegionDef{Name: r.Name, Color: r.Color}
		for _, sub := range r.Subregions {
			out[i].Subregions = append(out[i].Subregions, model.SubregionDef{
				Name:    sub.Name,
				Members: slices.Clone(sub.Members),
			})
		}
	}
	return out
}

// RegionColor returns the display color of a region, or "" if unknown
func (c *Catalog) RegionColor(name string) string {
	for _, r := range c.regions {
		if r.Name == name {
			return r.Color
		}
	}
	return ""
}

// Progress reports guessed/total counts per region, in region order
func (c *Catalog) Progress(guessed map[model.EntityID]struct{}) []model.RegionProgress {
	out := make([]model.RegionProgress, 0, len(c.regions))
	for _, r := range c.regions {
		p := model.RegionProgress{Region: r.Name, Color: r.Color}
		for _, sub := range r.Subregions {
			for _, id := range sub.Members {
				p.Total++
				if _, ok := guessed[id]; ok {
					p.Guessed++
				}
			}
		}
		out = append(out, p)
	}
	return out
}

// Markers returns the coordinates of entities drawn as circle markers
func (c *Catalog) Markers() map[model.EntityID]model.Coordinates {
	out := make(map[model.EntityID]model.Coordinates, len(c.markers))
	for id, coords := range c.markers {
		out[id] = coords
	}
	return out
}

// Marker returns the circle marker position of an entity, if it has one
func (c *Catalog) Marker(id model.EntityID) (model.Coordinates, bool) {
	coords, ok := c.markers[id]
	return coords, ok
}

// Quizzable matches geometry feature ids against the catalog.
// Marker entities are always listed as markers, even when a polygon exists.
func (c *Catalog) Quizzable(featureIDs []model.EntityID) model.QuizzableSet {
	set := model.QuizzableSet{Polygons: []model.EntityID{}, Markers: []model.EntityID{}}
	seen := make(map[model.EntityID]bool, len(featureIDs))
	for _, id := range featureIDs {
		if seen[id] || !c.Contains(id) {
			continue
		}
		seen[id] = true
		set.Polygons = append(set.Polygons, id)
	}
	for id := range c.markers {
		set.Markers = append(set.Markers, id)
	}
	slices.Sort(set.Polygons)
	slices.Sort(set.Markers)
	return set
}

// Entities returns every entity sorted by display name
func (c *Catalog) Entities() []model.Entity {
	out := make([]model.Entity, 0, len(c.entities))
	for _, id := range c.ids {
		e, _ := c.Entity(id)
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName()) < strings.ToLower(out[j].DisplayName())
	})
	return out
}
