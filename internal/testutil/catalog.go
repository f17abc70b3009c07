package testutil

import "github.com/mcoot/geoquiz/internal/model"

// SampleFeed returns a two-entity feed: 1 "Alpha" in North, 2 "Beta"/"Bravo" in South
func SampleFeed() model.CatalogFeed {
	return model.CatalogFeed{
		Regions: []model.RegionDef{
			{Name: "North", Color: "#4a90d9", Subregions: []model.SubregionDef{
				{Name: "Far North", Members: []model.EntityID{1}},
			}},
			{Name: "South", Color: "#e67e22", Subregions: []model.SubregionDef{
				{Name: "Deep South", Members: []model.EntityID{2}},
			}},
		},
		Aliases: map[model.EntityID][]string{
			1: {"Alpha"},
			2: {"Beta", "Bravo"},
		},
	}
}

// AccentedFeed returns a feed whose aliases exercise normalization
func AccentedFeed() model.CatalogFeed {
	return model.CatalogFeed{
		Regions: []model.RegionDef{
			{Name: "Africa", Color: "#e67e22", Subregions: []model.SubregionDef{
				{Name: "Western Africa", Members: []model.EntityID{384, 678}},
			}},
			{Name: "Europe", Color: "#4a90d9", Subregions: []model.SubregionDef{
				{Name: "Southern Europe", Members: []model.EntityID{492}},
			}},
		},
		Aliases: map[model.EntityID][]string{
			384: {"Côte d'Ivoire", "Cote d'Ivoire", "Ivory Coast"},
			678: {"São Tomé and Príncipe", "Sao Tome and Principe"},
			492: {"Monaco"},
		},
		Markers: map[model.EntityID]model.Coordinates{
			492: {Longitude: 7.42, Latitude: 43.74},
			678: {Longitude: 6.61, Latitude: 0.19},
		},
	}
}
