package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/geoquiz/internal/api/apierr"
	"github.com/mcoot/geoquiz/internal/api/response"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
)

// CatalogHandler handles read-only catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /catalog, optionally filtered by ?region=
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	entities := h.catalog.Entities()
	out := response.Catalog{Entities: make([]response.Entity, 0, len(entities))}
	for _, e := range entities {
		if region != "" && e.Region != region {
			continue
		}
		out.Entities = append(out.Entities, response.EntityFromCatalog(e, h.catalog))
	}
	out.Count = len(out.Entities)

	response.JSON(w, http.StatusOK, out)
}

// Regions handles GET /catalog/regions
func (h *CatalogHandler) Regions(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Regions{Regions: h.catalog.Regions()})
}

// Entity handles GET /catalog/entities/{id}
func (h *CatalogHandler) Entity(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid entity id"))
		return
	}

	e, ok := h.catalog.Entity(model.EntityID(n))
	if !ok {
		WriteError(w, model.ErrEntityNotFound)
		return
	}

	response.JSON(w, http.StatusOK, response.EntityFromCatalog(e, h.catalog))
}

// Map handles GET /catalog/map, optionally restricted by ?features=1,2,3
// to the geometry features the map actually has
func (h *CatalogHandler) Map(w http.ResponseWriter, r *http.Request) {
	features := h.catalog.IDs()
	if raw := r.URL.Query().Get("features"); raw != "" {
		features = nil
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				WriteError(w, apierr.NewInvalidRequestError("features must be a comma separated list of ids"))
				return
			}
			features = append(features, model.EntityID(n))
		}
	}

	set := h.catalog.Quizzable(features)
	response.JSON(w, http.StatusOK, response.MapLayersFromModel(set, h.catalog.Markers(), h.catalog.DisplayName))
}
