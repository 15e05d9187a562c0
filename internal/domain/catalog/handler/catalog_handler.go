// Package handler serves the catalog endpoints consumed by the filter
// pickers.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ahernandezc/bdpr-api/internal/domain/catalog"
	"github.com/ahernandezc/bdpr-api/pkg/httpserver"
)

// CatalogHandler serves reference-data lookups.
type CatalogHandler struct {
	svc    *catalog.Service
	logger *slog.Logger
}

// NewCatalogHandler constructs a new handler.
func NewCatalogHandler(svc *catalog.Service, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the catalog endpoints.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/catalogos", func(r chi.Router) {
		r.Get("/grupo-articulo", h.gruposArticulo)
		r.Get("/centros", h.centros)
		r.Get("/almacenes", h.almacenes)
		r.Get("/monedas", h.monedas)
		r.Get("/indices", h.indices)
		r.Get("/proveedores/sugerencias", h.sugerenciasProveedores)
	})
}

func (h *CatalogHandler) gruposArticulo(w http.ResponseWriter, _ *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.svc.GruposArticulo())
}

func (h *CatalogHandler) centros(w http.ResponseWriter, _ *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.svc.Centros())
}

func (h *CatalogHandler) almacenes(w http.ResponseWriter, _ *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.svc.Almacenes())
}

func (h *CatalogHandler) monedas(w http.ResponseWriter, _ *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.svc.Monedas())
}

func (h *CatalogHandler) indices(w http.ResponseWriter, _ *http.Request) {
	httpserver.JSON(w, http.StatusOK, h.svc.Indices())
}

func (h *CatalogHandler) sugerenciasProveedores(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	suggestions := h.svc.SuggestProviders(q, limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	httpserver.JSON(w, http.StatusOK, suggestions)
}
