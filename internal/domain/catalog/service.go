// Package catalog serves the reference catalogs backing the dashboard's
// filter pickers. The core query engine never reads these; they exist for
// presentation.
package catalog

import (
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ahernandezc/bdpr-api/internal/dataset"
	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
)

const defaultSuggestLimit = 10

// Service exposes read-only catalog lookups. Built once at startup from the
// reference dataset.
type Service struct {
	grupos      []string
	centros     []string
	almacenes   []string
	monedas     []string
	indices     []dataset.Indice
	proveedores []string
	logger      *slog.Logger
}

// NewService derives the catalogs from the dataset. Provider names are
// deduplicated and sorted for the suggestion index.
func NewService(rows []pricing.ContractLine, logger *slog.Logger) *Service {
	seen := make(map[string]struct{})
	var proveedores []string
	for _, r := range rows {
		if _, ok := seen[r.NombreProveedor]; ok {
			continue
		}
		seen[r.NombreProveedor] = struct{}{}
		proveedores = append(proveedores, r.NombreProveedor)
	}
	sort.Strings(proveedores)

	return &Service{
		grupos:      dataset.GruposArticulo,
		centros:     dataset.Centros,
		almacenes:   dataset.Almacenes,
		monedas:     dataset.Monedas,
		indices:     dataset.IndicesCatalogo(),
		proveedores: proveedores,
		logger:      logger,
	}
}

// GruposArticulo returns the article group catalog.
func (s *Service) GruposArticulo() []string { return clone(s.grupos) }

// Centros returns the center codes.
func (s *Service) Centros() []string { return clone(s.centros) }

// Almacenes returns the warehouse codes.
func (s *Service) Almacenes() []string { return clone(s.almacenes) }

// Monedas returns the currency codes.
func (s *Service) Monedas() []string { return clone(s.monedas) }

// Indices returns the published index catalog.
func (s *Service) Indices() []dataset.Indice {
	out := make([]dataset.Indice, len(s.indices))
	copy(out, s.indices)
	return out
}

// SuggestProviders ranks provider names against a free-text query for the
// filter picker. Matching is accent- and case-insensitive; best matches
// first. An empty query returns nothing.
func (s *Service) SuggestProviders(query string, limit int) []string {
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	ranks := fuzzy.RankFindNormalizedFold(query, s.proveedores)
	sort.Sort(ranks)

	out := make([]string, 0, limit)
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
