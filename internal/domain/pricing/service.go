package pricing

import (
	"fmt"
	"log/slog"
	"time"
)

const defaultPageSize = 50

// QueryRequest is the payload of one dashboard query. It lives only for the
// duration of the request.
type QueryRequest struct {
	Filters        FilterSet `json:"filters"`
	Sort           SortSpec  `json:"sort"`
	Page           int       `json:"page"`
	PageSize       int       `json:"pageSize"`
	OverrideIndice string    `json:"overrideIndice"`
}

// Pagination describes the returned page window relative to the full
// filtered set.
type Pagination struct {
	Page      int  `json:"page"`
	PageSize  int  `json:"pageSize"`
	TotalRows int  `json:"totalRows"`
	HasMore   bool `json:"hasMore"`
}

// QueryResponse is built fresh per request. KPIs and totals describe the
// entire filtered set; Rows carries only the requested page.
type QueryResponse struct {
	KPIs       KPIs          `json:"kpis"`
	Rows       []AdjustedRow `json:"rows"`
	Pagination Pagination    `json:"pagination"`
	Totales    Totales       `json:"totales"`
	IndexResolution
	FechaActualizacionIndices string `json:"fecha_actualizacion_indices"`
}

// Service orchestrates one query cycle over the injected read-only dataset
// and factor table: resolve index, filter, adjust, aggregate, sort, slice.
// It holds no mutable state, so concurrent queries need no coordination.
type Service struct {
	dataset []ContractLine
	factors *FactorTable
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a query service over the given reference data.
func NewService(dataset []ContractLine, factors *FactorTable, logger *slog.Logger) *Service {
	return &Service{
		dataset: dataset,
		factors: factors,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the time source, for tests that pin
// fecha_actualizacion_indices.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Query runs the full request cycle. Aggregation happens before the page is
// sliced so KPIs and totals always describe the whole filtered set, and
// adjustment happens before sorting so adjusted columns are sortable.
func (s *Service) Query(req QueryRequest) (QueryResponse, error) {
	if req.Page < 0 || req.PageSize < 0 {
		return QueryResponse{}, fmt.Errorf("pricing: invalid pagination page=%d pageSize=%d", req.Page, req.PageSize)
	}
	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	adjusted, resolution := s.Run(req.Filters, req.OverrideIndice)
	kpis, totales := Aggregate(adjusted)
	ordenado := SortRows(adjusted, req.Sort)

	start := (page - 1) * pageSize
	end := start + pageSize
	total := len(ordenado)
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	s.logger.Debug("query resolved",
		slog.String("indice_aplicado", resolution.IndiceAplicado),
		slog.String("indice_origen", resolution.IndiceOrigen),
		slog.Int("total_rows", total),
		slog.Int("page", page),
	)

	return QueryResponse{
		KPIs: kpis,
		Rows: ordenado[start:end],
		Pagination: Pagination{
			Page:      page,
			PageSize:  pageSize,
			TotalRows: total,
			HasMore:   page*pageSize < total,
		},
		Totales:                   totales,
		IndexResolution:           resolution,
		FechaActualizacionIndices: priorPeriod(s.now()),
	}, nil
}

// Run executes the reusable filter→adjust part of the pipeline over the full
// dataset, without pagination. Export jobs use it to stream unbounded
// result sets through the same semantics as the dashboard.
func (s *Service) Run(filters FilterSet, overrideIndice string) ([]AdjustedRow, IndexResolution) {
	resolution := ResolveIndex(filters.Moneda, overrideIndice)
	filtrado := ApplyFilters(s.dataset, filters)
	return AdjustRows(filtrado, s.factors, resolution.IndiceAplicado), resolution
}

// RunSorted is Run plus ordering, the exact row sequence an unpaginated
// export must contain.
func (s *Service) RunSorted(filters FilterSet, sort SortSpec, overrideIndice string) ([]AdjustedRow, IndexResolution) {
	rows, resolution := s.Run(filters, overrideIndice)
	return SortRows(rows, sort), resolution
}

// priorPeriod labels the latest period the factor tables cover: the calendar
// month before now, as YYYY-MM.
func priorPeriod(now time.Time) string {
	return now.UTC().AddDate(0, -1, 0).Format("2006-01")
}
