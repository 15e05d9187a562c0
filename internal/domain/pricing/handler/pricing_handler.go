// Package handler exposes the query engine over JSON HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
	"github.com/ahernandezc/bdpr-api/pkg/httpserver"
	"github.com/ahernandezc/bdpr-api/pkg/metrics"
)

// PricingHandler serves the dashboard query endpoints.
type PricingHandler struct {
	svc     *pricing.Service
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewPricingHandler constructs a new handler.
func NewPricingHandler(svc *pricing.Service, m *metrics.Metrics, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{svc: svc, metrics: m, logger: logger}
}

// RegisterRoutes mounts the query endpoints. Both routes run the same
// pipeline; cambiar-indice exists so the UI has a dedicated call when the
// operator picks a manual index, with the override arriving in the body.
func (h *PricingHandler) RegisterRoutes(r chi.Router) {
	r.Post("/bdpr/consulta", h.Consulta)
	r.Post("/bdpr/cambiar-indice", h.Consulta)
}

// Consulta handles one query request→response cycle.
func (h *PricingHandler) Consulta(w http.ResponseWriter, r *http.Request) {
	req, err := decodeQuery(r.Body)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	start := time.Now()
	resp, err := h.svc.Query(req)
	if err != nil {
		httpserver.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.QueriesTotal.WithLabelValues(resp.IndiceOrigen).Inc()
		h.metrics.QueryDuration.Observe(time.Since(start).Seconds())
	}

	httpserver.JSON(w, http.StatusOK, resp)
}

// decodeQuery reads the request body. An empty body is a valid request with
// all defaults; malformed JSON is a client error.
func decodeQuery(body io.Reader) (pricing.QueryRequest, error) {
	var req pricing.QueryRequest
	err := json.NewDecoder(body).Decode(&req)
	if errors.Is(err, io.EOF) {
		return pricing.QueryRequest{}, nil
	}
	return req, err
}
