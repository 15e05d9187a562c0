// Package handler exposes export creation, status polling and artifact
// download.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ahernandezc/bdpr-api/internal/domain/export"
	"github.com/ahernandezc/bdpr-api/pkg/httpserver"
	"github.com/ahernandezc/bdpr-api/pkg/metrics"
	"github.com/ahernandezc/bdpr-api/pkg/storage"
)

// ExportHandler serves the export endpoints.
type ExportHandler struct {
	svc     *export.Service
	files   storage.Storage
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewExportHandler constructs a new handler.
func NewExportHandler(svc *export.Service, files storage.Storage, m *metrics.Metrics, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, files: files, metrics: m, logger: logger}
}

// RegisterRoutes mounts the export endpoints.
func (h *ExportHandler) RegisterRoutes(r chi.Router) {
	r.Post("/bdpr/export", h.start)
	r.Get("/bdpr/export/status/{jobID}", h.status)
	r.Get("/exports/{artifact}", h.download)
}

func (h *ExportHandler) start(w http.ResponseWriter, r *http.Request) {
	var req export.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpserver.Error(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}
	if req.Mode == "" {
		req.Mode = export.ModeCSVLimited
	}

	if req.Mode == export.ModeCSVLimited {
		result, err := h.svc.ExportCSV(req)
		if err != nil {
			h.logger.Error("csv export failed", slog.Any("error", err))
			httpserver.Error(w, http.StatusInternalServerError, "no se pudo generar la exportación")
			return
		}
		h.count(req.Mode, string(export.StatusReady))
		httpserver.JSON(w, http.StatusOK, result)
		return
	}

	job := h.svc.StartJob(req)
	h.count(req.Mode, string(export.StatusProcessing))
	httpserver.JSON(w, http.StatusAccepted, map[string]any{
		"job_id": job.ID,
		"status": job.Status,
	})
}

func (h *ExportHandler) status(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, ok := h.svc.Job(jobID)
	if !ok {
		httpserver.Error(w, http.StatusNotFound, "job_id no encontrado")
		return
	}
	httpserver.JSON(w, http.StatusOK, job)
}

func (h *ExportHandler) download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "artifact")
	rc, err := h.files.Open(name)
	if err != nil {
		httpserver.Error(w, http.StatusNotFound, "archivo no encontrado")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType(name))
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("artifact download interrupted",
			slog.String("artifact", name),
			slog.Any("error", err),
		)
	}
}

func (h *ExportHandler) count(mode, status string) {
	if h.metrics != nil {
		h.metrics.ExportJobsTotal.WithLabelValues(mode, status).Inc()
	}
}

func contentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".csv"):
		return "text/csv; charset=utf-8"
	case strings.HasSuffix(name, ".xlsx"):
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
