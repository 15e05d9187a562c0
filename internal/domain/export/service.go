// Package export runs the dashboard's filter→adjust→sort pipeline over the
// unbounded result set and materializes it as downloadable artifacts, either
// synchronously (capped CSV) or through asynchronous job tickets (full
// XLSX workbook).
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
	"github.com/ahernandezc/bdpr-api/pkg/storage"
)

// Export modes. Anything other than csv_limited is treated as a full
// workbook job.
const (
	ModeCSVLimited = "csv_limited"
	ModeXLSXFull   = "xlsx_full"
)

const defaultCSVLimit = 50000

// Request carries the same filter, sort and override semantics as a
// dashboard query, minus pagination.
type Request struct {
	Filters        pricing.FilterSet `json:"filters"`
	Sort           pricing.SortSpec  `json:"sort"`
	OverrideIndice string            `json:"overrideIndice"`
	Mode           string            `json:"mode"`
	Limit          int               `json:"limit"`
}

// CSVResult describes a synchronously produced, row-capped CSV artifact.
type CSVResult struct {
	Mode        string    `json:"mode"`
	Limit       int       `json:"limit"`
	DownloadURL string    `json:"download_url"`
	Status      JobStatus `json:"status"`
}

// Service materializes exports through the shared pricing pipeline.
type Service struct {
	pricing *pricing.Service
	store   *JobStore
	files   storage.Storage
	logger  *slog.Logger
}

// NewService wires the export pipeline to the query engine and artifact
// store.
func NewService(pricingSvc *pricing.Service, store *JobStore, files storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		pricing: pricingSvc,
		store:   store,
		files:   files,
		logger:  logger,
	}
}

// ExportCSV runs the pipeline synchronously and writes at most req.Limit
// rows as CSV. The artifact is ready when this returns.
func (s *Service) ExportCSV(req Request) (CSVResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultCSVLimit
	}

	rows, resolution := s.pricing.RunSorted(req.Filters, req.Sort, req.OverrideIndice)
	if len(rows) > limit {
		rows = rows[:limit]
	}

	name := fmt.Sprintf("bdpr_consulta_%d.csv", limit)
	w, err := s.files.Create(name)
	if err != nil {
		return CSVResult{}, err
	}
	if err := writeCSV(w, rows); err != nil {
		w.Close()
		return CSVResult{}, err
	}
	if err := w.Close(); err != nil {
		return CSVResult{}, fmt.Errorf("export: close %s: %w", name, err)
	}

	s.logger.Info("csv export written",
		slog.String("artifact", name),
		slog.Int("rows", len(rows)),
		slog.String("indice_aplicado", resolution.IndiceAplicado),
	)

	return CSVResult{
		Mode:        ModeCSVLimited,
		Limit:       limit,
		DownloadURL: "/exports/" + name,
		Status:      StatusReady,
	}, nil
}

// StartJob registers a processing ticket and builds the full workbook in the
// background. The returned job is still in processing; clients poll the
// status endpoint.
func (s *Service) StartJob(req Request) Job {
	job := Job{
		ID:        "job_" + uuid.NewString(),
		Status:    StatusProcessing,
		CreatedAt: time.Now().UTC(),
		Mode:      req.Mode,
	}
	s.store.Put(job)

	go s.runJob(job.ID, req)
	return job
}

// Job returns the ticket for id.
func (s *Service) Job(id string) (Job, bool) {
	return s.store.Get(id)
}

func (s *Service) runJob(id string, req Request) {
	rows, resolution := s.pricing.RunSorted(req.Filters, req.Sort, req.OverrideIndice)

	name := id + ".xlsx"
	if err := s.writeArtifact(name, rows); err != nil {
		s.logger.Error("export job failed", slog.String("job_id", id), slog.Any("error", err))
		s.failJob(id, err)
		return
	}

	if err := s.store.Transition(id, StatusReady, func(j *Job) {
		j.DownloadURL = "/exports/" + name
	}); err != nil {
		s.logger.Error("export job transition failed", slog.String("job_id", id), slog.Any("error", err))
		return
	}

	s.logger.Info("export job ready",
		slog.String("job_id", id),
		slog.Int("rows", len(rows)),
		slog.String("indice_aplicado", resolution.IndiceAplicado),
	)
}

func (s *Service) writeArtifact(name string, rows []pricing.AdjustedRow) error {
	w, err := s.files.Create(name)
	if err != nil {
		return err
	}
	if err := writeXLSX(w, rows); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (s *Service) failJob(id string, cause error) {
	if err := s.store.Transition(id, StatusFailed, func(j *Job) {
		j.Error = cause.Error()
	}); err != nil {
		s.logger.Error("export job fail-transition failed", slog.String("job_id", id), slog.Any("error", err))
	}
}
