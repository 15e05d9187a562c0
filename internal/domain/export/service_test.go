package export

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahernandezc/bdpr-api/internal/dataset"
	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
	"github.com/ahernandezc/bdpr-api/pkg/storage"
)

func newTestExportService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewLocal(dir)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pricingSvc := pricing.NewService(dataset.Contratos(7), pricing.NewFactorTable(dataset.Factores()), logger)
	return NewService(pricingSvc, NewJobStore(time.Minute), files, logger), dir
}

func TestExportCSV_WritesCappedArtifact(t *testing.T) {
	svc, dir := newTestExportService(t)

	result, err := svc.ExportCSV(Request{
		Filters: pricing.FilterSet{Moneda: []string{"EUR"}},
		Sort:    pricing.SortSpec{Field: "importe_total", Direction: "desc"},
		Limit:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, ModeCSVLimited, result.Mode)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, StatusReady, result.Status)
	assert.Equal(t, "/exports/bdpr_consulta_10.csv", result.DownloadURL)

	raw, err := os.ReadFile(filepath.Join(dir, "bdpr_consulta_10.csv"))
	require.NoError(t, err)

	lines := nonEmptyLines(string(raw))
	require.Len(t, lines, 11) // header + 10 capped rows
	assert.Contains(t, lines[0], "no_contrato")
	assert.Contains(t, lines[0], "importe_total_actualizado")
}

func TestExportCSV_DefaultLimit(t *testing.T) {
	svc, _ := newTestExportService(t)

	result, err := svc.ExportCSV(Request{})
	require.NoError(t, err)
	assert.Equal(t, defaultCSVLimit, result.Limit)
}

func TestExportCSV_EmptyCellsForMissingFactors(t *testing.T) {
	svc, dir := newTestExportService(t)

	// An unknown override index means no row has a computable adjustment.
	_, err := svc.ExportCSV(Request{OverrideIndice: "ZZZ", Limit: 5})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "bdpr_consulta_5.csv"))
	require.NoError(t, err)

	lines := nonEmptyLines(string(raw))
	require.Greater(t, len(lines), 1)
	// Last three columns (factor and both adjusted amounts) are empty.
	assert.True(t, strings.HasSuffix(lines[1], ",,,"), "expected empty adjustment cells: %s", lines[1])
}

func TestStartJob_ProducesWorkbook(t *testing.T) {
	svc, dir := newTestExportService(t)

	job := svc.StartJob(Request{
		Filters: pricing.FilterSet{Moneda: []string{"USD"}},
		Mode:    ModeXLSXFull,
	})
	assert.Equal(t, StatusProcessing, job.Status)
	assert.True(t, strings.HasPrefix(job.ID, "job_"))

	require.Eventually(t, func() bool {
		j, ok := svc.Job(job.ID)
		return ok && j.Status == StatusReady
	}, 10*time.Second, 50*time.Millisecond)

	done, ok := svc.Job(job.ID)
	require.True(t, ok)
	assert.Equal(t, "/exports/"+job.ID+".xlsx", done.DownloadURL)
	assert.Empty(t, done.Error)

	info, err := os.Stat(filepath.Join(dir, job.ID+".xlsx"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestJob_UnknownID(t *testing.T) {
	svc, _ := newTestExportService(t)
	_, ok := svc.Job("job_missing")
	assert.False(t, ok)
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
