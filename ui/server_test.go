package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightscore/app"
	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/core"
	"lightscore/domain/scoring"
	internal "lightscore/internal"
)

type stubRunRepo struct {
	runs map[core.RunID]*assessment.RunInput
}

func (r *stubRunRepo) SaveRun(ctx context.Context, input *assessment.RunInput) error {
	r.runs[input.RunID] = input
	return nil
}

func (r *stubRunRepo) GetRun(ctx context.Context, runID core.RunID) (*assessment.RunInput, error) {
	run, ok := r.runs[runID]
	if !ok {
		return nil, core.ErrRunNotFound
	}
	return run, nil
}

type stubReportRepo struct {
	reports map[core.RunID]*assessment.AssessmentOutputV1
}

func (r *stubReportRepo) SaveReport(ctx context.Context, report *assessment.AssessmentOutputV1) error {
	if _, exists := r.reports[report.RunID]; !exists {
		r.reports[report.RunID] = report
	}
	return nil
}

func (r *stubReportRepo) GetReport(ctx context.Context, runID core.RunID) (*assessment.AssessmentOutputV1, error) {
	report, ok := r.reports[runID]
	if !ok {
		return nil, core.ErrReportNotFound
	}
	return report, nil
}

func (r *stubReportRepo) ListReports(ctx context.Context, limit int) ([]*assessment.AssessmentOutputV1, error) {
	out := []*assessment.AssessmentOutputV1{}
	for _, report := range r.reports {
		out = append(out, report)
	}
	return out, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	bank := catalog.Default()
	service := app.NewScoringService(
		scoring.NewEngine(bank),
		&stubRunRepo{runs: make(map[core.RunID]*assessment.RunInput)},
		&stubReportRepo{reports: make(map[core.RunID]*assessment.AssessmentOutputV1)},
		internal.NewLogger(internal.LogLevelError),
	)
	return NewServer(service, bank, nil, internal.NewLogger(internal.LogLevelError))
}

func TestQuestionsEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions?set=weekly_43", nil)
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":43`)
}

func TestQuestionsEndpointRejectsUnknownSet(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions?set=nope", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReportNotFound(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/nope", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreUnknownRunReturns404(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs/missing/score", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitRunRejectsMalformedPayload(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpsHealth(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ops/health", nil)
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), assessment.SchemaVersionV1)
}
