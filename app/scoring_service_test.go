package app

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/core"
	"lightscore/domain/scoring"
	internal "lightscore/internal"
)

// memoryRunRepo and memoryReportRepo mirror the persistence contracts in
// memory, including the exactly-once report insert.
type memoryRunRepo struct {
	mu   sync.Mutex
	runs map[core.RunID]*assessment.RunInput
}

func newMemoryRunRepo() *memoryRunRepo {
	return &memoryRunRepo{runs: make(map[core.RunID]*assessment.RunInput)}
}

func (r *memoryRunRepo) SaveRun(ctx context.Context, input *assessment.RunInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *input
	r.runs[input.RunID] = &copied
	return nil
}

func (r *memoryRunRepo) GetRun(ctx context.Context, runID core.RunID) (*assessment.RunInput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[runID]
	if !ok {
		return nil, core.ErrRunNotFound
	}
	return run, nil
}

type memoryReportRepo struct {
	mu      sync.Mutex
	reports map[core.RunID]*assessment.AssessmentOutputV1
	saves   int
}

func newMemoryReportRepo() *memoryReportRepo {
	return &memoryReportRepo{reports: make(map[core.RunID]*assessment.AssessmentOutputV1)}
}

func (r *memoryReportRepo) SaveReport(ctx context.Context, report *assessment.AssessmentOutputV1) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if _, exists := r.reports[report.RunID]; exists {
		return nil // first insert wins
	}
	r.reports[report.RunID] = report
	return nil
}

func (r *memoryReportRepo) GetReport(ctx context.Context, runID core.RunID) (*assessment.AssessmentOutputV1, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[runID]
	if !ok {
		return nil, core.ErrReportNotFound
	}
	return report, nil
}

func (r *memoryReportRepo) ListReports(ctx context.Context, limit int) ([]*assessment.AssessmentOutputV1, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*assessment.AssessmentOutputV1, 0, len(r.reports))
	for _, report := range r.reports {
		if len(out) == limit {
			break
		}
		out = append(out, report)
	}
	return out, nil
}

func fullRun(runID string, value int) *assessment.RunInput {
	bank := catalog.Default()
	input := &assessment.RunInput{
		RunID:       core.RunID(runID),
		QuestionSet: assessment.QuestionSetFull,
	}
	for _, q := range bank.QuestionsFor(assessment.QuestionSetFull) {
		resp := assessment.QuestionResponse{QuestionID: q.ID}
		if q.DisplayType == assessment.DisplayReflection {
			resp.FreeText = "written answer"
		} else {
			resp.Value = value
		}
		input.Responses = append(input.Responses, resp)
	}
	return input
}

func newService(t *testing.T) (*ScoringService, *memoryRunRepo, *memoryReportRepo) {
	t.Helper()
	runs := newMemoryRunRepo()
	reports := newMemoryReportRepo()
	service := NewScoringService(
		scoring.NewEngine(catalog.Default()),
		runs, reports,
		internal.NewLogger(internal.LogLevelError),
	)
	return service, runs, reports
}

func TestScoreRunPersistsExactlyOnce(t *testing.T) {
	service, _, reports := newService(t)
	ctx := context.Background()

	require.NoError(t, service.SubmitRun(ctx, fullRun("run-1", 2)))

	first, err := service.ScoreRun(ctx, core.RunID("run-1"))
	require.NoError(t, err)
	second, err := service.ScoreRun(ctx, core.RunID("run-1"))
	require.NoError(t, err)

	assert.Equal(t, first.InputFingerprint, second.InputFingerprint)
	assert.Equal(t, 1, reports.saves, "second score must not re-insert")
}

func TestScoreRunUnknownRun(t *testing.T) {
	service, _, _ := newService(t)
	_, err := service.ScoreRun(context.Background(), core.RunID("missing"))
	assert.ErrorIs(t, err, core.ErrRunNotFound)
}

func TestScoreRunRejectsIncompleteRun(t *testing.T) {
	service, _, _ := newService(t)
	ctx := context.Background()

	input := fullRun("run-2", 2)
	input.Responses = input.Responses[5:]
	require.NoError(t, service.SubmitRun(ctx, input))

	_, err := service.ScoreRun(ctx, core.RunID("run-2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIncompleteRun)
}

func TestSubmitRunValidation(t *testing.T) {
	service, _, _ := newService(t)
	ctx := context.Background()

	assert.Error(t, service.SubmitRun(ctx, &assessment.RunInput{QuestionSet: assessment.QuestionSetFull}))
	assert.Error(t, service.SubmitRun(ctx, &assessment.RunInput{
		RunID: "run-3", QuestionSet: assessment.QuestionSet("bogus"),
	}))
	assert.Error(t, service.SubmitRun(ctx, &assessment.RunInput{
		RunID: "run-3", QuestionSet: assessment.QuestionSetFull,
	}))
}
