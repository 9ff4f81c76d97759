package ports

import (
	"context"

	"lightscore/domain/assessment"
	"lightscore/domain/core"
)

// RunRepository loads finalized answer sets for scoring.
type RunRepository interface {
	// GetRun returns the complete response set for a run.
	// Returns core.ErrRunNotFound when the run does not exist.
	GetRun(ctx context.Context, runID core.RunID) (*assessment.RunInput, error)

	// SaveRun stores a finalized answer set.
	SaveRun(ctx context.Context, input *assessment.RunInput) error
}

// ReportRepository persists immutable scored reports. A run scores at most
// once per schema version; re-scoring returns the stored report unchanged.
type ReportRepository interface {
	// SaveReport inserts a report exactly once. A concurrent or repeated
	// insert for the same run is not an error; the first stored report wins
	// and is returned by subsequent GetReport calls.
	SaveReport(ctx context.Context, report *assessment.AssessmentOutputV1) error

	// GetReport returns the stored report for a run.
	// Returns core.ErrReportNotFound when no report exists.
	GetReport(ctx context.Context, runID core.RunID) (*assessment.AssessmentOutputV1, error)

	// ListReports returns stored reports, newest first, up to limit.
	ListReports(ctx context.Context, limit int) ([]*assessment.AssessmentOutputV1, error)
}
