package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"

	"lightscore/domain/assessment"
	"lightscore/domain/core"
	"lightscore/ports"
)

// ReportRepositoryImpl implements ReportRepository for PostgreSQL. The
// report envelope is stored as JSONB alongside its fingerprint; the
// primary key on (run_id, schema_version) plus ON CONFLICT DO NOTHING
// gives exactly-once semantics without an advisory lock.
type ReportRepositoryImpl struct {
	db *sqlx.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

type reportRow struct {
	RunID         string `db:"run_id"`
	SchemaVersion string `db:"schema_version"`
	Fingerprint   string `db:"input_fingerprint"`
	Report        []byte `db:"report"`
}

// SaveReport inserts a report exactly once. Concurrent scorers for the
// same run race on the insert; whichever lands first wins and the loser's
// identical report is discarded silently.
func (r *ReportRepositoryImpl) SaveReport(ctx context.Context, report *assessment.AssessmentOutputV1) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO assessment_reports (run_id, schema_version, input_fingerprint, report, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (run_id, schema_version) DO NOTHING
	`, report.RunID, report.SchemaVersion, report.InputFingerprint.String(), payload)
	return err
}

// GetReport returns the stored report for a run at the current schema
// version.
func (r *ReportRepositoryImpl) GetReport(ctx context.Context, runID core.RunID) (*assessment.AssessmentOutputV1, error) {
	var row reportRow
	err := r.db.GetContext(ctx, &row, `
		SELECT run_id, schema_version, input_fingerprint, report
		FROM assessment_reports
		WHERE run_id = $1 AND schema_version = $2
	`, runID, assessment.SchemaVersionV1)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	var report assessment.AssessmentOutputV1
	if err := json.Unmarshal(row.Report, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports returns stored reports, newest first.
func (r *ReportRepositoryImpl) ListReports(ctx context.Context, limit int) ([]*assessment.AssessmentOutputV1, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []reportRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT run_id, schema_version, input_fingerprint, report
		FROM assessment_reports
		WHERE schema_version = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, assessment.SchemaVersionV1, limit)
	if err != nil {
		return nil, err
	}

	reports := make([]*assessment.AssessmentOutputV1, 0, len(rows))
	for _, row := range rows {
		var report assessment.AssessmentOutputV1
		if err := json.Unmarshal(row.Report, &report); err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}
	return reports, nil
}
