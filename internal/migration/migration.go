package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lightscore/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create assessment_runs table")
	}

	if err := r.createReportsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create assessment_reports table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS assessment_runs (
			run_id VARCHAR(64) PRIMARY KEY,
			question_set VARCHAR(20) NOT NULL,
			responses JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createReportsTable(ctx context.Context, db *sqlx.DB) error {
	// The composite primary key is what makes SaveReport's
	// ON CONFLICT DO NOTHING an exactly-once insert.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS assessment_reports (
			run_id VARCHAR(64) NOT NULL REFERENCES assessment_runs(run_id) ON DELETE CASCADE,
			schema_version VARCHAR(20) NOT NULL,
			input_fingerprint VARCHAR(64) NOT NULL,
			report JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (run_id, schema_version)
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_reports_created_at
			ON assessment_reports (created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_reports_fingerprint
			ON assessment_reports (input_fingerprint);
	`)
	return err
}
