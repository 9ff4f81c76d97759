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

// RunRepositoryImpl implements RunRepository for PostgreSQL. Responses are
// stored as a JSONB document per run: the engine always consumes a run
// whole, so row-per-answer storage buys nothing here.
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

type runRow struct {
	RunID       string `db:"run_id"`
	QuestionSet string `db:"question_set"`
	Responses   []byte `db:"responses"`
}

// SaveRun stores a finalized answer set. Saving the same run again
// replaces its responses; runs are mutable until scored.
func (r *RunRepositoryImpl) SaveRun(ctx context.Context, input *assessment.RunInput) error {
	responses, err := json.Marshal(input.Responses)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO assessment_runs (run_id, question_set, responses, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (run_id) DO UPDATE
		SET question_set = EXCLUDED.question_set,
		    responses = EXCLUDED.responses,
		    updated_at = NOW()
	`, input.RunID, input.QuestionSet, responses)
	return err
}

// GetRun returns the complete response set for a run.
func (r *RunRepositoryImpl) GetRun(ctx context.Context, runID core.RunID) (*assessment.RunInput, error) {
	var row runRow
	err := r.db.GetContext(ctx, &row, `
		SELECT run_id, question_set, responses
		FROM assessment_runs
		WHERE run_id = $1
	`, runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	input := &assessment.RunInput{
		RunID:       core.RunID(row.RunID),
		QuestionSet: assessment.QuestionSet(row.QuestionSet),
	}
	if err := json.Unmarshal(row.Responses, &input.Responses); err != nil {
		return nil, err
	}
	return input, nil
}
