package ports

import (
	"context"

	"lightscore/domain/assessment"
)

// Scorer converts a finalized run into the versioned report envelope.
// Implementations must be deterministic: identical input, identical output.
type Scorer interface {
	Score(ctx context.Context, input assessment.RunInput) (*assessment.AssessmentOutputV1, error)
}
