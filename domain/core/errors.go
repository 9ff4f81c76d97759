package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrRunNotFound    = fmt.Errorf("%w: run", ErrNotFound)
	ErrReportNotFound = fmt.Errorf("%w: report", ErrNotFound)

	// Scoring errors - the run cannot be scored as submitted
	ErrIncompleteRun   = errors.New("required item missing from run")
	ErrInvalidResponse = errors.New("invalid response value")
	ErrUnscorableRun   = errors.New("normalized data insufficient for scoring")

	// Reference data errors
	ErrUnknownArchetype = errors.New("no archetype registered for ray pair")
)

// Error constructors with context
func NewIncompleteRunError(runID string, missing []string) error {
	return fmt.Errorf("%w: run %s missing %d required item(s): %s",
		ErrIncompleteRun, runID, len(missing), strings.Join(missing, ", "))
}

func NewInvalidResponseError(questionID string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidResponse, questionID, reason)
}

func NewUnscorableRunError(runID string, reason string) error {
	return fmt.Errorf("%w: run %s: %s", ErrUnscorableRun, runID, reason)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsScoringError reports whether err is one of the three scoring failures
// raised synchronously from the normalizer or aggregator stages.
func IsScoringError(err error) bool {
	return errors.Is(err, ErrIncompleteRun) ||
		errors.Is(err, ErrInvalidResponse) ||
		errors.Is(err, ErrUnscorableRun)
}
