package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	RunID      ID
	ReportID   ID
	QuestionID ID
	RayID      ID
	SubfacetID ID
)

// String conversions for domain IDs
func (id RunID) String() string      { return ID(id).String() }
func (id ReportID) String() string   { return ID(id).String() }
func (id QuestionID) String() string { return ID(id).String() }
func (id RayID) String() string      { return ID(id).String() }
func (id SubfacetID) String() string { return ID(id).String() }

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(s), nil
}

// ParseQuestionID parses a string into QuestionID
func ParseQuestionID(s string) (QuestionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("question ID cannot be empty")
	}
	return QuestionID(s), nil
}

// ParseRayID validates one of the nine fixed capacity identifiers (R1..R9).
func ParseRayID(s string) (RayID, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) != 2 || trimmed[0] != 'R' || trimmed[1] < '1' || trimmed[1] > '9' {
		return "", fmt.Errorf("invalid ray ID %q: expected R1..R9", s)
	}
	return RayID(trimmed), nil
}

// RayNumber returns the 1-9 ordinal of a ray ID, or 0 if malformed.
func (id RayID) RayNumber() int {
	s := string(id)
	if len(s) != 2 || s[0] != 'R' || s[1] < '1' || s[1] > '9' {
		return 0
	}
	return int(s[1] - '0')
}
