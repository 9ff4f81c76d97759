package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestParseRayID tests ray ID validation
func TestParseRayID(t *testing.T) {
	tests := []struct {
		input    string
		expected RayID
		hasError bool
	}{
		{"R1", RayID("R1"), false},
		{"R9", RayID("R9"), false},
		{" R5 ", RayID("R5"), false},
		{"R0", "", true},
		{"R10", "", true},
		{"X1", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseRayID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestRayNumber tests the ordinal extraction
func TestRayNumber(t *testing.T) {
	if got := RayID("R7").RayNumber(); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if got := RayID("bogus").RayNumber(); got != 0 {
		t.Errorf("Expected 0 for malformed ID, got %d", got)
	}
}

// TestParseRunID tests run ID parsing
func TestParseRunID(t *testing.T) {
	tests := []struct {
		input    string
		expected RunID
		hasError bool
	}{
		{"run-123", RunID("run-123"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseRunID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}
