// Package testutil provides testing utilities and helpers for tool results.
package testutil

import (
	"strings"
	"testing"

	"github.com/GriffinCanCode/mathkit/internal/shared/types"
)

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got error: %s", msg)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertErrorContains asserts an error result whose message contains substr.
func AssertErrorContains(t *testing.T, result *types.Result, substr string) {
	t.Helper()
	AssertError(t, result)
	if !strings.Contains(*result.Error, substr) {
		t.Fatalf("Expected error containing %q, got %q", substr, *result.Error)
	}
}

// AssertDataField is a helper to assert a data field exists and matches expected value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	if result.Data == nil {
		t.Fatal("Result data is nil")
	}

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}

	if actual != expected {
		t.Fatalf("Field %s: expected %v (%T), got %v (%T)", field, expected, expected, actual, actual)
	}
}
