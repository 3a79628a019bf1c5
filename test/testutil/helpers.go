// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// DateLayout is the calendar date format used by queries and price points.
const DateLayout = "2006-01-02"

// LoadTestJSON loads a JSON file from the test/testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t testing.TB, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// DecodeJSON unmarshals data into a T, failing the test on error.
func DecodeJSON[T any](t testing.TB, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Failed to decode JSON: %v\n%s", err, data)
	}
	return v
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t testing.TB, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Dates returns n consecutive calendar dates starting at start.
func Dates(t testing.TB, start string, n int) []string {
	t.Helper()
	first := MustParseDate(t, start)
	out := make([]string, n)
	for i := range out {
		out[i] = first.AddDate(0, 0, i).Format(DateLayout)
	}
	return out
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
