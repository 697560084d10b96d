package store

import "testing"

// NewTestStore creates a fresh in-memory SQLite store with the schema
// applied. The store is closed when the test finishes.
func NewTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
