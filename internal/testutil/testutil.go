package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keziahdorothy14/flashsprint/internal/history"
)

// NewTestHistory creates an in-memory review history database with all
// migrations applied.
func NewTestHistory(t *testing.T) *history.DB {
	t.Helper()
	db, err := history.Open(":memory:")
	require.NoError(t, err)
	return db
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
