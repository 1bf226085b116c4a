package queue

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRefreshWritesLogLine(t *testing.T) {
	t.Chdir(t.TempDir())

	ev := WeekendRefreshEvent{Year: 2024, Week: 32, RequestedBy: "admin"}
	auditRefresh(ev, 15, 42*time.Second)

	data, err := os.ReadFile(filepath.Join("logs", "refresh.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "weekend=2024W32")
	assert.Contains(t, string(data), "films_stored=15")
	assert.Contains(t, string(data), "requested_by=admin")
}

func TestAuditRefreshFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	// A plain file named "logs" makes the directory creation fail.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs"), []byte("x"), 0o644))
	t.Chdir(dir)

	// A persisted refresh must never be redelivered because its audit
	// line could not be written.
	assert.NotPanics(t, func() {
		auditRefresh(WeekendRefreshEvent{Year: 2024, Week: 33}, 15, time.Second)
	})
}
