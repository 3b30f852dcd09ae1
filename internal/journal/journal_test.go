package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open("sqlite://" + filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRunLifecycle(t *testing.T) {
	j := openTestJournal(t)

	run, err := j.StartRun("import")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "import", run.Mode)
	assert.Nil(t, run.FinishedAt)

	require.NoError(t, j.RecordItem(run.ID, "Nest™", "created", ""))
	require.NoError(t, j.RecordItem(run.ID, "Dial™", "failed", "store rejected"))

	require.NoError(t, j.FinishRun(run, 1, 1, 0))
	require.NotNil(t, run.FinishedAt)

	var stored Run
	require.NoError(t, j.db.First(&stored, "id = ?", run.ID).Error)
	assert.Equal(t, 1, stored.Succeeded)
	assert.Equal(t, 1, stored.Failed)

	var items []RunItem
	require.NoError(t, j.db.Where("run_id = ?", run.ID).Find(&items).Error)
	assert.Len(t, items, 2)
}

func TestRecordEvent(t *testing.T) {
	j := openTestJournal(t)

	occurred := time.Now().Add(-time.Minute)
	require.NoError(t, j.RecordEvent("product.created", "doc-1", "Nest™", occurred))

	var events []SyncEvent
	require.NoError(t, j.db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, "product.created", events[0].Type)
	assert.Equal(t, "doc-1", events[0].ProductID)
}

func TestOpenRejectsUnreachableDatabase(t *testing.T) {
	_, err := Open("sqlite:///nonexistent-dir/journal.db")
	assert.Error(t, err)
}
