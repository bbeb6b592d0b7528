package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/exporters"
)

func TestTasksDBPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "library-tasks.db"), TasksDBPath("data/library.db"))
	assert.Equal(t, "library-tasks", TasksDBPath("library"))
}

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	// Verify tasks database was created
	tasksDBPath := filepath.Join(tmpDir, "test-tasks.db")
	_, err = os.Stat(tasksDBPath)
	assert.NoError(t, err, "tasks database should be created")

	err = client.Close()
	assert.NoError(t, err)
}

func TestClientStartStop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)

	// Give it time to start
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	success := client.Stop(stopCtx)
	assert.True(t, success, "stop should succeed gracefully")
}

func TestClientStopWithoutStart(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), DefaultConfig())
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.Stop(context.Background()))
}

type stubBooks struct {
	books []entities.Book
	err   error
}

func (s *stubBooks) FindAll() ([]entities.Book, error) { return s.books, s.err }

type stubComments struct{}

func (stubComments) FindAllByBookID(bookID uint) ([]entities.Comment, error) {
	return []entities.Comment{{ID: bookID, Text: "nice", BookID: bookID}}, nil
}

type recordingExporter struct {
	done    chan []exporters.CatalogEntry
	entries []exporters.CatalogEntry
}

func (e *recordingExporter) Export(entries []exporters.CatalogEntry) (exporters.ExportResult, error) {
	e.entries = entries
	if e.done != nil {
		e.done <- entries
	}
	return exporters.ExportResult{BooksProcessed: len(entries), CommentsProcessed: len(entries)}, nil
}

func TestExportCatalogProcessor(t *testing.T) {
	books := &stubBooks{books: []entities.Book{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}}

	t.Run("exports all books with comments", func(t *testing.T) {
		exporter := &recordingExporter{}
		process := ExportCatalogProcessor(books, stubComments{}, exporter)

		require.NoError(t, process(context.Background(), ExportCatalogTask{Trigger: TriggerManual}))
		require.Len(t, exporter.entries, 2)
		assert.Equal(t, "nice", exporter.entries[1].Comments[0].Text)
	})

	t.Run("fails when not configured", func(t *testing.T) {
		process := ExportCatalogProcessor(nil, nil, nil)
		assert.Error(t, process(context.Background(), ExportCatalogTask{}))
	})

	t.Run("propagates load errors", func(t *testing.T) {
		process := ExportCatalogProcessor(&stubBooks{err: errors.New("db down")}, stubComments{}, &recordingExporter{})
		err := process(context.Background(), ExportCatalogTask{})
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		process := ExportCatalogProcessor(books, stubComments{}, &recordingExporter{})
		assert.ErrorIs(t, process(ctx, ExportCatalogTask{}), context.Canceled)
	})
}

func TestEnqueueCatalogExport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), cfg)
	require.NoError(t, err)
	defer client.Close()

	exporter := &recordingExporter{done: make(chan []exporters.CatalogEntry, 1)}
	client.Register(NewExportCatalogQueue(&stubBooks{books: []entities.Book{{ID: 1}}}, stubComments{}, exporter))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	id, err := EnqueueCatalogExport(client, TriggerManual)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	select {
	case entries := <-exporter.done:
		assert.Len(t, entries, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("export task was not executed within timeout")
	}

	// Status may still be running while the processor returns
	require.Eventually(t, func() bool {
		status, err := client.Status(context.Background(), id)
		return err == nil && status == backlite.TaskStatusSuccess
	}, 5*time.Second, 50*time.Millisecond)
}

func TestExportCatalogTaskConfig(t *testing.T) {
	cfg := ExportCatalogTask{}.Config()

	assert.Equal(t, "export_catalog", cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Minute, cfg.RetryDelay)
	assert.Equal(t, 5*time.Minute, cfg.TaskTimeout)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, 24*time.Hour, cfg.RetentionDuration)
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.Tasks{Workers: 4, TaskTimeout: time.Minute})

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, time.Minute, cfg.TaskTimeout)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
}
