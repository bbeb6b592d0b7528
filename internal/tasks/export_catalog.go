package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/exporters"
	"github.com/mrlokans/library/internal/logger"
)

const (
	TriggerManual   = "manual"
	TriggerSchedule = "schedule"
)

// ExportCatalogTask writes the whole catalog as markdown.
type ExportCatalogTask struct {
	// Trigger records who asked for the export: manual or schedule.
	Trigger string `json:"trigger"`
}

// Config returns the queue configuration for catalog exports.
func (t ExportCatalogTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_catalog",
		MaxAttempts: 3,
		Backoff:     time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportCatalogProcessor creates a processor function for ExportCatalogTask.
func ExportCatalogProcessor(books exporters.BookLister, comments exporters.CommentLister, exporter exporters.CatalogExporter) backlite.QueueProcessor[ExportCatalogTask] {
	return func(ctx context.Context, task ExportCatalogTask) error {
		if books == nil || comments == nil || exporter == nil {
			return fmt.Errorf("catalog exporter not configured")
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := exporters.ExportCatalog(books, comments, exporter)
		if err != nil {
			return fmt.Errorf("export catalog: %w", err)
		}

		logger.L().Info("catalog export task complete",
			zap.String("trigger", task.Trigger),
			zap.Int("books", result.BooksProcessed),
			zap.Int("comments", result.CommentsProcessed),
			zap.Int("failed", result.BooksFailed))
		return nil
	}
}

// NewExportCatalogQueue creates a backlite queue for catalog exports.
func NewExportCatalogQueue(books exporters.BookLister, comments exporters.CommentLister, exporter exporters.CatalogExporter) backlite.Queue {
	return backlite.NewQueue(ExportCatalogProcessor(books, comments, exporter))
}

// Enqueuer is the part of Client used to submit tasks.
type Enqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// EnqueueCatalogExport submits an export and returns its task id.
func EnqueueCatalogExport(q Enqueuer, trigger string) (string, error) {
	ids, err := q.Add(ExportCatalogTask{Trigger: trigger}).Save()
	if err != nil {
		return "", fmt.Errorf("failed to enqueue catalog export: %w", err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("failed to enqueue catalog export: no task id returned")
	}
	return ids[0], nil
}

var _ Enqueuer = (*Client)(nil)
