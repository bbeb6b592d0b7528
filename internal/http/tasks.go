package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/tasks"
)

// TaskQueue is the part of tasks.Client used by the controller.
type TaskQueue interface {
	tasks.Enqueuer
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// ExportSchedule is the part of scheduler.ExportScheduler used by the controller.
type ExportSchedule interface {
	RunNow() (string, error)
	Status() scheduler.Status
}

// TasksController handles task queue endpoints.
type TasksController struct {
	client   TaskQueue
	schedule ExportSchedule
	trail    *AuditTrail
}

func NewTasksController(client TaskQueue, schedule ExportSchedule, trail *AuditTrail) *TasksController {
	return &TasksController{client: client, schedule: schedule, trail: trail}
}

// RunExport handles POST /api/tasks/export/run
func (tc *TasksController) RunExport(c *gin.Context) {
	id, err := tc.schedule.RunNow()
	tc.trail.export(c, id, err)
	if err != nil {
		respondInternalError(c, err, "enqueue export")
		return
	}
	respondAccepted(c, "task enqueued", gin.H{
		"task_id": id,
		"type":    tasks.ExportCatalogTask{}.Config().Name,
	})
}

// GetExportSchedule handles GET /api/tasks/export/schedule
func (tc *TasksController) GetExportSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, tc.schedule.Status())
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
