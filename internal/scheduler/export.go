package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/logger"
	"github.com/mrlokans/library/internal/tasks"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a standard five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// RunStatus describes the most recent scheduled enqueue.
type RunStatus struct {
	At     time.Time `json:"at"`
	TaskID string    `json:"task_id,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// Status is a point-in-time view of the scheduler.
type Status struct {
	Enabled  bool       `json:"enabled"`
	Running  bool       `json:"running"`
	Schedule string     `json:"schedule,omitempty"`
	NextRun  *time.Time `json:"next_run,omitempty"`
	LastRun  *RunStatus `json:"last_run,omitempty"`
}

// ExportScheduler periodically enqueues catalog exports.
type ExportScheduler struct {
	cfg   config.Export
	queue tasks.Enqueuer

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	statusMu sync.Mutex
	lastRun  *RunStatus
}

func NewExportScheduler(cfg config.Export, queue tasks.Enqueuer) *ExportScheduler {
	return &ExportScheduler{
		cfg:   cfg,
		queue: queue,
		cron:  cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler if exports are enabled.
func (s *ExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.L().Named("scheduler")

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Info("export scheduler disabled")
		return nil
	}

	if s.queue == nil {
		log.Warn("export scheduler: task queue not available, skipping")
		return nil
	}

	if err := ValidateCronSchedule(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.cfg.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, s.runExport)
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Info("export scheduler started",
		zap.String("schedule", s.cfg.Schedule),
		zap.Time("next_run", s.cron.Entry(entryID).Next))

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *ExportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	logger.L().Named("scheduler").Info("export scheduler stopped")
}

// RunNow enqueues an export immediately, outside the schedule.
func (s *ExportScheduler) RunNow() (string, error) {
	if s.queue == nil {
		return "", fmt.Errorf("task queue not available")
	}
	return tasks.EnqueueCatalogExport(s.queue, tasks.TriggerManual)
}

func (s *ExportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next export will be enqueued.
func (s *ExportScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	t := entry.Next
	return &t
}

func (s *ExportScheduler) LastRun() *RunStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if s.lastRun == nil {
		return nil
	}
	status := *s.lastRun
	return &status
}

func (s *ExportScheduler) Status() Status {
	status := Status{
		Enabled: s.cfg.Enabled,
		Running: s.IsRunning(),
		NextRun: s.NextRunTime(),
		LastRun: s.LastRun(),
	}
	if s.cfg.Enabled {
		status.Schedule = s.cfg.Schedule
	}
	return status
}

func (s *ExportScheduler) runExport() {
	status := RunStatus{At: time.Now()}
	log := logger.L().Named("scheduler")

	id, err := tasks.EnqueueCatalogExport(s.queue, tasks.TriggerSchedule)
	if err != nil {
		status.Error = err.Error()
		log.Error("scheduled export failed", zap.Error(err))
	} else {
		status.TaskID = id
		log.Info("scheduled export enqueued", zap.String("task_id", id))
	}

	s.statusMu.Lock()
	s.lastRun = &status
	s.statusMu.Unlock()
}
