// Package audit keeps a trail of catalog changes, exports and quiz logins.
package audit

import (
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/logger"
)

const maxFieldLength = 500

// Store persists audit events.
type Store interface {
	LogEvent(event *entities.AuditEvent) error
	GetEvents(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error)
	DeleteOldEvents(cutoff time.Time) (int64, error)
}

// Request describes who triggered an event.
type Request struct {
	Actor     string
	IPAddress string
	UserAgent string
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo    Store
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(event); err != nil {
			logger.L().Warn("failed to log audit event",
				zap.String("action", event.Action),
				zap.Error(err))
		}
	}()
}

// Wait blocks until every event passed to LogAsync has been written.
func (s *Service) Wait() {
	s.pending.Wait()
}

func newEvent(req Request, eventType entities.AuditEventType, action string) *entities.AuditEvent {
	return &entities.AuditEvent{
		EventType: eventType,
		Action:    action,
		Actor:     truncate(req.Actor, 200),
		IPAddress: req.IPAddress,
		UserAgent: truncate(req.UserAgent, maxFieldLength),
		Status:    entities.AuditStatusSuccess,
	}
}

// LogChange records a create, update or delete of a catalog entity.
func (s *Service) LogChange(req Request, eventType entities.AuditEventType, entityType string, entityID uint, description string) {
	event := newEvent(req, eventType, entityType+"_"+string(eventType))
	event.EntityType = entityType
	event.EntityID = &entityID
	event.Description = truncate(description, maxFieldLength)

	s.LogAsync(event)
}

// LogExport records a catalog export request.
func (s *Service) LogExport(req Request, trigger, taskID string, err error) {
	event := newEvent(req, entities.AuditEventExport, "catalog_export")
	event.Description = fmt.Sprintf("Catalog export (%s)", trigger)
	if taskID != "" {
		event.Description += ", task " + taskID
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxFieldLength)
	}

	s.LogAsync(event)
}

// LogLogin records a student logging in to take the test.
func (s *Service) LogLogin(req Request, student entities.Student) {
	event := newEvent(req, entities.AuditEventLogin, "quiz_login")
	event.EntityType = "student"
	event.Actor = truncate(student.FullName(), 200)
	event.Description = "Logged in: " + student.FullName()

	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events, optionally of one type.
func (s *Service) GetEvents(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(eventType, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to at most maxLen bytes without splitting a rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
