package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/entities"
)

const defaultAuditLimit = 50

// AuditTrail records changes made through the API. A nil *AuditTrail records nothing.
type AuditTrail struct {
	service  *audit.Service
	sessions *auth.SessionManager
}

func NewAuditTrail(service *audit.Service, sessions *auth.SessionManager) *AuditTrail {
	if service == nil {
		return nil
	}
	return &AuditTrail{service: service, sessions: sessions}
}

func (t *AuditTrail) request(c *gin.Context) audit.Request {
	req := audit.Request{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if t.sessions != nil {
		if student, ok := t.sessions.Student(c.Request); ok {
			req.Actor = student.FullName()
		}
	}
	return req
}

func (t *AuditTrail) change(c *gin.Context, eventType entities.AuditEventType, entityType string, id uint, description string) {
	if t == nil {
		return
	}
	t.service.LogChange(t.request(c), eventType, entityType, id, description)
}

func (t *AuditTrail) export(c *gin.Context, taskID string, err error) {
	if t == nil {
		return
	}
	t.service.LogExport(t.request(c), "manual", taskID, err)
}

func (t *AuditTrail) login(c *gin.Context, student entities.Student) {
	if t == nil {
		return
	}
	t.service.LogLogin(t.request(c), student)
}

// AuditController serves the audit log.
type AuditController struct {
	service *audit.Service
}

func NewAuditController(service *audit.Service) *AuditController {
	return &AuditController{service: service}
}

var auditEventTypes = map[entities.AuditEventType]bool{
	entities.AuditEventCreate: true,
	entities.AuditEventUpdate: true,
	entities.AuditEventDelete: true,
	entities.AuditEventExport: true,
	entities.AuditEventLogin:  true,
}

// GetEvents handles GET /api/audit?type=&limit=&offset=
func (ac *AuditController) GetEvents(c *gin.Context) {
	eventType := entities.AuditEventType(c.Query("type"))
	if eventType != "" && !auditEventTypes[eventType] {
		respondBadRequest(c, "invalid type")
		return
	}

	limit, ok := parseLimitQuery(c, defaultAuditLimit)
	if !ok {
		return
	}
	if limit == 0 {
		limit = defaultAuditLimit
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		var err error
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			respondBadRequest(c, "invalid offset")
			return
		}
	}

	events, total, err := ac.service.GetEvents(eventType, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
