package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// healthCheck reports a short status line, or an error when the dependency is down.
type healthCheck func() (string, error)

// HealthController answers /health with the state of the catalog database
// and the quiz question bank.
type HealthController struct {
	version string
	checks  map[string]healthCheck
}

func NewHealthController(db *database.Database, questions QuestionSource, version string) *HealthController {
	h := &HealthController{version: version, checks: map[string]healthCheck{}}

	h.checks["database"] = func() (string, error) {
		if db == nil {
			return "not configured", nil
		}
		return "ok", db.Ping()
	}

	if questions != nil {
		h.checks["questions"] = func() (string, error) {
			qs, err := questions.FindAll()
			if err != nil {
				return "", err
			}
			if len(qs) == 0 {
				return "", fmt.Errorf("no questions loaded")
			}
			return fmt.Sprintf("ok (%d)", len(qs)), nil
		}
	}
	return h
}

func (h *HealthController) Status(c *gin.Context) {
	resp := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  make(map[string]string, len(h.checks)),
	}

	code := http.StatusOK
	for name, check := range h.checks {
		msg, err := check()
		if err != nil {
			resp.Checks[name] = "error: " + err.Error()
			resp.Status = "unhealthy"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = msg
	}

	c.IndentedJSON(code, resp)
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
