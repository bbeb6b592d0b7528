package http

import (
	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/services"
	"github.com/mrlokans/library/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Authors  *services.AuthorService
	Genres   *services.GenreService
	Books    *services.BookService
	Comments *services.CommentService

	// Quiz
	Questions               QuestionSource
	Results                 ResultStore
	RightAnswersCountToPass int

	// Sessions hold the logged-in student; quiz routes are skipped without them
	SessionManager *auth.SessionManager

	// Applied to mutating endpoints when set
	RateLimiter *auth.RateLimiter

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Reported by /api/tasks/export/schedule; an idle scheduler is used when nil
	ExportScheduler *scheduler.ExportScheduler

	// Records catalog changes, exports and logins; nil disables /api/audit
	Audit *audit.Service

	// Rejects catalog writes, the quiz keeps working
	DemoMode bool

	// Application info
	Version string
}
