package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/demo"
	"github.com/mrlokans/library/internal/monitoring"
	"github.com/mrlokans/library/internal/scheduler"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Route groups whose dependencies are missing from cfg are not registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger())
	router.Use(gin.Recovery())
	router.Use(monitoring.MetricsMiddleware())
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(demo.NewMiddleware(cfg.DemoMode).Handler())

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	trail := NewAuditTrail(cfg.Audit, cfg.SessionManager)

	// Mutating endpoints share the per-IP limiter
	var limited gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.RateLimiter != nil {
		limited = cfg.RateLimiter.Middleware()
	}

	health := NewHealthController(cfg.Database, cfg.Questions, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")

	if cfg.Authors != nil && cfg.Genres != nil {
		catalog := NewCatalogController(cfg.Authors, cfg.Genres)
		api.GET("/authors", catalog.ListAuthors)
		api.GET("/genres", catalog.ListGenres)
	}

	if cfg.Books != nil {
		books := NewBooksController(cfg.Books, trail)
		api.GET("/books", books.GetAllBooks)
		api.GET("/books/:id", books.GetBook)
		api.POST("/books", limited, books.CreateBook)
		api.PUT("/books/:id", limited, books.UpdateBook)
		api.DELETE("/books/:id", limited, books.DeleteBook)
	}

	if cfg.Comments != nil {
		comments := NewCommentsController(cfg.Comments, trail)
		api.GET("/books/:id/comments", comments.GetBookComments)
		api.POST("/books/:id/comments", limited, comments.CreateComment)
		api.GET("/comments/:id", comments.GetComment)
		api.PUT("/comments/:id", limited, comments.UpdateComment)
		api.DELETE("/comments/:id", limited, comments.DeleteComment)
	}

	if cfg.SessionManager != nil && cfg.Questions != nil {
		quizController := NewQuizController(cfg.SessionManager, cfg.Questions, cfg.Results, cfg.RightAnswersCountToPass, trail)
		requireStudent := cfg.SessionManager.RequireStudent()

		q := api.Group("/quiz")
		q.POST("/login", limited, quizController.Login)
		q.POST("/logout", quizController.Logout)
		q.GET("/me", requireStudent, quizController.Me)
		q.GET("/questions", quizController.Questions)
		q.POST("/submit", limited, requireStudent, quizController.Submit)
		if cfg.Results != nil {
			q.GET("/results", quizController.Results)
			q.GET("/stats", quizController.Stats)
		}
	}

	if cfg.TaskClient != nil {
		schedule := cfg.ExportScheduler
		if schedule == nil {
			schedule = scheduler.NewExportScheduler(config.Export{}, cfg.TaskClient)
		}
		tasksController := NewTasksController(cfg.TaskClient, schedule, trail)
		api.POST("/tasks/export/run", limited, tasksController.RunExport)
		api.GET("/tasks/export/schedule", tasksController.GetExportSchedule)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	if cfg.Audit != nil {
		auditController := NewAuditController(cfg.Audit)
		api.GET("/audit", auditController.GetEvents)
	}

	return router
}
