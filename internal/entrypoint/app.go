package entrypoint

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/database"
	auditRepo "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/comments"
	"github.com/mrlokans/library/internal/database/genres"
	"github.com/mrlokans/library/internal/database/results"
	"github.com/mrlokans/library/internal/exporters"
	"github.com/mrlokans/library/internal/logger"
	"github.com/mrlokans/library/internal/questions"
	"github.com/mrlokans/library/internal/quiz"
	"github.com/mrlokans/library/internal/services"
	"github.com/mrlokans/library/internal/shell"
)

// App holds everything the server and the CLI commands share: the database,
// repositories, services and the question source for the configured locale.
type App struct {
	Config *config.Config
	DB     *database.Database

	BookRepository    *books.Repository
	CommentRepository *comments.Repository
	Results           *results.Repository

	Authors  *services.AuthorService
	Genres   *services.GenreService
	Books    *services.BookService
	Comments *services.CommentService

	Localizer *console.Localizer
	Questions *questions.CSVReader

	// nil when AUDIT_ENABLED=false
	Audit *audit.Service
}

// NewApp opens the database and builds the services on top of it.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	authorRepo := authors.NewRepository(db.DB)
	genreRepo := genres.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	commentRepo := comments.NewRepository(db.DB)

	localizer := console.NewLocalizer(cfg.Quiz.Locale)
	questionsFile := cfg.Quiz.QuestionsFile(localizer.Tag().String())

	logger.L().Info("quiz configured",
		zap.String("locale", localizer.Tag().String()),
		zap.String("questions_file", questionsFile),
		zap.Int("right_answers_to_pass", cfg.Quiz.RightAnswersCountToPass))

	var auditService *audit.Service
	if cfg.Audit.Enabled {
		auditService = audit.NewService(auditRepo.NewRepository(db.DB))
		if cfg.Audit.Retention > 0 {
			deleted, err := auditService.DeleteOldEvents(cfg.Audit.Retention)
			if err != nil {
				logger.L().Warn("failed to prune audit events", zap.Error(err))
			} else if deleted > 0 {
				logger.L().Info("pruned audit events", zap.Int64("deleted", deleted))
			}
		}
	}

	return &App{
		Config:            cfg,
		DB:                db,
		BookRepository:    bookRepo,
		CommentRepository: commentRepo,
		Results:           results.NewRepository(db.DB),
		Authors:           services.NewAuthorService(authorRepo),
		Genres:            services.NewGenreService(genreRepo),
		Books:             services.NewBookService(authorRepo, genreRepo, bookRepo),
		Comments:          services.NewCommentService(bookRepo, commentRepo),
		Localizer:         localizer,
		Questions:         questions.NewCSVReader(questionsFile),
		Audit:             auditService,
	}, nil
}

// Close flushes pending audit events and closes the database.
func (a *App) Close() error {
	if a.Audit != nil {
		a.Audit.Wait()
	}
	return a.DB.Close()
}

// NewQuizRunner wires the console quiz services to io.
func (a *App) NewQuizRunner(io console.LocalizedIO) *quiz.Runner {
	threshold := a.Config.Quiz.RightAnswersCountToPass
	return quiz.NewRunner(
		quiz.NewStudentService(io),
		quiz.NewTestService(io, a.Questions),
		quiz.NewResultService(io, threshold),
		a.Results,
		threshold,
	)
}

func (a *App) Catalog() shell.Catalog {
	return shell.Catalog{
		Authors:  a.Authors,
		Genres:   a.Genres,
		Books:    a.Books,
		Comments: a.Comments,
	}
}

// NewExporter returns the markdown exporter writing to dir, or to the
// configured export directory when dir is empty.
func (a *App) NewExporter(dir string) *exporters.MarkdownCatalogExporter {
	if dir == "" {
		dir = a.Config.Export.Dir
	}
	return exporters.NewMarkdownCatalogExporter(dir)
}

// ExportCatalog writes the whole catalog synchronously.
func (a *App) ExportCatalog(dir string) (exporters.ExportResult, error) {
	result, err := exporters.ExportCatalog(a.BookRepository, a.CommentRepository, a.NewExporter(dir))
	if a.Audit != nil {
		a.Audit.LogExport(audit.Request{Actor: "cli"}, "cli", "", err)
	}
	return result, err
}
