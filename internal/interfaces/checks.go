package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/console"
	auditRepo "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/comments"
	"github.com/mrlokans/library/internal/database/genres"
	"github.com/mrlokans/library/internal/database/results"
	"github.com/mrlokans/library/internal/exporters"
	"github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/questions"
	"github.com/mrlokans/library/internal/quiz"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/services"
	"github.com/mrlokans/library/internal/shell"
	"github.com/mrlokans/library/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.AuthorRepository = (*authors.Repository)(nil)
var _ services.GenreRepository = (*genres.Repository)(nil)
var _ services.BookRepository = (*books.Repository)(nil)
var _ services.CommentRepository = (*comments.Repository)(nil)

// Quiz attempts
var _ quiz.Recorder = (*results.Repository)(nil)
var _ http.ResultStore = (*results.Repository)(nil)

// Catalog export reads straight from the repositories
var _ exporters.BookLister = (*books.Repository)(nil)
var _ exporters.CommentLister = (*comments.Repository)(nil)
var _ exporters.CatalogExporter = (*exporters.MarkdownCatalogExporter)(nil)

// =============================================================================
// Services
// =============================================================================

var _ http.AuthorLister = (*services.AuthorService)(nil)
var _ http.GenreLister = (*services.GenreService)(nil)
var _ http.BookService = (*services.BookService)(nil)
var _ http.CommentService = (*services.CommentService)(nil)

var _ shell.AuthorLister = (*services.AuthorService)(nil)
var _ shell.GenreLister = (*services.GenreService)(nil)
var _ shell.BookCatalog = (*services.BookService)(nil)
var _ shell.CommentCatalog = (*services.CommentService)(nil)

// =============================================================================
// Quiz
// =============================================================================

var _ quiz.QuestionSource = (*questions.CSVReader)(nil)
var _ http.QuestionSource = (*questions.CSVReader)(nil)
var _ shell.QuizRunner = (*quiz.Runner)(nil)

var _ console.IOService = (*console.StreamsIOService)(nil)
var _ console.LocalizedIO = (*console.LocalizedIOService)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

var _ tasks.Enqueuer = (*tasks.Client)(nil)
var _ http.TaskQueue = (*tasks.Client)(nil)
var _ http.ExportSchedule = (*scheduler.ExportScheduler)(nil)

// =============================================================================
// Audit
// =============================================================================

var _ audit.Store = (*auditRepo.Repository)(nil)
