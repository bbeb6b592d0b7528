// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorRepository, GenreRepository: read-only catalog lookups (internal/services/interfaces.go)
//   - BookRepository: books with their genre links (internal/services/interfaces.go)
//   - CommentRepository: comments of a book (internal/services/interfaces.go)
//   - ResultStore: recorded quiz attempts (internal/http/quiz.go)
//
// ## Consumer Interfaces
//
//   - BookService, CommentService: catalog endpoints (internal/http/books.go, internal/http/comments.go)
//   - BookCatalog, CommentCatalog: shell catalog commands (internal/shell/shell.go)
//   - QuestionSource: questions of a test (internal/quiz/test_service.go)
//   - Recorder: stores a finished attempt (internal/quiz/runner.go)
//   - BookLister, CommentLister: catalog export input (internal/exporters/catalog.go)
//   - TaskQueue, Enqueuer: background task submission (internal/http/tasks.go, internal/tasks/export_catalog.go)
//
// ## Console Interfaces
//
//   - IOService: line based input and output (internal/console/io.go)
//   - LocalizedIO: IOService plus message lookup (internal/console/localized_io.go)
//
// # Adding a New Question Source
//
// Questions are read from a CSV file by default. Another source only needs FindAll:
//
//	type DatabaseQuestions struct { db *gorm.DB }
//
//	func (q *DatabaseQuestions) FindAll() ([]entities.Question, error)
//
//	var _ quiz.QuestionSource = (*DatabaseQuestions)(nil)
//
// Wire it in entrypoint/app.go in place of questions.NewCSVReader.
//
// # Adding a New Export Format
//
//  1. Implement exporters.CatalogExporter:
//
//     type JSONCatalogExporter struct { OutputDir string }
//
//     func (e *JSONCatalogExporter) Export(entries []exporters.CatalogEntry) (exporters.ExportResult, error)
//
//  2. Pass it to exporters.ExportCatalog or tasks.ExportCatalogProcessor.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
