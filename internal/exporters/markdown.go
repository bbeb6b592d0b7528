package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/logger"
	"github.com/mrlokans/library/internal/utils"
	"go.uber.org/zap"
)

const IndexFileName = "index.md"

// MarkdownCatalogExporter writes one markdown note per book plus an index.
type MarkdownCatalogExporter struct {
	OutputDir string
	now       func() time.Time
}

func NewMarkdownCatalogExporter(outputDir string) *MarkdownCatalogExporter {
	return &MarkdownCatalogExporter{
		OutputDir: outputDir,
		now:       time.Now,
	}
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

// GenerateMarkdown renders a single catalog entry.
func GenerateMarkdown(entry CatalogEntry, exportedAt time.Time) string {
	var builder strings.Builder
	book := entry.Book

	genres := make([]string, 0, len(book.Genres))
	for _, g := range book.Genres {
		genres = append(genres, quote(g.Name))
	}

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "id: %d\n", book.ID)
	fmt.Fprintf(&builder, "title: %s\n", quote(book.Title))
	fmt.Fprintf(&builder, "author: %s\n", quote(book.Author.FullName))
	fmt.Fprintf(&builder, "genres: [%s]\n", strings.Join(genres, ", "))
	fmt.Fprintf(&builder, "content_type: catalog_book\n")
	fmt.Fprintf(&builder, "exported_at: %s\n", exportedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", book.Title)
	fmt.Fprintf(&builder, "## Comments\n\n")

	if len(entry.Comments) == 0 {
		fmt.Fprintf(&builder, "_No comments yet._\n")
	}
	for _, comment := range entry.Comments {
		if !comment.CreatedAt.IsZero() {
			fmt.Fprintf(&builder, "### %s\n\n", comment.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(&builder, "> %s\n\n", strings.ReplaceAll(comment.Text, "\n", "\n> "))
	}

	return builder.String()
}

func (e *MarkdownCatalogExporter) fileNameFor(book entities.Book, used map[string]int) string {
	name := utils.SanitizeFilename(book.Title)
	used[name]++
	if used[name] > 1 || strings.EqualFold(name+".md", IndexFileName) {
		name = fmt.Sprintf("%s (%d)", name, book.ID)
	}
	return name + ".md"
}

func (e *MarkdownCatalogExporter) writeIndex(entries []CatalogEntry, files map[uint]string) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# Catalog\n\n")
	for _, entry := range entries {
		file, ok := files[entry.Book.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&builder, "- [%s](<%s>) by %s\n", entry.Book.Title, file, entry.Book.Author.FullName)
	}
	return os.WriteFile(filepath.Join(e.OutputDir, IndexFileName), []byte(builder.String()), 0644)
}

// Export writes the entries under OutputDir. A book that cannot be written
// is counted as failed and the export continues with the next one.
func (e *MarkdownCatalogExporter) Export(entries []CatalogEntry) (ExportResult, error) {
	result := ExportResult{OutputDir: e.OutputDir}
	log := logger.L()

	if e.OutputDir == "" {
		return result, fmt.Errorf("export directory is not configured")
	}
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return result, fmt.Errorf("failed to create export directory: %w", err)
	}

	exportedAt := e.now()
	used := make(map[string]int)
	files := make(map[uint]string, len(entries))

	for _, entry := range entries {
		file := e.fileNameFor(entry.Book, used)
		content := GenerateMarkdown(entry, exportedAt)
		if err := os.WriteFile(filepath.Join(e.OutputDir, file), []byte(content), 0644); err != nil {
			log.Warn("failed to export book", zap.Uint("book_id", entry.Book.ID), zap.Error(err))
			result.BooksFailed++
			continue
		}
		files[entry.Book.ID] = file
		result.BooksProcessed++
		result.CommentsProcessed += len(entry.Comments)
	}

	if err := e.writeIndex(entries, files); err != nil {
		return result, fmt.Errorf("failed to write index: %w", err)
	}

	log.Info("catalog export completed",
		zap.String("dir", e.OutputDir),
		zap.Int("books", result.BooksProcessed),
		zap.Int("comments", result.CommentsProcessed),
		zap.Int("failed", result.BooksFailed))

	return result, nil
}

var _ CatalogExporter = (*MarkdownCatalogExporter)(nil)
