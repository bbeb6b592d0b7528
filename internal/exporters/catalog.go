package exporters

import (
	"fmt"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/monitoring"
)

type BookLister interface {
	FindAll() ([]entities.Book, error)
}

type CommentLister interface {
	FindAllByBookID(bookID uint) ([]entities.Comment, error)
}

// LoadCatalog reads every book with its author, genres and comments.
func LoadCatalog(books BookLister, comments CommentLister) ([]CatalogEntry, error) {
	all, err := books.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	entries := make([]CatalogEntry, 0, len(all))
	for _, book := range all {
		bookComments, err := comments.FindAllByBookID(book.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load comments for book %d: %w", book.ID, err)
		}
		entries = append(entries, CatalogEntry{Book: book, Comments: bookComments})
	}
	return entries, nil
}

// ExportCatalog loads the whole catalog and hands it to the exporter.
func ExportCatalog(books BookLister, comments CommentLister, exporter CatalogExporter) (result ExportResult, err error) {
	defer func() { monitoring.ObserveExport(err) }()

	entries, err := LoadCatalog(books, comments)
	if err != nil {
		return ExportResult{}, err
	}
	return exporter.Export(entries)
}
