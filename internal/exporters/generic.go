package exporters

import "github.com/mrlokans/library/internal/entities"

// CatalogEntry is a book together with the comments left on it.
type CatalogEntry struct {
	Book     entities.Book
	Comments []entities.Comment
}

type CatalogExporter interface {
	Export(entries []CatalogEntry) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed    int    `json:"books_processed"`
	BooksFailed       int    `json:"books_failed"`
	CommentsProcessed int    `json:"comments_processed"`
	OutputDir         string `json:"output_dir"`
}
