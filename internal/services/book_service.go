package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrlokans/library/internal/entities"
)

type BookService struct {
	authors AuthorRepository
	genres  GenreRepository
	books   BookRepository
}

func NewBookService(authors AuthorRepository, genres GenreRepository, books BookRepository) *BookService {
	return &BookService{authors: authors, genres: genres, books: books}
}

func (s *BookService) FindByID(id uint) (*entities.Book, error) {
	book, err := s.books.FindByID(id)
	if err != nil {
		return nil, translate(err, "book", id)
	}
	return book, nil
}

func (s *BookService) FindAll() ([]entities.Book, error) {
	return s.books.FindAll()
}

// Insert creates a book and returns it reloaded with author and genres.
func (s *BookService) Insert(title string, authorID uint, genreIDs []uint) (*entities.Book, error) {
	return s.save(0, title, authorID, genreIDs)
}

// Update replaces title, author and the whole genre set of an existing book.
func (s *BookService) Update(id uint, title string, authorID uint, genreIDs []uint) (*entities.Book, error) {
	exists, err := s.books.Exists(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check book %d: %w", id, err)
	}
	if !exists {
		return nil, notFound("book", id)
	}
	return s.save(id, title, authorID, genreIDs)
}

// DeleteByID removes the book, its genre links and comments. Missing books are ignored.
func (s *BookService) DeleteByID(id uint) error {
	return s.books.DeleteByID(id)
}

func (s *BookService) save(id uint, title string, authorID uint, genreIDs []uint) (*entities.Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	ids := uniqueIDs(genreIDs)
	if len(ids) == 0 {
		return nil, ErrGenresRequired
	}

	author, err := s.authors.FindByID(authorID)
	if err != nil {
		return nil, translate(err, "author", authorID)
	}

	genres, err := s.genres.FindAllByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}
	if len(genres) != len(ids) {
		return nil, notFound("genres", ids)
	}

	book := &entities.Book{
		ID:       id,
		Title:    title,
		AuthorID: author.ID,
		Genres:   genres,
	}
	if err := s.books.Save(book); err != nil {
		return nil, translate(err, "book", id)
	}

	return s.FindByID(book.ID)
}

// uniqueIDs returns ids without duplicates in ascending order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
