package services

import "github.com/mrlokans/library/internal/entities"

// AuthorRepository provides read-only access to authors.
type AuthorRepository interface {
	FindAll() ([]entities.Author, error)
	FindByID(id uint) (*entities.Author, error)
}

// GenreRepository provides read-only access to genres.
type GenreRepository interface {
	FindAll() ([]entities.Genre, error)
	FindAllByIDs(ids []uint) ([]entities.Genre, error)
}

// BookRepository persists books together with their genre links.
type BookRepository interface {
	FindByID(id uint) (*entities.Book, error)
	FindAll() ([]entities.Book, error)
	Exists(id uint) (bool, error)
	Save(book *entities.Book) error
	DeleteByID(id uint) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	FindByID(id uint) (*entities.Comment, error)
	FindAllByBookID(bookID uint) ([]entities.Comment, error)
	Save(comment *entities.Comment) error
	DeleteByID(id uint) error
}
