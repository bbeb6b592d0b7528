// Package books provides database operations for catalog books.
//
// Books are always loaded together with their author and genres through
// gorm preloads, one query per association.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.FindByID(1)
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withRelations() *gorm.DB {
	return r.db.Preload("Author").Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("genres.id ASC")
	})
}

// FindByID retrieves a book with its author and genres.
func (r *Repository) FindByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.withRelations().First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// FindAll retrieves every book with its author and genres, ordered by id.
func (r *Repository) FindAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.withRelations().Order("id ASC").Find(&books).Error
	return books, err
}

// Exists reports whether a book with the given id is stored.
func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save inserts a new book (ID == 0) or updates title, author and the full
// genre set of an existing one. Author and genre rows are never written.
func (r *Repository) Save(book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if book.ID == 0 {
			return tx.Omit("Author", "Genres.*").Create(book).Error
		}

		result := tx.Model(&entities.Book{ID: book.ID}).Updates(map[string]interface{}{
			"title":     book.Title,
			"author_id": book.AuthorID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&entities.Book{ID: book.ID}).Omit("Genres.*").Association("Genres").Replace(book.Genres)
	})
}

// DeleteByID removes the book with its comments and genre links.
// Deleting a missing book is not an error.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM books_genres WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
}
