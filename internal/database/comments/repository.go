// Package comments provides database operations for book comments.
package comments

import (
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID retrieves a comment with its book, the book's author and genres.
func (r *Repository) FindByID(id uint) (*entities.Comment, error) {
	var comment entities.Comment
	query := r.db.Preload("Book.Author").Preload("Book.Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("genres.id ASC")
	})
	if err := query.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *Repository) FindAllByBookID(bookID uint) ([]entities.Comment, error) {
	var comments []entities.Comment
	err := r.db.Where("book_id = ?", bookID).Order("id ASC").Find(&comments).Error
	return comments, err
}

// Save inserts a new comment or updates the text of an existing one.
func (r *Repository) Save(comment *entities.Comment) error {
	if comment.ID == 0 {
		return r.db.Omit("Book").Create(comment).Error
	}
	result := r.db.Model(&entities.Comment{ID: comment.ID}).Update("text", comment.Text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DeleteByID(id uint) error {
	return r.db.Delete(&entities.Comment{}, id).Error
}
