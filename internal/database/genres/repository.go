// Package genres provides database operations for catalog genres.
package genres

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

func (r *Repository) FindAll() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("id ASC").Find(&genres).Error
	return genres, err
}

// FindAllByIDs returns the genres that exist among ids. Missing ids are
// silently skipped; callers compare lengths to detect them.
func (r *Repository) FindAllByIDs(ids []uint) ([]entities.Genre, error) {
	if len(ids) == 0 {
		return []entities.Genre{}, nil
	}
	var genres []entities.Genre
	err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&genres).Error
	return genres, err
}
