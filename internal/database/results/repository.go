// Package results stores finished quiz attempts.
package results

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

// Stats summarizes all recorded attempts.
type Stats struct {
	TotalAttempts     int64   `json:"total_attempts"`
	PassedAttempts    int64   `json:"passed_attempts"`
	AverageRightCount float64 `json:"average_right_answers"`
}

func (r *Repository) Record(attempt *entities.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

// FindRecent returns at most limit attempts, newest first. A non-positive limit returns all.
func (r *Repository) FindRecent(limit int) ([]entities.QuizAttempt, error) {
	var attempts []entities.QuizAttempt
	query := r.db.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&attempts).Error
	return attempts, err
}

// FindByStudent returns the attempts of one student, newest first.
func (r *Repository) FindByStudent(firstName, lastName string) ([]entities.QuizAttempt, error) {
	var attempts []entities.QuizAttempt
	err := r.db.Where("first_name = ? AND last_name = ?", firstName, lastName).
		Order("created_at DESC, id DESC").Find(&attempts).Error
	return attempts, err
}

func (r *Repository) Stats() (Stats, error) {
	var stats Stats
	if err := r.db.Model(&entities.QuizAttempt{}).Count(&stats.TotalAttempts).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&entities.QuizAttempt{}).Where("passed = ?", true).Count(&stats.PassedAttempts).Error; err != nil {
		return stats, err
	}
	if stats.TotalAttempts == 0 {
		return stats, nil
	}
	var avg struct{ Value float64 }
	err := r.db.Model(&entities.QuizAttempt{}).Select("AVG(right_answers) AS value").Scan(&avg).Error
	stats.AverageRightCount = avg.Value
	return stats, err
}
