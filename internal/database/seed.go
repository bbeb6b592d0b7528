package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/logger"
)

// Seed inserts the demo catalog: three authors, six genres, three books with
// two genres each and a couple of comments per book. It does nothing when
// authors already exist.
func (d *Database) Seed() error {
	var count int64
	if err := d.DB.Model(&entities.Author{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return d.DB.Transaction(func(tx *gorm.DB) error {
		authors := make([]entities.Author, 3)
		for i := range authors {
			authors[i] = entities.Author{FullName: fmt.Sprintf("Author_%d", i+1)}
		}
		if err := tx.Create(&authors).Error; err != nil {
			return err
		}

		genres := make([]entities.Genre, 6)
		for i := range genres {
			genres[i] = entities.Genre{Name: fmt.Sprintf("Genre_%d", i+1)}
		}
		if err := tx.Create(&genres).Error; err != nil {
			return err
		}

		for i := 0; i < 3; i++ {
			book := entities.Book{
				Title:    fmt.Sprintf("BookTitle_%d", i+1),
				AuthorID: authors[i].ID,
				Genres:   []entities.Genre{genres[2*i], genres[2*i+1]},
			}
			if err := tx.Omit("Author", "Genres.*").Create(&book).Error; err != nil {
				return err
			}

			comments := []entities.Comment{
				{Text: fmt.Sprintf("Comment_%d_1", i+1), BookID: book.ID},
				{Text: fmt.Sprintf("Comment_%d_2", i+1), BookID: book.ID},
			}
			if err := tx.Create(&comments).Error; err != nil {
				return err
			}
		}

		logger.L().Info("seeded demo catalog",
			zap.Int("authors", len(authors)),
			zap.Int("genres", len(genres)))
		return nil
	})
}
