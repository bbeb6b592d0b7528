package books

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     dbPath,
		Seed:     true,
		LogLevel: "silent",
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db.DB), db.DB, cleanup
}

func genreNames(book *entities.Book) []string {
	names := make([]string, 0, len(book.Genres))
	for _, g := range book.Genres {
		names = append(names, g.Name)
	}
	return names
}

func TestRepository_FindByID(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.FindByID(1)

	require.NoError(t, err)
	assert.Equal(t, "BookTitle_1", book.Title)
	assert.Equal(t, "Author_1", book.Author.FullName)
	assert.Equal(t, []string{"Genre_1", "Genre_2"}, genreNames(book))
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.FindByID(42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_FindAll(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	books, err := repo.FindAll()

	require.NoError(t, err)
	require.Len(t, books, 3)
	for i, book := range books {
		assert.Equal(t, uint(i+1), book.ID)
		assert.NotEmpty(t, book.Author.FullName)
		assert.Len(t, book.Genres, 2)
	}
	assert.Equal(t, []string{"Genre_5", "Genre_6"}, genreNames(&books[2]))
}

func TestRepository_Save_Insert(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{
		Title:    "New Book",
		AuthorID: 2,
		Genres:   []entities.Genre{{ID: 6}, {ID: 1}},
	}

	require.NoError(t, repo.Save(book))
	assert.NotZero(t, book.ID)

	saved, err := repo.FindByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Book", saved.Title)
	assert.Equal(t, "Author_2", saved.Author.FullName)
	assert.Equal(t, []uint{1, 6}, saved.GenreIDs())
}

func TestRepository_Save_DoesNotTouchGenreRows(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Title: "T", AuthorID: 1, Genres: []entities.Genre{{ID: 3, Name: "renamed"}}}
	require.NoError(t, repo.Save(book))

	var genre entities.Genre
	require.NoError(t, db.First(&genre, 3).Error)
	assert.Equal(t, "Genre_3", genre.Name)
}

func TestRepository_Save_Update(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{
		ID:       1,
		Title:    "Updated",
		AuthorID: 3,
		Genres:   []entities.Genre{{ID: 4}, {ID: 5}},
	}

	require.NoError(t, repo.Save(book))

	saved, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Updated", saved.Title)
	assert.Equal(t, "Author_3", saved.Author.FullName)
	assert.Equal(t, []uint{4, 5}, saved.GenreIDs())
}

func TestRepository_Save_UpdateMissing(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Save(&entities.Book{ID: 99, Title: "x", AuthorID: 1, Genres: []entities.Genre{{ID: 1}}})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteByID(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.DeleteByID(1))

	exists, err := repo.Exists(1)
	require.NoError(t, err)
	assert.False(t, exists)

	var links, comments int64
	db.Table("books_genres").Where("book_id = ?", 1).Count(&links)
	db.Model(&entities.Comment{}).Where("book_id = ?", 1).Count(&comments)
	assert.Zero(t, links)
	assert.Zero(t, comments)

	// other books keep their links
	book, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Len(t, book.Genres, 2)
}

func TestRepository_DeleteByID_Missing(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, repo.DeleteByID(100))
}
