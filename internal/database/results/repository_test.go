package results

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_results_" + t.Name() + ".db"

	db, err := database.NewDatabase(config.Database{Path: dbPath, LogLevel: "silent"})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db.DB), cleanup
}

func TestRepository_RecordAndFind(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Record(&entities.QuizAttempt{FirstName: "Ann", LastName: "Lee", RightAnswers: 3, TotalQuestions: 3, Passed: true}))
	require.NoError(t, repo.Record(&entities.QuizAttempt{FirstName: "Bob", LastName: "Ray", RightAnswers: 1, TotalQuestions: 3}))
	require.NoError(t, repo.Record(&entities.QuizAttempt{FirstName: "Ann", LastName: "Lee", RightAnswers: 2, TotalQuestions: 3}))

	all, err := repo.FindRecent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	recent, err := repo.FindRecent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	ann, err := repo.FindByStudent("Ann", "Lee")
	require.NoError(t, err)
	assert.Len(t, ann, 2)
}

func TestRepository_Stats(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	empty, err := repo.Stats()
	require.NoError(t, err)
	assert.Zero(t, empty.TotalAttempts)
	assert.Zero(t, empty.AverageRightCount)

	require.NoError(t, repo.Record(&entities.QuizAttempt{FirstName: "A", LastName: "B", RightAnswers: 3, TotalQuestions: 3, Passed: true}))
	require.NoError(t, repo.Record(&entities.QuizAttempt{FirstName: "C", LastName: "D", RightAnswers: 1, TotalQuestions: 3}))

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalAttempts)
	assert.Equal(t, int64(1), stats.PassedAttempts)
	assert.InDelta(t, 2.0, stats.AverageRightCount, 0.001)
}
