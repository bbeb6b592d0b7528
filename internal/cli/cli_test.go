package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/results"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/exporters"
)

func testConfig(t *testing.T) (*config.Config, func()) {
	t.Helper()
	dbPath := "./test_cli_" + t.Name() + ".db"

	cfg := &config.Config{
		Database: config.Database{Driver: config.DriverSQLite, Path: dbPath, LogLevel: "silent"},
		Quiz: config.Quiz{
			FileName:                "../../data/questions.csv",
			RightAnswersCountToPass: 3,
			Locale:                  "en-US",
		},
		Export: config.Export{Dir: t.TempDir()},
	}

	cleanup := func() {
		os.Remove(dbPath)
	}
	return cfg, cleanup
}

func findAttempts(t *testing.T, cfg *config.Config, firstName, lastName string) int {
	t.Helper()
	db, err := database.NewDatabase(cfg.Database)
	require.NoError(t, err)
	defer db.Close()

	attempts, err := results.NewRepository(db.DB).FindByStudent(firstName, lastName)
	require.NoError(t, err)
	return len(attempts)
}

func TestShellCommand_ParseFlags(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	cmd := NewShellCommand(cfg)
	err := cmd.ParseFlags([]string{"-db", "other.db", "-locale", "ru-RU", "-pass", "2", "-seed"})
	require.NoError(t, err)

	assert.Equal(t, "other.db", cfg.Database.Path)
	assert.Equal(t, "ru-RU", cfg.Quiz.Locale)
	assert.Equal(t, 2, cfg.Quiz.RightAnswersCountToPass)
	assert.True(t, cmd.Seed)
}

func TestShellCommand_ParseFlags_QuestionsOverridesLocaleFiles(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()
	cfg.Quiz.LocaleFiles = map[string]string{"ru-RU": "data/questions_ru_RU.csv"}

	cmd := NewShellCommand(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"-locale", "ru-RU", "-questions", "mine.csv"}))

	assert.Equal(t, "mine.csv", cfg.Quiz.QuestionsFile("ru-RU"))
}

func TestShellCommand_ParseFlags_KeepsLocaleFilesWithoutQuestions(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()
	cfg.Quiz.LocaleFiles = map[string]string{"ru-RU": "data/questions_ru_RU.csv"}

	cmd := NewShellCommand(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"-locale", "ru-RU"}))

	assert.Equal(t, "data/questions_ru_RU.csv", cfg.Quiz.QuestionsFile("ru-RU"))
}

func TestQuizCommand_ParseFlags_QuestionsOverridesLocaleFiles(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()
	cfg.Quiz.LocaleFiles = map[string]string{"ru-RU": "data/questions_ru_RU.csv"}

	cmd := NewQuizCommand(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"-questions", "mine.csv", "-locale", "ru-RU"}))

	assert.Equal(t, "mine.csv", cfg.Quiz.QuestionsFile("ru-RU"))
}

func TestShellCommand_ParseFlags_UnknownFlag(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	cmd := NewShellCommand(cfg)
	assert.Error(t, cmd.ParseFlags([]string{"-nope"}))
}

func TestShellCommand_LoginRunAndBrowse(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	input := strings.Join([]string{
		"login --first-name Ada --last-name Lovelace",
		"run",
		"1", "1", "3",
		"ab",
		"exit",
	}, "\n") + "\n"
	out := &bytes.Buffer{}

	cmd := NewShellCommand(cfg)
	cmd.In = strings.NewReader(input)
	cmd.Out = out
	cmd.Seed = true

	require.NoError(t, cmd.RunContext(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "Congratulations! You passed test!")
	assert.Contains(t, output, "BookTitle_1")
	assert.Equal(t, 1, findAttempts(t, cfg, "Ada", "Lovelace"))
}

func TestShellCommand_CancelledContext(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	cmd := NewShellCommand(cfg)
	cmd.In = strings.NewReader("help\n")
	cmd.Out = &bytes.Buffer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, cmd.RunContext(ctx), context.Canceled)
}

func TestQuizCommand_Run(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	out := &bytes.Buffer{}
	cmd := NewQuizCommand(cfg)
	cmd.In = strings.NewReader("Grace\nHopper\n2\n1\n3\n")
	cmd.Out = out

	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Student: Grace Hopper")
	assert.Contains(t, out.String(), "Sorry. You fail test")
	assert.Equal(t, 1, findAttempts(t, cfg, "Grace", "Hopper"))
}

func TestQuizCommand_MissingQuestions(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	cfg.Quiz.FileName = "does_not_exist.csv"
	cmd := NewQuizCommand(cfg)
	cmd.In = strings.NewReader("Grace\nHopper\n")
	cmd.Out = &bytes.Buffer{}

	assert.Error(t, cmd.Run())
}

func TestExportCommand_ParseFlags_RequiresOutput(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	cfg.Export.Dir = ""
	cmd := NewExportCommand(cfg)
	err := cmd.ParseFlags([]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-output")
}

func TestExportCommand_Run(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	seed := NewSeedCommand(cfg)
	seed.Out = &bytes.Buffer{}
	require.NoError(t, seed.Run())

	cfg.Audit.Enabled = true
	outDir := t.TempDir()
	out := &bytes.Buffer{}
	cmd := NewExportCommand(cfg)
	cmd.Out = out
	require.NoError(t, cmd.ParseFlags([]string{"-output", outDir}))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Books exported: 3")
	assert.Contains(t, out.String(), "Comments exported: 6")
	assert.FileExists(t, filepath.Join(outDir, exporters.IndexFileName))
	assert.FileExists(t, filepath.Join(outDir, "BookTitle_1.md"))

	db, err := database.NewDatabase(cfg.Database)
	require.NoError(t, err)
	defer db.Close()
	var event entities.AuditEvent
	require.NoError(t, db.DB.Where("action = ?", "catalog_export").First(&event).Error)
	assert.Equal(t, entities.AuditStatusSuccess, event.Status)
	assert.Equal(t, "cli", event.Actor)
}

func TestSeedCommand_Run(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	out := &bytes.Buffer{}
	cmd := NewSeedCommand(cfg)
	cmd.Out = out
	require.NoError(t, cmd.ParseFlags([]string{}))
	require.NoError(t, cmd.Run())
	assert.Equal(t, "Catalog ready: 3 authors, 6 genres, 3 books\n", out.String())

	// a second run leaves the catalog as it is
	out.Reset()
	require.NoError(t, cmd.Run())
	assert.Equal(t, "Catalog ready: 3 authors, 6 genres, 3 books\n", out.String())
}

// syncBuffer lets the test read output while the shell is still writing.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestShellCommand_CancelledWhileWaitingForInput(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()

	pr, pw := io.Pipe()
	defer pw.Close()
	out := &syncBuffer{}

	cmd := NewShellCommand(cfg)
	cmd.In = pr
	cmd.Out = out

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.RunContext(ctx)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Type 'help' for the list of commands.")
	}, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not stop after cancellation")
	}
}

func TestShellCommand_LocalizedBanner(t *testing.T) {
	cfg, cleanup := testConfig(t)
	defer cleanup()
	cfg.Quiz.Locale = "ru-RU"

	out := &bytes.Buffer{}
	cmd := NewShellCommand(cfg)
	cmd.In = strings.NewReader("exit\n")
	cmd.Out = out

	require.NoError(t, cmd.RunContext(context.Background()))

	assert.Contains(t, out.String(), "Введите 'help', чтобы увидеть список команд.")
	assert.NotContains(t, out.String(), "Type 'help'")
}
