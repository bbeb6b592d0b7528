package questions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReader_FindAll_ShippedFile(t *testing.T) {
	reader := NewCSVReader(filepath.Join("..", "..", "data", "questions.csv"))

	questions, err := reader.FindAll()

	require.NoError(t, err)
	require.Len(t, questions, 3)

	first := questions[0]
	assert.Equal(t, "Is there life on Mars?", first.Text)
	require.Len(t, first.Answers, 3)
	assert.True(t, first.Answers[0].IsCorrect)
	assert.Equal(t, "Science doesn't know this yet", first.Answers[0].Text)
	assert.False(t, first.Answers[1].IsCorrect)
	assert.False(t, first.Answers[2].IsCorrect)

	assert.Equal(t, "How should resources be loaded form jar in Java?", questions[1].Text)
	assert.Equal(t, 0, questions[1].CorrectAnswerIndex())

	third := questions[2]
	assert.Equal(t, "Which option is a good way to handle the exception?", third.Text)
	require.Len(t, third.Answers, 4)
	assert.Equal(t, 2, third.CorrectAnswerIndex())
	assert.Equal(t, "Rethrow with wrapping in business exception (for example, QuestionReadException)", third.Answers[2].Text)
}

func TestCSVReader_FindAll_RussianFile(t *testing.T) {
	reader := NewCSVReader(filepath.Join("..", "..", "data", "questions_ru_RU.csv"))

	questions, err := reader.FindAll()

	require.NoError(t, err)
	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.NotEmpty(t, q.Text)
		assert.NotEqual(t, -1, q.CorrectAnswerIndex())
	}
}

func TestCSVReader_FindAll_MissingFile(t *testing.T) {
	reader := NewCSVReader("non-existent-file.csv")

	_, err := reader.FindAll()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuestionRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "non-existent-file.csv", readErr.File)
}

func TestCSVReader_FindAll_Consistent(t *testing.T) {
	reader := NewCSVReader(filepath.Join("..", "..", "data", "questions.csv"))

	first, err := reader.FindAll()
	require.NoError(t, err)
	second, err := reader.FindAll()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantErr   bool
	}{
		{name: "header only", input: "q;a\n", wantCount: 0},
		{name: "empty input", input: "", wantCount: 0},
		{name: "skips blank lines", input: "q;a\n\n2+2?;4%true|5%false\n\n", wantCount: 1},
		{name: "percent inside answer", input: "q;a\nGrowth?;100% sure%true|no%false\n", wantCount: 1},
		{name: "missing flag", input: "q;a\nQ?;answer\n", wantErr: true},
		{name: "bad flag", input: "q;a\nQ?;answer%maybe\n", wantErr: true},
		{name: "missing answers", input: "q;a\nQ?\n", wantErr: true},
		{name: "empty question", input: "q;a\n;x%true\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrQuestionRead)
				return
			}
			require.NoError(t, err)
			assert.Len(t, questions, tt.wantCount)
		})
	}
}

func TestParse_ReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("q;a\nOk?;yes%true\nBroken?;yes\n"))

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, 3, readErr.Line)
}

func TestParse_PercentInsideAnswer(t *testing.T) {
	questions, err := Parse(strings.NewReader("q;a\nGrowth?;100% sure%true|no%false\n"))

	require.NoError(t, err)
	assert.Equal(t, "100% sure", questions[0].Answers[0].Text)
	assert.True(t, questions[0].Answers[0].IsCorrect)
}

func TestCSVReader_FindAll_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("q;a\nQ?;a%nope\n"), 0o644))

	_, err := NewCSVReader(path).FindAll()

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, path, readErr.File)
	assert.Equal(t, 2, readErr.Line)
}
