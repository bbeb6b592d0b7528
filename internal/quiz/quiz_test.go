package quiz

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/questions"
)

type mockQuestionSource struct {
	questions []entities.Question
	err       error
	calls     int
}

func (m *mockQuestionSource) FindAll() ([]entities.Question, error) {
	m.calls++
	return m.questions, m.err
}

type mockRecorder struct {
	attempts []*entities.QuizAttempt
	err      error
}

func (m *mockRecorder) Record(attempt *entities.QuizAttempt) error {
	if m.err != nil {
		return m.err
	}
	m.attempts = append(m.attempts, attempt)
	return nil
}

func newTestIO(input string) (*console.LocalizedIOService, *bytes.Buffer) {
	out := &bytes.Buffer{}
	streams := console.NewStreamsIOService(strings.NewReader(input), out)
	return console.NewLocalizedIOService(streams, console.NewLocalizer("en-US")), out
}

func sampleQuestions() []entities.Question {
	return []entities.Question{
		{Text: "2+2?", Answers: []entities.Answer{{Text: "3"}, {Text: "4", IsCorrect: true}}},
		{Text: "Capital of France?", Answers: []entities.Answer{{Text: "Paris", IsCorrect: true}, {Text: "Rome"}, {Text: "Oslo"}}},
		{Text: "Sky color?", Answers: []entities.Answer{{Text: "Green"}, {Text: "Blue", IsCorrect: true}}},
	}
}

const prompt = "Please answer the questions below"

func TestTestService_ExecuteTestFor(t *testing.T) {
	student := entities.Student{FirstName: "John", LastName: "Doe"}

	t.Run("asks one prompt per question and counts right answers", func(t *testing.T) {
		io, out := newTestIO("2\n2\n2\n")
		svc := NewTestService(io, &mockQuestionSource{questions: sampleQuestions()})

		result, err := svc.ExecuteTestFor(student)

		require.NoError(t, err)
		assert.Len(t, result.AnsweredQuestions, 3)
		assert.Equal(t, 2, result.RightAnswersCount)
		assert.Equal(t, student, result.Student)
		// header plus one prompt per question
		assert.Equal(t, 4, strings.Count(out.String(), prompt))
		assert.Contains(t, out.String(), "1. 2+2?\n  1) 3\n  2) 4\n")
		assert.Contains(t, out.String(), "  3) Oslo\n")
	})

	t.Run("empty question list", func(t *testing.T) {
		io, out := newTestIO("")
		svc := NewTestService(io, &mockQuestionSource{questions: []entities.Question{}})

		result, err := svc.ExecuteTestFor(student)

		require.NoError(t, err)
		assert.Zero(t, result.RightAnswersCount)
		assert.Empty(t, result.AnsweredQuestions)
		assert.Equal(t, "\n"+prompt+"\n", out.String())
	})

	t.Run("retries invalid answers", func(t *testing.T) {
		io, out := newTestIO("9\nfoo\n2\n1\n2\n")
		svc := NewTestService(io, &mockQuestionSource{questions: sampleQuestions()})

		result, err := svc.ExecuteTestFor(student)

		require.NoError(t, err)
		assert.Equal(t, 3, result.RightAnswersCount)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid answer"))
	})

	t.Run("propagates question read errors", func(t *testing.T) {
		io, _ := newTestIO("")
		readErr := &questions.ReadError{File: "missing.csv", Err: errors.New("no such file")}
		svc := NewTestService(io, &mockQuestionSource{err: readErr})

		_, err := svc.ExecuteTestFor(student)

		assert.Same(t, readErr, err)
		assert.ErrorIs(t, err, questions.ErrQuestionRead)
	})

	t.Run("fails on exhausted input", func(t *testing.T) {
		io, _ := newTestIO("1\n")
		svc := NewTestService(io, &mockQuestionSource{questions: sampleQuestions()})

		_, err := svc.ExecuteTestFor(student)

		assert.Error(t, err)
	})

	t.Run("works with the shipped question file", func(t *testing.T) {
		io, _ := newTestIO("1\n1\n3\n")
		svc := NewTestService(io, questions.NewCSVReader("../../data/questions.csv"))

		result, err := svc.ExecuteTestFor(student)

		require.NoError(t, err)
		assert.Equal(t, 3, result.RightAnswersCount)
	})
}

func TestTestService_MissingFile(t *testing.T) {
	io, _ := newTestIO("")
	svc := NewTestService(io, questions.NewCSVReader("non-existent-file.csv"))

	_, err := svc.ExecuteTestFor(entities.Student{})

	assert.ErrorIs(t, err, questions.ErrQuestionRead)
}

func TestStudentService_DetermineCurrentStudent(t *testing.T) {
	io, out := newTestIO(" Jane \nSmith\n")

	student, err := NewStudentService(io).DetermineCurrentStudent()

	require.NoError(t, err)
	assert.Equal(t, entities.Student{FirstName: "Jane", LastName: "Smith"}, student)
	assert.Equal(t, "Please input your first name\nPlease input your last name\n", out.String())

	io, _ = newTestIO("OnlyFirst\n")
	_, err = NewStudentService(io).DetermineCurrentStudent()
	assert.Error(t, err)
}

func TestResultService_ShowResult(t *testing.T) {
	result := entities.NewTestResult(entities.Student{FirstName: "John", LastName: "Doe"})
	for _, q := range sampleQuestions() {
		result.ApplyAnswer(q, true)
	}

	t.Run("passed", func(t *testing.T) {
		io, out := newTestIO("")
		NewResultService(io, 3).ShowResult(result)

		assert.Contains(t, out.String(), "Student: John Doe\n")
		assert.Contains(t, out.String(), "Answered questions count: 3\n")
		assert.Contains(t, out.String(), "Right answers count: 3\n")
		assert.Contains(t, out.String(), "Congratulations! You passed test!")
	})

	t.Run("failed", func(t *testing.T) {
		io, out := newTestIO("")
		NewResultService(io, 4).ShowResult(result)

		assert.Contains(t, out.String(), "Sorry. You fail test")
	})
}

func TestScoreAnswers(t *testing.T) {
	student := entities.Student{FirstName: "A", LastName: "B"}

	result, err := ScoreAnswers(student, sampleQuestions(), []int{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RightAnswersCount)
	assert.Len(t, result.AnsweredQuestions, 3)

	_, err = ScoreAnswers(student, sampleQuestions(), []int{1})
	assert.ErrorIs(t, err, ErrAnswerCountMismatch)

	_, err = ScoreAnswers(student, sampleQuestions(), []int{1, 4, 1})
	assert.ErrorIs(t, err, ErrAnswerOutOfRange)

	empty, err := ScoreAnswers(student, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.RightAnswersCount)
}

func newRunner(input string, recorder Recorder) (*Runner, *bytes.Buffer) {
	io, out := newTestIO(input)
	runner := NewRunner(
		NewStudentService(io),
		NewTestService(io, &mockQuestionSource{questions: sampleQuestions()}),
		NewResultService(io, 2),
		recorder,
		2,
	)
	return runner, out
}

func TestRunner_Run(t *testing.T) {
	recorder := &mockRecorder{}
	runner, out := newRunner("John\nDoe\n2\n1\n1\n", recorder)

	result, err := runner.Run()

	require.NoError(t, err)
	assert.Equal(t, 2, result.RightAnswersCount)
	assert.Contains(t, out.String(), "Congratulations! You passed test!")
	require.Len(t, recorder.attempts, 1)
	assert.Equal(t, "John", recorder.attempts[0].FirstName)
	assert.True(t, recorder.attempts[0].Passed)
	assert.Equal(t, 3, recorder.attempts[0].TotalQuestions)
}

func TestRunner_RunFor_WithoutRecorder(t *testing.T) {
	runner, _ := newRunner("1\n1\n1\n", nil)

	result, err := runner.RunFor(entities.Student{FirstName: "A", LastName: "B"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.RightAnswersCount)
}

func TestRunner_RecordError(t *testing.T) {
	runner, _ := newRunner("2\n1\n2\n", &mockRecorder{err: errors.New("db down")})

	result, err := runner.RunFor(entities.Student{FirstName: "A", LastName: "B"})

	require.Error(t, err)
	assert.NotNil(t, result)
	assert.Contains(t, err.Error(), "db down")
}

func TestRunner_StudentInputError(t *testing.T) {
	runner, _ := newRunner("", nil)

	_, err := runner.Run()

	assert.ErrorIs(t, err, io.EOF)
}

func TestRecordAttempt(t *testing.T) {
	result := entities.NewTestResult(entities.Student{FirstName: "Ada", LastName: "Lovelace"})
	for _, q := range sampleQuestions() {
		result.ApplyAnswer(q, true)
	}

	recorder := &mockRecorder{}
	attempt, err := RecordAttempt(recorder, result, 3)

	require.NoError(t, err)
	assert.True(t, attempt.Passed)
	assert.Equal(t, 3, attempt.RightAnswers)
	require.Len(t, recorder.attempts, 1)
	assert.Equal(t, "Lovelace", recorder.attempts[0].LastName)

	attempt, err = RecordAttempt(nil, result, 4)
	require.NoError(t, err)
	assert.False(t, attempt.Passed)
}
