package quiz

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/logger"
	"github.com/mrlokans/library/internal/monitoring"
)

// Recorder persists finished attempts.
type Recorder interface {
	Record(attempt *entities.QuizAttempt) error
}

// Runner ties the student, test and result services together.
type Runner struct {
	students                *StudentService
	tests                   *TestService
	results                 *ResultService
	recorder                Recorder
	rightAnswersCountToPass int
}

// NewRunner creates a runner. recorder may be nil, in which case results are only shown.
func NewRunner(students *StudentService, tests *TestService, results *ResultService, recorder Recorder, rightAnswersCountToPass int) *Runner {
	return &Runner{
		students:                students,
		tests:                   tests,
		results:                 results,
		recorder:                recorder,
		rightAnswersCountToPass: rightAnswersCountToPass,
	}
}

// Run asks who is taking the test and runs it for them.
func (r *Runner) Run() (*entities.TestResult, error) {
	student, err := r.students.DetermineCurrentStudent()
	if err != nil {
		return nil, err
	}
	return r.RunFor(student)
}

// RunFor runs the test for an already known student.
func (r *Runner) RunFor(student entities.Student) (*entities.TestResult, error) {
	result, err := r.tests.ExecuteTestFor(student)
	if err != nil {
		return nil, err
	}

	r.results.ShowResult(result)

	if err := r.Record(result); err != nil {
		return result, err
	}
	return result, nil
}

// Record counts the attempt in metrics and stores it when a recorder is configured.
func (r *Runner) Record(result *entities.TestResult) error {
	_, err := RecordAttempt(r.recorder, result, r.rightAnswersCountToPass)
	return err
}

// RecordAttempt turns a finished result into a QuizAttempt, observes it and
// persists it through recorder unless recorder is nil.
func RecordAttempt(recorder Recorder, result *entities.TestResult, rightAnswersCountToPass int) (*entities.QuizAttempt, error) {
	attempt := entities.NewQuizAttempt(result, rightAnswersCountToPass)
	monitoring.ObserveQuizAttempt(attempt.Passed)

	logger.L().Info("quiz finished",
		zap.String("student", result.Student.FullName()),
		zap.Int("right_answers", attempt.RightAnswers),
		zap.Int("total_questions", attempt.TotalQuestions),
		zap.Bool("passed", attempt.Passed))

	if recorder == nil {
		return attempt, nil
	}
	if err := recorder.Record(attempt); err != nil {
		return attempt, fmt.Errorf("failed to record quiz attempt: %w", err)
	}
	return attempt, nil
}
