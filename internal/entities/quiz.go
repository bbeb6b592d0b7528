package entities

import "time"

type Answer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	Text    string   `json:"text"`
	Answers []Answer `json:"answers"`
}

// CorrectAnswerIndex returns the 0-based index of the first correct answer, or -1.
func (q Question) CorrectAnswerIndex() int {
	for i, a := range q.Answers {
		if a.IsCorrect {
			return i
		}
	}
	return -1
}

type Student struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// TestResult accumulates the answers of a single quiz run.
type TestResult struct {
	Student           Student    `json:"student"`
	AnsweredQuestions []Question `json:"-"`
	RightAnswersCount int        `json:"right_answers_count"`
}

func NewTestResult(student Student) *TestResult {
	return &TestResult{Student: student, AnsweredQuestions: []Question{}}
}

// ApplyAnswer records an answered question and counts it when right.
func (r *TestResult) ApplyAnswer(question Question, isRight bool) {
	r.AnsweredQuestions = append(r.AnsweredQuestions, question)
	if isRight {
		r.RightAnswersCount++
	}
}

func (r *TestResult) Passed(rightAnswersToPass int) bool {
	return r.RightAnswersCount >= rightAnswersToPass
}

// QuizAttempt is the persisted summary of a finished TestResult.
type QuizAttempt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:100;index:idx_attempt_student" json:"first_name"`
	LastName       string    `gorm:"size:100;index:idx_attempt_student" json:"last_name"`
	RightAnswers   int       `json:"right_answers"`
	TotalQuestions int       `json:"total_questions"`
	Passed         bool      `gorm:"default:false" json:"passed"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// NewQuizAttempt summarizes a result against the pass threshold.
func NewQuizAttempt(result *TestResult, rightAnswersToPass int) *QuizAttempt {
	return &QuizAttempt{
		FirstName:      result.Student.FirstName,
		LastName:       result.Student.LastName,
		RightAnswers:   result.RightAnswersCount,
		TotalQuestions: len(result.AnsweredQuestions),
		Passed:         result.Passed(rightAnswersToPass),
	}
}
