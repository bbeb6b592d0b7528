package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/auth"
	"github.com/mrlokans/library/internal/database/results"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/logger"
	"github.com/mrlokans/library/internal/quiz"
)

const defaultResultsLimit = 50

type QuestionSource interface {
	FindAll() ([]entities.Question, error)
}

type ResultStore interface {
	quiz.Recorder
	FindRecent(limit int) ([]entities.QuizAttempt, error)
	FindByStudent(firstName, lastName string) ([]entities.QuizAttempt, error)
	Stats() (results.Stats, error)
}

// QuizController is the HTTP rendition of the shell's login/run commands.
type QuizController struct {
	sessions                *auth.SessionManager
	questions               QuestionSource
	results                 ResultStore
	rightAnswersCountToPass int
	trail                   *AuditTrail
}

func NewQuizController(sessions *auth.SessionManager, questions QuestionSource, results ResultStore, rightAnswersCountToPass int, trail *AuditTrail) *QuizController {
	return &QuizController{
		sessions:                sessions,
		questions:               questions,
		results:                 results,
		rightAnswersCountToPass: rightAnswersCountToPass,
		trail:                   trail,
	}
}

type LoginRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type SubmitRequest struct {
	// Answers are 1-based option numbers, one per question in order.
	Answers []int `json:"answers" binding:"required"`
}

// QuestionView hides which answer is correct.
type QuestionView struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Answers []string `json:"answers"`
}

type SubmitResponse struct {
	Student           entities.Student `json:"student"`
	AttemptID         uint             `json:"attempt_id,omitempty"`
	AnsweredQuestions int              `json:"answered_questions"`
	RightAnswers      int              `json:"right_answers"`
	Passed            bool             `json:"passed"`
}

func toQuestionViews(questions []entities.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for i, q := range questions {
		answers := make([]string, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, a.Text)
		}
		views = append(views, QuestionView{Number: i + 1, Text: q.Text, Answers: answers})
	}
	return views
}

// Login handles POST /api/quiz/login
func (qc *QuizController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "first_name and last_name are required")
		return
	}

	student := entities.Student{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if student.FirstName == "" || student.LastName == "" {
		respondBadRequest(c, "first_name and last_name are required")
		return
	}

	if err := qc.sessions.LoginStudent(c.Request, student); err != nil {
		respondInternalError(c, err, "login student")
		return
	}
	logger.L().Info("student logged in", zap.String("student", student.FullName()))
	qc.trail.login(c, student)
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// Logout handles POST /api/quiz/logout
func (qc *QuizController) Logout(c *gin.Context) {
	if err := qc.sessions.LogoutStudent(c.Request); err != nil {
		respondInternalError(c, err, "logout student")
		return
	}
	respondSuccess(c, "logged out")
}

// Me handles GET /api/quiz/me
func (qc *QuizController) Me(c *gin.Context) {
	student, _ := auth.GetStudent(c)
	c.JSON(http.StatusOK, gin.H{
		"student":   student,
		"logged_at": qc.sessions.LoginAt(c.Request),
	})
}

// Questions handles GET /api/quiz/questions
func (qc *QuizController) Questions(c *gin.Context) {
	questions, err := qc.questions.FindAll()
	if err != nil {
		respondInternalError(c, err, "read questions")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"questions":                   toQuestionViews(questions),
		"right_answers_count_to_pass": qc.rightAnswersCountToPass,
	})
}

// Submit handles POST /api/quiz/submit for the logged in student.
func (qc *QuizController) Submit(c *gin.Context) {
	student, ok := auth.GetStudent(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: auth.ErrNotLoggedIn.Error()})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "answers are required")
		return
	}

	questions, err := qc.questions.FindAll()
	if err != nil {
		respondInternalError(c, err, "read questions")
		return
	}

	result, err := quiz.ScoreAnswers(student, questions, req.Answers)
	if err != nil {
		if errors.Is(err, quiz.ErrAnswerCountMismatch) || errors.Is(err, quiz.ErrAnswerOutOfRange) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "validation"})
			return
		}
		respondInternalError(c, err, "score answers")
		return
	}

	attempt, err := quiz.RecordAttempt(qc.results, result, qc.rightAnswersCountToPass)
	if err != nil {
		respondInternalError(c, err, "record attempt")
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Student:           student,
		AttemptID:         attempt.ID,
		AnsweredQuestions: len(result.AnsweredQuestions),
		RightAnswers:      result.RightAnswersCount,
		Passed:            attempt.Passed,
	})
}

// Results handles GET /api/quiz/results?limit=&first_name=&last_name=
func (qc *QuizController) Results(c *gin.Context) {
	firstName, lastName := c.Query("first_name"), c.Query("last_name")

	var attempts []entities.QuizAttempt
	var err error
	if firstName != "" || lastName != "" {
		attempts, err = qc.results.FindByStudent(firstName, lastName)
	} else {
		limit, ok := parseLimitQuery(c, defaultResultsLimit)
		if !ok {
			return
		}
		attempts, err = qc.results.FindRecent(limit)
	}
	if err != nil {
		respondInternalError(c, err, "list results")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": attempts, "count": len(attempts)})
}

// Stats handles GET /api/quiz/stats
func (qc *QuizController) Stats(c *gin.Context) {
	stats, err := qc.results.Stats()
	if err != nil {
		respondInternalError(c, err, "quiz stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
