package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

// ContextKeyStudent holds the entities.Student set by RequireStudent.
const ContextKeyStudent = "auth_student"

var ErrNotLoggedIn = errors.New("login required")

// RequireStudent aborts with 401 unless a student is logged in.
func (sm *SessionManager) RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		student, ok := sm.Student(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": ErrNotLoggedIn.Error(),
			})
			return
		}
		c.Set(ContextKeyStudent, student)
		c.Next()
	}
}

// GetStudent returns the student stored by RequireStudent.
func GetStudent(c *gin.Context) (entities.Student, bool) {
	value, exists := c.Get(ContextKeyStudent)
	if !exists {
		return entities.Student{}, false
	}
	student, ok := value.(entities.Student)
	return student, ok
}
