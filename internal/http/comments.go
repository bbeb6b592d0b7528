package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

type CommentService interface {
	FindByID(id uint) (*entities.Comment, error)
	FindAllByBookID(bookID uint) ([]entities.Comment, error)
	Insert(text string, bookID uint) (*entities.Comment, error)
	Update(id uint, text string) (*entities.Comment, error)
	DeleteByID(id uint) error
}

type CommentsController struct {
	comments CommentService
	trail    *AuditTrail
}

func NewCommentsController(comments CommentService, trail *AuditTrail) *CommentsController {
	return &CommentsController{comments: comments, trail: trail}
}

type CommentRequest struct {
	Text string `json:"text"`
}

func bindCommentRequest(c *gin.Context) (CommentRequest, bool) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return req, false
	}
	return req, true
}

// GetBookComments handles GET /api/books/:id/comments
func (cc *CommentsController) GetBookComments(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := cc.comments.FindAllByBookID(bookID)
	if err != nil {
		respondServiceError(c, err, "list comments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// CreateComment handles POST /api/books/:id/comments
func (cc *CommentsController) CreateComment(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := bindCommentRequest(c)
	if !ok {
		return
	}

	comment, err := cc.comments.Insert(req.Text, bookID)
	if err != nil {
		respondServiceError(c, err, "create comment")
		return
	}
	cc.trail.change(c, entities.AuditEventCreate, "comment", comment.ID, fmt.Sprintf("Commented on book %d", bookID))
	respondCreated(c, comment)
}

// GetComment handles GET /api/comments/:id
func (cc *CommentsController) GetComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := cc.comments.FindByID(id)
	if err != nil {
		respondServiceError(c, err, "get comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment handles PUT /api/comments/:id
func (cc *CommentsController) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := bindCommentRequest(c)
	if !ok {
		return
	}

	comment, err := cc.comments.Update(id, req.Text)
	if err != nil {
		respondServiceError(c, err, "update comment")
		return
	}
	cc.trail.change(c, entities.AuditEventUpdate, "comment", comment.ID, fmt.Sprintf("Updated comment %d", comment.ID))
	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (cc *CommentsController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.comments.DeleteByID(id); err != nil {
		respondServiceError(c, err, "delete comment")
		return
	}
	cc.trail.change(c, entities.AuditEventDelete, "comment", id, fmt.Sprintf("Deleted comment %d", id))
	respondSuccess(c, "comment deleted")
}
