package services

import (
	"fmt"
	"strings"

	"github.com/mrlokans/library/internal/entities"
)

type CommentService struct {
	books    BookRepository
	comments CommentRepository
}

func NewCommentService(books BookRepository, comments CommentRepository) *CommentService {
	return &CommentService{books: books, comments: comments}
}

func (s *CommentService) FindByID(id uint) (*entities.Comment, error) {
	comment, err := s.comments.FindByID(id)
	if err != nil {
		return nil, translate(err, "comment", id)
	}
	return comment, nil
}

// FindAllByBookID lists the comments of a book; an unknown book is reported as not found.
func (s *CommentService) FindAllByBookID(bookID uint) ([]entities.Comment, error) {
	if err := s.ensureBook(bookID); err != nil {
		return nil, err
	}
	return s.comments.FindAllByBookID(bookID)
}

func (s *CommentService) Insert(text string, bookID uint) (*entities.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if err := s.ensureBook(bookID); err != nil {
		return nil, err
	}

	comment := &entities.Comment{Text: text, BookID: bookID}
	if err := s.comments.Save(comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return s.FindByID(comment.ID)
}

func (s *CommentService) Update(id uint, text string) (*entities.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	comment, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	comment.Text = text
	if err := s.comments.Save(comment); err != nil {
		return nil, translate(err, "comment", id)
	}
	return s.FindByID(id)
}

func (s *CommentService) DeleteByID(id uint) error {
	return s.comments.DeleteByID(id)
}

func (s *CommentService) ensureBook(bookID uint) error {
	exists, err := s.books.Exists(bookID)
	if err != nil {
		return fmt.Errorf("failed to check book %d: %w", bookID, err)
	}
	if !exists {
		return notFound("book", bookID)
	}
	return nil
}
