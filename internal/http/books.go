package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

type BookService interface {
	FindByID(id uint) (*entities.Book, error)
	FindAll() ([]entities.Book, error)
	Insert(title string, authorID uint, genreIDs []uint) (*entities.Book, error)
	Update(id uint, title string, authorID uint, genreIDs []uint) (*entities.Book, error)
	DeleteByID(id uint) error
}

type BooksController struct {
	books BookService
	trail *AuditTrail
}

func NewBooksController(books BookService, trail *AuditTrail) *BooksController {
	return &BooksController{books: books, trail: trail}
}

// BookRequest is the body of POST /api/books and PUT /api/books/:id.
type BookRequest struct {
	Title    string `json:"title"`
	AuthorID uint   `json:"author_id"`
	GenreIDs []uint `json:"genre_ids"`
}

func bindBookRequest(c *gin.Context) (BookRequest, bool) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return req, false
	}
	return req, true
}

// GetAllBooks handles GET /api/books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := bc.books.FindAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBook handles GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.books.FindByID(id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	req, ok := bindBookRequest(c)
	if !ok {
		return
	}

	book, err := bc.books.Insert(req.Title, req.AuthorID, req.GenreIDs)
	if err != nil {
		respondServiceError(c, err, "create book")
		return
	}
	bc.trail.change(c, entities.AuditEventCreate, "book", book.ID, "Created book: "+book.Title)
	respondCreated(c, book)
}

// UpdateBook handles PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := bindBookRequest(c)
	if !ok {
		return
	}

	book, err := bc.books.Update(id, req.Title, req.AuthorID, req.GenreIDs)
	if err != nil {
		respondServiceError(c, err, "update book")
		return
	}
	bc.trail.change(c, entities.AuditEventUpdate, "book", book.ID, "Updated book: "+book.Title)
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id
// Deleting a missing book succeeds; the book is gone either way.
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.books.DeleteByID(id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}
	bc.trail.change(c, entities.AuditEventDelete, "book", id, fmt.Sprintf("Deleted book %d", id))
	respondSuccess(c, "book deleted")
}
