package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

type AuthorLister interface {
	FindAll() ([]entities.Author, error)
}

type GenreLister interface {
	FindAll() ([]entities.Genre, error)
}

// CatalogController serves the read-only author and genre listings.
type CatalogController struct {
	authors AuthorLister
	genres  GenreLister
}

func NewCatalogController(authors AuthorLister, genres GenreLister) *CatalogController {
	return &CatalogController{authors: authors, genres: genres}
}

// ListAuthors handles GET /api/authors
func (cc *CatalogController) ListAuthors(c *gin.Context) {
	authors, err := cc.authors.FindAll()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, gin.H{"authors": authors, "count": len(authors)})
}

// ListGenres handles GET /api/genres
func (cc *CatalogController) ListGenres(c *gin.Context) {
	genres, err := cc.genres.FindAll()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
}
