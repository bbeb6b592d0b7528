package converters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/library/internal/entities"
)

func TestConverters(t *testing.T) {
	author := entities.Author{ID: 1, FullName: "Author_1"}
	book := entities.Book{
		ID:     3,
		Title:  "BookTitle_3",
		Author: author,
		Genres: []entities.Genre{{ID: 5, Name: "Genre_5"}, {ID: 6, Name: "Genre_6"}},
	}

	assert.Equal(t, "Id: 1, FullName: Author_1", AuthorToString(author))
	assert.Equal(t, "Id: 5, Name: Genre_5", GenreToString(book.Genres[0]))
	assert.Equal(t,
		"Id: 3, title: BookTitle_3, author: {Id: 1, FullName: Author_1}, genres: [{Id: 5, Name: Genre_5}, {Id: 6, Name: Genre_6}]",
		BookToString(book))
	assert.Equal(t, "Id: 7, Text: Nice", CommentToString(entities.Comment{ID: 7, Text: "Nice"}))
}

func TestJoinLines(t *testing.T) {
	genres := []entities.Genre{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	assert.Equal(t, "Id: 1, Name: A,\nId: 2, Name: B", JoinLines(genres, GenreToString))
	assert.Equal(t, "", JoinLines([]entities.Genre{}, GenreToString))
}
