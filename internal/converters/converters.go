// Package converters renders catalog entities as single-line strings for the shell.
package converters

import (
	"fmt"
	"strings"

	"github.com/mrlokans/library/internal/entities"
)

func AuthorToString(author entities.Author) string {
	return fmt.Sprintf("Id: %d, FullName: %s", author.ID, author.FullName)
}

func GenreToString(genre entities.Genre) string {
	return fmt.Sprintf("Id: %d, Name: %s", genre.ID, genre.Name)
}

func BookToString(book entities.Book) string {
	genres := make([]string, 0, len(book.Genres))
	for _, g := range book.Genres {
		genres = append(genres, "{"+GenreToString(g)+"}")
	}
	return fmt.Sprintf("Id: %d, title: %s, author: {%s}, genres: [%s]",
		book.ID, book.Title, AuthorToString(book.Author), strings.Join(genres, ", "))
}

func CommentToString(comment entities.Comment) string {
	return fmt.Sprintf("Id: %d, Text: %s", comment.ID, comment.Text)
}

// JoinLines converts every item and joins the results with a comma and a newline.
func JoinLines[T any](items []T, convert func(T) string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, convert(item))
	}
	return strings.Join(lines, ",\n")
}
