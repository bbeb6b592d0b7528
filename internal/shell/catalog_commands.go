package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrlokans/library/internal/converters"
)

func (s *Shell) registerCatalogCommands() {
	s.register(&command{name: "aa", usage: "aa", help: "List all authors", handler: s.allAuthors})
	s.register(&command{name: "ag", usage: "ag", help: "List all genres", handler: s.allGenres})
	s.register(&command{name: "ab", usage: "ab", help: "List all books", handler: s.allBooks})
	s.register(&command{name: "bbid", usage: "bbid <id>", help: "Find book by id", handler: s.bookByID})
	s.register(&command{name: "bins", usage: "bins <title> <authorId> <genreIds>", help: "Insert book, genre ids comma separated", handler: s.insertBook})
	s.register(&command{name: "bupd", usage: "bupd <id> <title> <authorId> <genreIds>", help: "Update book", handler: s.updateBook})
	s.register(&command{name: "bdel", usage: "bdel <id>", help: "Delete book by id", handler: s.deleteBook})
	s.register(&command{name: "cbid", usage: "cbid <id>", help: "Find comment by id", handler: s.commentByID})
	s.register(&command{name: "cbbid", usage: "cbbid <bookId>", help: "List comments of a book", handler: s.commentsByBook})
	s.register(&command{name: "cins", usage: "cins <bookId> <text>", help: "Add comment to a book", handler: s.insertComment})
	s.register(&command{name: "cupd", usage: "cupd <id> <text>", help: "Update comment text", handler: s.updateComment})
	s.register(&command{name: "cdel", usage: "cdel <id>", help: "Delete comment by id", handler: s.deleteComment})
}

func parseID(raw, name string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// parseIDList parses "1,2, 3" into ids.
func parseIDList(raw string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := parseID(part, "genre id")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func expectArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func (s *Shell) allAuthors(*Session, []string) (string, error) {
	authors, err := s.catalog.Authors.FindAll()
	if err != nil {
		return "", err
	}
	return converters.JoinLines(authors, converters.AuthorToString), nil
}

func (s *Shell) allGenres(*Session, []string) (string, error) {
	genres, err := s.catalog.Genres.FindAll()
	if err != nil {
		return "", err
	}
	return converters.JoinLines(genres, converters.GenreToString), nil
}

func (s *Shell) allBooks(*Session, []string) (string, error) {
	books, err := s.catalog.Books.FindAll()
	if err != nil {
		return "", err
	}
	return converters.JoinLines(books, converters.BookToString), nil
}

func (s *Shell) bookByID(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 1, "bbid <id>"); err != nil {
		return "", err
	}
	id, err := parseID(args[0], "book id")
	if err != nil {
		return "", err
	}
	book, err := s.catalog.Books.FindByID(id)
	if err != nil {
		return "", err
	}
	return converters.BookToString(*book), nil
}

func (s *Shell) insertBook(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 3, "bins <title> <authorId> <genreIds>"); err != nil {
		return "", err
	}
	authorID, err := parseID(args[1], "author id")
	if err != nil {
		return "", err
	}
	genreIDs, err := parseIDList(args[2])
	if err != nil {
		return "", err
	}
	book, err := s.catalog.Books.Insert(args[0], authorID, genreIDs)
	if err != nil {
		return "", err
	}
	return converters.BookToString(*book), nil
}

func (s *Shell) updateBook(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 4, "bupd <id> <title> <authorId> <genreIds>"); err != nil {
		return "", err
	}
	id, err := parseID(args[0], "book id")
	if err != nil {
		return "", err
	}
	authorID, err := parseID(args[2], "author id")
	if err != nil {
		return "", err
	}
	genreIDs, err := parseIDList(args[3])
	if err != nil {
		return "", err
	}
	book, err := s.catalog.Books.Update(id, args[1], authorID, genreIDs)
	if err != nil {
		return "", err
	}
	return converters.BookToString(*book), nil
}

func (s *Shell) deleteBook(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 1, "bdel <id>"); err != nil {
		return "", err
	}
	id, err := parseID(args[0], "book id")
	if err != nil {
		return "", err
	}
	return "", s.catalog.Books.DeleteByID(id)
}

func (s *Shell) commentByID(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 1, "cbid <id>"); err != nil {
		return "", err
	}
	id, err := parseID(args[0], "comment id")
	if err != nil {
		return "", err
	}
	comment, err := s.catalog.Comments.FindByID(id)
	if err != nil {
		return "", err
	}
	return converters.CommentToString(*comment), nil
}

func (s *Shell) commentsByBook(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 1, "cbbid <bookId>"); err != nil {
		return "", err
	}
	bookID, err := parseID(args[0], "book id")
	if err != nil {
		return "", err
	}
	comments, err := s.catalog.Comments.FindAllByBookID(bookID)
	if err != nil {
		return "", err
	}
	return converters.JoinLines(comments, converters.CommentToString), nil
}

func (s *Shell) insertComment(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 2, "cins <bookId> <text>"); err != nil {
		return "", err
	}
	bookID, err := parseID(args[0], "book id")
	if err != nil {
		return "", err
	}
	comment, err := s.catalog.Comments.Insert(strings.Join(args[1:], " "), bookID)
	if err != nil {
		return "", err
	}
	return converters.CommentToString(*comment), nil
}

func (s *Shell) updateComment(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 2, "cupd <id> <text>"); err != nil {
		return "", err
	}
	id, err := parseID(args[0], "comment id")
	if err != nil {
		return "", err
	}
	comment, err := s.catalog.Comments.Update(id, strings.Join(args[1:], " "))
	if err != nil {
		return "", err
	}
	return converters.CommentToString(*comment), nil
}

func (s *Shell) deleteComment(_ *Session, args []string) (string, error) {
	if err := expectArgs(args, 1, "cdel <id>"); err != nil {
		return "", err
	}
	id, err := parseID(args[0], "comment id")
	if err != nil {
		return "", err
	}
	return "", s.catalog.Comments.DeleteByID(id)
}
