// Package shell implements the interactive command loop: logging a student
// in, running the quiz and browsing or editing the book catalog.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"

	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/logger"
)

// QuizRunner runs the quiz for a logged in student.
type QuizRunner interface {
	RunFor(student entities.Student) (*entities.TestResult, error)
}

type AuthorLister interface {
	FindAll() ([]entities.Author, error)
}

type GenreLister interface {
	FindAll() ([]entities.Genre, error)
}

type BookCatalog interface {
	FindByID(id uint) (*entities.Book, error)
	FindAll() ([]entities.Book, error)
	Insert(title string, authorID uint, genreIDs []uint) (*entities.Book, error)
	Update(id uint, title string, authorID uint, genreIDs []uint) (*entities.Book, error)
	DeleteByID(id uint) error
}

type CommentCatalog interface {
	FindByID(id uint) (*entities.Comment, error)
	FindAllByBookID(bookID uint) ([]entities.Comment, error)
	Insert(text string, bookID uint) (*entities.Comment, error)
	Update(id uint, text string) (*entities.Comment, error)
	DeleteByID(id uint) error
}

// Catalog groups the catalog services. A nil Books disables catalog commands.
type Catalog struct {
	Authors  AuthorLister
	Genres   GenreLister
	Books    BookCatalog
	Comments CommentCatalog
}

type handlerFunc func(session *Session, args []string) (string, error)

type command struct {
	name    string
	aliases []string
	usage   string
	help    string
	handler handlerFunc
	quit    bool
}

type Shell struct {
	io       console.LocalizedIO
	quiz     QuizRunner
	catalog  Catalog
	commands []*command
	byName   map[string]*command
}

func New(io console.LocalizedIO, quiz QuizRunner, catalog Catalog) *Shell {
	s := &Shell{
		io:      io,
		quiz:    quiz,
		catalog: catalog,
		byName:  make(map[string]*command),
	}
	s.registerSessionCommands()
	if catalog.Books != nil {
		s.registerCatalogCommands()
	}
	return s
}

func (s *Shell) register(cmd *command) {
	s.commands = append(s.commands, cmd)
	s.byName[cmd.name] = cmd
	for _, alias := range cmd.aliases {
		s.byName[alias] = cmd
	}
}

func (s *Shell) registerSessionCommands() {
	s.register(&command{
		name: "login", aliases: []string{"l"},
		usage:   "login --first-name <name> --last-name <name>",
		help:    "Log in as a student",
		handler: s.login,
	})
	s.register(&command{
		name: "run", aliases: []string{"r"},
		usage:   "run",
		help:    "Take the test (requires login)",
		handler: s.run,
	})
	s.register(&command{
		name:    "logout",
		usage:   "logout",
		help:    "Forget the logged in student",
		handler: s.logout,
	})
	s.register(&command{
		name:    "help",
		usage:   "help",
		help:    "List available commands",
		handler: s.help,
	})
	s.register(&command{
		name: "exit", aliases: []string{"quit"},
		usage: "exit",
		help:  "Leave the shell",
		quit:  true,
		handler: func(*Session, []string) (string, error) {
			return "", nil
		},
	})
}

// Execute runs a single command line against the session.
// Unknown commands are reported in the output, not as an error.
func (s *Shell) Execute(session *Session, line string) (string, bool, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse command line: %w", err)
	}
	if len(words) == 0 {
		return "", false, nil
	}

	cmd, ok := s.byName[strings.ToLower(words[0])]
	if !ok {
		return s.io.GetMessage(console.MsgShellUnknownCommand, words[0]), false, nil
	}

	out, err := cmd.handler(session, words[1:])
	if err != nil {
		return "", false, err
	}
	return out, cmd.quit, nil
}

type stepResult struct {
	quit bool
	err  error
}

// Run reads commands until exit, end of input or context cancellation.
// Each line is read and executed on its own goroutine so that cancellation
// ends the loop even while a read or a running quiz is blocked on input.
func (s *Shell) Run(ctx context.Context, session *Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		done := make(chan stepResult, 1)
		go func() {
			quit, err := s.step(session)
			done <- stepResult{quit: quit, err: err}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case r := <-done:
			if r.err != nil || r.quit {
				return r.err
			}
		}
	}
}

// step handles one input line. End of input is reported as quit.
func (s *Shell) step(session *Session) (bool, error) {
	line, err := s.io.ReadString()
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	out, quit, err := s.Execute(session, line)
	if err != nil {
		logger.L().Debug("shell command failed", zap.String("line", line), zap.Error(err))
		s.io.PrintLine("Error: " + err.Error())
		return false, nil
	}
	if out != "" {
		s.io.PrintLine(out)
	}
	return quit, nil
}

func (s *Shell) help(*Session, []string) (string, error) {
	lines := make([]string, 0, len(s.commands))
	for _, cmd := range s.commands {
		name := cmd.usage
		if len(cmd.aliases) > 0 {
			aliases := append([]string(nil), cmd.aliases...)
			sort.Strings(aliases)
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		lines = append(lines, fmt.Sprintf("  %-60s %s", name, cmd.help))
	}
	return "Available commands:\n" + strings.Join(lines, "\n"), nil
}
