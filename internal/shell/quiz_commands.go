package shell

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entities"
)

// parseLogin accepts "--first-name X --last-name Y" or two positional names.
func parseLogin(args []string) (entities.Student, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var student entities.Student
	fs.StringVar(&student.FirstName, "first-name", "", "First name")
	fs.StringVar(&student.LastName, "last-name", "", "Last name")
	fs.StringVar(&student.FirstName, "f", "", "First name (shorthand)")
	fs.StringVar(&student.LastName, "n", "", "Last name (shorthand)")

	if err := fs.Parse(args); err != nil {
		return entities.Student{}, fmt.Errorf("usage: login --first-name <name> --last-name <name>: %w", err)
	}

	rest := fs.Args()
	if student.FirstName == "" && len(rest) > 0 {
		student.FirstName, rest = rest[0], rest[1:]
	}
	if student.LastName == "" && len(rest) > 0 {
		student.LastName = rest[0]
	}

	student.FirstName = strings.TrimSpace(student.FirstName)
	student.LastName = strings.TrimSpace(student.LastName)
	if student.FirstName == "" || student.LastName == "" {
		return entities.Student{}, fmt.Errorf("usage: login --first-name <name> --last-name <name>")
	}
	return student, nil
}

func (s *Shell) login(session *Session, args []string) (string, error) {
	student, err := parseLogin(args)
	if err != nil {
		return "", err
	}
	session.Login(student)
	return s.io.GetMessage(console.MsgShellWelcome, student.FullName()), nil
}

func (s *Shell) logout(session *Session, _ []string) (string, error) {
	if !session.LoggedIn() {
		return s.io.GetMessage(console.MsgShellLoginFirst), nil
	}
	name := session.Student.FullName()
	session.Logout()
	return s.io.GetMessage(console.MsgShellLoggedOut, name), nil
}

func (s *Shell) run(session *Session, _ []string) (string, error) {
	if !session.LoggedIn() {
		return s.io.GetMessage(console.MsgShellLoginFirst), nil
	}
	if _, err := s.quiz.RunFor(*session.Student); err != nil {
		return "", err
	}
	return "", nil
}
