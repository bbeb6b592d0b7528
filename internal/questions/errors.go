package questions

import (
	"errors"
	"fmt"
)

// ErrQuestionRead matches every ReadError through errors.Is.
var ErrQuestionRead = errors.New("question read error")

// ReadError reports a missing, unreadable or malformed question file.
type ReadError struct {
	File string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to read questions from %s (line %d): %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to read questions from %s: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrQuestionRead
}
