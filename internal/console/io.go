// Package console implements line-oriented input and output for the quiz
// and the interactive shell.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxInputAttempts bounds how many times a ranged integer is asked for.
const MaxInputAttempts = 10

// ErrAttemptsExhausted is returned once MaxInputAttempts invalid inputs were read.
var ErrAttemptsExhausted = errors.New("error during reading int value: attempts exhausted")

type IOService interface {
	PrintLine(s string)
	PrintFormattedLine(format string, args ...any)
	ReadString() (string, error)
	ReadStringWithPrompt(prompt string) (string, error)
	ReadIntForRange(min, max int, errorMessage string) (int, error)
	ReadIntForRangeWithPrompt(min, max int, prompt, errorMessage string) (int, error)
}

// StreamsIOService reads lines from an io.Reader and writes lines to an io.Writer.
type StreamsIOService struct {
	out     io.Writer
	scanner *bufio.Scanner
}

func NewStreamsIOService(in io.Reader, out io.Writer) *StreamsIOService {
	return &StreamsIOService{
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

func (s *StreamsIOService) PrintLine(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *StreamsIOService) PrintFormattedLine(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// ReadString returns the next input line without its line terminator.
// It returns io.EOF when the input is exhausted.
func (s *StreamsIOService) ReadString() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.scanner.Text(), "\r"), nil
}

func (s *StreamsIOService) ReadStringWithPrompt(prompt string) (string, error) {
	s.PrintLine(prompt)
	return s.ReadString()
}

// ReadIntForRange reads integers until one falls into [min, max], printing
// errorMessage after each rejected line.
func (s *StreamsIOService) ReadIntForRange(min, max int, errorMessage string) (int, error) {
	for i := 0; i < MaxInputAttempts; i++ {
		line, err := s.ReadString()
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || value < min || value > max {
			s.PrintLine(errorMessage)
			continue
		}
		return value, nil
	}
	return 0, ErrAttemptsExhausted
}

func (s *StreamsIOService) ReadIntForRangeWithPrompt(min, max int, prompt, errorMessage string) (int, error) {
	s.PrintLine(prompt)
	return s.ReadIntForRange(min, max, errorMessage)
}
