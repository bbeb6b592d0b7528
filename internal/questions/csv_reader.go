// Package questions loads quiz questions from delimited text files.
//
// A question file starts with a header line, followed by one question per line:
//
//	question text;answer one%true|answer two%false|answer three%false
package questions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mrlokans/library/internal/entities"
)

const (
	fieldSeparator  = ';'
	answerSeparator = "|"
	flagSeparator   = "%"
)

// CSVReader reads questions from a single file on every FindAll call.
type CSVReader struct {
	fileName string
}

func NewCSVReader(fileName string) *CSVReader {
	return &CSVReader{fileName: fileName}
}

func (r *CSVReader) FindAll() ([]entities.Question, error) {
	f, err := os.Open(r.fileName)
	if err != nil {
		return nil, &ReadError{File: r.fileName, Err: err}
	}
	defer f.Close()

	questions, err := Parse(f)
	if err != nil {
		var readErr *ReadError
		if errors.As(err, &readErr) {
			readErr.File = r.fileName
			return nil, readErr
		}
		return nil, &ReadError{File: r.fileName, Err: err}
	}
	return questions, nil
}

// Parse reads a question file body. The first line is skipped as a header.
func Parse(src io.Reader) ([]entities.Question, error) {
	reader := csv.NewReader(src)
	reader.Comma = fieldSeparator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return []entities.Question{}, nil
		}
		return nil, &ReadError{Line: 1, Err: fmt.Errorf("failed to read header: %w", err)}
	}

	questions := []entities.Question{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already carries the line
			return nil, &ReadError{Err: err}
		}
		line, _ := reader.FieldPos(0)

		question, err := parseRecord(record)
		if err != nil {
			return nil, &ReadError{Line: line, Err: err}
		}
		questions = append(questions, question)
	}

	return questions, nil
}

func parseRecord(record []string) (entities.Question, error) {
	if len(record) != 2 {
		return entities.Question{}, fmt.Errorf("expected 2 fields, got %d", len(record))
	}

	text := strings.TrimSpace(record[0])
	if text == "" {
		return entities.Question{}, fmt.Errorf("empty question text")
	}

	answers, err := parseAnswers(record[1])
	if err != nil {
		return entities.Question{}, err
	}

	return entities.Question{Text: text, Answers: answers}, nil
}

func parseAnswers(raw string) ([]entities.Answer, error) {
	parts := strings.Split(raw, answerSeparator)
	answers := make([]entities.Answer, 0, len(parts))

	for _, part := range parts {
		idx := strings.LastIndex(part, flagSeparator)
		if idx < 0 {
			return nil, fmt.Errorf("answer %q has no correctness flag", part)
		}

		text := strings.TrimSpace(part[:idx])
		if text == "" {
			return nil, fmt.Errorf("empty answer text in %q", part)
		}

		correct, err := strconv.ParseBool(strings.TrimSpace(part[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid correctness flag in %q: %w", part, err)
		}

		answers = append(answers, entities.Answer{Text: text, IsCorrect: correct})
	}

	return answers, nil
}
