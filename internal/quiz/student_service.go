package quiz

import (
	"fmt"
	"strings"

	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entities"
)

type StudentService struct {
	io console.LocalizedIO
}

func NewStudentService(io console.LocalizedIO) *StudentService {
	return &StudentService{io: io}
}

func (s *StudentService) DetermineCurrentStudent() (entities.Student, error) {
	firstName, err := s.io.ReadStringWithPromptLocalized(console.MsgInputFirstName)
	if err != nil {
		return entities.Student{}, fmt.Errorf("failed to read first name: %w", err)
	}
	lastName, err := s.io.ReadStringWithPromptLocalized(console.MsgInputLastName)
	if err != nil {
		return entities.Student{}, fmt.Errorf("failed to read last name: %w", err)
	}
	return entities.Student{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}, nil
}
