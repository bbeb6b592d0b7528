package shell

import "github.com/mrlokans/library/internal/entities"

// Session is the state of one interactive shell: who is logged in.
type Session struct {
	Student *entities.Student
}

func (s *Session) LoggedIn() bool {
	return s.Student != nil
}

func (s *Session) Login(student entities.Student) {
	s.Student = &student
}

func (s *Session) Logout() {
	s.Student = nil
}
