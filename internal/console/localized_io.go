package console

// LocalizedIO is an IOService that can also print and prompt by message code.
type LocalizedIO interface {
	IOService
	PrintLineLocalized(code string)
	PrintFormattedLineLocalized(code string, args ...any)
	ReadStringWithPromptLocalized(promptCode string) (string, error)
	ReadIntForRangeWithPromptLocalized(min, max int, promptCode, errorCode string) (int, error)
	GetMessage(code string, args ...any) string
}

type LocalizedIOService struct {
	IOService
	localizer *Localizer
}

func NewLocalizedIOService(io IOService, localizer *Localizer) *LocalizedIOService {
	return &LocalizedIOService{IOService: io, localizer: localizer}
}

func (s *LocalizedIOService) PrintLineLocalized(code string) {
	s.PrintLine(s.localizer.Message(code))
}

func (s *LocalizedIOService) PrintFormattedLineLocalized(code string, args ...any) {
	s.PrintLine(s.localizer.Message(code, args...))
}

func (s *LocalizedIOService) ReadStringWithPromptLocalized(promptCode string) (string, error) {
	return s.ReadStringWithPrompt(s.localizer.Message(promptCode))
}

func (s *LocalizedIOService) ReadIntForRangeWithPromptLocalized(min, max int, promptCode, errorCode string) (int, error) {
	return s.ReadIntForRangeWithPrompt(min, max,
		s.localizer.Message(promptCode),
		s.localizer.Message(errorCode))
}

func (s *LocalizedIOService) GetMessage(code string, args ...any) string {
	return s.localizer.Message(code, args...)
}
