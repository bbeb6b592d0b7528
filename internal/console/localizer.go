package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message codes used by the quiz and the shell.
const (
	MsgAnswerTheQuestions  = "TestService.answer.the.questions"
	MsgInvalidAnswer       = "TestService.invalid.answer"
	MsgInputFirstName      = "StudentService.input.first.name"
	MsgInputLastName       = "StudentService.input.last.name"
	MsgTestResults         = "ResultService.test.results"
	MsgStudent             = "ResultService.student"
	MsgAnsweredQuestions   = "ResultService.answered.questions.count"
	MsgRightAnswers        = "ResultService.right.answers.count"
	MsgPassedTest          = "ResultService.passed.test"
	MsgFailTest            = "ResultService.fail.test"
	MsgShellWelcome        = "Shell.welcome"
	MsgShellLoginFirst     = "Shell.login.first"
	MsgShellUnknownCommand = "Shell.unknown.command"
	MsgShellLoggedOut      = "Shell.logged.out"
	MsgShellBanner         = "Shell.banner"
)

var (
	englishUS = language.AmericanEnglish
	russianRU = language.MustParse("ru-RU")

	supportedLocales = []language.Tag{englishUS, russianRU}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

var messages = map[language.Tag]map[string]string{
	englishUS: {
		MsgAnswerTheQuestions:  "Please answer the questions below",
		MsgInvalidAnswer:       "Invalid answer, please enter the number of one of the options",
		MsgInputFirstName:      "Please input your first name",
		MsgInputLastName:       "Please input your last name",
		MsgTestResults:         "Test results: ",
		MsgStudent:             "Student: %s",
		MsgAnsweredQuestions:   "Answered questions count: %d",
		MsgRightAnswers:        "Right answers count: %d",
		MsgPassedTest:          "Congratulations! You passed test!",
		MsgFailTest:            "Sorry. You fail test",
		MsgShellWelcome:        "Welcome: %s",
		MsgShellLoginFirst:     "Please log in first: login --first-name <name> --last-name <name>",
		MsgShellUnknownCommand: "Unknown command: %s",
		MsgShellLoggedOut:      "Goodbye: %s",
		MsgShellBanner:         "Type 'help' for the list of commands.",
	},
	russianRU: {
		MsgAnswerTheQuestions:  "Пожалуйста, ответьте на вопросы ниже",
		MsgInvalidAnswer:       "Неверный ответ, введите номер одного из вариантов",
		MsgInputFirstName:      "Пожалуйста, введите ваше имя",
		MsgInputLastName:       "Пожалуйста, введите вашу фамилию",
		MsgTestResults:         "Результаты теста: ",
		MsgStudent:             "Студент: %s",
		MsgAnsweredQuestions:   "Количество отвеченных вопросов: %d",
		MsgRightAnswers:        "Количество правильных ответов: %d",
		MsgPassedTest:          "Поздравляем! Вы сдали тест!",
		MsgFailTest:            "К сожалению, вы не сдали тест",
		MsgShellWelcome:        "Добро пожаловать: %s",
		MsgShellLoginFirst:     "Сначала войдите: login --first-name <имя> --last-name <фамилия>",
		MsgShellUnknownCommand: "Неизвестная команда: %s",
		MsgShellLoggedOut:      "До свидания: %s",
		MsgShellBanner:         "Введите 'help', чтобы увидеть список команд.",
	},
}

var messageCatalog = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(englishUS))
	for tag, entries := range messages {
		for code, msg := range entries {
			if err := b.SetString(tag, code, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Localizer resolves message codes for one locale. Unsupported locales fall back to en-US.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func NewLocalizer(locale string) *Localizer {
	tag := MatchLocale(locale)
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messageCatalog)),
	}
}

// MatchLocale returns the supported tag closest to locale.
func MatchLocale(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return englishUS
	}
	_, idx, confidence := localeMatcher.Match(requested)
	if confidence == language.No {
		return englishUS
	}
	return supportedLocales[idx]
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Message formats the message for code. Unknown codes are returned as is.
func (l *Localizer) Message(code string, args ...any) string {
	if _, ok := messages[englishUS][code]; !ok {
		return code
	}
	return l.printer.Sprintf(code, args...)
}
