package cli

import (
	"flag"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/logger"
)

// addAppFlags registers the flags shared by every command that opens the app.
// Defaults come from the environment configuration.
func addAppFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Database.Path, "db", cfg.Database.Path, "Path to the SQLite database file")
	fs.StringVar(&cfg.Quiz.FileName, "questions", cfg.Quiz.FileName, "Path to the questions CSV file")
	fs.StringVar(&cfg.Quiz.Locale, "locale", cfg.Quiz.Locale, "Locale for messages and questions, e.g. en-US or ru-RU")
	fs.IntVar(&cfg.Quiz.RightAnswersCountToPass, "pass", cfg.Quiz.RightAnswersCountToPass, "Right answers needed to pass the test")
}

// preferQuestionsFlag makes an explicit -questions win over the per-locale
// question files from the environment.
func preferQuestionsFlag(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "questions" {
			cfg.Quiz.LocaleFiles = nil
		}
	})
}

// initLogging keeps the terminal quiet unless verbose output was asked for.
func initLogging(cfg *config.Config, verbose bool) func() {
	logCfg := cfg.Log
	if verbose {
		logCfg.Level = "debug"
	} else {
		logCfg.Level = "warn"
	}
	return logger.Init(logCfg)
}
