package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entrypoint"
)

// QuizCommand asks for the student's name and runs the test once.
type QuizCommand struct {
	Config  *config.Config
	Verbose bool

	In  io.Reader
	Out io.Writer
}

func NewQuizCommand(cfg *config.Config) *QuizCommand {
	return &QuizCommand{Config: cfg, In: os.Stdin, Out: os.Stdout}
}

func (cmd *QuizCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("quiz", flag.ContinueOnError)

	addAppFlags(fs, cmd.Config)
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s quiz [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run the student test once and store the result.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	preferQuestionsFlag(fs, cmd.Config)
	return nil
}

func (cmd *QuizCommand) Run() error {
	flush := initLogging(cmd.Config, cmd.Verbose)
	defer flush()

	app, err := entrypoint.NewApp(cmd.Config)
	if err != nil {
		return err
	}
	defer app.Close()

	lio := console.NewLocalizedIOService(console.NewStreamsIOService(cmd.In, cmd.Out), app.Localizer)
	if _, err := app.NewQuizRunner(lio).Run(); err != nil {
		return fmt.Errorf("quiz failed: %w", err)
	}
	return nil
}
