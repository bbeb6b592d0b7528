package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entrypoint"
	"github.com/mrlokans/library/internal/shell"
)

// ShellCommand starts the interactive command loop.
type ShellCommand struct {
	Config  *config.Config
	Seed    bool
	Verbose bool

	In  io.Reader
	Out io.Writer
}

func NewShellCommand(cfg *config.Config) *ShellCommand {
	return &ShellCommand{Config: cfg, In: os.Stdin, Out: os.Stdout}
}

func (cmd *ShellCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)

	addAppFlags(fs, cmd.Config)
	fs.BoolVar(&cmd.Seed, "seed", cmd.Config.Database.Seed, "Insert the demo catalog into an empty database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s shell [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Start the interactive shell. Type 'help' inside the shell for the list of commands.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s shell -seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s shell -locale ru-RU -db ./library.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	preferQuestionsFlag(fs, cmd.Config)
	return nil
}

func (cmd *ShellCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cmd.RunContext(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.Out)
		return nil
	}
	return err
}

// RunContext runs the shell until exit, end of input or ctx cancellation.
func (cmd *ShellCommand) RunContext(ctx context.Context) error {
	flush := initLogging(cmd.Config, cmd.Verbose)
	defer flush()

	cmd.Config.Database.Seed = cmd.Seed
	app, err := entrypoint.NewApp(cmd.Config)
	if err != nil {
		return err
	}
	defer app.Close()

	lio := console.NewLocalizedIOService(console.NewStreamsIOService(cmd.In, cmd.Out), app.Localizer)
	sh := shell.New(lio, app.NewQuizRunner(lio), app.Catalog())

	lio.PrintLineLocalized(console.MsgShellBanner)
	return sh.Run(ctx, &shell.Session{})
}
