package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entrypoint"
)

// SeedCommand fills an empty database with the demo catalog.
type SeedCommand struct {
	Config  *config.Config
	Verbose bool

	Out io.Writer
}

func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{Config: cfg, Out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.Config.Database.Path, "db", cmd.Config.Database.Path, "Path to the SQLite database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert demo authors, genres, books and comments. A database that already has authors is left alone.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	flush := initLogging(cmd.Config, cmd.Verbose)
	defer flush()

	cmd.Config.Database.Seed = true
	app, err := entrypoint.NewApp(cmd.Config)
	if err != nil {
		return err
	}
	defer app.Close()

	authors, err := app.Authors.FindAll()
	if err != nil {
		return err
	}
	genres, err := app.Genres.FindAll()
	if err != nil {
		return err
	}
	books, err := app.Books.FindAll()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "Catalog ready: %d authors, %d genres, %d books\n", len(authors), len(genres), len(books))
	return nil
}
