package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entrypoint"
)

// ExportCommand writes the catalog as markdown files.
type ExportCommand struct {
	Config    *config.Config
	OutputDir string
	Verbose   bool

	Out io.Writer
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{Config: cfg, Out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.Config.Database.Path, "db", cmd.Config.Database.Path, "Path to the SQLite database file")
	fs.StringVar(&cmd.OutputDir, "output", cmd.Config.Export.Dir, "Output directory for markdown files")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export every book with its comments to markdown, one file per book plus an index.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -output ~/Obsidian/Library\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputDir == "" {
		return fmt.Errorf("required flag -output not provided")
	}
	return nil
}

func (cmd *ExportCommand) Run() error {
	flush := initLogging(cmd.Config, cmd.Verbose)
	defer flush()

	fmt.Fprintln(cmd.Out, "Catalog Export")
	fmt.Fprintln(cmd.Out, "==============")

	app, err := entrypoint.NewApp(cmd.Config)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.ExportCatalog(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Books exported: %d\n", result.BooksProcessed)
	fmt.Fprintf(cmd.Out, "Comments exported: %d\n", result.CommentsProcessed)
	if result.BooksFailed > 0 {
		fmt.Fprintf(cmd.Out, "Books failed: %d\n", result.BooksFailed)
	}
	fmt.Fprintf(cmd.Out, "Output directory: %s\n", result.OutputDir)
	return nil
}
