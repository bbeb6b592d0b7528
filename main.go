package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/library/internal/cli"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		if err := entrypoint.Run(cfg, Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "shell":
		cmd = cli.NewShellCommand(config.NewConfig())
	case "quiz":
		cmd = cli.NewQuizCommand(config.NewConfig())
	case "export":
		cmd = cli.NewExportCommand(config.NewConfig())
	case "seed":
		cmd = cli.NewSeedCommand(config.NewConfig())
	case "version":
		fmt.Printf("%s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  shell     Start the interactive shell: login, run the test, manage the catalog\n")
	fmt.Fprintf(os.Stderr, "  quiz      Run the student test once\n")
	fmt.Fprintf(os.Stderr, "  export    Export the catalog to markdown files\n")
	fmt.Fprintf(os.Stderr, "  seed      Insert the demo catalog into an empty database\n")
	fmt.Fprintf(os.Stderr, "  version   Print the version\n")
	fmt.Fprintf(os.Stderr, "\nSettings are read from environment variables (DATABASE_PATH, QUIZ_LOCALE, PORT, ...).\n")
	fmt.Fprintf(os.Stderr, "Use '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
