package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/klabast/wb-services/termin-kalender/internal/app"
	"github.com/klabast/wb-services/termin-kalender/internal/commands"
)

func main() {
	// Check for subcommands
	if len(os.Args) > 1 && os.Args[1] == "run" {
		if err := commands.RunScript(os.Args[2:], os.Stdout, os.Stderr, os.Getenv); err != nil {
			exitWithUsage(err)
		}
		return
	}

	cfg, err := app.ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		exitWithUsage(err)
	}
	if len(cfg.Args) > 0 {
		exitWithUsage(fmt.Errorf("unexpected argument: %s", cfg.Args[0]))
	}

	logger := cfg.NewLogger(os.Stderr)
	session := app.NewSession(cfg.Renderer, logger)
	logger.Info("starting session", "format", cfg.Format)

	if err := commands.Interactive(cfg, session); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}

func exitWithUsage(err error) {
	if errors.Is(err, flag.ErrHelp) {
		app.Usage(os.Stdout)
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	app.Usage(os.Stderr)
	os.Exit(1)
}
