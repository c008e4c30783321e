package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/klabast/wb-services/termin-kalender/internal/app"
)

// RunScript handles the run subcommand: it executes the commands in a file
// ("-" for stdin) against a fresh calendar and writes results to out.
// Rejected lines are reported to out and the script goes on.
func RunScript(args []string, out, logOut io.Writer, getenv func(string) string) error {
	cfg, err := app.ParseConfig(args, getenv)
	if err != nil {
		return err
	}
	if len(cfg.Args) != 1 {
		return fmt.Errorf("run: expected exactly one FILE argument, got %d", len(cfg.Args))
	}

	logger := cfg.NewLogger(logOut)
	session := app.NewSession(cfg.Renderer, logger)

	path := cfg.Args[0]
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Warn("error closing script", "path", path, "error", err)
			}
		}()
		in = f
	}

	logger.Info("running script", "path", path, "format", cfg.Format)
	return Run(NewBufferedReader(in, out, ""), out, session)
}
