package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Constants
const (
	AppName       = "termin-kalender"
	Banner        = "~ Termin-Kalender ~"
	DefaultPrompt = "> "
	DefaultFormat = FormatText
	DefaultLevel  = "warn"

	// Output formats
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatICS  = "ics"

	// Status messages
	MsgDateNotFound   = "Date not found"
	MsgEventNotFound  = "Event not found"
	MsgDeletedOne     = "Deleted successfully"
	MsgDeletedEvents  = "Deleted %d events"
	MsgErrorPrefix    = "Error: "
	MsgStatusLineMark = "> "

	// Environment variables
	EnvFormat   = "CALENDAR_FORMAT"
	EnvLogLevel = "CALENDAR_LOG_LEVEL"
	EnvPrompt   = "CALENDAR_PROMPT"

	// ICS constants
	ICSProductID = "-//Winterberg//Termin-Kalender//DE"
)

// Formats lists the accepted values of -format
var Formats = []string{FormatText, FormatCSV, FormatJSON, FormatICS}

// Config holds the runtime settings of a calendar session
type Config struct {
	Format   string
	Prompt   string
	LogLevel slog.Level
	Banner   bool

	// Renderer writes results in Format
	Renderer Renderer

	// Args holds the arguments left after the flags
	Args []string
}

// ParseConfig reads settings from command line flags, falling back to the
// environment and then to defaults. getenv is usually os.Getenv.
func ParseConfig(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	format := fs.String("format", getString(getenv, EnvFormat, DefaultFormat), "Output format: "+strings.Join(Formats, ", "))
	level := fs.String("log-level", getString(getenv, EnvLogLevel, DefaultLevel), "Log level: debug, info, warn, error")
	prompt := fs.String("prompt", getString(getenv, EnvPrompt, DefaultPrompt), "Prompt shown before each command")
	banner := fs.Bool("banner", true, "Print a banner on start")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := Config{
		Format: strings.ToLower(*format),
		Prompt: *prompt,
		Banner: *banner,
		Args:   fs.Args(),
	}

	renderer, err := NewRenderer(cfg.Format, nil)
	if err != nil {
		return Config{}, err
	}
	cfg.Renderer = renderer

	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

// Usage writes the command line help to w
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS]\n", AppName)
	fmt.Fprintf(w, "       %s run [OPTIONS] FILE\n\n", AppName)
	fmt.Fprintf(w, "Interactive event calendar. Commands:\n")
	for _, name := range []string{CmdAdd, CmdDelete, CmdFind, CmdPrint, CmdExit} {
		fmt.Fprintf(w, "  %s\n", commandUsage[name])
	}
	fmt.Fprintf(w, "\nThe run subcommand executes the commands in FILE (\"-\" for stdin) without prompting.\n")
	fmt.Fprintf(w, "\nOptions:\n")
	fmt.Fprintf(w, "  -format string      Output format: %s (default %q)\n", strings.Join(Formats, ", "), DefaultFormat)
	fmt.Fprintf(w, "  -log-level string   Log level: debug, info, warn, error (default %q)\n", DefaultLevel)
	fmt.Fprintf(w, "  -prompt string      Prompt shown before each command (default %q)\n", DefaultPrompt)
	fmt.Fprintf(w, "  -banner             Print a banner on start (default true)\n")
	fmt.Fprintf(w, "\nEnvironment Variables:\n")
	fmt.Fprintf(w, "  %-20s Default for -format\n", EnvFormat)
	fmt.Fprintf(w, "  %-20s Default for -log-level\n", EnvLogLevel)
	fmt.Fprintf(w, "  %-20s Default for -prompt\n", EnvPrompt)
}

// NewLogger returns a text logger writing to w at the configured level
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getString(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
