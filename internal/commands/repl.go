package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/klabast/wb-services/termin-kalender/internal/app"
	"golang.org/x/term"
)

// LineReader yields one input line per call and io.EOF at the end of input.
// *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
}

// Run feeds lines from r to session until an exit command or the end of input
func Run(r LineReader, w io.Writer, session *app.Session) error {
	for {
		line, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		done, err := session.HandleLine(w, line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// bufferedReader reads lines from a non-terminal input, writing prompt before each one.
// Lines have no length limit.
type bufferedReader struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
	eof    bool
}

// NewBufferedReader returns a LineReader over in. An empty prompt disables prompting.
func NewBufferedReader(in io.Reader, out io.Writer, prompt string) LineReader {
	return &bufferedReader{reader: bufio.NewReader(in), out: out, prompt: prompt}
}

func (r *bufferedReader) ReadLine() (string, error) {
	if r.eof {
		return "", io.EOF
	}
	if r.prompt != "" {
		if _, err := io.WriteString(r.out, r.prompt); err != nil {
			return "", err
		}
	}

	line, err := r.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		// last line without a trailing newline
		r.eof = true
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Interactive runs the read-loop on stdin. On a terminal it switches to raw
// mode and uses a line editor with history; otherwise it reads plain lines.
func Interactive(cfg app.Config, session *app.Session) error {
	fd := int(syscall.Stdin)

	if !term.IsTerminal(fd) {
		return runBuffered(os.Stdin, os.Stdout, cfg, session)
	}

	// Save original terminal state
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Fall back to cooked mode line reading
		return runBuffered(os.Stdin, os.Stdout, cfg, session)
	}
	defer term.Restore(fd, oldState)

	return runTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, cfg, session)
}

// runTerminal drives session through a term.Terminal line editor on rw
func runTerminal(rw io.ReadWriter, cfg app.Config, session *app.Session) error {
	t := term.NewTerminal(rw, cfg.Prompt)
	if err := writeBanner(t, cfg); err != nil {
		return err
	}
	return Run(t, t, session)
}

func runBuffered(in io.Reader, out io.Writer, cfg app.Config, session *app.Session) error {
	if err := writeBanner(out, cfg); err != nil {
		return err
	}
	return Run(NewBufferedReader(in, out, cfg.Prompt), out, session)
}

func writeBanner(w io.Writer, cfg app.Config) error {
	if !cfg.Banner {
		return nil
	}
	_, err := fmt.Fprintln(w, app.Banner)
	return err
}
