package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Session owns one calendar and handles the lines typed into it
type Session struct {
	ID uuid.UUID

	store    *Store
	renderer Renderer
	log      *slog.Logger
}

// NewSession creates a session with an empty calendar.
// A nil logger discards log output.
func NewSession(renderer Renderer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New()
	return &Session{
		ID:       id,
		store:    NewStore(),
		renderer: renderer,
		log:      logger.With("session", id.String()),
	}
}

// Store returns the session's calendar
func (s *Session) Store() *Store {
	return s.store
}

// HandleLine parses and executes one input line and writes the outcome to w.
//
// Input errors are written to w and do not end the session. done is true after
// an exit command. The returned error is always a write error.
func (s *Session) HandleLine(w io.Writer, line string) (done bool, err error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}

	cmd, err := ParseLine(line)
	if err != nil {
		s.log.Info("rejected command", "input", line, "error", err)
		if werr := s.renderer.Error(w, err); werr != nil {
			return false, fmt.Errorf("failed to write error: %w", werr)
		}
		return false, nil
	}

	switch c := cmd.(type) {
	case ExitCommand:
		s.log.Debug("exit requested", "dates", s.store.Len())
		return true, nil
	case StoreCommand:
		res := s.store.Execute(c)
		s.log.Debug("executed command", "command", c.Name(), "status", res.Status.String(), "dates", s.store.Len())
		if werr := s.renderer.Result(w, res); werr != nil {
			return false, fmt.Errorf("failed to write result: %w", werr)
		}
	}

	return false, nil
}
