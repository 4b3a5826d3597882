package reporter

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.refold.dev/refold/internal/ui/style"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+). Errors without it fall back to Error().
type messager interface {
	Message() string
}

// Console implements ports.Reporter using log/slog with the pretty handler.
// Verbose maps to the debug level and is filtered until SetVerbose(true).
type Console struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// New creates a Console reporter writing to stderr.
func New() *Console {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Console reporter writing to w.
func NewWithWriter(w io.Writer) *Console {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	handler := NewPrettyHandler(w, &slog.HandlerOptions{Level: level})
	return &Console{
		logger: slog.New(handler),
		level:  level,
	}
}

// SetVerbose toggles emission of Verbose messages.
func (c *Console) SetVerbose(enable bool) {
	if enable {
		c.level.Set(slog.LevelDebug)
	} else {
		c.level.Set(slog.LevelInfo)
	}
}

// Verbose emits a message only visible in verbose mode.
func (c *Console) Verbose(msg string) {
	c.logger.Debug(msg)
}

// Output emits a user-facing message.
func (c *Console) Output(msg string) {
	c.logger.Info(msg)
}

// Warn emits a warning.
func (c *Console) Warn(msg string) {
	c.logger.Warn(msg)
}

// Error emits an error, rendering the wrapped cause chain hierarchically.
func (c *Console) Error(err error) {
	if err == nil {
		return
	}
	c.logger.Error(formatErrorChain(collectMessages(err)))
}

// collectMessages walks the error chain, taking the bare message from zerr
// errors and the full Error() from the first foreign error.
func collectMessages(err error) []string {
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}
	return messages
}

// formatErrorChain renders the collected messages as a main error followed by
// an indented cause list.
func formatErrorChain(messages []string) string {
	var lines []string

	for i, msg := range messages {
		msgLines := strings.Split(msg, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
