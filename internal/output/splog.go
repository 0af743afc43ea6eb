// Package output provides user-facing output for the gitkit CLI:
// console messages, color styling, and rotating file logs.
package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Splog provides structured logging and console output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser // Lumberjack logger for file logging
	quiet     bool
}

// NewSplog creates a new splog instance with console-only logging.
// Debug messages are enabled when debug is true.
func NewSplog(debug bool) *Splog {
	splog, _ := NewSplogWithLogFile("", debug)
	return splog
}

// NewSplogWithLogFile creates a new splog instance that also writes to a
// rotating log file when logFilePath is non-empty.
func NewSplogWithLogFile(logFilePath string, debug bool) (*Splog, error) {
	splog := &Splog{writer: os.Stdout}

	handler, logWriter, err := buildHandler(splog, logFilePath, debug)
	if err != nil {
		return nil, err
	}
	splog.logWriter = logWriter
	splog.logger = slog.New(handler)

	return splog, nil
}

// SetQuiet suppresses console output when quiet is true. File logging is
// unaffected.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// Close releases the file log writer, if any.
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.logger.Info(fmt.Sprintf(format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logger.Warn(Yellow("! " + fmt.Sprintf(format, args...)))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.logger.Error(Red(fmt.Sprintf(format, args...)))
}

// Debug writes a debug message, shown only in debug mode
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

// Page writes raw content as-is, without a trailing newline
func (s *Splog) Page(content string) {
	if s.quiet {
		return
	}
	fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	if s.quiet {
		return
	}
	fmt.Fprintln(s.writer)
}
