// Package logging provides the leveled, optionally colored console logger
// with an optional append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/audiobatch/internal/config"
	"github.com/backmassage/audiobatch/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// It is safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	file   *os.File
	runID  string
}

// NewLogger configures terminal colors from cfg and optionally opens
// cfg.LogFile. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

// NewWriterLogger is NewLogger with explicit console writers. ERROR lines go
// to stderr, everything else to stdout.
func NewWriterLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	return newLogger(cfg, stdout, stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{
		stdout: stdout,
		stderr: stderr,
		runID:  uuid.NewString()[:8],
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// RunID returns the short identifier stamped on every file log line.
func (l *Logger) RunID() string { return l.runID }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, role term.Role, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.stdout
	if level == "ERROR" {
		out = l.stderr
	}
	_, _ = io.WriteString(out, ts+" "+term.Paint(role, "["+level+"]")+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" "+l.runID+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.RoleInfo, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.RoleSuccess, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.RoleWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.RoleError, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.RoleDebug, fmt.Sprintf(format, args...))
}

// Plain writes text to stdout without timestamp or level, for blocks such as
// tables and the merge order listing. It is mirrored to the log file.
func (l *Logger) Plain(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.stdout, text)
	if l.file != nil {
		_, _ = io.WriteString(l.file, text)
	}
}
