// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and server modes, allowing seamless
// switching between human-readable output and structured logging.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// ServerLogger implements Logger for stdio server mode.
// It suppresses output by default since the server protocol owns stdout,
// but can be configured to write structured JSON logs to a separate destination.
//
// ServerLogger is safe for concurrent use by multiple goroutines.
type ServerLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewServerLogger creates a new server logger.
// By default, it's silent (output suppressed) to avoid interfering with the
// stdio protocol. Set silent=false and provide a writer to enable structured
// logging to a file or stderr.
func NewServerLogger(writer io.Writer, silent bool) *ServerLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &ServerLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Printf is safe for concurrent use by multiple goroutines.
func (m *ServerLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}
	m.emit(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Println is safe for concurrent use by multiple goroutines.
func (m *ServerLogger) Println(v ...any) {
	if m.silent {
		return
	}
	m.emit(fmt.Sprint(v...))
}

// emit writes a single JSON log line with the given message.
func (m *ServerLogger) emit(msg string) {
	logEntry := map[string]any{
		"level":   "info",
		"message": msg,
	}

	data, _ := json.Marshal(logEntry)

	m.mu.Lock()
	fmt.Fprintln(m.writer, string(data))
	m.mu.Unlock()
}

// SetOutput sets the output destination for the server logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *ServerLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
