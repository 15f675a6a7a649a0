package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// CLILogger is the output sink nimbus commands print through. It
// renders either human-readable text or line-delimited JSON depending
// on the --json flag, so command handlers never branch on output mode
// themselves.
type CLILogger struct {
	writer     io.Writer
	jsonOutput bool
	level      string
	fields     map[string]any
}

// LogEntry represents a structured log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// NewCLILogger creates a new CLI output sink.
func NewCLILogger(jsonOutput bool, writer io.Writer) *CLILogger {
	return &CLILogger{
		writer:     writer,
		jsonOutput: jsonOutput,
		level:      "info",
		fields:     make(map[string]any),
	}
}

// log writes a log entry with the specified level.
func (l *CLILogger) log(level, msg string, fields ...map[string]any) {
	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
	}

	entry.Fields = make(map[string]any)
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, fieldMap := range fields {
		for k, v := range fieldMap {
			entry.Fields[k] = v
		}
	}

	if l.jsonOutput {
		jsonData, err := json.Marshal(entry)
		if err != nil {
			fmt.Fprintf(l.writer, "{\"error\": \"failed to marshal log entry: %v\"}\n", err)
			return
		}
		fmt.Fprintln(l.writer, string(jsonData))
	} else {
		var fieldStrs []string
		for k, v := range entry.Fields {
			fieldStrs = append(fieldStrs, fmt.Sprintf("%s=%v", k, v))
		}

		fieldsStr := ""
		if len(fieldStrs) > 0 {
			fieldsStr = " [" + strings.Join(fieldStrs, " ") + "]"
		}

		fmt.Fprintf(l.writer, "[%s] %s %s%s\n", strings.ToUpper(level), entry.Timestamp, msg, fieldsStr)
	}
}

// Info logs an informational message.
func (l *CLILogger) Info(msg string, fields ...map[string]any) {
	l.log("info", msg, fields...)
}

// Success logs a success message.
func (l *CLILogger) Success(msg string, fields ...map[string]any) {
	fields = append(fields, map[string]any{"status": "success"})
	l.log("info", msg, fields...)
}

// Error logs an error message.
func (l *CLILogger) Error(msg string, err error, fields ...map[string]any) {
	if err != nil {
		fields = append(fields, map[string]any{"error": err.Error()})
	}
	l.log("error", msg, fields...)
}

// Warn logs a warning message.
func (l *CLILogger) Warn(msg string, fields ...map[string]any) {
	l.log("warn", msg, fields...)
}

// Debug logs a debug message.
func (l *CLILogger) Debug(msg string, fields ...map[string]any) {
	if l.level == "debug" {
		l.log("debug", msg, fields...)
	}
}

// Print outputs data directly. In JSON mode the data is marshaled as
// one JSON document; in text mode it is printed as-is.
func (l *CLILogger) Print(data any) error {
	if l.jsonOutput {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(l.writer, string(jsonData))
		return nil
	}

	switch v := data.(type) {
	case string:
		fmt.Fprintln(l.writer, v)
	case []byte:
		fmt.Fprintln(l.writer, string(v))
	default:
		fmt.Fprintln(l.writer, v)
	}
	return nil
}

// Printf formats and prints output.
func (l *CLILogger) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.jsonOutput {
		l.Info(msg)
	} else {
		fmt.Fprintln(l.writer, msg)
	}
}

// Writer exposes the underlying writer for table rendering.
func (l *CLILogger) Writer() io.Writer {
	return l.writer
}

// JSONOutput reports whether the sink is in JSON mode.
func (l *CLILogger) JSONOutput() bool {
	return l.jsonOutput
}

// SetLevel sets the log level.
func (l *CLILogger) SetLevel(level string) {
	l.level = strings.ToLower(level)
}

// DefaultCLILogger is the default CLI output sink.
var DefaultCLILogger = NewCLILogger(false, os.Stdout)
