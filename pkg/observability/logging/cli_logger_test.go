package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewCLILogger(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		wantJSON   bool
	}{
		{"Text output", false, false},
		{"JSON output", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewCLILogger(tt.jsonOutput, &buf)

			if logger == nil {
				t.Fatal("NewCLILogger returned nil")
			}

			if logger.jsonOutput != tt.wantJSON {
				t.Errorf("Expected json=%v, got %v", tt.wantJSON, logger.jsonOutput)
			}

			logger.Info("test message")
			if buf.Len() == 0 {
				t.Error("Logger did not write any output")
			}
		})
	}
}

func TestCLILogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLILogger(false, &buf)

	logger.Info("test info message")
	output := buf.String()

	if !strings.Contains(output, "test info message") {
		t.Errorf("Expected output to contain 'test info message', got: %s", output)
	}
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected output to contain '[INFO]', got: %s", output)
	}
}

func TestCLILogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLILogger(false, &buf)

	logger.Error("something failed", errors.New("boom"))
	output := buf.String()

	if !strings.Contains(output, "[ERROR]") {
		t.Errorf("Expected output to contain '[ERROR]', got: %s", output)
	}
	if !strings.Contains(output, "boom") {
		t.Errorf("Expected output to contain the error message, got: %s", output)
	}
}

func TestCLILogger_JSONMode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLILogger(true, &buf)

	logger.Info("structured message", map[string]any{"domain": "example.com"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if entry.Message != "structured message" {
		t.Errorf("Expected message 'structured message', got %q", entry.Message)
	}
	if entry.Fields["domain"] != "example.com" {
		t.Errorf("Expected domain field, got %v", entry.Fields)
	}
}

func TestCLILogger_Print(t *testing.T) {
	t.Run("TextMode", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewCLILogger(false, &buf)

		if err := logger.Print("plain line"); err != nil {
			t.Fatalf("Print failed: %v", err)
		}
		if buf.String() != "plain line\n" {
			t.Errorf("Expected plain output, got %q", buf.String())
		}
	})

	t.Run("JSONMode", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewCLILogger(true, &buf)

		if err := logger.Print(map[string]string{"name": "example.com"}); err != nil {
			t.Fatalf("Print failed: %v", err)
		}

		var decoded map[string]string
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		if decoded["name"] != "example.com" {
			t.Errorf("Expected name field, got %v", decoded)
		}
	})
}

func TestCLILogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLILogger(false, &buf)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debug output should be suppressed at info level, got %q", buf.String())
	}

	logger.SetLevel("debug")
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected debug output after SetLevel, got %q", buf.String())
	}
}
