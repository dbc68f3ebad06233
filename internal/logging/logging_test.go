package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Defaults(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := New(buf, Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}

	logger.Debug("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message written at default level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q, want warn message", buf.String())
	}
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	logger, err := New(new(bytes.Buffer), Options{Level: "error", Verbose: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
}

func TestNew_JSONFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := New(buf, Options{Format: FormatJSON, Level: "info"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.WithField("path", "a/b").Info("skipping")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v\nraw: %s", err, buf.String())
	}
	if line["path"] != "a/b" || line["msg"] != "skipping" {
		t.Errorf("line = %v", line)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"bad level", Options{Level: "loud"}, "failed to parse log level"},
		{"bad format", Options{Format: "xml"}, `unknown log format "xml", expected one of: [json text]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(new(bytes.Buffer), tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
