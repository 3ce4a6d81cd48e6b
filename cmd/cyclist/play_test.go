package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"90s", 90 * time.Second, false},
		{"2m", 2 * time.Minute, false},
		{"0s", 0, true},
		{"-5s", 0, true},
		{"soon", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseInterval(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseInterval(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("parseInterval(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyclist.log")

	logger, closeLog, err := newLogger(path, true)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Debug("phase change", "to", "playing")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "phase change") || !strings.Contains(out, "cyclist") {
		t.Errorf("Log file missing entry or prefix: %q", out)
	}
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("", false)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}
