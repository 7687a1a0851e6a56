package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogFallback(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	var buf bytes.Buffer
	closeLog, err := Default().SetupLog("test", &buf)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	log.Print("hello")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "test: ") || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestSetupLogFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	c := Default()
	c.LogFile = filepath.Join(t.TempDir(), "life.log")
	closeLog, err := c.SetupLog("test", nil)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	log.Print("to file")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(c.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("log file missing message: %q", data)
	}
}

func TestSetupLogBadPath(t *testing.T) {
	c := Default()
	c.LogFile = filepath.Join(t.TempDir(), "missing", "life.log")
	if _, err := c.SetupLog("test", nil); err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
