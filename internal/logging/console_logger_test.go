package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/userdb/pkg/userdb"
)

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("connected to %s", "localhost")

	got := buf.String()
	if got != "connected to localhost\n" {
		t.Errorf("Info output = %q", got)
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Error("query failed: %v", "timeout")

	got := buf.String()
	if got != "[ERROR] query failed: timeout\n" {
		t.Errorf("Error output = %q", got)
	}
}

func TestConsoleLogger_VerboseGate(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewConsoleLoggerTo(&buf, false)
	quiet.Verbose("should be suppressed")
	if buf.Len() != 0 {
		t.Errorf("verbose=false produced output: %q", buf.String())
	}

	chatty := NewConsoleLoggerTo(&buf, true)
	chatty.Verbose("attempt %d", 2)
	if got := buf.String(); got != "[VERBOSE] attempt 2\n" {
		t.Errorf("Verbose output = %q", got)
	}
}

func TestConsoleLogger_NoFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	// A message containing % verbs must pass through untouched when no
	// args are supplied.
	logger.Info("progress: 100%")

	if got := buf.String(); got != "progress: 100%\n" {
		t.Errorf("Info output = %q", got)
	}
}

func TestConsoleLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("line")
			logger.Verbose("line")
			logger.Error("line")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 60 {
		t.Errorf("expected 60 lines, got %d", len(lines))
	}
}

func TestLoggersImplementInterface(t *testing.T) {
	var _ userdb.Logger = NewConsoleLogger(false)
	var _ userdb.Logger = NewNullLogger()
}
