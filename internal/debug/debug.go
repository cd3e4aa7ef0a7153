package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	enabled bool
	logFile *os.File
	runID   string
	mu      sync.Mutex
)

// DefaultPath returns the log location used when no path is configured.
func DefaultPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "etch", "debug.log")
}

// Enable turns on debug logging to the specified file, truncating it.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	logFile = f
	enabled = true
	runID = uuid.NewString()

	write("debug logging enabled, run %s", runID)
	return nil
}

// Close closes the debug log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	runID = ""
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// RunID returns the id tagging the current log, or "" when disabled.
func RunID() string {
	mu.Lock()
	defer mu.Unlock()
	return runID
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	write(format, args...)
}

// write must be called with mu held. Each line is tagged with the first
// block of the run id.
func write(format string, args ...interface{}) {
	if !enabled || logFile == nil {
		return
	}

	tag, _, _ := strings.Cut(runID, "-")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(logFile, "%s %s %s\n", time.Now().Format("15:04:05.000"), tag, msg)
}

// Timed logs when name starts and how long it took once the returned func
// runs:
//
//	defer debug.Timed("build 16x16")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)
	return func() {
		Log("%s completed in %s", name, time.Since(start).Round(time.Microsecond))
	}
}
