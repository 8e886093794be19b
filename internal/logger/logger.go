// Package logger provides verbose diagnostic logging for keycalc.
// When verbose mode is enabled via the --verbose flag or the log.verbose
// setting, messages are written to stderr so users can follow how each
// key press moves the calculator state machine.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// level tags a log line.
type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs engine-level detail such as individual transitions.
func Debug(format string, args ...any) {
	logf(levelDebug, format, args...)
}

// Info logs adapter-level events such as a session being opened.
func Info(format string, args ...any) {
	logf(levelInfo, format, args...)
}

// Warn logs recoverable problems such as an unreadable config value.
func Warn(format string, args ...any) {
	logf(levelWarn, format, args...)
}

// Section prints a section header.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(l level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", l, fmt.Sprintf(format, args...))
}
