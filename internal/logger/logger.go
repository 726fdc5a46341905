// Package logger traces dataset loading and query resolution on stderr.
// Output is off by default; --verbose or TRAVEL_VERBOSE=1 turns it on so a
// user can see which source was read and why a query matched or did not.
package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type state struct {
	mu  sync.RWMutex
	on  bool
	out io.Writer
}

var std = &state{out: os.Stderr}

// SetVerbose switches tracing on or off.
func SetVerbose(v bool) {
	std.mu.Lock()
	std.on = v
	std.mu.Unlock()
}

// VerboseFromEnv switches tracing on when TRAVEL_VERBOSE parses as true.
func VerboseFromEnv() {
	if v, err := strconv.ParseBool(os.Getenv("TRAVEL_VERBOSE")); err == nil && v {
		SetVerbose(true)
	}
}

func IsVerbose() bool {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.on
}

// SetOutput redirects traces, mostly for tests.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	std.out = w
	std.mu.Unlock()
}

func (s *state) write(line string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.on {
		io.WriteString(s.out, line)
	}
}

// Section starts a new block of traces, e.g. "Load" or "Query".
func Section(name string) { std.write("\n=== " + name + " ===\n") }

func Debug(format string, args ...any) { std.write("[DEBUG] " + fmt.Sprintf(format, args...) + "\n") }

func Info(format string, args ...any) { std.write("[INFO] " + fmt.Sprintf(format, args...) + "\n") }

// Warn reports a failure the caller recovers from, such as a failed load.
func Warn(format string, args ...any) { std.write("[WARN] " + fmt.Sprintf(format, args...) + "\n") }
